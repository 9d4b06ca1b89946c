// Package accounts manages registered users and persists the whole
// user+movie graph to a single JSON file. The manager holds an exclusive
// file lock for its lifetime; a second kinolog process fails fast instead
// of racing on the store. Save failures are reported but never fatal: the
// in-memory state stays authoritative for the rest of the session.
package accounts
