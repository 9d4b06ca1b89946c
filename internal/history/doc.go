// Package history persists an append-only activity log in SQLite. Every
// account and collection change records who did what and when; the history
// command reads it back newest-first. Logging an event is best-effort at
// call sites and never fails the action that triggered it.
package history
