// Package logging builds the application's slog loggers and provides the
// attribute helpers the rest of the codebase logs with.
//
// Loggers write to stdout/stderr and, when a log directory is configured, to
// kinolog.log inside it. Console and JSON formats are supported. Components
// derive their own loggers via NewComponentLogger so every record carries a
// stable component attribute.
package logging
