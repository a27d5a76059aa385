// Package logging builds the structured slog loggers used by the accessor, the HTTP surface and the CLI.
// Output is JSON by default, or key=value text, and the logger is handed to Fx as its event logger.
package logging
