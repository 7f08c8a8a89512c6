// Package log provides the structured logger used by the fieldsig command.
//
// The crypto packages never log; only the command layer does, through the
// Logger interface defined here. Loggers are passed explicitly or carried in a
// context.Context:
//
//	logger := log.NewZapLogger(log.Config{Format: "logfmt", Level: log.LevelInfo})
//	ctx = log.SetContextLogger(ctx, logger.WithName("sign"))
//	log.FromContext(ctx).Info("signed", "fields", 3)
//
// Implementations:
//
//   - ZapLogger writes console, logfmt or JSON lines through zap.
//   - NoopLogger discards everything, for tests and library callers.
//   - SpanLogger mirrors every entry onto an OpenTelemetry span.
//
// # Key material
//
// Values logged under sensitive keys (any key containing "private", "secret",
// "password" or "plaintext", compared case-insensitively) are replaced with
// RedactedValue before they reach a writer or a span. Public keys, digests and
// signatures are logged as given.
//
// # Environment
//
// Config is read by cleanenv from LOG_FORMAT (console, logfmt, json),
// LOG_LEVEL (debug, info, warn, error, fatal) and LOG_OUTPUT (stderr, stdout
// or a file path).
package log
