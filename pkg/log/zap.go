package log

import (
	"os"
	"path/filepath"
	"time"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = &ZapLogger{}

// Config configures a ZapLogger. It is populated from the environment by cleanenv.
type Config struct {
	Format string `env:"LOG_FORMAT" env-default:"console" validate:"oneof=console logfmt json"`
	Level  Level  `env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error fatal"`
	Output string `env:"LOG_OUTPUT" env-default:"stderr" validate:"required"` // stderr, stdout or a file path
}

// ZapLogger is a Logger backed by a zap SugaredLogger.
type ZapLogger struct {
	lg            *zap.SugaredLogger
	keysAndValues []any
}

// NewZapLogger builds a ZapLogger from conf. Entries are also written to every
// extraWriters syncer. An output file that cannot be opened falls back to
// stderr so that stdout stays reserved for command results.
func NewZapLogger(conf Config, extraWriters ...zapcore.WriteSyncer) Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(ts time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(ts.UTC().Format(time.RFC3339))
	}

	var encoder zapcore.Encoder
	switch conf.Format {
	case "logfmt":
		encoder = zaplogfmt.NewEncoder(encCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	writers := append(extraWriters, openOutput(conf.Output))
	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(writers...), toZapLevel(conf.Level))

	// Skip log() and the exported level method.
	return &ZapLogger{
		lg: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).Sugar(),
	}
}

func openOutput(output string) zapcore.WriteSyncer {
	switch output {
	case "", "stderr":
		return zapcore.Lock(os.Stderr)
	case "stdout":
		return zapcore.Lock(os.Stdout)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return zapcore.Lock(os.Stderr)
	}
	f, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o640)
	if err != nil {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.Lock(f)
}

func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.log(LevelDebug, msg, keysAndValues)
}

func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.log(LevelInfo, msg, keysAndValues)
}

func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.log(LevelWarn, msg, keysAndValues)
}

func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues)
}

// Fatal logs at fatal level and then calls os.Exit(1).
func (l *ZapLogger) Fatal(msg string, keysAndValues ...any) {
	l.log(LevelFatal, msg, keysAndValues)
}

func (l *ZapLogger) log(level Level, msg string, keysAndValues []any) {
	l.lg.Logw(toZapLevel(level), msg, Redact(keysAndValues)...)
}

// WithKV returns a child logger carrying key/value. Sensitive values are
// masked before they are stored.
func (l *ZapLogger) WithKV(key string, value any) Logger {
	pair := Redact([]any{key, value})
	kv := make([]any, 0, len(l.keysAndValues)+2)
	kv = append(append(kv, l.keysAndValues...), pair...)
	return &ZapLogger{
		lg:            l.lg.With(pair...),
		keysAndValues: kv,
	}
}

func (l *ZapLogger) GetAllKV() []any {
	return l.keysAndValues
}

func (l *ZapLogger) WithName(name string) Logger {
	return &ZapLogger{
		lg:            l.lg.Named(name),
		keysAndValues: l.keysAndValues,
	}
}

func (l *ZapLogger) Name() string {
	return l.lg.Desugar().Name()
}

func (l *ZapLogger) AddCallerSkip(skip int) Logger {
	return &ZapLogger{
		lg:            l.lg.WithOptions(zap.AddCallerSkip(skip)),
		keysAndValues: l.keysAndValues,
	}
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
