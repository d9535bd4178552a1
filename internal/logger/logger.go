package logger

import (
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base = zap.NewNop()

// Init builds the process logger. env "prod" writes JSON; anything else
// writes the zap development console format.
func Init(env, level string) {
	var zcfg zap.Config
	if strings.EqualFold(env, "prod") {
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.DisableStacktrace = true
	}
	zcfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	zcfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	l, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l, _ = zap.NewProduction()
	}

	base = l.With(zap.String("service", "staff-service"))
	Info("logger initialized", map[string]any{"env": env, "level": level})
}

// Set replaces the process logger. It returns a func restoring the previous one.
func Set(l *zap.Logger) func() {
	prev := base
	base = l
	return func() { base = prev }
}

// L returns the underlying zap logger.
func L() *zap.Logger {
	return base
}

func Sync() {
	_ = base.Sync()
}

func Info(msg string, fields map[string]any) {
	base.Info(msg, toZap(fields)...)
}

func Warn(msg string, fields map[string]any) {
	base.Warn(msg, toZap(fields)...)
}

func Error(msg string, fields map[string]any) {
	base.Error(msg, toZap(fields)...)
}

func Fatal(msg string, fields map[string]any) {
	base.Error(msg, toZap(fields)...)
	Sync()
	os.Exit(1)
}

// toZap converts a field map into zap fields with a stable key order.
func toZap(fields map[string]any) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		if err, ok := fields[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}

func parseLevel(lvl string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
