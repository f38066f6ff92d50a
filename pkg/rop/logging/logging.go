// Package logging builds zap-backed callbacks for Inspect and InspectError,
// so results can be logged in a pipeline without unpacking them.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/ropt/pkg/rop/fault"
)

// New builds a JSON logger at the given level. An unknown level falls back
// to info.
func New(level string) (*zap.Logger, error) {
	cfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	if atomicLevel, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = atomicLevel
	}

	return cfg.Build(zap.AddStacktrace(zap.DPanicLevel))
}

// Fields returns the zap fields describing e.
func Fields(e *fault.Error) []zap.Field {
	if e == nil {
		return nil
	}
	return []zap.Field{
		zap.String("kind", e.Kind().String()),
		zap.String("code", e.Code()),
		zap.Object("error", e),
	}
}

// Error returns an InspectError callback logging the error at error level.
func Error(logger *zap.Logger, msg string) func(*fault.Error) {
	return func(e *fault.Error) {
		logger.Error(msg, Fields(e)...)
	}
}

// Warn is Error at warn level.
func Warn(logger *zap.Logger, msg string) func(*fault.Error) {
	return func(e *fault.Error) {
		logger.Warn(msg, Fields(e)...)
	}
}

// Value returns an Inspect callback logging the value at debug level.
func Value[T any](logger *zap.Logger, msg string) func(T) {
	return func(v T) {
		logger.Debug(msg, zap.Any("value", v))
	}
}

// Sugared returns an InspectError callback writing to the global sugared
// logger.
func Sugared(msg string) func(*fault.Error) {
	return func(e *fault.Error) {
		zap.S().Errorw(msg, "kind", e.Kind().String(), "error", e)
	}
}
