// Package logger provides structured JSON logging for the whole service.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = newLogger("info")

func newLogger(levelStr string) *zap.Logger {
	level := zapcore.InfoLevel
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	l, _ := cfg.Build(zap.AddCallerSkip(1))
	return l
}

// SetLevel rebuilds the logger at the given level ("debug", "info", "warn",
// "error"). Called once from main after config load.
func SetLevel(level string) {
	log = newLogger(level)
}

func fields(extra map[string]interface{}) []zap.Field {
	if len(extra) == 0 {
		return nil
	}
	fs := make([]zap.Field, 0, len(extra))
	for k, v := range extra {
		fs = append(fs, zap.Any(k, v))
	}
	return fs
}

func Info(msg string, extra map[string]interface{}) {
	log.Info(msg, fields(extra)...)
}

func Warn(msg string, extra map[string]interface{}) {
	log.Warn(msg, fields(extra)...)
}

func Error(msg string, extra map[string]interface{}) {
	log.Error(msg, fields(extra)...)
}
