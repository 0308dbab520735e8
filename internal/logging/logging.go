// Package logging builds the zap loggers used by the carousel binaries.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps DEBUG/INFO/WARN/ERROR (any case) to a zap level.
// Unknown names fall back to INFO.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// New returns a JSON file logger when file is set, otherwise a console
// logger on stderr. The interactive view owns stdout, so stdout is never
// used.
func New(level, file string) (*zap.Logger, error) {
	lvl := ParseLevel(level)

	if file != "" {
		cfg := zap.Config{
			Level:            zap.NewAtomicLevelAt(lvl),
			Encoding:         "json",
			EncoderConfig:    encoderConfig(),
			OutputPaths:      []string{file},
			ErrorOutputPaths: []string{file},
		}
		return cfg.Build()
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(os.Stderr), lvl)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
