package log

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger is the initializer for the logger dependencies.
//
// It registers a structured *zap.Logger and a *log.Logger bridge writing through it, for
// components that only accept a Printf style logger.
type InitLogger struct {
	Level    string `config:"LOG_LEVEL" default:"info"`
	Encoding string `config:"LOG_ENCODING" default:"json"`
	logger   *zap.Logger
}

// Initialize builds the loggers and registers them in the dependency container.
func (il *InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	logger, err := NewLogger(il.Level, il.Encoding)
	if err != nil {
		return ctx, err
	}
	il.logger = logger

	depend.Register(logger)
	depend.Register(NewStdLogger(logger))
	return ctx, nil
}

// Close flushes any buffered log entries.
func (il *InitLogger) Close() {
	if il.logger != nil {
		_ = il.logger.Sync()
	}
}

// NewLogger builds a production zap logger with the given level and encoding ("json" or "console").
func NewLogger(level, encoding string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = encoding
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// NewStdLogger returns a *log.Logger that writes info entries to logger.
func NewStdLogger(logger *zap.Logger) *log.Logger {
	return zap.NewStdLog(logger.WithOptions(zap.AddCallerSkip(1)))
}
