// Package logger holds the process-wide zap sugared logger. The cobra root
// calls InitLogger once with the configured level; everything else reaches
// the logger through L().
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.SugaredLogger

// InitLogger builds the global logger at the given level. Unrecognized level
// strings fall back to info rather than failing startup.
func InitLogger(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := cfg.Build()
	if err != nil {
		return err
	}
	global = z.Sugar()
	return nil
}

// L returns the global logger, initializing it at info level if InitLogger
// has not run yet.
func L() *zap.SugaredLogger {
	if global == nil {
		_ = InitLogger("info")
	}
	return global
}
