package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// It stays a no-op logger until Initialize or InitializeConsole is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize sets up the global JSON logger used by the API server.
func Initialize(level string) error {
	return build(zap.NewProductionConfig(), level)
}

// InitializeConsole sets up a human-readable logger on stderr for the
// operator console, so log lines do not interleave with table output on stdout.
func InitializeConsole(level string) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return build(cfg, level)
}

func build(cfg zap.Config, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Log.Sync()
}
