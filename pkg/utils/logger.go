package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogFile returns the log path used when none is configured
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("ideatracker_%s.log", time.Now().Format("2006-01-02")))
}

// NewLogger builds the application logger. The terminal belongs to the UI, so
// output goes to logFile. When verbose is off a no-op logger is returned.
func NewLogger(verbose bool, logFile string) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	if logFile == "" {
		logFile = DefaultLogFile()
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.Encoding = "json"
	config.OutputPaths = []string{logFile}
	config.ErrorOutputPaths = []string{logFile}
	config.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	logger.Info("verbose_logging_enabled", zap.String("log_file", logFile))
	return logger, nil
}
