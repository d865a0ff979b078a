// Package logging appends structured JSON lines to ~/.yidao/logs/yidao.log
// so users can inspect failures after the terminal UI has closed.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the log file inside the logs directory.
const FileName = "yidao.log"

// New builds a logger writing to logsDir/yidao.log. The returned func syncs
// the logger and should be deferred by the caller.
func New(logsDir string, debug bool) (*zap.Logger, func(), error) {
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	path := filepath.Join(logsDir, FileName)

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Sampling = nil
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("logging: build logger: %w", err)
	}
	logger = logger.Named("yidao")
	return logger, func() { _ = logger.Sync() }, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
