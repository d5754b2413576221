package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/fulgur/lightning"
	"github.com/lixenwraith/fulgur/parameter"
)

const (
	logDir      = parameter.LogDir
	logFileName = parameter.LogFileName
	maxLogSize  = parameter.MaxLogSize
)

// setupLogging routes slog and the standard logger to logs/fulgur.log when debug is set
// Returns the open file for the caller to close, nil when logging is off
// The terminal is in raw mode, so nothing is ever written to stdout or stderr
func setupLogging(debug bool) *os.File {
	if !debug {
		discard := slog.New(slog.NewTextHandler(io.Discard, nil))
		slog.SetDefault(discard)
		// SetDefault rebinds the standard logger; discard after it
		log.SetOutput(io.Discard)
		lightning.SetLogger(nil)
		gg.SetLogger(nil)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("fulgur_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	lightning.SetLogger(logger.With("pkg", "lightning"))
	gg.SetLogger(logger.With("pkg", "gg"))

	logger.Info("logging started", "pid", os.Getpid())
	return f
}
