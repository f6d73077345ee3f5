// Package logger builds the file-backed zap logger used by the terminal front end
// The terminal owns stdout and stderr, so nothing here ever writes to them
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	FileName      = "plinko.log"
	MaxLogSizeMB  = 10 // Rolled over on the write that would cross it
	MaxLogBackups = 1
)

// New returns a logger and its cleanup function
// With debug off the logger is a no-op and the stdlib log output is discarded
// With debug on, JSON lines go to dir/plinko.log and stdlib log is redirected into zap
func New(debug bool, dir string) (*zap.Logger, func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	// lumberjack opens lazily on the first write; surface permission errors here instead
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	_ = f.Close()

	l, closeFile := newFileLogger(path, MaxLogSizeMB)

	restore := zap.RedirectStdLog(l.Named("stdlog"))
	l.Info("logging started", zap.String("path", path))

	cleanup := func() {
		restore()
		_ = l.Sync()
		closeFile()
	}
	return l, cleanup, nil
}

// newFileLogger writes JSON lines to a size-capped file with one rolled-over backup
func newFileLogger(path string, maxMB int) (*zap.Logger, func()) {
	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxMB,
		MaxBackups: MaxLogBackups,
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(sink),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)
	l := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return l, func() { _ = sink.Close() }
}
