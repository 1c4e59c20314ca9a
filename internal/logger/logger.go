package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger represents application logger.
type Logger struct {
	*slog.Logger
}

// FileOptions configures rotating file output.
type FileOptions struct {
	Path       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// New creates new Logger instance with the specified level writing to stdout.
func New(level int) *Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter creates new Logger instance writing text records to w.
func NewWithWriter(level int, w io.Writer) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.Level(level)})),
	}
}

// NewFile creates new Logger writing to a rotating file. An empty path falls back to stdout.
func NewFile(level int, opts FileOptions) *Logger {
	if opts.Path == "" {
		return New(level)
	}

	return NewWithWriter(level, &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	})
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
