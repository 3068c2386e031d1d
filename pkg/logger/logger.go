package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Level defines logging verbosity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is a leveled printf-style logger writing to stdout and,
// optionally, to a file.
type Logger struct {
	level Level
	std   *log.Logger
	file  *os.File
}

// New creates a logger. When filePath is non-empty the output is duplicated
// into that file (the directory is created if missing). level is one of
// "debug", "info", "warn", "error"; unknown values default to info.
func New(filePath string, level string) (*Logger, error) {
	l := &Logger{level: parseLevel(level)}

	writers := []io.Writer{os.Stdout}
	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log dir: %w", err)
		}
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		l.file = f
		writers = append(writers, f)
	}

	l.std = log.New(io.MultiWriter(writers...), "", log.LstdFlags|log.Lmicroseconds)
	return l, nil
}

// Close flushes and closes the underlying log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.print(LevelDebug, "DEBUG", format, v...)
}

// Info logs at info level.
func (l *Logger) Info(format string, v ...interface{}) {
	l.print(LevelInfo, "INFO", format, v...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.print(LevelWarn, "WARN", format, v...)
}

// Error logs at error level.
func (l *Logger) Error(format string, v ...interface{}) {
	l.print(LevelError, "ERROR", format, v...)
}

// Fatal logs at error level and exits the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.print(LevelError, "FATAL", format, v...)
	os.Exit(1)
}

func (l *Logger) print(level Level, tag string, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.std.Printf("[%s] %s", tag, fmt.Sprintf(format, v...))
}

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}
