// Package logging provides structured logging for the trigger console,
// backed by zap behind a small interface so callers never import zap
// directly.
package logging

import (
	"os"
	"strings"
	"sync"
)

// Level represents the severity of a log message.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the upper-case name of the level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level, defaulting to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// Logger is the structured logging interface used throughout the service.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	WithFields(fields ...Field) Logger
}

// Typed field constructors.

func String(key, value string) Field           { return Field{Key: key, Value: value} }
func Int(key string, value int) Field          { return Field{Key: key, Value: value} }
func Int64(key string, value int64) Field      { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field        { return Field{Key: key, Value: value} }
func Any(key string, value interface{}) Field  { return Field{Key: key, Value: value} }
func Err(err error) Field                      { return Field{Key: "error", Value: err} }

var (
	globalLogger Logger
	globalMu     sync.RWMutex
	initOnce     sync.Once
)

// Init configures the global logger from the LOG_LEVEL environment variable.
func Init() {
	logger, err := NewZapLogger(ParseLevel(os.Getenv("LOG_LEVEL")))
	if err != nil {
		panic("logging: failed to initialize zap logger: " + err.Error())
	}
	SetGlobal(logger)
}

// SetGlobal replaces the global logger instance.
func SetGlobal(logger Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// Global returns the global logger, initializing a default one on first use.
func Global() Logger {
	initOnce.Do(func() {
		if globalLogger == nil {
			Init()
		}
	})
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// Package-level convenience functions that forward to the global logger.

func Debug(msg string, fields ...Field) { Global().Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { Global().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { Global().Warn(msg, fields...) }

func Error(msg string, err error, fields ...Field) { Global().Error(msg, err, fields...) }

// Sync flushes buffered log entries; call before process exit.
func Sync() {
	if z, ok := Global().(*zapLogger); ok {
		_ = z.Sync()
	}
}
