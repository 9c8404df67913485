package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zapcore.Field

var (
	Int      = zap.Int
	Int64    = zap.Int64
	String   = zap.String
	Float64  = zap.Float64
	Duration = zap.Duration
	Error    = zap.Error
	Any      = zap.Any
)

type ILogger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warning(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) ILogger
}

type logger struct {
	zap *zap.Logger
}

func (l logger) Debug(msg string, fields ...Field)   { l.zap.Debug(msg, fields...) }
func (l logger) Info(msg string, fields ...Field)    { l.zap.Info(msg, fields...) }
func (l logger) Warning(msg string, fields ...Field) { l.zap.Warn(msg, fields...) }
func (l logger) Error(msg string, fields ...Field)   { l.zap.Error(msg, fields...) }

func (l logger) With(fields ...Field) ILogger {
	return logger{zap: l.zap.With(fields...)}
}

// New builds a logger tagged with namespace. level is one of debug, info,
// warn, error; anything else falls back to info.
func New(namespace, level string) ILogger {
	return logger{zap: newZapLogger(namespace, level)}
}

// Nop discards everything; handy in tests.
func Nop() ILogger {
	return logger{zap: zap.NewNop()}
}

var (
	defaultMu sync.RWMutex
	defaultL  ILogger = Nop()
)

// SetDefault replaces the process logger used by package-level helpers.
func SetDefault(l ILogger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultL = l
	defaultMu.Unlock()
}

func Default() ILogger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultL
}

func newZapLogger(namespace, level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.InitialFields = map[string]interface{}{
		"namespace": namespace,
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l
}

func parseLevel(level string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
