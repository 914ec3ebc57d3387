package logging

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	sugar = zap.NewNop().Sugar()
)

var levels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// Level maps a level name to a zap level. Unknown names fall back to info.
func Level(name string) zapcore.Level {
	if lvl, ok := levels[name]; ok {
		return lvl
	}
	return zapcore.InfoLevel
}

// Options describes how the process logger is built.
type Options struct {
	Level   string
	Dev     bool
	Console bool
	Output  io.Writer
}

// Init builds the process logger and installs it.
func Init(opts Options) *zap.Logger {
	var encoderCfg zapcore.EncoderConfig
	if opts.Dev {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderCfg = zap.NewProductionEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if opts.Console {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(out), zap.NewAtomicLevelAt(Level(opts.Level)))
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	Use(logger)
	return logger
}

// Use installs logger as the package logger and returns a func restoring the previous one.
func Use(logger *zap.Logger) (restore func()) {
	mu.Lock()
	prev := sugar
	sugar = logger.Sugar()
	mu.Unlock()
	return func() {
		mu.Lock()
		sugar = prev
		mu.Unlock()
	}
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Debugf logs a formatted debug message.
func Debugf(format string, v ...any) {
	current().Debugf(format, v...)
}

// Infof logs a formatted info message.
func Infof(format string, v ...any) {
	current().Infof(format, v...)
}

// Warnf logs a formatted warning.
func Warnf(format string, v ...any) {
	current().Warnf(format, v...)
}

// Errorf logs a formatted error.
func Errorf(format string, v ...any) {
	current().Errorf(format, v...)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = current().Sync()
}
