// Package logging holds the diagnostic logger. It is silent unless verbose
// output is requested, so user-facing output stays on the prompts library.
package logging

import (
	"io"
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvDebug enables verbose logging when set to a true value.
const EnvDebug = "JSKIT_DEBUG"

var (
	mu  sync.RWMutex
	log = zap.NewNop()
)

// L returns the current logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Init replaces the logger. With verbose false and EnvDebug unset the logger
// discards everything.
func Init(verbose bool) *zap.Logger {
	if !verbose {
		verbose, _ = strconv.ParseBool(os.Getenv(EnvDebug))
	}

	var l *zap.Logger
	if verbose {
		l = New(os.Stderr, zapcore.DebugLevel)
	} else {
		l = zap.NewNop()
	}

	mu.Lock()
	log = l
	mu.Unlock()

	return l
}

// New returns a console logger writing to w.
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.CallerKey = ""
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

// Sync flushes buffered entries.
func Sync() {
	_ = L().Sync()
}
