// Package observability owns the process-wide zap logger.
package observability

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/mstbench/internal/config"
)

var (
	globalLogger atomic.Pointer[zap.Logger]
	once         sync.Once
)

const ansiReset = "\x1b[0m"

// palette maps the color names accepted in logger.colors to ANSI codes.
var palette = map[string]string{
	"red":     "\x1b[31m",
	"green":   "\x1b[32m",
	"yellow":  "\x1b[33m",
	"blue":    "\x1b[34m",
	"magenta": "\x1b[35m",
	"cyan":    "\x1b[36m",
}

// InitializeLogger builds the global logger from cfg. Console output goes to
// stderr so stdout stays free for the comparison report. Only the first call
// has an effect.
func InitializeLogger(cfg config.LoggerConfig) {
	initializeLogger(cfg, zapcore.Lock(os.Stderr))
}

func initializeLogger(cfg config.LoggerConfig, console zapcore.WriteSyncer) {
	once.Do(func() {
		level := zap.NewAtomicLevel()
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			level.SetLevel(zap.InfoLevel)
		}

		tee := zapcore.NewTee(
			zapcore.NewCore(newEncoder(cfg.Format, cfg.Colors), console, level),
			fileCore(cfg, level),
		)
		opts := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
		if cfg.AddSource {
			opts = append(opts, zap.AddCaller())
		}

		globalLogger.Store(zap.New(tee, opts...).Named(cfg.ServiceName))
	})
}

// fileCore writes JSON lines to a rotating log file, or nowhere when no
// file is configured.
func fileCore(cfg config.LoggerConfig, level zapcore.LevelEnabler) zapcore.Core {
	if cfg.LogFile == "" {
		return zapcore.NewNopCore()
	}
	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	})

	return zapcore.NewCore(newEncoder("json", config.ColorConfig{}), sink, level)
}

// levelColors resolves the configured names once. Levels above error share
// the error color; unknown names leave the level uncolored.
func levelColors(c config.ColorConfig) map[zapcore.Level]string {
	byName := map[zapcore.Level]string{
		zapcore.DebugLevel:  c.Debug,
		zapcore.InfoLevel:   c.Info,
		zapcore.WarnLevel:   c.Warn,
		zapcore.ErrorLevel:  c.Error,
		zapcore.DPanicLevel: c.Error,
		zapcore.PanicLevel:  c.Error,
		zapcore.FatalLevel:  c.Error,
	}
	out := make(map[zapcore.Level]string, len(byName))
	for lvl, name := range byName {
		if code, ok := palette[strings.ToLower(name)]; ok {
			out[lvl] = code
		}
	}

	return out
}

func newEncoder(format string, colors config.ColorConfig) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	if format != "console" {
		return zapcore.NewJSONEncoder(ec)
	}

	codes := levelColors(colors)
	ec.EncodeLevel = func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		name := l.CapitalString()
		if code, ok := codes[l]; ok {
			name = code + name + ansiReset
		}
		enc.AppendString(name)
	}

	return zapcore.NewConsoleEncoder(ec)
}

// GetLogger returns the global logger, or a development logger named
// "fallback" before InitializeLogger has run.
func GetLogger() *zap.Logger {
	if logger := globalLogger.Load(); logger != nil {
		return logger
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}

	return l.Named("fallback")
}

// Sync flushes buffered log entries.
func Sync() {
	logger := globalLogger.Load()
	if logger == nil {
		return
	}
	if err := logger.Sync(); err != nil {
		fmt.Fprintln(os.Stderr, "Error: failed to sync logger:", err)
	}
}
