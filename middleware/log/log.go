// Package log wraps zap with a process-global logger so that library code
// can emit structured logs without threading a logger through every call.
package log

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig configures rotated file output.
type FileConfig struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Config configures the global logger.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// Stdout enables console output. Defaults to true when no file is set.
	Stdout bool
	// File enables rotated file output when Filename is non-empty.
	File FileConfig
}

type ctxLogKey struct{}

var (
	mu     sync.RWMutex
	global = newDefaultLogger()
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func newDefaultLogger() *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

// Init replaces the global logger according to cfg.
// Safe to call more than once; the last call wins.
func Init(cfg *Config) error {
	lv := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := lv.Set(cfg.Level); err != nil {
			return err
		}
	}

	var syncers []zapcore.WriteSyncer
	if cfg.File.Filename != "" {
		syncers = append(syncers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File.Filename,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
		}))
	}
	if cfg.Stdout || len(syncers) == 0 {
		syncers = append(syncers, zapcore.Lock(os.Stdout))
	}

	mu.Lock()
	defer mu.Unlock()
	level.SetLevel(lv)
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.NewMultiWriteSyncer(syncers...),
		level,
	)
	global = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return nil
}

// L returns the global logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// SetLevel changes the level of the global logger at runtime.
func SetLevel(lv zapcore.Level) {
	level.SetLevel(lv)
}

// WithContext stores a logger in ctx, to be retrieved by Ctx.
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxLogKey{}, logger)
}

// Ctx returns the logger stored in ctx by WithContext, or the global one.
func Ctx(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxLogKey{}).(*zap.Logger); ok {
			return logger
		}
	}
	return L()
}

// With creates a child of the global logger with the given fields attached.
func With(fields ...zap.Field) *zap.Logger {
	return L().WithOptions(zap.AddCallerSkip(-1)).With(fields...)
}

func Debug(msg string, fields ...zap.Field) { L().Debug(msg, fields...) }

func Info(msg string, fields ...zap.Field) { L().Info(msg, fields...) }

func Warn(msg string, fields ...zap.Field) { L().Warn(msg, fields...) }

func Error(msg string, fields ...zap.Field) { L().Error(msg, fields...) }

func Panic(msg string, fields ...zap.Field) { L().Panic(msg, fields...) }

func Fatal(msg string, fields ...zap.Field) { L().Fatal(msg, fields...) }
