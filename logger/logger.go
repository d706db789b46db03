// Package logger is the process-wide structured log. The terminal belongs
// to the display, so logs only ever go to a rotating file, and nowhere at
// all until InitLogger is called with an OutputPath.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	globalLogger = zap.NewNop()
	helperLogger = globalLogger // used by the helpers below, skips their frame
	once         sync.Once
)

// LogLevel names a minimum level.
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Config describes the log file and its rotation.
type Config struct {
	Level      LogLevel
	OutputPath string // empty disables logging
	MaxSize    int    // megabytes before rotating
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(l LogLevel) (zapcore.Level, error) {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel, nil
	case InfoLevel, "":
		return zapcore.InfoLevel, nil
	case WarnLevel:
		return zapcore.WarnLevel, nil
	case ErrorLevel:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logger: unknown level %q", string(l))
	}
}

// New builds a JSON file logger from config without touching the global.
func New(config Config) (*zap.Logger, error) {
	if config.OutputPath == "" {
		return zap.NewNop(), nil
	}
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(config.OutputPath), 0o755); err != nil {
		return nil, err
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   config.OutputPath,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	})
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// InitLogger installs the global logger. Only the first call has any
// effect.
func InitLogger(config Config) (err error) {
	once.Do(func() {
		var l *zap.Logger
		l, err = New(config)
		if err == nil {
			globalLogger = l
			helperLogger = l.WithOptions(zap.AddCallerSkip(1))
		}
	})
	return err
}

// L returns the global logger.
func L() *zap.Logger {
	return globalLogger
}

func Debug(msg string, fields ...zap.Field) {
	helperLogger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	helperLogger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	helperLogger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	helperLogger.Error(msg, fields...)
}

// Sync flushes buffered entries.
func Sync() error {
	return globalLogger.Sync()
}
