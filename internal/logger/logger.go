// internal/logger/logger.go
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// fallback молчит до Init, но DPanic в нём паникует, как в development.
var fallback = zap.New(zapcore.NewNopCore(), zap.Development())

var l = fallback

// Init builds the process logger from the logger.* keys of config.
// Until Init (or Set) is called entries are dropped.
func Init(name string, config *viper.Viper) error {
	logger, err := newLogger(name, config)
	if err != nil {
		return err
	}
	l = logger
	l.Info("initialize logger", zap.String("name", name))
	return nil
}

// Set replaces the process logger; nil restores the silent fallback.
// Tests use it with zaptest/observer.
func Set(logger *zap.Logger) {
	if logger == nil {
		logger = fallback
	}
	l = logger
}

// Sync flushes buffered entries.
func Sync() {
	_ = l.Sync()
}

// Debug logger
func Debug(msg string, fields ...zapcore.Field) {
	l.Debug(msg, fields...)
}

// Info logger
func Info(msg string, fields ...zapcore.Field) {
	l.Info(msg, fields...)
}

// Warn logger
func Warn(msg string, fields ...zapcore.Field) {
	l.Warn(msg, fields...)
}

// Error logger
func Error(msg string, fields ...zapcore.Field) {
	l.Error(msg, fields...)
}

// DPanic logs at DPanic level: panics in development mode, logs otherwise.
func DPanic(msg string, fields ...zapcore.Field) {
	l.DPanic(msg, fields...)
}

// Fatal logger, log message then call os.Exit(1).
func Fatal(msg string, fields ...zapcore.Field) {
	l.Fatal(msg, fields...)
}

// Infof logger
func Infof(format string, args ...interface{}) {
	l.Sugar().Infof(format, args...)
}

// Warnf logger
func Warnf(format string, args ...interface{}) {
	l.Sugar().Warnf(format, args...)
}

// Errorf logger
func Errorf(format string, args ...interface{}) {
	l.Sugar().Errorf(format, args...)
}

// ParseLevel maps a config string to a zap level; unknown strings give info.
func ParseLevel(level string) (zapcore.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, true
	case "info", "":
		return zapcore.InfoLevel, true
	case "warn":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	}
	return zapcore.InfoLevel, false
}

func newLogger(name string, config *viper.Viper) (*zap.Logger, error) {
	level, ok := ParseLevel(config.GetString("logger.level"))
	if !ok {
		fmt.Println("Logger level invalid, must be one of: DEBUG, INFO, WARN, or ERROR")
	}

	options := []zap.Option{zap.AddStacktrace(zap.ErrorLevel), zap.AddCaller(), zap.AddCallerSkip(1)}
	if config.GetBool("logger.development") {
		options = append(options, zap.Development())
	}

	cores := make([]zapcore.Core, 0, 2)
	if config.GetBool("logger.stdout") {
		cores = append(cores, zapcore.NewCore(newJSONEncoder(), zapcore.Lock(os.Stdout), level))
	}

	fileDir := config.GetString("logger.dir")
	if fileDir != "" {
		// {dir}{name}.log
		file := filepath.Join(fileDir, name+".log")
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return nil, fmt.Errorf("could not create log directory: %w", err)
		}
		ws, err := fileSyncer(config, file)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(newJSONEncoder(), ws, level))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	logger := zap.New(zapcore.NewTee(cores...), options...)
	zap.RedirectStdLog(logger)
	return logger, nil
}

func fileSyncer(config *viper.Viper, file string) (zapcore.WriteSyncer, error) {
	if config.GetBool("logger.rotation") {
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    config.GetInt("logger.maxsize"),
			MaxAge:     config.GetInt("logger.maxage"),
			MaxBackups: config.GetInt("logger.maxbackups"),
			LocalTime:  true,
		}), nil
	}
	output, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("could not create log file: %w", err)
	}
	return zapcore.Lock(output), nil
}

func newJSONEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	})
}
