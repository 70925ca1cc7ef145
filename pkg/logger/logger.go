package logger

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Payphone-Digital/transportadora/config"
	"github.com/Payphone-Digital/transportadora/internal/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger *zap.Logger
	Sugar  *zap.SugaredLogger
)

// InitLogger initializes the Zap logger and the context-aware builder from config
func InitLogger(cfg *config.Config) error {
	var err error

	logsPath := cfg.App.LogsPath
	if logsPath == "" {
		logsPath = "./logs"
	}
	if err = os.MkdirAll(logsPath, 0755); err != nil {
		return err
	}

	zapLevel := ParseLevel(cfg.App.LogLevel, cfg.App.Environment)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	infoFile, err := os.OpenFile(filepath.Join(logsPath, "info.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	errorFile, err := os.OpenFile(filepath.Join(logsPath, "error.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		infoFile.Close()
		return err
	}

	infoCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(zapcore.AddSync(infoFile), zapcore.AddSync(os.Stdout)),
		zapLevel,
	)

	// errors go to their own file as well as stderr
	errorCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(zapcore.AddSync(errorFile), zapcore.AddSync(os.Stderr)),
		zapcore.ErrorLevel,
	)

	core := zapcore.NewTee(infoCore, errorCore)

	Logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	Sugar = Logger.Sugar()

	perf := DevelopmentConfig()
	if cfg.App.Environment == constants.EnvProduction {
		perf = ProductionConfig()
	}
	perf.MinLogLevel = zapLevel
	SetOptimizedLogger(NewOptimizedLoggerFromZap(perf, zap.New(core)))

	return nil
}

// ParseLevel maps LOG_LEVEL to a zap level. An empty or unknown value falls
// back to info in production and debug elsewhere.
func ParseLevel(level, environment string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case constants.LogLevelDebug:
		return zapcore.DebugLevel
	case constants.LogLevelInfo:
		return zapcore.InfoLevel
	case constants.LogLevelWarn:
		return zapcore.WarnLevel
	case constants.LogLevelError:
		return zapcore.ErrorLevel
	}

	if environment == constants.EnvProduction {
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

// GetLogger returns the structured logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger
}

// Sync flushes buffered logs, call before the process exits
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// LogRequest logs HTTP request information
func LogRequest(method, path string, statusCode int, duration int64, clientIP string, userAgent string) {
	GetLogger().Info("HTTP Request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", statusCode),
		zap.Int64("duration_ms", duration),
		zap.String("client_ip", clientIP),
		zap.String("user_agent", userAgent),
	)
}

// LogPanic logs a recovered panic with its stack
func LogPanic(recovered interface{}) {
	GetLogger().Error("Panic recovered",
		zap.Any("panic", recovered),
		zap.Stack("stack"),
	)
}

// LogAuth logs authentication events
func LogAuth(email, action string, success bool, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("email", email),
		zap.String("action", action),
		zap.Bool("success", success),
	}, fields...)

	if success {
		GetLogger().Info("Authentication success", allFields...)
	} else {
		GetLogger().Warn("Authentication failure", allFields...)
	}
}
