package logger

import (
	"os"
	"sync"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// PerformanceConfig tunes how much the builder-style logger emits
type PerformanceConfig struct {
	MinLogLevel     zapcore.Level `json:"min_log_level"`
	EnableSampling  bool          `json:"enable_sampling"`
	SamplingFirst   int           `json:"sampling_first"`
	SamplingAfter   int           `json:"sampling_after"`
	MaxLogPerSecond int           `json:"max_log_per_second"`
	EnableRateLimit bool          `json:"enable_rate_limit"`
}

func DefaultPerformanceConfig() PerformanceConfig {
	return PerformanceConfig{
		MinLogLevel:     zapcore.InfoLevel,
		MaxLogPerSecond: 1000,
	}
}

func ProductionConfig() PerformanceConfig {
	return PerformanceConfig{
		MinLogLevel:     zapcore.InfoLevel,
		EnableSampling:  true,
		SamplingFirst:   100,
		SamplingAfter:   10,
		MaxLogPerSecond: 500,
		EnableRateLimit: true,
	}
}

func DevelopmentConfig() PerformanceConfig {
	return PerformanceConfig{
		MinLogLevel:     zapcore.DebugLevel,
		MaxLogPerSecond: 10000,
	}
}

// OptimizedLogger drops entries below the configured level before any field is built
type OptimizedLogger struct {
	config      PerformanceConfig
	logger      *zap.Logger
	rateLimiter *RateLimiter
}

// RateLimiter caps log entries per second
type RateLimiter struct {
	maxLogs   int
	current   int
	lastReset time.Time
	mu        sync.Mutex
}

func NewRateLimiter(maxLogs int) *RateLimiter {
	return &RateLimiter{
		maxLogs:   maxLogs,
		lastReset: time.Now(),
	}
}

func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= time.Second {
		rl.current = 0
		rl.lastReset = now
	}

	if rl.current >= rl.maxLogs {
		return false
	}

	rl.current++
	return true
}

// NewOptimizedLogger builds a stdout JSON logger for the given config
func NewOptimizedLogger(config PerformanceConfig) (*OptimizedLogger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(config.MinLogLevel)
	zapConfig.OutputPaths = []string{"stdout"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	zapConfig.DisableStacktrace = true
	zapConfig.Sampling = nil

	zapLogger, err := zapConfig.Build(zap.WithCaller(false))
	if err != nil {
		return nil, err
	}

	return NewOptimizedLoggerFromZap(config, zapLogger), nil
}

// NewOptimizedLoggerFromZap wraps an existing zap logger
func NewOptimizedLoggerFromZap(config PerformanceConfig, zapLogger *zap.Logger) *OptimizedLogger {
	if config.EnableSampling {
		zapLogger = zapLogger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewSamplerWithOptions(core, time.Second, config.SamplingFirst, config.SamplingAfter)
		}))
	}

	return &OptimizedLogger{
		config:      config,
		logger:      zapLogger,
		rateLimiter: NewRateLimiter(config.MaxLogPerSecond),
	}
}

// ShouldLog reports whether an entry at level passes the level and rate checks
func (ol *OptimizedLogger) ShouldLog(level zapcore.Level) bool {
	if level < ol.config.MinLogLevel {
		return false
	}

	if ol.config.EnableRateLimit && !ol.rateLimiter.Allow() {
		return false
	}

	return true
}

var (
	optimizedLogger *OptimizedLogger
	optimizedMu     sync.RWMutex
)

// SetOptimizedLogger replaces the global builder logger
func SetOptimizedLogger(l *OptimizedLogger) {
	optimizedMu.Lock()
	optimizedLogger = l
	optimizedMu.Unlock()
}

// GetOptimizedLogger returns the global builder logger, creating a stdout one on first use
func GetOptimizedLogger() *OptimizedLogger {
	optimizedMu.RLock()
	l := optimizedLogger
	optimizedMu.RUnlock()
	if l != nil {
		return l
	}

	optimizedMu.Lock()
	defer optimizedMu.Unlock()
	if optimizedLogger != nil {
		return optimizedLogger
	}

	config := DefaultPerformanceConfig()
	switch os.Getenv("APP_ENV") {
	case constants.EnvProduction:
		config = ProductionConfig()
	case constants.EnvDevelopment, "":
		config = DevelopmentConfig()
	}

	created, err := NewOptimizedLogger(config)
	if err != nil {
		created = NewOptimizedLoggerFromZap(config, zap.NewNop())
	}
	optimizedLogger = created
	return optimizedLogger
}
