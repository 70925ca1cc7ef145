package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	"github.com/Payphone-Digital/transportadora/pkg/circuit"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDisabled  = "disabled"
)

// RedisPinger is the part of the Redis client the health check needs
type RedisPinger interface {
	IsEnabled() bool
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db          *gorm.DB
	redisClient RedisPinger
	breaker     *circuit.Breaker
}

type HealthCheckResponse struct {
	Service   string                 `json:"service"`
	Status    string                 `json:"status"`
	Version   string                 `json:"version"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]HealthCheck `json:"checks"`
}

type HealthCheck struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Circuit *circuit.Snapshot `json:"circuit,omitempty"`
}

func NewHealthHandler(db *gorm.DB, redisClient RedisPinger, breaker *circuit.Breaker) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
		breaker:     breaker,
	}
}

// HealthCheck answers 503 only when the database is unreachable. Redis is optional.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := HealthCheckResponse{
		Service:   constants.AppName,
		Status:    statusHealthy,
		Version:   constants.AppVersion,
		Timestamp: time.Now(),
		Checks:    make(map[string]HealthCheck),
	}

	dbStatus := h.checkDatabase(ctx)
	response.Checks["database"] = dbStatus
	if dbStatus.Status != statusHealthy {
		response.Status = statusUnhealthy
	}

	response.Checks["redis"] = h.checkRedis(ctx)

	statusCode := http.StatusOK
	if response.Status == statusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	logger.GetLogger().Debug("Health check performed",
		zap.String("overall_status", response.Status),
		zap.Int("status_code", statusCode),
	)

	c.JSON(statusCode, response)
}

func (h *HealthHandler) checkDatabase(ctx context.Context) HealthCheck {
	if h.db == nil {
		return HealthCheck{
			Status:  statusUnhealthy,
			Message: "Database connection not initialized",
		}
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		logger.GetLogger().Error("Failed to get DB instance for health check", zap.Error(err))
		return HealthCheck{
			Status:  statusUnhealthy,
			Message: "Failed to get database instance",
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		logger.GetLogger().Error("Database ping failed", zap.Error(err))
		return HealthCheck{
			Status:  statusUnhealthy,
			Message: "Database ping failed",
		}
	}

	stats := sqlDB.Stats()
	return HealthCheck{
		Status:  statusHealthy,
		Message: fmt.Sprintf("open: %d, idle: %d", stats.OpenConnections, stats.Idle),
	}
}

func (h *HealthHandler) checkRedis(ctx context.Context) HealthCheck {
	if h.redisClient == nil || !h.redisClient.IsEnabled() {
		return HealthCheck{
			Status:  statusDisabled,
			Message: "Redis cache is disabled, using in-memory cache",
		}
	}

	check := HealthCheck{Status: statusHealthy}
	if h.breaker != nil {
		snapshot := h.breaker.Snapshot()
		check.Circuit = &snapshot
	}

	if err := h.redisClient.Ping(ctx); err != nil {
		logger.GetLogger().Warn("Redis ping failed", zap.Error(err))
		check.Status = statusUnhealthy
		check.Message = "Redis ping failed, serving from in-memory cache"
		return check
	}

	if h.breaker != nil && h.breaker.IsOpen() {
		check.Message = "Redis reachable, circuit open until the next probe"
	}

	return check
}
