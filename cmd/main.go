package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	configs "github.com/Payphone-Digital/transportadora/config"
	"github.com/Payphone-Digital/transportadora/internal/constants"
	"github.com/Payphone-Digital/transportadora/internal/handler"
	"github.com/Payphone-Digital/transportadora/internal/middleware"
	"github.com/Payphone-Digital/transportadora/internal/repository"
	"github.com/Payphone-Digital/transportadora/internal/router"
	"github.com/Payphone-Digital/transportadora/internal/service"
	"github.com/Payphone-Digital/transportadora/pkg/cache"
	"github.com/Payphone-Digital/transportadora/pkg/circuit"
	"github.com/Payphone-Digital/transportadora/pkg/database"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"github.com/Payphone-Digital/transportadora/pkg/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := logger.InitLogger(config); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
		zap.String("version", constants.AppVersion),
	)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if config.UsesDefaultSecret() {
		if config.IsProduction() {
			logger.GetLogger().Error("JWT_SECRET is not set, tokens are signed with the development secret")
		} else {
			logger.GetLogger().Warn("JWT_SECRET is not set, using the development secret")
		}
	}

	db, err := database.NewPostgresDB(config)
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.CloseDB(db); err != nil {
			logger.GetLogger().Error("Failed to close database", zap.Error(err))
		}
	}()

	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}

	if config.Database.Seed {
		if err := database.Seed(context.Background(), db); err != nil {
			logger.GetLogger().Error("Failed to seed database", zap.Error(err))
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tarefaRepo := repository.NewTarefaRepository(db)
	motoristaRepo := repository.NewMotoristaRepository(db)
	caminhaoRepo := repository.NewCaminhaoRepository(db)
	estatisticaRepo := repository.NewEstatisticaRepository(db)

	redisClient, err := redis.NewClient(config)
	if err != nil {
		logger.GetLogger().Warn("Redis unavailable, statistics cache falls back to memory", zap.Error(err))
		redisClient = &redis.Client{}
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.GetLogger().Error("Failed to close Redis client", zap.Error(err))
		}
	}()

	localCache := cache.NewCache()
	defer localCache.Stop()

	redisBreaker := circuit.NewBreaker("redis", circuit.DefaultConfig(), logger.GetLogger())

	// Services
	jwtService := service.NewJWTService(config.JWT.Secret, config.JWT.ExpirationTime)
	authService := service.NewAuthService(userRepo, service.NewPasswordHasher(constants.PasswordHashCost), jwtService)
	statsCache := service.NewStatsCache(redisClient, redisBreaker, localCache, config.Cache.StatsTTL)
	tarefaService := service.NewTarefaService(tarefaRepo, motoristaRepo, caminhaoRepo, statsCache)
	motoristaService := service.NewMotoristaService(motoristaRepo, statsCache)
	caminhaoService := service.NewCaminhaoService(caminhaoRepo, statsCache)
	estatisticaService := service.NewEstatisticaService(estatisticaRepo, statsCache)

	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Usuario:     handler.NewUsuarioHandler(authService),
		Tarefa:      handler.NewTarefaHandler(tarefaService),
		Motorista:   handler.NewMotoristaHandler(motoristaService),
		Caminhao:    handler.NewCaminhaoHandler(caminhaoService),
		Estatistica: handler.NewEstatisticaHandler(estatisticaService),
		Health:      handler.NewHealthHandler(db, redisClient, redisBreaker),
	}

	r := router.NewRouter(
		handlers,
		middleware.NewValidationMiddleware(),
		middleware.NewJWTMiddleware(jwtService),
		config,
	).SetupRoutes()

	srv := &http.Server{
		Addr:              ":" + config.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
			zap.String("host", "0.0.0.0"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.GetLogger().Error("Server forced to shutdown", zap.Error(err))
	}

	logger.GetLogger().Info("Server stopped")
}
