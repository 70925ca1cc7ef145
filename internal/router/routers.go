package router

import (
	"github.com/Payphone-Digital/transportadora/config"
	"github.com/Payphone-Digital/transportadora/internal/handler"
	"github.com/Payphone-Digital/transportadora/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Auth        *handler.AuthHandler
	Usuario     *handler.UsuarioHandler
	Tarefa      *handler.TarefaHandler
	Motorista   *handler.MotoristaHandler
	Caminhao    *handler.CaminhaoHandler
	Estatistica *handler.EstatisticaHandler
	Health      *handler.HealthHandler
}

type Router struct {
	handlers Handlers

	validMw *middleware.ValidationMiddleware
	jwtMw   *middleware.JWTMiddleware
	Config  *config.Config
}

func NewRouter(
	handlers Handlers,
	validMw *middleware.ValidationMiddleware,
	jwtMw *middleware.JWTMiddleware,
	config *config.Config,
) *Router {
	return &Router{
		handlers: handlers,
		validMw:  validMw,
		jwtMw:    jwtMw,
		Config:   config,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.ContextMiddleware(r.Config.App.Timeout))
	router.Use(middleware.CORS())

	router.GET("/health", r.handlers.Health.HealthCheck)

	r.authRoutes(&router.RouterGroup)

	protected := router.Group("")
	protected.Use(r.jwtMw.RequireAuth())
	{
		r.tarefaRoutes(protected)
		r.motoristaRoutes(protected)
		r.caminhaoRoutes(protected)
		r.estatisticaRoutes(protected)
		r.usuarioRoutes(protected)
	}

	return router
}
