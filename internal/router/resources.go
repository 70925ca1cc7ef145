package router

import (
	"github.com/Payphone-Digital/transportadora/internal/dto"
	"github.com/gin-gonic/gin"
)

func (r *Router) tarefaRoutes(rg *gin.RouterGroup) {
	body := r.validMw.ValidateRequestBody(func() interface{} { return &dto.TarefaRequest{} })

	tarefas := rg.Group("/tarefas")
	{
		tarefas.GET("", r.handlers.Tarefa.List)
		tarefas.GET("/:id", r.handlers.Tarefa.Get)
		tarefas.POST("", body, r.handlers.Tarefa.Create)
		tarefas.PUT("/:id", body, r.handlers.Tarefa.Update)
		tarefas.PATCH("/:id/status",
			r.validMw.ValidateRequestBody(func() interface{} { return &dto.TarefaStatusRequest{} }),
			r.handlers.Tarefa.UpdateStatus,
		)
		tarefas.DELETE("/:id", r.handlers.Tarefa.Delete)
	}
}

func (r *Router) motoristaRoutes(rg *gin.RouterGroup) {
	body := r.validMw.ValidateRequestBody(func() interface{} { return &dto.MotoristaRequest{} })

	motoristas := rg.Group("/motoristas")
	{
		motoristas.GET("", r.handlers.Motorista.List)
		motoristas.GET("/:id", r.handlers.Motorista.Get)
		motoristas.POST("", body, r.handlers.Motorista.Create)
		motoristas.PUT("/:id", body, r.handlers.Motorista.Update)
		motoristas.DELETE("/:id", r.handlers.Motorista.Delete)
	}
}

func (r *Router) caminhaoRoutes(rg *gin.RouterGroup) {
	body := r.validMw.ValidateRequestBody(func() interface{} { return &dto.CaminhaoRequest{} })

	caminhoes := rg.Group("/caminhoes")
	{
		caminhoes.GET("", r.handlers.Caminhao.List)
		caminhoes.GET("/:id", r.handlers.Caminhao.Get)
		caminhoes.POST("", body, r.handlers.Caminhao.Create)
		caminhoes.PUT("/:id", body, r.handlers.Caminhao.Update)
		caminhoes.DELETE("/:id", r.handlers.Caminhao.Delete)
	}
}

func (r *Router) estatisticaRoutes(rg *gin.RouterGroup) {
	rg.GET("/estatisticas", r.handlers.Estatistica.Get)
}

func (r *Router) usuarioRoutes(rg *gin.RouterGroup) {
	usuarios := rg.Group("/usuarios")
	{
		usuarios.GET("/me", r.handlers.Usuario.Me)
	}
}
