package handler

import (
	"net/http"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	"github.com/Payphone-Digital/transportadora/internal/dto"
	"github.com/Payphone-Digital/transportadora/internal/middleware"
	"github.com/Payphone-Digital/transportadora/internal/service"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/gin-gonic/gin"
)

type TarefaHandler struct {
	tarefaService *service.TarefaService
}

func NewTarefaHandler(tarefaService *service.TarefaService) *TarefaHandler {
	return &TarefaHandler{tarefaService: tarefaService}
}

func (h *TarefaHandler) List(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "ListTarefas")

	tarefas, err := h.tarefaService.List(ctx)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(tarefas, len(tarefas)))
}

func (h *TarefaHandler) Get(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "GetTarefa")

	id, ok := parseID(c)
	if !ok {
		return
	}

	tarefa, err := h.tarefaService.Get(ctx, id)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, tarefa)
}

func (h *TarefaHandler) Create(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "CreateTarefa")

	req, ok := middleware.ValidatedBody[dto.TarefaRequest](c)
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidJSON, nil))
		return
	}

	tarefa, err := h.tarefaService.Create(ctx, req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusCreated, tarefa)
}

func (h *TarefaHandler) Update(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "UpdateTarefa")

	id, ok := parseID(c)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.TarefaRequest](c)
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidJSON, nil))
		return
	}

	tarefa, err := h.tarefaService.Update(ctx, id, req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, tarefa)
}

func (h *TarefaHandler) UpdateStatus(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "UpdateTarefaStatus")

	id, ok := parseID(c)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.TarefaStatusRequest](c)
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidJSON, nil))
		return
	}

	tarefa, err := h.tarefaService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, tarefa)
}

func (h *TarefaHandler) Delete(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "DeleteTarefa")

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.tarefaService.Delete(ctx, id); err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(constants.MsgDeleted))
}
