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

type MotoristaHandler struct {
	motoristaService *service.MotoristaService
}

func NewMotoristaHandler(motoristaService *service.MotoristaService) *MotoristaHandler {
	return &MotoristaHandler{motoristaService: motoristaService}
}

func (h *MotoristaHandler) List(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "ListMotoristas")

	motoristas, err := h.motoristaService.List(ctx)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(motoristas, len(motoristas)))
}

func (h *MotoristaHandler) Get(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "GetMotorista")

	id, ok := parseID(c)
	if !ok {
		return
	}

	motorista, err := h.motoristaService.Get(ctx, id)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, motorista)
}

func (h *MotoristaHandler) Create(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "CreateMotorista")

	req, ok := middleware.ValidatedBody[dto.MotoristaRequest](c)
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidJSON, nil))
		return
	}

	motorista, err := h.motoristaService.Create(ctx, req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusCreated, motorista)
}

func (h *MotoristaHandler) Update(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "UpdateMotorista")

	id, ok := parseID(c)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.MotoristaRequest](c)
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidJSON, nil))
		return
	}

	motorista, err := h.motoristaService.Update(ctx, id, req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, motorista)
}

func (h *MotoristaHandler) Delete(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "DeleteMotorista")

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.motoristaService.Delete(ctx, id); err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(constants.MsgDeleted))
}
