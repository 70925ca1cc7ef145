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

type CaminhaoHandler struct {
	caminhaoService *service.CaminhaoService
}

func NewCaminhaoHandler(caminhaoService *service.CaminhaoService) *CaminhaoHandler {
	return &CaminhaoHandler{caminhaoService: caminhaoService}
}

func (h *CaminhaoHandler) List(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "ListCaminhoes")

	caminhoes, err := h.caminhaoService.List(ctx)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(caminhoes, len(caminhoes)))
}

func (h *CaminhaoHandler) Get(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "GetCaminhao")

	id, ok := parseID(c)
	if !ok {
		return
	}

	caminhao, err := h.caminhaoService.Get(ctx, id)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, caminhao)
}

func (h *CaminhaoHandler) Create(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "CreateCaminhao")

	req, ok := middleware.ValidatedBody[dto.CaminhaoRequest](c)
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidJSON, nil))
		return
	}

	caminhao, err := h.caminhaoService.Create(ctx, req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusCreated, caminhao)
}

func (h *CaminhaoHandler) Update(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "UpdateCaminhao")

	id, ok := parseID(c)
	if !ok {
		return
	}

	req, ok := middleware.ValidatedBody[dto.CaminhaoRequest](c)
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidJSON, nil))
		return
	}

	caminhao, err := h.caminhaoService.Update(ctx, id, req)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, caminhao)
}

func (h *CaminhaoHandler) Delete(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "DeleteCaminhao")

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.caminhaoService.Delete(ctx, id); err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse(constants.MsgDeleted))
}
