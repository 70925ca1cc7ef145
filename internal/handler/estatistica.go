package handler

import (
	"net/http"

	"github.com/Payphone-Digital/transportadora/internal/service"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/gin-gonic/gin"
)

type EstatisticaHandler struct {
	estatisticaService *service.EstatisticaService
}

func NewEstatisticaHandler(estatisticaService *service.EstatisticaService) *EstatisticaHandler {
	return &EstatisticaHandler{estatisticaService: estatisticaService}
}

func (h *EstatisticaHandler) Get(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "GetEstatisticas")

	stats, err := h.estatisticaService.Get(ctx)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
