package handler

import (
	"net/http"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	"github.com/Payphone-Digital/transportadora/internal/middleware"
	"github.com/Payphone-Digital/transportadora/internal/service"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/gin-gonic/gin"
)

type UsuarioHandler struct {
	authService *service.AuthService
}

func NewUsuarioHandler(authService *service.AuthService) *UsuarioHandler {
	return &UsuarioHandler{authService: authService}
}

// Me returns the profile of the caller identified by the access gate
func (h *UsuarioHandler) Me(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "Me")

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgTokenRequired, nil))
		return
	}

	profile, err := h.authService.Profile(ctx, claims.UserID)
	if err != nil {
		respondError(c, ctx, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
