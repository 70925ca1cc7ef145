package handler

import (
	"errors"
	"net/http"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	"github.com/Payphone-Digital/transportadora/internal/dto"
	apperrors "github.com/Payphone-Digital/transportadora/internal/errors"
	"github.com/Payphone-Digital/transportadora/internal/middleware"
	"github.com/Payphone-Digital/transportadora/internal/service"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login expects a body validated by the validation middleware
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "Login")

	req, ok := middleware.ValidatedBody[dto.LoginRequest](c)
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidJSON, nil))
		return
	}

	response, err := h.authService.Login(ctx, req)
	if err != nil {
		logger.LogAuth(req.Email, "login", false)
		respondError(c, ctx, err)
		return
	}

	logger.LogAuth(req.Email, "login", true)

	response.Message = constants.MsgLoginSuccess
	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Register(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "Register")

	req, ok := middleware.ValidatedBody[dto.RegisterRequest](c)
	if !ok {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidJSON, nil))
		return
	}

	response, err := h.authService.Register(ctx, req)
	if err != nil {
		logger.LogAuth(req.Email, "register", false)
		respondError(c, ctx, err)
		return
	}

	logger.LogAuth(req.Email, "register", true)

	response.Message = constants.MsgRegisterSuccess
	c.JSON(http.StatusCreated, response)
}

// Verify is the soft check: every failure is 401, and the account must still be active
func (h *AuthHandler) Verify(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), "handler", "Verify")

	token, ok := middleware.BearerToken(c.GetHeader(constants.HeaderAuthorization))
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgTokenMissing, nil))
		return
	}

	response, err := h.authService.Verify(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidToken):
			logger.InfoWithContext(ctx, "Verify rejected token").
				Err(err).
				Log()
			c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgTokenInvalid, nil))
		case errors.Is(err, apperrors.ErrInactiveUser):
			c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUserInactive, nil))
		default:
			respondError(c, ctx, err)
		}
		return
	}

	c.JSON(http.StatusOK, response)
}
