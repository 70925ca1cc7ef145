package router

import (
	"github.com/Payphone-Digital/transportadora/internal/dto"
	"github.com/gin-gonic/gin"
)

func (r *Router) authRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		// Public routes (no authentication required)
		auth.POST("/login",
			r.validMw.ValidateRequestBody(func() interface{} { return &dto.LoginRequest{} }),
			r.handlers.Auth.Login,
		)
		auth.POST("/register",
			r.validMw.ValidateRequestBody(func() interface{} { return &dto.RegisterRequest{} }),
			r.handlers.Auth.Register,
		)

		// Checks the bearer token itself, so it sits outside the access gate
		auth.GET("/verify", r.handlers.Auth.Verify)
	}
}
