package middleware

import (
	"net/http"
	"strings"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	apperrors "github.com/Payphone-Digital/transportadora/internal/errors"
	"github.com/Payphone-Digital/transportadora/internal/service"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"github.com/gin-gonic/gin"
)

type JWTMiddleware struct {
	jwtService *service.JWTService
}

func NewJWTMiddleware(jwtService *service.JWTService) *JWTMiddleware {
	return &JWTMiddleware{jwtService: jwtService}
}

// RequireAuth only checks the token itself. Accounts deactivated after
// issuance keep access until the token expires.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ctxutil.WithFunction(c.Request.Context(), "middleware", "RequireAuth")

		token, ok := BearerToken(c.GetHeader(constants.HeaderAuthorization))
		if !ok {
			logger.WarnWithContext(ctx, "Missing or malformed authorization header").
				Method(c.Request.Method).
				Path(c.Request.URL.Path).
				Log()
			abortWithError(c, apperrors.ToHTTPStatus(apperrors.ErrAuthenticationRequired), apperrors.ErrAuthenticationRequired)
			return
		}

		claims, err := m.jwtService.Validate(token)
		if err != nil {
			logger.WarnWithContext(ctx, "Rejected access token").
				Path(c.Request.URL.Path).
				Err(err).
				Log()
			// the gate answers 403 where /auth/verify answers 401
			abortWithError(c, http.StatusForbidden, err)
			return
		}

		c.Set(constants.GinKeyClaims, claims)
		c.Request = c.Request.WithContext(ctxutil.WithUserID(c.Request.Context(), claims.UserID))

		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by RequireAuth
func ClaimsFromContext(c *gin.Context) (*service.Claims, bool) {
	value, exists := c.Get(constants.GinKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*service.Claims)
	return claims, ok
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, constants.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
