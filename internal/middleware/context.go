package middleware

import (
	"context"
	"time"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	ctxutil "github.com/Payphone-Digital/transportadora/pkg/context"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextMiddleware tags the request context with request metadata and
// bounds it with timeout when timeout is positive
func ContextMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(constants.HeaderXRequestID, requestID)

		ctx := ctxutil.NewRequestContext(c.Request.Context(), c.Request, c.ClientIP())
		ctx = ctxutil.WithRequestID(ctx, requestID)

		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		c.Request = c.Request.WithContext(ctx)

		logger.DebugWithContext(ctx, "Request started").
			Method(c.Request.Method).
			Path(c.Request.URL.Path).
			String("query", c.Request.URL.RawQuery).
			String("user_agent", ctxutil.GetUserAgent(ctx)).
			Log()

		c.Next()

		logger.InfoWithContext(ctx, "Request completed").
			Method(c.Request.Method).
			Path(c.Request.URL.Path).
			StatusCode(c.Writer.Status()).
			Int("response_size", c.Writer.Size()).
			Duration(ctxutil.GetDuration(ctx)).
			Log()
	}
}
