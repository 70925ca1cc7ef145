package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	apperrors "github.com/Payphone-Digital/transportadora/internal/errors"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"github.com/gin-gonic/gin"
)

// respondError writes the standard error body for err. Raw causes only
// reach the client outside release mode.
func respondError(c *gin.Context, ctx context.Context, err error) {
	status := apperrors.ToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorWithContext(ctx, "Request failed").
			Method(c.Request.Method).
			Path(c.Request.URL.Path).
			StatusCode(status).
			Err(err).
			Log()
	}

	exposeInternal := gin.Mode() != gin.ReleaseMode
	c.JSON(status, constants.BuildErrorResponse(
		apperrors.GetErrorMessage(err),
		apperrors.GetErrorDetails(err, exposeInternal),
	))
}

// parseID reads the :id path parameter, answering 400 when it is not a positive integer
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidID, nil))
		return 0, false
	}
	return uint(id), true
}
