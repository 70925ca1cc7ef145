package middleware

import (
	"github.com/Payphone-Digital/transportadora/internal/constants"
	apperrors "github.com/Payphone-Digital/transportadora/internal/errors"
	"github.com/gin-gonic/gin"
)

// abortWithError stops the chain with the standard error body for err
func abortWithError(c *gin.Context, status int, err error) {
	body := constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil)
	if domainErr := apperrors.GetDomainError(err); domainErr != nil && domainErr.Details != nil {
		body[constants.ResponseFieldDetails] = domainErr.Details
	}
	c.AbortWithStatusJSON(status, body)
}
