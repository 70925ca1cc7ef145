package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/Payphone-Digital/transportadora/internal/constants"
	"github.com/Payphone-Digital/transportadora/internal/dto"
	apperrors "github.com/Payphone-Digital/transportadora/internal/errors"
	"github.com/Payphone-Digital/transportadora/pkg/logger"
	"github.com/Payphone-Digital/transportadora/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ValidationMiddleware struct {
	validate *validator.Validate
}

func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{validate: validation.New()}
}

// ValidateRequestBody decodes the body into factory(), normalizes and
// validates it, then stores it under constants.GinKeyValidatedBody
func (m *ValidationMiddleware) ValidateRequestBody(factory func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		var bodyBytes []byte
		if c.Request.Body != nil {
			var err error
			bodyBytes, err = io.ReadAll(c.Request.Body)
			if err != nil {
				logger.GetLogger().Error("Middleware: Failed to read request body",
					zap.String("client_ip", clientIP),
					zap.String("path", c.Request.URL.Path),
					zap.Error(err),
				)
				c.AbortWithStatusJSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidJSON, nil))
				return
			}
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		request := factory()

		if err := json.Unmarshal(bodyBytes, request); err != nil {
			logger.GetLogger().Warn("Middleware: JSON unmarshaling failed",
				zap.String("client_ip", clientIP),
				zap.String("path", c.Request.URL.Path),
				zap.Int("body_size", len(bodyBytes)),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidJSON, nil))
			return
		}

		if normalizer, ok := request.(dto.Normalizer); ok {
			normalizer.Normalize()
		}

		if err := m.validate.Struct(request); err != nil {
			messages := validation.Messages(err)

			logger.GetLogger().Warn("Middleware: Request validation failed",
				zap.String("client_ip", clientIP),
				zap.String("path", c.Request.URL.Path),
				zap.Strings("validation_errors", messages),
				zap.Int("error_count", len(messages)),
			)

			validationErr := apperrors.WithDetails(apperrors.ErrValidationFailed, messages)
			abortWithError(c, apperrors.ToHTTPStatus(validationErr), validationErr)
			return
		}

		c.Set(constants.GinKeyValidatedBody, request)
		c.Next()
	}
}

// ValidatedBody fetches the request stored by ValidateRequestBody
func ValidatedBody[T any](c *gin.Context) (*T, bool) {
	value, exists := c.Get(constants.GinKeyValidatedBody)
	if !exists {
		return nil, false
	}
	body, ok := value.(*T)
	return body, ok
}
