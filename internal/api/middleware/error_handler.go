package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "satfab.io/satfab/internal/pkg/errors"
	"satfab.io/satfab/internal/pkg/logger"
)

// errorEntry is the wire shape of a single surfaced error.
type errorEntry struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ErrorHandler is a Gin middleware that provides centralized error handling.
// It captures errors added via c.Error() and returns the contract's error
// envelope: {"errors": [{"message", "code"}]}.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			logger.Warn("Request error",
				zap.String("code", appErr.Code),
				zap.String("message", appErr.Message),
				zap.Int("status", appErr.HTTPStatus),
				zap.String("request_id", GetRequestID(c.Request.Context())),
				zap.Error(appErr.Err),
			)
			c.JSON(appErr.HTTPStatus, gin.H{
				"errors": []errorEntry{{Message: appErr.Message, Code: appErr.Code}},
			})
			return
		}

		// Fallback: generic 500 error
		logger.Error("Unhandled request error",
			zap.String("request_id", GetRequestID(c.Request.Context())),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"errors": []errorEntry{{Message: "an internal error occurred", Code: apperrors.CodeInternalError}},
		})
	}
}
