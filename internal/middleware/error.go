package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "theark/internal/errors"
	"theark/internal/logger"
)

// ErrorHandler writes the JSON error envelope for the last error a handler
// attached with c.Error:
//
//	{"error": {"code": "BAD_DATE", "message": "..."}}
//
// Validation and auth errors are answered as they are. Anything that is not
// an *AppError becomes INTERNAL_ERROR and is logged with the request id.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := resolveAppError(c, c.Errors.Last().Err)
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}

// resolveAppError maps err to the AppError sent to the client, logging
// internal causes.
func resolveAppError(c *gin.Context, err error) *apperrors.AppError {
	fields := []interface{}{
		"request_id", c.GetString(requestIDKey),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	}
	if login := c.GetString(LoginKey); login != "" {
		fields = append(fields, "login", login)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Get().Errorw("unexpected error", append(fields, "error", err.Error())...)
		return apperrors.ErrInternalServer
	}

	if appErr.Internal != nil {
		log := logger.Get().Debugw
		if appErr.StatusCode >= 500 {
			log = logger.Get().Errorw
		}
		log("request failed", append(fields, "code", appErr.Code, "internal", appErr.Internal.Error())...)
	}
	return appErr
}
