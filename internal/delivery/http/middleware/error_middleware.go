package middleware

import (
	"errors"
	"net/http"

	"github.com/JRamonda/my-cv/internal/delivery/http/response"
	"github.com/JRamonda/my-cv/pkg/apperror"
	"github.com/JRamonda/my-cv/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Internal details are logged server-side only; the
				// caller gets a generic message.
				logger.Log.Error("internal server error",
					"error", err.Error(),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
