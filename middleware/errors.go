package middleware

import (
	"errors"
	"net/http"

	"restaurant-orders-api/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const internalMessage = "Something went wrong!"

// ErrorHandler renders the last error pushed with c.Error as {"error": message}.
// Errors that are not *apperror.Error become a 500 and are logged.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		var appErr *apperror.Error
		if errors.As(last.Err, &appErr) {
			c.JSON(appErr.Status, gin.H{"error": appErr.Message})
			return
		}
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(last.Err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMessage})
	}
}

// Fail records err for ErrorHandler and stops the handler chain
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
