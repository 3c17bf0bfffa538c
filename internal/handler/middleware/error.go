package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the last line of defense: handlers answer their own errors,
// this only fills in a body when something aborted without writing one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if len(c.Errors) > 0 {
			slog.Error("unhandled request error",
				"path", c.Request.URL.Path, "errors", c.Errors.String())
		}
		status := c.Writer.Status()
		switch {
		case status >= http.StatusBadRequest:
			c.JSON(status, gin.H{"error": http.StatusText(status)})
		case status != http.StatusOK:
			// Bodyless statuses like 204 pass through untouched.
			c.Writer.WriteHeaderNow()
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
