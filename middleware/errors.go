package middleware

import (
	"net/http"

	"kboard/services"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns service errors attached via c.Error into JSON
// responses for handlers that did not write one themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := http.StatusInternalServerError
		switch {
		case services.IsValidation(err):
			status = http.StatusBadRequest
		case services.IsNotFound(err):
			status = http.StatusNotFound
		case services.IsAuthorization(err):
			status = http.StatusForbidden
		}

		c.JSON(status, gin.H{"error": err.Error()})
	}
}
