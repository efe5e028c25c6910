package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID ensures every request carries an X-Request-ID, generating one
// when the client did not send it. The id is echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
			c.Request.Header.Set("X-Request-ID", id)
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
