package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs the principal, route, status, and elapsed time of every
// request passing through it. The services underneath stay free of logging.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		username, _, ok := GetPrincipal(c)
		if !ok {
			username = "anonymous"
		}

		log.Printf("user=%s method=%s path=%s status=%d duration=%s",
			username,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
