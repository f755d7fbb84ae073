package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one access line per request.
func Logger(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if _, ok := skip[path]; ok {
			return
		}
		latency := time.Since(start)
		status := c.Writer.Status()

		if len(c.Errors) > 0 {
			log.Printf("%s %s %s %d %s rid=%s errors=%s",
				c.Request.Method, path, c.ClientIP(), status, latency, GetRequestID(c), c.Errors.String())
			return
		}
		log.Printf("%s %s %s %d %s rid=%s", c.Request.Method, path, c.ClientIP(), status, latency, GetRequestID(c))
	}
}
