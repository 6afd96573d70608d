package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Logger emits one structured line per request. The user id is present
// only on authenticated routes, after AuthMiddleware has run.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		event := log.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency_ms", time.Since(start)).
			Str("ip", c.ClientIP())

		if query != "" {
			event = event.Str("query", query)
		}
		if userID, ok := GetUserID(c); ok && userID != uuid.Nil {
			event = event.Str("user_id", userID.String())
		}

		event.Msg("HTTP Request")
	}
}
