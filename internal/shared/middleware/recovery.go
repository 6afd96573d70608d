package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"recipeblog-backend/internal/shared/response"
)

// Recovery converts panics into the standard 500 envelope so a broken
// handler can never take the process down or leak a stack trace.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Msg("Panic recovered")

				response.InternalServerError(c, "something went wrong")
				c.Abort()
			}
		}()

		c.Next()
	}
}
