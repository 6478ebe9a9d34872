package api

import (
	"crypto/subtle"
	"strings"

	"github.com/aguichard/persosite/config"
	"github.com/aguichard/persosite/log"
	"github.com/gin-gonic/gin"
)

// AdminMiddleware protects mutating endpoints with a bearer token check.
// When no admin token is configured the whole middleware is a no-op, which
// keeps local development friction-free.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := config.Get().AdminToken
		if token == "" {
			c.Next()
			return
		}

		provided := c.Request.Header.Get("Authorization")
		provided = strings.TrimPrefix(provided, "Bearer ")

		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			log.Warn().Str("path", c.Request.URL.Path).Msg("rejected unauthorized request")
			RespondUnauthorized(c, "Invalid or missing admin token")
			c.Abort()
			return
		}

		c.Next()
	}
}
