// auth.go - JWT authentication middleware
//
// Flow: extract the bearer token from the Authorization header, validate
// its signature and expiry, then store the embedded user id and role in
// the request context for the handlers. Requests without a valid token
// never reach a handler.

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mini-crm/auth"
	"mini-crm/httperr"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// Auth returns a Gin middleware that rejects requests without a valid
// bearer token. The secret is captured at wiring time, not read from the
// environment per request.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			httperr.Message(c, http.StatusUnauthorized, "Missing or invalid token")
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.ParseToken(secret, tokenStr)
		if err != nil {
			httperr.Message(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
