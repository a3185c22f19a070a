package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Identity resolves the requesting user once per request and stashes it in
// the context. Until real authentication lands, the identity comes from the
// X-User-Id header with a configured demo fallback; handlers never see a
// hardcoded user literal.
func Identity(fallbackUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if userID == "" {
			userID = fallbackUserID
		}
		c.Set("user_id", userID)
		c.Next()
	}
}
