package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"newsroom-api/pkg/helpers"
	"newsroom-api/pkg/response"
)

const CtxUserIDKey = "userID"

// JWTAuth reads the Authorization: Bearer header, validates the token, and
// injects the user id into the Gin context. A missing or empty header is
// 401; so is a token that fails signature or expiry checks.
func JWTAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := ""
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = strings.TrimSpace(parts[1])
		}
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "Authentication token missing", nil)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
