package middleware

import (
	"net/http"
	"strings"

	"github.com/JRamonda/my-cv/internal/delivery/http/response"
	"github.com/JRamonda/my-cv/internal/domain"
	"github.com/JRamonda/my-cv/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates mutating routes behind a valid bearer token.
// It is a pure precondition: handlers behind it never inspect identity,
// this is a single-operator system.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" || tokenString == authHeader {
			response.Error(c, http.StatusUnauthorized, "Bearer token required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUserEmail), claims.Email)

		c.Next()
	}
}
