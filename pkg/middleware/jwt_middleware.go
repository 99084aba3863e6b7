package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roamly/pkg/utils"
)

// JWTAuthMiddleware gates every protected route. A missing bearer
// token is 401; a token that fails verification is 403.
func JWTAuthMiddleware(maker *utils.JWTMaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Access token required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := maker.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusForbidden, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// RoleMiddleware must run after JWTAuthMiddleware.
func RoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
