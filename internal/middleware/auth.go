package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
	"github.com/youssefrramdan/care-insight-api/pkg/utils"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "You are not logged in. Please log in to access this route"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token, please login again"})
			c.Abort()
			return
		}

		// Check if token was revoked via logout
		if database.IsTokenBlacklisted(claims.GetJTI()) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			c.Abort()
			return
		}

		// Verify user still exists
		var user models.User
		if err := database.DB.Select("id", "role", "password_changed_at").First(&user, "id = ?", claims.UserID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "The user belonging to this token no longer exists"})
			c.Abort()
			return
		}

		// Tokens issued before the last password change are rejected
		if user.PasswordChangedAt != nil && claims.IssuedAt != nil &&
			user.PasswordChangedAt.After(claims.IssuedAt.Time) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User recently changed password. Please login again"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("userRole", string(user.Role))
		c.Set("claims", claims)

		c.Next()
	}
}

// AllowTo restricts a route to the given roles. Must run after AuthMiddleware.
func AllowTo(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		for _, r := range roles {
			if string(r) == role.(string) {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
		c.Abort()
	}
}
