package middleware

import (
	"net/http"
	"strings"

	"tables_webapp/internal/service"

	"github.com/gin-gonic/gin"
)

// JWT requires a valid Bearer token and puts user_id into the gin context.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		userID, err := service.ParseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// OptionalJWT sets user_id when a valid token is present but lets anonymous
// requests through. Score submissions work for guests too.
func OptionalJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if tokenString, ok := strings.CutPrefix(header, "Bearer "); ok {
			if userID, err := service.ParseJWT(tokenString); err == nil {
				c.Set("user_id", userID)
			}
		}
		c.Next()
	}
}
