package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafiul1009/minicart/auth"
)

// ValidateToken resolves the auth cookie into a numeric user id and stores it
// in the request context as "user_id".
func ValidateToken(c *gin.Context) {
	tokenString, err := c.Cookie(auth.CookieName)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token format"})
		c.Abort()
		return
	}

	userID, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}
