package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin suppose AuthRequired déjà passé
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
			c.Abort()
			return
		}
		c.Next()
	}
}
