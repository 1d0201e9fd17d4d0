package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism_backend/internal/models"
)

// RequireAdmin vérifie que l'utilisateur a le rôle "ADMIN".
// À monter après AuthRequired.
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get(CtxRole)
	if !exists || role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé aux administrateurs"})
		c.Abort()
		return
	}
	c.Next()
}
