// Package handlers : couche de routes HTTP. Chaque handler reçoit des
// interfaces de stores étroites, satisfaites par les repositories ;
// toute défaillance interne devient un JSON {"error": ...} et le détail
// ne part que dans les logs.
package handlers

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"tourism_backend/internal/middleware"
	"tourism_backend/internal/models"
	"tourism_backend/internal/repository"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, repository.ErrNotFound)
}

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserID)
}

func isAdmin(c *gin.Context) bool {
	return c.GetString(middleware.CtxRole) == models.RoleAdmin
}
