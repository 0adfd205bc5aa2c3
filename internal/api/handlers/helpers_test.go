package handlers_test

import (
	"coaching-portal-backend/internal/api/middleware"
	"coaching-portal-backend/internal/database/models"
	"coaching-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

func uintPtr(v uint) *uint { return &v }

var (
	adminViewer = &service.Viewer{ID: 1, Username: "admin", Role: models.RoleAdmin}
	leadViewer  = &service.Viewer{ID: 2, Username: "lead", Role: models.RoleTeamLead, LedTeamID: uintPtr(10)}
)

// asViewer installs v as the acting user, standing in for auth + ResolveViewer
func asViewer(v *service.Viewer) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetViewer(c, v)
		c.Next()
	}
}
