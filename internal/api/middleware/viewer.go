package middleware

import (
	"context"
	"net/http"

	"coaching-portal-backend/internal/auth"
	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/logger"
	"coaching-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ViewerKey is the gin context key holding the *service.Viewer
const ViewerKey = "viewer"

// ViewerResolver loads the acting user behind a validated token
type ViewerResolver interface {
	ResolveViewer(ctx context.Context, userID uint) (*service.Viewer, error)
}

// ResolveViewer must run after auth.RequireAuth. Role and led team are read
// from the store, not from the token, so reassignments apply immediately.
func ResolveViewer(users ViewerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		viewer, err := users.ResolveViewer(c.Request.Context(), userID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
				return
			}
			logger.WithContext(c).WithError(err).Error("failed to resolve viewer")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		SetViewer(c, viewer)
		c.Next()
	}
}

// SetViewer stores viewer on the gin context
func SetViewer(c *gin.Context, viewer *service.Viewer) {
	c.Set(ViewerKey, viewer)
	c.Set(logger.UsernameKey, viewer.Username)
	c.Set(logger.UserRoleKey, string(viewer.Role))
}

// GetViewer returns the viewer set by ResolveViewer
func GetViewer(c *gin.Context) (*service.Viewer, bool) {
	v, exists := c.Get(ViewerKey)
	if !exists {
		return nil, false
	}
	viewer, ok := v.(*service.Viewer)
	return viewer, ok && viewer != nil
}
