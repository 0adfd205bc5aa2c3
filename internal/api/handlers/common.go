package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"coaching-portal-backend/internal/api/middleware"
	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/logger"
	"coaching-portal-backend/internal/observability"
	"coaching-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps service errors onto HTTP statuses. Anything unexpected
// becomes a generic 500 so database details never reach the client.
func respondError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c).WithError(err).Error("request failed")
		observability.CaptureErr(err, map[string]string{
			"route":      c.FullPath(),
			"request_id": c.GetString(logger.RequestIDKey),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// viewer returns the acting user or writes a 401 and returns false
func viewer(c *gin.Context) (*service.Viewer, bool) {
	v, ok := middleware.GetViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, false
	}
	return v, true
}

// pathID parses a numeric path parameter or writes a 400 and returns false
func pathID(c *gin.Context, name, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + entity + " ID"})
		return 0, false
	}
	return uint(id), true
}

// optionalID reads an optional numeric query value; malformed input counts as absent
func optionalID(raw string) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil
	}
	v := uint(id)
	return &v
}

// queryInt reads an integer query value with a fallback for missing or malformed input
func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}

// queryBool accepts 1/true/yes/on in any case
func queryBool(c *gin.Context, key string) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
