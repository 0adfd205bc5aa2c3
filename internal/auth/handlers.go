package auth

import (
	"errors"
	"net/http"

	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Authenticator is implemented by AuthService
type Authenticator interface {
	Login(req *LoginRequest) (*LoginResponse, error)
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service Authenticator
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service Authenticator) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Exchange username and password for a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse "Signed token and profile"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid username or password"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			logger.WithContext(c).WithField("username", req.Username).Warn("failed login attempt")
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.WithContext(c).WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/auth/me
// @Summary Current identity
// @Description Return the claims of the presented bearer token
// @Tags authentication
// @Produce json
// @Success 200 {object} AuthClaims "Token claims"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, claims)
}
