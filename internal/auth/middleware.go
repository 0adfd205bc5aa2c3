package auth

import (
	"net/http"
	"strings"

	"coaching-portal-backend/internal/database/models"
	"coaching-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth
const (
	UserIDKey = "user_id"
	ClaimsKey = "auth_claims"
)

// TokenValidator validates bearer tokens
type TokenValidator interface {
	ValidateJWT(tokenString string) (*AuthClaims, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.validator.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		SetIdentity(c, claims)
		c.Next()
	}
}

// SetIdentity stores the authenticated identity on the gin context
func SetIdentity(c *gin.Context, claims *AuthClaims) {
	c.Set(UserIDKey, claims.UserID)
	c.Set(logger.UsernameKey, claims.Username)
	c.Set(logger.UserRoleKey, string(claims.Role))
	c.Set(ClaimsKey, claims)
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint)
	return id, ok
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(logger.UsernameKey)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

// GetRole is a helper function to extract the token role from context
func GetRole(c *gin.Context) (models.Role, bool) {
	role, exists := c.Get(logger.UserRoleKey)
	if !exists {
		return "", false
	}

	roleStr, ok := role.(string)
	return models.Role(roleStr), ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
