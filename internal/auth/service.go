package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"coaching-portal-backend/internal/database/models"
	apperrors "coaching-portal-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// UserLookup is the part of the user repository the auth service needs
type UserLookup interface {
	GetByUsername(username string) (*models.User, error)
}

// AuthService issues and validates bearer tokens for portal users
type AuthService struct {
	config *AuthConfig
	users  UserLookup
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uint        `json:"user_id" example:"12"`
	Username             string      `json:"username" example:"jdoe"`
	Role                 models.Role `json:"role" example:"team_lead"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest represents the credentials posted to the login endpoint
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	TokenType   string      `json:"tokenType"`
	ExpiresIn   int64       `json:"expiresIn"`
	Profile     UserProfile `json:"profile"`
}

// UserProfile is the public view of the authenticated user
type UserProfile struct {
	ID        uint        `json:"id"`
	Username  string      `json:"username"`
	Role      models.Role `json:"role"`
	LedTeamID *uint       `json:"led_team_id,omitempty"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users UserLookup) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, users: users}, nil
}

// Login checks the credentials and returns a signed token
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.TokenTTL.Seconds()),
		Profile: UserProfile{
			ID:        user.ID,
			Username:  user.Username,
			Role:      user.Role,
			LedTeamID: user.LedTeamID,
		},
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.UserID != 0 {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}
