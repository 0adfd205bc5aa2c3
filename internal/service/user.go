package service

import (
	"context"
	"fmt"
	"strings"

	"coaching-portal-backend/internal/auth"
	"coaching-portal-backend/internal/config"
	"coaching-portal-backend/internal/database/models"
	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/logger"
	"coaching-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ProtectedUsername is the bootstrap admin account that can never be deleted
const ProtectedUsername = "admin"

// UserService handles business logic for users
type UserService struct {
	repos      *repository.Repositories
	tx         repository.TransactorInterface
	leadership *LeadershipManager
	validator  *validator.Validate
	pageSize   int
}

// NewUserService creates a new user service
func NewUserService(repos *repository.Repositories, tx repository.TransactorInterface, leadership *LeadershipManager, validator *validator.Validate, cfg *config.Config) *UserService {
	return &UserService{
		repos:      repos,
		tx:         tx,
		leadership: leadership,
		validator:  validator,
		pageSize:   cfg.PageSize,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Username  string      `json:"username" validate:"required,min=3,max=64"`
	Email     *string     `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Password  string      `json:"password" validate:"required,min=6,max=128"`
	Role      models.Role `json:"role" validate:"required"`
	LedTeamID *uint       `json:"led_team_id,omitempty"`
}

// UpdateUserRequest represents the request to update a user. An empty
// password keeps the current one; a nil led team releases leadership.
type UpdateUserRequest struct {
	Username  string      `json:"username" validate:"required,min=3,max=64"`
	Email     *string     `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Password  *string     `json:"password,omitempty" validate:"omitempty,min=6,max=128"`
	Role      models.Role `json:"role" validate:"required"`
	LedTeamID *uint       `json:"led_team_id,omitempty"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID        uint        `json:"id"`
	Username  string      `json:"username"`
	Email     *string     `json:"email,omitempty"`
	Role      models.Role `json:"role"`
	LedTeamID *uint       `json:"led_team_id,omitempty"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

// UserListResponse is a page of users
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// ResolveViewer loads the acting user so role and led team reflect the store
func (s *UserService) ResolveViewer(ctx context.Context, userID uint) (*Viewer, error) {
	user, err := s.repos.Users.GetByID(userID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "load viewer")
	}
	return NewViewer(user), nil
}

func parseRole(role models.Role) (models.Role, error) {
	parsed, ok := models.ParseRole(string(role))
	if !ok {
		return "", apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}
	return parsed, nil
}

func ensureUsernameFree(repos *repository.Repositories, username string, selfID uint) error {
	existing, err := repos.Users.GetByUsername(username)
	if err == nil && existing.ID != selfID {
		return apperrors.ErrUserExists
	}
	if err != nil && !isRecordNotFound(err) {
		return fmt.Errorf("failed to check username: %w", err)
	}
	return nil
}

// CreateUser creates a user and, for team leads, pairs them with their team
func (s *UserService) CreateUser(ctx context.Context, viewer *Viewer, req *CreateUserRequest) (*UserResponse, error) {
	if err := requireManage(viewer); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	role, err := parseRole(req.Role)
	if err != nil {
		return nil, err
	}
	if req.LedTeamID != nil && role != models.RoleTeamLead {
		return nil, apperrors.ErrLeaderNotTeamLead
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}

	err = s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if err := ensureUsernameFree(repos, user.Username, 0); err != nil {
			return err
		}
		if err := repos.Users.Create(user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if req.LedTeamID == nil {
			return nil
		}
		team, err := repos.Teams.GetByID(*req.LedTeamID)
		if err != nil {
			return notFound(err, apperrors.ErrTeamNotFound, "load team")
		}
		return s.leadership.Assign(ctx, repos, team, user)
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{"user_id": user.ID, "role": user.Role}).Info("Created user")
	return toUserResponse(user), nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, viewer *Viewer, id uint) (*UserResponse, error) {
	if viewer.ID != id {
		if err := requireManage(viewer); err != nil {
			return nil, err
		}
	}
	user, err := s.repos.Users.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "get user")
	}
	return toUserResponse(user), nil
}

// ListUsers returns a page of users, or every user of role when role is set
func (s *UserService) ListUsers(ctx context.Context, viewer *Viewer, role string, page int) (*UserListResponse, error) {
	if err := requireManage(viewer); err != nil {
		return nil, err
	}

	if role != "" {
		parsed, err := parseRole(models.Role(role))
		if err != nil {
			return nil, err
		}
		users, err := s.repos.Users.GetByRole(parsed)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		return &UserListResponse{
			Users:      toUserResponses(users),
			Total:      int64(len(users)),
			Page:       1,
			PageSize:   len(users),
			TotalPages: 1,
		}, nil
	}

	page, pageSize, offset := pageBounds(page, s.pageSize)
	users, total, err := s.repos.Users.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &UserListResponse{
		Users:      toUserResponses(users),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// UpdateUser updates a user. Leaving the team lead role or clearing the led
// team releases leadership; naming a led team assigns it.
func (s *UserService) UpdateUser(ctx context.Context, viewer *Viewer, id uint, req *UpdateUserRequest) (*UserResponse, error) {
	if err := requireManage(viewer); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	role, err := parseRole(req.Role)
	if err != nil {
		return nil, err
	}
	if req.LedTeamID != nil && role != models.RoleTeamLead {
		return nil, apperrors.ErrLeaderNotTeamLead
	}

	var user *models.User
	err = s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		var err error
		user, err = repos.Users.GetByID(id)
		if err != nil {
			return notFound(err, apperrors.ErrUserNotFound, "get user")
		}

		username := strings.TrimSpace(req.Username)
		if username != user.Username {
			if user.Username == ProtectedUsername {
				return apperrors.ErrProtectedUser
			}
			if err := ensureUsernameFree(repos, username, user.ID); err != nil {
				return err
			}
		}
		if user.Role == models.RoleAdmin && role != models.RoleAdmin {
			admins, err := repos.Users.CountByRole(models.RoleAdmin)
			if err != nil {
				return fmt.Errorf("failed to count admins: %w", err)
			}
			if admins <= 1 {
				return apperrors.ErrLastAdmin
			}
		}

		user.Username = username
		user.Email = req.Email
		user.Role = role
		if req.Password != nil && *req.Password != "" {
			hash, err := auth.HashPassword(*req.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}
		if err := repos.Users.Update(user); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		if req.LedTeamID == nil {
			return s.leadership.Release(ctx, repos, user)
		}
		team, err := repos.Teams.GetByID(*req.LedTeamID)
		if err != nil {
			return notFound(err, apperrors.ErrTeamNotFound, "load team")
		}
		return s.leadership.Assign(ctx, repos, team, user)
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("Updated user")
	return toUserResponse(user), nil
}

// DeleteUser deletes a user after releasing their team and clearing their
// coach reference on historical coachings
func (s *UserService) DeleteUser(ctx context.Context, viewer *Viewer, id uint) error {
	if err := requireManage(viewer); err != nil {
		return err
	}
	if viewer.ID == id {
		return apperrors.ErrSelfDelete
	}

	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		user, err := repos.Users.GetByID(id)
		if err != nil {
			return notFound(err, apperrors.ErrUserNotFound, "get user")
		}
		if user.Username == ProtectedUsername {
			return apperrors.ErrProtectedUser
		}
		if user.Role == models.RoleAdmin {
			admins, err := repos.Users.CountByRole(models.RoleAdmin)
			if err != nil {
				return fmt.Errorf("failed to count admins: %w", err)
			}
			if admins <= 1 {
				return apperrors.ErrLastAdmin
			}
		}

		if err := s.leadership.Release(ctx, repos, user); err != nil {
			return err
		}
		cleared, err := repos.Coachings.ClearCoach(user.ID)
		if err != nil {
			return fmt.Errorf("failed to clear coach references: %w", err)
		}
		if err := repos.Users.Delete(user.ID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		logger.WithContext(ctx).WithFields(map[string]interface{}{"user_id": user.ID, "coachings_cleared": cleared}).Info("Deleted user")
		return nil
	})
	return err
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		LedTeamID: user.LedTeamID,
		CreatedAt: user.CreatedAt.Format(timestampLayout),
		UpdatedAt: user.UpdatedAt.Format(timestampLayout),
	}
}

func toUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out
}
