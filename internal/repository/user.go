package repository

import (
	"coaching-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves all users ordered by username with pagination
func (r *UserRepository) GetAll(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	// Get total count
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Order("username").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetByRole retrieves all users holding role
func (r *UserRepository) GetByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Order("username").Find(&users).Error
	return users, err
}

// CountByRole counts users holding role
func (r *UserRepository) CountByRole(role models.Role) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

// Update saves profile fields. The led team pointer is only written through SetLedTeam.
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Omit("LedTeamID").Save(user).Error
}

// SetLedTeam points the user at the team they lead, or clears it when teamID is nil
func (r *UserRepository) SetLedTeam(userID uint, teamID *uint) error {
	var value interface{} = gorm.Expr("NULL")
	if teamID != nil {
		value = *teamID
	}
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("led_team_id", value).Error
}

// DetachTeam clears led_team_id on every user still pointing at teamID except keepUserID.
// Pass 0 as keepUserID to clear all of them.
func (r *UserRepository) DetachTeam(teamID, keepUserID uint) (int64, error) {
	result := r.db.Model(&models.User{}).
		Where("led_team_id = ? AND id <> ?", teamID, keepUserID).
		Update("led_team_id", gorm.Expr("NULL"))
	return result.RowsAffected, result.Error
}

// Delete deletes a user
func (r *UserRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
