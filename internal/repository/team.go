package repository

import (
	"coaching-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Omit("LeaderID").Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByNameInsensitive retrieves a team whose name matches ignoring case and surrounding spaces
func (r *TeamRepository) GetByNameInsensitive(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "LOWER(name) = LOWER(TRIM(?))", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams ordered by name
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Order("name").Find(&teams).Error
	return teams, err
}

// Update saves the team name. The leader pointer is only written through SetLeader.
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Omit("LeaderID").Save(team).Error
}

// SetLeader points the team at its leading user, or clears it when userID is nil
func (r *TeamRepository) SetLeader(teamID uint, userID *uint) error {
	var value interface{} = gorm.Expr("NULL")
	if userID != nil {
		value = *userID
	}
	return r.db.Model(&models.Team{}).Where("id = ?", teamID).Update("leader_id", value).Error
}

// DetachLeader clears leader_id on every team still pointing at userID except keepTeamID.
// Pass 0 as keepTeamID to clear all of them.
func (r *TeamRepository) DetachLeader(userID, keepTeamID uint) (int64, error) {
	result := r.db.Model(&models.Team{}).
		Where("leader_id = ? AND id <> ?", userID, keepTeamID).
		Update("leader_id", gorm.Expr("NULL"))
	return result.RowsAffected, result.Error
}

// CountMembers counts members currently attached to the team
func (r *TeamRepository) CountMembers(teamID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uint) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
