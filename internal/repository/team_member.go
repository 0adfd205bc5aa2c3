package repository

import (
	"coaching-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// ActiveMembers restricts a query to members that are not archived
func ActiveMembers(db *gorm.DB) *gorm.DB {
	return db.Where("team_members.team_id IS NOT NULL")
}

// ArchivedMembers restricts a query to archived members
func ArchivedMembers(db *gorm.DB) *gorm.DB {
	return db.Where("team_members.team_id IS NULL")
}

// Create creates a new team member
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Omit("Team").Create(member).Error
}

// GetByID retrieves a team member by ID with its team
func (r *TeamMemberRepository) GetByID(id uint) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.Preload("Team").First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAll retrieves members ordered by name, optionally including archived ones
func (r *TeamMemberRepository) GetAll(includeArchived bool) ([]models.TeamMember, error) {
	var members []models.TeamMember
	query := r.db.Preload("Team").Order("team_members.name")
	if !includeArchived {
		query = query.Scopes(ActiveMembers)
	}
	err := query.Find(&members).Error
	return members, err
}

// GetByTeam retrieves the members of a team ordered by name
func (r *TeamMemberRepository) GetByTeam(teamID uint) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Preload("Team").Where("team_id = ?", teamID).Order("name").Find(&members).Error
	return members, err
}

// GetArchived retrieves archived members ordered by name
func (r *TeamMemberRepository) GetArchived() ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Scopes(ArchivedMembers).Order("name").Find(&members).Error
	return members, err
}

// Update saves name and team of a member
func (r *TeamMemberRepository) Update(member *models.TeamMember) error {
	return r.db.Model(&models.TeamMember{}).
		Where("id = ?", member.ID).
		Select("name", "team_id").
		Updates(map[string]interface{}{"name": member.Name, "team_id": member.TeamID}).Error
}

// Archive detaches the member from its team. Coaching rows are untouched.
func (r *TeamMemberRepository) Archive(id uint) error {
	return r.db.Model(&models.TeamMember{}).Where("id = ?", id).Update("team_id", gorm.Expr("NULL")).Error
}

// CountCoachings counts coachings recorded for the member
func (r *TeamMemberRepository) CountCoachings(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Coaching{}).Where("team_member_id = ?", id).Count(&count).Error
	return count, err
}

// Delete deletes a team member
func (r *TeamMemberRepository) Delete(id uint) error {
	return r.db.Delete(&models.TeamMember{}, "id = ?", id).Error
}
