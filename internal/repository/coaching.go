package repository

import (
	"coaching-portal-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamStatsRow is the per-team rollup over a filtered coaching set
type TeamStatsRow struct {
	TeamID        uint
	TeamName      string
	LeaderID      *uint
	CoachingCount int64
	AvgScore      float64
	TotalTime     int64
}

// AggregateRow is a rollup over a filtered coaching set without grouping
type AggregateRow struct {
	CoachingCount int64
	AvgScore      float64
	TotalTime     int64
}

// SubjectCountRow is one bucket of the subject histogram
type SubjectCountRow struct {
	Subject string
	Count   int64
}

// CoachingRepository handles database operations for coachings
type CoachingRepository struct {
	db *gorm.DB
}

// NewCoachingRepository creates a new coaching repository
func NewCoachingRepository(db *gorm.DB) *CoachingRepository {
	return &CoachingRepository{db: db}
}

func (r *CoachingRepository) filtered(filter CoachingFilter) *gorm.DB {
	return filter.Apply(r.db.Model(&models.Coaching{}))
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("TeamMember.Team").Preload("Coach")
}

// Create creates a new coaching
func (r *CoachingRepository) Create(coaching *models.Coaching) error {
	return r.db.Omit(clause.Associations).Create(coaching).Error
}

// GetByID retrieves a coaching with member, team and coach
func (r *CoachingRepository) GetByID(id uint) (*models.Coaching, error) {
	var coaching models.Coaching
	err := r.db.Scopes(withRelations).First(&coaching, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &coaching, nil
}

// Update saves the coach-owned fields. Coach and reviewer notes are left untouched.
func (r *CoachingRepository) Update(coaching *models.Coaching) error {
	return r.db.Omit(clause.Associations, "CoachID", "ReviewerNotes", "CreatedAt").Save(coaching).Error
}

// UpdateReviewerNotes sets the reviewer notes only
func (r *CoachingRepository) UpdateReviewerNotes(id uint, notes string) error {
	return r.db.Model(&models.Coaching{}).Where("id = ?", id).Update("reviewer_notes", notes).Error
}

// Delete deletes a coaching
func (r *CoachingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Coaching{}, "id = ?", id).Error
}

// List retrieves filtered coachings newest first with pagination
func (r *CoachingRepository) List(filter CoachingFilter, limit, offset int) ([]models.Coaching, int64, error) {
	var coachings []models.Coaching
	var total int64

	// Get total count
	if err := r.filtered(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.filtered(filter).Scopes(withRelations).
		Order("coachings.coaching_date DESC, coachings.id DESC").
		Limit(limit).Offset(offset).
		Find(&coachings).Error
	if err != nil {
		return nil, 0, err
	}

	return coachings, total, nil
}

// Find retrieves all filtered coachings newest first
func (r *CoachingRepository) Find(filter CoachingFilter) ([]models.Coaching, error) {
	var coachings []models.Coaching
	err := r.filtered(filter).Scopes(withRelations).
		Order("coachings.coaching_date DESC, coachings.id DESC").
		Find(&coachings).Error
	return coachings, err
}

// GetByMember retrieves the member's most recent coachings, all of them when limit <= 0
func (r *CoachingRepository) GetByMember(memberID uint, limit int) ([]models.Coaching, error) {
	var coachings []models.Coaching
	query := r.db.Where("team_member_id = ?", memberID).Order("coaching_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&coachings).Error
	return coachings, err
}

// ClearCoach removes the coach reference from the user's coachings, keeping the rows
func (r *CoachingRepository) ClearCoach(userID uint) (int64, error) {
	result := r.db.Model(&models.Coaching{}).Where("coach_id = ?", userID).Update("coach_id", gorm.Expr("NULL"))
	return result.RowsAffected, result.Error
}

// TeamStats rolls up the filtered coachings per team. Teams without qualifying
// coachings are kept with zero values. A team filter also restricts the team rows.
func (r *CoachingRepository) TeamStats(filter CoachingFilter) ([]TeamStatsRow, error) {
	sub := r.filtered(filter).Select("coachings.id, coachings.team_member_id, coachings.performance_mark, coachings.time_spent")

	query := r.db.Table("teams AS t").
		Select("t.id AS team_id, t.name AS team_name, t.leader_id AS leader_id, "+
			"COUNT(fc.id) AS coaching_count, "+
			"COALESCE(AVG(fc.performance_mark * 10.0), 0)::float8 AS avg_score, "+
			"COALESCE(SUM(fc.time_spent), 0) AS total_time").
		Joins("LEFT JOIN team_members tm ON tm.team_id = t.id").
		Joins("LEFT JOIN (?) AS fc ON fc.team_member_id = tm.id", sub)
	if filter.TeamID != nil {
		query = query.Where("t.id = ?", *filter.TeamID)
	}

	var rows []TeamStatsRow
	err := query.Group("t.id, t.name, t.leader_id").Order("t.name").Scan(&rows).Error
	return rows, err
}

// Aggregate rolls up the filtered coachings into a single row
func (r *CoachingRepository) Aggregate(filter CoachingFilter) (*AggregateRow, error) {
	var row AggregateRow
	err := r.filtered(filter).
		Select("COUNT(coachings.id) AS coaching_count, " +
			"COALESCE(AVG(coachings.performance_mark * 10.0), 0)::float8 AS avg_score, " +
			"COALESCE(SUM(coachings.time_spent), 0) AS total_time").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// SubjectCounts groups the filtered coachings by subject, largest bucket first
func (r *CoachingRepository) SubjectCounts(filter CoachingFilter) ([]SubjectCountRow, error) {
	var rows []SubjectCountRow
	err := r.filtered(filter).
		Select("coachings.coaching_subject AS subject, COUNT(coachings.id) AS count").
		Where("coachings.coaching_subject IS NOT NULL AND coachings.coaching_subject <> ''").
		Group("coachings.coaching_subject").
		Order("count DESC, subject ASC").
		Scan(&rows).Error
	return rows, err
}
