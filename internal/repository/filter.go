package repository

import (
	"strings"

	"coaching-portal-backend/internal/period"

	"gorm.io/gorm"
)

// VisibilityScope restricts a team lead to their team's members plus coachings they authored
type VisibilityScope struct {
	TeamID  *uint
	CoachID uint
}

// CoachingFilter selects the coaching rows a list or aggregate operates on.
// Conditions are applied in order: date range, team, member, visibility, search.
type CoachingFilter struct {
	Range    period.Range
	TeamID   *uint
	Archived bool
	MemberID *uint
	Scope    *VisibilityScope
	Search   string
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Apply adds the filter's conditions to a query rooted at the coachings table
func (f CoachingFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.Range.Start != nil {
		db = db.Where("coachings.coaching_date >= ?", *f.Range.Start)
	}
	if f.Range.End != nil {
		db = db.Where("coachings.coaching_date <= ?", *f.Range.End)
	}

	if f.TeamID != nil {
		db = db.Where("coachings.team_member_id IN (SELECT id FROM team_members WHERE team_id = ?)", *f.TeamID)
	} else if f.Archived {
		db = db.Where("coachings.team_member_id IN (SELECT id FROM team_members WHERE team_id IS NULL)")
	}

	if f.MemberID != nil {
		db = db.Where("coachings.team_member_id = ?", *f.MemberID)
	}

	if f.Scope != nil {
		if f.Scope.TeamID != nil {
			db = db.Where(
				"(coachings.team_member_id IN (SELECT id FROM team_members WHERE team_id = ?) OR coachings.coach_id = ?)",
				*f.Scope.TeamID, f.Scope.CoachID,
			)
		} else {
			db = db.Where("coachings.coach_id = ?", f.Scope.CoachID)
		}
	}

	if term := strings.TrimSpace(f.Search); term != "" {
		pattern := "%" + likeEscaper.Replace(term) + "%"
		db = db.Where(
			"(coachings.team_member_id IN (SELECT id FROM team_members WHERE name ILIKE ?)"+
				" OR coachings.coach_id IN (SELECT id FROM users WHERE username ILIKE ?)"+
				" OR coachings.coaching_subject ILIKE ?)",
			pattern, pattern, pattern,
		)
	}

	return db
}
