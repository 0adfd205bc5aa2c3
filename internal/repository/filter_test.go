package repository

import (
	"testing"
	"time"

	"coaching-portal-backend/internal/database/models"
	"coaching-portal-backend/internal/period"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB renders SQL without a server
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=x dbname=x sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func renderFilter(t *testing.T, f CoachingFilter) string {
	db := dryRunDB(t)
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []models.Coaching
		return f.Apply(tx.Model(&models.Coaching{})).Find(&rows)
	})
}

func TestFilterEmpty(t *testing.T) {
	sql := renderFilter(t, CoachingFilter{})
	assert.NotContains(t, sql, "WHERE")
}

func TestFilterRangeAndTeam(t *testing.T) {
	teamID := uint(4)
	r := period.Resolve("2024-02", time.Now())

	sql := renderFilter(t, CoachingFilter{Range: r, TeamID: &teamID})

	assert.Contains(t, sql, "coachings.coaching_date >=")
	assert.Contains(t, sql, "coachings.coaching_date <=")
	assert.Contains(t, sql, "team_id = 4")
}

func TestFilterArchived(t *testing.T) {
	sql := renderFilter(t, CoachingFilter{Archived: true})
	assert.Contains(t, sql, "team_id IS NULL")
}

func TestFilterTeamWinsOverArchived(t *testing.T) {
	teamID := uint(2)
	sql := renderFilter(t, CoachingFilter{TeamID: &teamID, Archived: true})
	assert.NotContains(t, sql, "IS NULL")
}

func TestFilterScope(t *testing.T) {
	teamID := uint(3)

	scoped := renderFilter(t, CoachingFilter{Scope: &VisibilityScope{TeamID: &teamID, CoachID: 9}})
	assert.Contains(t, scoped, "OR coachings.coach_id = 9")

	noTeam := renderFilter(t, CoachingFilter{Scope: &VisibilityScope{CoachID: 9}})
	assert.Contains(t, noTeam, "coachings.coach_id = 9")
	assert.NotContains(t, noTeam, "team_members WHERE team_id")
}

func TestFilterSearchEscapesWildcards(t *testing.T) {
	sql := renderFilter(t, CoachingFilter{Search: " 50%_off "})
	assert.Contains(t, sql, `'%50\%\_off%'`)
	assert.Contains(t, sql, "ILIKE")
}
