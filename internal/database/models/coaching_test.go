package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecklist(t *testing.T) {
	t.Run("all not applicable yields zero percentage", func(t *testing.T) {
		var c Checklist
		c.Normalize()

		assert.Equal(t, 0.0, c.Percentage())
		assert.Equal(t, ChecklistCounts{NotApplicable: 7}, c.Counts())
		assert.Equal(t, "N/A (7 k.A.)", c.Display())
	})

	t.Run("unset items count as not applicable", func(t *testing.T) {
		c := Checklist{Greeting: ChecklistMet}

		counts := c.Counts()
		assert.Equal(t, 1, counts.Met)
		assert.Equal(t, 6, counts.NotApplicable)
		assert.Equal(t, 100.0, c.Percentage())
		assert.Equal(t, "1/1 (6 k.A.)", c.Display())
	})

	t.Run("mixed states", func(t *testing.T) {
		c := Checklist{
			Greeting:     ChecklistMet,
			Legitimation: ChecklistMet,
			PKA:          ChecklistNotMet,
			KEK:          ChecklistMet,
			Offer:        ChecklistNotMet,
			Summary:      ChecklistNotApplicable,
			KZB:          ChecklistNotApplicable,
		}

		assert.InDelta(t, 60.0, c.Percentage(), 0.0001)
		assert.Equal(t, "3/5 (2 k.A.)", c.Display())
	})

	t.Run("items keep canonical order", func(t *testing.T) {
		items := Checklist{}.Items()
		labels := make([]string, len(items))
		for i, item := range items {
			labels[i] = item.Label
		}
		assert.Equal(t, []string{"Begrüßung", "Legitimation", "PKA", "KEK", "Angebot", "Zusammenfassung", "KZB"}, labels)
	})
}

func TestCoachingOverallScore(t *testing.T) {
	for mark, want := range map[int]float64{0: 0, 6: 60, 8: 80, 10: 100} {
		c := Coaching{PerformanceMark: mark}
		assert.Equal(t, want, c.OverallScore())
	}
}

func TestRole(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, r.IsValid(), r)
	}
	assert.False(t, Role("Teammitglied").IsValid())

	r, ok := ParseRole(" Team_Lead ")
	assert.True(t, ok)
	assert.Equal(t, RoleTeamLead, r)

	assert.False(t, RoleTeamLead.HasFullVisibility())
	assert.True(t, RoleQualityCoach.HasFullVisibility())
	assert.True(t, RoleTeamLead.CanRecordCoachings())
	assert.False(t, RoleProjectLead.CanRecordCoachings())
	assert.True(t, RoleProjectLead.CanReview())
	assert.False(t, RoleTeamLead.CanReview())
	assert.True(t, RoleAdmin.CanManage())
}

func TestIsReservedTeamName(t *testing.T) {
	assert.True(t, IsReservedTeamName(" archiv ", DefaultArchiveTeamName))
	assert.True(t, IsReservedTeamName("ARCHIV", DefaultArchiveTeamName))
	assert.False(t, IsReservedTeamName("Archive Team", DefaultArchiveTeamName))
}
