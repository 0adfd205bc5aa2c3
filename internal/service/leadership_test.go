package service_test

import (
	"context"
	"errors"
	"testing"

	"coaching-portal-backend/internal/database/models"
	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAssignRejectsNonTeamLead(t *testing.T) {
	f := newFixture(t)
	m := service.NewLeadershipManager()
	tm := team(1, "Alpha", nil)
	coach := user(2, "coach", models.RoleQualityCoach, nil)

	err := m.Assign(context.Background(), f.repos, tm, coach)

	assert.ErrorIs(t, err, apperrors.ErrLeaderNotTeamLead)
	assert.Nil(t, tm.LeaderID)
	assert.Nil(t, coach.LedTeamID)
}

func TestAssignDetachesThenAttaches(t *testing.T) {
	f := newFixture(t)
	m := service.NewLeadershipManager()
	tm := team(1, "Alpha", uintPtr(9))
	lead := user(2, "lead", models.RoleTeamLead, uintPtr(5))

	gomock.InOrder(
		f.users.EXPECT().DetachTeam(uint(1), uint(2)).Return(int64(1), nil),
		f.teams.EXPECT().DetachLeader(uint(2), uint(1)).Return(int64(1), nil),
		f.teams.EXPECT().SetLeader(uint(1), gomock.Eq(uintPtr(2))).Return(nil),
		f.users.EXPECT().SetLedTeam(uint(2), gomock.Eq(uintPtr(1))).Return(nil),
	)

	err := m.Assign(context.Background(), f.repos, tm, lead)

	require.NoError(t, err)
	assert.Equal(t, uint(2), *tm.LeaderID)
	assert.Equal(t, uint(1), *lead.LedTeamID)
	assert.True(t, service.IsPaired(tm, lead))
}

func TestAssignIsIdempotent(t *testing.T) {
	f := newFixture(t)
	m := service.NewLeadershipManager()
	tm := team(1, "Alpha", uintPtr(2))
	lead := user(2, "lead", models.RoleTeamLead, uintPtr(1))

	// no repository calls expected
	err := m.Assign(context.Background(), f.repos, tm, lead)

	assert.NoError(t, err)
}

func TestAssignStopsOnFailure(t *testing.T) {
	f := newFixture(t)
	m := service.NewLeadershipManager()
	tm := team(1, "Alpha", nil)
	lead := user(2, "lead", models.RoleTeamLead, nil)
	boom := errors.New("boom")

	f.users.EXPECT().DetachTeam(uint(1), uint(2)).Return(int64(0), nil)
	f.teams.EXPECT().DetachLeader(uint(2), uint(1)).Return(int64(0), nil)
	f.teams.EXPECT().SetLeader(uint(1), gomock.Any()).Return(boom)

	err := m.Assign(context.Background(), f.repos, tm, lead)

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, tm.LeaderID)
	assert.Nil(t, lead.LedTeamID)
}

func TestRelease(t *testing.T) {
	f := newFixture(t)
	m := service.NewLeadershipManager()
	lead := user(2, "lead", models.RoleTeamLead, uintPtr(1))

	f.teams.EXPECT().DetachLeader(uint(2), uint(0)).Return(int64(1), nil)
	f.users.EXPECT().SetLedTeam(uint(2), gomock.Nil()).Return(nil)

	require.NoError(t, m.Release(context.Background(), f.repos, lead))
	assert.Nil(t, lead.LedTeamID)
}

func TestReleaseWithoutLedTeam(t *testing.T) {
	f := newFixture(t)
	m := service.NewLeadershipManager()
	coach := user(3, "coach", models.RoleTrainer, nil)

	f.teams.EXPECT().DetachLeader(uint(3), uint(0)).Return(int64(0), nil)

	assert.NoError(t, m.Release(context.Background(), f.repos, coach))
}

func TestVacate(t *testing.T) {
	f := newFixture(t)
	m := service.NewLeadershipManager()
	tm := team(1, "Alpha", uintPtr(2))

	f.users.EXPECT().DetachTeam(uint(1), uint(0)).Return(int64(1), nil)
	f.teams.EXPECT().SetLeader(uint(1), gomock.Nil()).Return(nil)

	require.NoError(t, m.Vacate(context.Background(), f.repos, tm))
	assert.Nil(t, tm.LeaderID)
}
