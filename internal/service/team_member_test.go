package service_test

import (
	"context"
	"testing"

	"coaching-portal-backend/internal/database/models"
	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newMemberService(f *fixture) *service.TeamMemberService {
	return service.NewTeamMemberService(f.repos, validator.New(), f.cfg)
}

func TestCreateMemberRequiresTeam(t *testing.T) {
	f := newFixture(t)
	svc := newMemberService(f)
	f.teams.EXPECT().GetByID(uint(7)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateMember(context.Background(), admin(), &service.TeamMemberRequest{Name: "Max", TeamID: 7})

	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
}

func TestCreateMember(t *testing.T) {
	f := newFixture(t)
	svc := newMemberService(f)
	alpha := team(1, "Alpha", nil)
	f.teams.EXPECT().GetByID(uint(1)).Return(alpha, nil)
	f.members.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.TeamMember) error {
		m.ID = 3
		return nil
	})

	resp, err := svc.CreateMember(context.Background(), admin(), &service.TeamMemberRequest{Name: " Max ", TeamID: 1})

	require.NoError(t, err)
	assert.Equal(t, "Max", resp.Name)
	assert.Equal(t, "Alpha", resp.TeamName)
	assert.False(t, resp.Archived)
}

func TestArchiveMember(t *testing.T) {
	f := newFixture(t)
	svc := newMemberService(f)
	f.members.EXPECT().GetByID(uint(3)).Return(member(3, "Max", team(1, "Alpha", nil)), nil)
	f.members.EXPECT().Archive(uint(3)).Return(nil)

	resp, err := svc.ArchiveMember(context.Background(), admin(), 3)

	require.NoError(t, err)
	assert.True(t, resp.Archived)
	assert.Nil(t, resp.TeamID)
	assert.Equal(t, models.DefaultArchiveTeamName, resp.TeamName)
}

func TestArchiveMemberAlreadyArchived(t *testing.T) {
	f := newFixture(t)
	svc := newMemberService(f)
	f.members.EXPECT().GetByID(uint(3)).Return(member(3, "Max", nil), nil)

	resp, err := svc.ArchiveMember(context.Background(), admin(), 3)

	require.NoError(t, err)
	assert.True(t, resp.Archived)
}

func TestDeleteMemberWithCoachings(t *testing.T) {
	f := newFixture(t)
	svc := newMemberService(f)
	f.members.EXPECT().GetByID(uint(3)).Return(member(3, "Max", nil), nil)
	f.members.EXPECT().CountCoachings(uint(3)).Return(int64(2), nil)

	err := svc.DeleteMember(context.Background(), admin(), 3)

	assert.ErrorIs(t, err, apperrors.ErrMemberHasCoachings)
}

func TestDeleteMember(t *testing.T) {
	f := newFixture(t)
	svc := newMemberService(f)
	f.members.EXPECT().GetByID(uint(3)).Return(member(3, "Max", nil), nil)
	f.members.EXPECT().CountCoachings(uint(3)).Return(int64(0), nil)
	f.members.EXPECT().Delete(uint(3)).Return(nil)

	assert.NoError(t, svc.DeleteMember(context.Background(), admin(), 3))
}

func TestMemberManagementRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	svc := newMemberService(f)
	coach := &service.Viewer{ID: 2, Role: models.RoleQualityCoach}

	_, err := svc.ArchiveMember(context.Background(), coach, 3)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteMember(context.Background(), coach, 3), apperrors.ErrForbidden)
}

func TestAssignableMembersForTeamLead(t *testing.T) {
	f := newFixture(t)
	svc := newMemberService(f)
	alpha := team(1, "Alpha", uintPtr(5))
	f.members.EXPECT().GetByTeam(uint(1)).Return([]models.TeamMember{*member(3, "Max", alpha)}, nil)

	got, err := svc.AssignableMembers(context.Background(), teamLead(5, uintPtr(1)), nil)

	require.NoError(t, err)
	assert.Equal(t, []service.AssignableMember{{ID: 3, Label: "Max"}}, got)
}

func TestAssignableMembersForTeamLeadWithoutTeam(t *testing.T) {
	f := newFixture(t)
	svc := newMemberService(f)

	got, err := svc.AssignableMembers(context.Background(), teamLead(5, nil), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAssignableMembersLabelsTeams(t *testing.T) {
	f := newFixture(t)
	svc := newMemberService(f)
	f.members.EXPECT().GetAll(false).Return([]models.TeamMember{
		*member(3, "Max", team(1, "Alpha", nil)),
		*member(4, "Eva", team(2, "Beta", nil)),
	}, nil)

	got, err := svc.AssignableMembers(context.Background(), admin(), nil)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Max (Alpha)", got[0].Label)
	assert.Equal(t, "Eva (Beta)", got[1].Label)
}

func TestAssignableMembersKeepsArchivedMemberOfEditedCoaching(t *testing.T) {
	f := newFixture(t)
	svc := newMemberService(f)
	archived := member(9, "Old", nil)
	f.members.EXPECT().GetAll(false).Return([]models.TeamMember{*member(3, "Max", team(1, "Alpha", nil))}, nil)
	f.coachings.EXPECT().GetByID(uint(20)).Return(&models.Coaching{BaseModel: models.BaseModel{ID: 20}, TeamMemberID: 9, TeamMember: archived}, nil)

	got, err := svc.AssignableMembers(context.Background(), admin(), uintPtr(20))

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, service.AssignableMember{ID: 9, Label: "Old (ARCHIV)", Archived: true}, got[1])
}

func TestListMembersTeamLeadOtherTeam(t *testing.T) {
	f := newFixture(t)
	svc := newMemberService(f)

	_, err := svc.ListMembers(context.Background(), teamLead(5, uintPtr(1)), uintPtr(2), false)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestListMembersIncludingArchived(t *testing.T) {
	f := newFixture(t)
	svc := newMemberService(f)
	f.members.EXPECT().GetAll(true).Return([]models.TeamMember{*member(9, "Old", nil)}, nil)

	got, err := svc.ListMembers(context.Background(), admin(), nil, true)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Archived)
}
