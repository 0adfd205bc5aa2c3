package service_test

import (
	"context"
	"testing"

	"coaching-portal-backend/internal/config"
	"coaching-portal-backend/internal/database/models"
	"coaching-portal-backend/internal/mocks"
	"coaching-portal-backend/internal/repository"
	"coaching-portal-backend/internal/service"

	"go.uber.org/mock/gomock"
)

// fixture wires gomock repositories into a Repositories bundle shared by
// direct reads and transactions
type fixture struct {
	ctrl      *gomock.Controller
	users     *mocks.MockUserRepositoryInterface
	teams     *mocks.MockTeamRepositoryInterface
	members   *mocks.MockTeamMemberRepositoryInterface
	coachings *mocks.MockCoachingRepositoryInterface
	tx        *mocks.MockTransactorInterface
	repos     *repository.Repositories
	cfg       *config.Config
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:      ctrl,
		users:     mocks.NewMockUserRepositoryInterface(ctrl),
		teams:     mocks.NewMockTeamRepositoryInterface(ctrl),
		members:   mocks.NewMockTeamMemberRepositoryInterface(ctrl),
		coachings: mocks.NewMockCoachingRepositoryInterface(ctrl),
		tx:        mocks.NewMockTransactorInterface(ctrl),
		cfg: &config.Config{
			PageSize:             10,
			ArchiveTeamName:      models.DefaultArchiveTeamName,
			PerformanceBenchmark: 80,
		},
	}
	f.repos = &repository.Repositories{Users: f.users, Teams: f.teams, Members: f.members, Coachings: f.coachings}
	return f
}

// expectTx runs the transaction body against the mocked repositories
func (f *fixture) expectTx() {
	f.tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(*repository.Repositories) error) error {
			return fn(f.repos)
		}).
		Times(1)
}

func uintPtr(v uint) *uint { return &v }

func strPtr(v string) *string { return &v }

func admin() *service.Viewer {
	return &service.Viewer{ID: 1, Username: "admin", Role: models.RoleAdmin}
}

func teamLead(id uint, teamID *uint) *service.Viewer {
	return &service.Viewer{ID: id, Username: "lead", Role: models.RoleTeamLead, LedTeamID: teamID}
}

func team(id uint, name string, leaderID *uint) *models.Team {
	return &models.Team{BaseModel: models.BaseModel{ID: id}, Name: name, LeaderID: leaderID}
}

func user(id uint, username string, role models.Role, ledTeamID *uint) *models.User {
	return &models.User{BaseModel: models.BaseModel{ID: id}, Username: username, Role: role, LedTeamID: ledTeamID}
}

func member(id uint, name string, t *models.Team) *models.TeamMember {
	m := &models.TeamMember{BaseModel: models.BaseModel{ID: id}, Name: name}
	if t != nil {
		m.TeamID = uintPtr(t.ID)
		m.Team = t
	}
	return m
}
