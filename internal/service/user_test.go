package service_test

import (
	"context"
	"testing"

	"coaching-portal-backend/internal/database/models"
	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	f           *fixture
	userService *service.UserService
	ctx         context.Context
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.f = newFixture(suite.T())
	suite.ctx = context.Background()
	suite.userService = service.NewUserService(suite.f.repos, suite.f.tx, service.NewLeadershipManager(), validator.New(), suite.f.cfg)
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.f.ctrl.Finish()
}

func (suite *UserServiceTestSuite) TestResolveViewer() {
	suite.f.users.EXPECT().GetByID(uint(4)).Return(user(4, "lead", models.RoleTeamLead, uintPtr(2)), nil)

	viewer, err := suite.userService.ResolveViewer(suite.ctx, 4)

	suite.NoError(err)
	suite.Equal(models.RoleTeamLead, viewer.Role)
	suite.Equal(uint(2), *viewer.LedTeamID)
}

func (suite *UserServiceTestSuite) TestResolveViewerNotFound() {
	suite.f.users.EXPECT().GetByID(uint(4)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.ResolveViewer(suite.ctx, 4)

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestCreateUserRequiresAdmin() {
	_, err := suite.userService.CreateUser(suite.ctx, teamLead(2, nil), &service.CreateUserRequest{})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestCreateUserValidationError() {
	req := &service.CreateUserRequest{Username: "ab", Password: "123", Role: models.RoleTrainer}

	_, err := suite.userService.CreateUser(suite.ctx, admin(), req)

	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *UserServiceTestSuite) TestCreateUserUnknownRole() {
	req := &service.CreateUserRequest{Username: "someone", Password: "secret1", Role: "pilot"}

	_, err := suite.userService.CreateUser(suite.ctx, admin(), req)

	suite.True(apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestCreateUserLedTeamNeedsTeamLeadRole() {
	req := &service.CreateUserRequest{Username: "someone", Password: "secret1", Role: models.RoleTrainer, LedTeamID: uintPtr(3)}

	_, err := suite.userService.CreateUser(suite.ctx, admin(), req)

	suite.ErrorIs(err, apperrors.ErrLeaderNotTeamLead)
}

func (suite *UserServiceTestSuite) TestCreateUserDuplicate() {
	req := &service.CreateUserRequest{Username: "taken", Password: "secret1", Role: models.RoleTrainer}
	suite.f.expectTx()
	suite.f.users.EXPECT().GetByUsername("taken").Return(user(7, "taken", models.RoleTrainer, nil), nil)

	_, err := suite.userService.CreateUser(suite.ctx, admin(), req)

	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *UserServiceTestSuite) TestCreateTeamLeadWithTeam() {
	req := &service.CreateUserRequest{Username: "newlead", Password: "secret1", Role: models.RoleTeamLead, LedTeamID: uintPtr(3)}
	suite.f.expectTx()
	suite.f.users.EXPECT().GetByUsername("newlead").Return(nil, gorm.ErrRecordNotFound)
	suite.f.users.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Nil(suite.T(), u.LedTeamID)
		assert.NotEmpty(suite.T(), u.PasswordHash)
		u.ID = 10
		return nil
	})
	suite.f.teams.EXPECT().GetByID(uint(3)).Return(team(3, "Gamma", uintPtr(8)), nil)
	suite.f.users.EXPECT().DetachTeam(uint(3), uint(10)).Return(int64(1), nil)
	suite.f.teams.EXPECT().DetachLeader(uint(10), uint(3)).Return(int64(0), nil)
	suite.f.teams.EXPECT().SetLeader(uint(3), gomock.Eq(uintPtr(10))).Return(nil)
	suite.f.users.EXPECT().SetLedTeam(uint(10), gomock.Eq(uintPtr(3))).Return(nil)

	resp, err := suite.userService.CreateUser(suite.ctx, admin(), req)

	suite.NoError(err)
	suite.Equal(uint(10), resp.ID)
	suite.Equal(uint(3), *resp.LedTeamID)
}

func (suite *UserServiceTestSuite) TestUpdateUserDemotionReleasesTeam() {
	req := &service.UpdateUserRequest{Username: "lead", Role: models.RoleTrainer}
	suite.f.expectTx()
	suite.f.users.EXPECT().GetByID(uint(5)).Return(user(5, "lead", models.RoleTeamLead, uintPtr(2)), nil)
	suite.f.users.EXPECT().Update(gomock.Any()).Return(nil)
	suite.f.teams.EXPECT().DetachLeader(uint(5), uint(0)).Return(int64(1), nil)
	suite.f.users.EXPECT().SetLedTeam(uint(5), gomock.Nil()).Return(nil)

	resp, err := suite.userService.UpdateUser(suite.ctx, admin(), 5, req)

	suite.NoError(err)
	suite.Equal(models.RoleTrainer, resp.Role)
	suite.Nil(resp.LedTeamID)
}

func (suite *UserServiceTestSuite) TestUpdateUserLastAdminDemotion() {
	req := &service.UpdateUserRequest{Username: "boss", Role: models.RoleTrainer}
	suite.f.expectTx()
	suite.f.users.EXPECT().GetByID(uint(5)).Return(user(5, "boss", models.RoleAdmin, nil), nil)
	suite.f.users.EXPECT().CountByRole(models.RoleAdmin).Return(int64(1), nil)

	_, err := suite.userService.UpdateUser(suite.ctx, admin(), 5, req)

	suite.ErrorIs(err, apperrors.ErrLastAdmin)
}

func (suite *UserServiceTestSuite) TestDeleteUserSelf() {
	err := suite.userService.DeleteUser(suite.ctx, admin(), 1)

	suite.ErrorIs(err, apperrors.ErrSelfDelete)
}

func (suite *UserServiceTestSuite) TestDeleteProtectedUser() {
	suite.f.expectTx()
	suite.f.users.EXPECT().GetByID(uint(9)).Return(user(9, service.ProtectedUsername, models.RoleAdmin, nil), nil)

	err := suite.userService.DeleteUser(suite.ctx, &service.Viewer{ID: 2, Role: models.RoleAdmin}, 9)

	suite.ErrorIs(err, apperrors.ErrProtectedUser)
}

func (suite *UserServiceTestSuite) TestDeleteLastAdmin() {
	suite.f.expectTx()
	suite.f.users.EXPECT().GetByID(uint(9)).Return(user(9, "boss", models.RoleAdmin, nil), nil)
	suite.f.users.EXPECT().CountByRole(models.RoleAdmin).Return(int64(1), nil)

	err := suite.userService.DeleteUser(suite.ctx, admin(), 9)

	suite.ErrorIs(err, apperrors.ErrLastAdmin)
}

func (suite *UserServiceTestSuite) TestDeleteTeamLeadDetachesAndClearsCoachings() {
	suite.f.expectTx()
	suite.f.users.EXPECT().GetByID(uint(6)).Return(user(6, "lead", models.RoleTeamLead, uintPtr(2)), nil)
	gomock.InOrder(
		suite.f.teams.EXPECT().DetachLeader(uint(6), uint(0)).Return(int64(1), nil),
		suite.f.users.EXPECT().SetLedTeam(uint(6), gomock.Nil()).Return(nil),
		suite.f.coachings.EXPECT().ClearCoach(uint(6)).Return(int64(4), nil),
		suite.f.users.EXPECT().Delete(uint(6)).Return(nil),
	)

	err := suite.userService.DeleteUser(suite.ctx, admin(), 6)

	suite.NoError(err)
}

func (suite *UserServiceTestSuite) TestListUsersPaginates() {
	suite.f.users.EXPECT().GetAll(10, 10).Return([]models.User{*user(11, "x", models.RoleTrainer, nil)}, int64(11), nil)

	resp, err := suite.userService.ListUsers(suite.ctx, admin(), "", 2)

	suite.NoError(err)
	suite.Equal(2, resp.Page)
	suite.Equal(2, resp.TotalPages)
	suite.Len(resp.Users, 1)
}

func (suite *UserServiceTestSuite) TestListUsersByRole() {
	suite.f.users.EXPECT().GetByRole(models.RoleTeamLead).Return([]models.User{*user(3, "lead", models.RoleTeamLead, nil)}, nil)

	resp, err := suite.userService.ListUsers(suite.ctx, admin(), "team_lead", 0)

	suite.NoError(err)
	suite.Equal(int64(1), resp.Total)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
