//go:build integration
// +build integration

package repository

import (
	"testing"

	"coaching-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factories     *testutils.FactorySet
}

func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) TestGetByNameInsensitive() {
	team := suite.factories.Team.WithName("Alpha")
	suite.Require().NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByNameInsensitive("ALPHA")
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	_, err = suite.repo.GetByNameInsensitive("Beta")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestGetAllOrderedByName() {
	suite.baseTestSuite.Persist(suite.T(), suite.factories.Team.WithName("Gamma"), suite.factories.Team.WithName("Alpha"))

	teams, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Require().Len(teams, 2)
	suite.Equal("Alpha", teams[0].Name)
}

func (suite *TeamRepositoryTestSuite) TestSetAndDetachLeader() {
	a := suite.factories.Team.Create()
	b := suite.factories.Team.Create()
	lead := suite.factories.User.TeamLead()
	suite.baseTestSuite.Persist(suite.T(), a, b, lead)

	suite.Require().NoError(suite.repo.SetLeader(a.ID, &lead.ID))
	suite.Require().NoError(suite.repo.SetLeader(b.ID, &lead.ID))

	n, err := suite.repo.DetachLeader(lead.ID, b.ID)
	suite.NoError(err)
	suite.Equal(int64(1), n)

	reloadedA, err := suite.repo.GetByID(a.ID)
	suite.NoError(err)
	suite.Nil(reloadedA.LeaderID)

	reloadedB, err := suite.repo.GetByID(b.ID)
	suite.NoError(err)
	suite.Require().NotNil(reloadedB.LeaderID)
	suite.Equal(lead.ID, *reloadedB.LeaderID)

	suite.Require().NoError(suite.repo.SetLeader(b.ID, nil))
	reloadedB, err = suite.repo.GetByID(b.ID)
	suite.NoError(err)
	suite.Nil(reloadedB.LeaderID)
}

func (suite *TeamRepositoryTestSuite) TestCountMembersIgnoresArchived() {
	team := suite.factories.Team.Create()
	suite.baseTestSuite.Persist(suite.T(), team)
	suite.baseTestSuite.Persist(suite.T(),
		suite.factories.TeamMember.InTeam(team.ID),
		suite.factories.TeamMember.InTeam(team.ID),
		suite.factories.TeamMember.Create(),
	)

	n, err := suite.repo.CountMembers(team.ID)
	suite.NoError(err)
	suite.Equal(int64(2), n)
}

func (suite *TeamRepositoryTestSuite) TestDeleteWithMembersViolatesForeignKey() {
	team := suite.factories.Team.Create()
	suite.baseTestSuite.Persist(suite.T(), team)
	suite.baseTestSuite.Persist(suite.T(), suite.factories.TeamMember.InTeam(team.ID))

	suite.Error(suite.repo.Delete(team.ID))

	empty := suite.factories.Team.Create()
	suite.baseTestSuite.Persist(suite.T(), empty)
	suite.NoError(suite.repo.Delete(empty.ID))
}

func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
