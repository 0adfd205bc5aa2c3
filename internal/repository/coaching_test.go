//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"coaching-portal-backend/internal/database/models"
	"coaching-portal-backend/internal/period"
	"coaching-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// CoachingRepositoryTestSuite tests the CoachingRepository
type CoachingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CoachingRepository
	factories     *testutils.FactorySet
}

func (suite *CoachingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCoachingRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *CoachingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *CoachingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *CoachingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedTeam creates a team with one member and returns both
func (suite *CoachingRepositoryTestSuite) seedTeam(name string) (*models.Team, *models.TeamMember) {
	team := suite.factories.Team.WithName(name)
	suite.baseTestSuite.Persist(suite.T(), team)
	member := suite.factories.TeamMember.InTeam(team.ID)
	suite.baseTestSuite.Persist(suite.T(), member)
	return team, member
}

func (suite *CoachingRepositoryTestSuite) TestTeamStatsAverages() {
	_, m1 := suite.seedTeam("Alpha")
	suite.baseTestSuite.Persist(suite.T(),
		suite.factories.Coaching.WithMark(m1.ID, 8, 20),
		suite.factories.Coaching.WithMark(m1.ID, 6, 25),
	)

	rows, err := suite.repo.TeamStats(CoachingFilter{})
	suite.NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("Alpha", rows[0].TeamName)
	suite.Equal(int64(2), rows[0].CoachingCount)
	suite.InDelta(70.0, rows[0].AvgScore, 0.001)
	suite.Equal(int64(45), rows[0].TotalTime)
}

func (suite *CoachingRepositoryTestSuite) TestTeamStatsKeepsEmptyTeams() {
	_, m1 := suite.seedTeam("Alpha")
	suite.seedTeam("Beta")
	suite.baseTestSuite.Persist(suite.T(), suite.factories.Team.WithName("Gamma"))
	suite.baseTestSuite.Persist(suite.T(), suite.factories.Coaching.WithMark(m1.ID, 9, 10))

	rows, err := suite.repo.TeamStats(CoachingFilter{})
	suite.NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal("Beta", rows[1].TeamName)
	suite.Zero(rows[1].CoachingCount)
	suite.Zero(rows[1].AvgScore)
	suite.Zero(rows[1].TotalTime)
	suite.Equal("Gamma", rows[2].TeamName)
	suite.Zero(rows[2].CoachingCount)
}

func (suite *CoachingRepositoryTestSuite) TestTeamStatsDateRangeKeepsTeamRows() {
	_, m1 := suite.seedTeam("Alpha")
	old := suite.factories.Coaching.WithMark(m1.ID, 5, 10)
	old.CoachingDate = time.Date(2023, time.January, 5, 10, 0, 0, 0, time.UTC)
	suite.baseTestSuite.Persist(suite.T(), old)

	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)
	rows, err := suite.repo.TeamStats(CoachingFilter{Range: period.Range{Start: &start, End: &end}})
	suite.NoError(err)
	suite.Require().Len(rows, 1)
	suite.Zero(rows[0].CoachingCount)
}

func (suite *CoachingRepositoryTestSuite) TestTeamStatsTeamFilter() {
	alpha, m1 := suite.seedTeam("Alpha")
	_, m2 := suite.seedTeam("Beta")
	suite.baseTestSuite.Persist(suite.T(),
		suite.factories.Coaching.WithMark(m1.ID, 8, 10),
		suite.factories.Coaching.WithMark(m2.ID, 2, 10),
	)

	rows, err := suite.repo.TeamStats(CoachingFilter{TeamID: &alpha.ID})
	suite.NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(alpha.ID, rows[0].TeamID)
	suite.InDelta(80.0, rows[0].AvgScore, 0.001)
}

func (suite *CoachingRepositoryTestSuite) TestAggregateArchiveBucket() {
	_, m1 := suite.seedTeam("Alpha")
	archived := suite.factories.TeamMember.Create()
	suite.baseTestSuite.Persist(suite.T(), archived)
	suite.baseTestSuite.Persist(suite.T(),
		suite.factories.Coaching.WithMark(m1.ID, 8, 10),
		suite.factories.Coaching.WithMark(archived.ID, 4, 15),
		suite.factories.Coaching.WithMark(archived.ID, 6, 15),
	)

	row, err := suite.repo.Aggregate(CoachingFilter{Archived: true})
	suite.NoError(err)
	suite.Equal(int64(2), row.CoachingCount)
	suite.InDelta(50.0, row.AvgScore, 0.001)
	suite.Equal(int64(30), row.TotalTime)

	// archived rows never count toward a real team
	rows, err := suite.repo.TeamStats(CoachingFilter{})
	suite.NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(int64(1), rows[0].CoachingCount)
}

func (suite *CoachingRepositoryTestSuite) TestAggregateEmpty() {
	row, err := suite.repo.Aggregate(CoachingFilter{})
	suite.NoError(err)
	suite.Zero(row.CoachingCount)
	suite.Zero(row.AvgScore)
}

func (suite *CoachingRepositoryTestSuite) TestVisibilityScope() {
	alpha, m1 := suite.seedTeam("Alpha")
	_, m2 := suite.seedTeam("Beta")
	lead := suite.factories.User.TeamLead()
	other := suite.factories.User.WithRole(models.RoleTrainer)
	suite.baseTestSuite.Persist(suite.T(), lead, other)
	suite.baseTestSuite.Persist(suite.T(),
		suite.factories.Coaching.For(m1.ID, &other.ID),
		suite.factories.Coaching.For(m2.ID, &lead.ID),
		suite.factories.Coaching.For(m2.ID, &other.ID),
	)

	rows, total, err := suite.repo.List(CoachingFilter{Scope: &VisibilityScope{TeamID: &alpha.ID, CoachID: lead.ID}}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(rows, 2)

	rows, total, err = suite.repo.List(CoachingFilter{Scope: &VisibilityScope{CoachID: lead.ID}}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(rows, 1)
	suite.Equal(m2.ID, rows[0].TeamMemberID)
}

func (suite *CoachingRepositoryTestSuite) TestListNewestFirstWithRelations() {
	_, m1 := suite.seedTeam("Alpha")
	coach := suite.factories.User.WithRole(models.RoleQualityCoach)
	suite.baseTestSuite.Persist(suite.T(), coach)
	older := suite.factories.Coaching.For(m1.ID, &coach.ID)
	newer := suite.factories.Coaching.For(m1.ID, &coach.ID)
	newer.CoachingDate = older.CoachingDate.Add(24 * time.Hour)
	suite.baseTestSuite.Persist(suite.T(), older, newer)

	rows, total, err := suite.repo.List(CoachingFilter{}, 1, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(rows, 1)
	suite.Equal(newer.ID, rows[0].ID)
	suite.Require().NotNil(rows[0].TeamMember)
	suite.Require().NotNil(rows[0].TeamMember.Team)
	suite.Equal("Alpha", rows[0].TeamMember.Team.Name)
	suite.Equal(coach.Username, rows[0].CoachName())
}

func (suite *CoachingRepositoryTestSuite) TestSearchMatchesMemberCoachAndSubject() {
	team := suite.factories.Team.WithName("Alpha")
	suite.baseTestSuite.Persist(suite.T(), team)
	anna := suite.factories.TeamMember.InTeam(team.ID)
	anna.Name = "Anna 100%"
	suite.baseTestSuite.Persist(suite.T(), anna)
	quality := suite.factories.Coaching.For(anna.ID, nil)
	quality.Subject = models.CoachingSubjectQuality
	suite.baseTestSuite.Persist(suite.T(), quality, suite.factories.Coaching.For(anna.ID, nil))

	rows, err := suite.repo.Find(CoachingFilter{Search: "anna"})
	suite.NoError(err)
	suite.Len(rows, 2)

	rows, err = suite.repo.Find(CoachingFilter{Search: "qualit"})
	suite.NoError(err)
	suite.Len(rows, 1)

	// wildcard characters are matched literally
	rows, err = suite.repo.Find(CoachingFilter{Search: "%"})
	suite.NoError(err)
	suite.Len(rows, 2)
	rows, err = suite.repo.Find(CoachingFilter{Search: "_nna"})
	suite.NoError(err)
	suite.Empty(rows)
}

func (suite *CoachingRepositoryTestSuite) TestSubjectCounts() {
	_, m1 := suite.seedTeam("Alpha")
	general := suite.factories.Coaching.For(m1.ID, nil)
	general.Subject = models.CoachingSubjectGeneral
	suite.baseTestSuite.Persist(suite.T(),
		suite.factories.Coaching.For(m1.ID, nil),
		suite.factories.Coaching.For(m1.ID, nil),
		general,
	)

	rows, err := suite.repo.SubjectCounts(CoachingFilter{})
	suite.NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal(string(models.CoachingSubjectSales), rows[0].Subject)
	suite.Equal(int64(2), rows[0].Count)
}

func (suite *CoachingRepositoryTestSuite) TestGetByMemberAndClearCoach() {
	_, m1 := suite.seedTeam("Alpha")
	coach := suite.factories.User.WithRole(models.RoleTrainer)
	suite.baseTestSuite.Persist(suite.T(), coach)
	for i := 0; i < 3; i++ {
		c := suite.factories.Coaching.For(m1.ID, &coach.ID)
		c.CoachingDate = c.CoachingDate.AddDate(0, 0, i)
		suite.baseTestSuite.Persist(suite.T(), c)
	}

	latest, err := suite.repo.GetByMember(m1.ID, 2)
	suite.NoError(err)
	suite.Len(latest, 2)
	suite.True(latest[0].CoachingDate.After(latest[1].CoachingDate))

	all, err := suite.repo.GetByMember(m1.ID, 0)
	suite.NoError(err)
	suite.Len(all, 3)

	n, err := suite.repo.ClearCoach(coach.ID)
	suite.NoError(err)
	suite.Equal(int64(3), n)

	reloaded, err := suite.repo.GetByID(all[0].ID)
	suite.NoError(err)
	suite.Nil(reloaded.CoachID)
}

func (suite *CoachingRepositoryTestSuite) TestUpdateKeepsReviewerNotesAndCoach() {
	_, m1 := suite.seedTeam("Alpha")
	coach := suite.factories.User.WithRole(models.RoleTrainer)
	suite.baseTestSuite.Persist(suite.T(), coach)
	c := suite.factories.Coaching.For(m1.ID, &coach.ID)
	suite.Require().NoError(suite.repo.Create(c))
	suite.Require().NoError(suite.repo.UpdateReviewerNotes(c.ID, "gut"))

	c.PerformanceMark = 10
	c.CoachID = nil
	suite.Require().NoError(suite.repo.Update(c))

	reloaded, err := suite.repo.GetByID(c.ID)
	suite.NoError(err)
	suite.Equal(10, reloaded.PerformanceMark)
	suite.Require().NotNil(reloaded.ReviewerNotes)
	suite.Equal("gut", *reloaded.ReviewerNotes)
	suite.Require().NotNil(reloaded.CoachID)
	suite.Equal(coach.ID, *reloaded.CoachID)
}

func TestCoachingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CoachingRepositoryTestSuite))
}
