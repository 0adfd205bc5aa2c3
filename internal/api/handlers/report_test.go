package handlers_test

import (
	"net/http"
	"testing"

	"coaching-portal-backend/internal/api/handlers"
	apperrors "coaching-portal-backend/internal/errors"
	"coaching-portal-backend/internal/mocks"
	"coaching-portal-backend/internal/service"
	"coaching-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReportHandlerTestSuite defines the test suite for ReportHandler
type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockReportServiceInterface
	handler     *handlers.ReportHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.handler = handlers.NewReportHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest(asViewer(adminViewer))

	reports := suite.httpSuite.Router.Group("/api/v1/reports")
	{
		reports.GET("/teams", suite.handler.TeamPerformance)
		reports.GET("/teams/:id/members", suite.handler.MemberPerformance)
		reports.GET("/subjects", suite.handler.SubjectDistribution)
		reports.GET("/leaderboard", suite.handler.Leaderboard)
		reports.GET("/dashboard", suite.handler.Dashboard)
		reports.GET("/team-view", suite.handler.TeamView)
		reports.GET("/export", suite.handler.Export)
	}
	suite.httpSuite.Router.GET("/api/v1/team-members/:id/trend", suite.handler.MemberTrend)
}

func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportHandlerTestSuite) TestTeamPerformance() {
	suite.mockService.EXPECT().
		TeamPerformance(gomock.Any(), adminViewer, service.ReportQuery{Period: "30days", TeamID: "all", IncludeArchive: true}).
		Return([]service.TeamPerformance{
			{TeamID: uintPtr(1), TeamName: "Alpha", CoachingCount: 2, AvgScore: 70, MeetsBenchmark: false},
			{TeamName: "ARCHIV", Archive: true},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/teams?period=30days&team_id=all&include_archive=true", nil)

	var response []service.TeamPerformance
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 2)
	suite.Equal(70.0, response[0].AvgScore)
	suite.True(response[1].Archive)
}

func (suite *ReportHandlerTestSuite) TestMemberPerformance() {
	suite.T().Run("Regular team", func(t *testing.T) {
		suite.mockService.EXPECT().MemberPerformance(gomock.Any(), adminViewer, uint(3), service.ReportQuery{}).
			Return([]service.MemberPerformance{{MemberID: 5, Name: "Anna", TotalTimeDisplay: "1h 30min"}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/teams/3/members", nil)

		var response []service.MemberPerformance
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "1h 30min", response[0].TotalTimeDisplay)
	})

	suite.T().Run("Zero selects the archive", func(t *testing.T) {
		suite.mockService.EXPECT().MemberPerformance(gomock.Any(), adminViewer, uint(0), gomock.Any()).
			Return([]service.MemberPerformance{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/teams/0/members", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/teams/x/members", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})
}

func (suite *ReportHandlerTestSuite) TestSubjectsAndLeaderboard() {
	suite.mockService.EXPECT().SubjectDistribution(gomock.Any(), adminViewer, gomock.Any()).
		Return([]service.SubjectBucket{{Subject: "Sales", Count: 4}, {Subject: "Qualität", Count: 1}}, nil)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/subjects", nil)
	var buckets []service.SubjectBucket
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &buckets)
	suite.Equal("Sales", buckets[0].Subject)

	suite.mockService.EXPECT().Leaderboard(gomock.Any(), adminViewer, gomock.Any()).
		Return(&service.Leaderboard{Top: []service.TeamPerformance{{TeamName: "Alpha"}}, Bottom: []service.TeamPerformance{{TeamName: "Beta"}}}, nil)
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/leaderboard", nil)
	var board service.Leaderboard
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &board)
	suite.Equal("Beta", board.Bottom[0].TeamName)
}

func (suite *ReportHandlerTestSuite) TestDashboard() {
	suite.mockService.EXPECT().Dashboard(gomock.Any(), adminViewer, service.ReportQuery{Period: "current_quarter"}).
		Return(&service.DashboardResponse{Period: "current_quarter", Benchmark: 80, ChartLabels: []string{"Alpha"}, ChartScores: []float64{70}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/dashboard?period=current_quarter", nil)

	var response service.DashboardResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(80.0, response.Benchmark)
	suite.Equal([]string{"Alpha"}, response.ChartLabels)
}

func (suite *ReportHandlerTestSuite) TestTeamView() {
	suite.T().Run("Explicit team", func(t *testing.T) {
		suite.mockService.EXPECT().TeamView(gomock.Any(), adminViewer, uintPtr(3), gomock.Any()).
			Return(&service.TeamViewResponse{Team: service.TeamPerformance{TeamName: "Alpha"}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/team-view?team_id=3", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Own team missing", func(t *testing.T) {
		suite.mockService.EXPECT().TeamView(gomock.Any(), adminViewer, nil, gomock.Any()).
			Return(nil, apperrors.ErrUserNotAssignedToTeam)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/team-view", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "not assigned")
	})
}

func (suite *ReportHandlerTestSuite) TestMemberTrend() {
	suite.mockService.EXPECT().MemberTrend(gomock.Any(), adminViewer, uint(5), 10).
		Return(&service.TrendResponse{MemberID: 5, Labels: []string{"01.03."}, Scores: []float64{70}, Dates: []string{"2024-03-01"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/team-members/5/trend?limit=10", nil)

	var response service.TrendResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal([]float64{70}, response.Scores)
}

func (suite *ReportHandlerTestSuite) TestExport() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Export(gomock.Any(), adminViewer, service.ReportQuery{Period: "2024-03"}).
			Return([]byte("PK\x03\x04"), "coaching-report-2024-03.xlsx", nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/export?period=2024-03", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Content-Disposition"), "coaching-report-2024-03.xlsx")
		assert.Contains(t, recorder.Header().Get("Content-Type"), "spreadsheetml")
		assert.Equal(t, "PK\x03\x04", recorder.Body.String())
	})

	suite.T().Run("Forbidden", func(t *testing.T) {
		suite.mockService.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, "", apperrors.ErrForbidden)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/reports/export", nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
