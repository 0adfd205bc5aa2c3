package handlers_test

import (
	"errors"
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

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest(asViewer(adminViewer))

	teams := suite.httpSuite.Router.Group("/api/v1/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &service.TeamResponse{ID: 3, Name: "Alpha", LeaderID: uintPtr(2)}
		suite.mockService.EXPECT().
			CreateTeam(gomock.Any(), adminViewer, &service.TeamRequest{Name: "Alpha", LeaderID: uintPtr(2)}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{
			"name":      "Alpha",
			"leader_id": 2,
		})

		var response service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "Alpha", response.Name)
		assert.Equal(t, uint(2), *response.LeaderID)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/teams", "invalid json")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Leader is not a team lead", func(t *testing.T) {
		suite.mockService.EXPECT().CreateTeam(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrLeaderNotTeamLead)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{"name": "Alpha", "leader_id": 4})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "team lead role")
	})

	suite.T().Run("Duplicate name", func(t *testing.T) {
		suite.mockService.EXPECT().CreateTeam(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrTeamExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{"name": "Alpha"})
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("Leader not found", func(t *testing.T) {
		suite.mockService.EXPECT().CreateTeam(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrLeaderNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{"name": "Alpha", "leader_id": 99})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().GetTeam(gomock.Any(), adminViewer, uint(3)).
			Return(&service.TeamResponse{ID: 3, Name: "Alpha", MemberCount: 4}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/3", nil)

		var response service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(4), response.MemberCount)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/abc", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().GetTeam(gomock.Any(), gomock.Any(), uint(9)).Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/9", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})
}

func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.mockService.EXPECT().ListTeams(gomock.Any(), adminViewer).
		Return([]service.TeamResponse{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Beta"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams", nil)

	var response []service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 2)
}

func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	suite.T().Run("Remove leader", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateTeam(gomock.Any(), adminViewer, uint(3), &service.TeamRequest{Name: "Alpha"}).
			Return(&service.TeamResponse{ID: 3, Name: "Alpha"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/3", map[string]interface{}{"name": "Alpha"})

		var response service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Nil(t, response.LeaderID)
	})

	suite.T().Run("Reserved name", func(t *testing.T) {
		suite.mockService.EXPECT().UpdateTeam(gomock.Any(), gomock.Any(), uint(3), gomock.Any()).
			Return(nil, apperrors.ErrReservedTeamName)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/3", map[string]interface{}{"name": "ARCHIV"})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "reserved")
	})
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteTeam(gomock.Any(), adminViewer, uint(3)).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/3", nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Team has members", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteTeam(gomock.Any(), gomock.Any(), uint(4)).Return(apperrors.ErrTeamHasMembers)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/4", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "still has members")
	})

	suite.T().Run("Forbidden", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteTeam(gomock.Any(), gomock.Any(), uint(5)).Return(apperrors.ErrForbidden)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/5", nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("Database failure is not leaked", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteTeam(gomock.Any(), gomock.Any(), uint(6)).
			Return(errors.New(`pq: update or delete on table "teams" violates foreign key constraint`))

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/6", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "internal server error")
		assert.NotContains(t, recorder.Body.String(), "foreign key")
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
