package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"capstone-backend/internal/api/handlers"
	"capstone-backend/internal/database/models"
	apperrors "capstone-backend/internal/errors"
	"capstone-backend/internal/mocks"
	"capstone-backend/internal/service"
	"capstone-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMembershipServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
	actor       service.Actor
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMembershipServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.actor = newActor(models.UserRoleStudent)

	v1 := suite.httpSuite.Router.Group("/api/v1", withActor(suite.actor))
	v1.POST("/sections/:id/teams", suite.handler.CreateTeam)
	v1.GET("/teams/:id", suite.handler.GetTeam)
	v1.POST("/teams/:id/members", suite.handler.AddMember)
	v1.DELETE("/teams/:id/members/:userId", suite.handler.RemoveMember)

	// Route without authentication
	suite.httpSuite.Router.POST("/anonymous/sections/:id/teams", suite.handler.CreateTeam)
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success without body", func(t *testing.T) {
		sectionID := uuid.New()
		team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: models.PlaceholderTeamName, SectionID: sectionID}

		suite.mockService.EXPECT().
			CreateTeam(gomock.Any(), suite.actor, sectionID, gomock.Eq(&service.CreateTeamRequest{})).
			Return(team, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/sections/"+sectionID.String()+"/teams", nil)

		var response models.Team
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, team.ID, response.ID)
		assert.Equal(t, sectionID, response.SectionID)
	})

	suite.T().Run("Admin passes a student", func(t *testing.T) {
		sectionID := uuid.New()
		studentID := uuid.New()

		suite.mockService.EXPECT().
			CreateTeam(gomock.Any(), suite.actor, sectionID, gomock.Eq(&service.CreateTeamRequest{StudentID: &studentID})).
			Return(&models.Team{SectionID: sectionID}, nil).
			Times(1)

		body := map[string]interface{}{"student_id": studentID.String()}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/sections/"+sectionID.String()+"/teams", body)
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Invalid section ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/sections/not-a-uuid/teams", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid section ID")
	})

	suite.T().Run("Unauthenticated", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/anonymous/sections/"+uuid.New().String()+"/teams", nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "Duplicate team", err: apperrors.ErrDuplicateTeam, status: http.StatusConflict, code: "DuplicateTeam"},
		{name: "Not enrolled", err: apperrors.ErrNotEnrolled, status: http.StatusForbidden, code: "NotEnrolled"},
		{name: "Section not found", err: apperrors.ErrSectionNotFound, status: http.StatusNotFound, code: "NotFound"},
		{name: "Team locked", err: apperrors.ErrTeamLocked, status: http.StatusUnprocessableEntity, code: "TeamLocked"},
	}
	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockService.EXPECT().
				CreateTeam(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err).
				Times(1)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/sections/"+uuid.New().String()+"/teams", nil)

			var body errorBody
			testutils.AssertJSONResponse(t, recorder, tc.status, &body)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.err.Error(), body.Error)
		})
	}
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Not found", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().
			GetTeam(gomock.Any(), teamID).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/"+teamID.String(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})

	suite.T().Run("Internal error text is hidden", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetTeam(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewInternalError("get team", errors.New("pq: connection refused"))).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/"+uuid.New().String(), nil)

		var body errorBody
		testutils.AssertJSONResponse(t, recorder, http.StatusInternalServerError, &body)
		assert.Equal(t, "internal server error", body.Error)
		assert.Equal(t, "Internal", body.Kind)
		assert.NotContains(t, recorder.Body.String(), "pq:")
	})
}

func (suite *TeamHandlerTestSuite) TestAddMember() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		userID := uuid.New()
		member := &models.TeamMember{TeamID: teamID, UserID: userID}

		suite.mockService.EXPECT().
			AddMember(gomock.Any(), suite.actor, teamID, gomock.Eq(&service.AddMemberRequest{UserID: userID})).
			Return(member, nil).
			Times(1)

		body := map[string]interface{}{"user_id": userID.String()}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/"+teamID.String()+"/members", body)

		var response models.TeamMember
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, userID, response.UserID)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/teams/"+uuid.New().String()+"/members", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Team full", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrTeamFull).
			Times(1)

		body := map[string]interface{}{"user_id": uuid.New().String()}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/"+uuid.New().String()+"/members", body)

		var response errorBody
		testutils.AssertJSONResponse(t, recorder, http.StatusConflict, &response)
		assert.Equal(t, "TeamFull", response.Code)
		assert.Equal(t, "Conflict", response.Kind)
	})

	suite.T().Run("Approved project", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrApprovedLocked).
			Times(1)

		body := map[string]interface{}{"user_id": uuid.New().String()}
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/"+uuid.New().String()+"/members", body)

		var response errorBody
		testutils.AssertJSONResponse(t, recorder, http.StatusUnprocessableEntity, &response)
		assert.Equal(t, "ApprovedLocked", response.Code)
	})
}

func (suite *TeamHandlerTestSuite) TestRemoveMember() {
	suite.T().Run("Last member removes the team", func(t *testing.T) {
		teamID := uuid.New()
		userID := suite.actor.ID
		result := &service.RemoveMemberResult{
			TeamID:      teamID,
			UserID:      userID,
			TeamDeleted: true,
			Deleted:     map[string]int64{"team_members": 1, "teams": 1},
		}

		suite.mockService.EXPECT().
			RemoveMember(gomock.Any(), suite.actor, teamID, userID).
			Return(result, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/"+teamID.String()+"/members/"+userID.String(), nil)

		var response service.RemoveMemberResult
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.TeamDeleted)
		assert.Equal(t, int64(1), response.Deleted["teams"])
	})

	suite.T().Run("Invalid user ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/"+uuid.New().String()+"/members/bad", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid user ID")
	})

	suite.T().Run("Last member removed by someone else", func(t *testing.T) {
		suite.mockService.EXPECT().
			RemoveMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrLastMember).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/"+uuid.New().String()+"/members/"+uuid.New().String(), nil)

		var response errorBody
		testutils.AssertJSONResponse(t, recorder, http.StatusConflict, &response)
		assert.Equal(t, "LastMember", response.Code)
	})
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
