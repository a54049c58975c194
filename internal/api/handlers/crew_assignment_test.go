package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"field-ops-backend/internal/api/handlers"
	apperrors "field-ops-backend/internal/errors"
	"field-ops-backend/internal/mocks"
	"field-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CrewAssignmentHandlerTestSuite defines the test suite for CrewAssignmentHandler
type CrewAssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockCrewSv *mocks.MockCrewAssignmentServiceInterface
	handler    *handlers.CrewAssignmentHandler
	router     *gin.Engine
	tenantID   uuid.UUID
}

func (suite *CrewAssignmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCrewSv = mocks.NewMockCrewAssignmentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCrewAssignmentHandler(suite.mockCrewSv)
	suite.tenantID = uuid.New()

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("tenant_id", suite.tenantID.String())
	})
	suite.router.POST("/crew-assignments", suite.handler.AssignCrew)
	suite.router.GET("/day-plans/:id/crew-assignment", suite.handler.GetActiveForDayPlan)
	suite.router.GET("/events/:id/crew-assignment", suite.handler.GetActiveForEvent)
}

func (suite *CrewAssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CrewAssignmentHandlerTestSuite) TestAssignCrew_DayPlanTarget_Success() {
	crewMemberID := uuid.New()
	dayPlanID := uuid.New()
	resp := &service.CrewAssignmentResponse{
		ID:           uuid.New(),
		CrewMemberID: crewMemberID,
		DayPlanID:    &dayPlanID,
		Role:         "technician",
		Active:       true,
	}
	suite.mockCrewSv.EXPECT().Assign(suite.tenantID, gomock.Any()).Return(resp, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"crew_member_id": crewMemberID,
		"day_plan_id":    dayPlanID,
	})
	req := httptest.NewRequest(http.MethodPost, "/crew-assignments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.CrewAssignmentResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), dayPlanID, *got.DayPlanID)
	assert.Equal(suite.T(), "technician", string(got.Role))
	assert.True(suite.T(), got.Active)
}

func (suite *CrewAssignmentHandlerTestSuite) TestAssignCrew_NoTarget_BadRequest() {
	suite.mockCrewSv.EXPECT().Assign(suite.tenantID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("target", "exactly one of day_plan_id or schedule_event_id is required"))

	body, _ := json.Marshal(map[string]interface{}{
		"crew_member_id": uuid.New(),
	})
	req := httptest.NewRequest(http.MethodPost, "/crew-assignments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *CrewAssignmentHandlerTestSuite) TestGetActiveForDayPlan_Success() {
	dayPlanID := uuid.New()
	resp := &service.CrewAssignmentResponse{
		ID:           uuid.New(),
		CrewMemberID: uuid.New(),
		DayPlanID:    &dayPlanID,
		Role:         "supervisor",
		Active:       true,
	}
	suite.mockCrewSv.EXPECT().GetActiveByDayPlanID(suite.tenantID, dayPlanID).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/day-plans/"+dayPlanID.String()+"/crew-assignment", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.CrewAssignmentResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "supervisor", string(got.Role))
}

func (suite *CrewAssignmentHandlerTestSuite) TestGetActiveForEvent_None_NotFound() {
	eventID := uuid.New()
	suite.mockCrewSv.EXPECT().GetActiveByEventID(suite.tenantID, eventID).
		Return(nil, apperrors.ErrCrewAssignmentNotFound)

	req := httptest.NewRequest(http.MethodGet, "/events/"+eventID.String()+"/crew-assignment", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestCrewAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CrewAssignmentHandlerTestSuite))
}
