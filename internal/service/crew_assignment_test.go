package service

import (
	"testing"

	"field-ops-backend/internal/database/models"
	apperrors "field-ops-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// CrewAssignmentServiceTestSuite defines the test suite for CrewAssignmentService
type CrewAssignmentServiceTestSuite struct {
	suite.Suite
	assignmentRepo *MockCrewAssignmentRepository
	crewRepo       *MockCrewMemberRepository
	planRepo       *MockDayPlanRepository
	eventRepo      *MockScheduleEventRepository
	service        *CrewAssignmentService

	tenantID uuid.UUID
	crewID   uuid.UUID
	planID   uuid.UUID
}

// SetupTest sets up the test suite
func (suite *CrewAssignmentServiceTestSuite) SetupTest() {
	suite.assignmentRepo = new(MockCrewAssignmentRepository)
	suite.crewRepo = new(MockCrewMemberRepository)
	suite.planRepo = new(MockDayPlanRepository)
	suite.eventRepo = new(MockScheduleEventRepository)
	suite.service = NewCrewAssignmentService(
		suite.assignmentRepo, suite.crewRepo, suite.planRepo, suite.eventRepo,
		validator.New(),
	)

	suite.tenantID = uuid.New()
	suite.crewID = uuid.New()
	suite.planID = uuid.New()
}

func (suite *CrewAssignmentServiceTestSuite) TestAssign_DayPlan_Success() {
	suite.crewRepo.On("GetByID", suite.tenantID, suite.crewID).
		Return(&models.CrewMember{}, nil)
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(&models.DayPlan{}, nil)
	suite.assignmentRepo.On("GetActiveByDayPlanID", suite.tenantID, suite.planID).
		Return(nil, nil)
	suite.assignmentRepo.On("Create", mock.AnythingOfType("*models.CrewAssignment")).
		Return(nil)

	response, err := suite.service.Assign(suite.tenantID, &AssignCrewRequest{
		CrewMemberID: suite.crewID,
		DayPlanID:    &suite.planID,
	})

	suite.NoError(err)
	suite.True(response.Active)
	suite.Equal(models.CrewRoleTechnician, response.Role)
	suite.assignmentRepo.AssertNotCalled(suite.T(), "Deactivate", mock.Anything, mock.Anything)
}

func (suite *CrewAssignmentServiceTestSuite) TestAssign_Reassign_DeactivatesPrior() {
	prior := &models.CrewAssignment{CrewMemberID: uuid.New(), DayPlanID: &suite.planID, Active: true}
	prior.TenantID = suite.tenantID
	prior.ID = uuid.New()

	suite.crewRepo.On("GetByID", suite.tenantID, suite.crewID).
		Return(&models.CrewMember{}, nil)
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(&models.DayPlan{}, nil)
	suite.assignmentRepo.On("GetActiveByDayPlanID", suite.tenantID, suite.planID).
		Return(prior, nil)
	suite.assignmentRepo.On("Deactivate", suite.tenantID, prior.ID).
		Return(nil)
	suite.assignmentRepo.On("Create", mock.AnythingOfType("*models.CrewAssignment")).
		Return(nil)

	_, err := suite.service.Assign(suite.tenantID, &AssignCrewRequest{
		CrewMemberID: suite.crewID,
		DayPlanID:    &suite.planID,
	})

	suite.NoError(err)
	suite.assignmentRepo.AssertExpectations(suite.T())
}

func (suite *CrewAssignmentServiceTestSuite) TestAssign_Event_Success() {
	eventID := uuid.New()
	suite.crewRepo.On("GetByID", suite.tenantID, suite.crewID).
		Return(&models.CrewMember{}, nil)
	suite.eventRepo.On("GetByID", suite.tenantID, eventID).
		Return(&models.ScheduleEvent{}, nil)
	suite.assignmentRepo.On("GetActiveByEventID", suite.tenantID, eventID).
		Return(nil, nil)
	suite.assignmentRepo.On("Create", mock.AnythingOfType("*models.CrewAssignment")).
		Return(nil)

	response, err := suite.service.Assign(suite.tenantID, &AssignCrewRequest{
		CrewMemberID:    suite.crewID,
		ScheduleEventID: &eventID,
		Role:            models.CrewRoleSupervisor,
	})

	suite.NoError(err)
	suite.Equal(models.CrewRoleSupervisor, response.Role)
}

func (suite *CrewAssignmentServiceTestSuite) TestAssign_NoTarget_ValidationError() {
	_, err := suite.service.Assign(suite.tenantID, &AssignCrewRequest{
		CrewMemberID: suite.crewID,
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *CrewAssignmentServiceTestSuite) TestAssign_BothTargets_ValidationError() {
	eventID := uuid.New()
	_, err := suite.service.Assign(suite.tenantID, &AssignCrewRequest{
		CrewMemberID:    suite.crewID,
		DayPlanID:       &suite.planID,
		ScheduleEventID: &eventID,
	})

	suite.True(apperrors.IsValidation(err))
	suite.assignmentRepo.AssertNotCalled(suite.T(), "Create", mock.Anything)
}

func (suite *CrewAssignmentServiceTestSuite) TestAssign_BadRole_ValidationError() {
	_, err := suite.service.Assign(suite.tenantID, &AssignCrewRequest{
		CrewMemberID: suite.crewID,
		DayPlanID:    &suite.planID,
		Role:         "janitor",
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *CrewAssignmentServiceTestSuite) TestGetActiveByDayPlanID_NoneActive_NotFound() {
	suite.assignmentRepo.On("GetActiveByDayPlanID", suite.tenantID, suite.planID).
		Return(nil, nil)

	_, err := suite.service.GetActiveByDayPlanID(suite.tenantID, suite.planID)

	suite.ErrorIs(err, apperrors.ErrCrewAssignmentNotFound)
}

func TestCrewAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CrewAssignmentServiceTestSuite))
}
