package service

import (
	"testing"
	"time"

	"field-ops-backend/internal/database/models"
	apperrors "field-ops-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// KitAssignmentServiceTestSuite defines the test suite for KitAssignmentService
type KitAssignmentServiceTestSuite struct {
	suite.Suite
	assignmentRepo *MockKitAssignmentRepository
	overrideRepo   *MockKitOverrideLogRepository
	kitRepo        *MockKitRepository
	eventRepo      *MockScheduleEventRepository
	crewRepo       *MockCrewMemberRepository
	service        *KitAssignmentService

	tenantID uuid.UUID
	kitID    uuid.UUID
	eventID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *KitAssignmentServiceTestSuite) SetupTest() {
	suite.assignmentRepo = new(MockKitAssignmentRepository)
	suite.overrideRepo = new(MockKitOverrideLogRepository)
	suite.kitRepo = new(MockKitRepository)
	suite.eventRepo = new(MockScheduleEventRepository)
	suite.crewRepo = new(MockCrewMemberRepository)
	suite.service = NewKitAssignmentService(
		suite.assignmentRepo, suite.overrideRepo, suite.kitRepo,
		suite.eventRepo, suite.crewRepo, validator.New(),
	)

	suite.tenantID = uuid.New()
	suite.kitID = uuid.New()
	suite.eventID = uuid.New()
}

func (suite *KitAssignmentServiceTestSuite) mowerKit() *models.Kit {
	kit := &models.Kit{
		TenantID: suite.tenantID,
		Code:     "mower-standard",
		Name:     "Standard Mower Kit",
		IsActive: true,
	}
	kit.ID = suite.kitID
	return kit
}

func (suite *KitAssignmentServiceTestSuite) TestAssign_Kit_Success() {
	suite.kitRepo.On("GetByID", suite.tenantID, suite.kitID).
		Return(suite.mowerKit(), nil)
	suite.eventRepo.On("GetByID", suite.tenantID, suite.eventID).
		Return(&models.ScheduleEvent{}, nil)
	suite.assignmentRepo.On("GetActiveByEventID", suite.tenantID, suite.eventID).
		Return(nil, nil)
	suite.assignmentRepo.On("Create", mock.AnythingOfType("*models.KitAssignment")).
		Return(nil)

	response, err := suite.service.Assign(suite.tenantID, &AssignKitRequest{
		Ref:             KitRef{Kind: KitRefKit, ID: suite.kitID},
		ScheduleEventID: suite.eventID,
	})

	suite.NoError(err)
	suite.Equal(suite.kitID, response.KitID)
	suite.Nil(response.VariantID)
	suite.False(response.Superseded)
	suite.assignmentRepo.AssertNotCalled(suite.T(), "MarkSuperseded", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *KitAssignmentServiceTestSuite) TestAssign_Variant_ResolvesOwningKit() {
	variantID := uuid.New()
	variant := &models.KitVariant{KitID: suite.kitID, Name: "Winter"}
	variant.TenantID = suite.tenantID
	variant.ID = variantID

	suite.kitRepo.On("GetVariantByID", suite.tenantID, variantID).
		Return(variant, nil)
	suite.kitRepo.On("GetByID", suite.tenantID, suite.kitID).
		Return(suite.mowerKit(), nil)
	suite.eventRepo.On("GetByID", suite.tenantID, suite.eventID).
		Return(&models.ScheduleEvent{}, nil)
	suite.assignmentRepo.On("GetActiveByEventID", suite.tenantID, suite.eventID).
		Return(nil, nil)
	suite.assignmentRepo.On("Create", mock.AnythingOfType("*models.KitAssignment")).
		Return(nil)

	response, err := suite.service.Assign(suite.tenantID, &AssignKitRequest{
		Ref:             KitRef{Kind: KitRefVariant, ID: variantID},
		ScheduleEventID: suite.eventID,
	})

	suite.NoError(err)
	suite.Equal(suite.kitID, response.KitID)
	suite.NotNil(response.VariantID)
	suite.Equal(variantID, *response.VariantID)
}

func (suite *KitAssignmentServiceTestSuite) TestAssign_Reassign_SupersedesPrior() {
	prior := &models.KitAssignment{
		KitID:           suite.kitID,
		ScheduleEventID: suite.eventID,
		AssignedAt:      time.Now().Add(-time.Hour),
	}
	prior.TenantID = suite.tenantID
	prior.ID = uuid.New()

	suite.kitRepo.On("GetByID", suite.tenantID, suite.kitID).
		Return(suite.mowerKit(), nil)
	suite.eventRepo.On("GetByID", suite.tenantID, suite.eventID).
		Return(&models.ScheduleEvent{}, nil)
	suite.assignmentRepo.On("GetActiveByEventID", suite.tenantID, suite.eventID).
		Return(prior, nil)
	suite.assignmentRepo.On("MarkSuperseded", suite.tenantID, prior.ID, mock.AnythingOfType("time.Time")).
		Return(nil)
	suite.assignmentRepo.On("Create", mock.AnythingOfType("*models.KitAssignment")).
		Return(nil)

	_, err := suite.service.Assign(suite.tenantID, &AssignKitRequest{
		Ref:             KitRef{Kind: KitRefKit, ID: suite.kitID},
		ScheduleEventID: suite.eventID,
	})

	suite.NoError(err)
	suite.assignmentRepo.AssertExpectations(suite.T())
}

func (suite *KitAssignmentServiceTestSuite) TestAssign_InactiveKit_Error() {
	kit := suite.mowerKit()
	kit.IsActive = false
	suite.kitRepo.On("GetByID", suite.tenantID, suite.kitID).
		Return(kit, nil)

	_, err := suite.service.Assign(suite.tenantID, &AssignKitRequest{
		Ref:             KitRef{Kind: KitRefKit, ID: suite.kitID},
		ScheduleEventID: suite.eventID,
	})

	suite.ErrorIs(err, apperrors.ErrKitInactive)
	suite.assignmentRepo.AssertNotCalled(suite.T(), "Create", mock.Anything)
}

func (suite *KitAssignmentServiceTestSuite) TestAssign_EventNotFound_Error() {
	suite.kitRepo.On("GetByID", suite.tenantID, suite.kitID).
		Return(suite.mowerKit(), nil)
	suite.eventRepo.On("GetByID", suite.tenantID, suite.eventID).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Assign(suite.tenantID, &AssignKitRequest{
		Ref:             KitRef{Kind: KitRefKit, ID: suite.kitID},
		ScheduleEventID: suite.eventID,
	})

	suite.ErrorIs(err, apperrors.ErrScheduleEventNotFound)
}

func (suite *KitAssignmentServiceTestSuite) TestRecordOverride_Success() {
	assignmentID := uuid.New()
	crewID := uuid.New()
	assignment := &models.KitAssignment{KitID: suite.kitID, ScheduleEventID: suite.eventID}
	assignment.TenantID = suite.tenantID
	assignment.ID = assignmentID

	suite.assignmentRepo.On("GetByID", suite.tenantID, assignmentID).
		Return(assignment, nil)
	suite.crewRepo.On("GetByID", suite.tenantID, crewID).
		Return(&models.CrewMember{}, nil)
	suite.overrideRepo.On("Create", mock.MatchedBy(func(entry *models.KitOverrideLog) bool {
		return entry.Reason == "blade bent on site" && entry.KitAssignmentID == assignmentID
	})).Return(nil)

	response, err := suite.service.RecordOverride(suite.tenantID, &RecordOverrideRequest{
		KitAssignmentID: assignmentID,
		ItemName:        "Mower blade",
		CrewMemberID:    crewID,
		Reason:          "  blade bent on site  ",
	})

	suite.NoError(err)
	suite.Equal("blade bent on site", response.Reason)
}

func (suite *KitAssignmentServiceTestSuite) TestRecordOverride_BlankReason_Error() {
	_, err := suite.service.RecordOverride(suite.tenantID, &RecordOverrideRequest{
		KitAssignmentID: uuid.New(),
		ItemName:        "Mower blade",
		CrewMemberID:    uuid.New(),
		Reason:          "   ",
	})

	suite.ErrorIs(err, apperrors.ErrReasonRequired)
	suite.overrideRepo.AssertNotCalled(suite.T(), "Create", mock.Anything)
}

func (suite *KitAssignmentServiceTestSuite) TestRecordOverride_ItemFromOtherKit_Error() {
	assignmentID := uuid.New()
	itemID := uuid.New()
	crewID := uuid.New()
	assignment := &models.KitAssignment{KitID: suite.kitID, ScheduleEventID: suite.eventID}
	assignment.TenantID = suite.tenantID
	assignment.ID = assignmentID
	foreign := &models.KitItem{KitID: uuid.New(), ItemName: "Chainsaw"}
	foreign.ID = itemID

	suite.assignmentRepo.On("GetByID", suite.tenantID, assignmentID).
		Return(assignment, nil)
	suite.crewRepo.On("GetByID", suite.tenantID, crewID).
		Return(&models.CrewMember{}, nil)
	suite.kitRepo.On("GetItemByID", suite.tenantID, itemID).
		Return(foreign, nil)

	_, err := suite.service.RecordOverride(suite.tenantID, &RecordOverrideRequest{
		KitAssignmentID: assignmentID,
		KitItemID:       &itemID,
		ItemName:        "Chainsaw",
		CrewMemberID:    crewID,
		Reason:          "swapped in",
	})

	suite.ErrorIs(err, apperrors.ErrKitItemNotFound)
}

func (suite *KitAssignmentServiceTestSuite) TestVerifyComplete_BaseSet_ReportsMissing() {
	assignmentID := uuid.New()
	assignment := &models.KitAssignment{KitID: suite.kitID, ScheduleEventID: suite.eventID}
	assignment.TenantID = suite.tenantID
	assignment.ID = assignmentID

	kit := suite.mowerKit()
	kit.Items = []models.KitItem{
		{KitID: suite.kitID, ItemName: "Mower blade", Required: true},
		{KitID: suite.kitID, ItemName: "Fuel can", Required: true},
		{KitID: suite.kitID, ItemName: "Spare line", Required: false},
	}

	suite.assignmentRepo.On("GetByID", suite.tenantID, assignmentID).
		Return(assignment, nil)
	suite.kitRepo.On("GetByID", suite.tenantID, suite.kitID).
		Return(kit, nil)

	response, err := suite.service.VerifyComplete(suite.tenantID, assignmentID, &VerifyKitRequest{
		PresentItems: []string{"mower blade"},
	})

	suite.NoError(err)
	suite.False(response.Complete)
	// optional "Spare line" never blocks completion
	suite.Equal([]string{"Fuel can"}, response.MissingItems)
}

func (suite *KitAssignmentServiceTestSuite) TestVerifyComplete_VariantAssigned_UsesVariantSet() {
	assignmentID := uuid.New()
	variantID := uuid.New()
	assignment := &models.KitAssignment{KitID: suite.kitID, VariantID: &variantID, ScheduleEventID: suite.eventID}
	assignment.TenantID = suite.tenantID
	assignment.ID = assignmentID

	variant := &models.KitVariant{KitID: suite.kitID, Name: "Winter"}
	variant.ID = variantID
	variant.Items = []models.KitItem{
		{KitID: suite.kitID, VariantID: &variantID, ItemName: "Winter blade", Required: true},
	}

	suite.assignmentRepo.On("GetByID", suite.tenantID, assignmentID).
		Return(assignment, nil)
	suite.kitRepo.On("GetVariantByID", suite.tenantID, variantID).
		Return(variant, nil)

	response, err := suite.service.VerifyComplete(suite.tenantID, assignmentID, &VerifyKitRequest{
		PresentItems: []string{"Winter blade"},
	})

	suite.NoError(err)
	suite.True(response.Complete)
	suite.Empty(response.MissingItems)
	suite.kitRepo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
}

func (suite *KitAssignmentServiceTestSuite) TestListOverrides_Success() {
	assignmentID := uuid.New()
	assignment := &models.KitAssignment{KitID: suite.kitID, ScheduleEventID: suite.eventID}
	assignment.TenantID = suite.tenantID
	assignment.ID = assignmentID

	entries := []models.KitOverrideLog{
		{KitAssignmentID: assignmentID, ItemName: "Mower blade", Reason: "bent"},
		{KitAssignmentID: assignmentID, ItemName: "Fuel can", Reason: "left at depot"},
	}

	suite.assignmentRepo.On("GetByID", suite.tenantID, assignmentID).
		Return(assignment, nil)
	suite.overrideRepo.On("GetByAssignmentID", suite.tenantID, assignmentID).
		Return(entries, nil)

	responses, err := suite.service.ListOverrides(suite.tenantID, assignmentID)

	suite.NoError(err)
	suite.Len(responses, 2)
	suite.Equal("bent", responses[0].Reason)
}

func (suite *KitAssignmentServiceTestSuite) TestListAllOverrides_Success() {
	entries := []models.KitOverrideLog{
		{KitAssignmentID: uuid.New(), ItemName: "Fuel can", Reason: "left at depot"},
		{KitAssignmentID: uuid.New(), ItemName: "Mower blade", Reason: "bent"},
	}

	suite.overrideRepo.On("GetAll", suite.tenantID, 20, 0).
		Return(entries, int64(2), nil)

	response, err := suite.service.ListAllOverrides(suite.tenantID, 0, 0)

	suite.NoError(err)
	suite.Len(response.Overrides, 2)
	suite.Equal(int64(2), response.Total)
	suite.Equal(20, response.Limit)
	suite.Equal("left at depot", response.Overrides[0].Reason)
}

func (suite *KitAssignmentServiceTestSuite) TestGetActiveByEventID_NoneActive_NotFound() {
	suite.assignmentRepo.On("GetActiveByEventID", suite.tenantID, suite.eventID).
		Return(nil, nil)

	_, err := suite.service.GetActiveByEventID(suite.tenantID, suite.eventID)

	suite.ErrorIs(err, apperrors.ErrKitAssignmentNotFound)
}

func TestKitAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(KitAssignmentServiceTestSuite))
}
