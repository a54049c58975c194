package service

import (
	"testing"
	"time"

	"field-ops-backend/internal/database/models"
	apperrors "field-ops-backend/internal/errors"
	"field-ops-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DayPlanServiceTestSuite defines the test suite for DayPlanService
type DayPlanServiceTestSuite struct {
	suite.Suite
	planRepo  *MockDayPlanRepository
	eventRepo *MockScheduleEventRepository
	crewRepo  *MockCrewMemberRepository
	jobRepo   *MockJobRepository
	service   *DayPlanService

	tenantID uuid.UUID
	crewID   uuid.UUID
	planID   uuid.UUID
	planDate time.Time
}

// SetupTest sets up the test suite
func (suite *DayPlanServiceTestSuite) SetupTest() {
	suite.planRepo = new(MockDayPlanRepository)
	suite.eventRepo = new(MockScheduleEventRepository)
	suite.crewRepo = new(MockCrewMemberRepository)
	suite.jobRepo = new(MockJobRepository)
	suite.service = NewDayPlanService(
		suite.planRepo, suite.eventRepo, suite.crewRepo, suite.jobRepo,
		validator.New(), scheduling.DefaultWorkDay(),
	)

	suite.tenantID = uuid.New()
	suite.crewID = uuid.New()
	suite.planID = uuid.New()
	suite.planDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
}

func (suite *DayPlanServiceTestSuite) draftPlan() *models.DayPlan {
	plan := &models.DayPlan{
		TenantID:     suite.tenantID,
		CrewMemberID: suite.crewID,
		PlanDate:     suite.planDate,
		Status:       models.DayPlanStatusDraft,
	}
	plan.ID = suite.planID
	return plan
}

func (suite *DayPlanServiceTestSuite) eventAt(hour, minute, durationMinutes, seq int, eventType models.EventType, status models.EventStatus) models.ScheduleEvent {
	event := models.ScheduleEvent{
		DayPlanID:                suite.planID,
		EventType:                eventType,
		SequenceOrder:            seq,
		ScheduledStart:           time.Date(2026, 3, 16, hour, minute, 0, 0, time.UTC),
		ScheduledDurationMinutes: durationMinutes,
		Status:                   status,
	}
	event.ID = uuid.New()
	event.TenantID = suite.tenantID
	return event
}

func (suite *DayPlanServiceTestSuite) TestCreate_Success() {
	suite.crewRepo.On("GetByID", suite.tenantID, suite.crewID).
		Return(&models.CrewMember{}, nil)
	suite.planRepo.On("GetByCrewAndDate", suite.tenantID, suite.crewID, suite.planDate).
		Return(nil, gorm.ErrRecordNotFound)
	suite.planRepo.On("Create", mock.AnythingOfType("*models.DayPlan")).
		Return(nil)

	response, err := suite.service.Create(suite.tenantID, &CreateDayPlanRequest{
		CrewMemberID: suite.crewID,
		PlanDate:     suite.planDate,
	})

	suite.NoError(err)
	suite.Equal(models.DayPlanStatusDraft, response.Status)
	suite.Equal("2026-03-16", response.PlanDate)
	suite.planRepo.AssertExpectations(suite.T())
}

func (suite *DayPlanServiceTestSuite) TestCreate_DuplicateDate_Error() {
	suite.crewRepo.On("GetByID", suite.tenantID, suite.crewID).
		Return(&models.CrewMember{}, nil)
	suite.planRepo.On("GetByCrewAndDate", suite.tenantID, suite.crewID, suite.planDate).
		Return(suite.draftPlan(), nil)

	_, err := suite.service.Create(suite.tenantID, &CreateDayPlanRequest{
		CrewMemberID: suite.crewID,
		PlanDate:     suite.planDate,
	})

	suite.ErrorIs(err, apperrors.ErrDayPlanExists)
	suite.planRepo.AssertNotCalled(suite.T(), "Create", mock.Anything)
}

func (suite *DayPlanServiceTestSuite) TestCreate_ConcurrentDuplicate_Error() {
	suite.crewRepo.On("GetByID", suite.tenantID, suite.crewID).
		Return(&models.CrewMember{}, nil)
	suite.planRepo.On("GetByCrewAndDate", suite.tenantID, suite.crewID, suite.planDate).
		Return(nil, gorm.ErrRecordNotFound)
	// a second create for the same crew and date slipped in between the
	// existence check and the insert; the unique index rejects the loser
	suite.planRepo.On("Create", mock.AnythingOfType("*models.DayPlan")).
		Return(&pgconn.PgError{Code: "23505"})

	_, err := suite.service.Create(suite.tenantID, &CreateDayPlanRequest{
		CrewMemberID: suite.crewID,
		PlanDate:     suite.planDate,
	})

	suite.ErrorIs(err, apperrors.ErrDayPlanExists)
}

func (suite *DayPlanServiceTestSuite) TestCreate_CrewMemberNotFound_Error() {
	suite.crewRepo.On("GetByID", suite.tenantID, suite.crewID).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Create(suite.tenantID, &CreateDayPlanRequest{
		CrewMemberID: suite.crewID,
		PlanDate:     suite.planDate,
	})

	suite.ErrorIs(err, apperrors.ErrCrewMemberNotFound)
}

func (suite *DayPlanServiceTestSuite) TestInsertEvent_Success() {
	existing := []models.ScheduleEvent{
		suite.eventAt(8, 0, 60, 0, models.EventTypeJob, models.EventStatusPending),
	}
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(suite.draftPlan(), nil)
	suite.eventRepo.On("GetByDayPlanID", suite.tenantID, suite.planID).
		Return(existing, nil)
	suite.eventRepo.On("Create", mock.AnythingOfType("*models.ScheduleEvent")).
		Return(nil)
	suite.planRepo.On("Update", mock.AnythingOfType("*models.DayPlan")).
		Return(nil)

	response, err := suite.service.InsertEvent(suite.tenantID, suite.planID, &InsertEventRequest{
		EventType:       models.EventTypeJob,
		ScheduledStart:  time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})

	suite.NoError(err)
	suite.Equal(1, response.SequenceOrder)
	suite.Equal(models.EventStatusPending, response.Status)
}

func (suite *DayPlanServiceTestSuite) TestInsertEvent_Overlap_Conflict() {
	existing := []models.ScheduleEvent{
		suite.eventAt(8, 0, 60, 0, models.EventTypeJob, models.EventStatusPending),
	}
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(suite.draftPlan(), nil)
	suite.eventRepo.On("GetByDayPlanID", suite.tenantID, suite.planID).
		Return(existing, nil)

	// 08:30-09:30 overlaps the existing 08:00-09:00 event
	_, err := suite.service.InsertEvent(suite.tenantID, suite.planID, &InsertEventRequest{
		EventType:       models.EventTypeJob,
		ScheduledStart:  time.Date(2026, 3, 16, 8, 30, 0, 0, time.UTC),
		DurationMinutes: 60,
	})

	suite.Error(err)
	var conflictErr *apperrors.SchedulingConflictError
	suite.ErrorAs(err, &conflictErr)
	suite.Len(conflictErr.Conflicts, 1)
	suite.Equal(existing[0].ID, conflictErr.Conflicts[0].EventA)
	suite.eventRepo.AssertNotCalled(suite.T(), "Create", mock.Anything)
}

func (suite *DayPlanServiceTestSuite) TestInsertEvent_BackToBack_NoConflict() {
	existing := []models.ScheduleEvent{
		suite.eventAt(8, 0, 60, 0, models.EventTypeJob, models.EventStatusPending),
	}
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(suite.draftPlan(), nil)
	suite.eventRepo.On("GetByDayPlanID", suite.tenantID, suite.planID).
		Return(existing, nil)
	suite.eventRepo.On("Create", mock.AnythingOfType("*models.ScheduleEvent")).
		Return(nil)
	suite.planRepo.On("Update", mock.AnythingOfType("*models.DayPlan")).
		Return(nil)

	// starts exactly when the previous one ends
	response, err := suite.service.InsertEvent(suite.tenantID, suite.planID, &InsertEventRequest{
		EventType:       models.EventTypeJob,
		ScheduledStart:  time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
	})

	suite.NoError(err)
	suite.Equal(1, response.SequenceOrder)
}

func (suite *DayPlanServiceTestSuite) TestInsertEvent_OverlapWithCancelled_Allowed() {
	existing := []models.ScheduleEvent{
		suite.eventAt(8, 0, 60, 0, models.EventTypeJob, models.EventStatusCancelled),
	}
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(suite.draftPlan(), nil)
	suite.eventRepo.On("GetByDayPlanID", suite.tenantID, suite.planID).
		Return(existing, nil)
	suite.eventRepo.On("Create", mock.AnythingOfType("*models.ScheduleEvent")).
		Return(nil)
	suite.planRepo.On("Update", mock.AnythingOfType("*models.DayPlan")).
		Return(nil)

	_, err := suite.service.InsertEvent(suite.tenantID, suite.planID, &InsertEventRequest{
		EventType:       models.EventTypeJob,
		ScheduledStart:  time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})

	suite.NoError(err)
}

func (suite *DayPlanServiceTestSuite) TestInsertEvent_SeventhJob_CapacityExceeded() {
	existing := make([]models.ScheduleEvent, 0, 6)
	for i := 0; i < MaxJobEventsPerDay; i++ {
		existing = append(existing, suite.eventAt(8+i, 0, 30, i, models.EventTypeJob, models.EventStatusPending))
	}
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(suite.draftPlan(), nil)
	suite.eventRepo.On("GetByDayPlanID", suite.tenantID, suite.planID).
		Return(existing, nil)

	_, err := suite.service.InsertEvent(suite.tenantID, suite.planID, &InsertEventRequest{
		EventType:       models.EventTypeJob,
		ScheduledStart:  time.Date(2026, 3, 16, 14, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
	})

	suite.True(apperrors.IsCapacityExceeded(err))
	suite.eventRepo.AssertNotCalled(suite.T(), "Create", mock.Anything)
}

func (suite *DayPlanServiceTestSuite) TestInsertEvent_SeventhBreak_Allowed() {
	existing := make([]models.ScheduleEvent, 0, 6)
	for i := 0; i < MaxJobEventsPerDay; i++ {
		existing = append(existing, suite.eventAt(8+i, 0, 30, i, models.EventTypeJob, models.EventStatusPending))
	}
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(suite.draftPlan(), nil)
	suite.eventRepo.On("GetByDayPlanID", suite.tenantID, suite.planID).
		Return(existing, nil)
	suite.eventRepo.On("Create", mock.AnythingOfType("*models.ScheduleEvent")).
		Return(nil)
	suite.planRepo.On("Update", mock.AnythingOfType("*models.DayPlan")).
		Return(nil)

	// breaks don't count against the job cap
	response, err := suite.service.InsertEvent(suite.tenantID, suite.planID, &InsertEventRequest{
		EventType:       models.EventTypeBreak,
		ScheduledStart:  time.Date(2026, 3, 16, 14, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
	})

	suite.NoError(err)
	suite.Equal(MaxJobEventsPerDay, response.SequenceOrder)
}

func (suite *DayPlanServiceTestSuite) TestInsertEvent_CancelledJobFreesCapacity() {
	existing := make([]models.ScheduleEvent, 0, 6)
	for i := 0; i < MaxJobEventsPerDay; i++ {
		existing = append(existing, suite.eventAt(8+i, 0, 30, i, models.EventTypeJob, models.EventStatusPending))
	}
	existing[2].Status = models.EventStatusCancelled
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(suite.draftPlan(), nil)
	suite.eventRepo.On("GetByDayPlanID", suite.tenantID, suite.planID).
		Return(existing, nil)
	suite.eventRepo.On("Create", mock.AnythingOfType("*models.ScheduleEvent")).
		Return(nil)
	suite.planRepo.On("Update", mock.AnythingOfType("*models.DayPlan")).
		Return(nil)

	_, err := suite.service.InsertEvent(suite.tenantID, suite.planID, &InsertEventRequest{
		EventType:       models.EventTypeJob,
		ScheduledStart:  time.Date(2026, 3, 16, 15, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
	})

	suite.NoError(err)
}

func (suite *DayPlanServiceTestSuite) TestInsertEvent_CompletedPlan_InvalidState() {
	plan := suite.draftPlan()
	plan.Status = models.DayPlanStatusCompleted
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(plan, nil)

	_, err := suite.service.InsertEvent(suite.tenantID, suite.planID, &InsertEventRequest{
		EventType:       models.EventTypeJob,
		ScheduledStart:  time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})

	suite.True(apperrors.IsInvalidState(err))
}

func (suite *DayPlanServiceTestSuite) TestInsertEvent_OtherTenantsPlan_TenantMismatch() {
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.planRepo.On("Exists", suite.planID).
		Return(true, nil)

	_, err := suite.service.InsertEvent(suite.tenantID, suite.planID, &InsertEventRequest{
		EventType:       models.EventTypeJob,
		ScheduledStart:  time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})

	suite.True(apperrors.IsTenantMismatch(err))
	suite.eventRepo.AssertNotCalled(suite.T(), "Create", mock.Anything)
}

func (suite *DayPlanServiceTestSuite) TestInsertEvent_UnknownPlan_NotFound() {
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.planRepo.On("Exists", suite.planID).
		Return(false, nil)

	_, err := suite.service.InsertEvent(suite.tenantID, suite.planID, &InsertEventRequest{
		EventType:       models.EventTypeJob,
		ScheduledStart:  time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})

	suite.ErrorIs(err, apperrors.ErrDayPlanNotFound)
}

func (suite *DayPlanServiceTestSuite) TestInsertEvent_SequenceSkipsCancelledHoles() {
	existing := []models.ScheduleEvent{
		suite.eventAt(8, 0, 60, 0, models.EventTypeJob, models.EventStatusPending),
		suite.eventAt(9, 0, 60, 1, models.EventTypeJob, models.EventStatusCancelled),
		suite.eventAt(10, 0, 60, 2, models.EventTypeJob, models.EventStatusPending),
	}
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(suite.draftPlan(), nil)
	suite.eventRepo.On("GetByDayPlanID", suite.tenantID, suite.planID).
		Return(existing, nil)
	suite.eventRepo.On("Create", mock.AnythingOfType("*models.ScheduleEvent")).
		Return(nil)
	suite.planRepo.On("Update", mock.AnythingOfType("*models.DayPlan")).
		Return(nil)

	// the cancelled event's slot in the sequence is never reused
	response, err := suite.service.InsertEvent(suite.tenantID, suite.planID, &InsertEventRequest{
		EventType:       models.EventTypeJob,
		ScheduledStart:  time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	})

	suite.NoError(err)
	suite.Equal(3, response.SequenceOrder)
}

func (suite *DayPlanServiceTestSuite) TestInsertEvent_RecomputesTotalDuration() {
	existing := []models.ScheduleEvent{
		suite.eventAt(8, 0, 60, 0, models.EventTypeJob, models.EventStatusPending),
		suite.eventAt(9, 0, 45, 1, models.EventTypeJob, models.EventStatusCancelled),
	}
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(suite.draftPlan(), nil)
	suite.eventRepo.On("GetByDayPlanID", suite.tenantID, suite.planID).
		Return(existing, nil)
	suite.eventRepo.On("Create", mock.AnythingOfType("*models.ScheduleEvent")).
		Return(nil)
	suite.planRepo.On("Update", mock.MatchedBy(func(plan *models.DayPlan) bool {
		// 60 existing + 30 new; cancelled 45 excluded
		return plan.TotalDurationMinutes == 90
	})).Return(nil)

	_, err := suite.service.InsertEvent(suite.tenantID, suite.planID, &InsertEventRequest{
		EventType:       models.EventTypeJob,
		ScheduledStart:  time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
	})

	suite.NoError(err)
	suite.planRepo.AssertExpectations(suite.T())
}

func (suite *DayPlanServiceTestSuite) TestCancelEvent_Success() {
	event := suite.eventAt(8, 0, 60, 0, models.EventTypeJob, models.EventStatusPending)
	suite.eventRepo.On("GetByID", suite.tenantID, event.ID).
		Return(&event, nil)
	suite.eventRepo.On("Update", mock.AnythingOfType("*models.ScheduleEvent")).
		Return(nil)
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(suite.draftPlan(), nil)
	suite.eventRepo.On("GetByDayPlanID", suite.tenantID, suite.planID).
		Return([]models.ScheduleEvent{}, nil)
	suite.planRepo.On("Update", mock.AnythingOfType("*models.DayPlan")).
		Return(nil)

	response, err := suite.service.CancelEvent(suite.tenantID, event.ID)

	suite.NoError(err)
	suite.Equal(models.EventStatusCancelled, response.Status)
	suite.Equal(0, response.SequenceOrder)
}

func (suite *DayPlanServiceTestSuite) TestCancelEvent_AlreadyCancelled_Idempotent() {
	event := suite.eventAt(8, 0, 60, 0, models.EventTypeJob, models.EventStatusCancelled)
	suite.eventRepo.On("GetByID", suite.tenantID, event.ID).
		Return(&event, nil)

	response, err := suite.service.CancelEvent(suite.tenantID, event.ID)

	suite.NoError(err)
	suite.Equal(models.EventStatusCancelled, response.Status)
	suite.eventRepo.AssertNotCalled(suite.T(), "Update", mock.Anything)
}

func (suite *DayPlanServiceTestSuite) TestCancelEvent_Completed_InvalidState() {
	event := suite.eventAt(8, 0, 60, 0, models.EventTypeJob, models.EventStatusCompleted)
	suite.eventRepo.On("GetByID", suite.tenantID, event.ID).
		Return(&event, nil)

	_, err := suite.service.CancelEvent(suite.tenantID, event.ID)

	suite.True(apperrors.IsInvalidState(err))
}

func (suite *DayPlanServiceTestSuite) TestCancelEvent_OtherTenantsEvent_TenantMismatch() {
	eventID := uuid.New()
	suite.eventRepo.On("GetByID", suite.tenantID, eventID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.eventRepo.On("Exists", eventID).
		Return(true, nil)

	_, err := suite.service.CancelEvent(suite.tenantID, eventID)

	suite.True(apperrors.IsTenantMismatch(err))
	suite.eventRepo.AssertNotCalled(suite.T(), "Update", mock.Anything)
}

func (suite *DayPlanServiceTestSuite) TestCancelEvent_UnknownEvent_NotFound() {
	eventID := uuid.New()
	suite.eventRepo.On("GetByID", suite.tenantID, eventID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.eventRepo.On("Exists", eventID).
		Return(false, nil)

	_, err := suite.service.CancelEvent(suite.tenantID, eventID)

	suite.ErrorIs(err, apperrors.ErrScheduleEventNotFound)
}

func (suite *DayPlanServiceTestSuite) TestTransitionStatus_FullLifecycle() {
	steps := []struct {
		from models.DayPlanStatus
		to   models.DayPlanStatus
	}{
		{models.DayPlanStatusDraft, models.DayPlanStatusPublished},
		{models.DayPlanStatusPublished, models.DayPlanStatusInProgress},
		{models.DayPlanStatusInProgress, models.DayPlanStatusCompleted},
	}

	for _, step := range steps {
		suite.Run(string(step.from)+"_to_"+string(step.to), func() {
			suite.SetupTest()
			plan := suite.draftPlan()
			plan.Status = step.from
			suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
				Return(plan, nil)
			suite.planRepo.On("Update", mock.AnythingOfType("*models.DayPlan")).
				Return(nil)

			response, err := suite.service.TransitionStatus(suite.tenantID, suite.planID, step.to)

			suite.NoError(err)
			suite.Equal(step.to, response.Status)
		})
	}
}

func (suite *DayPlanServiceTestSuite) TestTransitionStatus_OtherTenantsPlan_TenantMismatch() {
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(nil, gorm.ErrRecordNotFound)
	suite.planRepo.On("Exists", suite.planID).
		Return(true, nil)

	_, err := suite.service.TransitionStatus(suite.tenantID, suite.planID, models.DayPlanStatusPublished)

	suite.True(apperrors.IsTenantMismatch(err))
	suite.planRepo.AssertNotCalled(suite.T(), "Update", mock.Anything)
}

func (suite *DayPlanServiceTestSuite) TestTransitionStatus_SkipState_IllegalTransition() {
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(suite.draftPlan(), nil)

	_, err := suite.service.TransitionStatus(suite.tenantID, suite.planID, models.DayPlanStatusInProgress)

	suite.True(apperrors.IsIllegalTransition(err))
	suite.planRepo.AssertNotCalled(suite.T(), "Update", mock.Anything)
}

func (suite *DayPlanServiceTestSuite) TestTransitionStatus_Backward_IllegalTransition() {
	plan := suite.draftPlan()
	plan.Status = models.DayPlanStatusPublished

	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(plan, nil)

	_, err := suite.service.TransitionStatus(suite.tenantID, suite.planID, models.DayPlanStatusDraft)

	suite.True(apperrors.IsIllegalTransition(err))
}

func (suite *DayPlanServiceTestSuite) TestTransitionStatus_CancelFromPublished_Success() {
	plan := suite.draftPlan()
	plan.Status = models.DayPlanStatusPublished
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(plan, nil)
	suite.planRepo.On("Update", mock.AnythingOfType("*models.DayPlan")).
		Return(nil)

	response, err := suite.service.TransitionStatus(suite.tenantID, suite.planID, models.DayPlanStatusCancelled)

	suite.NoError(err)
	suite.Equal(models.DayPlanStatusCancelled, response.Status)
}

func (suite *DayPlanServiceTestSuite) TestTransitionStatus_CancelFromCompleted_IllegalTransition() {
	plan := suite.draftPlan()
	plan.Status = models.DayPlanStatusCompleted
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(plan, nil)

	_, err := suite.service.TransitionStatus(suite.tenantID, suite.planID, models.DayPlanStatusCancelled)

	suite.True(apperrors.IsIllegalTransition(err))
}

func (suite *DayPlanServiceTestSuite) TestSuggestSlot_AppendsAfterLastEvent() {
	events := []models.ScheduleEvent{
		suite.eventAt(8, 0, 60, 0, models.EventTypeJob, models.EventStatusPending),
		suite.eventAt(10, 0, 60, 1, models.EventTypeJob, models.EventStatusPending),
	}
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(suite.draftPlan(), nil)
	suite.eventRepo.On("GetByDayPlanID", suite.tenantID, suite.planID).
		Return(events, nil)

	response, err := suite.service.SuggestSlot(suite.tenantID, suite.planID, 45)

	suite.NoError(err)
	suite.Equal(time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC), response.Start)
	suite.Equal(45, response.DurationMinutes)
}

func (suite *DayPlanServiceTestSuite) TestSuggestSlot_DayFull_NoSlotAvailable() {
	events := []models.ScheduleEvent{
		suite.eventAt(8, 0, 8*60+30, 0, models.EventTypeJob, models.EventStatusPending),
	}
	suite.planRepo.On("GetByID", suite.tenantID, suite.planID).
		Return(suite.draftPlan(), nil)
	suite.eventRepo.On("GetByDayPlanID", suite.tenantID, suite.planID).
		Return(events, nil)

	_, err := suite.service.SuggestSlot(suite.tenantID, suite.planID, 60)

	suite.True(apperrors.IsNoSlotAvailable(err))
}

func (suite *DayPlanServiceTestSuite) TestGetByID_NotFound() {
	suite.planRepo.On("GetWithEvents", suite.tenantID, suite.planID).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(suite.tenantID, suite.planID)

	suite.ErrorIs(err, apperrors.ErrDayPlanNotFound)
}

func TestDayPlanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DayPlanServiceTestSuite))
}
