package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"field-ops-backend/internal/database/models"
	apperrors "field-ops-backend/internal/errors"
	"field-ops-backend/internal/repository"
	"field-ops-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MaxJobEventsPerDay is the hard business rule: at most six job events per
// crew member per day. Break and travel events do not count against it.
const MaxJobEventsPerDay = 6

// planLocks serializes mutations per day plan so concurrent inserts cannot
// race past the capacity and conflict checks. Entries are never evicted: the
// map holds one mutex per plan id touched over the process lifetime.
type planLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newPlanLocks() *planLocks {
	return &planLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (p *planLocks) lock(id uuid.UUID) func() {
	p.mu.Lock()
	l, ok := p.locks[id]
	if !ok {
		l = &sync.Mutex{}
		p.locks[id] = l
	}
	p.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// DayPlanService owns the ordered collection of schedule events for one crew
// member on one date and drives its state transitions
type DayPlanService struct {
	planRepo  repository.DayPlanRepositoryInterface
	eventRepo repository.ScheduleEventRepositoryInterface
	crewRepo  repository.CrewMemberRepositoryInterface
	jobRepo   repository.JobRepositoryInterface
	validator *validator.Validate
	workDay   scheduling.WorkDay
	locks     *planLocks
}

// NewDayPlanService creates a new day plan service
func NewDayPlanService(
	planRepo repository.DayPlanRepositoryInterface,
	eventRepo repository.ScheduleEventRepositoryInterface,
	crewRepo repository.CrewMemberRepositoryInterface,
	jobRepo repository.JobRepositoryInterface,
	validator *validator.Validate,
	workDay scheduling.WorkDay,
) *DayPlanService {
	return &DayPlanService{
		planRepo:  planRepo,
		eventRepo: eventRepo,
		crewRepo:  crewRepo,
		jobRepo:   jobRepo,
		validator: validator,
		workDay:   workDay,
		locks:     newPlanLocks(),
	}
}

// CreateDayPlanRequest represents the request to create a day plan
type CreateDayPlanRequest struct {
	CrewMemberID uuid.UUID `json:"crew_member_id" validate:"required"`
	PlanDate     time.Time `json:"plan_date" validate:"required"`
}

// InsertEventRequest represents the request to insert a schedule event
type InsertEventRequest struct {
	EventType       models.EventType `json:"event_type" validate:"required"`
	JobID           *uuid.UUID       `json:"job_id,omitempty"`
	ScheduledStart  time.Time        `json:"scheduled_start" validate:"required"`
	DurationMinutes int              `json:"duration_minutes" validate:"required,min=1"`
	Address         string           `json:"address,omitempty"`
}

// ScheduleEventResponse represents the response for schedule event operations
type ScheduleEventResponse struct {
	ID              uuid.UUID          `json:"id"`
	DayPlanID       uuid.UUID          `json:"day_plan_id"`
	EventType       models.EventType   `json:"event_type"`
	SequenceOrder   int                `json:"sequence_order"`
	ScheduledStart  time.Time          `json:"scheduled_start"`
	DurationMinutes int                `json:"duration_minutes"`
	Status          models.EventStatus `json:"status"`
	Address         string             `json:"address,omitempty"`
	JobID           *uuid.UUID         `json:"job_id,omitempty"`
}

// DayPlanResponse represents the response for day plan operations
type DayPlanResponse struct {
	ID                   uuid.UUID               `json:"id"`
	CrewMemberID         uuid.UUID               `json:"crew_member_id"`
	PlanDate             string                  `json:"plan_date"`
	Status               models.DayPlanStatus    `json:"status"`
	TotalDistanceKm      float64                 `json:"total_distance_km"`
	TotalDurationMinutes int                     `json:"total_duration_minutes"`
	Events               []ScheduleEventResponse `json:"events,omitempty"`
	CreatedAt            string                  `json:"created_at"`
	UpdatedAt            string                  `json:"updated_at"`
}

// SlotSuggestionResponse represents a proposed start time for a new event
type SlotSuggestionResponse struct {
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Create creates a new day plan in draft for one crew member on one date.
// At most one day plan exists per (tenant, crew member, date).
func (s *DayPlanService) Create(tenantID uuid.UUID, req *CreateDayPlanRequest) (*DayPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.crewRepo.GetByID(tenantID, req.CrewMemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify crew member: %w", err)
	}

	if _, err := s.planRepo.GetByCrewAndDate(tenantID, req.CrewMemberID, req.PlanDate); err == nil {
		return nil, apperrors.ErrDayPlanExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing day plan: %w", err)
	}

	plan := &models.DayPlan{
		TenantID:     tenantID,
		CrewMemberID: req.CrewMemberID,
		PlanDate:     req.PlanDate,
		Status:       models.DayPlanStatusDraft,
	}

	if err := s.planRepo.Create(plan); err != nil {
		// Two concurrent creates for the same (crew member, date) both pass
		// the existence check; the unique index decides, and the loser gets
		// the same answer as a sequential duplicate.
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDayPlanExists
		}
		return nil, fmt.Errorf("failed to create day plan: %w", err)
	}

	return s.toResponse(plan, nil), nil
}

// planForMutation loads a day plan for a write. Reads report a cross-tenant
// id as not-found; a mutation aimed at another tenant's plan is a tenant
// mismatch, told apart by a bare existence check.
func (s *DayPlanService) planForMutation(tenantID, dayPlanID uuid.UUID) (*models.DayPlan, error) {
	plan, err := s.planRepo.GetByID(tenantID, dayPlanID)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get day plan: %w", err)
	}
	if exists, checkErr := s.planRepo.Exists(dayPlanID); checkErr == nil && exists {
		return nil, apperrors.NewTenantMismatchError("day plan")
	}
	return nil, apperrors.ErrDayPlanNotFound
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// InsertEvent appends a schedule event to a day plan. The read-check-write
// sequence runs under the plan's lock: plan must be draft or published, job
// events are capped at MaxJobEventsPerDay, and the conflict detector must
// clear the candidate against the existing non-cancelled events. On conflict
// the error carries the conflicting event ids; the caller decides what to do
// next, the core never auto-reschedules.
func (s *DayPlanService) InsertEvent(tenantID, dayPlanID uuid.UUID, req *InsertEventRequest) (*ScheduleEventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EventType.IsValid() {
		return nil, apperrors.ErrInvalidEventType
	}

	if req.JobID != nil {
		if _, err := s.jobRepo.GetByID(tenantID, *req.JobID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrJobNotFound
			}
			return nil, fmt.Errorf("failed to verify job: %w", err)
		}
	}

	unlock := s.locks.lock(dayPlanID)
	defer unlock()

	plan, err := s.planForMutation(tenantID, dayPlanID)
	if err != nil {
		return nil, err
	}

	if plan.Status != models.DayPlanStatusDraft && plan.Status != models.DayPlanStatusPublished {
		return nil, apperrors.NewInvalidStateError("day plan", string(plan.Status))
	}

	events, err := s.eventRepo.GetByDayPlanID(tenantID, dayPlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	if req.EventType == models.EventTypeJob {
		jobCount := 0
		for i := range events {
			if events[i].EventType == models.EventTypeJob && events[i].Status != models.EventStatusCancelled {
				jobCount++
			}
		}
		if jobCount >= MaxJobEventsPerDay {
			return nil, apperrors.NewCapacityExceededError("job events", MaxJobEventsPerDay)
		}
	}

	// sequence_order is an insertion marker: max existing + 1, holes from
	// cancellations preserved
	nextSeq := 0
	for i := range events {
		if events[i].SequenceOrder >= nextSeq {
			nextSeq = events[i].SequenceOrder + 1
		}
	}

	candidate := models.ScheduleEvent{
		TenantModel:              models.TenantModel{TenantID: tenantID},
		DayPlanID:                dayPlanID,
		EventType:                req.EventType,
		SequenceOrder:            nextSeq,
		ScheduledStart:           req.ScheduledStart,
		ScheduledDurationMinutes: req.DurationMinutes,
		Status:                   models.EventStatusPending,
		Address:                  req.Address,
		JobID:                    req.JobID,
	}
	candidate.ID = uuid.New()

	active := make([]models.ScheduleEvent, 0, len(events)+1)
	for i := range events {
		if events[i].Status != models.EventStatusCancelled {
			active = append(active, events[i])
		}
	}
	active = append(active, candidate)

	if conflicts := scheduling.FindConflicts(active); len(conflicts) > 0 {
		pairs := make([]apperrors.ConflictPair, len(conflicts))
		for i, c := range conflicts {
			pairs[i] = apperrors.ConflictPair{EventA: c.EventA, EventB: c.EventB}
		}
		return nil, apperrors.NewSchedulingConflictError(pairs)
	}

	if err := s.eventRepo.Create(&candidate); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	// Recompute aggregate duration; aggregate distance is owned by the
	// external routing collaborator.
	total := candidate.ScheduledDurationMinutes
	for i := range events {
		if events[i].Status != models.EventStatusCancelled {
			total += events[i].ScheduledDurationMinutes
		}
	}
	plan.TotalDurationMinutes = total
	if err := s.planRepo.Update(plan); err != nil {
		return nil, fmt.Errorf("failed to update day plan aggregates: %w", err)
	}

	return s.toEventResponse(&candidate), nil
}

// CancelEvent marks an event cancelled. Surviving events keep their
// sequence_order; the resulting hole preserves historical ordering for audit.
func (s *DayPlanService) CancelEvent(tenantID, eventID uuid.UUID) (*ScheduleEventResponse, error) {
	event, err := s.eventRepo.GetByID(tenantID, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if exists, checkErr := s.eventRepo.Exists(eventID); checkErr == nil && exists {
				return nil, apperrors.NewTenantMismatchError("schedule event")
			}
			return nil, apperrors.ErrScheduleEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if event.Status == models.EventStatusCancelled {
		return s.toEventResponse(event), nil
	}
	if event.Status == models.EventStatusCompleted {
		return nil, apperrors.NewInvalidStateError("schedule event", string(event.Status))
	}

	unlock := s.locks.lock(event.DayPlanID)
	defer unlock()

	event.Status = models.EventStatusCancelled
	if err := s.eventRepo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to cancel event: %w", err)
	}

	if err := s.recomputeDuration(tenantID, event.DayPlanID); err != nil {
		return nil, err
	}

	return s.toEventResponse(event), nil
}

// TransitionStatus moves a day plan through its state machine:
// draft -> published -> in_progress -> completed, with cancellation allowed
// from any non-terminal state.
func (s *DayPlanService) TransitionStatus(tenantID, dayPlanID uuid.UUID, newStatus models.DayPlanStatus) (*DayPlanResponse, error) {
	if !newStatus.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	unlock := s.locks.lock(dayPlanID)
	defer unlock()

	plan, err := s.planForMutation(tenantID, dayPlanID)
	if err != nil {
		return nil, err
	}

	if !plan.Status.CanTransitionTo(newStatus) {
		return nil, apperrors.NewIllegalTransitionError("day plan", string(plan.Status), string(newStatus))
	}

	plan.Status = newStatus
	if err := s.planRepo.Update(plan); err != nil {
		return nil, fmt.Errorf("failed to update day plan: %w", err)
	}

	return s.toResponse(plan, nil), nil
}

// SuggestSlot proposes the next feasible start time for an event of the
// requested duration, appending after the plan's last non-cancelled event.
func (s *DayPlanService) SuggestSlot(tenantID, dayPlanID uuid.UUID, durationMinutes int) (*SlotSuggestionResponse, error) {
	plan, err := s.planRepo.GetByID(tenantID, dayPlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDayPlanNotFound
		}
		return nil, fmt.Errorf("failed to get day plan: %w", err)
	}

	events, err := s.eventRepo.GetByDayPlanID(tenantID, dayPlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	start, err := scheduling.SuggestSlot(plan.PlanDate, events, durationMinutes, s.workDay)
	if err != nil {
		return nil, err
	}

	return &SlotSuggestionResponse{Start: start, DurationMinutes: durationMinutes}, nil
}

// GetByID retrieves a day plan with its events
func (s *DayPlanService) GetByID(tenantID, dayPlanID uuid.UUID) (*DayPlanResponse, error) {
	plan, err := s.planRepo.GetWithEvents(tenantID, dayPlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDayPlanNotFound
		}
		return nil, fmt.Errorf("failed to get day plan: %w", err)
	}

	return s.toResponse(plan, plan.Events), nil
}

// GetByCrewAndDate retrieves the day plan for one crew member on one date
func (s *DayPlanService) GetByCrewAndDate(tenantID, crewMemberID uuid.UUID, date time.Time) (*DayPlanResponse, error) {
	plan, err := s.planRepo.GetByCrewAndDate(tenantID, crewMemberID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDayPlanNotFound
		}
		return nil, fmt.Errorf("failed to get day plan: %w", err)
	}

	events, err := s.eventRepo.GetByDayPlanID(tenantID, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	return s.toResponse(plan, events), nil
}

func (s *DayPlanService) recomputeDuration(tenantID, dayPlanID uuid.UUID) error {
	plan, err := s.planRepo.GetByID(tenantID, dayPlanID)
	if err != nil {
		return fmt.Errorf("failed to get day plan: %w", err)
	}
	events, err := s.eventRepo.GetByDayPlanID(tenantID, dayPlanID)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	total := 0
	for i := range events {
		if events[i].Status != models.EventStatusCancelled {
			total += events[i].ScheduledDurationMinutes
		}
	}
	plan.TotalDurationMinutes = total
	if err := s.planRepo.Update(plan); err != nil {
		return fmt.Errorf("failed to update day plan aggregates: %w", err)
	}
	return nil
}

func (s *DayPlanService) toEventResponse(event *models.ScheduleEvent) *ScheduleEventResponse {
	return &ScheduleEventResponse{
		ID:              event.ID,
		DayPlanID:       event.DayPlanID,
		EventType:       event.EventType,
		SequenceOrder:   event.SequenceOrder,
		ScheduledStart:  event.ScheduledStart,
		DurationMinutes: event.ScheduledDurationMinutes,
		Status:          event.Status,
		Address:         event.Address,
		JobID:           event.JobID,
	}
}

func (s *DayPlanService) toResponse(plan *models.DayPlan, events []models.ScheduleEvent) *DayPlanResponse {
	response := &DayPlanResponse{
		ID:                   plan.ID,
		CrewMemberID:         plan.CrewMemberID,
		PlanDate:             plan.PlanDate.Format("2006-01-02"),
		Status:               plan.Status,
		TotalDistanceKm:      plan.TotalDistanceKm,
		TotalDurationMinutes: plan.TotalDurationMinutes,
		CreatedAt:            plan.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            plan.UpdatedAt.Format(time.RFC3339),
	}
	for i := range events {
		response.Events = append(response.Events, *s.toEventResponse(&events[i]))
	}
	return response
}
