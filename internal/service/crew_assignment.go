package service

import (
	"errors"
	"fmt"

	"field-ops-backend/internal/database/models"
	apperrors "field-ops-backend/internal/errors"
	"field-ops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrewAssignmentService links crew members to day plans and schedule events.
// A target holds a single active assignment: assigning a new crew member
// deactivates the previous one.
type CrewAssignmentService struct {
	assignmentRepo repository.CrewAssignmentRepositoryInterface
	crewRepo       repository.CrewMemberRepositoryInterface
	planRepo       repository.DayPlanRepositoryInterface
	eventRepo      repository.ScheduleEventRepositoryInterface
	validator      *validator.Validate
}

// NewCrewAssignmentService creates a new crew assignment service
func NewCrewAssignmentService(
	assignmentRepo repository.CrewAssignmentRepositoryInterface,
	crewRepo repository.CrewMemberRepositoryInterface,
	planRepo repository.DayPlanRepositoryInterface,
	eventRepo repository.ScheduleEventRepositoryInterface,
	validator *validator.Validate,
) *CrewAssignmentService {
	return &CrewAssignmentService{
		assignmentRepo: assignmentRepo,
		crewRepo:       crewRepo,
		planRepo:       planRepo,
		eventRepo:      eventRepo,
		validator:      validator,
	}
}

// AssignCrewRequest represents the request to assign a crew member. Exactly
// one of DayPlanID / ScheduleEventID identifies the target.
type AssignCrewRequest struct {
	CrewMemberID    uuid.UUID       `json:"crew_member_id" validate:"required"`
	DayPlanID       *uuid.UUID      `json:"day_plan_id,omitempty"`
	ScheduleEventID *uuid.UUID      `json:"schedule_event_id,omitempty"`
	Role            models.CrewRole `json:"role,omitempty"`
}

// CrewAssignmentResponse represents a crew assignment in responses
type CrewAssignmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	CrewMemberID    uuid.UUID       `json:"crew_member_id"`
	DayPlanID       *uuid.UUID      `json:"day_plan_id,omitempty"`
	ScheduleEventID *uuid.UUID      `json:"schedule_event_id,omitempty"`
	Role            models.CrewRole `json:"role"`
	Active          bool            `json:"active"`
}

// Assign assigns a crew member to a day plan or schedule event, deactivating
// any prior active assignment on the same target
func (s *CrewAssignmentService) Assign(tenantID uuid.UUID, req *AssignCrewRequest) (*CrewAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if (req.DayPlanID == nil) == (req.ScheduleEventID == nil) {
		return nil, apperrors.NewValidationError("target", "exactly one of day_plan_id or schedule_event_id is required")
	}

	role := req.Role
	if role == "" {
		role = models.CrewRoleTechnician
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be technician, dispatcher or supervisor")
	}

	if _, err := s.crewRepo.GetByID(tenantID, req.CrewMemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify crew member: %w", err)
	}

	var current *models.CrewAssignment
	if req.DayPlanID != nil {
		if _, err := s.planRepo.GetByID(tenantID, *req.DayPlanID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDayPlanNotFound
			}
			return nil, fmt.Errorf("failed to get day plan: %w", err)
		}
		var err error
		current, err = s.assignmentRepo.GetActiveByDayPlanID(tenantID, *req.DayPlanID)
		if err != nil {
			return nil, fmt.Errorf("failed to get active assignment: %w", err)
		}
	} else {
		if _, err := s.eventRepo.GetByID(tenantID, *req.ScheduleEventID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrScheduleEventNotFound
			}
			return nil, fmt.Errorf("failed to get schedule event: %w", err)
		}
		var err error
		current, err = s.assignmentRepo.GetActiveByEventID(tenantID, *req.ScheduleEventID)
		if err != nil {
			return nil, fmt.Errorf("failed to get active assignment: %w", err)
		}
	}

	if current != nil {
		if err := s.assignmentRepo.Deactivate(tenantID, current.ID); err != nil {
			return nil, fmt.Errorf("failed to deactivate prior assignment: %w", err)
		}
	}

	assignment := &models.CrewAssignment{
		TenantModel:     models.TenantModel{TenantID: tenantID},
		CrewMemberID:    req.CrewMemberID,
		DayPlanID:       req.DayPlanID,
		ScheduleEventID: req.ScheduleEventID,
		Role:            role,
		Active:          true,
	}
	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create crew assignment: %w", err)
	}

	return s.toResponse(assignment), nil
}

// GetActiveByDayPlanID retrieves the active crew assignment for a day plan
func (s *CrewAssignmentService) GetActiveByDayPlanID(tenantID, dayPlanID uuid.UUID) (*CrewAssignmentResponse, error) {
	assignment, err := s.assignmentRepo.GetActiveByDayPlanID(tenantID, dayPlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}
	if assignment == nil {
		return nil, apperrors.ErrCrewAssignmentNotFound
	}
	return s.toResponse(assignment), nil
}

// GetActiveByEventID retrieves the active crew assignment for a schedule event
func (s *CrewAssignmentService) GetActiveByEventID(tenantID, eventID uuid.UUID) (*CrewAssignmentResponse, error) {
	assignment, err := s.assignmentRepo.GetActiveByEventID(tenantID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}
	if assignment == nil {
		return nil, apperrors.ErrCrewAssignmentNotFound
	}
	return s.toResponse(assignment), nil
}

func (s *CrewAssignmentService) toResponse(assignment *models.CrewAssignment) *CrewAssignmentResponse {
	return &CrewAssignmentResponse{
		ID:              assignment.ID,
		CrewMemberID:    assignment.CrewMemberID,
		DayPlanID:       assignment.DayPlanID,
		ScheduleEventID: assignment.ScheduleEventID,
		Role:            assignment.Role,
		Active:          assignment.Active,
	}
}
