package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"field-ops-backend/internal/database/models"
	apperrors "field-ops-backend/internal/errors"
	"field-ops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KitRefKind discriminates what a kit reference points at
type KitRefKind string

const (
	KitRefKit     KitRefKind = "kit"
	KitRefVariant KitRefKind = "variant"
)

// KitRef identifies either a kit or one of its variants. The kind is explicit
// so the reference is resolved exactly once, at assignment time.
type KitRef struct {
	Kind KitRefKind `json:"kind" validate:"required,oneof=kit variant"`
	ID   uuid.UUID  `json:"id" validate:"required"`
}

// KitAssignmentService binds kits to schedule events and keeps the
// append-only override ledger. Reassignment supersedes the prior assignment
// instead of mutating it, so the chain of what was planned survives.
type KitAssignmentService struct {
	assignmentRepo repository.KitAssignmentRepositoryInterface
	overrideRepo   repository.KitOverrideLogRepositoryInterface
	kitRepo        repository.KitRepositoryInterface
	eventRepo      repository.ScheduleEventRepositoryInterface
	crewRepo       repository.CrewMemberRepositoryInterface
	validator      *validator.Validate
}

// NewKitAssignmentService creates a new kit assignment service
func NewKitAssignmentService(
	assignmentRepo repository.KitAssignmentRepositoryInterface,
	overrideRepo repository.KitOverrideLogRepositoryInterface,
	kitRepo repository.KitRepositoryInterface,
	eventRepo repository.ScheduleEventRepositoryInterface,
	crewRepo repository.CrewMemberRepositoryInterface,
	validator *validator.Validate,
) *KitAssignmentService {
	return &KitAssignmentService{
		assignmentRepo: assignmentRepo,
		overrideRepo:   overrideRepo,
		kitRepo:        kitRepo,
		eventRepo:      eventRepo,
		crewRepo:       crewRepo,
		validator:      validator,
	}
}

// AssignKitRequest represents the request to assign a kit or variant to a
// schedule event
type AssignKitRequest struct {
	Ref             KitRef    `json:"ref" validate:"required"`
	ScheduleEventID uuid.UUID `json:"schedule_event_id" validate:"required"`
}

// RecordOverrideRequest represents the request to record a kit override.
// Either KitItemID or ItemName identifies the item concerned; a free-text
// ItemName covers items that were never part of the kit.
type RecordOverrideRequest struct {
	KitAssignmentID uuid.UUID  `json:"kit_assignment_id" validate:"required"`
	KitItemID       *uuid.UUID `json:"kit_item_id,omitempty"`
	ItemName        string     `json:"item_name" validate:"required,min=1,max=100"`
	CrewMemberID    uuid.UUID  `json:"crew_member_id" validate:"required"`
	Reason          string     `json:"reason"`
}

// VerifyKitRequest represents the request to verify an assignment against the
// items actually present on the truck
type VerifyKitRequest struct {
	PresentItems []string `json:"present_items"`
}

// KitAssignmentResponse represents a kit assignment in responses
type KitAssignmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	KitID           uuid.UUID  `json:"kit_id"`
	VariantID       *uuid.UUID `json:"variant_id,omitempty"`
	ScheduleEventID uuid.UUID  `json:"schedule_event_id"`
	AssignedAt      time.Time  `json:"assigned_at"`
	Superseded      bool       `json:"superseded"`
	SupersededAt    *time.Time `json:"superseded_at,omitempty"`
}

// KitOverrideResponse represents one override ledger entry in responses
type KitOverrideResponse struct {
	ID              uuid.UUID  `json:"id"`
	KitAssignmentID uuid.UUID  `json:"kit_assignment_id"`
	KitItemID       *uuid.UUID `json:"kit_item_id,omitempty"`
	ItemName        string     `json:"item_name"`
	CrewMemberID    uuid.UUID  `json:"crew_member_id"`
	Reason          string     `json:"reason"`
	CreatedAt       time.Time  `json:"created_at"`
}

// KitOverrideListResponse represents a paginated page of the tenant's
// override ledger
type KitOverrideListResponse struct {
	Overrides []KitOverrideResponse `json:"overrides"`
	Total     int64                 `json:"total"`
	Limit     int                   `json:"limit"`
	Offset    int                   `json:"offset"`
}

// KitVerificationResponse reports which required items of the effective item
// set are missing from what is present
type KitVerificationResponse struct {
	Complete     bool     `json:"complete"`
	MissingItems []string `json:"missing_items"`
}

// Assign binds a kit or variant to a schedule event. An inactive kit cannot
// be assigned. If the event already carries an active assignment it is
// superseded, not overwritten.
func (s *KitAssignmentService) Assign(tenantID uuid.UUID, req *AssignKitRequest) (*KitAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var kitID uuid.UUID
	var variantID *uuid.UUID
	switch req.Ref.Kind {
	case KitRefKit:
		kitID = req.Ref.ID
	case KitRefVariant:
		variant, err := s.kitRepo.GetVariantByID(tenantID, req.Ref.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrKitVariantNotFound
			}
			return nil, fmt.Errorf("failed to get kit variant: %w", err)
		}
		kitID = variant.KitID
		id := variant.ID
		variantID = &id
	default:
		return nil, apperrors.NewValidationError("ref.kind", "must be kit or variant")
	}

	kit, err := s.kitRepo.GetByID(tenantID, kitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKitNotFound
		}
		return nil, fmt.Errorf("failed to get kit: %w", err)
	}
	if !kit.IsActive {
		return nil, apperrors.ErrKitInactive
	}

	if _, err := s.eventRepo.GetByID(tenantID, req.ScheduleEventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleEventNotFound
		}
		return nil, fmt.Errorf("failed to get schedule event: %w", err)
	}

	now := time.Now().UTC()

	current, err := s.assignmentRepo.GetActiveByEventID(tenantID, req.ScheduleEventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}
	if current != nil {
		if err := s.assignmentRepo.MarkSuperseded(tenantID, current.ID, now); err != nil {
			return nil, fmt.Errorf("failed to supersede assignment: %w", err)
		}
	}

	assignment := &models.KitAssignment{
		TenantModel:     models.TenantModel{TenantID: tenantID},
		KitID:           kitID,
		VariantID:       variantID,
		ScheduleEventID: req.ScheduleEventID,
		AssignedAt:      now,
	}
	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create kit assignment: %w", err)
	}

	return s.toResponse(assignment), nil
}

// GetActiveByEventID retrieves the active kit assignment for a schedule event
func (s *KitAssignmentService) GetActiveByEventID(tenantID, eventID uuid.UUID) (*KitAssignmentResponse, error) {
	assignment, err := s.assignmentRepo.GetActiveByEventID(tenantID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}
	if assignment == nil {
		return nil, apperrors.ErrKitAssignmentNotFound
	}
	return s.toResponse(assignment), nil
}

// History retrieves all assignments for a schedule event, superseded ones
// included, newest first
func (s *KitAssignmentService) History(tenantID, eventID uuid.UUID) ([]KitAssignmentResponse, error) {
	assignments, err := s.assignmentRepo.GetByEventID(tenantID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment history: %w", err)
	}
	responses := make([]KitAssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *s.toResponse(&assignments[i])
	}
	return responses, nil
}

// RecordOverride appends an entry to the override ledger: an item swapped,
// dropped or added in the field. A non-empty reason is mandatory; the ledger
// only grows, nothing updates or deletes entries.
func (s *KitAssignmentService) RecordOverride(tenantID uuid.UUID, req *RecordOverrideRequest) (*KitOverrideResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, apperrors.ErrReasonRequired
	}

	assignment, err := s.assignmentRepo.GetByID(tenantID, req.KitAssignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKitAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get kit assignment: %w", err)
	}

	if _, err := s.crewRepo.GetByID(tenantID, req.CrewMemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to verify crew member: %w", err)
	}

	if req.KitItemID != nil {
		item, err := s.kitRepo.GetItemByID(tenantID, *req.KitItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrKitItemNotFound
			}
			return nil, fmt.Errorf("failed to get kit item: %w", err)
		}
		if item.KitID != assignment.KitID {
			return nil, apperrors.ErrKitItemNotFound
		}
	}

	entry := &models.KitOverrideLog{
		TenantModel:     models.TenantModel{TenantID: tenantID},
		KitAssignmentID: req.KitAssignmentID,
		KitItemID:       req.KitItemID,
		ItemName:        req.ItemName,
		CrewMemberID:    req.CrewMemberID,
		Reason:          strings.TrimSpace(req.Reason),
	}
	if err := s.overrideRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to record override: %w", err)
	}

	return s.toOverrideResponse(entry), nil
}

// ListOverrides retrieves the override ledger for one assignment, oldest first
func (s *KitAssignmentService) ListOverrides(tenantID, assignmentID uuid.UUID) ([]KitOverrideResponse, error) {
	if _, err := s.assignmentRepo.GetByID(tenantID, assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKitAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get kit assignment: %w", err)
	}

	entries, err := s.overrideRepo.GetByAssignmentID(tenantID, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}

	responses := make([]KitOverrideResponse, len(entries))
	for i := range entries {
		responses[i] = *s.toOverrideResponse(&entries[i])
	}
	return responses, nil
}

// ListAllOverrides retrieves the tenant's whole override ledger, newest first,
// for audit consumers that look across assignments
func (s *KitAssignmentService) ListAllOverrides(tenantID uuid.UUID, limit, offset int) (*KitOverrideListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	entries, total, err := s.overrideRepo.GetAll(tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}

	response := &KitOverrideListResponse{
		Overrides: make([]KitOverrideResponse, len(entries)),
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}
	for i := range entries {
		response.Overrides[i] = *s.toOverrideResponse(&entries[i])
	}
	return response, nil
}

// VerifyComplete compares the items present against the assignment's effective
// item set: the variant's set when a variant is assigned, the kit's base set
// otherwise. Only required items count; optional ones never block completion.
func (s *KitAssignmentService) VerifyComplete(tenantID, assignmentID uuid.UUID, req *VerifyKitRequest) (*KitVerificationResponse, error) {
	assignment, err := s.assignmentRepo.GetByID(tenantID, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKitAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get kit assignment: %w", err)
	}

	var effective []models.KitItem
	if assignment.VariantID != nil {
		variant, err := s.kitRepo.GetVariantByID(tenantID, *assignment.VariantID)
		if err != nil {
			return nil, fmt.Errorf("failed to get kit variant: %w", err)
		}
		effective = variant.Items
	} else {
		kit, err := s.kitRepo.GetByID(tenantID, assignment.KitID)
		if err != nil {
			return nil, fmt.Errorf("failed to get kit: %w", err)
		}
		for i := range kit.Items {
			if kit.Items[i].VariantID == nil {
				effective = append(effective, kit.Items[i])
			}
		}
	}

	present := make(map[string]bool, len(req.PresentItems))
	for _, name := range req.PresentItems {
		present[strings.ToLower(strings.TrimSpace(name))] = true
	}

	var missing []string
	for i := range effective {
		if !effective[i].Required {
			continue
		}
		if !present[strings.ToLower(strings.TrimSpace(effective[i].ItemName))] {
			missing = append(missing, effective[i].ItemName)
		}
	}
	sort.Strings(missing)

	return &KitVerificationResponse{
		Complete:     len(missing) == 0,
		MissingItems: missing,
	}, nil
}

func (s *KitAssignmentService) toResponse(assignment *models.KitAssignment) *KitAssignmentResponse {
	return &KitAssignmentResponse{
		ID:              assignment.ID,
		KitID:           assignment.KitID,
		VariantID:       assignment.VariantID,
		ScheduleEventID: assignment.ScheduleEventID,
		AssignedAt:      assignment.AssignedAt,
		Superseded:      assignment.Superseded,
		SupersededAt:    assignment.SupersededAt,
	}
}

func (s *KitAssignmentService) toOverrideResponse(entry *models.KitOverrideLog) *KitOverrideResponse {
	return &KitOverrideResponse{
		ID:              entry.ID,
		KitAssignmentID: entry.KitAssignmentID,
		KitItemID:       entry.KitItemID,
		ItemName:        entry.ItemName,
		CrewMemberID:    entry.CrewMemberID,
		Reason:          entry.Reason,
		CreatedAt:       entry.CreatedAt,
	}
}
