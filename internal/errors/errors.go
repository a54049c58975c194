package errors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this crew member and date"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidStateError represents an operation attempted against an entity whose
// current status does not permit it (for example inserting an event into a
// completed day plan).
type InvalidStateError struct {
	Entity string
	Status string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s is in state %q which does not permit this operation", e.Entity, e.Status)
}

// IllegalTransitionError represents a status transition the state machine forbids
type IllegalTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal %s transition from %q to %q", e.Entity, e.From, e.To)
}

// CapacityExceededError represents a hard business-rule capacity violation
type CapacityExceededError struct {
	Entity string
	Limit  int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s capacity of %d exceeded", e.Entity, e.Limit)
}

// ConflictPair identifies two schedule events whose time windows intersect
type ConflictPair struct {
	EventA uuid.UUID `json:"event_a"`
	EventB uuid.UUID `json:"event_b"`
}

// SchedulingConflictError carries the conflicting event id pairs so the caller
// can decide whether to pick another time. The core never auto-reschedules.
type SchedulingConflictError struct {
	Conflicts []ConflictPair
}

func (e *SchedulingConflictError) Error() string {
	return fmt.Sprintf("scheduling conflict: %d overlapping event pair(s)", len(e.Conflicts))
}

// NoSlotAvailableError indicates the remaining work day cannot fit the
// requested duration
type NoSlotAvailableError struct {
	DurationMinutes int
}

func (e *NoSlotAvailableError) Error() string {
	return fmt.Sprintf("no slot of %d minutes available within the work day", e.DurationMinutes)
}

// TenantMismatchError represents an attempted cross-tenant access. It is
// always fatal to the request and never retried.
type TenantMismatchError struct {
	Entity string
}

func (e *TenantMismatchError) Error() string {
	return fmt.Sprintf("%s belongs to a different tenant", e.Entity)
}

// Entity Not Found Errors
var (
	ErrTenantNotFound         = &NotFoundError{Entity: "tenant"}
	ErrCrewMemberNotFound     = &NotFoundError{Entity: "crew member"}
	ErrCustomerNotFound       = &NotFoundError{Entity: "customer"}
	ErrJobNotFound            = &NotFoundError{Entity: "job"}
	ErrDayPlanNotFound        = &NotFoundError{Entity: "day plan"}
	ErrScheduleEventNotFound  = &NotFoundError{Entity: "schedule event"}
	ErrKitNotFound            = &NotFoundError{Entity: "kit"}
	ErrKitItemNotFound        = &NotFoundError{Entity: "kit item"}
	ErrKitVariantNotFound     = &NotFoundError{Entity: "kit variant"}
	ErrKitAssignmentNotFound  = &NotFoundError{Entity: "kit assignment"}
	ErrCrewAssignmentNotFound = &NotFoundError{Entity: "crew assignment"}
)

// Already Exists Errors
var (
	ErrDayPlanExists = &AlreadyExistsError{Entity: "day plan", Context: "for this crew member and date"}
	ErrKitCodeExists = &AlreadyExistsError{Entity: "kit", Context: "with this code"}
)

// Business Logic Errors
var (
	ErrKitWouldBeEmpty  = errors.New("kit must retain at least one item")
	ErrKitReferenced    = errors.New("kit is referenced by assignments and can only be deactivated")
	ErrReasonRequired   = errors.New("override reason is required")
	ErrKitInactive      = errors.New("kit is not active")
	ErrInvalidEventType = errors.New("invalid event type")
	ErrInvalidStatus    = errors.New("invalid status")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsIllegalTransition checks if an error is an IllegalTransitionError
func IsIllegalTransition(err error) bool {
	var transitionErr *IllegalTransitionError
	return errors.As(err, &transitionErr)
}

// IsCapacityExceeded checks if an error is a CapacityExceededError
func IsCapacityExceeded(err error) bool {
	var capErr *CapacityExceededError
	return errors.As(err, &capErr)
}

// IsSchedulingConflict checks if an error is a SchedulingConflictError
func IsSchedulingConflict(err error) bool {
	var conflictErr *SchedulingConflictError
	return errors.As(err, &conflictErr)
}

// IsNoSlotAvailable checks if an error is a NoSlotAvailableError
func IsNoSlotAvailable(err error) bool {
	var slotErr *NoSlotAvailableError
	return errors.As(err, &slotErr)
}

// IsTenantMismatch checks if an error is a TenantMismatchError
func IsTenantMismatch(err error) bool {
	var tenantErr *TenantMismatchError
	return errors.As(err, &tenantErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(entity, status string) error {
	return &InvalidStateError{Entity: entity, Status: status}
}

// NewIllegalTransitionError creates a new IllegalTransitionError
func NewIllegalTransitionError(entity, from, to string) error {
	return &IllegalTransitionError{Entity: entity, From: from, To: to}
}

// NewCapacityExceededError creates a new CapacityExceededError
func NewCapacityExceededError(entity string, limit int) error {
	return &CapacityExceededError{Entity: entity, Limit: limit}
}

// NewSchedulingConflictError creates a new SchedulingConflictError
func NewSchedulingConflictError(conflicts []ConflictPair) error {
	return &SchedulingConflictError{Conflicts: conflicts}
}

// NewNoSlotAvailableError creates a new NoSlotAvailableError
func NewNoSlotAvailableError(durationMinutes int) error {
	return &NoSlotAvailableError{DurationMinutes: durationMinutes}
}

// NewTenantMismatchError creates a new TenantMismatchError
func NewTenantMismatchError(entity string) error {
	return &TenantMismatchError{Entity: entity}
}
