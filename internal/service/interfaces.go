package service

import (
	"time"

	"field-ops-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// DayPlanServiceInterface defines the interface for day plan operations
type DayPlanServiceInterface interface {
	Create(tenantID uuid.UUID, req *CreateDayPlanRequest) (*DayPlanResponse, error)
	GetByID(tenantID, dayPlanID uuid.UUID) (*DayPlanResponse, error)
	GetByCrewAndDate(tenantID, crewMemberID uuid.UUID, date time.Time) (*DayPlanResponse, error)
	InsertEvent(tenantID, dayPlanID uuid.UUID, req *InsertEventRequest) (*ScheduleEventResponse, error)
	CancelEvent(tenantID, eventID uuid.UUID) (*ScheduleEventResponse, error)
	TransitionStatus(tenantID, dayPlanID uuid.UUID, newStatus models.DayPlanStatus) (*DayPlanResponse, error)
	SuggestSlot(tenantID, dayPlanID uuid.UUID, durationMinutes int) (*SlotSuggestionResponse, error)
}

// KitServiceInterface defines the interface for kit catalog operations
type KitServiceInterface interface {
	CreateKit(tenantID uuid.UUID, req *CreateKitRequest) (*KitResponse, error)
	GetByID(tenantID, kitID uuid.UUID) (*KitResponse, error)
	GetByCode(tenantID uuid.UUID, code string) (*KitResponse, error)
	List(tenantID uuid.UUID, activeOnly bool, limit, offset int) (*KitListResponse, error)
	AddItem(tenantID, kitID uuid.UUID, req *KitItemRequest) (*KitItemResponse, error)
	RemoveItem(tenantID, kitID, itemID uuid.UUID) error
	AddVariant(tenantID, kitID uuid.UUID, req *CreateVariantRequest) (*KitVariantResponse, error)
	Deactivate(tenantID, kitID uuid.UUID) (*KitResponse, error)
	Delete(tenantID, kitID uuid.UUID) error
}

// KitAssignmentServiceInterface defines the interface for kit assignment operations
type KitAssignmentServiceInterface interface {
	Assign(tenantID uuid.UUID, req *AssignKitRequest) (*KitAssignmentResponse, error)
	GetActiveByEventID(tenantID, eventID uuid.UUID) (*KitAssignmentResponse, error)
	History(tenantID, eventID uuid.UUID) ([]KitAssignmentResponse, error)
	RecordOverride(tenantID uuid.UUID, req *RecordOverrideRequest) (*KitOverrideResponse, error)
	ListOverrides(tenantID, assignmentID uuid.UUID) ([]KitOverrideResponse, error)
	ListAllOverrides(tenantID uuid.UUID, limit, offset int) (*KitOverrideListResponse, error)
	VerifyComplete(tenantID, assignmentID uuid.UUID, req *VerifyKitRequest) (*KitVerificationResponse, error)
}

// CrewAssignmentServiceInterface defines the interface for crew assignment operations
type CrewAssignmentServiceInterface interface {
	Assign(tenantID uuid.UUID, req *AssignCrewRequest) (*CrewAssignmentResponse, error)
	GetActiveByDayPlanID(tenantID, dayPlanID uuid.UUID) (*CrewAssignmentResponse, error)
	GetActiveByEventID(tenantID, eventID uuid.UUID) (*CrewAssignmentResponse, error)
}

// CrewMemberServiceInterface defines the interface for crew member operations
type CrewMemberServiceInterface interface {
	Create(tenantID uuid.UUID, req *CreateCrewMemberRequest) (*CrewMemberResponse, error)
	GetByID(tenantID, id uuid.UUID) (*CrewMemberResponse, error)
	List(tenantID uuid.UUID, activeOnly bool, limit, offset int) (*CrewMemberListResponse, error)
	Update(tenantID, id uuid.UUID, req *UpdateCrewMemberRequest) (*CrewMemberResponse, error)
	Delete(tenantID, id uuid.UUID) error
}

// CustomerServiceInterface defines the interface for customer operations
type CustomerServiceInterface interface {
	Create(tenantID uuid.UUID, req *CreateCustomerRequest) (*CustomerResponse, error)
	GetByID(tenantID, id uuid.UUID) (*CustomerResponse, error)
	List(tenantID uuid.UUID, limit, offset int) (*CustomerListResponse, error)
	Update(tenantID, id uuid.UUID, req *UpdateCustomerRequest) (*CustomerResponse, error)
	Delete(tenantID, id uuid.UUID) error
}

// JobServiceInterface defines the interface for job operations
type JobServiceInterface interface {
	Create(tenantID uuid.UUID, req *CreateJobRequest) (*JobResponse, error)
	GetByID(tenantID, id uuid.UUID) (*JobResponse, error)
	List(tenantID uuid.UUID, status *models.JobStatus, limit, offset int) (*JobListResponse, error)
	ListByCustomer(tenantID, customerID uuid.UUID, limit, offset int) (*JobListResponse, error)
	Update(tenantID, id uuid.UUID, req *UpdateJobRequest) (*JobResponse, error)
	Delete(tenantID, id uuid.UUID) error
}
