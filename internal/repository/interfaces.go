package repository

import (
	"time"

	"field-ops-backend/internal/database/models"

	"github.com/google/uuid"
)

// Every repository method that returns row data is tenant-scoped: the tenant
// id is an explicit parameter and every query filters by it, so a row
// belonging to another tenant reads as missing (gorm.ErrRecordNotFound).
// The only exceptions are the Exists checks, which return a bare boolean so
// that mutations can report a cross-tenant target as a tenant mismatch
// instead of not-found.

// CrewMemberRepositoryInterface defines the interface for crew member repository operations
type CrewMemberRepositoryInterface interface {
	Create(member *models.CrewMember) error
	GetByID(tenantID, id uuid.UUID) (*models.CrewMember, error)
	GetByEmail(tenantID uuid.UUID, email string) (*models.CrewMember, error)
	GetAll(tenantID uuid.UUID, limit, offset int) ([]models.CrewMember, int64, error)
	GetActive(tenantID uuid.UUID, limit, offset int) ([]models.CrewMember, int64, error)
	Update(member *models.CrewMember) error
	Delete(tenantID, id uuid.UUID) error
}

// CustomerRepositoryInterface defines the interface for customer repository operations
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByID(tenantID, id uuid.UUID) (*models.Customer, error)
	GetAll(tenantID uuid.UUID, limit, offset int) ([]models.Customer, int64, error)
	Update(customer *models.Customer) error
	Delete(tenantID, id uuid.UUID) error
}

// JobRepositoryInterface defines the interface for job repository operations
type JobRepositoryInterface interface {
	Create(job *models.Job) error
	GetByID(tenantID, id uuid.UUID) (*models.Job, error)
	GetAll(tenantID uuid.UUID, limit, offset int) ([]models.Job, int64, error)
	GetByCustomerID(tenantID, customerID uuid.UUID, limit, offset int) ([]models.Job, int64, error)
	GetByStatus(tenantID uuid.UUID, status models.JobStatus, limit, offset int) ([]models.Job, int64, error)
	Update(job *models.Job) error
	Delete(tenantID, id uuid.UUID) error
}

// DayPlanRepositoryInterface defines the interface for day plan repository operations
type DayPlanRepositoryInterface interface {
	Create(plan *models.DayPlan) error
	GetByID(tenantID, id uuid.UUID) (*models.DayPlan, error)
	GetWithEvents(tenantID, id uuid.UUID) (*models.DayPlan, error)
	GetByCrewAndDate(tenantID, crewMemberID uuid.UUID, date time.Time) (*models.DayPlan, error)
	GetByCrewMemberID(tenantID, crewMemberID uuid.UUID, limit, offset int) ([]models.DayPlan, int64, error)
	Update(plan *models.DayPlan) error
	Exists(id uuid.UUID) (bool, error)
}

// ScheduleEventRepositoryInterface defines the interface for schedule event repository operations
type ScheduleEventRepositoryInterface interface {
	Create(event *models.ScheduleEvent) error
	GetByID(tenantID, id uuid.UUID) (*models.ScheduleEvent, error)
	GetByDayPlanID(tenantID, dayPlanID uuid.UUID) ([]models.ScheduleEvent, error)
	Update(event *models.ScheduleEvent) error
	Exists(id uuid.UUID) (bool, error)
}

// KitRepositoryInterface defines the interface for kit catalog repository operations
type KitRepositoryInterface interface {
	Create(kit *models.Kit) error
	GetByID(tenantID, id uuid.UUID) (*models.Kit, error)
	GetByCode(tenantID uuid.UUID, code string) (*models.Kit, error)
	GetAll(tenantID uuid.UUID, activeOnly bool, limit, offset int) ([]models.Kit, int64, error)
	Update(kit *models.Kit) error
	CreateItem(item *models.KitItem) error
	GetItemByID(tenantID, id uuid.UUID) (*models.KitItem, error)
	DeleteItem(tenantID, id uuid.UUID) error
	CountItems(tenantID, kitID uuid.UUID) (int64, error)
	CreateVariant(variant *models.KitVariant) error
	GetVariantByID(tenantID, id uuid.UUID) (*models.KitVariant, error)
	IsReferenced(tenantID, kitID uuid.UUID) (bool, error)
	Delete(tenantID, id uuid.UUID) error
}

// KitAssignmentRepositoryInterface defines the interface for kit assignment repository operations
type KitAssignmentRepositoryInterface interface {
	Create(assignment *models.KitAssignment) error
	GetByID(tenantID, id uuid.UUID) (*models.KitAssignment, error)
	GetActiveByEventID(tenantID, eventID uuid.UUID) (*models.KitAssignment, error)
	GetByEventID(tenantID, eventID uuid.UUID) ([]models.KitAssignment, error)
	MarkSuperseded(tenantID, id uuid.UUID, at time.Time) error
}

// KitOverrideLogRepositoryInterface is the insert-only data access surface for
// the override ledger. The append-only invariant lives in this interface: no
// update or delete operation exists.
type KitOverrideLogRepositoryInterface interface {
	Create(entry *models.KitOverrideLog) error
	GetByAssignmentID(tenantID, assignmentID uuid.UUID) ([]models.KitOverrideLog, error)
	GetAll(tenantID uuid.UUID, limit, offset int) ([]models.KitOverrideLog, int64, error)
}

// CrewAssignmentRepositoryInterface defines the interface for crew assignment repository operations
type CrewAssignmentRepositoryInterface interface {
	Create(assignment *models.CrewAssignment) error
	GetActiveByDayPlanID(tenantID, dayPlanID uuid.UUID) (*models.CrewAssignment, error)
	GetActiveByEventID(tenantID, eventID uuid.UUID) (*models.CrewAssignment, error)
	Deactivate(tenantID, id uuid.UUID) error
}
