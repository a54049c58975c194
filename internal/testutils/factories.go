package testutils

import (
	"time"

	"field-ops-backend/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Tenant " + id.String()[:8],
		Domain:   "test.example.com",
		IsActive: true,
	}
}

// CrewMemberFactory provides methods to create test CrewMember data
type CrewMemberFactory struct{}

// NewCrewMemberFactory creates a new CrewMemberFactory
func NewCrewMemberFactory() *CrewMemberFactory {
	return &CrewMemberFactory{}
}

// Create creates a test CrewMember with default values
func (f *CrewMemberFactory) Create(tenantID uuid.UUID) *models.CrewMember {
	id := uuid.New()
	return &models.CrewMember{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        id,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			TenantID: tenantID,
		},
		FullName:    "Test Technician",
		Email:       id.String()[:8] + "@test.com",
		PhoneNumber: "+1-555-0123",
		Role:        models.CrewRoleTechnician,
		IsActive:    true,
	}
}

// WithRole sets a custom role for the crew member
func (f *CrewMemberFactory) WithRole(tenantID uuid.UUID, role models.CrewRole) *models.CrewMember {
	member := f.Create(tenantID)
	member.Role = role
	return member
}

// CustomerFactory provides methods to create test Customer data
type CustomerFactory struct{}

// NewCustomerFactory creates a new CustomerFactory
func NewCustomerFactory() *CustomerFactory {
	return &CustomerFactory{}
}

// Create creates a test Customer with default values
func (f *CustomerFactory) Create(tenantID uuid.UUID) *models.Customer {
	return &models.Customer{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			TenantID: tenantID,
		},
		Name:    "Test Customer",
		Email:   "customer@test.com",
		Address: "12 Elm Street",
		Status:  "active",
	}
}

// JobFactory provides methods to create test Job data
type JobFactory struct{}

// NewJobFactory creates a new JobFactory
func NewJobFactory() *JobFactory {
	return &JobFactory{}
}

// Create creates a test Job with default values
func (f *JobFactory) Create(tenantID, customerID uuid.UUID) *models.Job {
	return &models.Job{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			TenantID: tenantID,
		},
		CustomerID:               customerID,
		Title:                    "Lawn maintenance",
		Description:              "Weekly mow and trim",
		Status:                   models.JobStatusScheduled,
		Priority:                 models.JobPriorityMedium,
		EstimatedDurationMinutes: 60,
		Address:                  "12 Elm Street",
	}
}

// DayPlanFactory provides methods to create test DayPlan data
type DayPlanFactory struct{}

// NewDayPlanFactory creates a new DayPlanFactory
func NewDayPlanFactory() *DayPlanFactory {
	return &DayPlanFactory{}
}

// Create creates a draft test DayPlan for the given crew member and date
func (f *DayPlanFactory) Create(tenantID, crewMemberID uuid.UUID, planDate time.Time) *models.DayPlan {
	return &models.DayPlan{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:     tenantID,
		CrewMemberID: crewMemberID,
		PlanDate:     planDate,
		Status:       models.DayPlanStatusDraft,
	}
}

// WithStatus sets a custom status for the day plan
func (f *DayPlanFactory) WithStatus(tenantID, crewMemberID uuid.UUID, planDate time.Time, status models.DayPlanStatus) *models.DayPlan {
	plan := f.Create(tenantID, crewMemberID, planDate)
	plan.Status = status
	return plan
}

// ScheduleEventFactory provides methods to create test ScheduleEvent data
type ScheduleEventFactory struct{}

// NewScheduleEventFactory creates a new ScheduleEventFactory
func NewScheduleEventFactory() *ScheduleEventFactory {
	return &ScheduleEventFactory{}
}

// Create creates a pending job event inside the given day plan
func (f *ScheduleEventFactory) Create(tenantID, dayPlanID uuid.UUID, seq int, start time.Time, durationMinutes int) *models.ScheduleEvent {
	return &models.ScheduleEvent{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			TenantID: tenantID,
		},
		DayPlanID:                dayPlanID,
		EventType:                models.EventTypeJob,
		SequenceOrder:            seq,
		ScheduledStart:           start,
		ScheduledDurationMinutes: durationMinutes,
		Status:                   models.EventStatusPending,
		Address:                  "12 Elm Street",
	}
}

// WithType sets a custom event type
func (f *ScheduleEventFactory) WithType(tenantID, dayPlanID uuid.UUID, seq int, start time.Time, durationMinutes int, eventType models.EventType) *models.ScheduleEvent {
	event := f.Create(tenantID, dayPlanID, seq, start, durationMinutes)
	event.EventType = eventType
	return event
}

// KitFactory provides methods to create test Kit data
type KitFactory struct{}

// NewKitFactory creates a new KitFactory
func NewKitFactory() *KitFactory {
	return &KitFactory{}
}

// Create creates an active test Kit without items; add items separately
func (f *KitFactory) Create(tenantID uuid.UUID) *models.Kit {
	id := uuid.New()
	return &models.Kit{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID: tenantID,
		Code:     "kit-" + id.String()[:8],
		Name:     "Standard Mowing Kit",
		IsActive: true,
	}
}

// CreateItem creates a base-set item for the given kit
func (f *KitFactory) CreateItem(tenantID, kitID uuid.UUID, name string) *models.KitItem {
	return &models.KitItem{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			TenantID: tenantID,
		},
		KitID:    kitID,
		ItemName: name,
		ItemType: models.ItemTypeEquipment,
		Quantity: 1,
		Unit:     "piece",
		Required: true,
	}
}

// CreateVariant creates a variant for the given kit
func (f *KitFactory) CreateVariant(tenantID, kitID uuid.UUID, conditionTag string) *models.KitVariant {
	return &models.KitVariant{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			TenantID: tenantID,
		},
		KitID:        kitID,
		Name:         "Variant " + conditionTag,
		ConditionTag: conditionTag,
	}
}

// KitAssignmentFactory provides methods to create test KitAssignment data
type KitAssignmentFactory struct{}

// NewKitAssignmentFactory creates a new KitAssignmentFactory
func NewKitAssignmentFactory() *KitAssignmentFactory {
	return &KitAssignmentFactory{}
}

// Create creates an active test KitAssignment
func (f *KitAssignmentFactory) Create(tenantID, kitID, eventID uuid.UUID) *models.KitAssignment {
	return &models.KitAssignment{
		TenantModel: models.TenantModel{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			TenantID: tenantID,
		},
		KitID:           kitID,
		ScheduleEventID: eventID,
		AssignedAt:      time.Now().UTC(),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Tenant        *TenantFactory
	CrewMember    *CrewMemberFactory
	Customer      *CustomerFactory
	Job           *JobFactory
	DayPlan       *DayPlanFactory
	ScheduleEvent *ScheduleEventFactory
	Kit           *KitFactory
	KitAssignment *KitAssignmentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:        NewTenantFactory(),
		CrewMember:    NewCrewMemberFactory(),
		Customer:      NewCustomerFactory(),
		Job:           NewJobFactory(),
		DayPlan:       NewDayPlanFactory(),
		ScheduleEvent: NewScheduleEventFactory(),
		Kit:           NewKitFactory(),
		KitAssignment: NewKitAssignmentFactory(),
	}
}
