package repository

import (
	"field-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleEventRepository handles database operations for schedule events
type ScheduleEventRepository struct {
	db *gorm.DB
}

// NewScheduleEventRepository creates a new schedule event repository
func NewScheduleEventRepository(db *gorm.DB) *ScheduleEventRepository {
	return &ScheduleEventRepository{db: db}
}

// Create creates a new schedule event
func (r *ScheduleEventRepository) Create(event *models.ScheduleEvent) error {
	return r.db.Create(event).Error
}

// GetByID retrieves a schedule event by ID within a tenant
func (r *ScheduleEventRepository) GetByID(tenantID, id uuid.UUID) (*models.ScheduleEvent, error) {
	var event models.ScheduleEvent
	err := r.db.First(&event, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetByDayPlanID retrieves all events of a day plan ordered by sequence_order.
// Cancelled events are included; sequence_order holes after cancellation are
// part of the audit record.
func (r *ScheduleEventRepository) GetByDayPlanID(tenantID, dayPlanID uuid.UUID) ([]models.ScheduleEvent, error) {
	var events []models.ScheduleEvent
	err := r.db.Where("tenant_id = ? AND day_plan_id = ?", tenantID, dayPlanID).
		Order("sequence_order ASC").Find(&events).Error
	return events, err
}

// Update updates a schedule event
func (r *ScheduleEventRepository) Update(event *models.ScheduleEvent) error {
	return r.db.Save(event).Error
}

// Exists reports whether any tenant owns an event with this id. It returns a
// bare boolean, never row data; mutations use it to tell a cross-tenant
// target apart from a missing one.
func (r *ScheduleEventRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ScheduleEvent{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
