package repository

import (
	"errors"

	"field-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrewAssignmentRepository handles database operations for crew assignments
type CrewAssignmentRepository struct {
	db *gorm.DB
}

// NewCrewAssignmentRepository creates a new crew assignment repository
func NewCrewAssignmentRepository(db *gorm.DB) *CrewAssignmentRepository {
	return &CrewAssignmentRepository{db: db}
}

// Create creates a new crew assignment
func (r *CrewAssignmentRepository) Create(assignment *models.CrewAssignment) error {
	return r.db.Create(assignment).Error
}

// GetActiveByDayPlanID retrieves the active assignment for a day plan, or nil
func (r *CrewAssignmentRepository) GetActiveByDayPlanID(tenantID, dayPlanID uuid.UUID) (*models.CrewAssignment, error) {
	var assignment models.CrewAssignment
	err := r.db.First(&assignment,
		"tenant_id = ? AND day_plan_id = ? AND active = ?", tenantID, dayPlanID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

// GetActiveByEventID retrieves the active assignment for a schedule event, or nil
func (r *CrewAssignmentRepository) GetActiveByEventID(tenantID, eventID uuid.UUID) (*models.CrewAssignment, error) {
	var assignment models.CrewAssignment
	err := r.db.First(&assignment,
		"tenant_id = ? AND schedule_event_id = ? AND active = ?", tenantID, eventID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

// Deactivate marks an assignment inactive; the row is kept for history
func (r *CrewAssignmentRepository) Deactivate(tenantID, id uuid.UUID) error {
	return r.db.Model(&models.CrewAssignment{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Update("active", false).Error
}
