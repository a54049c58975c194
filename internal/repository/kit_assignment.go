package repository

import (
	"errors"
	"time"

	"field-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KitAssignmentRepository handles database operations for kit assignments
type KitAssignmentRepository struct {
	db *gorm.DB
}

// NewKitAssignmentRepository creates a new kit assignment repository
func NewKitAssignmentRepository(db *gorm.DB) *KitAssignmentRepository {
	return &KitAssignmentRepository{db: db}
}

// Create creates a new kit assignment
func (r *KitAssignmentRepository) Create(assignment *models.KitAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves a kit assignment with its kit and variant within a tenant
func (r *KitAssignmentRepository) GetByID(tenantID, id uuid.UUID) (*models.KitAssignment, error) {
	var assignment models.KitAssignment
	err := r.db.Preload("Kit").Preload("Kit.Items").Preload("Variant").Preload("Variant.Items").
		First(&assignment, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetActiveByEventID retrieves the one non-superseded assignment for a
// schedule event, or nil if none exists
func (r *KitAssignmentRepository) GetActiveByEventID(tenantID, eventID uuid.UUID) (*models.KitAssignment, error) {
	var assignment models.KitAssignment
	err := r.db.First(&assignment,
		"tenant_id = ? AND schedule_event_id = ? AND superseded = ?", tenantID, eventID, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

// GetByEventID retrieves the full assignment history for a schedule event,
// newest first; superseded records are retained, never deleted
func (r *KitAssignmentRepository) GetByEventID(tenantID, eventID uuid.UUID) ([]models.KitAssignment, error) {
	var assignments []models.KitAssignment
	err := r.db.Where("tenant_id = ? AND schedule_event_id = ?", tenantID, eventID).
		Order("assigned_at DESC").Find(&assignments).Error
	return assignments, err
}

// MarkSuperseded marks a prior assignment superseded; the row itself is kept
func (r *KitAssignmentRepository) MarkSuperseded(tenantID, id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.KitAssignment{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(map[string]interface{}{"superseded": true, "superseded_at": at}).Error
}
