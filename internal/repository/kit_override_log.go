package repository

import (
	"field-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KitOverrideLogRepository is the insert-only data access type for the
// override ledger. The append-only invariant is enforced here in the
// interface, not by convention: there is no Update and no Delete.
type KitOverrideLogRepository struct {
	db *gorm.DB
}

// NewKitOverrideLogRepository creates a new kit override log repository
func NewKitOverrideLogRepository(db *gorm.DB) *KitOverrideLogRepository {
	return &KitOverrideLogRepository{db: db}
}

// Create appends one immutable ledger row. The write must be durable before
// the caller acknowledges success; a failed append is surfaced, never dropped.
func (r *KitOverrideLogRepository) Create(entry *models.KitOverrideLog) error {
	return r.db.Create(entry).Error
}

// GetByAssignmentID retrieves the ledger rows for one kit assignment, oldest first
func (r *KitOverrideLogRepository) GetByAssignmentID(tenantID, assignmentID uuid.UUID) ([]models.KitOverrideLog, error) {
	var entries []models.KitOverrideLog
	err := r.db.Where("tenant_id = ? AND kit_assignment_id = ?", tenantID, assignmentID).
		Order("created_at ASC").Find(&entries).Error
	return entries, err
}

// GetAll retrieves ledger rows for a tenant, newest first, for audit consumers
func (r *KitOverrideLogRepository) GetAll(tenantID uuid.UUID, limit, offset int) ([]models.KitOverrideLog, int64, error) {
	var entries []models.KitOverrideLog
	var total int64

	query := r.db.Model(&models.KitOverrideLog{}).Where("tenant_id = ?", tenantID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}
