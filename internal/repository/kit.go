package repository

import (
	"field-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KitRepository handles database operations for the kit catalog
type KitRepository struct {
	db *gorm.DB
}

// NewKitRepository creates a new kit repository
func NewKitRepository(db *gorm.DB) *KitRepository {
	return &KitRepository{db: db}
}

// Create creates a kit together with its initial items in one transaction
func (r *KitRepository) Create(kit *models.Kit) error {
	return r.db.Create(kit).Error
}

// GetByID retrieves a kit with its items and variants within a tenant
func (r *KitRepository) GetByID(tenantID, id uuid.UUID) (*models.Kit, error) {
	var kit models.Kit
	err := r.db.Preload("Items").Preload("Variants").Preload("Variants.Items").
		First(&kit, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &kit, nil
}

// GetByCode retrieves a kit by its tenant-unique code
func (r *KitRepository) GetByCode(tenantID uuid.UUID, code string) (*models.Kit, error) {
	var kit models.Kit
	err := r.db.Preload("Items").Preload("Variants").
		First(&kit, "tenant_id = ? AND code = ?", tenantID, code).Error
	if err != nil {
		return nil, err
	}
	return &kit, nil
}

// GetAll retrieves kits for a tenant, optionally only active ones
func (r *KitRepository) GetAll(tenantID uuid.UUID, activeOnly bool, limit, offset int) ([]models.Kit, int64, error) {
	var kits []models.Kit
	var total int64

	query := r.db.Model(&models.Kit{}).Where("tenant_id = ?", tenantID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("code ASC").Limit(limit).Offset(offset).
		Preload("Items").Find(&kits).Error
	return kits, total, err
}

// Update updates a kit
func (r *KitRepository) Update(kit *models.Kit) error {
	return r.db.Save(kit).Error
}

// CreateItem adds an item to a kit or variant
func (r *KitRepository) CreateItem(item *models.KitItem) error {
	return r.db.Create(item).Error
}

// GetItemByID retrieves a kit item within a tenant
func (r *KitRepository) GetItemByID(tenantID, id uuid.UUID) (*models.KitItem, error) {
	var item models.KitItem
	err := r.db.First(&item, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes a kit item
func (r *KitRepository) DeleteItem(tenantID, id uuid.UUID) error {
	return r.db.Delete(&models.KitItem{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}

// CountItems counts the items of a kit's base set. Variant items do not keep
// a kit alive on their own.
func (r *KitRepository) CountItems(tenantID, kitID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.KitItem{}).
		Where("tenant_id = ? AND kit_id = ? AND variant_id IS NULL", tenantID, kitID).
		Count(&count).Error
	return count, err
}

// CreateVariant adds a variant to a kit together with its item set in one
// transaction
func (r *KitRepository) CreateVariant(variant *models.KitVariant) error {
	return r.db.Create(variant).Error
}

// GetVariantByID retrieves a kit variant with its items within a tenant
func (r *KitRepository) GetVariantByID(tenantID, id uuid.UUID) (*models.KitVariant, error) {
	var variant models.KitVariant
	err := r.db.Preload("Items").First(&variant, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

// IsReferenced reports whether any kit assignment references the kit. A
// referenced kit may only be deactivated, never deleted.
func (r *KitRepository) IsReferenced(tenantID, kitID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.KitAssignment{}).
		Where("tenant_id = ? AND kit_id = ?", tenantID, kitID).Count(&count).Error
	return count > 0, err
}

// Delete hard-deletes a kit; its items and variants go with it via the
// cascade constraints. Callers must check IsReferenced first.
func (r *KitRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Delete(&models.Kit{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}
