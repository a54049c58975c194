package repository

import (
	"field-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrewMemberRepository handles database operations for crew members
type CrewMemberRepository struct {
	db *gorm.DB
}

// NewCrewMemberRepository creates a new crew member repository
func NewCrewMemberRepository(db *gorm.DB) *CrewMemberRepository {
	return &CrewMemberRepository{db: db}
}

// Create creates a new crew member
func (r *CrewMemberRepository) Create(member *models.CrewMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a crew member by ID within a tenant
func (r *CrewMemberRepository) GetByID(tenantID, id uuid.UUID) (*models.CrewMember, error) {
	var member models.CrewMember
	err := r.db.First(&member, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmail retrieves a crew member by email within a tenant
func (r *CrewMemberRepository) GetByEmail(tenantID uuid.UUID, email string) (*models.CrewMember, error) {
	var member models.CrewMember
	err := r.db.First(&member, "tenant_id = ? AND email = ?", tenantID, email).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAll retrieves all crew members for a tenant
func (r *CrewMemberRepository) GetAll(tenantID uuid.UUID, limit, offset int) ([]models.CrewMember, int64, error) {
	var members []models.CrewMember
	var total int64

	query := r.db.Model(&models.CrewMember{}).Where("tenant_id = ?", tenantID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("full_name ASC").Limit(limit).Offset(offset).Find(&members).Error
	return members, total, err
}

// GetActive retrieves active crew members for a tenant
func (r *CrewMemberRepository) GetActive(tenantID uuid.UUID, limit, offset int) ([]models.CrewMember, int64, error) {
	var members []models.CrewMember
	var total int64

	query := r.db.Model(&models.CrewMember{}).Where("tenant_id = ? AND is_active = ?", tenantID, true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("full_name ASC").Limit(limit).Offset(offset).Find(&members).Error
	return members, total, err
}

// Update updates a crew member
func (r *CrewMemberRepository) Update(member *models.CrewMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a crew member
func (r *CrewMemberRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Delete(&models.CrewMember{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}
