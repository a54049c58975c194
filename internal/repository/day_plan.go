package repository

import (
	"time"

	"field-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DayPlanRepository handles database operations for day plans
type DayPlanRepository struct {
	db *gorm.DB
}

// NewDayPlanRepository creates a new day plan repository
func NewDayPlanRepository(db *gorm.DB) *DayPlanRepository {
	return &DayPlanRepository{db: db}
}

// Create creates a new day plan
func (r *DayPlanRepository) Create(plan *models.DayPlan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a day plan by ID within a tenant
func (r *DayPlanRepository) GetByID(tenantID, id uuid.UUID) (*models.DayPlan, error) {
	var plan models.DayPlan
	err := r.db.First(&plan, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Exists reports whether any tenant owns a day plan with this id. It returns
// a bare boolean, never row data; mutations use it to tell a cross-tenant
// target apart from a missing one.
func (r *DayPlanRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.DayPlan{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetWithEvents retrieves a day plan with its events ordered by sequence_order
func (r *DayPlanRepository) GetWithEvents(tenantID, id uuid.UUID) (*models.DayPlan, error) {
	var plan models.DayPlan
	err := r.db.Preload("Events", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence_order ASC")
	}).First(&plan, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByCrewAndDate retrieves the day plan for one crew member on one date
func (r *DayPlanRepository) GetByCrewAndDate(tenantID, crewMemberID uuid.UUID, date time.Time) (*models.DayPlan, error) {
	var plan models.DayPlan
	day := date.Format("2006-01-02")
	err := r.db.First(&plan, "tenant_id = ? AND crew_member_id = ? AND plan_date = ?", tenantID, crewMemberID, day).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByCrewMemberID retrieves day plans for a crew member, newest first
func (r *DayPlanRepository) GetByCrewMemberID(tenantID, crewMemberID uuid.UUID, limit, offset int) ([]models.DayPlan, int64, error) {
	var plans []models.DayPlan
	var total int64

	query := r.db.Model(&models.DayPlan{}).Where("tenant_id = ? AND crew_member_id = ?", tenantID, crewMemberID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("plan_date DESC").Limit(limit).Offset(offset).Find(&plans).Error
	return plans, total, err
}

// Update updates a day plan
func (r *DayPlanRepository) Update(plan *models.DayPlan) error {
	return r.db.Save(plan).Error
}
