package repository

import (
	"field-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobRepository handles database operations for jobs
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new job
func (r *JobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

// GetByID retrieves a job by ID within a tenant
func (r *JobRepository) GetByID(tenantID, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetAll retrieves all jobs for a tenant, newest scheduled first
func (r *JobRepository) GetAll(tenantID uuid.UUID, limit, offset int) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	query := r.db.Model(&models.Job{}).Where("tenant_id = ?", tenantID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("scheduled_date DESC NULLS LAST").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

// GetByCustomerID retrieves jobs for a customer
func (r *JobRepository) GetByCustomerID(tenantID, customerID uuid.UUID, limit, offset int) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	query := r.db.Model(&models.Job{}).Where("tenant_id = ? AND customer_id = ?", tenantID, customerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("scheduled_date DESC NULLS LAST").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

// GetByStatus retrieves jobs by status
func (r *JobRepository) GetByStatus(tenantID uuid.UUID, status models.JobStatus, limit, offset int) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	query := r.db.Model(&models.Job{}).Where("tenant_id = ? AND status = ?", tenantID, status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("scheduled_date ASC NULLS LAST").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

// Update updates a job
func (r *JobRepository) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

// Delete deletes a job
func (r *JobRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Delete(&models.Job{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}
