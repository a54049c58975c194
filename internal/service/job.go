package service

import (
	"errors"
	"fmt"
	"time"

	"field-ops-backend/internal/database/models"
	apperrors "field-ops-backend/internal/errors"
	"field-ops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobService handles job business logic
type JobService struct {
	jobRepo      repository.JobRepositoryInterface
	customerRepo repository.CustomerRepositoryInterface
	validator    *validator.Validate
}

// NewJobService creates a new job service
func NewJobService(
	jobRepo repository.JobRepositoryInterface,
	customerRepo repository.CustomerRepositoryInterface,
	validator *validator.Validate,
) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		customerRepo: customerRepo,
		validator:    validator,
	}
}

// CreateJobRequest represents the request to create a job
type CreateJobRequest struct {
	CustomerID               uuid.UUID          `json:"customer_id" validate:"required"`
	Title                    string             `json:"title" validate:"required,min=1,max=200"`
	Description              string             `json:"description,omitempty"`
	Priority                 models.JobPriority `json:"priority,omitempty"`
	ScheduledDate            *time.Time         `json:"scheduled_date,omitempty"`
	EstimatedDurationMinutes int                `json:"estimated_duration_minutes,omitempty" validate:"min=0"`
	Address                  string             `json:"address,omitempty" validate:"max=255"`
	CreatedBy                string             `json:"created_by,omitempty" validate:"max=100"`
}

// UpdateJobRequest represents the request to update a job
type UpdateJobRequest struct {
	Title                    *string             `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description              *string             `json:"description,omitempty"`
	Status                   *models.JobStatus   `json:"status,omitempty"`
	Priority                 *models.JobPriority `json:"priority,omitempty"`
	ScheduledDate            *time.Time          `json:"scheduled_date,omitempty"`
	EstimatedDurationMinutes *int                `json:"estimated_duration_minutes,omitempty" validate:"omitempty,min=0"`
	Address                  *string             `json:"address,omitempty" validate:"omitempty,max=255"`
}

// JobResponse represents a job in responses
type JobResponse struct {
	ID                       uuid.UUID          `json:"id"`
	CustomerID               uuid.UUID          `json:"customer_id"`
	Title                    string             `json:"title"`
	Description              string             `json:"description,omitempty"`
	Status                   models.JobStatus   `json:"status"`
	Priority                 models.JobPriority `json:"priority"`
	ScheduledDate            *time.Time         `json:"scheduled_date,omitempty"`
	EstimatedDurationMinutes int                `json:"estimated_duration_minutes"`
	Address                  string             `json:"address,omitempty"`
	CreatedBy                string             `json:"created_by,omitempty"`
}

// JobListResponse represents a paginated list of jobs
type JobListResponse struct {
	Jobs   []JobResponse `json:"jobs"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// Create creates a new job for a customer
func (s *JobService) Create(tenantID uuid.UUID, req *CreateJobRequest) (*JobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	priority := req.Priority
	if priority == "" {
		priority = models.JobPriorityMedium
	}
	if !priority.IsValid() {
		return nil, apperrors.NewValidationError("priority", "must be low, medium or high")
	}

	if _, err := s.customerRepo.GetByID(tenantID, req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to verify customer: %w", err)
	}

	duration := req.EstimatedDurationMinutes
	if duration == 0 {
		duration = 60
	}

	job := &models.Job{
		TenantModel:              models.TenantModel{TenantID: tenantID},
		CustomerID:               req.CustomerID,
		Title:                    req.Title,
		Description:              req.Description,
		Status:                   models.JobStatusScheduled,
		Priority:                 priority,
		ScheduledDate:            req.ScheduledDate,
		EstimatedDurationMinutes: duration,
		Address:                  req.Address,
		CreatedBy:                req.CreatedBy,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return s.toResponse(job), nil
}

// GetByID retrieves a job by ID
func (s *JobService) GetByID(tenantID, id uuid.UUID) (*JobResponse, error) {
	job, err := s.jobRepo.GetByID(tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return s.toResponse(job), nil
}

// List retrieves jobs with pagination, optionally filtered by status
func (s *JobService) List(tenantID uuid.UUID, status *models.JobStatus, limit, offset int) (*JobListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var jobs []models.Job
	var total int64
	var err error
	if status != nil {
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		jobs, total, err = s.jobRepo.GetByStatus(tenantID, *status, limit, offset)
	} else {
		jobs, total, err = s.jobRepo.GetAll(tenantID, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	response := &JobListResponse{
		Jobs:   make([]JobResponse, len(jobs)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for i := range jobs {
		response.Jobs[i] = *s.toResponse(&jobs[i])
	}
	return response, nil
}

// ListByCustomer retrieves jobs for one customer with pagination
func (s *JobService) ListByCustomer(tenantID, customerID uuid.UUID, limit, offset int) (*JobListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	jobs, total, err := s.jobRepo.GetByCustomerID(tenantID, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	response := &JobListResponse{
		Jobs:   make([]JobResponse, len(jobs)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for i := range jobs {
		response.Jobs[i] = *s.toResponse(&jobs[i])
	}
	return response, nil
}

// Update updates a job
func (s *JobService) Update(tenantID, id uuid.UUID, req *UpdateJobRequest) (*JobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	job, err := s.jobRepo.GetByID(tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		job.Status = *req.Status
	}
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, apperrors.NewValidationError("priority", "must be low, medium or high")
		}
		job.Priority = *req.Priority
	}
	if req.ScheduledDate != nil {
		job.ScheduledDate = req.ScheduledDate
	}
	if req.EstimatedDurationMinutes != nil {
		job.EstimatedDurationMinutes = *req.EstimatedDurationMinutes
	}
	if req.Address != nil {
		job.Address = *req.Address
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return s.toResponse(job), nil
}

// Delete removes a job
func (s *JobService) Delete(tenantID, id uuid.UUID) error {
	if _, err := s.jobRepo.GetByID(tenantID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobNotFound
		}
		return fmt.Errorf("failed to get job: %w", err)
	}
	if err := s.jobRepo.Delete(tenantID, id); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

func (s *JobService) toResponse(job *models.Job) *JobResponse {
	return &JobResponse{
		ID:                       job.ID,
		CustomerID:               job.CustomerID,
		Title:                    job.Title,
		Description:              job.Description,
		Status:                   job.Status,
		Priority:                 job.Priority,
		ScheduledDate:            job.ScheduledDate,
		EstimatedDurationMinutes: job.EstimatedDurationMinutes,
		Address:                  job.Address,
		CreatedBy:                job.CreatedBy,
	}
}
