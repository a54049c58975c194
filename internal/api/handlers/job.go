package handlers

import (
	"net/http"
	"strconv"

	"field-ops-backend/internal/auth"
	"field-ops-backend/internal/database/models"
	"field-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// JobHandler handles HTTP requests for jobs
type JobHandler struct {
	service service.JobServiceInterface
}

// NewJobHandler creates a new job handler
func NewJobHandler(service service.JobServiceInterface) *JobHandler {
	return &JobHandler{service: service}
}

// CreateJob handles POST /api/v1/jobs
// @Summary Create a new job
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body service.CreateJobRequest true "Job data"
// @Success 201 {object} service.JobResponse "Successfully created job"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	job, err := h.service.Create(tenantID, &req)
	if err != nil {
		respondError(c, err, "Failed to create job")
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetJob handles GET /api/v1/jobs/:id
// @Summary Get job by ID
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Success 200 {object} service.JobResponse "Successfully retrieved job"
// @Failure 400 {object} map[string]interface{} "Invalid job ID"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID: invalid UUID format"})
		return
	}

	job, err := h.service.GetByID(tenantID, id)
	if err != nil {
		respondError(c, err, "Failed to get job")
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobs handles GET /api/v1/jobs
// @Summary List jobs
// @Description List jobs with pagination, optionally filtered by status or customer
// @Tags jobs
// @Accept json
// @Produce json
// @Param status query string false "Filter by status"
// @Param customer_id query string false "Filter by customer ID (UUID)"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.JobListResponse "Successfully retrieved jobs"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := uuid.Parse(customerIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id: invalid UUID format"})
			return
		}
		jobs, err := h.service.ListByCustomer(tenantID, customerID, limit, offset)
		if err != nil {
			respondError(c, err, "Failed to list jobs")
			return
		}
		c.JSON(http.StatusOK, jobs)
		return
	}

	var status *models.JobStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := models.JobStatus(statusStr)
		status = &s
	}

	jobs, err := h.service.List(tenantID, status, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list jobs")
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// UpdateJob handles PUT /api/v1/jobs/:id
// @Summary Update a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Param job body service.UpdateJobRequest true "Job data"
// @Success 200 {object} service.JobResponse "Successfully updated job"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID: invalid UUID format"})
		return
	}

	var req service.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	job, err := h.service.Update(tenantID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update job")
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob handles DELETE /api/v1/jobs/:id
// @Summary Delete a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Success 204 "Successfully deleted job"
// @Failure 400 {object} map[string]interface{} "Invalid job ID"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(tenantID, id); err != nil {
		respondError(c, err, "Failed to delete job")
		return
	}

	c.Status(http.StatusNoContent)
}
