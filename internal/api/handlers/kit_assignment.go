package handlers

import (
	"net/http"
	"strconv"

	"field-ops-backend/internal/auth"
	"field-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KitAssignmentHandler handles HTTP requests for kit assignments and the
// override ledger
type KitAssignmentHandler struct {
	service service.KitAssignmentServiceInterface
}

// NewKitAssignmentHandler creates a new kit assignment handler
func NewKitAssignmentHandler(service service.KitAssignmentServiceInterface) *KitAssignmentHandler {
	return &KitAssignmentHandler{service: service}
}

// AssignKit handles POST /api/v1/kit-assignments
// @Summary Assign a kit or variant to a schedule event
// @Description Bind a kit (or one of its variants) to an event; a prior active assignment is superseded, not overwritten
// @Tags kit-assignments
// @Accept json
// @Produce json
// @Param assignment body service.AssignKitRequest true "Assignment data"
// @Success 201 {object} service.KitAssignmentResponse "Successfully assigned kit"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Kit, variant or event not found"
// @Failure 409 {object} map[string]interface{} "Kit is not active"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /kit-assignments [post]
func (h *KitAssignmentHandler) AssignKit(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.AssignKitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	assignment, err := h.service.Assign(tenantID, &req)
	if err != nil {
		respondError(c, err, "Failed to assign kit")
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// GetActiveAssignment handles GET /api/v1/events/:id/kit-assignment
// @Summary Get the active kit assignment of a schedule event
// @Tags kit-assignments
// @Accept json
// @Produce json
// @Param id path string true "Schedule event ID (UUID)"
// @Success 200 {object} service.KitAssignmentResponse "Active assignment"
// @Failure 400 {object} map[string]interface{} "Invalid event ID"
// @Failure 404 {object} map[string]interface{} "No active assignment"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /events/{id}/kit-assignment [get]
func (h *KitAssignmentHandler) GetActiveAssignment(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID: invalid UUID format"})
		return
	}

	assignment, err := h.service.GetActiveByEventID(tenantID, eventID)
	if err != nil {
		respondError(c, err, "Failed to get kit assignment")
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// GetAssignmentHistory handles GET /api/v1/events/:id/kit-assignments
// @Summary Get the kit assignment history of a schedule event
// @Description List all assignments for an event, superseded ones included, newest first
// @Tags kit-assignments
// @Accept json
// @Produce json
// @Param id path string true "Schedule event ID (UUID)"
// @Success 200 {array} service.KitAssignmentResponse "Assignment history"
// @Failure 400 {object} map[string]interface{} "Invalid event ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /events/{id}/kit-assignments [get]
func (h *KitAssignmentHandler) GetAssignmentHistory(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID: invalid UUID format"})
		return
	}

	history, err := h.service.History(tenantID, eventID)
	if err != nil {
		respondError(c, err, "Failed to get assignment history")
		return
	}

	c.JSON(http.StatusOK, history)
}

// RecordOverride handles POST /api/v1/kit-assignments/:id/overrides
// @Summary Record a kit override
// @Description Append an override (swap, drop or field addition) to the assignment's ledger; a reason is mandatory
// @Tags kit-assignments
// @Accept json
// @Produce json
// @Param id path string true "Kit assignment ID (UUID)"
// @Param override body service.RecordOverrideRequest true "Override data"
// @Success 201 {object} service.KitOverrideResponse "Successfully recorded override"
// @Failure 400 {object} map[string]interface{} "Invalid request body or missing reason"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /kit-assignments/{id}/overrides [post]
func (h *KitAssignmentHandler) RecordOverride(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID: invalid UUID format"})
		return
	}

	var req service.RecordOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	req.KitAssignmentID = assignmentID

	entry, err := h.service.RecordOverride(tenantID, &req)
	if err != nil {
		respondError(c, err, "Failed to record override")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListOverrides handles GET /api/v1/kit-assignments/:id/overrides
// @Summary List overrides of a kit assignment
// @Description Read the append-only override ledger, oldest first
// @Tags kit-assignments
// @Accept json
// @Produce json
// @Param id path string true "Kit assignment ID (UUID)"
// @Success 200 {array} service.KitOverrideResponse "Override ledger"
// @Failure 400 {object} map[string]interface{} "Invalid assignment ID"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /kit-assignments/{id}/overrides [get]
func (h *KitAssignmentHandler) ListOverrides(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID: invalid UUID format"})
		return
	}

	entries, err := h.service.ListOverrides(tenantID, assignmentID)
	if err != nil {
		respondError(c, err, "Failed to list overrides")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ListAllOverrides handles GET /api/v1/kit-overrides
// @Summary List the tenant's override ledger
// @Description Page through all override entries for the tenant, newest first, across assignments
// @Tags kit-assignments
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.KitOverrideListResponse "Override ledger page"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /kit-overrides [get]
func (h *KitAssignmentHandler) ListAllOverrides(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.service.ListAllOverrides(tenantID, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list overrides")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// VerifyAssignment handles GET /api/v1/kit-assignments/:id/verify
// @Summary Verify a kit assignment against items present
// @Description Compare the effective required item set against the present items and report what is missing
// @Tags kit-assignments
// @Accept json
// @Produce json
// @Param id path string true "Kit assignment ID (UUID)"
// @Param present query []string false "Item names present" collectionFormat(multi)
// @Success 200 {object} service.KitVerificationResponse "Verification result"
// @Failure 400 {object} map[string]interface{} "Invalid assignment ID"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /kit-assignments/{id}/verify [get]
func (h *KitAssignmentHandler) VerifyAssignment(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID: invalid UUID format"})
		return
	}

	req := &service.VerifyKitRequest{PresentItems: c.QueryArray("present")}

	result, err := h.service.VerifyComplete(tenantID, assignmentID, req)
	if err != nil {
		respondError(c, err, "Failed to verify assignment")
		return
	}

	c.JSON(http.StatusOK, result)
}
