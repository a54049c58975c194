package handlers

import (
	"net/http"

	"field-ops-backend/internal/auth"
	"field-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CrewAssignmentHandler handles HTTP requests for crew assignments
type CrewAssignmentHandler struct {
	service service.CrewAssignmentServiceInterface
}

// NewCrewAssignmentHandler creates a new crew assignment handler
func NewCrewAssignmentHandler(service service.CrewAssignmentServiceInterface) *CrewAssignmentHandler {
	return &CrewAssignmentHandler{service: service}
}

// AssignCrew handles POST /api/v1/crew-assignments
// @Summary Assign a crew member to a day plan or schedule event
// @Description Create an active assignment, deactivating any prior one on the same target
// @Tags crew-assignments
// @Accept json
// @Produce json
// @Param assignment body service.AssignCrewRequest true "Assignment data"
// @Success 201 {object} service.CrewAssignmentResponse "Successfully assigned crew member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Crew member or target not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /crew-assignments [post]
func (h *CrewAssignmentHandler) AssignCrew(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.AssignCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	assignment, err := h.service.Assign(tenantID, &req)
	if err != nil {
		respondError(c, err, "Failed to assign crew member")
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// GetActiveForDayPlan handles GET /api/v1/day-plans/:id/crew-assignment
// @Summary Get the active crew assignment of a day plan
// @Tags crew-assignments
// @Accept json
// @Produce json
// @Param id path string true "Day plan ID (UUID)"
// @Success 200 {object} service.CrewAssignmentResponse "Active assignment"
// @Failure 400 {object} map[string]interface{} "Invalid day plan ID"
// @Failure 404 {object} map[string]interface{} "No active assignment"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /day-plans/{id}/crew-assignment [get]
func (h *CrewAssignmentHandler) GetActiveForDayPlan(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	dayPlanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day plan ID: invalid UUID format"})
		return
	}

	assignment, err := h.service.GetActiveByDayPlanID(tenantID, dayPlanID)
	if err != nil {
		respondError(c, err, "Failed to get crew assignment")
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// GetActiveForEvent handles GET /api/v1/events/:id/crew-assignment
// @Summary Get the active crew assignment of a schedule event
// @Tags crew-assignments
// @Accept json
// @Produce json
// @Param id path string true "Schedule event ID (UUID)"
// @Success 200 {object} service.CrewAssignmentResponse "Active assignment"
// @Failure 400 {object} map[string]interface{} "Invalid event ID"
// @Failure 404 {object} map[string]interface{} "No active assignment"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /events/{id}/crew-assignment [get]
func (h *CrewAssignmentHandler) GetActiveForEvent(c *gin.Context) {
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
		respondError(c, err, "Failed to get crew assignment")
		return
	}

	c.JSON(http.StatusOK, assignment)
}
