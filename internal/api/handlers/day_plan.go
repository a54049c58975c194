package handlers

import (
	"net/http"
	"strconv"
	"time"

	"field-ops-backend/internal/auth"
	"field-ops-backend/internal/database/models"
	"field-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DayPlanHandler handles HTTP requests for day plans and schedule events
type DayPlanHandler struct {
	service service.DayPlanServiceInterface
}

// NewDayPlanHandler creates a new day plan handler
func NewDayPlanHandler(service service.DayPlanServiceInterface) *DayPlanHandler {
	return &DayPlanHandler{service: service}
}

// TransitionRequest carries the target status for a day plan transition
type TransitionRequest struct {
	Status models.DayPlanStatus `json:"status" binding:"required"`
}

// CreateDayPlan handles POST /api/v1/day-plans
// @Summary Create a new day plan
// @Description Create a draft day plan for one crew member on one date
// @Tags day-plans
// @Accept json
// @Produce json
// @Param day_plan body service.CreateDayPlanRequest true "Day plan data"
// @Success 201 {object} service.DayPlanResponse "Successfully created day plan"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Day plan already exists for this crew member and date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /day-plans [post]
func (h *DayPlanHandler) CreateDayPlan(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateDayPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan, err := h.service.Create(tenantID, &req)
	if err != nil {
		respondError(c, err, "Failed to create day plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetDayPlan handles GET /api/v1/day-plans/:id
// @Summary Get day plan by ID
// @Description Get a day plan with its schedule events ordered by sequence
// @Tags day-plans
// @Accept json
// @Produce json
// @Param id path string true "Day plan ID (UUID)"
// @Success 200 {object} service.DayPlanResponse "Successfully retrieved day plan"
// @Failure 400 {object} map[string]interface{} "Invalid day plan ID"
// @Failure 404 {object} map[string]interface{} "Day plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /day-plans/{id} [get]
func (h *DayPlanHandler) GetDayPlan(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day plan ID: invalid UUID format"})
		return
	}

	plan, err := h.service.GetByID(tenantID, id)
	if err != nil {
		respondError(c, err, "Failed to get day plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// FindDayPlan handles GET /api/v1/day-plans?crew_member_id=...&date=...
// @Summary Find a day plan by crew member and date
// @Description Get the single day plan of one crew member on one date
// @Tags day-plans
// @Accept json
// @Produce json
// @Param crew_member_id query string true "Crew member ID (UUID)"
// @Param date query string true "Plan date (YYYY-MM-DD)"
// @Success 200 {object} service.DayPlanResponse "Successfully retrieved day plan"
// @Failure 400 {object} map[string]interface{} "Invalid query parameters"
// @Failure 404 {object} map[string]interface{} "Day plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /day-plans [get]
func (h *DayPlanHandler) FindDayPlan(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	crewMemberID, err := uuid.Parse(c.Query("crew_member_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid crew_member_id: invalid UUID format"})
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date: expected YYYY-MM-DD"})
		return
	}

	plan, err := h.service.GetByCrewAndDate(tenantID, crewMemberID, date)
	if err != nil {
		respondError(c, err, "Failed to get day plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// InsertEvent handles POST /api/v1/day-plans/:id/events
// @Summary Insert a schedule event into a day plan
// @Description Append a job, break or travel event; rejects overlaps and more than six job events per day
// @Tags day-plans
// @Accept json
// @Produce json
// @Param id path string true "Day plan ID (UUID)"
// @Param event body service.InsertEventRequest true "Event data"
// @Success 201 {object} service.ScheduleEventResponse "Successfully inserted event"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Day plan not found"
// @Failure 409 {object} map[string]interface{} "Scheduling conflict, capacity exceeded or plan not editable"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /day-plans/{id}/events [post]
func (h *DayPlanHandler) InsertEvent(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day plan ID: invalid UUID format"})
		return
	}

	var req service.InsertEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	event, err := h.service.InsertEvent(tenantID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to insert event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// CancelEvent handles POST /api/v1/events/:id/cancel
// @Summary Cancel a schedule event
// @Description Mark an event cancelled; remaining events keep their sequence order
// @Tags day-plans
// @Accept json
// @Produce json
// @Param id path string true "Schedule event ID (UUID)"
// @Success 200 {object} service.ScheduleEventResponse "Successfully cancelled event"
// @Failure 400 {object} map[string]interface{} "Invalid event ID"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Failure 409 {object} map[string]interface{} "Event already completed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /events/{id}/cancel [post]
func (h *DayPlanHandler) CancelEvent(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID: invalid UUID format"})
		return
	}

	event, err := h.service.CancelEvent(tenantID, id)
	if err != nil {
		respondError(c, err, "Failed to cancel event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// TransitionDayPlan handles POST /api/v1/day-plans/:id/transition
// @Summary Transition a day plan's status
// @Description Move a day plan through draft, published, in_progress, completed or cancel it
// @Tags day-plans
// @Accept json
// @Produce json
// @Param id path string true "Day plan ID (UUID)"
// @Param transition body TransitionRequest true "Target status"
// @Success 200 {object} service.DayPlanResponse "Successfully transitioned day plan"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Day plan not found"
// @Failure 409 {object} map[string]interface{} "Illegal transition"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /day-plans/{id}/transition [post]
func (h *DayPlanHandler) TransitionDayPlan(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day plan ID: invalid UUID format"})
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan, err := h.service.TransitionStatus(tenantID, id, req.Status)
	if err != nil {
		respondError(c, err, "Failed to transition day plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// SuggestSlot handles GET /api/v1/day-plans/:id/suggest-slot?duration_minutes=...
// @Summary Suggest a start time for a new event
// @Description Propose the next feasible start time within the work day, after the plan's last event
// @Tags day-plans
// @Accept json
// @Produce json
// @Param id path string true "Day plan ID (UUID)"
// @Param duration_minutes query int true "Event duration in minutes"
// @Success 200 {object} service.SlotSuggestionResponse "Suggested slot"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Day plan not found"
// @Failure 409 {object} map[string]interface{} "No slot available"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /day-plans/{id}/suggest-slot [get]
func (h *DayPlanHandler) SuggestSlot(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day plan ID: invalid UUID format"})
		return
	}

	duration, err := strconv.Atoi(c.Query("duration_minutes"))
	if err != nil || duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid duration_minutes: must be a positive integer"})
		return
	}

	slot, err := h.service.SuggestSlot(tenantID, id, duration)
	if err != nil {
		respondError(c, err, "Failed to suggest slot")
		return
	}

	c.JSON(http.StatusOK, slot)
}
