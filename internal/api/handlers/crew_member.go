package handlers

import (
	"net/http"
	"strconv"

	"field-ops-backend/internal/auth"
	"field-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CrewMemberHandler handles HTTP requests for crew members
type CrewMemberHandler struct {
	service service.CrewMemberServiceInterface
}

// NewCrewMemberHandler creates a new crew member handler
func NewCrewMemberHandler(service service.CrewMemberServiceInterface) *CrewMemberHandler {
	return &CrewMemberHandler{service: service}
}

// CreateCrewMember handles POST /api/v1/crew-members
// @Summary Create a new crew member
// @Tags crew-members
// @Accept json
// @Produce json
// @Param crew_member body service.CreateCrewMemberRequest true "Crew member data"
// @Success 201 {object} service.CrewMemberResponse "Successfully created crew member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Crew member already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /crew-members [post]
func (h *CrewMemberHandler) CreateCrewMember(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateCrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.Create(tenantID, &req)
	if err != nil {
		respondError(c, err, "Failed to create crew member")
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetCrewMember handles GET /api/v1/crew-members/:id
// @Summary Get crew member by ID
// @Tags crew-members
// @Accept json
// @Produce json
// @Param id path string true "Crew member ID (UUID)"
// @Success 200 {object} service.CrewMemberResponse "Successfully retrieved crew member"
// @Failure 400 {object} map[string]interface{} "Invalid crew member ID"
// @Failure 404 {object} map[string]interface{} "Crew member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /crew-members/{id} [get]
func (h *CrewMemberHandler) GetCrewMember(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid crew member ID: invalid UUID format"})
		return
	}

	member, err := h.service.GetByID(tenantID, id)
	if err != nil {
		respondError(c, err, "Failed to get crew member")
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListCrewMembers handles GET /api/v1/crew-members
// @Summary List crew members
// @Tags crew-members
// @Accept json
// @Produce json
// @Param active_only query bool false "Only active crew members"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.CrewMemberListResponse "Successfully retrieved crew members"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /crew-members [get]
func (h *CrewMemberHandler) ListCrewMembers(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	activeOnly := c.Query("active_only") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	members, err := h.service.List(tenantID, activeOnly, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list crew members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateCrewMember handles PUT /api/v1/crew-members/:id
// @Summary Update a crew member
// @Tags crew-members
// @Accept json
// @Produce json
// @Param id path string true "Crew member ID (UUID)"
// @Param crew_member body service.UpdateCrewMemberRequest true "Crew member data"
// @Success 200 {object} service.CrewMemberResponse "Successfully updated crew member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Crew member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /crew-members/{id} [put]
func (h *CrewMemberHandler) UpdateCrewMember(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid crew member ID: invalid UUID format"})
		return
	}

	var req service.UpdateCrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.Update(tenantID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update crew member")
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteCrewMember handles DELETE /api/v1/crew-members/:id
// @Summary Delete a crew member
// @Tags crew-members
// @Accept json
// @Produce json
// @Param id path string true "Crew member ID (UUID)"
// @Success 204 "Successfully deleted crew member"
// @Failure 400 {object} map[string]interface{} "Invalid crew member ID"
// @Failure 404 {object} map[string]interface{} "Crew member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /crew-members/{id} [delete]
func (h *CrewMemberHandler) DeleteCrewMember(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid crew member ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(tenantID, id); err != nil {
		respondError(c, err, "Failed to delete crew member")
		return
	}

	c.Status(http.StatusNoContent)
}
