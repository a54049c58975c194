package handlers

import (
	"net/http"
	"strconv"

	"field-ops-backend/internal/auth"
	"field-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KitHandler handles HTTP requests for the kit catalog
type KitHandler struct {
	service service.KitServiceInterface
}

// NewKitHandler creates a new kit handler
func NewKitHandler(service service.KitServiceInterface) *KitHandler {
	return &KitHandler{service: service}
}

// CreateKit handles POST /api/v1/kits
// @Summary Create a new kit
// @Description Create a kit with its base item set; a kit needs at least one item
// @Tags kits
// @Accept json
// @Produce json
// @Param kit body service.CreateKitRequest true "Kit data"
// @Success 201 {object} service.KitResponse "Successfully created kit"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Kit code already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /kits [post]
func (h *KitHandler) CreateKit(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateKitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	kit, err := h.service.CreateKit(tenantID, &req)
	if err != nil {
		respondError(c, err, "Failed to create kit")
		return
	}

	c.JSON(http.StatusCreated, kit)
}

// GetKit handles GET /api/v1/kits/:id
// @Summary Get kit by ID
// @Description Get a kit with its base items and variants
// @Tags kits
// @Accept json
// @Produce json
// @Param id path string true "Kit ID (UUID)"
// @Success 200 {object} service.KitResponse "Successfully retrieved kit"
// @Failure 400 {object} map[string]interface{} "Invalid kit ID"
// @Failure 404 {object} map[string]interface{} "Kit not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /kits/{id} [get]
func (h *KitHandler) GetKit(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid kit ID: invalid UUID format"})
		return
	}

	kit, err := h.service.GetByID(tenantID, id)
	if err != nil {
		respondError(c, err, "Failed to get kit")
		return
	}

	c.JSON(http.StatusOK, kit)
}

// GetKitByCode handles GET /api/v1/kits/code/:code
// @Summary Get kit by code
// @Description Get a kit by its tenant-unique code
// @Tags kits
// @Accept json
// @Produce json
// @Param code path string true "Kit code"
// @Success 200 {object} service.KitResponse "Successfully retrieved kit"
// @Failure 404 {object} map[string]interface{} "Kit not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /kits/code/{code} [get]
func (h *KitHandler) GetKitByCode(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	kit, err := h.service.GetByCode(tenantID, c.Param("code"))
	if err != nil {
		respondError(c, err, "Failed to get kit")
		return
	}

	c.JSON(http.StatusOK, kit)
}

// ListKits handles GET /api/v1/kits
// @Summary List kits
// @Description List kits with pagination; active_only=true hides deactivated kits
// @Tags kits
// @Accept json
// @Produce json
// @Param active_only query bool false "Only active kits"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.KitListResponse "Successfully retrieved kits"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /kits [get]
func (h *KitHandler) ListKits(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	activeOnly := c.Query("active_only") == "true"
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	kits, err := h.service.List(tenantID, activeOnly, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list kits")
		return
	}

	c.JSON(http.StatusOK, kits)
}

// AddItem handles POST /api/v1/kits/:id/items
// @Summary Add an item to a kit
// @Description Add an item to the kit's base set
// @Tags kits
// @Accept json
// @Produce json
// @Param id path string true "Kit ID (UUID)"
// @Param item body service.KitItemRequest true "Item data"
// @Success 201 {object} service.KitItemResponse "Successfully added item"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Kit not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /kits/{id}/items [post]
func (h *KitHandler) AddItem(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid kit ID: invalid UUID format"})
		return
	}

	var req service.KitItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := h.service.AddItem(tenantID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to add item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// RemoveItem handles DELETE /api/v1/kits/:id/items/:item_id
// @Summary Remove an item from a kit
// @Description Remove an item; the last base item of a kit cannot be removed
// @Tags kits
// @Accept json
// @Produce json
// @Param id path string true "Kit ID (UUID)"
// @Param item_id path string true "Kit item ID (UUID)"
// @Success 204 "Successfully removed item"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Kit item not found"
// @Failure 409 {object} map[string]interface{} "Kit would be empty"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /kits/{id}/items/{item_id} [delete]
func (h *KitHandler) RemoveItem(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	kitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid kit ID: invalid UUID format"})
		return
	}
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID: invalid UUID format"})
		return
	}

	if err := h.service.RemoveItem(tenantID, kitID, itemID); err != nil {
		respondError(c, err, "Failed to remove item")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddVariant handles POST /api/v1/kits/:id/variants
// @Summary Add a variant to a kit
// @Description Add a condition variant with its own item set
// @Tags kits
// @Accept json
// @Produce json
// @Param id path string true "Kit ID (UUID)"
// @Param variant body service.CreateVariantRequest true "Variant data"
// @Success 201 {object} service.KitVariantResponse "Successfully added variant"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Kit not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /kits/{id}/variants [post]
func (h *KitHandler) AddVariant(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid kit ID: invalid UUID format"})
		return
	}

	var req service.CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	variant, err := h.service.AddVariant(tenantID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to add variant")
		return
	}

	c.JSON(http.StatusCreated, variant)
}

// DeleteKit handles DELETE /api/v1/kits/:id
// @Summary Delete a kit
// @Description Hard-delete a kit no assignment has ever referenced; referenced kits can only be deactivated
// @Tags kits
// @Accept json
// @Produce json
// @Param id path string true "Kit ID (UUID)"
// @Success 204 "Successfully deleted kit"
// @Failure 400 {object} map[string]interface{} "Invalid kit ID"
// @Failure 404 {object} map[string]interface{} "Kit not found"
// @Failure 409 {object} map[string]interface{} "Kit is referenced by assignments"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /kits/{id} [delete]
func (h *KitHandler) DeleteKit(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid kit ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(tenantID, id); err != nil {
		respondError(c, err, "Failed to delete kit")
		return
	}

	c.Status(http.StatusNoContent)
}

// DeactivateKit handles POST /api/v1/kits/:id/deactivate
// @Summary Deactivate a kit
// @Description Soft-deactivate a kit; existing assignments keep referencing it
// @Tags kits
// @Accept json
// @Produce json
// @Param id path string true "Kit ID (UUID)"
// @Success 200 {object} service.KitResponse "Successfully deactivated kit"
// @Failure 400 {object} map[string]interface{} "Invalid kit ID"
// @Failure 404 {object} map[string]interface{} "Kit not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /kits/{id}/deactivate [post]
func (h *KitHandler) DeactivateKit(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid kit ID: invalid UUID format"})
		return
	}

	kit, err := h.service.Deactivate(tenantID, id)
	if err != nil {
		respondError(c, err, "Failed to deactivate kit")
		return
	}

	c.JSON(http.StatusOK, kit)
}
