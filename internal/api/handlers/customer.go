package handlers

import (
	"net/http"
	"strconv"

	"field-ops-backend/internal/auth"
	"field-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CustomerHandler handles HTTP requests for customers
type CustomerHandler struct {
	service service.CustomerServiceInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(service service.CustomerServiceInterface) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// CreateCustomer handles POST /api/v1/customers
// @Summary Create a new customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body service.CreateCustomerRequest true "Customer data"
// @Success 201 {object} service.CustomerResponse "Successfully created customer"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	customer, err := h.service.Create(tenantID, &req)
	if err != nil {
		respondError(c, err, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomer handles GET /api/v1/customers/:id
// @Summary Get customer by ID
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} service.CustomerResponse "Successfully retrieved customer"
// @Failure 400 {object} map[string]interface{} "Invalid customer ID"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID: invalid UUID format"})
		return
	}

	customer, err := h.service.GetByID(tenantID, id)
	if err != nil {
		respondError(c, err, "Failed to get customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// ListCustomers handles GET /api/v1/customers
// @Summary List customers
// @Tags customers
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.CustomerListResponse "Successfully retrieved customers"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	customers, err := h.service.List(tenantID, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// UpdateCustomer handles PUT /api/v1/customers/:id
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Param customer body service.UpdateCustomerRequest true "Customer data"
// @Success 200 {object} service.CustomerResponse "Successfully updated customer"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID: invalid UUID format"})
		return
	}

	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	customer, err := h.service.Update(tenantID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /api/v1/customers/:id
// @Summary Delete a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 204 "Successfully deleted customer"
// @Failure 400 {object} map[string]interface{} "Invalid customer ID"
// @Failure 404 {object} map[string]interface{} "Customer not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	tenantID, ok := auth.GetTenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(tenantID, id); err != nil {
		respondError(c, err, "Failed to delete customer")
		return
	}

	c.Status(http.StatusNoContent)
}
