package service

import (
	"errors"
	"fmt"

	"field-ops-backend/internal/database/models"
	apperrors "field-ops-backend/internal/errors"
	"field-ops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerService handles customer business logic
type CustomerService struct {
	customerRepo repository.CustomerRepositoryInterface
	validator    *validator.Validate
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepositoryInterface, validator *validator.Validate) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		validator:    validator,
	}
}

// CreateCustomerRequest represents the request to create a customer
type CreateCustomerRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"max=30"`
	Address     string `json:"address,omitempty" validate:"max=255"`
}

// UpdateCustomerRequest represents the request to update a customer
type UpdateCustomerRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=30"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=255"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// CustomerResponse represents a customer in responses
type CustomerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Address     string    `json:"address,omitempty"`
	Status      string    `json:"status"`
}

// CustomerListResponse represents a paginated list of customers
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Total     int64              `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// Create creates a new customer
func (s *CustomerService) Create(tenantID uuid.UUID, req *CreateCustomerRequest) (*CustomerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	customer := &models.Customer{
		TenantModel: models.TenantModel{TenantID: tenantID},
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Status:      "active",
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return s.toResponse(customer), nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(tenantID, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return s.toResponse(customer), nil
}

// List retrieves customers with pagination
func (s *CustomerService) List(tenantID uuid.UUID, limit, offset int) (*CustomerListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	customers, total, err := s.customerRepo.GetAll(tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	response := &CustomerListResponse{
		Customers: make([]CustomerResponse, len(customers)),
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}
	for i := range customers {
		response.Customers[i] = *s.toResponse(&customers[i])
	}
	return response, nil
}

// Update updates a customer
func (s *CustomerService) Update(tenantID, id uuid.UUID, req *UpdateCustomerRequest) (*CustomerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	customer, err := s.customerRepo.GetByID(tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		customer.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Status != nil {
		customer.Status = *req.Status
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return s.toResponse(customer), nil
}

// Delete removes a customer
func (s *CustomerService) Delete(tenantID, id uuid.UUID) error {
	if _, err := s.customerRepo.GetByID(tenantID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCustomerNotFound
		}
		return fmt.Errorf("failed to get customer: %w", err)
	}
	if err := s.customerRepo.Delete(tenantID, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

func (s *CustomerService) toResponse(customer *models.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:          customer.ID,
		Name:        customer.Name,
		Email:       customer.Email,
		PhoneNumber: customer.PhoneNumber,
		Address:     customer.Address,
		Status:      customer.Status,
	}
}
