package repository

import (
	"field-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// GetByID retrieves a customer by ID within a tenant
func (r *CustomerRepository) GetByID(tenantID, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetAll retrieves all customers for a tenant
func (r *CustomerRepository) GetAll(tenantID uuid.UUID, limit, offset int) ([]models.Customer, int64, error) {
	var customers []models.Customer
	var total int64

	query := r.db.Model(&models.Customer{}).Where("tenant_id = ?", tenantID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&customers).Error
	return customers, total, err
}

// Update updates a customer
func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// Delete deletes a customer
func (r *CustomerRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Delete(&models.Customer{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}
