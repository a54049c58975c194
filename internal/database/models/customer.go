package models

// Customer represents a customer a job is performed for
type Customer struct {
	TenantModel
	Name        string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email       string `json:"email" gorm:"size:255" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" gorm:"size:30"`
	Address     string `json:"address" gorm:"size:255"`
	Status      string `json:"status" gorm:"size:30;default:'active'"`

	// Relationships
	Jobs []Job `json:"jobs,omitempty" gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
