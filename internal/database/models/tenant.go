package models

// Tenant represents one customer organization; the multi-tenancy isolation boundary
type Tenant struct {
	BaseModel
	Name     string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Domain   string `json:"domain" gorm:"size:100"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
