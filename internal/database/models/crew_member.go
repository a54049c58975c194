package models

// CrewMember represents a field technician, dispatcher or supervisor within a tenant
type CrewMember struct {
	TenantModel
	FullName    string   `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email       string   `json:"email" gorm:"size:255;not null;index" validate:"required,email"`
	PhoneNumber string   `json:"phone_number" gorm:"size:30"`
	Role        CrewRole `json:"role" gorm:"type:varchar(30);not null;default:'technician'" validate:"required"`
	IsActive    bool     `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for CrewMember
func (CrewMember) TableName() string {
	return "crew_members"
}
