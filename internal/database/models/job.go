package models

import (
	"time"

	"github.com/google/uuid"
)

// Job represents a unit of billable field work for a customer
type Job struct {
	TenantModel
	CustomerID               uuid.UUID   `json:"customer_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title                    string      `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description              string      `json:"description" gorm:"type:text"`
	Status                   JobStatus   `json:"status" gorm:"type:varchar(30);not null;default:'scheduled'"`
	Priority                 JobPriority `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	ScheduledDate            *time.Time  `json:"scheduled_date,omitempty" gorm:"type:date"`
	EstimatedDurationMinutes int         `json:"estimated_duration_minutes" gorm:"default:60" validate:"min=0"`
	Address                  string      `json:"address" gorm:"size:255"`
	CreatedBy                string      `json:"created_by" gorm:"size:100"`

	// Relationships
	Customer Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Job
func (Job) TableName() string {
	return "jobs"
}
