package models

import (
	"time"

	"github.com/google/uuid"
)

// KitAssignment binds a kit, or one of its variants, to a schedule event.
// A schedule event has at most one active assignment at a time; reassignment
// supersedes the prior record instead of mutating it.
type KitAssignment struct {
	TenantModel
	KitID           uuid.UUID  `json:"kit_id" gorm:"type:uuid;not null;index" validate:"required"`
	VariantID       *uuid.UUID `json:"variant_id,omitempty" gorm:"type:uuid"`
	ScheduleEventID uuid.UUID  `json:"schedule_event_id" gorm:"type:uuid;not null;index" validate:"required"`
	AssignedAt      time.Time  `json:"assigned_at" gorm:"not null"`
	Superseded      bool       `json:"superseded" gorm:"default:false;index"`
	SupersededAt    *time.Time `json:"superseded_at,omitempty"`

	// Relationships
	Kit           Kit              `json:"kit,omitempty" gorm:"foreignKey:KitID"`
	Variant       *KitVariant      `json:"variant,omitempty" gorm:"foreignKey:VariantID"`
	ScheduleEvent ScheduleEvent    `json:"schedule_event,omitempty" gorm:"foreignKey:ScheduleEventID;constraint:OnDelete:CASCADE"`
	Overrides     []KitOverrideLog `json:"overrides,omitempty" gorm:"foreignKey:KitAssignmentID"`
}

// TableName returns the table name for KitAssignment
func (KitAssignment) TableName() string {
	return "kit_assignments"
}
