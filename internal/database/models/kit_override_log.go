package models

import (
	"github.com/google/uuid"
)

// KitOverrideLog is one row of the append-only audit trail recording a
// deviation from a kit's required contents. Rows are written exactly once;
// the repository exposes no update or delete operation for this table.
type KitOverrideLog struct {
	TenantModel
	KitAssignmentID uuid.UUID  `json:"kit_assignment_id" gorm:"type:uuid;not null;index" validate:"required"`
	KitItemID       *uuid.UUID `json:"kit_item_id,omitempty" gorm:"type:uuid"`
	ItemName        string     `json:"item_name" gorm:"size:100;not null" validate:"required"`
	CrewMemberID    uuid.UUID  `json:"crew_member_id" gorm:"type:uuid;not null;index" validate:"required"`
	Reason          string     `json:"reason" gorm:"type:text;not null" validate:"required"`

	// Relationships
	KitAssignment KitAssignment `json:"kit_assignment,omitempty" gorm:"foreignKey:KitAssignmentID;constraint:OnDelete:CASCADE"`
	CrewMember    CrewMember    `json:"crew_member,omitempty" gorm:"foreignKey:CrewMemberID"`
}

// TableName returns the table name for KitOverrideLog
func (KitOverrideLog) TableName() string {
	return "kit_override_logs"
}
