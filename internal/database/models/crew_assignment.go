package models

import (
	"github.com/google/uuid"
)

// CrewAssignment links a crew member to a day plan or a schedule event.
// Exactly one of DayPlanID / ScheduleEventID is set, and a target has at most
// one active assignment at a time; reassignment deactivates the prior record.
type CrewAssignment struct {
	TenantModel
	CrewMemberID    uuid.UUID  `json:"crew_member_id" gorm:"type:uuid;not null;index" validate:"required"`
	DayPlanID       *uuid.UUID `json:"day_plan_id,omitempty" gorm:"type:uuid;index"`
	ScheduleEventID *uuid.UUID `json:"schedule_event_id,omitempty" gorm:"type:uuid;index"`
	Role            CrewRole   `json:"role" gorm:"type:varchar(30);not null;default:'technician'"`
	Active          bool       `json:"active" gorm:"default:true;index"`

	// Relationships
	CrewMember    CrewMember     `json:"crew_member,omitempty" gorm:"foreignKey:CrewMemberID;constraint:OnDelete:CASCADE"`
	DayPlan       *DayPlan       `json:"day_plan,omitempty" gorm:"foreignKey:DayPlanID"`
	ScheduleEvent *ScheduleEvent `json:"schedule_event,omitempty" gorm:"foreignKey:ScheduleEventID"`
}

// TableName returns the table name for CrewAssignment
func (CrewAssignment) TableName() string {
	return "crew_assignments"
}
