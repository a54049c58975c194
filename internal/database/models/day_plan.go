package models

import (
	"time"

	"github.com/google/uuid"
)

// DayPlan represents one crew member's ordered itinerary for one calendar date.
// At most one day plan exists per (tenant, crew member, date); the composite
// unique index enforces it at the store.
type DayPlan struct {
	BaseModel
	TenantID             uuid.UUID     `json:"tenant_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_day_plans_tenant_crew_date" validate:"required"`
	CrewMemberID         uuid.UUID     `json:"crew_member_id" gorm:"type:uuid;not null;uniqueIndex:idx_day_plans_tenant_crew_date" validate:"required"`
	PlanDate             time.Time     `json:"plan_date" gorm:"type:date;not null;uniqueIndex:idx_day_plans_tenant_crew_date" validate:"required"`
	Status               DayPlanStatus `json:"status" gorm:"type:varchar(30);not null;default:'draft'"`
	TotalDistanceKm      float64       `json:"total_distance_km" gorm:"default:0"`
	TotalDurationMinutes int           `json:"total_duration_minutes" gorm:"default:0"`

	// Relationships
	CrewMember CrewMember      `json:"crew_member,omitempty" gorm:"foreignKey:CrewMemberID;constraint:OnDelete:CASCADE"`
	Events     []ScheduleEvent `json:"events,omitempty" gorm:"foreignKey:DayPlanID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DayPlan
func (DayPlan) TableName() string {
	return "day_plans"
}
