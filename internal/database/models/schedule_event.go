package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEvent represents a time-boxed unit of work (job, break or travel leg)
// inside a day plan. Its time window is [ScheduledStart, ScheduledStart+Duration).
// sequence_order is dense at insertion time; cancellation leaves holes on purpose
// so historical ordering survives for audit.
type ScheduleEvent struct {
	TenantModel
	DayPlanID                uuid.UUID   `json:"day_plan_id" gorm:"type:uuid;not null;index" validate:"required"`
	EventType                EventType   `json:"event_type" gorm:"type:varchar(20);not null" validate:"required"`
	SequenceOrder            int         `json:"sequence_order" gorm:"not null"`
	ScheduledStart           time.Time   `json:"scheduled_start" gorm:"not null" validate:"required"`
	ScheduledDurationMinutes int         `json:"scheduled_duration_minutes" gorm:"not null" validate:"required,min=1"`
	Status                   EventStatus `json:"status" gorm:"type:varchar(30);not null;default:'pending'"`
	Address                  string      `json:"address" gorm:"size:255"`
	JobID                    *uuid.UUID  `json:"job_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	DayPlan DayPlan `json:"day_plan,omitempty" gorm:"foreignKey:DayPlanID;constraint:OnDelete:CASCADE"`
	Job     *Job    `json:"job,omitempty" gorm:"foreignKey:JobID"`
}

// TableName returns the table name for ScheduleEvent
func (ScheduleEvent) TableName() string {
	return "schedule_events"
}

// ScheduledEnd returns the exclusive end of the event's time window
func (e *ScheduleEvent) ScheduledEnd() time.Time {
	return e.ScheduledStart.Add(time.Duration(e.ScheduledDurationMinutes) * time.Minute)
}
