package models

// DayPlanStatus defines the lifecycle states of a day plan
type DayPlanStatus string

const (
	DayPlanStatusDraft      DayPlanStatus = "draft"
	DayPlanStatusPublished  DayPlanStatus = "published"
	DayPlanStatusInProgress DayPlanStatus = "in_progress"
	DayPlanStatusCompleted  DayPlanStatus = "completed"
	DayPlanStatusCancelled  DayPlanStatus = "cancelled"
)

// IsValid checks if the DayPlanStatus is valid
func (s DayPlanStatus) IsValid() bool {
	switch s {
	case DayPlanStatusDraft, DayPlanStatusPublished, DayPlanStatusInProgress,
		DayPlanStatusCompleted, DayPlanStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed
func (s DayPlanStatus) IsTerminal() bool {
	return s == DayPlanStatusCompleted || s == DayPlanStatusCancelled
}

// CanTransitionTo validates a transition against the day plan state machine:
// draft -> published -> in_progress -> completed, with cancellation allowed
// from any non-terminal state.
func (s DayPlanStatus) CanTransitionTo(next DayPlanStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == DayPlanStatusCancelled {
		return true
	}
	switch s {
	case DayPlanStatusDraft:
		return next == DayPlanStatusPublished
	case DayPlanStatusPublished:
		return next == DayPlanStatusInProgress
	case DayPlanStatusInProgress:
		return next == DayPlanStatusCompleted
	}
	return false
}

// EventType defines the kinds of schedule events within a day plan
type EventType string

const (
	EventTypeJob    EventType = "job"
	EventTypeBreak  EventType = "break"
	EventTypeTravel EventType = "travel"
)

// IsValid checks if the EventType is valid
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeJob, EventTypeBreak, EventTypeTravel:
		return true
	}
	return false
}

// EventStatus defines the lifecycle states of a schedule event
type EventStatus string

const (
	EventStatusPending    EventStatus = "pending"
	EventStatusInProgress EventStatus = "in_progress"
	EventStatusCompleted  EventStatus = "completed"
	EventStatusCancelled  EventStatus = "cancelled"
)

// IsValid checks if the EventStatus is valid
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusPending, EventStatusInProgress, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// JobStatus defines the lifecycle states of a job
type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// IsValid checks if the JobStatus is valid
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// JobPriority defines the priority levels of a job
type JobPriority string

const (
	JobPriorityLow    JobPriority = "low"
	JobPriorityMedium JobPriority = "medium"
	JobPriorityHigh   JobPriority = "high"
)

// IsValid checks if the JobPriority is valid
func (p JobPriority) IsValid() bool {
	switch p {
	case JobPriorityLow, JobPriorityMedium, JobPriorityHigh:
		return true
	}
	return false
}

// CrewRole defines the roles of crew members
type CrewRole string

const (
	CrewRoleTechnician CrewRole = "technician"
	CrewRoleDispatcher CrewRole = "dispatcher"
	CrewRoleSupervisor CrewRole = "supervisor"
)

// IsValid checks if the CrewRole is valid
func (r CrewRole) IsValid() bool {
	switch r {
	case CrewRoleTechnician, CrewRoleDispatcher, CrewRoleSupervisor:
		return true
	}
	return false
}

// ItemType defines the kinds of items a kit may contain
type ItemType string

const (
	ItemTypeEquipment ItemType = "equipment"
	ItemTypeMaterial  ItemType = "material"
	ItemTypeTool      ItemType = "tool"
)

// IsValid checks if the ItemType is valid
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeEquipment, ItemTypeMaterial, ItemTypeTool:
		return true
	}
	return false
}
