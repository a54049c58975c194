package scheduling

import (
	"time"

	"field-ops-backend/internal/database/models"
	apperrors "field-ops-backend/internal/errors"
)

// WorkDay bounds the schedulable window of a day as offsets from midnight.
type WorkDay struct {
	Start time.Duration
	End   time.Duration
}

// DefaultWorkDay is the standard 08:00-17:00 work day.
func DefaultWorkDay() WorkDay {
	return WorkDay{Start: 8 * time.Hour, End: 17 * time.Hour}
}

// SuggestSlot proposes a start time for a new event of the requested duration
// on the given plan date. With no non-cancelled events it returns the work-day
// start. Otherwise it returns the end of the last non-cancelled event, provided
// the window still fits before the work-day end; if not, it fails with
// NoSlotAvailable. Interior gaps between earlier events are deliberately not
// searched: the contract is append-after-last only.
func SuggestSlot(planDate time.Time, events []models.ScheduleEvent, durationMinutes int, day WorkDay) (time.Time, error) {
	if durationMinutes <= 0 {
		return time.Time{}, apperrors.NewValidationError("duration_minutes", "must be positive")
	}

	midnight := time.Date(planDate.Year(), planDate.Month(), planDate.Day(), 0, 0, 0, 0, planDate.Location())
	dayEnd := midnight.Add(day.End)
	duration := time.Duration(durationMinutes) * time.Minute

	var lastEnd time.Time
	for i := range events {
		if events[i].Status == models.EventStatusCancelled {
			continue
		}
		if end := events[i].ScheduledEnd(); end.After(lastEnd) {
			lastEnd = end
		}
	}

	if lastEnd.IsZero() {
		start := midnight.Add(day.Start)
		if start.Add(duration).After(dayEnd) {
			return time.Time{}, apperrors.NewNoSlotAvailableError(durationMinutes)
		}
		return start, nil
	}

	if lastEnd.Add(duration).After(dayEnd) {
		return time.Time{}, apperrors.NewNoSlotAvailableError(durationMinutes)
	}
	return lastEnd, nil
}
