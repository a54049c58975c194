// Package scheduling holds the pure day-plan scheduling logic: time-overlap
// detection and next-slot suggestion. Nothing in this package touches the
// store, so every function is safe to call concurrently.
package scheduling

import (
	"sort"

	"field-ops-backend/internal/database/models"

	"github.com/google/uuid"
)

// Conflict identifies two schedule events whose time windows intersect.
// EventA always sorts before EventB (by start, then sequence_order).
type Conflict struct {
	EventA uuid.UUID
	EventB uuid.UUID
}

// FindConflicts reports every pair of events whose time windows intersect.
// Windows are half-open: an event ending exactly when the next begins does
// not conflict. Events are ordered by scheduled_start ascending with ties
// broken by sequence_order ascending, so two events scheduled at the same
// start during manual reordering still yield a deterministic report. After
// sorting, only adjacent pairs are compared.
func FindConflicts(events []models.ScheduleEvent) []Conflict {
	if len(events) < 2 {
		return nil
	}

	sorted := make([]models.ScheduleEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ScheduledStart.Equal(sorted[j].ScheduledStart) {
			return sorted[i].SequenceOrder < sorted[j].SequenceOrder
		}
		return sorted[i].ScheduledStart.Before(sorted[j].ScheduledStart)
	})

	var conflicts []Conflict
	for i := 0; i < len(sorted)-1; i++ {
		a := &sorted[i]
		b := &sorted[i+1]
		if overlaps(a, b) {
			conflicts = append(conflicts, Conflict{EventA: a.ID, EventB: b.ID})
		}
	}
	return conflicts
}

// overlaps implements half-open interval intersection:
// startA < endB AND startB < endA.
func overlaps(a, b *models.ScheduleEvent) bool {
	return a.ScheduledStart.Before(b.ScheduledEnd()) && b.ScheduledStart.Before(a.ScheduledEnd())
}
