package core

import (
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"timeclock.service/internal/core/dates"
	"timeclock.service/internal/core/model"
)

// ComputeDailyHours turns one day's punch events into worked hours. The input
// is sorted ascending by timestamp (stable, so equal timestamps keep their
// insertion order) and consumed in non-overlapping pairs from index 0. Only a
// ClockIn immediately followed by a ClockOut contributes duration; any other
// pair composition is skipped outright, with no repair and no partial credit.
// A trailing unpaired ClockIn contributes zero hours but reports the user as
// currently clocked in.
//
// The function is pure: it never mutates its input and always returns the
// same result for the same events. Fewer than two events is a zero-hours
// result, not an error.
func ComputeDailyHours(events []model.StampEvent) (float64, bool) {
	if len(events) == 0 {
		return 0, false
	}

	sorted := sortedByTimestamp(events)

	var total time.Duration
	for i := 0; i+1 < len(sorted); i += 2 {
		a, b := sorted[i], sorted[i+1]
		if a.Kind == model.KindClockIn && b.Kind == model.KindClockOut {
			total += b.Timestamp.Sub(a.Timestamp)
		}
	}

	clockedIn := len(sorted)%2 == 1 && sorted[len(sorted)-1].Kind == model.KindClockIn

	// Round once at the point of exposure rather than per pair, so partial
	// sums cannot compound rounding error.
	return roundHours(total.Hours()), clockedIn
}

// GroupRecordsByDate partitions a user's full event history by normalized
// date key, each partition sorted ascending by timestamp. Events without a
// usable timestamp are logged and left out of the grouping.
func GroupRecordsByDate(events []model.StampEvent) map[string][]model.StampEvent {
	grouped := make(map[string][]model.StampEvent)
	for _, ev := range events {
		if ev.Timestamp.IsZero() {
			log.Warn().Str("record_id", ev.ID).Str("user_id", ev.UserID).
				Msg("Skipping record without a usable timestamp")
			continue
		}
		key := dates.Normalize(ev.Timestamp)
		grouped[key] = append(grouped[key], ev)
	}
	for key := range grouped {
		grouped[key] = sortedByTimestamp(grouped[key])
	}
	return grouped
}

// RecordsInRange filters events to the inclusive [start, end] timestamp
// window, sorted ascending. The input slice is never modified.
func RecordsInRange(events []model.StampEvent, start, end time.Time) []model.StampEvent {
	filtered := make([]model.StampEvent, 0, len(events))
	for _, ev := range events {
		if ev.Timestamp.Before(start) || ev.Timestamp.After(end) {
			continue
		}
		filtered = append(filtered, ev)
	}
	return sortedByTimestamp(filtered)
}

// sortedByTimestamp returns a stable-sorted copy, leaving the caller's slice
// untouched.
func sortedByTimestamp(events []model.StampEvent) []model.StampEvent {
	sorted := make([]model.StampEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// roundHours rounds to two decimal places, half up.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
