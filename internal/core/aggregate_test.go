package core

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeclock.service/internal/core/model"
)

func stamp(kind model.RecordKind, hour, min int) model.StampEvent {
	return model.StampEvent{
		ID:        "ev",
		UserID:    "u1",
		Kind:      kind,
		Timestamp: time.Date(2024, time.February, 13, hour, min, 0, 0, time.Local),
	}
}

func TestComputeDailyHours_SplitShift(t *testing.T) {
	events := []model.StampEvent{
		stamp(model.KindClockIn, 8, 0),
		stamp(model.KindClockOut, 12, 0),
		stamp(model.KindClockIn, 13, 0),
		stamp(model.KindClockOut, 17, 30),
	}

	hours, clockedIn := ComputeDailyHours(events)
	assert.Equal(t, 8.5, hours)
	assert.False(t, clockedIn)
}

func TestComputeDailyHours_AlternatingPairsSumUp(t *testing.T) {
	t0 := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.Local)
	events := []model.StampEvent{
		{Kind: model.KindClockIn, Timestamp: t0},
		{Kind: model.KindClockOut, Timestamp: t0.Add(90 * time.Minute)},
		{Kind: model.KindClockIn, Timestamp: t0.Add(2 * time.Hour)},
		{Kind: model.KindClockOut, Timestamp: t0.Add(3*time.Hour + 45*time.Minute)},
	}

	hours, _ := ComputeDailyHours(events)
	assert.Equal(t, 3.25, hours)
}

func TestComputeDailyHours_ShuffledInputYieldsSameResult(t *testing.T) {
	events := []model.StampEvent{
		stamp(model.KindClockIn, 8, 0),
		stamp(model.KindClockOut, 12, 0),
		stamp(model.KindClockIn, 13, 0),
		stamp(model.KindClockOut, 17, 30),
		stamp(model.KindClockIn, 18, 0),
	}

	wantHours, wantClockedIn := ComputeDailyHours(events)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.StampEvent, len(events))
		copy(shuffled, events)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		hours, clockedIn := ComputeDailyHours(shuffled)
		require.Equal(t, wantHours, hours, "run %d", i)
		require.Equal(t, wantClockedIn, clockedIn, "run %d", i)
	}
}

func TestComputeDailyHours_InsufficientEvents(t *testing.T) {
	hours, clockedIn := ComputeDailyHours(nil)
	assert.Zero(t, hours)
	assert.False(t, clockedIn)

	hours, clockedIn = ComputeDailyHours([]model.StampEvent{stamp(model.KindClockIn, 9, 0)})
	assert.Zero(t, hours)
	assert.True(t, clockedIn)

	hours, clockedIn = ComputeDailyHours([]model.StampEvent{stamp(model.KindClockOut, 17, 0)})
	assert.Zero(t, hours)
	assert.False(t, clockedIn)
}

func TestComputeDailyHours_TrailingClockInReportsClockedIn(t *testing.T) {
	events := []model.StampEvent{
		stamp(model.KindClockIn, 8, 0),
		stamp(model.KindClockOut, 12, 0),
		stamp(model.KindClockIn, 13, 0),
	}

	hours, clockedIn := ComputeDailyHours(events)
	assert.Equal(t, 4.0, hours)
	assert.True(t, clockedIn)
}

func TestComputeDailyHours_SkipsNonAlternatingPairs(t *testing.T) {
	// The double clock-in occupies a full pairing slot and is skipped, so only
	// the 14:00-16:00 pair counts. No repair is attempted.
	events := []model.StampEvent{
		stamp(model.KindClockIn, 8, 0),
		stamp(model.KindClockIn, 9, 0),
		stamp(model.KindClockIn, 14, 0),
		stamp(model.KindClockOut, 16, 0),
	}

	hours, clockedIn := ComputeDailyHours(events)
	assert.Equal(t, 2.0, hours)
	assert.False(t, clockedIn)
}

func TestComputeDailyHours_DoubleClockOutSlotIsSkipped(t *testing.T) {
	events := []model.StampEvent{
		stamp(model.KindClockOut, 8, 0),
		stamp(model.KindClockOut, 9, 0),
	}

	hours, clockedIn := ComputeDailyHours(events)
	assert.Zero(t, hours)
	assert.False(t, clockedIn)
}

func TestComputeDailyHours_RoundsOnceAtExposure(t *testing.T) {
	t0 := time.Date(2024, time.May, 6, 9, 0, 0, 0, time.Local)
	// Three intervals of 20 minutes each: each alone is 0.33h rounded, the
	// true total is exactly 1.0h. Per-pair rounding would report 0.99.
	var events []model.StampEvent
	for i := 0; i < 3; i++ {
		start := t0.Add(time.Duration(i) * time.Hour)
		events = append(events,
			model.StampEvent{Kind: model.KindClockIn, Timestamp: start},
			model.StampEvent{Kind: model.KindClockOut, Timestamp: start.Add(20 * time.Minute)},
		)
	}

	hours, _ := ComputeDailyHours(events)
	assert.Equal(t, 1.0, hours)
}

func TestComputeDailyHours_DoesNotMutateInput(t *testing.T) {
	events := []model.StampEvent{
		stamp(model.KindClockOut, 17, 0),
		stamp(model.KindClockIn, 8, 0),
	}
	ComputeDailyHours(events)

	assert.Equal(t, model.KindClockOut, events[0].Kind, "caller slice must stay unsorted")
}

func TestGroupRecordsByDate(t *testing.T) {
	d1 := time.Date(2024, time.February, 13, 17, 0, 0, 0, time.Local)
	d2 := time.Date(2024, time.February, 14, 8, 0, 0, 0, time.Local)
	events := []model.StampEvent{
		{ID: "a", Kind: model.KindClockOut, Timestamp: d1},
		{ID: "b", Kind: model.KindClockIn, Timestamp: d1.Add(-8 * time.Hour)},
		{ID: "c", Kind: model.KindClockIn, Timestamp: d2},
	}

	grouped := GroupRecordsByDate(events)
	require.Len(t, grouped, 2)

	day := grouped["13.02.2024"]
	require.Len(t, day, 2)
	assert.Equal(t, "b", day[0].ID, "partitions must be sorted ascending")
	assert.Equal(t, "c", grouped["14.02.2024"][0].ID)
}

func TestGroupRecordsByDate_ExcludesUnusableTimestamps(t *testing.T) {
	events := []model.StampEvent{
		{ID: "bad", Kind: model.KindClockIn},
		{ID: "ok", Kind: model.KindClockIn, Timestamp: time.Date(2024, time.February, 13, 8, 0, 0, 0, time.Local)},
	}

	grouped := GroupRecordsByDate(events)
	require.Len(t, grouped, 1)
	assert.Equal(t, "ok", grouped["13.02.2024"][0].ID)
}

func TestRecordsInRange_InclusiveBounds(t *testing.T) {
	start := time.Date(2024, time.February, 12, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, time.February, 18, 0, 0, 0, 0, time.Local)

	events := []model.StampEvent{
		{ID: "before", Timestamp: start.Add(-time.Second)},
		{ID: "on-start", Timestamp: start},
		{ID: "inside", Timestamp: start.AddDate(0, 0, 3)},
		{ID: "on-end", Timestamp: end},
		{ID: "after", Timestamp: end.Add(time.Second)},
	}

	got := RecordsInRange(events, start, end)
	require.Len(t, got, 3)
	assert.Equal(t, "on-start", got[0].ID)
	assert.Equal(t, "inside", got[1].ID)
	assert.Equal(t, "on-end", got[2].ID)
}
