package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeclock.service/internal/core/model"
	"timeclock.service/internal/ports/repository"
)

func addStamps(repo *fakeRepo, userID string, day time.Time, hhmm ...int) {
	kind := model.KindClockIn
	for i := 0; i+1 < len(hhmm); i += 2 {
		repo.events = append(repo.events, model.StampEvent{
			ID:        "seed",
			UserID:    userID,
			Kind:      kind,
			Timestamp: time.Date(day.Year(), day.Month(), day.Day(), hhmm[i], hhmm[i+1], 0, 0, time.Local),
		})
		if kind == model.KindClockIn {
			kind = model.KindClockOut
		} else {
			kind = model.KindClockIn
		}
	}
}

func TestProjectWorkdayMergesHomeOfficeFlag(t *testing.T) {
	repo := newFakeRepo()
	day := time.Date(2024, time.February, 13, 0, 0, 0, 0, time.Local)
	addStamps(repo, "u-1", day, 9, 0, 12, 30, 13, 0, 17, 30)
	repo.homeOffice["u-1|13.02.2024"] = true

	svc := NewWorkdayService(repo)

	workday, err := svc.ProjectWorkday(context.Background(), "u-1", day)
	require.NoError(t, err)
	assert.Equal(t, "13.02.2024", workday.Date)
	assert.Equal(t, 8.0, workday.HoursWorked)
	assert.True(t, workday.HomeOffice)
}

func TestProjectWorkdayWithoutStoredFlag(t *testing.T) {
	repo := newFakeRepo()
	day := time.Date(2024, time.February, 13, 0, 0, 0, 0, time.Local)
	addStamps(repo, "u-1", day, 9, 0, 17, 0)

	svc := NewWorkdayService(repo)

	workday, err := svc.ProjectWorkday(context.Background(), "u-1", day)
	require.NoError(t, err)
	assert.Equal(t, 8.0, workday.HoursWorked)
	assert.False(t, workday.HomeOffice)
}

func TestProjectWorkdayIgnoresNeighboringDays(t *testing.T) {
	repo := newFakeRepo()
	day := time.Date(2024, time.February, 13, 0, 0, 0, 0, time.Local)
	addStamps(repo, "u-1", day.AddDate(0, 0, -1), 9, 0, 17, 0)
	addStamps(repo, "u-1", day, 10, 0, 14, 0)
	addStamps(repo, "u-1", day.AddDate(0, 0, 1), 9, 0, 17, 0)

	svc := NewWorkdayService(repo)

	workday, err := svc.ProjectWorkday(context.Background(), "u-1", day)
	require.NoError(t, err)
	assert.Equal(t, 4.0, workday.HoursWorked)
}

func TestProjectWorkMonthEmptyJanuary(t *testing.T) {
	svc := NewWorkdayService(newFakeRepo())

	month, err := svc.ProjectWorkMonth(context.Background(), "u-1", 2024, time.January)
	require.NoError(t, err)
	assert.Equal(t, 0.0, month.HoursWorked)
	// January 2024 has 23 weekdays.
	assert.Equal(t, 184.0, month.HoursShouldWork)
}

func TestProjectWorkMonthSumsWeekdays(t *testing.T) {
	repo := newFakeRepo()
	// Tuesday and Wednesday worked, plus a Saturday that must not count
	// towards the expected hours but still adds its worked time.
	addStamps(repo, "u-1", time.Date(2024, time.February, 13, 0, 0, 0, 0, time.Local), 9, 0, 17, 0)
	addStamps(repo, "u-1", time.Date(2024, time.February, 14, 0, 0, 0, 0, time.Local), 9, 0, 13, 0)
	addStamps(repo, "u-1", time.Date(2024, time.February, 17, 0, 0, 0, 0, time.Local), 10, 0, 12, 0)

	svc := NewWorkdayService(repo)

	month, err := svc.ProjectWorkMonth(context.Background(), "u-1", 2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, 12.0, month.HoursWorked)
	// February 2024 has 21 weekdays.
	assert.Equal(t, 168.0, month.HoursShouldWork)
}

func TestProjectWorkMonthAbortsOnFetchError(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = repository.ErrStoreUnavailable

	svc := NewWorkdayService(repo)

	_, err := svc.ProjectWorkMonth(context.Background(), "u-1", 2024, time.January)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}

func TestWorkdaysOfLastTwoWeeksSparseHistory(t *testing.T) {
	repo := newFakeRepo()
	addStamps(repo, "u-1", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local), 9, 0, 17, 0)
	addStamps(repo, "u-1", time.Date(2024, time.February, 8, 0, 0, 0, 0, time.Local), 9, 0, 12, 0)
	addStamps(repo, "u-1", time.Date(2024, time.February, 20, 0, 0, 0, 0, time.Local), 9, 0, 10, 0)

	svc := NewWorkdayService(repo)

	workdays, err := svc.WorkdaysOfLastTwoWeeks(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, workdays, 3)
	assert.Equal(t, "01.02.2024", workdays[0].Date)
	assert.Equal(t, "08.02.2024", workdays[1].Date)
	assert.Equal(t, "20.02.2024", workdays[2].Date)
}

func TestWorkdaysOfLastTwoWeeksTruncatesToFourteen(t *testing.T) {
	repo := newFakeRepo()
	for day := 1; day <= 20; day++ {
		addStamps(repo, "u-1", time.Date(2024, time.March, day, 0, 0, 0, 0, time.Local), 9, 0, 17, 0)
	}

	svc := NewWorkdayService(repo)

	workdays, err := svc.WorkdaysOfLastTwoWeeks(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, workdays, 14)
	assert.Equal(t, "07.03.2024", workdays[0].Date)
	assert.Equal(t, "20.03.2024", workdays[13].Date)
}

func TestWorkdaysOfCurrentWeekWindow(t *testing.T) {
	repo := newFakeRepo()
	// Week of Monday 12.02.2024. The Sunday before and the Monday after
	// fall outside the window.
	addStamps(repo, "u-1", time.Date(2024, time.February, 11, 0, 0, 0, 0, time.Local), 9, 0, 17, 0)
	addStamps(repo, "u-1", time.Date(2024, time.February, 12, 0, 0, 0, 0, time.Local), 9, 0, 17, 0)
	addStamps(repo, "u-1", time.Date(2024, time.February, 18, 0, 0, 0, 0, time.Local), 9, 0, 11, 0)
	addStamps(repo, "u-1", time.Date(2024, time.February, 19, 0, 0, 0, 0, time.Local), 9, 0, 17, 0)

	svc := NewWorkdayService(repo)
	svc.now = func() time.Time {
		return time.Date(2024, time.February, 14, 12, 0, 0, 0, time.Local)
	}

	workdays, err := svc.WorkdaysOfCurrentWeek(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, workdays, 2)
	assert.Equal(t, "12.02.2024", workdays[0].Date)
	assert.Equal(t, "18.02.2024", workdays[1].Date)
}

func TestPersistWorkdayWritesProjection(t *testing.T) {
	repo := newFakeRepo()
	day := time.Date(2024, time.February, 13, 0, 0, 0, 0, time.Local)
	addStamps(repo, "u-1", day, 9, 0, 17, 15)

	svc := NewWorkdayService(repo)

	workday, err := svc.PersistWorkday(context.Background(), "u-1", day)
	require.NoError(t, err)
	assert.Equal(t, 8.25, workday.HoursWorked)

	stored, ok := repo.workdays["u-1|13.02.2024"]
	require.True(t, ok)
	assert.Equal(t, workday, stored)
}

func TestSetHomeOfficeNormalizesDateKey(t *testing.T) {
	repo := newFakeRepo()
	svc := NewWorkdayService(repo)

	err := svc.SetHomeOffice(context.Background(), "u-1", time.Date(2024, time.February, 3, 15, 4, 5, 0, time.Local), true)
	require.NoError(t, err)
	assert.True(t, repo.homeOffice["u-1|03.02.2024"])
}
