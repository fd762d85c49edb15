package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"timeclock.service/internal/core/dates"
	"timeclock.service/internal/core/model"
	"timeclock.service/internal/ports/repository"
)

// WorkdayService projects daily and monthly summaries from the raw stamp
// log. All projections are pure reads; the only write path is PersistWorkday,
// which the workday worker drives after a clock-out.
type WorkdayService struct {
	repo repository.Repository
	now  func() time.Time
}

// NewWorkdayService wires the projector to the record store.
func NewWorkdayService(repo repository.Repository) *WorkdayService {
	return &WorkdayService{
		repo: repo,
		now:  time.Now,
	}
}

// ProjectWorkday derives one day's summary: the user's events for that
// calendar day run through the pairing engine, merged with the stored
// home-office flag (false when none is stored).
func (s *WorkdayService) ProjectWorkday(ctx context.Context, userID string, date time.Time) (model.Workday, error) {
	dayStart := dates.StartOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	events, err := s.repo.ListRecordsInRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return model.Workday{}, err
	}

	hours, _ := ComputeDailyHours(events)
	key := dates.Normalize(date)

	homeOffice, _, err := s.repo.GetHomeOfficeFlag(ctx, userID, key)
	if err != nil {
		return model.Workday{}, err
	}

	return model.Workday{
		UserID:      userID,
		Date:        key,
		HoursWorked: hours,
		HomeOffice:  homeOffice,
	}, nil
}

// ProjectWorkMonth enumerates every calendar day of the month and accumulates
// the weekday summaries. Weekend days count towards neither side; every
// weekday adds exactly 8 expected hours regardless of attendance. A failed
// fetch on any single day aborts the whole month.
func (s *WorkdayService) ProjectWorkMonth(ctx context.Context, userID string, year int, month time.Month) (model.WorkMonth, error) {
	var hoursWorked, hoursShouldWork float64

	for day := 1; day <= dates.DaysIn(year, month); day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		if !dates.IsWeekday(date) {
			continue
		}

		workday, err := s.ProjectWorkday(ctx, userID, date)
		if err != nil {
			return model.WorkMonth{}, fmt.Errorf("project workday %s: %w", dates.Normalize(date), err)
		}

		hoursWorked += workday.HoursWorked
		hoursShouldWork += 8
	}

	return model.WorkMonth{
		UserID:          userID,
		Year:            year,
		Month:           int(month),
		HoursWorked:     roundHours(hoursWorked),
		HoursShouldWork: hoursShouldWork,
	}, nil
}

// WorkdaysOfCurrentWeek returns the summaries for the Monday-Sunday week
// containing today, ascending by date. Days without events are absent.
func (s *WorkdayService) WorkdaysOfCurrentWeek(ctx context.Context, userID string) ([]model.Workday, error) {
	now := s.now()
	weekStart := dates.StartOfWeek(now, 0)
	weekEnd := dates.EndOfWeek(now).AddDate(0, 0, 1).Add(-time.Nanosecond)

	events, err := s.repo.ListRecordsInRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	return s.workdaysFromEvents(ctx, userID, events)
}

// WorkdaysOfLastTwoWeeks returns the most recent 14 distinct calendar days
// present in the user's history, ascending. Sparse histories come back
// shorter; missing days are not backfilled with zero entries.
func (s *WorkdayService) WorkdaysOfLastTwoWeeks(ctx context.Context, userID string) ([]model.Workday, error) {
	events, err := s.repo.ListRecords(ctx, userID)
	if err != nil {
		return nil, err
	}

	workdays, err := s.workdaysFromEvents(ctx, userID, events)
	if err != nil {
		return nil, err
	}
	if len(workdays) > 14 {
		workdays = workdays[len(workdays)-14:]
	}
	return workdays, nil
}

// PersistWorkday reprojects one day from the stamp log and writes the result,
// keeping the stored summary in agreement with the derived one.
func (s *WorkdayService) PersistWorkday(ctx context.Context, userID string, date time.Time) (model.Workday, error) {
	workday, err := s.ProjectWorkday(ctx, userID, date)
	if err != nil {
		return model.Workday{}, err
	}
	if err := s.repo.UpsertWorkday(ctx, workday); err != nil {
		return model.Workday{}, err
	}
	return workday, nil
}

// SetHomeOffice stores the home-office flag for one day. The flag is
// independent of the hour computation.
func (s *WorkdayService) SetHomeOffice(ctx context.Context, userID string, date time.Time, homeOffice bool) error {
	return s.repo.SetHomeOfficeFlag(ctx, userID, dates.Normalize(date), homeOffice)
}

// workdaysFromEvents groups events by day and builds one summary per day,
// sorted ascending by date.
func (s *WorkdayService) workdaysFromEvents(ctx context.Context, userID string, events []model.StampEvent) ([]model.Workday, error) {
	grouped := GroupRecordsByDate(events)

	days := make([]time.Time, 0, len(grouped))
	for key := range grouped {
		day, err := dates.Parse(key)
		if err != nil {
			log.Warn().Str("date_key", key).Msg("Excluding unparseable date key from grouping")
			continue
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	workdays := make([]model.Workday, 0, len(days))
	for _, day := range days {
		key := dates.Normalize(day)
		hours, _ := ComputeDailyHours(grouped[key])

		homeOffice, _, err := s.repo.GetHomeOfficeFlag(ctx, userID, key)
		if err != nil {
			return nil, err
		}

		workdays = append(workdays, model.Workday{
			UserID:      userID,
			Date:        key,
			HoursWorked: hours,
			HomeOffice:  homeOffice,
		})
	}
	return workdays, nil
}
