// Package dates holds the date normalization and boundary helpers the
// aggregation logic groups by. Everything here works on local wall-clock
// calendar days; no time zone conversion is performed.
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat marks date text that is neither DD.MM.YYYY nor
// YYYY-MM-DD. Callers log and skip the offending input; the error never
// aborts an aggregation run.
var ErrInvalidDateFormat = errors.New("invalid date format")

// Normalize canonicalizes an instant to its DD.MM.YYYY grouping key. Two
// instants on the same calendar day always produce the identical key.
func Normalize(t time.Time) string {
	return fmt.Sprintf("%02d.%02d.%04d", t.Day(), int(t.Month()), t.Year())
}

// Parse turns DD.MM.YYYY or YYYY-MM-DD text back into a midnight instant.
// On malformed input it returns the zero time together with
// ErrInvalidDateFormat so callers can detect and exclude the value.
func Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrInvalidDateFormat
	}

	var parts []string
	dayFirst := strings.Contains(s, ".")
	if dayFirst {
		parts = strings.Split(s, ".")
	} else {
		parts = strings.Split(s, "-")
	}
	if len(parts) != 3 {
		return time.Time{}, ErrInvalidDateFormat
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, ErrInvalidDateFormat
		}
		nums[i] = n
	}

	if dayFirst {
		return time.Date(nums[2], time.Month(nums[1]), nums[0], 0, 0, 0, 0, time.Local), nil
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.Local), nil
}

// StartOfWeek returns the Monday 00:00 of the week containing t, shifted by
// offsetWeeks whole weeks. Weeks run Monday through Sunday, so a Sunday
// belongs to the week that began six days earlier.
func StartOfWeek(t time.Time, offsetWeeks int) time.Time {
	diff := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		diff = -6
	}
	day := StartOfDay(t)
	return day.AddDate(0, 0, diff+offsetWeeks*7)
}

// EndOfWeek returns the Sunday 00:00 that closes the week of t.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t, 0).AddDate(0, 0, 6)
}

// StartOfDay truncates an instant to midnight of its calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar day. The
// comparison is by year/month/day, never by instant equality.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}

// DaysIn returns the number of calendar days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// WeekdaysIn counts the Monday-Friday days of the given month.
func WeekdaysIn(year int, month time.Month) int {
	count := 0
	for day := 1; day <= DaysIn(year, month); day++ {
		if IsWeekday(time.Date(year, month, day, 0, 0, 0, 0, time.Local)) {
			count++
		}
	}
	return count
}
