// Package calendar holds the month-grid math for the visit calendar.
//
// Visit dates are wall-clock strings ("2006-01-02T15:04:05") and are never
// converted between timezones: bucketing slices the YYYY-MM-DD prefix so a
// stored time round-trips exactly no matter where it is rendered.
package calendar

import (
	"fmt"
	"time"
)

// WallClockLayout is the storage format for visit dates.
const WallClockLayout = "2006-01-02T15:04:05"

// ParseWallClock validates a wall-clock date string.
func ParseWallClock(s string) (time.Time, error) {
	return time.Parse(WallClockLayout, s)
}

// DayKey returns the YYYY-MM-DD prefix of a wall-clock date string.
func DayKey(wallClock string) string {
	if len(wallClock) < 10 {
		return wallClock
	}
	return wallClock[:10]
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingWeekday returns the weekday of the first day of the month,
// 0 = Sunday, matching the grid offset of the calendar view.
func LeadingWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// MonthKeyRange returns the half-open [start, end) day-key range covering a
// month. Wall-clock strings sort lexicographically in chronological order, so
// these bound plain string comparisons in queries.
func MonthKeyRange(year int, month time.Month) (string, string) {
	start := fmt.Sprintf("%04d-%02d-01", year, int(month))
	next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	end := fmt.Sprintf("%04d-%02d-01", next.Year(), int(next.Month()))
	return start, end
}

// DayKeyOf formats a day-of-month as a day key within the given month.
func DayKeyOf(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}
