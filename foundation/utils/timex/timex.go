// File: timex.go
// Title: Calendar Helpers
// Description: Day boundaries, civil day numbers and weekday counting used by
//              the difference engine.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-14 v0.2.0: Civil day numbers and closed-form weekday counting

package timex

import (
	"time"
)

// SecondsPerDay is the length of a nominal calendar day
const SecondsPerDay = 24 * 60 * 60

// DaysPerWeek is the length of a week
const DaysPerWeek = 7

// epochWeekday is the weekday of 1970-01-01, civil day 0
const epochWeekday = time.Thursday

// StartOfDay returns the start of the day (00:00:00) for the given time
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CivilDay returns the number of days between 1970-01-01 and the calendar
// date of t in t's location. Dates before 1970 are negative.
func CivilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / SecondsPerDay
}

// FromCivilDay returns midnight of civil day n in loc
func FromCivilDay(n int64, loc *time.Location) time.Time {
	return time.Date(1970, time.January, 1+int(n), 0, 0, 0, 0, loc)
}

// CivilWeekday returns the weekday of civil day n
func CivilWeekday(n int64) time.Weekday {
	return time.Weekday((floorMod(n, DaysPerWeek) + int64(epochWeekday)) % DaysPerWeek)
}

// IsWeekend checks if the date falls on Saturday or Sunday
func IsWeekend(t time.Time) bool {
	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsWeekday checks if the date falls on Monday through Friday
func IsWeekday(t time.Time) bool {
	return !IsWeekend(t)
}

// NextMonday returns the first Monday strictly after t, keeping the time of
// day. For a Saturday that is two days later, for a Sunday one.
func NextMonday(t time.Time) time.Time {
	days := (DaysPerWeek + int(time.Monday) - int(t.Weekday())) % DaysPerWeek
	if days == 0 {
		days = DaysPerWeek
	}
	return t.AddDate(0, 0, days)
}

// WeekdaysBetween returns the number of Monday to Friday civil days in the
// half-open range [from, to). It returns 0 when to <= from.
func WeekdaysBetween(from, to int64) int64 {
	if to <= from {
		return 0
	}
	return weekdaysSinceMonday(to) - weekdaysSinceMonday(from)
}

// weekdaysSinceMonday counts weekdays from the Monday before the epoch
// (1969-12-29) up to, but excluding, civil day n. Differences of this
// function are valid for any pair of days.
func weekdaysSinceMonday(n int64) int64 {
	offset := n + int64(epochWeekday-time.Monday)
	rem := floorMod(offset, DaysPerWeek)
	if rem > 5 {
		rem = 5
	}
	return 5*floorDiv(offset, DaysPerWeek) + rem
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
