// File: iso.go
// Title: ISO-8601 Date-Optional-Time Parser
// Description: Parses calendar, ordinal and week dates with an optional time
//              element, fraction and UTC offset.
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14

package timex

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	dterror "github.com/msto63/datetool/foundation/core/error"
)

// ISOGrammar describes the accepted input. The CLI prints it after a
// date-format error.
const ISOGrammar = ` date-opt-time     = date-element ['T' [time-element] [offset]]
 date-element      = std-date-element | ord-date-element | week-date-element
 std-date-element  = yyyy ['-' MM ['-' dd]]
 ord-date-element  = yyyy ['-' DDD]
 week-date-element = xxxx '-W' ww ['-' e]
 time-element      = HH [minute-element] | [fraction]
 minute-element    = ':' mm [second-element] | [fraction]
 second-element    = ':' ss [fraction]
 fraction          = ('.' | ',') digit+
`

// Submatch indexes of isoPattern
const (
	isoYear = iota + 1
	isoMonth
	isoDay
	isoOrdinal
	isoWeek
	isoWeekday
	isoHour
	isoMinute
	isoSecond
	isoFraction
	isoOffset
)

var isoPattern = regexp.MustCompile(`^([+-]?\d{4,9})` +
	`(?:-(?:(\d{2})(?:-(\d{2}))?|(\d{3})|W(\d{2})(?:-(\d))?))?` +
	`(?:T(?:(\d{2})(?::(\d{2})(?::(\d{2}))?)?([.,]\d+)?)?(Z|[+-]\d{2}(?::?\d{2})?)?)?$`)

// ParseISO parses an ISO-8601 date with optional time. Values without an
// offset are read in the local time zone.
func ParseISO(value string) (time.Time, error) {
	return ParseISOInLocation(value, time.Local)
}

// ParseISOInLocation parses an ISO-8601 date with optional time. Values
// without an offset are read in loc; values with an offset keep it.
func ParseISOInLocation(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, invalidDate(value, "empty date string")
	}

	m := isoPattern.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, invalidDate(value, "does not match the ISO-8601 date-optional-time grammar")
	}

	if m[isoOffset] != "" {
		zone, err := parseOffset(m[isoOffset])
		if err != nil {
			return time.Time{}, invalidDate(value, err.Error())
		}
		loc = zone
	} else if loc == nil {
		loc = time.Local
	}

	date, err := parseDateElement(m, loc)
	if err != nil {
		return time.Time{}, invalidDate(value, err.Error())
	}

	t, err := applyTimeElement(date, m)
	if err != nil {
		return time.Time{}, invalidDate(value, err.Error())
	}
	return t, nil
}

// MustParseISO is like ParseISO but panics on error. Intended for tests and
// fixed literals.
func MustParseISO(value string) time.Time {
	t, err := ParseISOInLocation(value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func parseDateElement(m []string, loc *time.Location) (time.Time, error) {
	year, _ := strconv.Atoi(m[isoYear])

	switch {
	case m[isoOrdinal] != "":
		ordinal, _ := strconv.Atoi(m[isoOrdinal])
		if ordinal < 1 || ordinal > daysInYear(year) {
			return time.Time{}, fmt.Errorf("day of year %d out of range", ordinal)
		}
		return time.Date(year, time.January, ordinal, 0, 0, 0, 0, loc), nil

	case m[isoWeek] != "":
		week, _ := strconv.Atoi(m[isoWeek])
		weekday := 1
		if m[isoWeekday] != "" {
			weekday, _ = strconv.Atoi(m[isoWeekday])
		}
		if weekday < 1 || weekday > 7 {
			return time.Time{}, fmt.Errorf("day of week %d out of range", weekday)
		}
		return weekDate(year, week, weekday, loc)

	default:
		month, day := 1, 1
		if m[isoMonth] != "" {
			month, _ = strconv.Atoi(m[isoMonth])
		}
		if m[isoDay] != "" {
			day, _ = strconv.Atoi(m[isoDay])
		}
		if month < 1 || month > 12 {
			return time.Time{}, fmt.Errorf("month %d out of range", month)
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
		if day < 1 || t.Month() != time.Month(month) || t.Day() != day {
			return time.Time{}, fmt.Errorf("day %d out of range for %04d-%02d", day, year, month)
		}
		return t, nil
	}
}

// weekDate resolves an ISO week date. Week 1 is the week containing
// January 4th; weeks start on Monday.
func weekDate(year, week, weekday int, loc *time.Location) (time.Time, error) {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	sinceMonday := (int(jan4.Weekday()) + 6) % 7
	t := jan4.AddDate(0, 0, -sinceMonday+(week-1)*7+(weekday-1))

	gotYear, gotWeek := t.ISOWeek()
	if week < 1 || gotYear != year || gotWeek != week {
		return time.Time{}, fmt.Errorf("week %d out of range for week-year %d", week, year)
	}
	return t, nil
}

func applyTimeElement(date time.Time, m []string) (time.Time, error) {
	if m[isoHour] == "" {
		return date, nil
	}

	hour, _ := strconv.Atoi(m[isoHour])
	minute, second := 0, 0
	if m[isoMinute] != "" {
		minute, _ = strconv.Atoi(m[isoMinute])
	}
	if m[isoSecond] != "" {
		second, _ = strconv.Atoi(m[isoSecond])
	}
	if hour > 23 {
		return time.Time{}, fmt.Errorf("hour %d out of range", hour)
	}
	if minute > 59 {
		return time.Time{}, fmt.Errorf("minute %d out of range", minute)
	}
	if second > 59 {
		return time.Time{}, fmt.Errorf("second %d out of range", second)
	}

	t := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, 0, date.Location())

	if m[isoFraction] != "" {
		// The fraction belongs to the smallest element present
		unit := time.Hour
		switch {
		case m[isoSecond] != "":
			unit = time.Second
		case m[isoMinute] != "":
			unit = time.Minute
		}
		frac, err := strconv.ParseFloat("0."+m[isoFraction][1:], 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid fraction %q", m[isoFraction])
		}
		t = t.Add(time.Duration(math.Round(frac * float64(unit))))
	}

	return t, nil
}

func parseOffset(s string) (*time.Location, error) {
	if s == "Z" {
		return time.UTC, nil
	}

	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	digits := s[1:]
	if len(digits) > 2 && digits[2] == ':' {
		digits = digits[:2] + digits[3:]
	}

	hours, _ := strconv.Atoi(digits[:2])
	minutes := 0
	if len(digits) == 4 {
		minutes, _ = strconv.Atoi(digits[2:])
	}
	if hours > 23 || minutes > 59 {
		return nil, fmt.Errorf("offset %s out of range", s)
	}

	offset := sign * (hours*3600 + minutes*60)
	if offset == 0 {
		return time.UTC, nil
	}
	return time.FixedZone("", offset), nil
}

func daysInYear(year int) int {
	if time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay() == 366 {
		return 366
	}
	return 365
}

func invalidDate(value, reason string) error {
	return dterror.New(fmt.Sprintf("invalid ISO-8601 date %q: %s", value, reason)).
		WithCode(dterror.CodeInvalidDateFormat).
		WithOperation("timex.ParseISO").
		WithDetail("input", value)
}
