// File: timex_test.go
// Title: Time Utilities Tests
// Description: Tests for calendar helpers and the ISO-8601 parser.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14

package timex

import (
	"testing"
	"time"

	dterror "github.com/msto63/datetool/foundation/core/error"
)

// ===============================
// Calendar Helper Tests
// ===============================

func TestCivilDay(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)

	testCases := []struct {
		name string
		time time.Time
		want int64
	}{
		{"epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"epoch late evening", time.Date(1970, 1, 1, 23, 59, 59, 0, time.UTC), 0},
		{"day before epoch", time.Date(1969, 12, 31, 12, 0, 0, 0, time.UTC), -1},
		{"y2k", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), 10957},
		{"offset uses local date", time.Date(1970, 1, 2, 0, 30, 0, 0, berlin), 1},
		{"pre-epoch far", time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), -25567},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CivilDay(tc.time); got != tc.want {
				t.Errorf("CivilDay(%v) = %d, want %d", tc.time, got, tc.want)
			}
		})
	}
}

func TestFromCivilDayRoundTrip(t *testing.T) {
	for n := int64(-1000); n <= 1000; n += 37 {
		d := FromCivilDay(n, time.UTC)
		if got := CivilDay(d); got != n {
			t.Fatalf("CivilDay(FromCivilDay(%d)) = %d", n, got)
		}
		if CivilWeekday(n) != d.Weekday() {
			t.Fatalf("CivilWeekday(%d) = %v, want %v", n, CivilWeekday(n), d.Weekday())
		}
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("X", -5*3600)
	in := time.Date(2000, 1, 5, 23, 59, 0, 0, loc)
	got := StartOfDay(in)
	want := time.Date(2000, 1, 5, 0, 0, 0, 0, loc)
	if !got.Equal(want) || got.Location() != loc {
		t.Errorf("StartOfDay(%v) = %v, want %v", in, got, want)
	}
}

func TestIsWeekend(t *testing.T) {
	// 2000-01-01 is a Saturday
	for day := 1; day <= 7; day++ {
		d := time.Date(2000, 1, day, 12, 0, 0, 0, time.UTC)
		want := day == 1 || day == 2
		if IsWeekend(d) != want {
			t.Errorf("IsWeekend(%s) = %v, want %v", d.Weekday(), IsWeekend(d), want)
		}
		if IsWeekday(d) == want {
			t.Errorf("IsWeekday(%s) should be the inverse of IsWeekend", d.Weekday())
		}
	}
}

func TestNextMonday(t *testing.T) {
	testCases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"saturday", time.Date(2000, 1, 1, 8, 15, 0, 0, time.UTC), time.Date(2000, 1, 3, 8, 15, 0, 0, time.UTC)},
		{"sunday", time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC), time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC)},
		{"monday", time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC), time.Date(2000, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"friday", time.Date(2000, 1, 7, 0, 0, 0, 0, time.UTC), time.Date(2000, 1, 10, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextMonday(tc.in); !got.Equal(tc.want) {
				t.Errorf("NextMonday(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestWeekdaysBetween(t *testing.T) {
	day := func(y int, m time.Month, d int) int64 {
		return CivilDay(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	}

	testCases := []struct {
		name     string
		from, to int64
		want     int64
	}{
		{"empty range", day(2000, 1, 3), day(2000, 1, 3), 0},
		{"reversed range", day(2000, 1, 10), day(2000, 1, 3), 0},
		{"monday to friday", day(2000, 1, 3), day(2000, 1, 7), 4},
		{"monday to monday", day(2000, 1, 3), day(2000, 1, 10), 5},
		{"saturday to monday", day(2000, 1, 1), day(2000, 1, 3), 0},
		{"friday to saturday", day(2000, 1, 7), day(2000, 1, 8), 1},
		{"leap year", day(2000, 1, 1), day(2001, 1, 1), 260},
		{"across epoch", day(1969, 12, 29), day(1970, 1, 5), 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekdaysBetween(tc.from, tc.to); got != tc.want {
				t.Errorf("WeekdaysBetween(%d, %d) = %d, want %d", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestWeekdaysBetweenMatchesIteration(t *testing.T) {
	start := CivilDay(time.Date(1969, 11, 1, 0, 0, 0, 0, time.UTC))
	for from := start; from < start+30; from++ {
		for to := from; to < from+60; to++ {
			var want int64
			for n := from; n < to; n++ {
				if wd := CivilWeekday(n); wd != time.Saturday && wd != time.Sunday {
					want++
				}
			}
			if got := WeekdaysBetween(from, to); got != want {
				t.Fatalf("WeekdaysBetween(%d, %d) = %d, want %d", from, to, got, want)
			}
		}
	}
}

// ===============================
// ISO-8601 Parsing Tests
// ===============================

func TestParseISOInLocation(t *testing.T) {
	plusOne := time.FixedZone("", 3600)
	minusFiveThirty := time.FixedZone("", -(5*3600 + 30*60))

	testCases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"year only", "2000", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"year month", "2000-02", time.Date(2000, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"calendar date", "2000-01-05", time.Date(2000, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"leap day", "2000-02-29", time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"ordinal date", "1981-095", time.Date(1981, 4, 5, 0, 0, 0, 0, time.UTC)},
		{"ordinal leap", "2000-366", time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"week date", "2004-W53-6", time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"week without day", "2009-W01", time.Date(2008, 12, 29, 0, 0, 0, 0, time.UTC)},
		{"hour only", "2000-01-05T10", time.Date(2000, 1, 5, 10, 0, 0, 0, time.UTC)},
		{"hour minute", "2000-01-05T10:30", time.Date(2000, 1, 5, 10, 30, 0, 0, time.UTC)},
		{"full time", "2000-01-05T23:59:59", time.Date(2000, 1, 5, 23, 59, 59, 0, time.UTC)},
		{"second fraction", "2000-01-05T10:30:15.25", time.Date(2000, 1, 5, 10, 30, 15, 250000000, time.UTC)},
		{"comma fraction", "1981-095T23:20:50,5", time.Date(1981, 4, 5, 23, 20, 50, 500000000, time.UTC)},
		{"minute fraction", "2000-01-05T10:30.5", time.Date(2000, 1, 5, 10, 30, 30, 0, time.UTC)},
		{"hour fraction", "2000-01-05T10.25", time.Date(2000, 1, 5, 10, 15, 0, 0, time.UTC)},
		{"zulu", "2000-01-05T10:00Z", time.Date(2000, 1, 5, 10, 0, 0, 0, time.UTC)},
		{"offset colon", "1997-07-16T19:20:30+01:00", time.Date(1997, 7, 16, 19, 20, 30, 0, plusOne)},
		{"offset compact", "1997-07-16T19:20:30+0100", time.Date(1997, 7, 16, 19, 20, 30, 0, plusOne)},
		{"offset hours", "1997-07-16T19:20:30+01", time.Date(1997, 7, 16, 19, 20, 30, 0, plusOne)},
		{"negative offset", "2000-01-05T00:00-05:30", time.Date(2000, 1, 5, 0, 0, 0, 0, minusFiveThirty)},
		{"offset without time", "2000-01-05TZ", time.Date(2000, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"bare T", "2000-01-05T", time.Date(2000, 1, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseISOInLocation(tc.input, time.UTC)
			if err != nil {
				t.Fatalf("ParseISOInLocation(%q) unexpected error: %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseISOInLocation(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseISOKeepsOffset(t *testing.T) {
	got, err := ParseISOInLocation("1997-07-16T19:20:30+01:00", time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if _, offset := got.Zone(); offset != 3600 {
		t.Errorf("offset = %d, want 3600", offset)
	}
	if got.Hour() != 19 {
		t.Errorf("hour = %d, want 19 in the parsed offset", got.Hour())
	}
}

func TestParseISOUsesLocationWithoutOffset(t *testing.T) {
	loc := time.FixedZone("Test", 9*3600)
	got, err := ParseISOInLocation("2000-01-05T08:00", loc)
	if err != nil {
		t.Fatal(err)
	}
	if got.Location() != loc {
		t.Errorf("location = %v, want %v", got.Location(), loc)
	}
	if want := time.Date(2000, 1, 4, 23, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got.UTC(), want)
	}

	if _, err := ParseISOInLocation("2000-01-05", nil); err != nil {
		t.Errorf("nil location should fall back to local: %v", err)
	}
}

func TestParseISOInvalid(t *testing.T) {
	inputs := []string{
		"",
		"not a date",
		"05/01/2000",
		"2000-1-5",
		"2000-13-01",
		"2000-00-10",
		"2001-02-29",
		"2000-04-31",
		"2000-00",
		"2001-366",
		"2000-000",
		"2005-W53",
		"2004-W00",
		"2004-W10-8",
		"2004-W10-0",
		"2000-01-05T24:00",
		"2000-01-05T10:60",
		"2000-01-05T10:30:60",
		"2000-01-05T10:30:15.",
		"2000-01-05T10:30+25:00",
		"2000-01-05T10:30+01:75",
		"2000-01-05 10:30",
		" 2000-01-05",
		"2000-01-05T10:30:00Zjunk",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseISOInLocation(input, time.UTC)
			if err == nil {
				t.Fatalf("ParseISOInLocation(%q) expected error, got nil", input)
			}
			if !dterror.HasCode(err, dterror.CodeInvalidDateFormat) {
				t.Errorf("error code = %v, want %v", dterror.GetCode(err), dterror.CodeInvalidDateFormat)
			}
		})
	}
}

func TestMustParseISO(t *testing.T) {
	if got := MustParseISO("2000-01-01"); !got.Equal(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("MustParseISO = %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParseISO should panic on invalid input")
		}
	}()
	MustParseISO("garbage")
}

func BenchmarkParseISO(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseISOInLocation("1997-07-16T19:20:30.45+01:00", time.UTC)
	}
}
