// Package timex implements the calendar helpers and the ISO-8601 parser used
// by DateTool.
//
// Package: timex
// Title: Extended Time Utilities for Go
// Description: Day boundaries, civil day numbers, weekday counting and a
//              parser for the ISO-8601 date-optional-time grammar.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-14 v0.2.0: Reduced to calendar arithmetic; added ISO-8601 grammar parser
//
// # Calendar Helpers
//
//   - StartOfDay: midnight of the calendar date in the time's own location
//   - CivilDay / FromCivilDay: convert between a calendar date and the number
//     of days since 1970-01-01
//   - IsWeekend / IsWeekday: Saturday and Sunday are weekend days
//   - NextMonday: the Monday after a weekend day
//   - WeekdaysBetween: Monday–Friday dates in a half-open day range
//
// Civil day numbers ignore the time of day and the UTC offset: two instants
// on the same calendar date in their location map to the same number.
//
// # ISO-8601 Parsing
//
// ParseISO and ParseISOInLocation accept the date-optional-time grammar:
//
//	t, err := timex.ParseISO("1997-07-16T19:20:30+01:00")
//	t, err := timex.ParseISO("2000-01-01")
//	t, err := timex.ParseISO("2004-W53-6")
//	t, err := timex.ParseISO("1981-095T23:20:50,5")
//
// Values without an offset are read in the given location (time.Local for
// ParseISO). Malformed input returns an error with code
// CodeInvalidDateFormat. The grammar text itself is exported as ISOGrammar.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package timex
