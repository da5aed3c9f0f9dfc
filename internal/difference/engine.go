// ============================================================================
// DateTool - Calendar Difference Calculator
// ============================================================================
//
// Package:     difference
// Description: Difference engine for days, weekdays and complete weeks
// Created:     2026-10-14
// License:     MIT
// ============================================================================

// Package difference compares two instants and reports the elapsed calendar
// days, weekdays (Monday to Friday) and complete weeks between them.
//
// Results are signed: when end precedes start every result is the negation
// of the result for the swapped pair. Calendar fields are read in the
// location of the earlier instant.
//
// An Engine is not safe for concurrent use; its setters are unsynchronized.
package difference

import (
	"time"

	"github.com/msto63/datetool/foundation/utils/timex"
)

// Engine holds the two instants being compared and the result unit
type Engine struct {
	start time.Time
	end   time.Time
	unit  Unit
}

// Option configures an Engine
type Option func(*Engine)

// WithUnit sets the result unit
func WithUnit(u Unit) Option {
	return func(e *Engine) {
		e.unit = u
	}
}

// New creates an engine for the given instants. Any order is accepted,
// including equal instants.
func New(start, end time.Time, opts ...Option) *Engine {
	e := &Engine{
		start: start,
		end:   end,
		unit:  Default,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Start() time.Time { return e.start }
func (e *Engine) End() time.Time   { return e.end }
func (e *Engine) Unit() Unit       { return e.unit }

// SetStart replaces the start instant
func (e *Engine) SetStart(start time.Time) { e.start = start }

// SetEnd replaces the end instant
func (e *Engine) SetEnd(end time.Time) { e.end = end }

// SetUnit replaces the result unit
func (e *Engine) SetUnit(u Unit) { e.unit = u }

// span is a normalized copy of the engine's instants. The stored fields
// are never swapped, so repeated calls see the same input.
type span struct {
	from     time.Time
	to       time.Time
	reversed bool
}

func (e *Engine) normalize() span {
	if e.start.After(e.end) {
		return span{from: e.end, to: e.start.In(e.end.Location()), reversed: true}
	}
	return span{from: e.start, to: e.end.In(e.start.Location())}
}

func (s span) sign(n int64) int64 {
	if s.reversed {
		return -n
	}
	return n
}

// DaysDifference returns the number of whole calendar days from start to
// end, truncated toward zero.
func (e *Engine) DaysDifference() int64 {
	s := e.normalize()
	return e.unit.Convert(s.sign(completeDays(s.from, s.to)))
}

// WeekdaysDifference returns the number of Monday to Friday dates from the
// start date up to, but excluding, the end date. Time of day is ignored.
func (e *Engine) WeekdaysDifference() int64 {
	s := e.normalize()
	count := timex.WeekdaysBetween(timex.CivilDay(s.from), timex.CivilDay(s.to))
	return e.unit.Convert(s.sign(count))
}

// CompleteWeeksDifference returns the number of complete 7-day periods from
// start to end, truncated toward zero. Non-default units convert the
// whole-week span, weeks × 7 days.
func (e *Engine) CompleteWeeksDifference() int64 {
	s := e.normalize()
	weeks := completeDays(s.from, s.to) / timex.DaysPerWeek
	if e.unit == Default {
		return s.sign(weeks)
	}
	return e.unit.Convert(s.sign(weeks * timex.DaysPerWeek))
}

// completeDays counts the calendar days n with from + n days <= to.
// from must not be after to; both must share a location.
func completeDays(from, to time.Time) int64 {
	days := timex.CivilDay(to) - timex.CivilDay(from)
	if days > 0 && from.AddDate(0, 0, int(days)).After(to) {
		days--
	}
	return days
}
