// ============================================================================
// DateTool - Calendar Difference Calculator
// ============================================================================
//
// Package:     difference
// Description: Calculation kinds and result collection
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package difference

import "fmt"

// Kind identifies one of the engine's calculations
type Kind int

const (
	KindDays Kind = iota
	KindWeekdays
	KindCompleteWeeks
)

// Kinds returns all calculation kinds in display order
func Kinds() []Kind {
	return []Kind{KindDays, KindWeekdays, KindCompleteWeeks}
}

// String returns the phrase used in result lines, e.g. "complete weeks"
func (k Kind) String() string {
	switch k {
	case KindDays:
		return "days"
	case KindWeekdays:
		return "weekdays"
	case KindCompleteWeeks:
		return "complete weeks"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Key returns a stable identifier for machine-readable output
func (k Kind) Key() string {
	switch k {
	case KindDays:
		return "days"
	case KindWeekdays:
		return "weekdays"
	case KindCompleteWeeks:
		return "complete_weeks"
	default:
		return fmt.Sprintf("kind_%d", int(k))
	}
}

// Result is the outcome of one calculation
type Result struct {
	Kind  Kind
	Unit  Unit
	Value int64
}

// Calculate runs the calculation identified by k. Unknown kinds yield 0.
func (e *Engine) Calculate(k Kind) int64 {
	switch k {
	case KindDays:
		return e.DaysDifference()
	case KindWeekdays:
		return e.WeekdaysDifference()
	case KindCompleteWeeks:
		return e.CompleteWeeksDifference()
	default:
		return 0
	}
}

// Results runs the given calculations in order. With no kinds it runs all
// of them.
func (e *Engine) Results(kinds ...Kind) []Result {
	if len(kinds) == 0 {
		kinds = Kinds()
	}
	results := make([]Result, 0, len(kinds))
	for _, k := range kinds {
		results = append(results, Result{Kind: k, Unit: e.unit, Value: e.Calculate(k)})
	}
	return results
}
