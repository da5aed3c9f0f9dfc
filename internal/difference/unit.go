// ============================================================================
// DateTool - Calendar Difference Calculator
// ============================================================================
//
// Package:     difference
// Description: Result units and the day-count conversion table
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package difference

import (
	"fmt"
	"strings"

	dterror "github.com/msto63/datetool/foundation/core/error"
)

// Unit selects how a calculation result is expressed. The zero value is
// Default, the native unit of each calculation.
type Unit int

const (
	Default Unit = iota
	Seconds
	Minutes
	Hours
	Days
	Weeks
	Years
)

const (
	hoursPerDay   = 24
	minutesPerDay = hoursPerDay * 60
	secondsPerDay = minutesPerDay * 60
	daysPerWeek   = 7
	daysPerYear   = 365
)

// unitDef is one row of the conversion table
type unitDef struct {
	name    string
	convert func(days int64) int64
}

// unitTable maps every Unit to its name and its linear reinterpretation of
// a non-negative day count. Years are always 365 days.
var unitTable = [...]unitDef{
	Default: {"default", func(days int64) int64 { return days }},
	Seconds: {"seconds", func(days int64) int64 { return days * secondsPerDay }},
	Minutes: {"minutes", func(days int64) int64 { return days * minutesPerDay }},
	Hours:   {"hours", func(days int64) int64 { return days * hoursPerDay }},
	Days:    {"days", func(days int64) int64 { return days }},
	Weeks:   {"weeks", func(days int64) int64 { return days / daysPerWeek }},
	Years:   {"years", func(days int64) int64 { return days / daysPerYear }},
}

// Units returns all units in declaration order
func Units() []Unit {
	units := make([]Unit, len(unitTable))
	for i := range unitTable {
		units[i] = Unit(i)
	}
	return units
}

// UnitNames returns the names accepted by ParseUnit
func UnitNames() []string {
	names := make([]string, len(unitTable))
	for i, def := range unitTable {
		names[i] = def.name
	}
	return names
}

// IsValid reports whether u is a declared unit
func (u Unit) IsValid() bool {
	return u >= 0 && int(u) < len(unitTable)
}

// String returns the lowercase unit name
func (u Unit) String() string {
	if !u.IsValid() {
		return fmt.Sprintf("unit(%d)", int(u))
	}
	return unitTable[u].name
}

// Convert re-expresses a signed day count in u. The magnitude goes through
// the table and the sign is reapplied, so truncation is toward zero.
// Unknown units convert like Days.
func (u Unit) Convert(days int64) int64 {
	convert := unitTable[Days].convert
	if u.IsValid() {
		convert = unitTable[u].convert
	}

	if days < 0 {
		return -convert(-days)
	}
	return convert(days)
}

// ParseUnit parses a unit name, case-insensitively. The empty string is
// Default.
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Default, nil
	}
	for i, def := range unitTable {
		if def.name == name {
			return Unit(i), nil
		}
	}
	return Default, dterror.New(fmt.Sprintf("unknown unit %q (valid: %s)", s, strings.Join(UnitNames(), ", "))).
		WithCode(dterror.CodeInvalidArgument).
		WithOperation("difference.ParseUnit").
		WithDetail("unit", s)
}

// MarshalText implements encoding.TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	if !u.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid unit %d", int(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Set implements pflag.Value so a Unit can be bound directly to a flag
func (u *Unit) Set(s string) error {
	return u.UnmarshalText([]byte(s))
}

// Type implements pflag.Value
func (u *Unit) Type() string {
	return "unit"
}
