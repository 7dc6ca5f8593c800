// Package daterange turns presets and user supplied bounds into the inclusive
// date windows used to scope transaction queries and reports.
package daterange

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Preset names a calendar-relative window.
type Preset string

const (
	PresetToday  Preset = "today"
	PresetWeek   Preset = "week"
	PresetMonth  Preset = "month"
	PresetYear   Preset = "year"
	PresetCustom Preset = "custom"
)

// ParsePreset maps a preset tag to a Preset.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(strings.ToLower(strings.TrimSpace(s))); p {
	case PresetToday, PresetWeek, PresetMonth, PresetYear, PresetCustom:
		return p, nil
	default:
		return "", fmt.Errorf("unknown date range preset %q", s)
	}
}

// Range is an inclusive window. From and To are authoritative; Preset only
// records how the window was chosen.
type Range struct {
	From   time.Time
	To     time.Time
	Preset Preset
}

// FromDate returns the first calendar day of the range.
func (r Range) FromDate() string {
	return r.From.Format(DateLayout)
}

// ToDate returns the last calendar day of the range.
func (r Range) ToDate() string {
	return r.To.Format(DateLayout)
}

// ContainsDate reports whether the calendar day of d falls inside the range.
// d is read in its own location, so civil dates stored at UTC midnight
// compare by their day and not by an instant.
func (r Range) ContainsDate(d time.Time) bool {
	day := d.Format(DateLayout)
	return day >= r.FromDate() && day <= r.ToDate()
}

// Days is the number of calendar days covered, counting both ends.
func (r Range) Days() int {
	from := time.Date(r.From.Year(), r.From.Month(), r.From.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(r.To.Year(), r.To.Month(), r.To.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours()/24) + 1
}

// InvalidRangeError is returned when a range ends before it starts.
type InvalidRangeError struct {
	From time.Time
	To   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid date range: from %s is after to %s",
		e.From.Format(time.RFC3339), e.To.Format(time.RFC3339))
}

// Calendar is the governing calendar for preset resolution.
type Calendar struct {
	Location  *time.Location
	WeekStart time.Weekday
}

// DefaultCalendar is UTC with weeks starting on Sunday.
func DefaultCalendar() Calendar {
	return Calendar{Location: time.UTC, WeekStart: time.Sunday}
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// Resolve computes [start of unit, end of unit] for a preset relative to now.
// PresetCustom has no bounds of its own and must go through Custom.
func (c Calendar) Resolve(preset Preset, now time.Time) (Range, error) {
	now = now.In(c.location())
	var from, next time.Time

	switch preset {
	case PresetToday:
		from = c.startOfDay(now)
		next = from.AddDate(0, 0, 1)
	case PresetWeek:
		offset := (int(now.Weekday()) - int(c.WeekStart) + 7) % 7
		from = time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, now.Location())
		next = time.Date(from.Year(), from.Month(), from.Day()+7, 0, 0, 0, 0, now.Location())
	case PresetMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		next = from.AddDate(0, 1, 0)
	case PresetYear:
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		next = from.AddDate(1, 0, 0)
	case PresetCustom:
		return Range{}, fmt.Errorf("preset %q needs explicit bounds", preset)
	default:
		return Range{}, fmt.Errorf("unknown date range preset %q", preset)
	}

	return Range{From: from, To: endOfUnit(next), Preset: preset}, nil
}

// Custom validates an explicit pair of bounds and tags it as custom.
func (c Calendar) Custom(from, to time.Time) (Range, error) {
	if from.After(to) {
		return Range{}, &InvalidRangeError{From: from, To: to}
	}
	return Range{From: from, To: to, Preset: PresetCustom}, nil
}

// Month returns the full calendar month containing the given year and month.
func (c Calendar) Month(year int, month time.Month) Range {
	from := time.Date(year, month, 1, 0, 0, 0, 0, c.location())
	return Range{From: from, To: endOfUnit(from.AddDate(0, 1, 0)), Preset: PresetMonth}
}

// CurrentMonth is the month containing now.
func (c Calendar) CurrentMonth(now time.Time) Range {
	now = now.In(c.location())
	return c.Month(now.Year(), now.Month())
}

func (c Calendar) startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfUnit is the last millisecond before the next unit starts.
func endOfUnit(next time.Time) time.Time {
	return next.Add(-time.Millisecond)
}
