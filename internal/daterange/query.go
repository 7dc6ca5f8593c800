package daterange

import (
	"fmt"
	"strings"
	"time"
)

var inputLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
}

// Query holds raw range parameters as they arrive from a request.
type Query struct {
	From  string
	To    string
	Month int
	Year  int
}

// Period is the legacy month/year selector.
type Period struct {
	Month time.Month
	Year  int
}

// Resolution is the effective range for a Query.
type Resolution struct {
	Range Range
	// Period is set only when the query used the legacy month/year form.
	Period *Period
	// Defaulted is true when part of the query was absent or unusable and
	// the current month filled in.
	Defaulted bool
	// Err is the validation problem that forced the fallback, if any.
	Err error
}

// ValidationError describes an unusable query parameter.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// ParseDate reads a calendar date or an RFC 3339 timestamp. Date-only input
// is midnight in loc; timestamps are converted into loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range inputLayouts {
		if layout == DateLayout {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, &ValidationError{Field: "date", Value: s}
}

// ParseQuery resolves request parameters into a range. It never fails: absent
// or unparsable bounds fall back to the current month boundaries one side at a
// time, and an inverted pair falls back to the whole current month.
func (c Calendar) ParseQuery(q Query, now time.Time) Resolution {
	month := c.CurrentMonth(now)

	if q.From == "" && q.To == "" && (q.Month != 0 || q.Year != 0) {
		return c.parsePeriod(q, month)
	}

	res := Resolution{Range: Range{Preset: PresetCustom}}
	from, err := c.bound("from", q.From)
	if err != nil {
		from = month.From
		res.Defaulted = true
		res.Err = errorOr(res.Err, err)
	}
	to, err := c.bound("to", q.To)
	if err != nil {
		to = month.To
		res.Defaulted = true
		res.Err = errorOr(res.Err, err)
	}

	r, err := c.Custom(from, to)
	if err != nil {
		return Resolution{Range: month, Defaulted: true, Err: err}
	}
	if q.From == "" && q.To == "" {
		r.Preset = PresetMonth
	}
	res.Range = r
	return res
}

func (c Calendar) parsePeriod(q Query, fallback Range) Resolution {
	if q.Month < 1 || q.Month > 12 {
		return Resolution{Range: fallback, Period: periodOf(fallback), Defaulted: true,
			Err: &ValidationError{Field: "month", Value: fmt.Sprint(q.Month)}}
	}
	if q.Year < 1 {
		return Resolution{Range: fallback, Period: periodOf(fallback), Defaulted: true,
			Err: &ValidationError{Field: "year", Value: fmt.Sprint(q.Year)}}
	}
	r := c.Month(q.Year, time.Month(q.Month))
	return Resolution{Range: r, Period: &Period{Month: time.Month(q.Month), Year: q.Year}}
}

// bound parses one side of the range. Absent input is reported as an error
// with an empty value so the caller can fall back.
func (c Calendar) bound(field, raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, &ValidationError{Field: field}
	}
	t, err := ParseDate(raw, c.location())
	if err != nil {
		return time.Time{}, &ValidationError{Field: field, Value: raw}
	}
	return t, nil
}

func periodOf(r Range) *Period {
	return &Period{Month: r.From.Month(), Year: r.From.Year()}
}

func errorOr(current, next error) error {
	if current != nil {
		return current
	}
	return next
}
