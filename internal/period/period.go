// Package period resolves named reporting periods into concrete UTC ranges.
package period

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// Supported period tokens. Any YYYY-MM string selects a single month.
const (
	All            = "all"
	Last7Days      = "7days"
	Last30Days     = "30days"
	CurrentQuarter = "current_quarter"
	CurrentYear    = "current_year"
)

// Range is an inclusive [Start, End] window. A nil bound is unbounded.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// IsUnbounded reports whether the range places no restriction at all
func (r Range) IsUnbounded() bool {
	return r.Start == nil && r.End == nil
}

// Contains reports whether t falls inside the range
func (r Range) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// Resolve maps token to a range relative to ref. Unknown tokens yield an
// unbounded range instead of an error so report views always render.
func Resolve(token string, ref time.Time) Range {
	t := now.With(ref.UTC())

	switch strings.TrimSpace(token) {
	case "", All:
		return Range{}
	case Last7Days:
		return bounded(t.BeginningOfDay().AddDate(0, 0, -6), t.EndOfDay())
	case Last30Days:
		return bounded(t.BeginningOfDay().AddDate(0, 0, -29), t.EndOfDay())
	case CurrentQuarter:
		return bounded(t.BeginningOfQuarter(), t.EndOfQuarter())
	case CurrentYear:
		return bounded(t.BeginningOfYear(), t.EndOfYear())
	}

	month, err := time.ParseInLocation("2006-01", strings.TrimSpace(token), time.UTC)
	if err != nil {
		return Range{}
	}
	m := now.With(month)
	return bounded(m.BeginningOfMonth(), m.EndOfMonth())
}

// bounded builds a range whose end is truncated to the microsecond precision
// of Postgres timestamps; nanosecond ends would round into the next day.
func bounded(start, end time.Time) Range {
	end = end.Truncate(time.Microsecond)
	return Range{Start: &start, End: &end}
}

// Option is a selectable period for report filters
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options lists the fixed periods plus the last n months before ref, newest first
func Options(ref time.Time, months int) []Option {
	opts := []Option{
		{Value: All, Label: "Gesamter Zeitraum"},
		{Value: Last7Days, Label: "Letzte 7 Tage"},
		{Value: Last30Days, Label: "Letzte 30 Tage"},
		{Value: CurrentQuarter, Label: "Aktuelles Quartal"},
		{Value: CurrentYear, Label: "Aktuelles Jahr"},
	}
	first := now.With(ref.UTC()).BeginningOfMonth()
	for i := 0; i < months; i++ {
		m := first.AddDate(0, -i, 0)
		opts = append(opts, Option{Value: m.Format("2006-01"), Label: m.Format("01/2006")})
	}
	return opts
}
