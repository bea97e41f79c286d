package domain

import (
	"fmt"
	"strings"
	"time"
)

// BRDateLayout is the dd/mm/yyyy layout operators type and exports use.
const BRDateLayout = "02/01/2006"

const isoDateLayout = "2006-01-02"

var isoTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04",
}

// ParseDateFlex accepts dd/mm/yyyy, yyyy-mm-dd and ISO timestamps and returns
// the calendar day at midnight UTC.
func ParseDateFlex(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date: %w", ErrBadInput)
	}
	if t, err := time.Parse(BRDateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(isoDateLayout, s); err == nil {
		return t, nil
	}
	for _, layout := range isoTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q: %w", s, ErrBadInput)
}

// FormatBR renders a date as dd/mm/yyyy.
func FormatBR(t time.Time) string {
	return t.Format(BRDateLayout)
}

// Day truncates t to its calendar day (in t's own location) expressed in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey is the yyyy-mm-dd form used for grouping by day.
func DateKey(t time.Time) string {
	return t.Format(isoDateLayout)
}
