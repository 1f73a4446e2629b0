package models

import (
	"fmt"
	"time"
)

// dateLayout is the on-disk and on-wire representation of a calendar date.
const dateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day component, stored as an
// ISO 8601 date string (YYYY-MM-DD). The zero value ("") means "no date".
type Date string

// ParseDate parses an ISO 8601 date string into a Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date(s), nil
}

// DateOf truncates a point in time to its calendar date in t's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == ""
}

// Time returns midnight UTC of the date. Unset dates return the zero time.
func (d Date) Time() time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays returns the date n whole days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	if d.IsZero() {
		return d
	}
	return DateOf(d.Time().AddDate(0, 0, n))
}

// DaysBetween returns the number of whole calendar days from one date to
// the other. Negative when to is before from.
func DaysBetween(from, to Date) int {
	return int(to.Time().Sub(from.Time()).Hours() / 24)
}

func (d Date) String() string {
	return string(d)
}
