package domain

import (
	"fmt"
	"time"
)

// dateLayout is the wire format for calendar days
const dateLayout = "2006-01-02"

// Date is a calendar day with no time component, marshaled as YYYY-MM-DD.
// All dates are anchored to UTC so a record's time-of-day never affects
// day matching or range inclusion.
type Date struct {
	time.Time
}

// NewDate truncates an instant to its UTC calendar day
func NewDate(t time.Time) Date {
	u := t.UTC()
	return Date{time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

// String returns the YYYY-MM-DD form
func (d Date) String() string {
	return d.Format(dateLayout)
}

// Equal reports whether two dates are the same calendar day
func (d Date) Equal(o Date) bool {
	return d.Time.Equal(o.Time)
}

// Next returns the following calendar day
func (d Date) Next() Date {
	return Date{d.AddDate(0, 0, 1)}
}

// MarshalJSON encodes the date as a YYYY-MM-DD string
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string; full timestamps are
// tolerated and truncated to their day.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	s = s[1 : len(s)-1]

	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	*d = NewDate(t)
	return nil
}

// SameDay reports whether two instants fall on the same UTC calendar day
func SameDay(a, b time.Time) bool {
	return NewDate(a).Equal(NewDate(b))
}
