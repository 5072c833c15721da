package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role identifies the duty role of a crew member
type Role string

const (
	RoleDriver  Role = "driver"
	RoleEMT     Role = "emt"
	RoleManager Role = "manager"
	RoleSupport Role = "support"
)

// Valid reports whether the role is a known role tag
func (r Role) Valid() bool {
	switch r {
	case RoleDriver, RoleEMT, RoleManager, RoleSupport:
		return true
	}
	return false
}

// ParseRole normalizes and parses a role tag
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Status is the attendance classification of a single duty day
type Status string

const (
	StatusPresent             Status = "present"
	StatusAbsent              Status = "absent"
	StatusLate                Status = "late"
	StatusFirstHalfDayLeave   Status = "first_half_day_leave"
	StatusSecondHalfDayLeave  Status = "second_half_day_leave"
	StatusShortLeave          Status = "short_leave"
)

// Valid reports whether the status is a known attendance status
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate,
		StatusFirstHalfDayLeave, StatusSecondHalfDayLeave, StatusShortLeave:
		return true
	}
	return false
}

// ShiftStartHourUTC is the fixed time-of-day at which every shift begins.
// Used only by the seed generator; live punch data carries its own instants.
const ShiftStartHourUTC = 8

// DefaultShiftHours applies to roles without an explicit policy entry
const DefaultShiftHours = 12.0

// ShiftPolicy maps a role to its shift length in hours
type ShiftPolicy map[Role]float64

// DefaultShiftPolicy returns the standard crew shift lengths
func DefaultShiftPolicy() ShiftPolicy {
	return ShiftPolicy{
		RoleDriver: 24,
		RoleEMT:    12,
	}
}

// Hours returns the shift length for a role
func (p ShiftPolicy) Hours(role Role) float64 {
	if h, ok := p[role]; ok {
		return h
	}
	return DefaultShiftHours
}

// AttendanceRecord is one crew member's attendance for one calendar day
type AttendanceRecord struct {
	Date             Date       `json:"date"`
	Status           Status     `json:"status"`
	Reason           string     `json:"reason"`
	PunchIn          *time.Time `json:"punchIn,omitempty"`
	PunchOut         *time.Time `json:"punchOut,omitempty"`
	TotalWorkingHour float64    `json:"totalWorkingHour"`
	AmbulanceNumber  string     `json:"ambulanceNumber,omitempty"`
}

// Validate checks the per-record invariants
func (rec *AttendanceRecord) Validate() error {
	if !rec.Status.Valid() {
		return fmt.Errorf("invalid status %q", rec.Status)
	}
	if rec.Date.IsZero() {
		return fmt.Errorf("missing date")
	}
	if rec.TotalWorkingHour < 0 {
		return fmt.Errorf("negative total working hours on %s", rec.Date)
	}
	// reason is empty iff the day was fully present
	if rec.Status == StatusPresent && rec.Reason != "" {
		return fmt.Errorf("unexpected reason on present day %s", rec.Date)
	}
	if rec.Status != StatusPresent && rec.Reason == "" {
		return fmt.Errorf("missing reason on %s day %s", rec.Status, rec.Date)
	}
	return nil
}

// Employee is a roster member with their attendance history.
// Immutable once loaded; attendance is ordered by ascending date.
type Employee struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	PhoneNumber string             `json:"phoneNumber,omitempty"`
	Role        Role               `json:"userRole"`
	Attendance  []AttendanceRecord `json:"attendance"`
}

// Validate checks the employee and all attendance invariants
func (e *Employee) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("employee missing id")
	}
	if e.Name == "" {
		return fmt.Errorf("employee %s missing name", e.ID)
	}
	if !e.Role.Valid() {
		return fmt.Errorf("employee %s has invalid role %q", e.ID, e.Role)
	}

	seen := make(map[string]struct{}, len(e.Attendance))
	for i := range e.Attendance {
		rec := &e.Attendance[i]
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("employee %s: %w", e.ID, err)
		}
		key := rec.Date.String()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("employee %s has duplicate record for %s", e.ID, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// RecordOn returns the attendance record for the given calendar day,
// or nil when no record exists. Matching is date-only: the time-of-day
// component of day is ignored.
func (e *Employee) RecordOn(day time.Time) *AttendanceRecord {
	want := NewDate(day)
	for i := range e.Attendance {
		if e.Attendance[i].Date.Equal(want) {
			return &e.Attendance[i]
		}
	}
	return nil
}
