package testutil

import (
	"fmt"
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
)

// FixtureFactory creates test fixtures with sensible defaults
type FixtureFactory struct {
	sequence int
}

// NewFixtureFactory creates a new fixture factory
func NewFixtureFactory() *FixtureFactory {
	return &FixtureFactory{sequence: 0}
}

// nextSeq returns the next sequence number for unique values
func (f *FixtureFactory) nextSeq() int {
	f.sequence++
	return f.sequence
}

// Employee creates an employee fixture with defaults
func (f *FixtureFactory) Employee(opts ...func(*domain.Employee)) *domain.Employee {
	seq := f.nextSeq()

	emp := &domain.Employee{
		ID:          fmt.Sprintf("DRV%05d", seq),
		Name:        fmt.Sprintf("Test Driver %d", seq),
		PhoneNumber: fmt.Sprintf("+91900000%04d", seq),
		Role:        domain.RoleDriver,
	}

	for _, opt := range opts {
		opt(emp)
	}

	return emp
}

// EMT creates an emt fixture with defaults
func (f *FixtureFactory) EMT(opts ...func(*domain.Employee)) *domain.Employee {
	seq := f.nextSeq()

	emp := &domain.Employee{
		ID:          fmt.Sprintf("MS%05d", seq),
		Name:        fmt.Sprintf("Test EMT %d", seq),
		PhoneNumber: fmt.Sprintf("+91900000%04d", seq),
		Role:        domain.RoleEMT,
	}

	for _, opt := range opts {
		opt(emp)
	}

	return emp
}

// WithID sets the employee id
func WithID(id string) func(*domain.Employee) {
	return func(e *domain.Employee) {
		e.ID = id
	}
}

// WithName sets the employee name
func WithName(name string) func(*domain.Employee) {
	return func(e *domain.Employee) {
		e.Name = name
	}
}

// WithRole sets the employee role
func WithRole(role domain.Role) func(*domain.Employee) {
	return func(e *domain.Employee) {
		e.Role = role
	}
}

// WithAttendance sets the employee's attendance history
func WithAttendance(records ...domain.AttendanceRecord) func(*domain.Employee) {
	return func(e *domain.Employee) {
		e.Attendance = records
	}
}

// PresentRecord creates a present attendance record for the given day.
// Punches run 08:00 to 20:00 UTC, a full 12 hour shift.
func PresentRecord(day time.Time) domain.AttendanceRecord {
	d := domain.NewDate(day)
	punchIn := d.Add(8 * time.Hour)
	punchOut := d.Add(20 * time.Hour)

	return domain.AttendanceRecord{
		Date:             d,
		Status:           domain.StatusPresent,
		PunchIn:          &punchIn,
		PunchOut:         &punchOut,
		TotalWorkingHour: 12,
		AmbulanceNumber:  "MH 12AMB3456",
	}
}

// AbsentRecord creates an absent attendance record for the given day
func AbsentRecord(day time.Time, reason string) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		Date:   domain.NewDate(day),
		Status: domain.StatusAbsent,
		Reason: reason,
	}
}
