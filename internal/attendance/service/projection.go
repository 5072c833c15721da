package service

import (
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
)

// ProjectedDay pairs one enumerated day with the employee's record for it
type ProjectedDay struct {
	Date   domain.Date
	Record *domain.AttendanceRecord
}

// EmployeeProjection is one bulk-view row: an employee and their record
// (or nil) for every day of the projected range
type EmployeeProjection struct {
	Employee *domain.Employee
	Days     []ProjectedDay
}

// EnumerateRange lists every calendar day in [start, end] inclusive.
// Bounds are normalized to date-only before enumeration, so the instants'
// time-of-day never affects inclusion. An unset bound or an inverted range
// yields no days.
func EnumerateRange(start, end time.Time) []domain.Date {
	if start.IsZero() || end.IsZero() {
		return nil
	}

	from := domain.NewDate(start)
	to := domain.NewDate(end)
	if from.After(to.Time) {
		return nil
	}

	var days []domain.Date
	for d := from; !d.After(to.Time); d = d.Next() {
		days = append(days, d)
	}
	return days
}

// Project resolves every employee's attendance over the enumerated range.
// Each row shares the same day sequence; filtering the employee set
// beforehand never changes it. An empty range yields an empty result.
func Project(start, end time.Time, employees []*domain.Employee) []EmployeeProjection {
	days := EnumerateRange(start, end)
	if len(days) == 0 {
		return nil
	}

	rows := make([]EmployeeProjection, 0, len(employees))
	for _, emp := range employees {
		row := EmployeeProjection{
			Employee: emp,
			Days:     make([]ProjectedDay, 0, len(days)),
		}
		for _, d := range days {
			row.Days = append(row.Days, ProjectedDay{
				Date:   d,
				Record: Resolve(emp, d.Time),
			})
		}
		rows = append(rows, row)
	}
	return rows
}
