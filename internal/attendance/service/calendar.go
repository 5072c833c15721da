package service

import (
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
)

// daysPerWeek is the fixed column count of the calendar grid
const daysPerWeek = 7

// Week is one Sunday-first grid row. Nil entries are padding cells before
// the first day of the month and after the last.
type Week [daysPerWeek]*domain.Date

// MonthGrid is the calendar grid for one month. It carries only dates, so
// it is independent of any employee selection: switching employees reuses
// the same grid and only re-resolves cell contents.
type MonthGrid struct {
	Anchor domain.Date
	Weeks  []Week
}

// BuildGrid builds the Sunday-first week grid for the month containing
// monthAnchor. The first week is left-padded by the weekday index of the
// month's first day and the last week is right-padded so every week holds
// exactly seven entries.
func BuildGrid(monthAnchor time.Time) *MonthGrid {
	u := monthAnchor.UTC()
	first := time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := &MonthGrid{Anchor: domain.Date{Time: first}}

	var week Week
	col := int(first.Weekday()) // 0 = Sunday
	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		d := domain.Date{Time: first.AddDate(0, 0, dayNum-1)}
		week[col] = &d
		col++
		if col == daysPerWeek {
			grid.Weeks = append(grid.Weeks, week)
			week = Week{}
			col = 0
		}
	}
	if col > 0 {
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}

// Days returns the grid's dates without padding, in ascending order
func (g *MonthGrid) Days() []domain.Date {
	var days []domain.Date
	for _, week := range g.Weeks {
		for _, d := range week {
			if d != nil {
				days = append(days, *d)
			}
		}
	}
	return days
}

// CalendarCell is one resolved grid cell. A nil Date marks padding; Record
// is nil when the employee has no attendance for the day or no employee
// is selected.
type CalendarCell struct {
	Date   *domain.Date
	Record *domain.AttendanceRecord
	Today  bool
}

// Resolve returns the employee's attendance record for the given calendar
// day, or nil when the employee is nil or has no record for that day
func Resolve(emp *domain.Employee, day time.Time) *domain.AttendanceRecord {
	if emp == nil {
		return nil
	}
	return emp.RecordOn(day)
}

// ResolveGrid projects the grid onto one employee's records. The employee
// may be nil: the grid shape is returned unchanged with every record nil.
// The today flag is a pure derivation and never affects resolution.
func ResolveGrid(grid *MonthGrid, emp *domain.Employee, today time.Time) [][]CalendarCell {
	resolved := make([][]CalendarCell, len(grid.Weeks))
	for w, week := range grid.Weeks {
		cells := make([]CalendarCell, daysPerWeek)
		for c, d := range week {
			if d == nil {
				continue
			}
			cells[c] = CalendarCell{
				Date:   d,
				Record: Resolve(emp, d.Time),
				Today:  domain.SameDay(d.Time, today),
			}
		}
		resolved[w] = cells
	}
	return resolved
}
