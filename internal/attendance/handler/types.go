package handler

import (
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
	"github.com/ambutrack/attendance-backend/internal/attendance/service"
)

// EmployeeSummary is the roster list view of an employee, without the
// attendance history
type EmployeeSummary struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	PhoneNumber string      `json:"phoneNumber,omitempty"`
	Role        domain.Role `json:"userRole"`
}

// RecordView is one attendance record rendered for display. Punch times
// are formatted as 12-hour clock strings with "-" standing in for a
// missing punch.
type RecordView struct {
	Status           domain.Status `json:"status"`
	Reason           string        `json:"reason,omitempty"`
	PunchIn          string        `json:"punchIn"`
	PunchOut         string        `json:"punchOut"`
	TotalWorkingHour float64       `json:"totalWorkingHour"`
	AmbulanceNumber  string        `json:"ambulanceNumber,omitempty"`
}

// CalendarCell is one rendered grid cell. Padding cells are serialized as
// JSON null so the client keeps the seven-column week shape.
type CalendarCell struct {
	Date   string      `json:"date"`
	Today  bool        `json:"today"`
	Record *RecordView `json:"record"`
}

// MonthCalendarResponse is the resolved month grid for one employee
type MonthCalendarResponse struct {
	Month    string            `json:"month"`
	Employee *EmployeeSummary  `json:"employee"`
	Weeks    [][]*CalendarCell `json:"weeks"`
}

// BulkDay pairs one projected day with the employee's record for it
type BulkDay struct {
	Date   string      `json:"date"`
	Record *RecordView `json:"record"`
}

// BulkRow is one row of the bulk range view
type BulkRow struct {
	Employee EmployeeSummary `json:"employee"`
	Days     []BulkDay       `json:"days"`
}

func toRecordView(rec *domain.AttendanceRecord) *RecordView {
	if rec == nil {
		return nil
	}
	return &RecordView{
		Status:           rec.Status,
		Reason:           rec.Reason,
		PunchIn:          formatPunch(rec.PunchIn),
		PunchOut:         formatPunch(rec.PunchOut),
		TotalWorkingHour: rec.TotalWorkingHour,
		AmbulanceNumber:  rec.AmbulanceNumber,
	}
}

func formatPunch(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(punchLayout)
}

func toWeeks(cells [][]service.CalendarCell) [][]*CalendarCell {
	weeks := make([][]*CalendarCell, len(cells))
	for w, week := range cells {
		row := make([]*CalendarCell, len(week))
		for c, cell := range week {
			if cell.Date == nil {
				continue
			}
			row[c] = &CalendarCell{
				Date:   cell.Date.String(),
				Today:  cell.Today,
				Record: toRecordView(cell.Record),
			}
		}
		weeks[w] = row
	}
	return weeks
}

func toBulkRow(p service.EmployeeProjection) BulkRow {
	days := make([]BulkDay, 0, len(p.Days))
	for _, d := range p.Days {
		days = append(days, BulkDay{
			Date:   d.Date.String(),
			Record: toRecordView(d.Record),
		})
	}
	return BulkRow{
		Employee: toSummary(p.Employee),
		Days:     days,
	}
}
