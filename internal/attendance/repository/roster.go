package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
	"github.com/ambutrack/attendance-backend/pkg/database"
)

// RosterRepository loads the roster from Postgres. The service is a pure
// read model, so the repository only ever queries; attendance rows are
// written by whatever system captures punches.
type RosterRepository struct {
	db *database.DB
}

// NewRosterRepository creates a new roster repository
func NewRosterRepository(db *database.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

type employeeRow struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	PhoneNumber sql.NullString `db:"phone_number"`
	Role        string         `db:"role"`
}

type attendanceRow struct {
	EmployeeID        string         `db:"employee_id"`
	EntryDate         time.Time      `db:"entry_date"`
	Status            string         `db:"status"`
	Reason            sql.NullString `db:"reason"`
	PunchIn           sql.NullTime   `db:"punch_in"`
	PunchOut          sql.NullTime   `db:"punch_out"`
	TotalWorkingHours float64        `db:"total_working_hours"`
	AmbulanceNumber   sql.NullString `db:"ambulance_number"`
}

const selectEmployeesQuery = `
	SELECT id, name, phone_number, role
	FROM employees
	ORDER BY role, id
`

const selectAttendanceQuery = `
	SELECT employee_id, entry_date, status, reason,
	       punch_in, punch_out, total_working_hours, ambulance_number
	FROM attendance_records
	ORDER BY employee_id, entry_date
`

// FetchRoster loads all employees with their full attendance histories
func (r *RosterRepository) FetchRoster(ctx context.Context) (*domain.Roster, error) {
	var empRows []employeeRow
	if err := r.db.SelectContext(ctx, &empRows, selectEmployeesQuery); err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	var attRows []attendanceRow
	if err := r.db.SelectContext(ctx, &attRows, selectAttendanceQuery); err != nil {
		return nil, fmt.Errorf("failed to load attendance records: %w", err)
	}

	byEmployee := make(map[string][]domain.AttendanceRecord, len(empRows))
	for _, row := range attRows {
		byEmployee[row.EmployeeID] = append(byEmployee[row.EmployeeID], toRecord(row))
	}

	employees := make([]*domain.Employee, 0, len(empRows))
	for _, row := range empRows {
		emp := &domain.Employee{
			ID:          row.ID,
			Name:        row.Name,
			PhoneNumber: row.PhoneNumber.String,
			Role:        domain.Role(row.Role),
			Attendance:  byEmployee[row.ID],
		}
		if err := emp.Validate(); err != nil {
			return nil, fmt.Errorf("invalid roster data: %w", err)
		}
		employees = append(employees, emp)
	}

	return domain.NewRosterFromEmployees(employees), nil
}

func toRecord(row attendanceRow) domain.AttendanceRecord {
	rec := domain.AttendanceRecord{
		Date:             domain.NewDate(row.EntryDate),
		Status:           domain.Status(row.Status),
		Reason:           row.Reason.String,
		TotalWorkingHour: row.TotalWorkingHours,
		AmbulanceNumber:  row.AmbulanceNumber.String,
	}
	if row.PunchIn.Valid {
		t := row.PunchIn.Time.UTC()
		rec.PunchIn = &t
	}
	if row.PunchOut.Valid {
		t := row.PunchOut.Time.UTC()
		rec.PunchOut = &t
	}
	return rec
}
