package handler

import (
	"net/http"
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
	"github.com/ambutrack/attendance-backend/internal/attendance/service"
	"github.com/ambutrack/attendance-backend/pkg/errors"
	"github.com/ambutrack/attendance-backend/pkg/httputil"
	"github.com/ambutrack/attendance-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
	punchLayout = "03:04 PM"
)

// AttendanceHandler handles attendance endpoints
type AttendanceHandler struct {
	service *service.AttendanceService
	logger  *logger.Logger
	now     func() time.Time
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(svc *service.AttendanceService, log *logger.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		service: svc,
		logger:  log,
		now:     time.Now,
	}
}

// ============================================================================
// ROSTER
// ============================================================================

// ListRoster lists employees, optionally filtered by name fragment and role
func (h *AttendanceHandler) ListRoster(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	role := r.URL.Query().Get("role")

	employees := h.service.FilterRoster(name, role)

	summaries := make([]EmployeeSummary, 0, len(employees))
	for _, emp := range employees {
		summaries = append(summaries, toSummary(emp))
	}

	httputil.JSONWithMeta(w, http.StatusOK, summaries, &httputil.Meta{
		Total: len(summaries),
	})
}

// GetEmployee returns one employee with their full attendance history
func (h *AttendanceHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp := h.service.Roster().Find(id)
	if emp == nil {
		httputil.Error(w, errors.NotFound("employee"))
		return
	}

	httputil.JSON(w, http.StatusOK, emp)
}

// ============================================================================
// MONTH CALENDAR
// ============================================================================

// MonthCalendar returns the resolved calendar grid for one employee. The
// month defaults to the current month; an unknown employee id still yields
// the full grid with empty cells so the calendar always renders.
func (h *AttendanceHandler) MonthCalendar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	anchor := h.now().UTC()
	if month := r.URL.Query().Get("month"); month != "" {
		parsed, err := time.Parse(monthLayout, month)
		if err != nil {
			httputil.Error(w, errors.BadRequest("invalid month format, expected YYYY-MM"))
			return
		}
		anchor = parsed
	}

	grid, cells := h.service.MonthView(id, anchor, h.now().UTC())

	var employee *EmployeeSummary
	if emp := h.service.Roster().Find(id); emp != nil {
		s := toSummary(emp)
		employee = &s
	}

	httputil.JSON(w, http.StatusOK, MonthCalendarResponse{
		Month:    grid.Anchor.Format(monthLayout),
		Employee: employee,
		Weeks:    toWeeks(cells),
	})
}

// ============================================================================
// BULK RANGE VIEW
// ============================================================================

type bulkQuery struct {
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
	Preset    string `validate:"omitempty,oneof=today yesterday last_7_days last_30_days this_month last_month this_week"`
}

// Bulk projects attendance for the filtered roster over a date range.
// The range comes from a named preset or an explicit start_date/end_date
// pair; an unset or inverted range yields an empty projection.
func (h *AttendanceHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	q := bulkQuery{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Preset:    r.URL.Query().Get("preset"),
	}
	if err := httputil.Validate(q); err != nil {
		httputil.Error(w, err)
		return
	}

	var start, end time.Time
	if q.Preset != "" {
		var err error
		start, end, err = service.ResolvePreset(q.Preset, h.now().UTC())
		if err != nil {
			httputil.Error(w, errors.BadRequest(err.Error()))
			return
		}
	} else {
		if q.StartDate != "" {
			start, _ = time.Parse(dateLayout, q.StartDate)
		}
		if q.EndDate != "" {
			end, _ = time.Parse(dateLayout, q.EndDate)
		}
	}

	name := r.URL.Query().Get("name")
	role := r.URL.Query().Get("role")

	projections := h.service.ProjectRange(start, end, name, role)

	rows := make([]BulkRow, 0, len(projections))
	days := 0
	for _, p := range projections {
		rows = append(rows, toBulkRow(p))
		days = len(p.Days)
	}

	httputil.JSONWithMeta(w, http.StatusOK, rows, &httputil.Meta{
		Total: len(rows),
		Days:  days,
	})
}

// ============================================================================
// PAYLOAD
// ============================================================================

// Payload returns the roster in the upstream two-collection shape
func (h *AttendanceHandler) Payload(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.service.Roster().Payload())
}

func toSummary(emp *domain.Employee) EmployeeSummary {
	return EmployeeSummary{
		ID:          emp.ID,
		Name:        emp.Name,
		PhoneNumber: emp.PhoneNumber,
		Role:        emp.Role,
	}
}
