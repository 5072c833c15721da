package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
	"github.com/ambutrack/attendance-backend/internal/attendance/handler"
	"github.com/ambutrack/attendance-backend/internal/attendance/service"
	"github.com/ambutrack/attendance-backend/pkg/logger"
	"github.com/ambutrack/attendance-backend/pkg/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	roster *domain.Roster
}

func (s *staticSource) FetchRoster(ctx context.Context) (*domain.Roster, error) {
	return s.roster, nil
}

func newTestServer(t *testing.T, roster *domain.Roster) *httptest.Server {
	t.Helper()

	log := logger.New("test", "test")
	svc := service.NewAttendanceService(&staticSource{roster: roster}, log)
	svc.Load(context.Background())

	h := handler.NewAttendanceHandler(svc, log)

	r := chi.NewRouter()
	r.Route("/api/v1/attendance", func(r chi.Router) {
		r.Route("/roster", func(r chi.Router) {
			r.Get("/", h.ListRoster)
			r.Get("/{id}", h.GetEmployee)
			r.Get("/{id}/calendar", h.MonthCalendar)
		})
		r.Get("/bulk", h.Bulk)
		r.Get("/payload", h.Payload)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func fixedRoster() *domain.Roster {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	fixtures := testutil.NewFixtureFactory()
	return domain.NewRosterFromEmployees([]*domain.Employee{
		fixtures.Employee(
			testutil.WithName("Aarav Sharma"),
			testutil.WithAttendance(testutil.PresentRecord(day)),
		),
		fixtures.EMT(
			testutil.WithName("Diya Patel"),
			testutil.WithAttendance(testutil.AbsentRecord(day, "Medical issue")),
		),
	})
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Total int `json:"total"`
		Days  int `json:"days"`
	} `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func getJSON(t *testing.T, url string, wantStatus int) envelope {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, wantStatus, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestListRoster(t *testing.T) {
	srv := newTestServer(t, fixedRoster())

	t.Run("lists everyone", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/roster", http.StatusOK)
		require.True(t, env.Success)
		require.NotNil(t, env.Meta)
		assert.Equal(t, 2, env.Meta.Total)

		var employees []map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &employees))
		require.Len(t, employees, 2)
		assert.Equal(t, "Aarav Sharma", employees[0]["name"])
		assert.Equal(t, "driver", employees[0]["userRole"])

		// List view carries no attendance history.
		_, hasAttendance := employees[0]["attendance"]
		assert.False(t, hasAttendance)
	})

	t.Run("filters by name and role", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/roster?name=diya&role=emt", http.StatusOK)
		assert.Equal(t, 1, env.Meta.Total)
	})

	t.Run("non-matching filter yields empty list", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/roster?name=zzz", http.StatusOK)
		assert.Equal(t, 0, env.Meta.Total)
	})
}

func TestGetEmployee(t *testing.T) {
	srv := newTestServer(t, fixedRoster())

	t.Run("returns the full employee", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/roster/DRV00001", http.StatusOK)

		var emp domain.Employee
		require.NoError(t, json.Unmarshal(env.Data, &emp))
		assert.Equal(t, "Aarav Sharma", emp.Name)
		require.Len(t, emp.Attendance, 1)
		assert.Equal(t, domain.StatusPresent, emp.Attendance[0].Status)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/roster/DRV99999", http.StatusNotFound)
		require.NotNil(t, env.Error)
		assert.False(t, env.Success)
	})
}

func TestMonthCalendar(t *testing.T) {
	srv := newTestServer(t, fixedRoster())

	t.Run("resolves the requested month", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/roster/DRV00001/calendar?month=2025-03", http.StatusOK)

		var cal handler.MonthCalendarResponse
		require.NoError(t, json.Unmarshal(env.Data, &cal))

		assert.Equal(t, "2025-03", cal.Month)
		require.NotNil(t, cal.Employee)
		assert.Equal(t, "DRV00001", cal.Employee.ID)

		// March 2025 starts on a Saturday: six leading padding cells.
		require.NotEmpty(t, cal.Weeks)
		for col := 0; col < 6; col++ {
			assert.Nil(t, cal.Weeks[0][col])
		}
		require.NotNil(t, cal.Weeks[0][6])
		assert.Equal(t, "2025-03-01", cal.Weeks[0][6].Date)

		var resolved *handler.CalendarCell
		for _, week := range cal.Weeks {
			for _, cell := range week {
				if cell != nil && cell.Record != nil {
					resolved = cell
				}
			}
		}
		require.NotNil(t, resolved)
		assert.Equal(t, "2025-03-10", resolved.Date)
		assert.Equal(t, "08:00 AM", resolved.Record.PunchIn)
		assert.Equal(t, "08:00 PM", resolved.Record.PunchOut)
	})

	t.Run("unknown employee still renders the grid", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/roster/nobody/calendar?month=2025-03", http.StatusOK)

		var cal handler.MonthCalendarResponse
		require.NoError(t, json.Unmarshal(env.Data, &cal))
		assert.Nil(t, cal.Employee)
		require.NotEmpty(t, cal.Weeks)

		for _, week := range cal.Weeks {
			for _, cell := range week {
				if cell != nil {
					assert.Nil(t, cell.Record)
				}
			}
		}
	})

	t.Run("rejects a malformed month", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/roster/DRV00001/calendar?month=March", http.StatusBadRequest)
		require.NotNil(t, env.Error)
	})
}

func TestBulk(t *testing.T) {
	srv := newTestServer(t, fixedRoster())

	t.Run("explicit range", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/bulk?start_date=2025-03-09&end_date=2025-03-11", http.StatusOK)

		require.NotNil(t, env.Meta)
		assert.Equal(t, 2, env.Meta.Total)
		assert.Equal(t, 3, env.Meta.Days)

		var rows []handler.BulkRow
		require.NoError(t, json.Unmarshal(env.Data, &rows))
		require.Len(t, rows, 2)
		require.Len(t, rows[0].Days, 3)

		require.NotNil(t, rows[0].Days[1].Record)
		assert.Equal(t, domain.StatusPresent, rows[0].Days[1].Record.Status)
		assert.Nil(t, rows[0].Days[0].Record)

		// The absent record keeps the dash placeholder for its punches.
		require.NotNil(t, rows[1].Days[1].Record)
		assert.Equal(t, "-", rows[1].Days[1].Record.PunchIn)
	})

	t.Run("role filter narrows rows but not days", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/bulk?start_date=2025-03-09&end_date=2025-03-11&role=emt", http.StatusOK)
		assert.Equal(t, 1, env.Meta.Total)
		assert.Equal(t, 3, env.Meta.Days)
	})

	t.Run("inverted range yields empty projection", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/bulk?start_date=2025-03-11&end_date=2025-03-09", http.StatusOK)
		assert.Equal(t, 0, env.Meta.Total)
	})

	t.Run("missing range yields empty projection", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/bulk", http.StatusOK)
		assert.Equal(t, 0, env.Meta.Total)
	})

	t.Run("preset range", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/bulk?preset=last_7_days", http.StatusOK)
		assert.Equal(t, 2, env.Meta.Total)
		assert.Equal(t, 7, env.Meta.Days)
	})

	t.Run("rejects unknown preset", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/bulk?preset=fortnight", http.StatusBadRequest)
		require.NotNil(t, env.Error)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		env := getJSON(t, srv.URL+"/api/v1/attendance/bulk?start_date=03-09-2025", http.StatusBadRequest)
		require.NotNil(t, env.Error)
	})
}

func TestPayload(t *testing.T) {
	srv := newTestServer(t, fixedRoster())

	env := getJSON(t, srv.URL+"/api/v1/attendance/payload", http.StatusOK)

	var payload domain.Payload
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.Len(t, payload.Drivers, 1)
	require.Len(t, payload.EMTs, 1)
	assert.Equal(t, "MS00002", payload.EMTs[0].ID)
}
