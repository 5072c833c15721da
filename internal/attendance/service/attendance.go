package service

import (
	"context"
	"sync"
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
	"github.com/ambutrack/attendance-backend/pkg/logger"
)

// RosterSource produces the roster from some external collaborator: the
// seed generator, a payload file, the upstream HTTP endpoint or Postgres.
type RosterSource interface {
	FetchRoster(ctx context.Context) (*domain.Roster, error)
}

// AttendanceService owns the loaded roster and exposes the query surface
// the dashboard consumes: roster filtering, the month grid and the bulk
// range projection. The roster is immutable between loads; the only
// guarded state is the roster swap itself and the per-month grid cache.
type AttendanceService struct {
	source RosterSource
	logger *logger.Logger

	mu     sync.RWMutex
	roster *domain.Roster
	grids  map[string]*MonthGrid
}

// NewAttendanceService creates the service with an empty roster. Callers
// are expected to Load before serving, but every query degrades cleanly
// against the empty roster.
func NewAttendanceService(source RosterSource, log *logger.Logger) *AttendanceService {
	return &AttendanceService{
		source: source,
		logger: log.WithComponent("attendance-service"),
		roster: domain.EmptyRoster(),
		grids:  make(map[string]*MonthGrid),
	}
}

// Load fetches the roster from the configured source. A fetch failure is
// logged and swallowed: the service keeps serving the empty roster so the
// dashboard degrades to "no data" instead of failing the whole view.
func (s *AttendanceService) Load(ctx context.Context) {
	roster, err := s.source.FetchRoster(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("roster fetch failed, continuing with empty roster")
		return
	}

	s.mu.Lock()
	s.roster = roster
	s.mu.Unlock()

	s.logger.Info().
		Str("load_id", roster.LoadID).
		Int("employees", roster.Len()).
		Msg("roster loaded")
}

// Roster returns the current roster snapshot
func (s *AttendanceService) Roster() *domain.Roster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster
}

// FilterRoster narrows the roster by name fragment and role
func (s *AttendanceService) FilterRoster(name, role string) []*domain.Employee {
	return s.Roster().Filter(name, role)
}

// maxCachedGrids bounds the per-month grid cache. Dashboards only ever
// page through a couple of years; rebuilding an evicted month is O(days).
const maxCachedGrids = 24

// Grid returns the month grid for the month containing anchor. Grids hold
// only dates, so one grid per month is built and reused across employee
// selections.
func (s *AttendanceService) Grid(anchor time.Time) *MonthGrid {
	key := anchor.UTC().Format("2006-01")

	s.mu.RLock()
	grid, ok := s.grids[key]
	s.mu.RUnlock()
	if ok {
		return grid
	}

	grid = BuildGrid(anchor)

	s.mu.Lock()
	if len(s.grids) >= maxCachedGrids {
		s.grids = make(map[string]*MonthGrid, maxCachedGrids)
	}
	s.grids[key] = grid
	s.mu.Unlock()
	return grid
}

// MonthView resolves the month grid for one employee. A missing or empty
// employee id yields the full grid with every record nil.
func (s *AttendanceService) MonthView(employeeID string, anchor, today time.Time) (*MonthGrid, [][]CalendarCell) {
	grid := s.Grid(anchor)
	emp := s.Roster().Find(employeeID)
	return grid, ResolveGrid(grid, emp, today)
}

// ProjectRange resolves the bulk view for the filtered roster over the
// inclusive date range
func (s *AttendanceService) ProjectRange(start, end time.Time, name, role string) []EmployeeProjection {
	return Project(start, end, s.FilterRoster(name, role))
}
