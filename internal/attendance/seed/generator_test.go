package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
	"github.com/ambutrack/attendance-backend/internal/attendance/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow    = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	windowStart = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
)

func fixedClock() time.Time { return fixedNow }

func newTestGenerator(randSeed int64) *seed.Generator {
	return seed.New(domain.DefaultShiftPolicy(), randSeed).WithClock(fixedClock)
}

func TestGenerateAttendance_CoversWindow(t *testing.T) {
	gen := newTestGenerator(42)

	records := gen.GenerateAttendance(domain.RoleEMT, windowStart)

	// March 1st through the 15th inclusive.
	require.Len(t, records, 15)
	assert.Equal(t, "2025-03-01", records[0].Date.String())
	assert.Equal(t, "2025-03-15", records[len(records)-1].Date.String())

	for i := 1; i < len(records); i++ {
		assert.True(t, records[i-1].Date.Before(records[i].Date.Time),
			"records must be in ascending date order")
	}
}

func TestGenerateAttendance_RecordsAreValid(t *testing.T) {
	gen := newTestGenerator(7)

	records := gen.GenerateAttendance(domain.RoleDriver, windowStart)

	for i := range records {
		rec := &records[i]
		assert.NoError(t, rec.Validate(), "record for %s", rec.Date)
		assert.NotNil(t, rec.PunchIn)
		assert.NotNil(t, rec.PunchOut)
		assert.NotEmpty(t, rec.AmbulanceNumber)
	}
}

func TestGenerateAttendance_IsDeterministic(t *testing.T) {
	a := newTestGenerator(1234).GenerateAttendance(domain.RoleEMT, windowStart)
	b := newTestGenerator(1234).GenerateAttendance(domain.RoleEMT, windowStart)

	assert.Equal(t, a, b)
}

func TestGenerateAttendance_AbsentDaysHaveZeroHours(t *testing.T) {
	gen := newTestGenerator(99)

	// A long window makes forced absences near-certain at 5%.
	longStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	records := gen.GenerateAttendance(domain.RoleEMT, longStart)

	absences := 0
	for i := range records {
		if records[i].Status != domain.StatusAbsent {
			continue
		}
		absences++
		assert.Zero(t, records[i].TotalWorkingHour)
		assert.NotEmpty(t, records[i].Reason)
	}
	assert.Greater(t, absences, 0, "expected at least one forced absence over a long window")
}

func TestGenerateEmployees_IDsAndRoles(t *testing.T) {
	gen := newTestGenerator(5)

	employees := gen.GenerateEmployees(3, "DRV", domain.RoleDriver, windowStart)

	require.Len(t, employees, 3)
	assert.Equal(t, "DRV00001", employees[0].ID)
	assert.Equal(t, "DRV00002", employees[1].ID)
	assert.Equal(t, "DRV00003", employees[2].ID)

	for _, emp := range employees {
		assert.NoError(t, emp.Validate())
		assert.Equal(t, domain.RoleDriver, emp.Role)
		assert.NotEmpty(t, emp.PhoneNumber)
	}
}

func TestGeneratePayload(t *testing.T) {
	gen := newTestGenerator(11)

	payload := gen.GeneratePayload(4, 2, windowStart)

	require.NoError(t, payload.Validate())
	assert.Len(t, payload.Drivers, 4)
	assert.Len(t, payload.EMTs, 2)
	assert.Equal(t, "MS00001", payload.EMTs[0].ID)
}

func TestSource_FetchRoster(t *testing.T) {
	gen := newTestGenerator(8)
	source := seed.NewSource(gen, 2, 3, windowStart)

	roster, err := source.FetchRoster(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, roster.Len())
	assert.NotNil(t, roster.Find("DRV00001"))
	assert.NotNil(t, roster.Find("MS00003"))
}
