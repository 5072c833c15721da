package service_test

import (
	"testing"
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePreset(t *testing.T) {
	// Wednesday, mid-month.
	today := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		preset    string
		wantStart string
		wantEnd   string
	}{
		{service.PresetToday, "2025-03-12", "2025-03-12"},
		{service.PresetYesterday, "2025-03-11", "2025-03-11"},
		{service.PresetLast7Days, "2025-03-06", "2025-03-12"},
		{service.PresetLast30Days, "2025-02-11", "2025-03-12"},
		{service.PresetThisMonth, "2025-03-01", "2025-03-31"},
		{service.PresetLastMonth, "2025-02-01", "2025-02-28"},
		{service.PresetThisWeek, "2025-03-09", "2025-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			start, end, err := service.ResolvePreset(tt.preset, today)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start.Format("2006-01-02"))
			assert.Equal(t, tt.wantEnd, end.Format("2006-01-02"))
		})
	}
}

func TestResolvePreset_WeekStartsSunday(t *testing.T) {
	// A Sunday is its own week start.
	sunday := time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC)

	start, end, err := service.ResolvePreset(service.PresetThisWeek, sunday)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", start.Format("2006-01-02"))
	assert.Equal(t, "2025-03-15", end.Format("2006-01-02"))
}

func TestResolvePreset_Unknown(t *testing.T) {
	_, _, err := service.ResolvePreset("fortnight", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}
