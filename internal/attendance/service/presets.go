package service

import (
	"fmt"
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
)

// Named preset ranges offered by the bulk view's range picker
const (
	PresetToday      = "today"
	PresetYesterday  = "yesterday"
	PresetLast7Days  = "last_7_days"
	PresetLast30Days = "last_30_days"
	PresetThisMonth  = "this_month"
	PresetLastMonth  = "last_month"
	PresetThisWeek   = "this_week"
)

// ResolvePreset maps a preset name to its concrete inclusive date range,
// relative to the given day. Weeks run Sunday through Saturday, matching
// the calendar grid.
func ResolvePreset(name string, today time.Time) (time.Time, time.Time, error) {
	day := domain.NewDate(today)

	switch name {
	case PresetToday:
		return day.Time, day.Time, nil
	case PresetYesterday:
		y := day.AddDate(0, 0, -1)
		return y, y, nil
	case PresetLast7Days:
		return day.AddDate(0, 0, -6), day.Time, nil
	case PresetLast30Days:
		return day.AddDate(0, 0, -29), day.Time, nil
	case PresetThisMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), nil
	case PresetLastMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		return start, start.AddDate(0, 1, -1), nil
	case PresetThisWeek:
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return start, start.AddDate(0, 0, 6), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown preset %q", name)
	}
}
