package seed

import (
	"context"
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
)

// Source adapts the generator to the service's RosterSource. It is the
// default roster source in development.
type Source struct {
	gen         *Generator
	driverCount int
	emtCount    int
	windowStart time.Time
}

// NewSource creates a seed roster source
func NewSource(gen *Generator, driverCount, emtCount int, windowStart time.Time) *Source {
	return &Source{
		gen:         gen,
		driverCount: driverCount,
		emtCount:    emtCount,
		windowStart: windowStart,
	}
}

// FetchRoster generates a fresh synthetic roster
func (s *Source) FetchRoster(ctx context.Context) (*domain.Roster, error) {
	payload := s.gen.GeneratePayload(s.driverCount, s.emtCount, s.windowStart)
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return domain.NewRoster(payload), nil
}
