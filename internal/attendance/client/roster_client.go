package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
	"github.com/ambutrack/attendance-backend/pkg/logger"
)

// RosterClient fetches the two-collection attendance payload from the
// upstream data source over HTTP. The upstream is an opaque collaborator:
// only the payload shape is contractual.
type RosterClient struct {
	url        string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewRosterClient creates a roster client for the given payload URL
func NewRosterClient(url string, timeout time.Duration, log *logger.Logger) *RosterClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RosterClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log.WithComponent("roster-client"),
	}
}

// FetchRoster retrieves, decodes and validates the payload
func (c *RosterClient) FetchRoster(ctx context.Context) (*domain.Roster, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", c.url).Msg("fetching attendance payload")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance payload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("attendance payload fetch failed with status %d", resp.StatusCode)
	}

	payload, err := domain.DecodePayload(resp.Body)
	if err != nil {
		return nil, err
	}

	roster := domain.NewRoster(payload)
	c.logger.Info().
		Int("drivers", len(payload.Drivers)).
		Int("emts", len(payload.EMTs)).
		Msg("attendance payload fetched")

	return roster, nil
}
