package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/ambutrack/attendance-backend/internal/attendance/domain"
)

// FileSource loads a roster payload from a JSON file on disk. Useful for
// local development and for replaying exported payloads.
type FileSource struct {
	path string
}

// NewFileSource creates a new file-backed roster source
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// FetchRoster reads and decodes the payload file
func (s *FileSource) FetchRoster(ctx context.Context) (*domain.Roster, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	payload, err := domain.DecodePayload(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode roster file: %w", err)
	}

	return domain.NewRoster(payload), nil
}
