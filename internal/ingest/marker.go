package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/feedkeeper/internal/domain"
)

const (
	markerFileMode = 0o644
	markerDirMode  = 0o755
)

// MarkerStore tracks the newest item id a finished pass has seen. A missing
// marker together with a missing snapshot identifies the very first
// bootstrap, the only run that also pulls the home timeline.
type MarkerStore interface {
	Load(ctx context.Context) (domain.ItemID, error)
	Save(ctx context.Context, id domain.ItemID) error
}

// FileMarkerStore keeps the marker as a single line of text.
type FileMarkerStore struct {
	path string
}

var _ MarkerStore = (*FileMarkerStore)(nil)

func NewFileMarkerStore(path string) (*FileMarkerStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("marker path is empty")
	}

	return &FileMarkerStore{path: path}, nil
}

func (s *FileMarkerStore) Load(ctx context.Context) (domain.ItemID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read marker: %w", err)
	}

	return domain.ItemID(strings.TrimSpace(string(data))), nil
}

func (s *FileMarkerStore) Save(ctx context.Context, id domain.ItemID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if id == "" {
		return errors.New("marker item id is empty")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), markerDirMode); err != nil {
		return fmt.Errorf("create marker directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(string(id)+"\n"), markerFileMode); err != nil {
		return fmt.Errorf("write marker: %w", err)
	}

	return nil
}
