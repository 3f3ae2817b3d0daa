package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/feedkeeper/internal/adapters/cookies"
	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/bnema/feedkeeper/internal/ports"
)

const (
	storeDirMode   = 0o700
	cookieFileMode = 0o600
)

// Store persists one profile's session cookies as a JSON file under root.
type Store struct {
	root    string
	profile domain.ProfileID
	mu      sync.RWMutex
}

var _ ports.CookieStore = (*Store)(nil)

func NewStore(root string, profile domain.ProfileID) *Store {
	return &Store{root: filepath.Clean(root), profile: profile}
}

func (s *Store) Save(ctx context.Context, sessionCookies []domain.Cookie) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path()
	if err != nil {
		return err
	}

	data, err := cookies.Encode(sessionCookies)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
		return fmt.Errorf("create cookie directory: %w", err)
	}

	if err := os.WriteFile(path, data, cookieFileMode); err != nil {
		return fmt.Errorf("write cookies for %q: %w", s.profile, err)
	}

	return nil
}

func (s *Store) Load(ctx context.Context) ([]domain.Cookie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path()
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNoStoredCookies
		}

		return nil, fmt.Errorf("read cookies for %q: %w", s.profile, err)
	}

	loaded, err := cookies.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("cookies for %q: %w", s.profile, err)
	}

	return loaded, nil
}

func (s *Store) path() (string, error) {
	trimmed := strings.TrimSpace(string(s.profile))
	if trimmed == "" {
		return "", errors.New("profile id is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") || cleaned == "." {
		return "", fmt.Errorf("invalid profile id %q", s.profile)
	}

	return filepath.Join(s.root, cleaned+".json"), nil
}
