package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/feedkeeper/internal/adapters/cookies"
	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/bnema/feedkeeper/internal/ports"
)

// Store keeps session cookies in the durable state table, next to the
// ingested records. This is the primary backend: cookies then live and
// travel with the record database.
type Store struct {
	states  ports.StateStore
	profile domain.ProfileID
}

var _ ports.CookieStore = (*Store)(nil)

func NewStore(states ports.StateStore, profile domain.ProfileID) (*Store, error) {
	if states == nil {
		return nil, errors.New("state store is nil")
	}
	if profile == "" {
		return nil, errors.New("profile id is empty")
	}

	return &Store{states: states, profile: profile}, nil
}

func (s *Store) Save(ctx context.Context, sessionCookies []domain.Cookie) error {
	data, err := cookies.Encode(sessionCookies)
	if err != nil {
		return err
	}

	if err := s.states.SetState(ctx, s.key(), string(data)); err != nil {
		return fmt.Errorf("save cookies for %q: %w", s.profile, err)
	}

	return nil
}

func (s *Store) Load(ctx context.Context) ([]domain.Cookie, error) {
	raw, err := s.states.GetState(ctx, s.key())
	if err != nil {
		return nil, fmt.Errorf("load cookies for %q: %w", s.profile, err)
	}
	if raw == "" {
		return nil, domain.ErrNoStoredCookies
	}

	loaded, err := cookies.Decode([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("cookies for %q: %w", s.profile, err)
	}

	return loaded, nil
}

func (s *Store) key() string {
	return fmt.Sprintf("credentials/%s/cookies", s.profile)
}
