package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/bnema/feedkeeper/internal/ports"
)

// Store layers two cookie backends. Loads try the primary and fall back
// on any failure except cancellation; saves that fail on the primary are
// retried on the fallback so a session survives a flaky backend.
type Store struct {
	primary  ports.CookieStore
	fallback ports.CookieStore
}

var _ ports.CookieStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary cookie store is nil")
	errNilFallbackStore = errors.New("fallback cookie store is nil")
)

func NewStore(primary ports.CookieStore, fallback ports.CookieStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func (s *Store) Save(ctx context.Context, cookies []domain.Cookie) error {
	err := s.primary.Save(ctx, cookies)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Save(ctx, cookies)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend save failed: %w; fallback backend save failed: %w", err, fallbackErr)
}

func (s *Store) Load(ctx context.Context) ([]domain.Cookie, error) {
	cookies, err := s.primary.Load(ctx)
	if err == nil {
		return cookies, nil
	}
	if shouldSkipFallback(err) {
		return nil, err
	}

	fallbackCookies, fallbackErr := s.fallback.Load(ctx)
	if fallbackErr == nil {
		return fallbackCookies, nil
	}
	if errors.Is(err, domain.ErrNoStoredCookies) && errors.Is(fallbackErr, domain.ErrNoStoredCookies) {
		return nil, domain.ErrNoStoredCookies
	}

	return nil, fmt.Errorf("primary backend load failed: %w; fallback backend load failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
