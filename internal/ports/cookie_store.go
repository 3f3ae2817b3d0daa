package ports

import (
	"context"

	"github.com/bnema/feedkeeper/internal/domain"
)

// CookieStore persists session cookies between runs. Load returns
// domain.ErrNoStoredCookies when nothing has been saved yet.
type CookieStore interface {
	Load(ctx context.Context) ([]domain.Cookie, error)
	Save(ctx context.Context, cookies []domain.Cookie) error
}
