package ports

import (
	"context"

	"github.com/bnema/feedkeeper/internal/domain"
)

type SearchMode string

const (
	SearchLatest SearchMode = "latest"
	SearchTop    SearchMode = "top"
)

type SearchPage struct {
	Items      []domain.Item
	NextCursor string
}

// Feed is the remote social-feed API surface. Implementations perform no
// pacing or retries of their own; every call is expected to arrive through
// the dispatch queue.
type Feed interface {
	Login(ctx context.Context, handle, password, contact string) error
	SessionActive(ctx context.Context) (bool, error)
	Cookies(ctx context.Context) ([]domain.Cookie, error)
	SetCookies(ctx context.Context, cookies []domain.Cookie) error
	Item(ctx context.Context, id domain.ItemID) (domain.Item, error)
	Timeline(ctx context.Context, count int, exclude []domain.ItemID) ([]domain.Item, error)
	Search(ctx context.Context, query string, limit int, mode SearchMode, cursor string) (SearchPage, error)
	ResolveUserID(ctx context.Context, handle string) (domain.UserID, error)
}
