package ports

import "context"

// StateStore is a small durable key-value surface for client-side state such
// as persisted session cookies. A missing key reads back as an empty string.
type StateStore interface {
	GetState(ctx context.Context, key string) (string, error)
	SetState(ctx context.Context, key, value string) error
	DeleteState(ctx context.Context, key string) error
}
