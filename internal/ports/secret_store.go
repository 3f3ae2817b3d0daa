package ports

import "context"

// SecretStore holds profile secrets: login passwords and inline cookie
// payloads, keyed by opaque "profile/name" references.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
