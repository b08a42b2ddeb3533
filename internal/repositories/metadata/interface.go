// Package metadata is the popup's persistent key-value slot: the CLI
// analogue of extension-scoped storage. It holds the session token, the
// selected profile id, and the legacy session fields from earlier builds.
package metadata

import "context"

// Repository stores opaque values by key. Get returns (nil, nil) when the
// key is absent. Update runs fn against a transactional view when the
// backing store supports one; multi-key writes inside fn land atomically.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
	Update(ctx context.Context, fn func(Repository) error) error
}
