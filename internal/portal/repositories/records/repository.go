// Package records provides the key-value area backing the portal's
// collections. Each key holds one serialized collection as an opaque blob.
package records

import "context"

// Repository is a minimal persistent key-value contract.
//
// Get returns nil (not an error) for an absent key so callers can
// distinguish "never initialized" from a real failure.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	List(ctx context.Context) (map[string][]byte, error)
}
