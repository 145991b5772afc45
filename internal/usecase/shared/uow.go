package shared

import (
	"context"

	"online-store/internal/domain/store"
)

// UnitOfWork is the single point of synchronization for the storefront.
// Domain types are not safe for concurrent use; every caller that may run
// concurrently reaches the store through here.
type UnitOfWork interface {
	// Within: exclusive access for operations that mutate catalog or customers
	Within(ctx context.Context, fn func(ctx context.Context, st *store.OnlineStore) error) error
	// WithinReadOnly: shared access for consistent multi-entity reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, st *store.OnlineStore) error) error
}
