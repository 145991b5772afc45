package uow

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"online-store/internal/domain/store"
	"online-store/internal/usecase/shared"
)

// slowHold is the lock hold time above which a unit of work is logged.
const slowHold = 100 * time.Millisecond

type MemoryUoW struct {
	mu    sync.RWMutex
	store *store.OnlineStore
}

func NewMemoryUoW(st *store.OnlineStore) shared.UnitOfWork {
	return &MemoryUoW{store: st}
}

// Writers exclude each other and all readers, so a purchase's stock check and
// decrement cannot interleave with another purchase.
func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, st *store.OnlineStore) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.run(ctx, "write", fn)
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, st *store.OnlineStore) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.run(ctx, "read", fn)
}

func (u *MemoryUoW) run(ctx context.Context, mode string, fn func(ctx context.Context, st *store.OnlineStore) error) error {
	start := time.Now()
	err := fn(ctx, u.store)
	if held := time.Since(start); held > slowHold {
		slog.Warn("slow unit of work", "mode", mode, "held_ms", held.Milliseconds())
	}
	return err
}
