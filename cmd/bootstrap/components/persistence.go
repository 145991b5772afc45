package components

import (
	"log/slog"

	"online-store/internal/domain/store"
	"online-store/internal/infra/seed"
	"online-store/internal/infra/uow"
	"online-store/internal/pkg/config"

	"go.uber.org/fx"
)

// The store lives for the whole process; nothing survives a restart.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewOnlineStore,
		uow.NewMemoryUoW,
	),
)

func NewOnlineStore(cfg config.StoreConfig, logger *slog.Logger) *store.OnlineStore {
	st := store.NewOnlineStore()
	if cfg.SeedCatalog {
		seed.Catalog(st, seed.DemoCatalog, logger)
	}
	return st
}
