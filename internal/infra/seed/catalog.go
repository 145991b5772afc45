// Package seed loads the demo catalog into an empty store.
package seed

import (
	"log/slog"

	"online-store/internal/domain/admin"
	"online-store/internal/domain/store"

	"github.com/shopspring/decimal"
)

type Item struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

var DemoCatalog = []Item{
	{Name: "Laptop", Price: decimal.RequireFromString("999.99"), Stock: 10},
	{Name: "Smartphone", Price: decimal.RequireFromString("599.99"), Stock: 15},
	{Name: "Headphones", Price: decimal.RequireFromString("99.99"), Stock: 20},
}

// Catalog adds items through the admin path. Names already listed are skipped.
func Catalog(s *store.OnlineStore, items []Item, logger *slog.Logger) int {
	added := 0
	for _, it := range items {
		if s.HasProduct(it.Name) {
			logger.Debug("seed item already listed", "product", it.Name)
			continue
		}
		admin.AddProductToStore(s, it.Name, it.Price, it.Stock)
		added++
	}
	logger.Info("catalog seeded", "added", added, "requested", len(items))
	return added
}
