package store

import (
	"log/slog"
	"maps"
	"slices"

	"online-store/internal/domain/customer"
	"online-store/internal/domain/product"
	"online-store/internal/pkg/errs"
)

// OnlineStore owns the catalog and a directory of registered customers.
// Customers are not owned: the directory only refers to them.
//
// Catalog names are not unique; every name lookup resolves to the first match.
type OnlineStore struct {
	products  []*product.Product
	customers map[string]*customer.Customer
}

func NewOnlineStore() *OnlineStore {
	return &OnlineStore{
		customers: make(map[string]*customer.Customer),
	}
}

// AddProduct lists p. A nil product is dropped so every catalog entry can be
// dereferenced.
func (s *OnlineStore) AddProduct(p *product.Product) {
	if p == nil {
		slog.Warn("nil product not added to catalog")
		return
	}
	s.products = append(s.products, p)
}

// HasProduct never fails: a fault during the scan is logged and reported as
// not found.
func (s *OnlineStore) HasProduct(name string) (found bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("product lookup failed", "product", name, "panic", r)
			found = false
		}
	}()

	_, found = s.LookupProduct(name)
	return found
}

// LookupProduct returns the live catalog entry, not a snapshot.
func (s *OnlineStore) LookupProduct(name string) (*product.Product, bool) {
	i := s.indexOf(name)
	if i < 0 {
		return nil, false
	}
	return s.products[i], true
}

// RemoveProduct deletes the first catalog entry named name.
func (s *OnlineStore) RemoveProduct(name string) bool {
	i := s.indexOf(name)
	if i < 0 {
		return false
	}
	s.products = slices.Delete(s.products, i, i+1)
	return true
}

func (s *OnlineStore) indexOf(name string) int {
	return slices.IndexFunc(s.products, func(p *product.Product) bool { return p.Name() == name })
}

// PurchaseProduct moves one unit of the named product into the customer's
// cart. The cart receives a snapshot taken before the stock is decremented.
func (s *OnlineStore) PurchaseProduct(c *customer.Customer, name string) error {
	p, ok := s.LookupProduct(name)
	if !ok {
		return errs.Wrapf(errs.ErrProductNotFound, "product %q", name)
	}
	if !p.InStock() {
		return errs.Wrapf(errs.ErrOutOfStock, "product %q", name)
	}
	c.AddToCart(*p)
	p.DecreaseStock()
	return nil
}

// AddToWishlist copies the named catalog entry into the customer's wishlist
// without touching stock.
func (s *OnlineStore) AddToWishlist(c *customer.Customer, name string) error {
	p, ok := s.LookupProduct(name)
	if !ok {
		return errs.Wrapf(errs.ErrProductNotFound, "product %q", name)
	}
	c.AddToWishlist(*p)
	return nil
}

// AddCustomer registers c under its name, replacing any earlier entry.
func (s *OnlineStore) AddCustomer(c *customer.Customer) {
	s.customers[c.Name()] = c
}

func (s *OnlineStore) FindCustomer(name string) (*customer.Customer, bool) {
	c, ok := s.customers[name]
	return c, ok
}

// Products returns the catalog entries in catalog order.
func (s *OnlineStore) Products() []*product.Product {
	return slices.Clone(s.products)
}

// CustomerNames returns the directory keys in name order.
func (s *OnlineStore) CustomerNames() []string {
	return slices.Sorted(maps.Keys(s.customers))
}
