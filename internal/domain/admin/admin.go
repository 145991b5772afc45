// Package admin holds the privileged storefront operations. They carry no
// state and perform no identity checks; every call names the store it acts on.
package admin

import (
	"online-store/internal/domain/customer"
	"online-store/internal/domain/product"
	"online-store/internal/domain/store"
	"online-store/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AddProductToStore appends a new undiscounted product to the catalog.
func AddProductToStore(s *store.OnlineStore, name string, price decimal.Decimal, stock int) *product.Product {
	p := product.NewProduct(name, price, stock, decimal.Zero)
	s.AddProduct(p)
	return p
}

func RemoveProductFromStore(s *store.OnlineStore, name string) error {
	if !s.RemoveProduct(name) {
		return errs.Wrapf(errs.ErrProductNotFound, "product %q not found in the store", name)
	}
	return nil
}

func AddFundsToCustomer(s *store.OnlineStore, customerName string, amount decimal.Decimal) error {
	c, ok := s.FindCustomer(customerName)
	if !ok {
		return errs.Wrapf(errs.ErrCustomerNotFound, "customer %q not found", customerName)
	}
	c.AddFunds(amount)
	return nil
}

func ApplyDiscountToProduct(s *store.OnlineStore, name string, amount decimal.Decimal) error {
	p, ok := s.LookupProduct(name)
	if !ok {
		return errs.Wrapf(errs.ErrProductNotFound, "product %q not found in the store", name)
	}
	p.ApplyDiscount(amount)
	return nil
}

// ViewSalesReport is declared without behavior.
func ViewSalesReport(_ *store.OnlineStore) error {
	return errs.Wrap(errs.ErrNotImplemented, "sales report")
}

// ManageInventory is declared without behavior.
func ManageInventory(_ *store.OnlineStore) error {
	return errs.Wrap(errs.ErrNotImplemented, "inventory management")
}

// ContactCustomerSupport is declared without behavior.
func ContactCustomerSupport(_ *customer.Customer) error {
	return errs.Wrap(errs.ErrNotImplemented, "customer support")
}
