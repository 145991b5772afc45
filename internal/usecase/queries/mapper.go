package queries

import (
	"online-store/internal/domain/customer"
	"online-store/internal/domain/product"
	"online-store/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// Product fields are unexported, so copier fills the view from the getters
// of the same name.
func toProductView(p *product.Product) (ProductView, error) {
	var v ProductView
	if err := copier.Copy(&v, p); err != nil {
		return ProductView{}, errs.Wrapf(err, "failed to map product %q", p.Name())
	}
	return v, nil
}

func toProductViews(items []product.Product) ([]ProductView, error) {
	views := make([]ProductView, 0, len(items))
	for i := range items {
		v, err := toProductView(&items[i])
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toCustomerView(c *customer.Customer) (*CustomerView, error) {
	view := &CustomerView{
		CustomerSummary: CustomerSummary{
			Name:          c.Name(),
			Balance:       c.Balance(),
			LoyaltyPoints: c.LoyaltyPoints(),
		},
		CartTotal: c.CalculateTotal(),
		Orders:    []OrderView{},
		Reviews:   []ReviewView{},
	}
	if m := c.PaymentMethod(); m != nil {
		view.PaymentMethod = m.Kind().String()
	}

	var err error
	if view.Cart, err = toProductViews(c.Cart()); err != nil {
		return nil, err
	}
	if view.Wishlist, err = toProductViews(c.Wishlist()); err != nil {
		return nil, err
	}
	if orders := c.Orders(); len(orders) > 0 {
		if err := copier.Copy(&view.Orders, &orders); err != nil {
			return nil, errs.Wrapf(err, "failed to map orders of %q", c.Name())
		}
	}
	if reviews := c.Reviews(); len(reviews) > 0 {
		if err := copier.Copy(&view.Reviews, &reviews); err != nil {
			return nil, errs.Wrapf(err, "failed to map reviews of %q", c.Name())
		}
	}
	return view, nil
}
