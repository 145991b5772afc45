package customer

import (
	"context"
	"slices"
	"time"

	"online-store/internal/domain/payment"
	"online-store/internal/domain/product"
	"online-store/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoyaltyPointsPerCheckout is awarded on every successful checkout.
const LoyaltyPointsPerCheckout = 10

type Customer struct {
	name          string
	balance       decimal.Decimal
	cart          []product.Product
	wishlist      []product.Product
	reviews       []Review
	orders        []Order
	paymentMethod payment.Method
	loyaltyPoints int
}

func NewCustomer(name string, balance decimal.Decimal) *Customer {
	return &Customer{
		name:    name,
		balance: balance,
	}
}

func (c *Customer) AddToCart(p product.Product) {
	c.cart = append(c.cart, p)
}

func (c *Customer) AddToWishlist(p product.Product) {
	c.wishlist = append(c.wishlist, p)
}

// RemoveFromCart drops the first entry named productName, if any.
func (c *Customer) RemoveFromCart(productName string) {
	c.cart = removeFirst(c.cart, productName)
}

func (c *Customer) RemoveFromWishlist(productName string) {
	c.wishlist = removeFirst(c.wishlist, productName)
}

func removeFirst(items []product.Product, name string) []product.Product {
	i := slices.IndexFunc(items, func(p product.Product) bool { return p.Name() == name })
	if i < 0 {
		return items
	}
	return slices.Delete(items, i, i+1)
}

func (c *Customer) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range c.cart {
		total = total.Add(c.cart[i].Price())
	}
	return total
}

// Checkout pays for the whole cart. Nothing changes unless every guard passes
// and the payment method approves.
func (c *Customer) Checkout(ctx context.Context, now time.Time) (Order, error) {
	if len(c.cart) == 0 {
		return Order{}, errs.Wrapf(errs.ErrEmptyCart, "customer %q", c.name)
	}

	total := c.CalculateTotal()
	if c.balance.LessThan(total) {
		err := errs.Wrapf(errs.ErrInsufficientFunds, "customer %q: balance %s, total %s", c.name, c.balance, total)
		return Order{}, errs.WithHintf(err, "add at least %s to the balance", total.Sub(c.balance))
	}
	if c.paymentMethod == nil {
		return Order{}, errs.Wrapf(errs.ErrNoPaymentMethod, "customer %q", c.name)
	}
	if err := c.paymentMethod.Pay(ctx, total); err != nil {
		return Order{}, errs.Mark(errs.Wrapf(err, "%s payment for customer %q declined", c.paymentMethod.Kind(), c.name), errs.ErrPaymentDeclined)
	}

	order := Order{
		ID:          uuid.New(),
		ProductName: c.cart[0].Name(),
		TotalPrice:  total,
		Status:      OrderStatusProcessing,
		PlacedAt:    now,
	}
	c.balance = c.balance.Sub(total)
	c.loyaltyPoints += LoyaltyPointsPerCheckout
	c.orders = append(c.orders, order)
	c.cart = nil
	return order, nil
}

// SetPaymentMethod replaces the current method; nil clears it.
func (c *Customer) SetPaymentMethod(m payment.Method) {
	c.paymentMethod = m
}

func (c *Customer) AddFunds(amount decimal.Decimal) {
	c.balance = c.balance.Add(amount)
}

func (c *Customer) AddReview(r Review) {
	c.reviews = append(c.reviews, r)
}

func (c *Customer) Name() string                  { return c.name }
func (c *Customer) Balance() decimal.Decimal      { return c.balance }
func (c *Customer) LoyaltyPoints() int            { return c.loyaltyPoints }
func (c *Customer) PaymentMethod() payment.Method { return c.paymentMethod }

func (c *Customer) Cart() []product.Product     { return slices.Clone(c.cart) }
func (c *Customer) Wishlist() []product.Product { return slices.Clone(c.wishlist) }
func (c *Customer) Reviews() []Review           { return slices.Clone(c.reviews) }
func (c *Customer) Orders() []Order             { return slices.Clone(c.orders) }
