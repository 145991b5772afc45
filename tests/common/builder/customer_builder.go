//go:build unit || e2e

package builder

import (
	"online-store/internal/domain/customer"
	"online-store/internal/domain/payment"
	"online-store/internal/domain/product"
	reqdto "online-store/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type CustomerBuilder struct {
	Name          string
	Balance       decimal.Decimal
	PaymentMethod payment.Method
	Cart          []*product.Product
	Wishlist      []*product.Product
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		Name:    "Alice",
		Balance: decimal.NewFromInt(1500),
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CustomerBuilder) BuildDomain() *customer.Customer {
	c := customer.NewCustomer(b.Name, b.Balance)
	if b.PaymentMethod != nil {
		c.SetPaymentMethod(b.PaymentMethod)
	}
	for _, p := range b.Cart {
		c.AddToCart(*p)
	}
	for _, p := range b.Wishlist {
		c.AddToWishlist(*p)
	}
	return c
}

func (b *CustomerBuilder) BuildRegisterRequestDTO() reqdto.RegisterCustomerRequest {
	balance := b.Balance
	return reqdto.RegisterCustomerRequest{
		Name:    b.Name,
		Balance: &balance,
	}
}

// Fluent builder methods
func (b *CustomerBuilder) WithName(name string) *CustomerBuilder {
	b.Name = name
	return b
}

func (b *CustomerBuilder) WithBalance(balance string) *CustomerBuilder {
	b.Balance = decimal.RequireFromString(balance)
	return b
}

func (b *CustomerBuilder) WithPaymentMethod(m payment.Method) *CustomerBuilder {
	b.PaymentMethod = m
	return b
}

func (b *CustomerBuilder) PayingCash() *CustomerBuilder {
	b.PaymentMethod = payment.Cash{}
	return b
}

func (b *CustomerBuilder) WithCartItem(p *product.Product) *CustomerBuilder {
	b.Cart = append(b.Cart, p)
	return b
}

func (b *CustomerBuilder) WithWishlistItem(p *product.Product) *CustomerBuilder {
	b.Wishlist = append(b.Wishlist, p)
	return b
}
