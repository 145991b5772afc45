//go:build unit || e2e

package builder

import (
	"online-store/internal/domain/product"
	reqdto "online-store/internal/handler/dto/request"
	"online-store/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	Name     string
	Price    decimal.Decimal
	Stock    int
	Discount decimal.Decimal
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		Name:     "Widget",
		Price:    decimal.NewFromInt(100),
		Stock:    1,
		Discount: decimal.Zero,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ProductBuilder) BuildDomain() *product.Product {
	return product.NewProduct(b.Name, b.Price, b.Stock, b.Discount)
}

func (b *ProductBuilder) BuildAddRequestDTO() reqdto.AddProductRequest {
	discount := b.Discount
	return reqdto.AddProductRequest{
		Name:     b.Name,
		Price:    b.Price,
		Stock:    b.Stock,
		Discount: &discount,
	}
}

func (b *ProductBuilder) BuildView() queries.ProductView {
	p := b.BuildDomain()
	return queries.ProductView{
		Name:      p.Name(),
		BasePrice: p.BasePrice(),
		Discount:  p.Discount(),
		Price:     p.Price(),
		Stock:     p.Stock(),
	}
}

// Fluent builder methods
func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.Price = decimal.RequireFromString(price)
	return b
}

func (b *ProductBuilder) WithStock(stock int) *ProductBuilder {
	b.Stock = stock
	return b
}

func (b *ProductBuilder) WithDiscount(discount string) *ProductBuilder {
	b.Discount = decimal.RequireFromString(discount)
	return b
}

func (b *ProductBuilder) AsOutOfStock() *ProductBuilder {
	b.Stock = 0
	return b
}
