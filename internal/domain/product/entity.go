package product

import (
	"github.com/shopspring/decimal"
)

// MaxDiscount is the ceiling every discount update saturates at.
var MaxDiscount = decimal.NewFromInt(1)

// Product is a catalog line item. Copying a Product by value yields the
// snapshot carts and wishlists hold; later catalog changes do not reach it.
type Product struct {
	name     string
	price    decimal.Decimal
	discount decimal.Decimal
	stock    int
}

func NewProduct(name string, price decimal.Decimal, stock int, discount decimal.Decimal) *Product {
	if stock < 0 {
		stock = 0
	}
	return &Product{
		name:     name,
		price:    price,
		discount: decimal.Min(discount, MaxDiscount),
		stock:    stock,
	}
}

// Price is the effective unit price, price * (1 - discount).
func (p *Product) Price() decimal.Decimal {
	return p.price.Mul(decimal.NewFromInt(1).Sub(p.discount))
}

// ApplyDiscount adds amount to the current discount, saturating at MaxDiscount.
func (p *Product) ApplyDiscount(amount decimal.Decimal) {
	p.discount = decimal.Min(p.discount.Add(amount), MaxDiscount)
}

// DecreaseStock is a no-op at zero; callers check Stock first.
func (p *Product) DecreaseStock() {
	if p.stock > 0 {
		p.stock--
	}
}

func (p *Product) Name() string               { return p.name }
func (p *Product) BasePrice() decimal.Decimal { return p.price }
func (p *Product) Discount() decimal.Decimal  { return p.discount }
func (p *Product) Stock() int                 { return p.stock }
func (p *Product) InStock() bool              { return p.stock > 0 }
