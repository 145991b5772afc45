package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductView represents a catalog entry or a cart/wishlist snapshot.
type ProductView struct {
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	Discount  decimal.Decimal `json:"discount"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
}

type OrderView struct {
	ID          uuid.UUID       `json:"id"`
	ProductName string          `json:"product_name"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      string          `json:"status"`
	PlacedAt    time.Time       `json:"placed_at"`
}

type ReviewView struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	ProductName  string    `json:"product_name"`
	Comment      string    `json:"comment"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}

// CustomerSummary is the directory listing form of a customer.
type CustomerSummary struct {
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	LoyaltyPoints int             `json:"loyalty_points"`
}

type CustomerView struct {
	CustomerSummary
	PaymentMethod string          `json:"payment_method,omitempty"`
	CartTotal     decimal.Decimal `json:"cart_total"`
	Cart          []ProductView   `json:"cart"`
	Wishlist      []ProductView   `json:"wishlist"`
	Orders        []OrderView     `json:"orders"`
	Reviews       []ReviewView    `json:"reviews"`
}
