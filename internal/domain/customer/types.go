package customer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// OrderStatusProcessing is the only status an order ever holds.
	OrderStatusProcessing OrderStatus = "Processing"
)

func (s OrderStatus) String() string {
	return string(s)
}

// Order is recorded at checkout. ProductName carries the first cart item's
// name while TotalPrice carries the whole cart total.
type Order struct {
	ID          uuid.UUID
	ProductName string
	TotalPrice  decimal.Decimal
	Status      OrderStatus
	PlacedAt    time.Time
}

const (
	MinRating = 1
	MaxRating = 5
)

// Review ratings are documented as MinRating..MaxRating but not enforced.
type Review struct {
	ID           uuid.UUID
	CustomerName string
	ProductName  string
	Comment      string
	Rating       int
	CreatedAt    time.Time
}

func NewReview(customerName, productName, comment string, rating int, now time.Time) Review {
	return Review{
		ID:           uuid.New(),
		CustomerName: customerName,
		ProductName:  productName,
		Comment:      comment,
		Rating:       rating,
		CreatedAt:    now,
	}
}
