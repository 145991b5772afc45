package response

import (
	"online-store/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	Name         string          `json:"name"`
	BasePrice    decimal.Decimal `json:"base_price"`
	Discount     decimal.Decimal `json:"discount"`
	Price        decimal.Decimal `json:"price"`
	DisplayPrice string          `json:"display_price"`
	Stock        int             `json:"stock"`
}

func FromProductView(v *queries.ProductView, currency string) *ProductResponse {
	return &ProductResponse{
		Name:         v.Name,
		BasePrice:    v.BasePrice,
		Discount:     v.Discount,
		Price:        v.Price,
		DisplayPrice: currency + v.Price.StringFixed(2),
		Stock:        v.Stock,
	}
}

func FromProductViews(views []*queries.ProductView, currency string) []*ProductResponse {
	res := make([]*ProductResponse, len(views))
	for i, v := range views {
		res[i] = FromProductView(v, currency)
	}
	return res
}
