package request

import (
	"online-store/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type AddProductRequest struct {
	Name     string           `json:"name" binding:"required"`
	Price    decimal.Decimal  `json:"price"`
	Stock    int              `json:"stock"`
	Discount *decimal.Decimal `json:"discount,omitempty"`
}

func (r *AddProductRequest) ToCommand() commands.AddProductRequest {
	cmd := commands.AddProductRequest{
		Name:  r.Name,
		Price: r.Price,
		Stock: r.Stock,
	}
	if r.Discount != nil {
		cmd.Discount = *r.Discount
	}
	return cmd
}

type ApplyDiscountRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}
