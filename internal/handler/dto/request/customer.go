package request

import (
	"online-store/internal/domain/payment"
	"online-store/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type RegisterCustomerRequest struct {
	Name    string           `json:"name" binding:"required"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

func (r *RegisterCustomerRequest) InitialBalance() decimal.Decimal {
	if r.Balance == nil {
		return decimal.Zero
	}
	return *r.Balance
}

// ProductRefRequest names a catalog product for cart and wishlist additions.
type ProductRefRequest struct {
	ProductName string `json:"product_name" binding:"required"`
}

type SetPaymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

func (r *SetPaymentMethodRequest) ToKind() (payment.Kind, error) {
	return payment.NewKind(r.Method)
}

type AddFundsRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

type AddReviewRequest struct {
	ProductName string `json:"product_name" binding:"required"`
	Comment     string `json:"comment"`
	Rating      int    `json:"rating"`
}

func (r *AddReviewRequest) ToCommand() commands.AddReviewRequest {
	return commands.AddReviewRequest{
		ProductName: r.ProductName,
		Comment:     r.Comment,
		Rating:      r.Rating,
	}
}
