package response

import (
	"online-store/internal/usecase/commands"
	"online-store/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type CustomerSummaryResponse struct {
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	LoyaltyPoints int             `json:"loyalty_points"`
}

func FromCustomerSummaries(items []*queries.CustomerSummary) []*CustomerSummaryResponse {
	res := make([]*CustomerSummaryResponse, len(items))
	for i, it := range items {
		res[i] = &CustomerSummaryResponse{
			Name:          it.Name,
			Balance:       it.Balance,
			LoyaltyPoints: it.LoyaltyPoints,
		}
	}
	return res
}

type OrderResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      string          `json:"status"`
	PlacedAt    int64           `json:"placed_at"`
}

type ReviewResponse struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Comment     string `json:"comment"`
	Rating      int    `json:"rating"`
	CreatedAt   int64  `json:"created_at"`
}

type CustomerResponse struct {
	Name          string             `json:"name"`
	Balance       decimal.Decimal    `json:"balance"`
	LoyaltyPoints int                `json:"loyalty_points"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	CartTotal     decimal.Decimal    `json:"cart_total"`
	Cart          []*ProductResponse `json:"cart"`
	Wishlist      []*ProductResponse `json:"wishlist"`
	Orders        []*OrderResponse   `json:"orders"`
	Reviews       []*ReviewResponse  `json:"reviews"`
}

func FromCustomerView(v *queries.CustomerView, currency string) *CustomerResponse {
	res := &CustomerResponse{
		Name:          v.Name,
		Balance:       v.Balance,
		LoyaltyPoints: v.LoyaltyPoints,
		PaymentMethod: v.PaymentMethod,
		CartTotal:     v.CartTotal,
		Cart:          make([]*ProductResponse, len(v.Cart)),
		Wishlist:      make([]*ProductResponse, len(v.Wishlist)),
		Orders:        make([]*OrderResponse, len(v.Orders)),
		Reviews:       make([]*ReviewResponse, len(v.Reviews)),
	}
	for i := range v.Cart {
		res.Cart[i] = FromProductView(&v.Cart[i], currency)
	}
	for i := range v.Wishlist {
		res.Wishlist[i] = FromProductView(&v.Wishlist[i], currency)
	}
	for i, o := range v.Orders {
		res.Orders[i] = &OrderResponse{
			ID:          o.ID.String(),
			ProductName: o.ProductName,
			TotalPrice:  o.TotalPrice,
			Status:      o.Status,
			PlacedAt:    o.PlacedAt.Unix(),
		}
	}
	for i, r := range v.Reviews {
		res.Reviews[i] = &ReviewResponse{
			ID:          r.ID.String(),
			ProductName: r.ProductName,
			Comment:     r.Comment,
			Rating:      r.Rating,
			CreatedAt:   r.CreatedAt.Unix(),
		}
	}
	return res
}

type CheckoutResponse struct {
	OrderID       string          `json:"order_id"`
	ProductName   string          `json:"product_name"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	Balance       decimal.Decimal `json:"balance"`
	LoyaltyPoints int             `json:"loyalty_points"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		OrderID:       r.OrderID.String(),
		ProductName:   r.ProductName,
		Total:         r.Total,
		Status:        r.Status.String(),
		Balance:       r.Balance,
		LoyaltyPoints: r.LoyaltyPoints,
	}
}

type ReviewCreatedResponse struct {
	ID string `json:"id"`
}
