//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"online-store/internal/domain/customer"
	"online-store/internal/domain/payment"
	"online-store/internal/handler/api"
	resdto "online-store/internal/handler/dto/response"
	"online-store/internal/pkg/config"
	"online-store/internal/pkg/errs"
	"online-store/internal/usecase/commands"
	"online-store/internal/usecase/queries"
	"online-store/tests/common/builder"
	"online-store/tests/common/httptest"
	"online-store/tests/common/testutil"
	commandsmock "online-store/tests/mock/commands"
	queriesmock "online-store/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockStorefrontCommands
	mockQueries  *queriesmock.MockStorefrontQueries
	handler      *api.CustomerHandler
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockStorefrontCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockStorefrontQueries(s.mockCtrl)
	s.handler = api.NewCustomerHandler(s.mockCommands, s.mockQueries, config.NewTestConfig().Store)

	s.router.POST("/customers", s.handler.Register)
	s.router.GET("/customers", s.handler.List)
	s.router.GET("/customers/:name", s.handler.Get)
	s.router.POST("/customers/:name/cart", s.handler.AddToCart)
	s.router.DELETE("/customers/:name/cart/:product", s.handler.RemoveFromCart)
	s.router.POST("/customers/:name/wishlist", s.handler.AddToWishlist)
	s.router.DELETE("/customers/:name/wishlist/:product", s.handler.RemoveFromWishlist)
	s.router.PUT("/customers/:name/payment-method", s.handler.SetPaymentMethod)
	s.router.POST("/customers/:name/funds", s.handler.AddFunds)
	s.router.POST("/customers/:name/reviews", s.handler.AddReview)
	s.router.POST("/customers/:name/checkout", s.handler.Checkout)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func aliceView() *queries.CustomerView {
	return &queries.CustomerView{
		CustomerSummary: queries.CustomerSummary{Name: "Alice", Balance: decimal.NewFromInt(1500)},
		CartTotal:       decimal.Zero,
		Cart:            []queries.ProductView{},
		Wishlist:        []queries.ProductView{},
		Orders:          []queries.OrderView{},
		Reviews:         []queries.ReviewView{},
	}
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *CustomerHandlerTestSuite) TestRegister() {
	url := "/customers"
	reqBody := builder.NewCustomerBuilder().BuildRegisterRequestDTO()

	s.Run("success: returns 201 with the stored customer", func() {
		s.mockCommands.EXPECT().
			RegisterCustomer(gomock.Any(), "Alice", gomock.Cond(func(b decimal.Decimal) bool {
				return b.Equal(decimal.NewFromInt(1500))
			})).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetCustomer(gomock.Any(), "Alice").Return(aliceView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Alice", body.Name)
		s.True(body.Balance.Equal(decimal.NewFromInt(1500)))
	})

	s.Run("success: balance defaults to zero", func() {
		s.mockCommands.EXPECT().
			RegisterCustomer(gomock.Any(), "Alice", gomock.Cond(func(b decimal.Decimal) bool { return b.IsZero() })).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetCustomer(gomock.Any(), "Alice").Return(aliceView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("balance", nil)))

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 when name is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("name", nil)))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"name":`)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *CustomerHandlerTestSuite) TestList() {
	s.mockQueries.EXPECT().ListCustomers(gomock.Any()).Return([]*queries.CustomerSummary{
		{Name: "Carol", Balance: decimal.NewFromInt(50)},
		{Name: "Dana", Balance: decimal.Zero},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers", nil)

	var body struct {
		Customers []resdto.CustomerSummaryResponse `json:"customers"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Customers, 2)
	s.Equal("Carol", body.Customers[0].Name)
	s.Equal("Dana", body.Customers[1].Name)
}

func (s *CustomerHandlerTestSuite) TestGet() {
	placedAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	view := aliceView()
	view.PaymentMethod = payment.KindCash.String()
	view.Cart = []queries.ProductView{builder.NewProductBuilder().WithName("Headphones").WithPrice("99.99").BuildView()}
	view.Orders = []queries.OrderView{{
		ID:          uuid.New(),
		ProductName: "Laptop",
		TotalPrice:  decimal.RequireFromString("1099.98"),
		Status:      customer.OrderStatusProcessing.String(),
		PlacedAt:    placedAt,
	}}

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetCustomer(gomock.Any(), "Alice").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/Alice", nil)

		var body resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cash", body.PaymentMethod)
		s.Require().Len(body.Cart, 1)
		s.Equal("$99.99", body.Cart[0].DisplayPrice)
		s.Require().Len(body.Orders, 1)
		s.Equal("Processing", body.Orders[0].Status)
		s.Equal(placedAt.Unix(), body.Orders[0].PlacedAt)
	})

	s.Run("error: 404 for unknown customer", func() {
		s.mockQueries.EXPECT().GetCustomer(gomock.Any(), "Zed").
			Return(nil, errs.Wrapf(errs.ErrCustomerNotFound, "customer %q", "Zed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/Zed", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})
}

// ================================================================================
// TestCart / TestWishlist
// ================================================================================

func (s *CustomerHandlerTestSuite) TestAddToCart() {
	url := "/customers/Alice/cart"
	reqBody := map[string]any{"product_name": "Laptop"}

	tests := []struct {
		name       string
		cmdErr     error
		expectCode int
		expectMsg  string
	}{
		{name: "success", expectCode: http.StatusOK},
		{name: "out of stock", cmdErr: errs.Wrap(errs.ErrOutOfStock, "Laptop"), expectCode: http.StatusConflict, expectMsg: "out of stock"},
		{name: "unknown product", cmdErr: errs.ErrProductNotFound, expectCode: http.StatusNotFound, expectMsg: "Product not found"},
		{name: "unknown customer", cmdErr: errs.ErrCustomerNotFound, expectCode: http.StatusNotFound, expectMsg: "Customer not found"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().PurchaseProduct(gomock.Any(), "Alice", "Laptop").Return(tc.cmdErr).Times(1)
			if tc.cmdErr == nil {
				s.mockQueries.EXPECT().GetCustomer(gomock.Any(), "Alice").Return(aliceView(), nil).Times(1)
			}

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

			if tc.cmdErr == nil {
				httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				return
			}
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: 400 without product_name", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CustomerHandlerTestSuite) TestRemoveFromCartAndWishlist() {
	s.mockCommands.EXPECT().RemoveFromCart(gomock.Any(), "Alice", "Laptop").Return(nil).Times(1)
	s.mockCommands.EXPECT().RemoveFromWishlist(gomock.Any(), "Alice", "Headphones").Return(nil).Times(1)
	s.mockQueries.EXPECT().GetCustomer(gomock.Any(), "Alice").Return(aliceView(), nil).Times(2)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/customers/Alice/cart/Laptop", nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/customers/Alice/wishlist/Headphones", nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}

func (s *CustomerHandlerTestSuite) TestAddToWishlist() {
	s.mockCommands.EXPECT().AddToWishlist(gomock.Any(), "Alice", "Tablet").Return(errs.ErrProductNotFound).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/customers/Alice/wishlist",
		map[string]any{"product_name": "Tablet"})

	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
}

// ================================================================================
// TestSetPaymentMethod / TestAddFunds / TestAddReview
// ================================================================================

func (s *CustomerHandlerTestSuite) TestSetPaymentMethod() {
	url := "/customers/Alice/payment-method"

	s.Run("success", func() {
		s.mockCommands.EXPECT().SetPaymentMethod(gomock.Any(), "Alice", payment.KindCreditCard).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"method": "credit_card"})

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 for an unknown method", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"method": "barter"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown payment method")
	})
}

func (s *CustomerHandlerTestSuite) TestAddFunds() {
	url := "/customers/Alice/funds"

	s.Run("success", func() {
		s.mockCommands.EXPECT().
			AddFunds(gomock.Any(), "Alice", gomock.Cond(func(a decimal.Decimal) bool {
				return a.Equal(decimal.RequireFromString("12.5"))
			})).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetCustomer(gomock.Any(), "Alice").Return(aliceView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"amount":"12.50"}`)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 without amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CustomerHandlerTestSuite) TestAddReview() {
	id := uuid.New()
	s.mockCommands.EXPECT().
		AddReview(gomock.Any(), "Alice", commands.AddReviewRequest{ProductName: "Laptop", Comment: "Great laptop!", Rating: 5}).
		Return(id, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/customers/Alice/reviews",
		map[string]any{"product_name": "Laptop", "comment": "Great laptop!", "rating": 5})

	var body resdto.ReviewCreatedResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	s.Equal(id.String(), body.ID)
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *CustomerHandlerTestSuite) TestCheckout() {
	url := "/customers/Carol/checkout"

	s.Run("success: returns the placed order", func() {
		result := &commands.CheckoutResult{
			OrderID:       uuid.New(),
			ProductName:   "Laptop",
			Total:         decimal.RequireFromString("999.99"),
			Status:        customer.OrderStatusProcessing,
			Balance:       decimal.RequireFromString("0.01"),
			LoyaltyPoints: 10,
		}
		s.mockCommands.EXPECT().Checkout(gomock.Any(), "Carol").Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.OrderID.String(), body.OrderID)
		s.Equal("Processing", body.Status)
		s.Equal(10, body.LoyaltyPoints)
	})

	s.Run("error: 402 with a top-up hint on insufficient funds", func() {
		err := errs.WithHintf(errs.Wrap(errs.ErrInsufficientFunds, "customer \"Carol\""), "add at least %s to the balance", "949.99")
		s.mockCommands.EXPECT().Checkout(gomock.Any(), "Carol").Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		hints := httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "Insufficient funds")
		s.Equal([]string{"add at least 949.99 to the balance"}, hints)
	})

	s.Run("error: 422 without a payment method", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), "Carol").Return(nil, errs.ErrNoPaymentMethod).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "No payment method")
	})

	s.Run("error: 422 on an empty cart", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), "Carol").Return(nil, errs.ErrEmptyCart).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Cart is empty")
	})
}
