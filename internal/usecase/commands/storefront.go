package commands

import (
	"context"
	"log/slog"

	"online-store/internal/domain/customer"
	"online-store/internal/domain/payment"
	"online-store/internal/domain/store"
	"online-store/internal/pkg/clock"
	"online-store/internal/pkg/errs"
	"online-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StorefrontCommands interface {
	RegisterCustomer(ctx context.Context, name string, balance decimal.Decimal) error
	PurchaseProduct(ctx context.Context, customerName, productName string) error
	AddToWishlist(ctx context.Context, customerName, productName string) error
	RemoveFromCart(ctx context.Context, customerName, productName string) error
	RemoveFromWishlist(ctx context.Context, customerName, productName string) error
	SetPaymentMethod(ctx context.Context, customerName string, kind payment.Kind) error
	AddFunds(ctx context.Context, customerName string, amount decimal.Decimal) error
	AddReview(ctx context.Context, customerName string, req AddReviewRequest) (uuid.UUID, error)
	Checkout(ctx context.Context, customerName string) (*CheckoutResult, error)
}

type AddReviewRequest struct {
	ProductName string
	Comment     string
	Rating      int
}

type CheckoutResult struct {
	OrderID       uuid.UUID
	ProductName   string
	Total         decimal.Decimal
	Status        customer.OrderStatus
	Balance       decimal.Decimal
	LoyaltyPoints int
}

type storefrontCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewStorefrontCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) StorefrontCommands {
	return &storefrontCommandsImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *storefrontCommandsImpl) RegisterCustomer(ctx context.Context, name string, balance decimal.Decimal) error {
	return uc.uow.Within(ctx, func(_ context.Context, st *store.OnlineStore) error {
		if _, exists := st.FindCustomer(name); exists {
			uc.logger.Warn("replacing registered customer", "customer", name)
		}
		st.AddCustomer(customer.NewCustomer(name, balance))
		return nil
	})
}

func (uc *storefrontCommandsImpl) PurchaseProduct(ctx context.Context, customerName, productName string) error {
	return uc.withCustomer(ctx, customerName, func(st *store.OnlineStore, c *customer.Customer) error {
		if err := st.PurchaseProduct(c, productName); err != nil {
			if errs.Is(err, errs.ErrOutOfStock) {
				uc.logger.Info("product is out of stock", "product", productName, "customer", customerName)
			}
			return err
		}
		return nil
	})
}

func (uc *storefrontCommandsImpl) AddToWishlist(ctx context.Context, customerName, productName string) error {
	return uc.withCustomer(ctx, customerName, func(st *store.OnlineStore, c *customer.Customer) error {
		return st.AddToWishlist(c, productName)
	})
}

func (uc *storefrontCommandsImpl) RemoveFromCart(ctx context.Context, customerName, productName string) error {
	return uc.withCustomer(ctx, customerName, func(_ *store.OnlineStore, c *customer.Customer) error {
		c.RemoveFromCart(productName)
		return nil
	})
}

func (uc *storefrontCommandsImpl) RemoveFromWishlist(ctx context.Context, customerName, productName string) error {
	return uc.withCustomer(ctx, customerName, func(_ *store.OnlineStore, c *customer.Customer) error {
		c.RemoveFromWishlist(productName)
		return nil
	})
}

func (uc *storefrontCommandsImpl) SetPaymentMethod(ctx context.Context, customerName string, kind payment.Kind) error {
	method, err := payment.NewMethod(kind)
	if err != nil {
		return err
	}
	return uc.withCustomer(ctx, customerName, func(_ *store.OnlineStore, c *customer.Customer) error {
		c.SetPaymentMethod(method)
		return nil
	})
}

func (uc *storefrontCommandsImpl) AddFunds(ctx context.Context, customerName string, amount decimal.Decimal) error {
	return uc.withCustomer(ctx, customerName, func(_ *store.OnlineStore, c *customer.Customer) error {
		c.AddFunds(amount)
		return nil
	})
}

func (uc *storefrontCommandsImpl) AddReview(ctx context.Context, customerName string, req AddReviewRequest) (uuid.UUID, error) {
	var reviewID uuid.UUID
	err := uc.withCustomer(ctx, customerName, func(_ *store.OnlineStore, c *customer.Customer) error {
		rev := customer.NewReview(c.Name(), req.ProductName, req.Comment, req.Rating, uc.clock.Now())
		c.AddReview(rev)
		reviewID = rev.ID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reviewID, nil
}

func (uc *storefrontCommandsImpl) Checkout(ctx context.Context, customerName string) (*CheckoutResult, error) {
	var result *CheckoutResult
	err := uc.withCustomer(ctx, customerName, func(_ *store.OnlineStore, c *customer.Customer) error {
		order, err := c.Checkout(ctx, uc.clock.Now())
		if err != nil {
			uc.logger.Info("checkout rejected", "customer", customerName, "error", err.Error())
			return err
		}
		result = &CheckoutResult{
			OrderID:       order.ID,
			ProductName:   order.ProductName,
			Total:         order.TotalPrice,
			Status:        order.Status,
			Balance:       c.Balance(),
			LoyaltyPoints: c.LoyaltyPoints(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Info("order placed",
		"customer", customerName,
		"order_id", result.OrderID.String(),
		"total", result.Total.String())
	return result, nil
}

func (uc *storefrontCommandsImpl) withCustomer(ctx context.Context, name string, fn func(st *store.OnlineStore, c *customer.Customer) error) error {
	return uc.uow.Within(ctx, func(_ context.Context, st *store.OnlineStore) error {
		c, ok := st.FindCustomer(name)
		if !ok {
			return errs.Wrapf(errs.ErrCustomerNotFound, "customer %q", name)
		}
		return fn(st, c)
	})
}
