package commands

import (
	"context"
	"log/slog"

	"online-store/internal/domain/admin"
	"online-store/internal/domain/store"
	"online-store/internal/pkg/errs"
	"online-store/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type AdminCommands interface {
	AddProduct(ctx context.Context, req AddProductRequest) error
	RemoveProduct(ctx context.Context, name string) error
	AddFundsToCustomer(ctx context.Context, customerName string, amount decimal.Decimal) error
	ApplyDiscount(ctx context.Context, productName string, amount decimal.Decimal) error
	ViewSalesReport(ctx context.Context) error
	ManageInventory(ctx context.Context) error
	ContactCustomerSupport(ctx context.Context, customerName string) error
}

type AddProductRequest struct {
	Name     string
	Price    decimal.Decimal
	Stock    int
	Discount decimal.Decimal
}

type adminCommandsImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewAdminCommands(uow shared.UnitOfWork, logger *slog.Logger) AdminCommands {
	return &adminCommandsImpl{uow: uow, logger: logger}
}

func (uc *adminCommandsImpl) AddProduct(ctx context.Context, req AddProductRequest) error {
	return uc.uow.Within(ctx, func(_ context.Context, st *store.OnlineStore) error {
		if st.HasProduct(req.Name) {
			uc.logger.Warn("catalog already lists product; lookups keep resolving to the first entry", "product", req.Name)
		}
		p := admin.AddProductToStore(st, req.Name, req.Price, req.Stock)
		if !req.Discount.IsZero() {
			p.ApplyDiscount(req.Discount)
		}
		uc.logger.Info("product added", "product", req.Name, "price", p.Price().String(), "stock", p.Stock())
		return nil
	})
}

func (uc *adminCommandsImpl) RemoveProduct(ctx context.Context, name string) error {
	return uc.uow.Within(ctx, func(_ context.Context, st *store.OnlineStore) error {
		if err := admin.RemoveProductFromStore(st, name); err != nil {
			uc.logger.Warn("product not found in the store", "product", name)
			return err
		}
		return nil
	})
}

func (uc *adminCommandsImpl) AddFundsToCustomer(ctx context.Context, customerName string, amount decimal.Decimal) error {
	return uc.uow.Within(ctx, func(_ context.Context, st *store.OnlineStore) error {
		if err := admin.AddFundsToCustomer(st, customerName, amount); err != nil {
			uc.logger.Warn("customer not found", "customer", customerName)
			return err
		}
		return nil
	})
}

func (uc *adminCommandsImpl) ApplyDiscount(ctx context.Context, productName string, amount decimal.Decimal) error {
	return uc.uow.Within(ctx, func(_ context.Context, st *store.OnlineStore) error {
		if err := admin.ApplyDiscountToProduct(st, productName, amount); err != nil {
			uc.logger.Warn("product not found in the store", "product", productName)
			return err
		}
		uc.logger.Info("discount applied", "product", productName, "amount", amount.String())
		return nil
	})
}

func (uc *adminCommandsImpl) ViewSalesReport(ctx context.Context) error {
	return uc.uow.WithinReadOnly(ctx, func(_ context.Context, st *store.OnlineStore) error {
		return admin.ViewSalesReport(st)
	})
}

func (uc *adminCommandsImpl) ManageInventory(ctx context.Context) error {
	return uc.uow.Within(ctx, func(_ context.Context, st *store.OnlineStore) error {
		return admin.ManageInventory(st)
	})
}

func (uc *adminCommandsImpl) ContactCustomerSupport(ctx context.Context, customerName string) error {
	return uc.uow.WithinReadOnly(ctx, func(_ context.Context, st *store.OnlineStore) error {
		c, ok := st.FindCustomer(customerName)
		if !ok {
			return errs.Wrapf(errs.ErrCustomerNotFound, "customer %q", customerName)
		}
		return admin.ContactCustomerSupport(c)
	})
}
