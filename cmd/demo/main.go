// Command demo walks the storefront through a fixed shopping session and
// prints each report to stdout.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"online-store/internal/domain/admin"
	"online-store/internal/domain/customer"
	"online-store/internal/domain/payment"
	"online-store/internal/domain/store"
	"online-store/internal/handler/middleware"
	"online-store/internal/infra/seed"
	"online-store/internal/pkg/clock"
	"online-store/internal/pkg/config"

	"github.com/shopspring/decimal"
)

func main() {
	logCfg, err := config.LoadLogConfig()
	if err != nil {
		slog.Error("failed to load log config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLoggerTo(os.Stderr, logCfg).GetSlogLogger()

	if err := run(context.Background(), os.Stdout, logger, clock.NewRealClock()); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, logger *slog.Logger, clk clock.Clock) error {
	st := store.NewOnlineStore()
	seed.Catalog(st, seed.DemoCatalog, logger)

	if err := st.DisplayProducts(w); err != nil {
		return err
	}

	alice := customer.NewCustomer("Alice", decimal.NewFromInt(1500))
	bob := customer.NewCustomer("Bob", decimal.NewFromInt(2000))
	st.AddCustomer(alice)
	st.AddCustomer(bob)
	if err := st.DisplayCustomers(w); err != nil {
		return err
	}

	purchases := []struct {
		buyer   *customer.Customer
		product string
	}{
		{alice, "Laptop"},
		{alice, "Smartphone"},
		{bob, "Headphones"},
	}
	for _, p := range purchases {
		if err := st.PurchaseProduct(p.buyer, p.product); err != nil {
			logger.Warn("purchase refused", "customer", p.buyer.Name(), "product", p.product, "error", err.Error())
		}
	}

	for _, c := range []*customer.Customer{alice, bob} {
		if err := c.DisplayCart(w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Total for %s: $%s\n", c.Name(), c.CalculateTotal().StringFixed(2)); err != nil {
			return err
		}
	}

	alice.SetPaymentMethod(payment.Cash{})
	bob.SetPaymentMethod(payment.Paypal{})

	for _, c := range []*customer.Customer{alice, bob} {
		order, err := c.Checkout(ctx, clk.Now())
		if err != nil {
			logger.Warn("checkout refused", "customer", c.Name(), "error", err.Error())
			continue
		}
		logger.Info("order placed", "customer", c.Name(), "order_id", order.ID.String(), "total", order.TotalPrice.StringFixed(2))
	}

	if err := admin.AddFundsToCustomer(st, "Alice", decimal.NewFromInt(500)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Balance for %s: $%s\n", alice.Name(), alice.Balance().StringFixed(2)); err != nil {
		return err
	}

	alice.AddReview(customer.NewReview("Alice", "Laptop", "Great laptop, highly recommended!", 5, clk.Now()))
	if err := alice.ViewReviews(w); err != nil {
		return err
	}

	if err := admin.ApplyDiscountToProduct(st, "Smartphone", decimal.RequireFromString("0.1")); err != nil {
		return err
	}
	return st.DisplayProducts(w)
}
