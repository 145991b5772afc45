//go:build unit

package commands_test

import (
	"context"
	"testing"

	"online-store/internal/domain/store"
	"online-store/internal/infra/uow"
	"online-store/internal/pkg/errs"
	"online-store/internal/usecase/commands"
	"online-store/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture() (*store.OnlineStore, commands.AdminCommands) {
	st := store.NewOnlineStore()
	st.AddProduct(builder.NewProductBuilder().WithName("Laptop").WithPrice("1000").WithStock(10).BuildDomain())
	st.AddCustomer(builder.NewCustomerBuilder().WithName("Carol").WithBalance("50").BuildDomain())
	return st, commands.NewAdminCommands(uow.NewMemoryUoW(st), discardLogger())
}

func TestAdminAddProduct(t *testing.T) {
	tests := []struct {
		name      string
		req       commands.AddProductRequest
		wantPrice string
	}{
		{
			name:      "undiscounted",
			req:       commands.AddProductRequest{Name: "Mouse", Price: dec("25"), Stock: 3},
			wantPrice: "25",
		},
		{
			name:      "with discount",
			req:       commands.AddProductRequest{Name: "Monitor", Price: dec("200"), Stock: 2, Discount: dec("0.25")},
			wantPrice: "150",
		},
		{
			name:      "discount saturates at one",
			req:       commands.AddProductRequest{Name: "Sticker", Price: dec("2"), Stock: 100, Discount: dec("3")},
			wantPrice: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, uc := newAdminFixture()

			require.NoError(t, uc.AddProduct(context.Background(), tt.req))

			p, ok := st.LookupProduct(tt.req.Name)
			require.True(t, ok)
			assert.True(t, p.Price().Equal(dec(tt.wantPrice)), "price %s", p.Price())
			assert.Equal(t, tt.req.Stock, p.Stock())
		})
	}
}

func TestAdminDuplicateProductKeepsFirstMatch(t *testing.T) {
	st, uc := newAdminFixture()

	require.NoError(t, uc.AddProduct(context.Background(), commands.AddProductRequest{Name: "Laptop", Price: dec("1"), Stock: 1}))

	assert.Len(t, st.Products(), 2)
	p, _ := st.LookupProduct("Laptop")
	assert.True(t, p.BasePrice().Equal(dec("1000")))
}

func TestAdminRemoveProduct(t *testing.T) {
	st, uc := newAdminFixture()

	err := uc.RemoveProduct(context.Background(), "Tablet")
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
	assert.Len(t, st.Products(), 1)

	require.NoError(t, uc.RemoveProduct(context.Background(), "Laptop"))
	assert.Empty(t, st.Products())
}

func TestAdminFundsAndDiscount(t *testing.T) {
	st, uc := newAdminFixture()
	ctx := context.Background()

	require.NoError(t, uc.AddFundsToCustomer(ctx, "Carol", dec("950")))
	c, _ := st.FindCustomer("Carol")
	assert.True(t, c.Balance().Equal(dec("1000")))
	assert.ErrorIs(t, uc.AddFundsToCustomer(ctx, "Nobody", dec("1")), errs.ErrCustomerNotFound)

	require.NoError(t, uc.ApplyDiscount(ctx, "Laptop", dec("0.1")))
	p, _ := st.LookupProduct("Laptop")
	assert.True(t, p.Price().Equal(dec("900")), "price %s", p.Price())
	assert.ErrorIs(t, uc.ApplyDiscount(ctx, "Tablet", dec("0.1")), errs.ErrProductNotFound)
}

func TestAdminHooksAreNotImplemented(t *testing.T) {
	_, uc := newAdminFixture()
	ctx := context.Background()

	assert.ErrorIs(t, uc.ViewSalesReport(ctx), errs.ErrNotImplemented)
	assert.ErrorIs(t, uc.ManageInventory(ctx), errs.ErrNotImplemented)
	assert.ErrorIs(t, uc.ContactCustomerSupport(ctx, "Carol"), errs.ErrNotImplemented)
	assert.ErrorIs(t, uc.ContactCustomerSupport(ctx, "Nobody"), errs.ErrCustomerNotFound)
}
