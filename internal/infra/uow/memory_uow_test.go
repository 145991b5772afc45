//go:build unit

package uow_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"online-store/internal/domain/customer"
	"online-store/internal/domain/store"
	"online-store/internal/infra/uow"
	"online-store/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinSerializesPurchases(t *testing.T) {
	const stock, buyers = 25, 60

	st := store.NewOnlineStore()
	st.AddProduct(builder.NewProductBuilder().WithStock(stock).BuildDomain())
	u := uow.NewMemoryUoW(st)

	customers := make([]*customer.Customer, buyers)
	for i := range customers {
		customers[i] = builder.NewCustomerBuilder().WithName(fmt.Sprintf("buyer-%02d", i)).BuildDomain()
	}

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for _, c := range customers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := u.Within(context.Background(), func(_ context.Context, s *store.OnlineStore) error {
				return s.PurchaseProduct(c, "Widget")
			})
			if err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, stock, succeeded.Load())

	err := u.WithinReadOnly(context.Background(), func(_ context.Context, s *store.OnlineStore) error {
		p, ok := s.LookupProduct("Widget")
		require.True(t, ok)
		assert.Equal(t, 0, p.Stock())
		return nil
	})
	require.NoError(t, err)

	inCarts := 0
	for _, c := range customers {
		inCarts += len(c.Cart())
	}
	assert.Equal(t, stock, inCarts)
}

func TestCanceledContextSkipsWork(t *testing.T) {
	u := uow.NewMemoryUoW(store.NewOnlineStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := u.Within(ctx, func(context.Context, *store.OnlineStore) error {
		called = true
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)

	err = u.WithinReadOnly(ctx, func(context.Context, *store.OnlineStore) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
