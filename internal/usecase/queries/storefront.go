package queries

import (
	"context"

	"online-store/internal/domain/store"
	"online-store/internal/pkg/errs"
	"online-store/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type StorefrontQueries interface {
	ListProducts(ctx context.Context) ([]*ProductView, error)
	HasProduct(ctx context.Context, name string) (bool, error)
	ListCustomers(ctx context.Context) ([]*CustomerSummary, error)
	GetCustomer(ctx context.Context, name string) (*CustomerView, error)
}

type storefrontQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewStorefrontQueries(uow shared.UnitOfWork) StorefrontQueries {
	return &storefrontQueriesImpl{uow: uow}
}

func (q *storefrontQueriesImpl) ListProducts(ctx context.Context) ([]*ProductView, error) {
	var views []*ProductView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, st *store.OnlineStore) error {
		products := st.Products()
		views = make([]*ProductView, 0, len(products))
		for _, p := range products {
			v, err := toProductView(p)
			if err != nil {
				return err
			}
			views = append(views, &v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *storefrontQueriesImpl) HasProduct(ctx context.Context, name string) (bool, error) {
	var found bool
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, st *store.OnlineStore) error {
		found = st.HasProduct(name)
		return nil
	})
	return found, err
}

func (q *storefrontQueriesImpl) ListCustomers(ctx context.Context) ([]*CustomerSummary, error) {
	var summaries []*CustomerSummary
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, st *store.OnlineStore) error {
		names := st.CustomerNames()
		summaries = make([]*CustomerSummary, 0, len(names))
		for _, name := range names {
			c, _ := st.FindCustomer(name)
			var s CustomerSummary
			if err := copier.Copy(&s, c); err != nil {
				return errs.Wrapf(err, "failed to map customer %q", name)
			}
			summaries = append(summaries, &s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (q *storefrontQueriesImpl) GetCustomer(ctx context.Context, name string) (*CustomerView, error) {
	var view *CustomerView
	err := q.uow.WithinReadOnly(ctx, func(_ context.Context, st *store.OnlineStore) error {
		c, ok := st.FindCustomer(name)
		if !ok {
			return errs.Wrapf(errs.ErrCustomerNotFound, "customer %q", name)
		}
		v, err := toCustomerView(c)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
