//go:build unit

package httperr_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"online-store/internal/handler/httperr"
	"online-store/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"product not found", errs.Wrapf(errs.ErrProductNotFound, "product %q", "Tablet"), http.StatusNotFound},
		{"customer not found", errs.ErrCustomerNotFound, http.StatusNotFound},
		{"out of stock", errs.Wrap(errs.ErrOutOfStock, "Laptop"), http.StatusConflict},
		{"insufficient funds", errs.WithHintf(errs.Wrap(errs.ErrInsufficientFunds, "Carol"), "add 950"), http.StatusPaymentRequired},
		{"declined", errs.ErrPaymentDeclined, http.StatusPaymentRequired},
		{"no payment method", errs.ErrNoPaymentMethod, http.StatusUnprocessableEntity},
		{"empty cart", errs.ErrEmptyCart, http.StatusUnprocessableEntity},
		{"invalid kind", errs.ErrInvalidPaymentKind, http.StatusBadRequest},
		{"not implemented", errs.ErrNotImplemented, http.StatusNotImplemented},
		{"canceled", context.Canceled, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := httperr.StatusOf(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, msg)
		})
	}
}
