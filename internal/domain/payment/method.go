package payment

import (
	"context"

	"online-store/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindCash       Kind = "cash"
	KindCreditCard Kind = "credit_card"
	KindPaypal     Kind = "paypal"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindCash, KindCreditCard, KindPaypal:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", errs.Wrapf(errs.ErrInvalidPaymentKind, "kind %q", s)
	}
	return kind, nil
}

// Method approves a payment. A nil error means approved; a real gateway
// reports a decline by returning an error.
type Method interface {
	Kind() Kind
	Pay(ctx context.Context, amount decimal.Decimal) error
}

// NewMethod returns the built-in method for kind.
func NewMethod(kind Kind) (Method, error) {
	switch kind {
	case KindCash:
		return Cash{}, nil
	case KindCreditCard:
		return CreditCard{}, nil
	case KindPaypal:
		return Paypal{}, nil
	default:
		return nil, errs.Wrapf(errs.ErrInvalidPaymentKind, "kind %q", kind)
	}
}

// The built-in methods approve every amount, zero and negative included.

type Cash struct{}

func (Cash) Kind() Kind                                     { return KindCash }
func (Cash) Pay(_ context.Context, _ decimal.Decimal) error { return nil }

type CreditCard struct{}

func (CreditCard) Kind() Kind                                     { return KindCreditCard }
func (CreditCard) Pay(_ context.Context, _ decimal.Decimal) error { return nil }

type Paypal struct{}

func (Paypal) Kind() Kind                                     { return KindPaypal }
func (Paypal) Pay(_ context.Context, _ decimal.Decimal) error { return nil }
