package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

var (
	ErrInvalidAmount    = errors.New("price must be positive")
	ErrAmountTooLarge   = errors.New("price exceeds the largest supported amount")
	ErrPaymentsDisabled = errors.New("payment provider is not configured")
)

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// PaymentGateway creates payment intents with an external provider.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (clientSecret string, err error)
}

// ToMinorUnits converts a price in major units (e.g. dollars) to the provider's
// integer minor units, rounding half away from zero.
func ToMinorUnits(price float64) (int64, error) {
	amount := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).Round(0)
	if !amount.IsPositive() {
		return 0, ErrInvalidAmount
	}
	if amount.GreaterThan(maxMinorUnits) {
		return 0, ErrAmountTooLarge
	}
	return amount.IntPart(), nil
}

type StripeGateway struct {
	client *paymentintent.Client
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{
		client: &paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey},
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.client.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}

// DisabledGateway is used when no provider key is configured.
type DisabledGateway struct{}

func (DisabledGateway) CreateIntent(context.Context, int64, string) (string, error) {
	return "", ErrPaymentsDisabled
}
