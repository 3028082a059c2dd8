package payment

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"laundrybook/models"
)

// Service creates payment intents for booking totals.
type Service interface {
	CreateIntent(ctx context.Context, amountMajor float64) (clientSecret string, err error)
}

// StripePaymentService implements Service against the Stripe API. The API
// key is set process-wide on the stripe package at startup.
type StripePaymentService struct {
	Logger *zap.Logger
}

func NewStripePaymentService(logger *zap.Logger) *StripePaymentService {
	return &StripePaymentService{Logger: logger}
}

// MinorUnits converts a major-unit GBP amount to pence, rounded.
func MinorUnits(amountMajor float64) int64 {
	return int64(math.Round(amountMajor * 100))
}

// ValidateAmount rejects absent or non-positive amounts before any call to
// the payment processor.
func ValidateAmount(amountMajor float64) error {
	if amountMajor <= 0 {
		return models.NewValidationError("invalid amount")
	}
	return nil
}

// CreateIntent creates a GBP payment intent with automatic payment methods
// and returns its client secret. Confirmation happens client-side; the
// server learns of success when the client confirms the booking.
func (s *StripePaymentService) CreateIntent(ctx context.Context, amountMajor float64) (string, error) {
	if err := ValidateAmount(amountMajor); err != nil {
		return "", err
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(MinorUnits(amountMajor)),
		Currency: stripe.String(string(stripe.CurrencyGBP)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		s.Logger.Error("payment intent creation failed", zap.Error(err))
		return "", err
	}

	s.Logger.Info("payment intent created",
		zap.String("intent", intent.ID),
		zap.Int64("amountMinor", intent.Amount))
	return intent.ClientSecret, nil
}
