package ports

import (
	"context"

	"github.com/satya-ranjon/doccureserver/internal/domain"
)

// PaymentGateway mints a payment intent for an amount in minor currency
// units. Calls are not idempotent: retrying may mint duplicate intents, so
// implementations must not retry on their own.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*domain.PaymentIntent, error)
}
