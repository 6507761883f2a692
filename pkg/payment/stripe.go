package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeGateway implements Gateway on the Stripe API.
type StripeGateway struct {
	client *client.API
}

// NewStripeGateway builds a gateway with its own client instance rather
// than the package-global stripe key.
func NewStripeGateway(secretKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)

	return &StripeGateway{client: sc}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency, idempotencyKey string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	// Prevents double-charging if the network fails but Stripe succeeded.
	if idempotencyKey != "" {
		params.IdempotencyKey = stripe.String(idempotencyKey)
	}

	params.Context = ctx

	pi, err := g.client.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}
