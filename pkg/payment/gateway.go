package payment

import (
	"context"
)

// Intent is the subset of a payment-intent the storefront needs: the client
// secret goes back to the browser, the ID is kept for reconciliation.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway creates payment intents with an external processor. The usecase
// layer depends on this interface so tests can substitute a fake.
type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency, idempotencyKey string) (*Intent, error)
}
