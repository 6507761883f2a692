package wire

import (
	"github.com/go-chi/chi/v5"

	"storefront/internal/adaptor"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	r.Post("/api/payment-intent", paymentHandler.CreateIntent)
}
