package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"storefront/internal/dto/request"
	"storefront/internal/usecase"
	"storefront/pkg/utils"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log,
	}
}

// CreateIntent handles POST /api/payment-intent
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentIntentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	intent, err := h.service.CreateIntent(r.Context(), req.Amount)
	if err != nil {
		writeServiceError(w, h.log, err, "create payment intent")
		return
	}

	utils.ResponseCreated(w, "Payment intent created", intent)
}
