package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/dto/response"
	"storefront/pkg/apperr"
	"storefront/pkg/payment"
	"storefront/pkg/utils"
)

type PaymentService interface {
	CreateIntent(ctx context.Context, amountCents int64) (*response.PaymentIntentResponse, error)
}

type paymentService struct {
	gateway payment.Gateway
	config  *utils.Config
	log     *zap.Logger
}

func NewPaymentService(gateway payment.Gateway, config *utils.Config, log *zap.Logger) PaymentService {
	return &paymentService{
		gateway: gateway,
		config:  config,
		log:     log,
	}
}

// CreateIntent validates the amount, then asks the processor for an intent.
// The amount is in minor units (cents).
func (s *paymentService) CreateIntent(ctx context.Context, amountCents int64) (*response.PaymentIntentResponse, error) {
	if amountCents <= 0 {
		return nil, apperr.New(apperr.Validation, "Invalid amount. Must be a positive number.")
	}

	intent, err := s.gateway.CreateIntent(ctx, amountCents, s.config.Payment.Currency, uuid.NewString())
	if err != nil {
		s.log.Error("Failed to create payment intent",
			zap.Error(err),
			zap.Int64("amount_cents", amountCents),
		)
		return nil, apperr.Wrap(apperr.Store, "Payment processing failed", err)
	}

	s.log.Info("Payment intent created",
		zap.String("intent_id", intent.ID),
		zap.Int64("amount_cents", amountCents),
	)

	return &response.PaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}
