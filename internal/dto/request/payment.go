package request

// CreatePaymentIntentRequest carries the charge amount in minor units
// (cents). Amount validation happens in the service before calling out.
type CreatePaymentIntentRequest struct {
	Amount int64 `json:"amount"`
}
