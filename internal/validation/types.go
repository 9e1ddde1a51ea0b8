package validation

// CreatePaymentOrderRequest is the payload for POST /create-order.
// Amount is expressed in the minor currency unit (paise).
type CreatePaymentOrderRequest struct {
	Amount   float64                `json:"amount" validate:"required,gt=0"`
	Currency string                 `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	Receipt  string                 `json:"receipt,omitempty" validate:"omitempty,max=40"`
	Notes    map[string]interface{} `json:"notes,omitempty"`
}
