package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// OrderAPI is the slice of the Razorpay SDK the gateway depends on.
// *razorpay.Order satisfies it; tests inject a counting stub.
type OrderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// DefaultCurrency is used when the caller supplies none.
const DefaultCurrency = "INR"

// ErrInvalidAmount indicates a missing or non-positive amount. The
// provider is never called when this is returned.
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// Gateway wraps the payment provider's order API. It is stateless:
// each CreateOrder call is independent and holds nothing across calls.
type Gateway struct {
	orders  OrderAPI
	logger  zerolog.Logger
	nowFunc func() time.Time
}

// NewGateway returns a Gateway over an injected order API.
func NewGateway(orders OrderAPI, logger zerolog.Logger) *Gateway {
	return &Gateway{
		orders:  orders,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// NewRazorpayGateway builds a Gateway backed by the official Razorpay
// client authenticated with the given key pair.
func NewRazorpayGateway(keyID, keySecret string, logger zerolog.Logger) *Gateway {
	client := razorpay.NewClient(keyID, keySecret)
	return NewGateway(client.Order, logger)
}

// CreateOrderParams describes one provider-order request.
// Amount is expressed in the minor currency unit (paise).
type CreateOrderParams struct {
	Amount   float64
	Currency string
	Receipt  string
	Notes    map[string]interface{}
}

// Order is the normalized provider-order result.
type Order struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// CreateOrder requests one order from the provider and normalizes the
// response. The amount is rounded to an integer minor-unit value; a
// missing receipt gets a time-based fallback; missing notes become an
// empty map. All failures come back as a plain error for the caller to
// collapse into its response envelope.
func (g *Gateway) CreateOrder(ctx context.Context, p CreateOrderParams) (Order, error) {
	if p.Amount <= 0 {
		return Order{}, ErrInvalidAmount
	}

	amount := decimal.NewFromFloat(p.Amount).Round(0).IntPart()

	currency := p.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	receipt := p.Receipt
	if receipt == "" {
		receipt = fmt.Sprintf("rcpt_%d", g.nowFunc().UnixMilli())
	}

	notes := p.Notes
	if notes == nil {
		notes = map[string]interface{}{}
	}

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	resp, err := g.orders.Create(data, nil)
	if err != nil {
		g.logger.Error().Err(err).Int64("amount", amount).Msg("provider order creation failed")
		return Order{}, fmt.Errorf("create provider order: %w", err)
	}

	id, _ := resp["id"].(string)
	if id == "" {
		return Order{}, errors.New("provider response missing order id")
	}

	g.logger.Info().Str("order_id", id).Int64("amount", amount).Str("currency", currency).Msg("provider order created")

	return Order{
		ID:       id,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}
