package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// stubOrderAPI records calls and returns a canned response or error.
type stubOrderAPI struct {
	calls    int
	lastData map[string]interface{}
	resp     map[string]interface{}
	err      error
}

func (s *stubOrderAPI) Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
	s.calls++
	s.lastData = data
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newTestGateway(stub *stubOrderAPI) *Gateway {
	g := NewGateway(stub, zerolog.Nop())
	g.nowFunc = func() time.Time { return time.UnixMilli(1700000000000) }
	return g
}

func TestCreateOrder_Success(t *testing.T) {
	stub := &stubOrderAPI{
		resp: map[string]interface{}{
			"id":       "order_Nxyz123",
			"amount":   float64(499),
			"currency": "INR",
			"receipt":  "rcpt_custom",
		},
	}
	g := newTestGateway(stub)

	got, err := g.CreateOrder(context.Background(), CreateOrderParams{
		Amount:  499.4,
		Receipt: "rcpt_custom",
		Notes:   map[string]interface{}{"channel": "web"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, stub.calls)
	require.Equal(t, "order_Nxyz123", got.ID)
	require.Equal(t, int64(499), got.Amount)
	require.Equal(t, DefaultCurrency, got.Currency)
	require.Equal(t, "rcpt_custom", got.Receipt)

	require.Equal(t, int64(499), stub.lastData["amount"])
	require.Equal(t, "INR", stub.lastData["currency"])
}

func TestCreateOrder_NonPositiveAmount_NeverCallsProvider(t *testing.T) {
	stub := &stubOrderAPI{}
	g := newTestGateway(stub)

	for _, amount := range []float64{0, -1, -250.5} {
		_, err := g.CreateOrder(context.Background(), CreateOrderParams{Amount: amount})
		require.ErrorIs(t, err, ErrInvalidAmount)
	}
	require.Equal(t, 0, stub.calls)
}

func TestCreateOrder_ReceiptFallbackIsTimeBased(t *testing.T) {
	stub := &stubOrderAPI{
		resp: map[string]interface{}{"id": "order_abc"},
	}
	g := newTestGateway(stub)

	got, err := g.CreateOrder(context.Background(), CreateOrderParams{Amount: 100})
	require.NoError(t, err)
	require.Equal(t, "rcpt_1700000000000", got.Receipt)
	require.Equal(t, "rcpt_1700000000000", stub.lastData["receipt"])

	// notes default to an empty map, never nil
	notes, ok := stub.lastData["notes"].(map[string]interface{})
	require.True(t, ok)
	require.Empty(t, notes)
}

func TestCreateOrder_ProviderError_Wrapped(t *testing.T) {
	stub := &stubOrderAPI{err: errors.New("BAD_REQUEST_ERROR: key mismatch")}
	g := newTestGateway(stub)

	_, err := g.CreateOrder(context.Background(), CreateOrderParams{Amount: 100})
	require.Error(t, err)
	require.Contains(t, err.Error(), "create provider order")
	require.Equal(t, 1, stub.calls)
}

func TestCreateOrder_MissingProviderID(t *testing.T) {
	stub := &stubOrderAPI{resp: map[string]interface{}{"amount": float64(100)}}
	g := newTestGateway(stub)

	_, err := g.CreateOrder(context.Background(), CreateOrderParams{Amount: 100})
	require.Error(t, err)
}
