package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedStore(mock *simpleMock, id string) *Store {
	s := NewStore(mock, "analytics-events")
	s.idFunc = func() string { return id }
	s.nowFunc = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestAppend_Get_RoundTrip(t *testing.T) {
	mock := newSimpleMock()
	s := fixedStore(mock, "ev-1")
	ctx := context.Background()

	data := json.RawMessage(`{"product_id":"3","source":"pdp"}`)
	ev, err := s.Append(ctx, s.NewEvent("product_viewed", data))
	require.NoError(t, err)
	require.Equal(t, "ev-1", ev.ID)
	require.Equal(t, "product_viewed", ev.EventType)
	require.Equal(t, 1, mock.putCalls)

	got, err := s.Get(ctx, "ev-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, ev.EventType, got.EventType)
	require.Equal(t, ev.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestAppend_DuplicateID(t *testing.T) {
	mock := newSimpleMock()
	s := fixedStore(mock, "ev-dup")
	ctx := context.Background()

	_, err := s.Append(ctx, Event{ID: "ev-dup", EventType: "add_to_cart"})
	require.NoError(t, err)

	_, err = s.Append(ctx, Event{ID: "ev-dup", EventType: "add_to_cart"})
	require.ErrorIs(t, err, ErrDuplicateEvent)
}

func TestAppend_ClientError_Wrapped(t *testing.T) {
	mock := newSimpleMock()
	mock.putErr = errors.New("throttled")
	s := fixedStore(mock, "ev-2")

	_, err := s.Append(context.Background(), s.NewEvent("checkout_started", nil))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrDuplicateEvent)
}

func TestGet_Miss(t *testing.T) {
	mock := newSimpleMock()
	s := fixedStore(mock, "unused")

	got, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}
