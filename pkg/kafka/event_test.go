package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	SessionID string `json:"session_id"`
	ItemCount int    `json:"item_count"`
}

func TestNewEvent(t *testing.T) {
	ev, err := NewEvent("storefront.cart.updated", "sess-1", "cart", "storefront", payload{SessionID: "sess-1", ItemCount: 3})
	require.NoError(t, err)

	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, "storefront.cart.updated", ev.EventType)
	assert.Equal(t, "sess-1", ev.AggregateID)
	assert.Equal(t, "cart", ev.AggregateType)
	assert.Equal(t, 1, ev.Version)
	assert.Equal(t, "storefront", ev.Source)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestEvent_RoundTrip(t *testing.T) {
	ev, err := NewEvent("storefront.order.placed", "order-1", "order", "storefront", payload{SessionID: "sess-9", ItemCount: 2})
	require.NoError(t, err)
	ev.WithCorrelationID("corr-7")

	raw, err := ev.Marshal()
	require.NoError(t, err)

	decoded, err := UnmarshalEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, ev.EventID, decoded.EventID)
	assert.Equal(t, "corr-7", decoded.CorrelationID)

	var p payload
	require.NoError(t, decoded.UnmarshalData(&p))
	assert.Equal(t, "sess-9", p.SessionID)
	assert.Equal(t, 2, p.ItemCount)
}

func TestNewEvent_UnmarshalableData(t *testing.T) {
	_, err := NewEvent("storefront.cart.updated", "sess-1", "cart", "storefront", make(chan int))
	require.Error(t, err)
}
