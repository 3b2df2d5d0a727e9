package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	evt := NewBaseEvent("fi.request.submitted", "req-001", "FIRequest", "tenant-001")
	after := time.Now().UTC()

	assert.NotEmpty(t, evt.EventID())
	assert.Equal(t, "fi.request.submitted", evt.EventType())
	assert.Equal(t, "req-001", evt.AggregateID())
	assert.Equal(t, "FIRequest", evt.AggregateType())
	assert.Equal(t, "tenant-001", evt.TenantID())
	assert.False(t, evt.OccurredAt().Before(before))
	assert.False(t, evt.OccurredAt().After(after))
}

func TestBaseEvent_UniqueIDs(t *testing.T) {
	a := NewBaseEvent("x", "agg", "T", "tenant")
	b := NewBaseEvent("x", "agg", "T", "tenant")
	assert.NotEqual(t, a.EventID(), b.EventID())
}

func TestBaseEvent_JSONRoundTrip(t *testing.T) {
	evt := NewBaseEvent("fi.request.approved", "req-002", "FIRequest", "tenant-002")

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded BaseEvent
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, evt.EventID(), decoded.EventID())
	assert.Equal(t, evt.EventType(), decoded.EventType())
	assert.Equal(t, evt.TenantID(), decoded.TenantID())
}
