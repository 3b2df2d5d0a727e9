package valueobject_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

func TestNewRequestStatus(t *testing.T) {
	t.Run("accepts every known status", func(t *testing.T) {
		for _, s := range valueobject.AllRequestStatuses() {
			parsed, err := valueobject.NewRequestStatus(s.String())
			require.NoError(t, err)
			assert.True(t, parsed.Equal(s))
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, raw := range []string{"", "DRAFT", "pending", "archived"} {
			_, err := valueobject.NewRequestStatus(raw)
			assert.Error(t, err, "status %q", raw)
		}
	})
}

func TestCanTransitionTo(t *testing.T) {
	legal := map[string][]string{
		"draft":        {"submitted", "cancelled"},
		"submitted":    {"under_review", "cancelled"},
		"under_review": {"approved", "rejected", "needs_info", "cancelled"},
		"needs_info":   {"under_review", "cancelled"},
		"approved":     {"completed"},
		"rejected":     {},
		"completed":    {},
		"cancelled":    {},
	}

	for _, from := range valueobject.AllRequestStatuses() {
		for _, to := range valueobject.AllRequestStatuses() {
			want := false
			for _, allowed := range legal[from.String()] {
				if allowed == to.String() {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := map[string]bool{
		"rejected":  true,
		"completed": true,
		"cancelled": true,
	}
	for _, s := range valueobject.AllRequestStatuses() {
		assert.Equal(t, terminal[s.String()], s.IsTerminal(), "status %s", s)
	}
}

func TestRequestStatusJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		data, err := json.Marshal(valueobject.RequestStatusUnderReview)
		require.NoError(t, err)
		assert.Equal(t, `"under_review"`, string(data))

		var parsed valueobject.RequestStatus
		require.NoError(t, json.Unmarshal(data, &parsed))
		assert.True(t, parsed.Equal(valueobject.RequestStatusUnderReview))
	})

	t.Run("rejects unknown status on unmarshal", func(t *testing.T) {
		var parsed valueobject.RequestStatus
		err := json.Unmarshal([]byte(`"archived"`), &parsed)
		assert.Error(t, err)
	})
}
