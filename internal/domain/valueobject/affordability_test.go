package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

func TestClassifyDTI(t *testing.T) {
	cases := []struct {
		dti  string
		want valueobject.Affordability
	}{
		{"0", valueobject.AffordabilityAffordable},
		{"29.99", valueobject.AffordabilityAffordable},
		{"30", valueobject.AffordabilityAffordable},
		{"30.01", valueobject.AffordabilityTight},
		{"39.99", valueobject.AffordabilityTight},
		{"40", valueobject.AffordabilityTight},
		{"40.01", valueobject.AffordabilityUnaffordable},
		{"85", valueobject.AffordabilityUnaffordable},
	}
	for _, tc := range cases {
		t.Run(tc.dti, func(t *testing.T) {
			got := valueobject.ClassifyDTI(decimal.RequireFromString(tc.dti))
			assert.True(t, got.Equal(tc.want), "dti %s: got %s, want %s", tc.dti, got, tc.want)
		})
	}
}

func TestNewAffordability(t *testing.T) {
	for _, raw := range []string{"affordable", "tight", "unaffordable"} {
		parsed, err := valueobject.NewAffordability(raw)
		assert.NoError(t, err)
		assert.Equal(t, raw, parsed.String())
	}

	_, err := valueobject.NewAffordability("comfortable")
	assert.Error(t, err)
}
