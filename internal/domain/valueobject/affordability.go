package valueobject

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Affordability – immutable value object
// ---------------------------------------------------------------------------

// Affordability classifies a debt-to-income ratio.
type Affordability struct {
	value string
}

const (
	affordabilityAffordable   = "affordable"
	affordabilityTight        = "tight"
	affordabilityUnaffordable = "unaffordable"
)

var (
	AffordabilityAffordable   = Affordability{value: affordabilityAffordable}
	AffordabilityTight        = Affordability{value: affordabilityTight}
	AffordabilityUnaffordable = Affordability{value: affordabilityUnaffordable}
)

// DTI classification bounds, in percent. Both bounds are inclusive on the
// lower side: a DTI of exactly 30.0 is affordable, exactly 40.0 is tight.
var (
	dtiAffordableMax = decimal.NewFromInt(30)
	dtiTightMax      = decimal.NewFromInt(40)
)

// ClassifyDTI maps a debt-to-income percentage onto an affordability band.
func ClassifyDTI(dtiPercent decimal.Decimal) Affordability {
	switch {
	case dtiPercent.LessThanOrEqual(dtiAffordableMax):
		return AffordabilityAffordable
	case dtiPercent.LessThanOrEqual(dtiTightMax):
		return AffordabilityTight
	default:
		return AffordabilityUnaffordable
	}
}

// NewAffordability creates an Affordability from a raw string.
func NewAffordability(s string) (Affordability, error) {
	switch s {
	case affordabilityAffordable, affordabilityTight, affordabilityUnaffordable:
		return Affordability{value: s}, nil
	}
	return Affordability{}, fmt.Errorf("invalid affordability: %q", s)
}

// String returns the string representation.
func (a Affordability) String() string { return a.value }

// IsZero returns true if the classification has not been computed.
func (a Affordability) IsZero() bool { return a.value == "" }

// Equal returns true when both classifications match.
func (a Affordability) Equal(other Affordability) bool { return a.value == other.value }

// MarshalJSON implements json.Marshaler. An unset classification marshals
// as JSON null.
func (a Affordability) MarshalJSON() ([]byte, error) {
	if a.value == "" {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

// UnmarshalJSON implements json.Unmarshaler, rejecting unknown values.
func (a *Affordability) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Affordability{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewAffordability(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
