package valueobject

import (
	"encoding/json"
	"fmt"
)

// ---------------------------------------------------------------------------
// CreditRange – immutable value object
// ---------------------------------------------------------------------------

// CreditRange is a self-reported categorical credit band. The source data is
// applicant-declared, not bureau-verified, so it is a band rather than a raw
// score.
type CreditRange struct {
	value string
}

const (
	creditRangeExcellent = "excellent"
	creditRangeGood      = "good"
	creditRangeFair      = "fair"
	creditRangePoor      = "poor"
)

var (
	CreditRangeExcellent = CreditRange{value: creditRangeExcellent}
	CreditRangeGood      = CreditRange{value: creditRangeGood}
	CreditRangeFair      = CreditRange{value: creditRangeFair}
	CreditRangePoor      = CreditRange{value: creditRangePoor}
)

var validCreditRanges = map[string]CreditRange{
	creditRangeExcellent: CreditRangeExcellent,
	creditRangeGood:      CreditRangeGood,
	creditRangeFair:      CreditRangeFair,
	creditRangePoor:      CreditRangePoor,
}

// creditRangeRanks orders bands from worst (1) to best (4).
var creditRangeRanks = map[string]int{
	creditRangePoor:      1,
	creditRangeFair:      2,
	creditRangeGood:      3,
	creditRangeExcellent: 4,
}

// NewCreditRange creates a CreditRange from a raw string.
func NewCreditRange(s string) (CreditRange, error) {
	v, ok := validCreditRanges[s]
	if !ok {
		return CreditRange{}, fmt.Errorf("invalid credit range: %q", s)
	}
	return v, nil
}

// AllCreditRanges returns every defined band, worst first.
func AllCreditRanges() []CreditRange {
	return []CreditRange{CreditRangePoor, CreditRangeFair, CreditRangeGood, CreditRangeExcellent}
}

// String returns the string representation of the band.
func (c CreditRange) String() string { return c.value }

// IsZero returns true if the band has not been initialised.
func (c CreditRange) IsZero() bool { return c.value == "" }

// Equal returns true when both bands carry the same value.
func (c CreditRange) Equal(other CreditRange) bool { return c.value == other.value }

// Rank returns the ordinal position of the band, worst (1) to best (4).
// An uninitialised band ranks 0.
func (c CreditRange) Rank() int { return creditRangeRanks[c.value] }

// AtLeastAsGoodAs reports whether c ranks equal to or better than other.
func (c CreditRange) AtLeastAsGoodAs(other CreditRange) bool {
	return c.Rank() >= other.Rank()
}

// MarshalJSON implements json.Marshaler.
func (c CreditRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}

// UnmarshalJSON implements json.Unmarshaler, rejecting unknown bands.
func (c *CreditRange) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewCreditRange(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ---------------------------------------------------------------------------
// ScoreBand – immutable value object
// ---------------------------------------------------------------------------

// ScoreBand is the banded output of the approval scoring engine. The band
// thresholds are stable: downstream cosigner combination and the approval
// guard depend on them.
type ScoreBand struct {
	value string
}

var (
	ScoreBandExcellent = ScoreBand{value: creditRangeExcellent}
	ScoreBandGood      = ScoreBand{value: creditRangeGood}
	ScoreBandFair      = ScoreBand{value: creditRangeFair}
	ScoreBandPoor      = ScoreBand{value: creditRangePoor}
)

// Band thresholds on the 0-100 approval score.
const (
	scoreBandExcellentMin = 85
	scoreBandGoodMin      = 70
	scoreBandFairMin      = 50
)

// BandForScore maps a 0-100 approval score onto its band.
func BandForScore(score int) ScoreBand {
	switch {
	case score >= scoreBandExcellentMin:
		return ScoreBandExcellent
	case score >= scoreBandGoodMin:
		return ScoreBandGood
	case score >= scoreBandFairMin:
		return ScoreBandFair
	default:
		return ScoreBandPoor
	}
}

// NewScoreBand creates a ScoreBand from a raw string.
func NewScoreBand(s string) (ScoreBand, error) {
	switch s {
	case creditRangeExcellent, creditRangeGood, creditRangeFair, creditRangePoor:
		return ScoreBand{value: s}, nil
	}
	return ScoreBand{}, fmt.Errorf("invalid score band: %q", s)
}

// String returns the string representation of the band.
func (b ScoreBand) String() string { return b.value }

// IsZero returns true if the band has not been initialised.
func (b ScoreBand) IsZero() bool { return b.value == "" }

// Equal returns true when both bands carry the same value.
func (b ScoreBand) Equal(other ScoreBand) bool { return b.value == other.value }

// MarshalJSON implements json.Marshaler.
func (b ScoreBand) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.value)
}

// UnmarshalJSON implements json.Unmarshaler, rejecting unknown bands.
func (b *ScoreBand) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewScoreBand(raw)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
