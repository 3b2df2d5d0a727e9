package service

import (
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

// CosignerCombiner folds a cosigner's credit standing into an already
// computed approval score. Adding a cosigner never lowers the score: the
// result is the maximum of the primary score and a 70/30 blend with the
// cosigner's band midpoint.
type CosignerCombiner struct{}

// NewCosignerCombiner creates a combiner.
func NewCosignerCombiner() *CosignerCombiner {
	return &CosignerCombiner{}
}

// Combine returns the combined approval score for the primary applicant
// plus cosigner.
func (c *CosignerCombiner) Combine(primary model.ApprovalScore, cosigner model.Cosigner) model.ApprovalScore {
	midpoint := bandMidpoint(cosigner.CreditInfo.CreditRange)

	blend := float64(primary.Score)*0.7 + float64(midpoint)*0.3
	combined := int(blend + 0.5)
	if combined < primary.Score {
		combined = primary.Score
	}
	combined = clampScore(combined)

	return model.ApprovalScore{
		Score: combined,
		Band:  valueobject.BandForScore(combined),
	}
}

// bandMidpoint is the representative score for a cosigner in each credit
// range.
func bandMidpoint(r valueobject.CreditRange) int {
	switch r {
	case valueobject.CreditRangeExcellent:
		return 95
	case valueobject.CreditRangeGood:
		return 80
	case valueobject.CreditRangeFair:
		return 60
	default:
		return 30
	}
}
