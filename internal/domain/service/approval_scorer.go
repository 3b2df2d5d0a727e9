package service

import (
	"github.com/shopspring/decimal"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

// ScoringWeights controls how factor scores blend into the overall approval
// score. Weights must sum to 1.0.
type ScoringWeights struct {
	Credit     float64
	Employment float64
	Payment    float64
}

// DefaultScoringWeights returns the standard weighting used for
// dealership financing requests.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Credit:     0.50,
		Employment: 0.30,
		Payment:    0.20,
	}
}

// ApprovalScorer computes a deterministic 0-100 approval score from the
// applicant's credit standing, employment stability and payment burden.
// Equal inputs always produce equal scores.
type ApprovalScorer struct {
	weights ScoringWeights
}

// NewApprovalScorer creates a scorer with the given weights.
func NewApprovalScorer(weights ScoringWeights) *ApprovalScorer {
	return &ApprovalScorer{weights: weights}
}

// Score computes the approval score and band for one applicant. incomeShare
// inputs come straight off the request: monthly income and the calculated
// monthly payment. A zero payment means financing has not been calculated
// yet and the payment factor contributes its neutral maximum.
func (s *ApprovalScorer) Score(credit model.CreditInfo, employment model.Employment, monthlyPayment decimal.Decimal) model.ApprovalScore {
	creditScore := creditRangeScore(credit.CreditRange)
	employmentScore := employmentScore(employment.MonthsEmployed)
	paymentScore := paymentHeadroomScore(employment.MonthlyIncome, monthlyPayment)

	weighted := float64(creditScore)*s.weights.Credit +
		float64(employmentScore)*s.weights.Employment +
		float64(paymentScore)*s.weights.Payment

	score := clampScore(int(weighted + 0.5))

	return model.ApprovalScore{
		Score: score,
		Band:  valueobject.BandForScore(score),
	}
}

// creditRangeScore maps the self-reported credit range to a base score.
func creditRangeScore(r valueobject.CreditRange) int {
	switch r {
	case valueobject.CreditRangeExcellent:
		return 95
	case valueobject.CreditRangeGood:
		return 75
	case valueobject.CreditRangeFair:
		return 55
	default:
		return 25
	}
}

// employmentScore rewards tenure linearly up to four years.
func employmentScore(monthsEmployed int) int {
	if monthsEmployed <= 0 {
		return 0
	}
	score := monthsEmployed * 100 / 48
	if score > 100 {
		score = 100
	}
	return score
}

// paymentHeadroomScore measures how much of the applicant's monthly income
// the payment consumes. Shares at or below 10% score full marks; every
// point above costs two.
func paymentHeadroomScore(monthlyIncome, monthlyPayment decimal.Decimal) int {
	if monthlyPayment.IsZero() {
		return 100
	}
	if monthlyIncome.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	share := monthlyPayment.Div(monthlyIncome).Mul(decimal.NewFromInt(100))
	excess := share.Sub(decimal.NewFromInt(10))
	if excess.LessThanOrEqual(decimal.Zero) {
		return 100
	}
	penalty := excess.Mul(decimal.NewFromInt(2))
	score := decimal.NewFromInt(100).Sub(penalty)
	if score.LessThan(decimal.Zero) {
		return 0
	}
	return int(score.IntPart())
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
