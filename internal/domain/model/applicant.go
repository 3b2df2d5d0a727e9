package model

import (
	"github.com/shopspring/decimal"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

// PersonalInfo holds structured applicant identity data.
type PersonalInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Employment holds the applicant's employment profile.
type Employment struct {
	Employer       string          `json:"employer"`
	Position       string          `json:"position"`
	MonthsEmployed int             `json:"months_employed"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
}

// CreditInfo holds the applicant's self-reported credit data.
type CreditInfo struct {
	CreditRange valueobject.CreditRange `json:"credit_range"`
}

// ApprovalScore is the numeric result of the approval scoring engine.
type ApprovalScore struct {
	Score int                   `json:"score"`
	Band  valueobject.ScoreBand `json:"band"`
}
