package model

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

// FinancingTerms are the loan terms a financing calculation is computed from.
// All rates are annual percentages, not basis points.
type FinancingTerms struct {
	VehiclePrice   decimal.Decimal `json:"vehicle_price"`
	DownPayment    decimal.Decimal `json:"down_payment"`
	TradeInValue   decimal.Decimal `json:"trade_in_value"`
	InterestRate   decimal.Decimal `json:"interest_rate"` // annual %
	LoanTermMonths int             `json:"loan_term_months"`
	TaxRate        decimal.Decimal `json:"tax_rate"` // %
	Fees           decimal.Decimal `json:"fees"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"` // zero = unknown
}

// FinancingBreakdown itemises the financed amount.
type FinancingBreakdown struct {
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Tax       decimal.Decimal `json:"tax"`
	Fees      decimal.Decimal `json:"fees"`
}

// FinancingCalculation is the result of the financing calculator. It is
// replaced wholesale on every recomputation, never mutated in place.
type FinancingCalculation struct {
	Terms           FinancingTerms            `json:"terms"`
	MonthlyPayment  decimal.Decimal           `json:"monthly_payment"`
	TotalInterest   decimal.Decimal           `json:"total_interest"`
	TotalAmount     decimal.Decimal           `json:"total_amount"`
	PrincipalAmount decimal.Decimal           `json:"principal_amount"`
	DTIRatio        *decimal.Decimal          `json:"dti_ratio,omitempty"`
	Affordability   valueobject.Affordability `json:"affordability,omitempty"`
	Breakdown       FinancingBreakdown        `json:"breakdown"`
}

// CalculateFinancing computes monthly payment, totals and affordability from
// loan terms. Pure, no I/O.
//
// A negative subtotal (down payment plus trade-in exceeding the vehicle
// price) clamps the financed amount to zero rather than producing a negative
// principal. Currency outputs are rounded to 2 decimal places, half away
// from zero.
//
// The payment uses the standard annuity formula
//
//	payment = P * r(1+r)^n / ((1+r)^n - 1)
//
// with a straight-line split when the rate is zero, which avoids the
// division by zero in the annuity denominator.
func CalculateFinancing(terms FinancingTerms) (FinancingCalculation, error) {
	if err := validateTerms(terms); err != nil {
		return FinancingCalculation{}, err
	}

	subtotal := terms.VehiclePrice.Sub(terms.DownPayment).Sub(terms.TradeInValue)
	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}

	tax := subtotal.Mul(terms.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
	principal := subtotal.Add(tax).Add(terms.Fees).Round(2)

	n := terms.LoanTermMonths
	var monthlyPayment decimal.Decimal
	if terms.InterestRate.IsZero() {
		monthlyPayment = principal.Div(decimal.NewFromInt(int64(n))).Round(2)
	} else {
		// Float math for the power term, decimal for the money.
		monthlyRate := terms.InterestRate.InexactFloat64() / 100.0 / 12.0
		factor := math.Pow(1+monthlyRate, float64(n))
		paymentFloat := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
		monthlyPayment = decimal.NewFromFloat(paymentFloat).Round(2)
	}

	totalAmount := monthlyPayment.Mul(decimal.NewFromInt(int64(n))).Round(2)
	totalInterest := totalAmount.Sub(principal)

	calc := FinancingCalculation{
		Terms:           terms,
		MonthlyPayment:  monthlyPayment,
		TotalInterest:   totalInterest,
		TotalAmount:     totalAmount,
		PrincipalAmount: principal,
		Breakdown: FinancingBreakdown{
			Principal: subtotal.Round(2),
			Interest:  totalInterest,
			Tax:       tax,
			Fees:      terms.Fees.Round(2),
		},
	}

	if terms.MonthlyIncome.IsPositive() {
		dti := monthlyPayment.Div(terms.MonthlyIncome).Mul(decimal.NewFromInt(100)).Round(2)
		calc.DTIRatio = &dti
		calc.Affordability = valueobject.ClassifyDTI(dti)
	}

	return calc, nil
}

func validateTerms(terms FinancingTerms) error {
	if terms.LoanTermMonths <= 0 {
		return fmt.Errorf("loan term must be positive, got %d: %w",
			terms.LoanTermMonths, valueobject.ErrValidationFailed)
	}
	if terms.VehiclePrice.IsNegative() {
		return fmt.Errorf("vehicle price must not be negative: %w", valueobject.ErrValidationFailed)
	}
	if terms.DownPayment.IsNegative() {
		return fmt.Errorf("down payment must not be negative: %w", valueobject.ErrValidationFailed)
	}
	if terms.TradeInValue.IsNegative() {
		return fmt.Errorf("trade-in value must not be negative: %w", valueobject.ErrValidationFailed)
	}
	if terms.InterestRate.IsNegative() {
		return fmt.Errorf("interest rate must not be negative: %w", valueobject.ErrValidationFailed)
	}
	if terms.TaxRate.IsNegative() {
		return fmt.Errorf("tax rate must not be negative: %w", valueobject.ErrValidationFailed)
	}
	if terms.Fees.IsNegative() {
		return fmt.Errorf("fees must not be negative: %w", valueobject.ErrValidationFailed)
	}
	if terms.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly income must not be negative: %w", valueobject.ErrValidationFailed)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Amortization schedule
// ---------------------------------------------------------------------------

// AmortizationEntry is an immutable value object representing one period in
// an amortization schedule.
type AmortizationEntry struct {
	DueDate          time.Time       `json:"due_date"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Period           int             `json:"period"`
}

// AmortizationSchedule expands a financing calculation into its per-period
// payment schedule, starting one month after startDate. The last period
// absorbs the accumulated rounding so the balance reaches exactly zero.
func AmortizationSchedule(calc FinancingCalculation, startDate time.Time) []AmortizationEntry {
	termMonths := calc.Terms.LoanTermMonths
	if termMonths <= 0 || calc.PrincipalAmount.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	monthlyRate := calc.Terms.InterestRate.InexactFloat64() / 100.0 / 12.0
	monthlyRateDec := decimal.NewFromFloat(monthlyRate)
	monthlyPayment := calc.MonthlyPayment

	schedule := make([]AmortizationEntry, 0, termMonths)
	remaining := calc.PrincipalAmount

	for period := 1; period <= termMonths; period++ {
		dueDate := startDate.AddDate(0, period, 0)

		interest := remaining.Mul(monthlyRateDec).Round(2)
		principalPart := monthlyPayment.Sub(interest)

		if period == termMonths {
			principalPart = remaining
			interest = remaining.Mul(monthlyRateDec).Round(2)
			monthlyPayment = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		schedule = append(schedule, AmortizationEntry{
			Period:           period,
			DueDate:          dueDate,
			Principal:        principalPart,
			Interest:         interest,
			Total:            principalPart.Add(interest),
			RemainingBalance: remaining,
		})
	}

	return schedule
}
