package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

func standardTerms() model.FinancingTerms {
	return model.FinancingTerms{
		VehiclePrice:   decimal.NewFromInt(30000),
		DownPayment:    decimal.NewFromInt(5000),
		TradeInValue:   decimal.Zero,
		InterestRate:   decimal.NewFromInt(6),
		LoanTermMonths: 60,
		TaxRate:        decimal.NewFromInt(7),
		Fees:           decimal.NewFromInt(200),
	}
}

func TestCalculateFinancing(t *testing.T) {
	t.Run("standard annuity calculation", func(t *testing.T) {
		calc, err := model.CalculateFinancing(standardTerms())
		require.NoError(t, err)

		assert.Equal(t, "26950", calc.PrincipalAmount.String())
		assert.Equal(t, "521.02", calc.MonthlyPayment.String())
		assert.Equal(t, "31261.2", calc.TotalAmount.String())
		assert.Equal(t, "4311.2", calc.TotalInterest.String())
		assert.Equal(t, "25000", calc.Breakdown.Principal.String())
		assert.Equal(t, "1750", calc.Breakdown.Tax.String())
		assert.Equal(t, "200", calc.Breakdown.Fees.String())
	})

	t.Run("zero interest splits principal evenly", func(t *testing.T) {
		calc, err := model.CalculateFinancing(model.FinancingTerms{
			VehiclePrice:   decimal.NewFromInt(12000),
			LoanTermMonths: 12,
		})
		require.NoError(t, err)

		assert.Equal(t, "1000", calc.MonthlyPayment.String())
		assert.Equal(t, "12000", calc.TotalAmount.String())
		assert.True(t, calc.TotalInterest.IsZero())
	})

	t.Run("down payment and trade-in above price clamp to zero", func(t *testing.T) {
		calc, err := model.CalculateFinancing(model.FinancingTerms{
			VehiclePrice:   decimal.NewFromInt(10000),
			DownPayment:    decimal.NewFromInt(8000),
			TradeInValue:   decimal.NewFromInt(3000),
			Fees:           decimal.NewFromInt(300),
			LoanTermMonths: 10,
		})
		require.NoError(t, err)

		assert.Equal(t, "300", calc.PrincipalAmount.String())
		assert.Equal(t, "30", calc.MonthlyPayment.String())
		assert.True(t, calc.Breakdown.Principal.IsZero())
	})

	t.Run("zero term is rejected", func(t *testing.T) {
		terms := standardTerms()
		terms.LoanTermMonths = 0
		_, err := model.CalculateFinancing(terms)
		assert.ErrorIs(t, err, valueobject.ErrValidationFailed)
	})

	t.Run("negative inputs are rejected", func(t *testing.T) {
		cases := map[string]func(*model.FinancingTerms){
			"vehicle price": func(tm *model.FinancingTerms) { tm.VehiclePrice = decimal.NewFromInt(-1) },
			"down payment":  func(tm *model.FinancingTerms) { tm.DownPayment = decimal.NewFromInt(-1) },
			"trade-in":      func(tm *model.FinancingTerms) { tm.TradeInValue = decimal.NewFromInt(-1) },
			"interest rate": func(tm *model.FinancingTerms) { tm.InterestRate = decimal.NewFromInt(-1) },
			"tax rate":      func(tm *model.FinancingTerms) { tm.TaxRate = decimal.NewFromInt(-1) },
			"fees":          func(tm *model.FinancingTerms) { tm.Fees = decimal.NewFromInt(-1) },
			"income":        func(tm *model.FinancingTerms) { tm.MonthlyIncome = decimal.NewFromInt(-1) },
		}
		for name, mutate := range cases {
			terms := standardTerms()
			mutate(&terms)
			_, err := model.CalculateFinancing(terms)
			assert.ErrorIs(t, err, valueobject.ErrValidationFailed, name)
		}
	})

	t.Run("DTI at the affordable boundary", func(t *testing.T) {
		calc, err := model.CalculateFinancing(model.FinancingTerms{
			VehiclePrice:   decimal.NewFromInt(3600),
			LoanTermMonths: 12,
			MonthlyIncome:  decimal.NewFromInt(1000),
		})
		require.NoError(t, err)

		require.NotNil(t, calc.DTIRatio)
		assert.Equal(t, "30", calc.DTIRatio.String())
		assert.Equal(t, valueobject.AffordabilityAffordable, calc.Affordability)
	})

	t.Run("DTI just over the affordable boundary", func(t *testing.T) {
		calc, err := model.CalculateFinancing(model.FinancingTerms{
			VehiclePrice:   decimal.NewFromInt(3600),
			LoanTermMonths: 12,
			MonthlyIncome:  decimal.NewFromInt(999),
		})
		require.NoError(t, err)

		require.NotNil(t, calc.DTIRatio)
		assert.Equal(t, valueobject.AffordabilityTight, calc.Affordability)
	})

	t.Run("no income means no DTI", func(t *testing.T) {
		calc, err := model.CalculateFinancing(standardTerms())
		require.NoError(t, err)

		assert.Nil(t, calc.DTIRatio)
		assert.True(t, calc.Affordability.IsZero())
	})

	t.Run("equal inputs produce equal outputs", func(t *testing.T) {
		a, err := model.CalculateFinancing(standardTerms())
		require.NoError(t, err)
		b, err := model.CalculateFinancing(standardTerms())
		require.NoError(t, err)

		assert.True(t, a.MonthlyPayment.Equal(b.MonthlyPayment))
		assert.True(t, a.TotalAmount.Equal(b.TotalAmount))
	})
}

func TestAmortizationSchedule(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("balance reaches exactly zero", func(t *testing.T) {
		calc, err := model.CalculateFinancing(standardTerms())
		require.NoError(t, err)

		schedule := model.AmortizationSchedule(calc, start)
		require.Len(t, schedule, 60)

		assert.Equal(t, 1, schedule[0].Period)
		assert.Equal(t, start.AddDate(0, 1, 0), schedule[0].DueDate)
		assert.True(t, schedule[59].RemainingBalance.IsZero())

		var principalSum decimal.Decimal
		for _, entry := range schedule {
			principalSum = principalSum.Add(entry.Principal)
		}
		assert.True(t, principalSum.Equal(calc.PrincipalAmount),
			"principal parts sum to %s, want %s", principalSum, calc.PrincipalAmount)
	})

	t.Run("empty schedule for zero principal", func(t *testing.T) {
		calc, err := model.CalculateFinancing(model.FinancingTerms{
			VehiclePrice:   decimal.NewFromInt(5000),
			DownPayment:    decimal.NewFromInt(5000),
			LoanTermMonths: 12,
		})
		require.NoError(t, err)

		assert.Nil(t, model.AmortizationSchedule(calc, start))
	})
}

func TestCalculateFinancingErrorUnwrapping(t *testing.T) {
	terms := standardTerms()
	terms.LoanTermMonths = -5
	_, err := model.CalculateFinancing(terms)
	require.Error(t, err)
	assert.True(t, errors.Is(err, valueobject.ErrValidationFailed))
	assert.NotEqual(t, valueobject.ErrValidationFailed.Error(), err.Error())
}
