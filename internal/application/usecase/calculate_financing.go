package usecase

import (
	"context"
	"fmt"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/dto"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/port"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/service"
)

// CalculateFinancingUseCase recomputes a request's financing calculation
// and stores it on the aggregate. A stored approval score is refreshed in
// the same write because the payment burden feeds the score.
type CalculateFinancingUseCase struct {
	repo     port.RequestRepository
	sink     *EventSink
	scorer   *service.ApprovalScorer
	combiner *service.CosignerCombiner
	clock    port.Clock
}

// NewCalculateFinancingUseCase wires dependencies.
func NewCalculateFinancingUseCase(
	repo port.RequestRepository,
	sink *EventSink,
	scorer *service.ApprovalScorer,
	combiner *service.CosignerCombiner,
	clock port.Clock,
) *CalculateFinancingUseCase {
	return &CalculateFinancingUseCase{
		repo:     repo,
		sink:     sink,
		scorer:   scorer,
		combiner: combiner,
		clock:    clock,
	}
}

// Execute calculates and persists financing for a request.
func (uc *CalculateFinancingUseCase) Execute(ctx context.Context, req dto.CalculateFinancingRequest) (dto.FIRequestResponse, error) {
	current, err := uc.repo.FindByID(ctx, req.TenantID, req.RequestID)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("load request: %w", err)
	}
	if err := checkVersion(current, req.Version); err != nil {
		return dto.FIRequestResponse{}, err
	}

	calc, err := model.CalculateFinancing(model.FinancingTerms{
		VehiclePrice:   req.VehiclePrice,
		DownPayment:    req.DownPayment,
		TradeInValue:   req.TradeInValue,
		InterestRate:   req.InterestRate,
		LoanTermMonths: req.LoanTermMonths,
		TaxRate:        req.TaxRate,
		Fees:           req.Fees,
		MonthlyIncome:  current.Employment().MonthlyIncome,
	})
	if err != nil {
		return dto.FIRequestResponse{}, err
	}

	now := uc.clock.Now()
	next, err := current.SetFinancing(calc, req.ActorID, now)
	if err != nil {
		return dto.FIRequestResponse{}, err
	}

	if _, scored := next.ApprovalScore(); scored {
		score := uc.scorer.Score(next.CreditInfo(), next.Employment(), calc.MonthlyPayment)
		next = next.WithApprovalScore(score, now)
		if cosigner, ok := next.Cosigner(); ok {
			combined := uc.combiner.Combine(score, cosigner)
			next = next.WithCombinedScore(combined.Score, now)
		}
	}

	saved, err := uc.repo.Save(ctx, next)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("save request: %w", err)
	}
	uc.sink.publish(ctx, next)

	return toRequestResponse(saved), nil
}
