package usecase

import (
	"context"
	"fmt"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/dto"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/port"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/service"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

// AddCosignerUseCase attaches a cosigner and, when the request is already
// scored, computes the combined score in the same write.
type AddCosignerUseCase struct {
	repo     port.RequestRepository
	sink     *EventSink
	combiner *service.CosignerCombiner
	clock    port.Clock
}

// NewAddCosignerUseCase wires dependencies.
func NewAddCosignerUseCase(repo port.RequestRepository, sink *EventSink, combiner *service.CosignerCombiner, clock port.Clock) *AddCosignerUseCase {
	return &AddCosignerUseCase{repo: repo, sink: sink, combiner: combiner, clock: clock}
}

// Execute adds the cosigner and persists the result.
func (uc *AddCosignerUseCase) Execute(ctx context.Context, req dto.AddCosignerRequest) (dto.FIRequestResponse, error) {
	current, err := uc.repo.FindByID(ctx, req.TenantID, req.RequestID)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("load request: %w", err)
	}
	if err := checkVersion(current, req.Version); err != nil {
		return dto.FIRequestResponse{}, err
	}

	creditRange, err := valueobject.NewCreditRange(req.CreditRange)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("parse credit range: %w", err)
	}

	now := uc.clock.Now()
	next, cosigner, err := current.AddCosigner(req.Name, creditRange, req.ActorID, now)
	if err != nil {
		return dto.FIRequestResponse{}, err
	}

	if score, scored := next.ApprovalScore(); scored {
		combined := uc.combiner.Combine(score, cosigner)
		next = next.WithCombinedScore(combined.Score, now)
	}

	saved, err := uc.repo.Save(ctx, next)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("save request: %w", err)
	}
	uc.sink.publish(ctx, next)

	return toRequestResponse(saved), nil
}
