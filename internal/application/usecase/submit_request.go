package usecase

import (
	"context"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/dto"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

// SubmitRequestUseCase is the dedicated submission entry point. It is a
// thin shell over the generic transition path so submission keeps a stable
// external operation while sharing one transition implementation.
type SubmitRequestUseCase struct {
	transition *TransitionRequestUseCase
}

// NewSubmitRequestUseCase wires dependencies.
func NewSubmitRequestUseCase(transition *TransitionRequestUseCase) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{transition: transition}
}

// Execute submits a draft request for review.
func (uc *SubmitRequestUseCase) Execute(ctx context.Context, req dto.SubmitRequestRequest) (dto.FIRequestResponse, error) {
	return uc.transition.Execute(ctx, dto.TransitionRequestRequest{
		TenantID:     req.TenantID,
		RequestID:    req.RequestID,
		ActorID:      req.ActorID,
		TargetStatus: valueobject.RequestStatusSubmitted.String(),
		Version:      req.Version,
	})
}
