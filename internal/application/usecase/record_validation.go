package usecase

import (
	"context"
	"fmt"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/dto"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/port"
)

// RecordValidationUseCase records an externally produced verdict for a
// submitted document.
type RecordValidationUseCase struct {
	repo  port.RequestRepository
	sink  *EventSink
	clock port.Clock
}

// NewRecordValidationUseCase wires dependencies.
func NewRecordValidationUseCase(repo port.RequestRepository, sink *EventSink, clock port.Clock) *RecordValidationUseCase {
	return &RecordValidationUseCase{repo: repo, sink: sink, clock: clock}
}

// Execute records the verdict and persists the result.
func (uc *RecordValidationUseCase) Execute(ctx context.Context, req dto.RecordValidationRequest) (dto.FIRequestResponse, error) {
	current, err := uc.repo.FindByID(ctx, req.TenantID, req.RequestID)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("load request: %w", err)
	}
	if err := checkVersion(current, req.Version); err != nil {
		return dto.FIRequestResponse{}, err
	}

	next, _, err := current.RecordDocumentValidation(req.DocumentID, model.ValidationVerdict{
		IsValid:    req.IsValid,
		Confidence: req.Confidence,
		Notes:      req.Notes,
	}, req.ActorID, uc.clock.Now())
	if err != nil {
		return dto.FIRequestResponse{}, err
	}

	saved, err := uc.repo.Save(ctx, next)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("save request: %w", err)
	}
	uc.sink.publish(ctx, next)

	return toRequestResponse(saved), nil
}
