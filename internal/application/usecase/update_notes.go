package usecase

import (
	"context"
	"fmt"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/dto"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/port"
)

// UpdateNotesUseCase updates seller and F&I manager notes.
type UpdateNotesUseCase struct {
	repo  port.RequestRepository
	sink  *EventSink
	clock port.Clock
}

// NewUpdateNotesUseCase wires dependencies.
func NewUpdateNotesUseCase(repo port.RequestRepository, sink *EventSink, clock port.Clock) *UpdateNotesUseCase {
	return &UpdateNotesUseCase{repo: repo, sink: sink, clock: clock}
}

// Execute applies the note updates and persists the result. Nil note fields
// are left unchanged.
func (uc *UpdateNotesUseCase) Execute(ctx context.Context, req dto.UpdateNotesRequest) (dto.FIRequestResponse, error) {
	current, err := uc.repo.FindByID(ctx, req.TenantID, req.RequestID)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("load request: %w", err)
	}
	if err := checkVersion(current, req.Version); err != nil {
		return dto.FIRequestResponse{}, err
	}

	next, err := current.UpdateNotes(req.SellerNotes, req.FIManagerNotes, req.ActorID, uc.clock.Now())
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
