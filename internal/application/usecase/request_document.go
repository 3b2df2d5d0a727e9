package usecase

import (
	"context"
	"fmt"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/dto"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/port"
)

// RequestDocumentUseCase asks the client for a document.
type RequestDocumentUseCase struct {
	repo  port.RequestRepository
	sink  *EventSink
	clock port.Clock
}

// NewRequestDocumentUseCase wires dependencies.
func NewRequestDocumentUseCase(repo port.RequestRepository, sink *EventSink, clock port.Clock) *RequestDocumentUseCase {
	return &RequestDocumentUseCase{repo: repo, sink: sink, clock: clock}
}

// Execute adds a pending document to the request's document workflow.
func (uc *RequestDocumentUseCase) Execute(ctx context.Context, req dto.RequestDocumentRequest) (dto.FIRequestResponse, error) {
	current, err := uc.repo.FindByID(ctx, req.TenantID, req.RequestID)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("load request: %w", err)
	}
	if err := checkVersion(current, req.Version); err != nil {
		return dto.FIRequestResponse{}, err
	}

	next, _, err := current.RequestDocument(
		req.Name, req.Type, req.Description, req.Required,
		req.ActorID, uc.clock.Now(),
	)
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
