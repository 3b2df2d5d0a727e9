package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/dto"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/port"
)

// SubmitDocumentUseCase records a document upload. When a validator is
// configured the verdict is fetched inline and lands in the same write; a
// validator failure downgrades to a plain submission so the upload is never
// lost, and the verdict can be recorded later through RecordValidation.
type SubmitDocumentUseCase struct {
	repo      port.RequestRepository
	sink      *EventSink
	validator port.DocumentValidator // nil disables inline validation
	clock     port.Clock
	logger    *slog.Logger
}

// NewSubmitDocumentUseCase wires dependencies.
func NewSubmitDocumentUseCase(
	repo port.RequestRepository,
	sink *EventSink,
	validator port.DocumentValidator,
	clock port.Clock,
	logger *slog.Logger,
) *SubmitDocumentUseCase {
	return &SubmitDocumentUseCase{
		repo:      repo,
		sink:      sink,
		validator: validator,
		clock:     clock,
		logger:    logger,
	}
}

// Execute records the upload and persists the result.
func (uc *SubmitDocumentUseCase) Execute(ctx context.Context, req dto.SubmitDocumentRequest) (dto.FIRequestResponse, error) {
	current, err := uc.repo.FindByID(ctx, req.TenantID, req.RequestID)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("load request: %w", err)
	}
	if err := checkVersion(current, req.Version); err != nil {
		return dto.FIRequestResponse{}, err
	}

	now := uc.clock.Now()
	next, doc, err := current.SubmitDocument(req.DocumentID, req.URL, req.ActorID, now)
	if err != nil {
		return dto.FIRequestResponse{}, err
	}

	if uc.validator != nil {
		verdict, verr := uc.validator.Validate(ctx, doc.URL, doc.Type)
		if verr != nil {
			uc.logger.Warn("document validation unavailable",
				"request_id", req.RequestID,
				"document_id", doc.ID,
				"error", verr)
		} else {
			next, _, err = next.RecordDocumentValidation(doc.ID, verdict, req.ActorID, now)
			if err != nil {
				return dto.FIRequestResponse{}, err
			}
		}
	}

	saved, err := uc.repo.Save(ctx, next)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("save request: %w", err)
	}
	uc.sink.publish(ctx, next)

	return toRequestResponse(saved), nil
}
