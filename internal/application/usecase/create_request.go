package usecase

import (
	"context"
	"fmt"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/dto"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/model"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/port"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
)

// CreateRequestUseCase opens a new financing request in draft.
type CreateRequestUseCase struct {
	repo  port.RequestRepository
	sink  *EventSink
	clock port.Clock
}

// NewCreateRequestUseCase wires dependencies.
func NewCreateRequestUseCase(repo port.RequestRepository, sink *EventSink, clock port.Clock) *CreateRequestUseCase {
	return &CreateRequestUseCase{repo: repo, sink: sink, clock: clock}
}

// Execute creates and persists a draft request.
func (uc *CreateRequestUseCase) Execute(ctx context.Context, req dto.CreateRequestRequest) (dto.FIRequestResponse, error) {
	creditRange, err := valueobject.NewCreditRange(req.CreditRange)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("parse credit range: %w", err)
	}

	now := uc.clock.Now()
	request, err := model.NewFIRequest(
		req.TenantID, req.ClientID, req.ActorID,
		model.PersonalInfo{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
		},
		model.Employment{
			Employer:       req.Employer,
			Position:       req.Position,
			MonthsEmployed: req.MonthsEmployed,
			MonthlyIncome:  req.MonthlyIncome,
		},
		model.CreditInfo{CreditRange: creditRange},
		now,
	)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("create request: %w", err)
	}

	saved, err := uc.repo.Save(ctx, request)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("save request: %w", err)
	}
	uc.sink.publish(ctx, request)

	return toRequestResponse(saved), nil
}
