package usecase

import (
	"context"
	"fmt"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/dto"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/port"
)

// GetRequestUseCase retrieves one financing request.
type GetRequestUseCase struct {
	repo port.RequestRepository
}

// NewGetRequestUseCase wires dependencies.
func NewGetRequestUseCase(repo port.RequestRepository) *GetRequestUseCase {
	return &GetRequestUseCase{repo: repo}
}

// Execute retrieves the request.
func (uc *GetRequestUseCase) Execute(ctx context.Context, req dto.GetRequestRequest) (dto.FIRequestResponse, error) {
	request, err := uc.repo.FindByID(ctx, req.TenantID, req.RequestID)
	if err != nil {
		return dto.FIRequestResponse{}, fmt.Errorf("load request: %w", err)
	}
	return toRequestResponse(request), nil
}

// GetHistoryUseCase retrieves a request's audit history.
type GetHistoryUseCase struct {
	repo port.RequestRepository
}

// NewGetHistoryUseCase wires dependencies.
func NewGetHistoryUseCase(repo port.RequestRepository) *GetHistoryUseCase {
	return &GetHistoryUseCase{repo: repo}
}

// Execute retrieves the history, oldest entry first.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, req dto.GetRequestRequest) (dto.HistoryResponse, error) {
	request, err := uc.repo.FindByID(ctx, req.TenantID, req.RequestID)
	if err != nil {
		return dto.HistoryResponse{}, fmt.Errorf("load request: %w", err)
	}
	return toHistoryResponse(request), nil
}

// ListRequestsUseCase lists a client's financing requests.
type ListRequestsUseCase struct {
	repo port.RequestRepository
}

// NewListRequestsUseCase wires dependencies.
func NewListRequestsUseCase(repo port.RequestRepository) *ListRequestsUseCase {
	return &ListRequestsUseCase{repo: repo}
}

// Execute lists the client's requests.
func (uc *ListRequestsUseCase) Execute(ctx context.Context, req dto.ListRequestsRequest) ([]dto.FIRequestResponse, error) {
	requests, err := uc.repo.FindByClientID(ctx, req.TenantID, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	responses := make([]dto.FIRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toRequestResponse(request))
	}
	return responses, nil
}
