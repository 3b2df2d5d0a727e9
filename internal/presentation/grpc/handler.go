package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/usecase"
	"github.com/ltorres832/AutoDealers-sub014/internal/domain/valueobject"
	"github.com/ltorres832/AutoDealers-sub014/pkg/auth"
)

// FIRequestHandler is the gRPC handler for financing request operations.
// Tenant and actor identity always come from the verified token claims, not
// from request fields.
type FIRequestHandler struct {
	UnimplementedFIRequestServiceServer

	create       *usecase.CreateRequestUseCase
	submit       *usecase.SubmitRequestUseCase
	transition   *usecase.TransitionRequestUseCase
	financing    *usecase.CalculateFinancingUseCase
	addCosigner  *usecase.AddCosignerUseCase
	requestDoc   *usecase.RequestDocumentUseCase
	submitDoc    *usecase.SubmitDocumentUseCase
	recordVerify *usecase.RecordValidationUseCase
	updateNotes  *usecase.UpdateNotesUseCase
	get          *usecase.GetRequestUseCase
	getHistory   *usecase.GetHistoryUseCase
	list         *usecase.ListRequestsUseCase
}

// NewFIRequestHandler creates a new handler with all use-case dependencies.
func NewFIRequestHandler(
	create *usecase.CreateRequestUseCase,
	submit *usecase.SubmitRequestUseCase,
	transition *usecase.TransitionRequestUseCase,
	financing *usecase.CalculateFinancingUseCase,
	addCosigner *usecase.AddCosignerUseCase,
	requestDoc *usecase.RequestDocumentUseCase,
	submitDoc *usecase.SubmitDocumentUseCase,
	recordVerify *usecase.RecordValidationUseCase,
	updateNotes *usecase.UpdateNotesUseCase,
	get *usecase.GetRequestUseCase,
	getHistory *usecase.GetHistoryUseCase,
	list *usecase.ListRequestsUseCase,
) *FIRequestHandler {
	return &FIRequestHandler{
		create:       create,
		submit:       submit,
		transition:   transition,
		financing:    financing,
		addCosigner:  addCosigner,
		requestDoc:   requestDoc,
		submitDoc:    submitDoc,
		recordVerify: recordVerify,
		updateNotes:  updateNotes,
		get:          get,
		getHistory:   getHistory,
		list:         list,
	}
}

// CreateRequest opens a new financing request in draft.
func (h *FIRequestHandler) CreateRequest(ctx context.Context, in *CreateRequestRequest) (*FIRequestResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	req := *in
	req.TenantID = claims.TenantID
	req.ActorID = claims.ActorID

	resp, err := h.create.Execute(ctx, req)
	if err != nil {
		return nil, statusError(err)
	}
	return &resp, nil
}

// SubmitRequest submits a draft for review.
func (h *FIRequestHandler) SubmitRequest(ctx context.Context, in *SubmitRequestRequest) (*FIRequestResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	req := *in
	req.TenantID = claims.TenantID
	req.ActorID = claims.ActorID

	resp, err := h.submit.Execute(ctx, req)
	if err != nil {
		return nil, statusError(err)
	}
	return &resp, nil
}

// TransitionRequestStatus moves a request to a target status.
func (h *FIRequestHandler) TransitionRequestStatus(ctx context.Context, in *TransitionRequest) (*FIRequestResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	req := *in
	req.TenantID = claims.TenantID
	req.ActorID = claims.ActorID

	resp, err := h.transition.Execute(ctx, req)
	if err != nil {
		return nil, statusError(err)
	}
	return &resp, nil
}

// CalculateFinancing recomputes a request's financing calculation.
func (h *FIRequestHandler) CalculateFinancing(ctx context.Context, in *CalculateFinancingReq) (*FIRequestResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	req := *in
	req.TenantID = claims.TenantID
	req.ActorID = claims.ActorID

	resp, err := h.financing.Execute(ctx, req)
	if err != nil {
		return nil, statusError(err)
	}
	return &resp, nil
}

// AddCosigner attaches a cosigner to a request.
func (h *FIRequestHandler) AddCosigner(ctx context.Context, in *AddCosignerRequest) (*FIRequestResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	req := *in
	req.TenantID = claims.TenantID
	req.ActorID = claims.ActorID

	resp, err := h.addCosigner.Execute(ctx, req)
	if err != nil {
		return nil, statusError(err)
	}
	return &resp, nil
}

// RequestDocument asks the client for a document.
func (h *FIRequestHandler) RequestDocument(ctx context.Context, in *RequestDocumentRequest) (*FIRequestResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	req := *in
	req.TenantID = claims.TenantID
	req.ActorID = claims.ActorID

	resp, err := h.requestDoc.Execute(ctx, req)
	if err != nil {
		return nil, statusError(err)
	}
	return &resp, nil
}

// SubmitDocument records a document upload.
func (h *FIRequestHandler) SubmitDocument(ctx context.Context, in *SubmitDocumentRequest) (*FIRequestResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	req := *in
	req.TenantID = claims.TenantID
	req.ActorID = claims.ActorID

	resp, err := h.submitDoc.Execute(ctx, req)
	if err != nil {
		return nil, statusError(err)
	}
	return &resp, nil
}

// RecordValidation records a document validation verdict.
func (h *FIRequestHandler) RecordValidation(ctx context.Context, in *RecordValidationRequest) (*FIRequestResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	req := *in
	req.TenantID = claims.TenantID
	req.ActorID = claims.ActorID

	resp, err := h.recordVerify.Execute(ctx, req)
	if err != nil {
		return nil, statusError(err)
	}
	return &resp, nil
}

// UpdateNotes updates seller and F&I manager notes.
func (h *FIRequestHandler) UpdateNotes(ctx context.Context, in *UpdateNotesRequest) (*FIRequestResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	req := *in
	req.TenantID = claims.TenantID
	req.ActorID = claims.ActorID

	resp, err := h.updateNotes.Execute(ctx, req)
	if err != nil {
		return nil, statusError(err)
	}
	return &resp, nil
}

// GetRequest retrieves one financing request.
func (h *FIRequestHandler) GetRequest(ctx context.Context, in *GetRequestRequest) (*FIRequestResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	req := *in
	req.TenantID = claims.TenantID

	resp, err := h.get.Execute(ctx, req)
	if err != nil {
		return nil, statusError(err)
	}
	return &resp, nil
}

// GetHistory retrieves a request's audit history.
func (h *FIRequestHandler) GetHistory(ctx context.Context, in *GetRequestRequest) (*HistoryResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	req := *in
	req.TenantID = claims.TenantID

	resp, err := h.getHistory.Execute(ctx, req)
	if err != nil {
		return nil, statusError(err)
	}
	return &resp, nil
}

// ListRequests lists a client's financing requests.
func (h *FIRequestHandler) ListRequests(ctx context.Context, in *ListRequestsRequest) (*ListRequestsResponse, error) {
	claims, err := callerClaims(ctx)
	if err != nil {
		return nil, err
	}
	req := *in
	req.TenantID = claims.TenantID

	requests, err := h.list.Execute(ctx, req)
	if err != nil {
		return nil, statusError(err)
	}
	return &ListRequestsResponse{Requests: requests}, nil
}

func callerClaims(ctx context.Context) (*auth.Claims, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing authentication claims")
	}
	return claims, nil
}

// statusError maps domain errors onto gRPC status codes.
func statusError(err error) error {
	switch {
	case errors.Is(err, valueobject.ErrValidationFailed):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, valueobject.ErrInvalidTransition),
		errors.Is(err, valueobject.ErrPreconditionFailed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, valueobject.ErrConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, valueobject.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, valueobject.ErrExternalDependency):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
