package grpc

// proto.go defines the gRPC server interface derived from
// autodealers/firequest/v1/firequest.proto. This file serves as a stand-in
// for buf-generated code; messages alias the application DTOs and travel
// over the JSON codec. Once `buf generate` is run, replace this file with
// the generated import.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ltorres832/AutoDealers-sub014/internal/application/dto"
)

// Message aliases. The JSON codec serialises these directly.
type (
	CreateRequestRequest     = dto.CreateRequestRequest
	SubmitRequestRequest     = dto.SubmitRequestRequest
	TransitionRequest        = dto.TransitionRequestRequest
	CalculateFinancingReq    = dto.CalculateFinancingRequest
	AddCosignerRequest       = dto.AddCosignerRequest
	RequestDocumentRequest   = dto.RequestDocumentRequest
	SubmitDocumentRequest    = dto.SubmitDocumentRequest
	RecordValidationRequest  = dto.RecordValidationRequest
	UpdateNotesRequest       = dto.UpdateNotesRequest
	GetRequestRequest        = dto.GetRequestRequest
	ListRequestsRequest      = dto.ListRequestsRequest
	FIRequestResponse        = dto.FIRequestResponse
	HistoryResponse          = dto.HistoryResponse
)

// ListRequestsResponse wraps the repeated request field.
type ListRequestsResponse struct {
	Requests []FIRequestResponse `json:"requests"`
}

// FIRequestServiceServer is the server API for FIRequestService. It mirrors
// the proto interface from autodealers.firequest.v1.FIRequestService.
type FIRequestServiceServer interface {
	CreateRequest(context.Context, *CreateRequestRequest) (*FIRequestResponse, error)
	SubmitRequest(context.Context, *SubmitRequestRequest) (*FIRequestResponse, error)
	TransitionRequestStatus(context.Context, *TransitionRequest) (*FIRequestResponse, error)
	CalculateFinancing(context.Context, *CalculateFinancingReq) (*FIRequestResponse, error)
	AddCosigner(context.Context, *AddCosignerRequest) (*FIRequestResponse, error)
	RequestDocument(context.Context, *RequestDocumentRequest) (*FIRequestResponse, error)
	SubmitDocument(context.Context, *SubmitDocumentRequest) (*FIRequestResponse, error)
	RecordValidation(context.Context, *RecordValidationRequest) (*FIRequestResponse, error)
	UpdateNotes(context.Context, *UpdateNotesRequest) (*FIRequestResponse, error)
	GetRequest(context.Context, *GetRequestRequest) (*FIRequestResponse, error)
	GetHistory(context.Context, *GetRequestRequest) (*HistoryResponse, error)
	ListRequests(context.Context, *ListRequestsRequest) (*ListRequestsResponse, error)
	mustEmbedUnimplementedFIRequestServiceServer()
}

// UnimplementedFIRequestServiceServer provides forward-compatible default
// implementations.
type UnimplementedFIRequestServiceServer struct{}

func (UnimplementedFIRequestServiceServer) CreateRequest(context.Context, *CreateRequestRequest) (*FIRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateRequest not implemented")
}
func (UnimplementedFIRequestServiceServer) SubmitRequest(context.Context, *SubmitRequestRequest) (*FIRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitRequest not implemented")
}
func (UnimplementedFIRequestServiceServer) TransitionRequestStatus(context.Context, *TransitionRequest) (*FIRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TransitionRequestStatus not implemented")
}
func (UnimplementedFIRequestServiceServer) CalculateFinancing(context.Context, *CalculateFinancingReq) (*FIRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateFinancing not implemented")
}
func (UnimplementedFIRequestServiceServer) AddCosigner(context.Context, *AddCosignerRequest) (*FIRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddCosigner not implemented")
}
func (UnimplementedFIRequestServiceServer) RequestDocument(context.Context, *RequestDocumentRequest) (*FIRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RequestDocument not implemented")
}
func (UnimplementedFIRequestServiceServer) SubmitDocument(context.Context, *SubmitDocumentRequest) (*FIRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitDocument not implemented")
}
func (UnimplementedFIRequestServiceServer) RecordValidation(context.Context, *RecordValidationRequest) (*FIRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordValidation not implemented")
}
func (UnimplementedFIRequestServiceServer) UpdateNotes(context.Context, *UpdateNotesRequest) (*FIRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateNotes not implemented")
}
func (UnimplementedFIRequestServiceServer) GetRequest(context.Context, *GetRequestRequest) (*FIRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRequest not implemented")
}
func (UnimplementedFIRequestServiceServer) GetHistory(context.Context, *GetRequestRequest) (*HistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetHistory not implemented")
}
func (UnimplementedFIRequestServiceServer) ListRequests(context.Context, *ListRequestsRequest) (*ListRequestsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRequests not implemented")
}
func (UnimplementedFIRequestServiceServer) mustEmbedUnimplementedFIRequestServiceServer() {}

// RegisterFIRequestServiceServer registers the server with the gRPC server.
func RegisterFIRequestServiceServer(s *grpclib.Server, srv FIRequestServiceServer) {
	s.RegisterService(&_FIRequestService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _FIRequestService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "autodealers.firequest.v1.FIRequestService",
	HandlerType: (*FIRequestServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateRequest", Handler: unaryHandler("CreateRequest", func(srv FIRequestServiceServer, ctx context.Context, in *CreateRequestRequest) (any, error) {
			return srv.CreateRequest(ctx, in)
		})},
		{MethodName: "SubmitRequest", Handler: unaryHandler("SubmitRequest", func(srv FIRequestServiceServer, ctx context.Context, in *SubmitRequestRequest) (any, error) {
			return srv.SubmitRequest(ctx, in)
		})},
		{MethodName: "TransitionRequestStatus", Handler: unaryHandler("TransitionRequestStatus", func(srv FIRequestServiceServer, ctx context.Context, in *TransitionRequest) (any, error) {
			return srv.TransitionRequestStatus(ctx, in)
		})},
		{MethodName: "CalculateFinancing", Handler: unaryHandler("CalculateFinancing", func(srv FIRequestServiceServer, ctx context.Context, in *CalculateFinancingReq) (any, error) {
			return srv.CalculateFinancing(ctx, in)
		})},
		{MethodName: "AddCosigner", Handler: unaryHandler("AddCosigner", func(srv FIRequestServiceServer, ctx context.Context, in *AddCosignerRequest) (any, error) {
			return srv.AddCosigner(ctx, in)
		})},
		{MethodName: "RequestDocument", Handler: unaryHandler("RequestDocument", func(srv FIRequestServiceServer, ctx context.Context, in *RequestDocumentRequest) (any, error) {
			return srv.RequestDocument(ctx, in)
		})},
		{MethodName: "SubmitDocument", Handler: unaryHandler("SubmitDocument", func(srv FIRequestServiceServer, ctx context.Context, in *SubmitDocumentRequest) (any, error) {
			return srv.SubmitDocument(ctx, in)
		})},
		{MethodName: "RecordValidation", Handler: unaryHandler("RecordValidation", func(srv FIRequestServiceServer, ctx context.Context, in *RecordValidationRequest) (any, error) {
			return srv.RecordValidation(ctx, in)
		})},
		{MethodName: "UpdateNotes", Handler: unaryHandler("UpdateNotes", func(srv FIRequestServiceServer, ctx context.Context, in *UpdateNotesRequest) (any, error) {
			return srv.UpdateNotes(ctx, in)
		})},
		{MethodName: "GetRequest", Handler: unaryHandler("GetRequest", func(srv FIRequestServiceServer, ctx context.Context, in *GetRequestRequest) (any, error) {
			return srv.GetRequest(ctx, in)
		})},
		{MethodName: "GetHistory", Handler: unaryHandler("GetHistory", func(srv FIRequestServiceServer, ctx context.Context, in *GetRequestRequest) (any, error) {
			return srv.GetHistory(ctx, in)
		})},
		{MethodName: "ListRequests", Handler: unaryHandler("ListRequests", func(srv FIRequestServiceServer, ctx context.Context, in *ListRequestsRequest) (any, error) {
			return srv.ListRequests(ctx, in)
		})},
	},
	Streams: []grpclib.StreamDesc{},
}

// unaryHandler builds the method handler glue that buf would otherwise
// generate per method.
func unaryHandler[T any](method string, invoke func(FIRequestServiceServer, context.Context, *T) (any, error)) func(any, context.Context, func(any) error, grpclib.UnaryServerInterceptor) (any, error) {
	fullMethod := "/autodealers.firequest.v1.FIRequestService/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
		in := new(T)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return invoke(srv.(FIRequestServiceServer), ctx, in)
		}
		info := &grpclib.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return invoke(srv.(FIRequestServiceServer), ctx, req.(*T))
		}
		return interceptor(ctx, in, info, handler)
	}
}
