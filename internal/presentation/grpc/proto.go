package grpc

// proto.go defines the gRPC server interface derived from
// wealthmanager/liability/v1/liability.proto. This file serves as a stand-in
// for buf-generated code. Once `buf generate` is run, replace this file with
// the import from github.com/AlanJumeaucourt/wealth-manager-api/gen/go/wealthmanager/liability/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/application/dto"
)

// LiabilityTerms carries the static terms of a liability on the wire.
// Monetary amounts and rates travel as decimal strings; dates as RFC 3339.
type LiabilityTerms struct {
	Name                 string `json:"name"`
	LiabilityType        string `json:"liability_type"`
	Direction            string `json:"direction"`
	PrincipalAmount      string `json:"principal_amount"`
	InterestRate         string `json:"interest_rate"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	CompoundingPeriod    string `json:"compounding_period"`
	PaymentFrequency     string `json:"payment_frequency"`
	DeferralType         string `json:"deferral_type"`
	DeferralPeriodMonths int    `json:"deferral_period_months"`
	PaymentAmount        string `json:"payment_amount,omitempty"`
	AccountID            string `json:"account_id,omitempty"`
}

type CreateLiabilityRequest struct {
	UserID string          `json:"user_id"`
	Terms  *LiabilityTerms `json:"terms"`
}

type CreateLiabilityResponse struct {
	Liability *dto.LiabilityResponse `json:"liability"`
}

type GetLiabilityRequest struct {
	UserID      string `json:"user_id"`
	LiabilityID string `json:"liability_id"`
	AsOf        string `json:"as_of,omitempty"`
}

type GetLiabilityResponse struct {
	Liability *dto.LiabilityResponse `json:"liability"`
}

type ListLiabilitiesRequest struct {
	UserID string `json:"user_id"`
	AsOf   string `json:"as_of,omitempty"`
}

type ListLiabilitiesResponse struct {
	Liabilities []dto.LiabilityResponse `json:"liabilities"`
}

type UpdateLiabilityRequest struct {
	UserID      string          `json:"user_id"`
	LiabilityID string          `json:"liability_id"`
	Terms       *LiabilityTerms `json:"terms"`
}

type UpdateLiabilityResponse struct {
	Liability *dto.LiabilityResponse `json:"liability"`
}

type DeleteLiabilityRequest struct {
	UserID      string `json:"user_id"`
	LiabilityID string `json:"liability_id"`
}

type DeleteLiabilityResponse struct {
	Deleted bool `json:"deleted"`
}

type RecordPaymentRequest struct {
	UserID          string `json:"user_id"`
	LiabilityID     string `json:"liability_id"`
	PaymentDate     string `json:"payment_date"`
	Amount          string `json:"amount"`
	PrincipalAmount string `json:"principal_amount,omitempty"`
	InterestAmount  string `json:"interest_amount,omitempty"`
	ExtraPayment    string `json:"extra_payment,omitempty"`
	Status          string `json:"status,omitempty"`
	TransactionID   string `json:"transaction_id,omitempty"`
}

type RecordPaymentResponse struct {
	Payment *dto.PaymentResponse `json:"payment"`
}

type DeletePaymentRequest struct {
	UserID      string `json:"user_id"`
	LiabilityID string `json:"liability_id"`
	PaymentID   string `json:"payment_id"`
	Confirm     bool   `json:"confirm"`
}

type DeletePaymentResponse struct {
	Deleted bool `json:"deleted"`
}

type RegenerateScheduleRequest struct {
	UserID      string `json:"user_id"`
	LiabilityID string `json:"liability_id"`
}

type RegenerateScheduleResponse struct {
	Liability *dto.LiabilityResponse `json:"liability"`
}

// LiabilityServiceServer is the server API for LiabilityService.
// It mirrors the proto-generated interface from wealthmanager.liability.v1.LiabilityService.
type LiabilityServiceServer interface {
	CreateLiability(context.Context, *CreateLiabilityRequest) (*CreateLiabilityResponse, error)
	GetLiability(context.Context, *GetLiabilityRequest) (*GetLiabilityResponse, error)
	ListLiabilities(context.Context, *ListLiabilitiesRequest) (*ListLiabilitiesResponse, error)
	UpdateLiability(context.Context, *UpdateLiabilityRequest) (*UpdateLiabilityResponse, error)
	DeleteLiability(context.Context, *DeleteLiabilityRequest) (*DeleteLiabilityResponse, error)
	RecordPayment(context.Context, *RecordPaymentRequest) (*RecordPaymentResponse, error)
	DeletePayment(context.Context, *DeletePaymentRequest) (*DeletePaymentResponse, error)
	RegenerateSchedule(context.Context, *RegenerateScheduleRequest) (*RegenerateScheduleResponse, error)
	mustEmbedUnimplementedLiabilityServiceServer()
}

// UnimplementedLiabilityServiceServer provides forward-compatible default implementations.
type UnimplementedLiabilityServiceServer struct{}

func (UnimplementedLiabilityServiceServer) CreateLiability(context.Context, *CreateLiabilityRequest) (*CreateLiabilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateLiability not implemented")
}
func (UnimplementedLiabilityServiceServer) GetLiability(context.Context, *GetLiabilityRequest) (*GetLiabilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLiability not implemented")
}
func (UnimplementedLiabilityServiceServer) ListLiabilities(context.Context, *ListLiabilitiesRequest) (*ListLiabilitiesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLiabilities not implemented")
}
func (UnimplementedLiabilityServiceServer) UpdateLiability(context.Context, *UpdateLiabilityRequest) (*UpdateLiabilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateLiability not implemented")
}
func (UnimplementedLiabilityServiceServer) DeleteLiability(context.Context, *DeleteLiabilityRequest) (*DeleteLiabilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteLiability not implemented")
}
func (UnimplementedLiabilityServiceServer) RecordPayment(context.Context, *RecordPaymentRequest) (*RecordPaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordPayment not implemented")
}
func (UnimplementedLiabilityServiceServer) DeletePayment(context.Context, *DeletePaymentRequest) (*DeletePaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeletePayment not implemented")
}
func (UnimplementedLiabilityServiceServer) RegenerateSchedule(context.Context, *RegenerateScheduleRequest) (*RegenerateScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegenerateSchedule not implemented")
}
func (UnimplementedLiabilityServiceServer) mustEmbedUnimplementedLiabilityServiceServer() {}

// RegisterLiabilityServiceServer registers the LiabilityServiceServer with the gRPC server.
func RegisterLiabilityServiceServer(s *grpclib.Server, srv LiabilityServiceServer) {
	s.RegisterService(&_LiabilityService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LiabilityService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "wealthmanager.liability.v1.LiabilityService",
	HandlerType: (*LiabilityServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateLiability", Handler: _LiabilityService_CreateLiability_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "GetLiability", Handler: _LiabilityService_GetLiability_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "ListLiabilities", Handler: _LiabilityService_ListLiabilities_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "UpdateLiability", Handler: _LiabilityService_UpdateLiability_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "DeleteLiability", Handler: _LiabilityService_DeleteLiability_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "RecordPayment", Handler: _LiabilityService_RecordPayment_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "DeletePayment", Handler: _LiabilityService_DeletePayment_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "RegenerateSchedule", Handler: _LiabilityService_RegenerateSchedule_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_CreateLiability_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateLiabilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).CreateLiability(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/wealthmanager.liability.v1.LiabilityService/CreateLiability",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).CreateLiability(ctx, req.(*CreateLiabilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_GetLiability_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLiabilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).GetLiability(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/wealthmanager.liability.v1.LiabilityService/GetLiability",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).GetLiability(ctx, req.(*GetLiabilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_ListLiabilities_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLiabilitiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).ListLiabilities(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/wealthmanager.liability.v1.LiabilityService/ListLiabilities",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).ListLiabilities(ctx, req.(*ListLiabilitiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_UpdateLiability_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateLiabilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).UpdateLiability(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/wealthmanager.liability.v1.LiabilityService/UpdateLiability",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).UpdateLiability(ctx, req.(*UpdateLiabilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_DeleteLiability_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteLiabilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).DeleteLiability(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/wealthmanager.liability.v1.LiabilityService/DeleteLiability",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).DeleteLiability(ctx, req.(*DeleteLiabilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_RecordPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).RecordPayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/wealthmanager.liability.v1.LiabilityService/RecordPayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).RecordPayment(ctx, req.(*RecordPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_DeletePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeletePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).DeletePayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/wealthmanager.liability.v1.LiabilityService/DeletePayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).DeletePayment(ctx, req.(*DeletePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_RegenerateSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegenerateScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).RegenerateSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/wealthmanager.liability.v1.LiabilityService/RegenerateSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).RegenerateSchedule(ctx, req.(*RegenerateScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}
