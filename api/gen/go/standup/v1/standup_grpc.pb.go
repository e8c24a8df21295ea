// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: standup/v1/standup.proto

package standupv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	StandupService_CreateStandup_FullMethodName      = "/standup.v1.StandupService/CreateStandup"
	StandupService_GetStandup_FullMethodName         = "/standup.v1.StandupService/GetStandup"
	StandupService_ListStandups_FullMethodName       = "/standup.v1.StandupService/ListStandups"
	StandupService_DeleteStandup_FullMethodName      = "/standup.v1.StandupService/DeleteStandup"
	StandupService_SetIcebreaker_FullMethodName      = "/standup.v1.StandupService/SetIcebreaker"
	StandupService_JoinStandup_FullMethodName        = "/standup.v1.StandupService/JoinStandup"
	StandupService_LeaveStandup_FullMethodName       = "/standup.v1.StandupService/LeaveStandup"
	StandupService_ShuffleRoster_FullMethodName      = "/standup.v1.StandupService/ShuffleRoster"
	StandupService_ReorderRoster_FullMethodName      = "/standup.v1.StandupService/ReorderRoster"
	StandupService_UpsertUpdate_FullMethodName       = "/standup.v1.StandupService/UpsertUpdate"
	StandupService_SetUpdateReady_FullMethodName     = "/standup.v1.StandupService/SetUpdateReady"
	StandupService_GetUpdate_FullMethodName          = "/standup.v1.StandupService/GetUpdate"
	StandupService_PreviousCommitment_FullMethodName = "/standup.v1.StandupService/PreviousCommitment"
	StandupService_StartStandup_FullMethodName       = "/standup.v1.StandupService/StartStandup"
	StandupService_AdvanceTurn_FullMethodName        = "/standup.v1.StandupService/AdvanceTurn"
	StandupService_RetreatTurn_FullMethodName        = "/standup.v1.StandupService/RetreatTurn"
	StandupService_SkipTurn_FullMethodName           = "/standup.v1.StandupService/SkipTurn"
	StandupService_FinishStandup_FullMethodName      = "/standup.v1.StandupService/FinishStandup"
	StandupService_GetUserStats_FullMethodName       = "/standup.v1.StandupService/GetUserStats"
)

// StandupServiceClient is the client API for StandupService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// StandupService orchestrates round-robin status meetings: roster management,
// written updates with readiness gating, race-safe turn transitions, and
// derived participation statistics.
type StandupServiceClient interface {
	// Standup lifecycle and metadata.
	CreateStandup(ctx context.Context, in *CreateStandupRequest, opts ...grpc.CallOption) (*CreateStandupResponse, error)
	GetStandup(ctx context.Context, in *GetStandupRequest, opts ...grpc.CallOption) (*GetStandupResponse, error)
	ListStandups(ctx context.Context, in *ListStandupsRequest, opts ...grpc.CallOption) (*ListStandupsResponse, error)
	DeleteStandup(ctx context.Context, in *DeleteStandupRequest, opts ...grpc.CallOption) (*DeleteStandupResponse, error)
	SetIcebreaker(ctx context.Context, in *SetIcebreakerRequest, opts ...grpc.CallOption) (*SetIcebreakerResponse, error)
	// Roster membership and ordering.
	JoinStandup(ctx context.Context, in *JoinStandupRequest, opts ...grpc.CallOption) (*JoinStandupResponse, error)
	LeaveStandup(ctx context.Context, in *LeaveStandupRequest, opts ...grpc.CallOption) (*LeaveStandupResponse, error)
	ShuffleRoster(ctx context.Context, in *ShuffleRosterRequest, opts ...grpc.CallOption) (*ShuffleRosterResponse, error)
	ReorderRoster(ctx context.Context, in *ReorderRosterRequest, opts ...grpc.CallOption) (*ReorderRosterResponse, error)
	// Written updates and readiness.
	UpsertUpdate(ctx context.Context, in *UpsertUpdateRequest, opts ...grpc.CallOption) (*UpsertUpdateResponse, error)
	SetUpdateReady(ctx context.Context, in *SetUpdateReadyRequest, opts ...grpc.CallOption) (*SetUpdateReadyResponse, error)
	GetUpdate(ctx context.Context, in *GetUpdateRequest, opts ...grpc.CallOption) (*GetUpdateResponse, error)
	PreviousCommitment(ctx context.Context, in *PreviousCommitmentRequest, opts ...grpc.CallOption) (*PreviousCommitmentResponse, error)
	// Turn transitions.
	StartStandup(ctx context.Context, in *StartStandupRequest, opts ...grpc.CallOption) (*StartStandupResponse, error)
	AdvanceTurn(ctx context.Context, in *AdvanceTurnRequest, opts ...grpc.CallOption) (*AdvanceTurnResponse, error)
	RetreatTurn(ctx context.Context, in *RetreatTurnRequest, opts ...grpc.CallOption) (*RetreatTurnResponse, error)
	SkipTurn(ctx context.Context, in *SkipTurnRequest, opts ...grpc.CallOption) (*SkipTurnResponse, error)
	FinishStandup(ctx context.Context, in *FinishStandupRequest, opts ...grpc.CallOption) (*FinishStandupResponse, error)
	// Statistics.
	GetUserStats(ctx context.Context, in *GetUserStatsRequest, opts ...grpc.CallOption) (*GetUserStatsResponse, error)
}

type standupServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStandupServiceClient(cc grpc.ClientConnInterface) StandupServiceClient {
	return &standupServiceClient{cc}
}

func (c *standupServiceClient) CreateStandup(ctx context.Context, in *CreateStandupRequest, opts ...grpc.CallOption) (*CreateStandupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateStandupResponse)
	err := c.cc.Invoke(ctx, StandupService_CreateStandup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) GetStandup(ctx context.Context, in *GetStandupRequest, opts ...grpc.CallOption) (*GetStandupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetStandupResponse)
	err := c.cc.Invoke(ctx, StandupService_GetStandup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) ListStandups(ctx context.Context, in *ListStandupsRequest, opts ...grpc.CallOption) (*ListStandupsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListStandupsResponse)
	err := c.cc.Invoke(ctx, StandupService_ListStandups_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) DeleteStandup(ctx context.Context, in *DeleteStandupRequest, opts ...grpc.CallOption) (*DeleteStandupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteStandupResponse)
	err := c.cc.Invoke(ctx, StandupService_DeleteStandup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) SetIcebreaker(ctx context.Context, in *SetIcebreakerRequest, opts ...grpc.CallOption) (*SetIcebreakerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetIcebreakerResponse)
	err := c.cc.Invoke(ctx, StandupService_SetIcebreaker_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) JoinStandup(ctx context.Context, in *JoinStandupRequest, opts ...grpc.CallOption) (*JoinStandupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(JoinStandupResponse)
	err := c.cc.Invoke(ctx, StandupService_JoinStandup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) LeaveStandup(ctx context.Context, in *LeaveStandupRequest, opts ...grpc.CallOption) (*LeaveStandupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LeaveStandupResponse)
	err := c.cc.Invoke(ctx, StandupService_LeaveStandup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) ShuffleRoster(ctx context.Context, in *ShuffleRosterRequest, opts ...grpc.CallOption) (*ShuffleRosterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ShuffleRosterResponse)
	err := c.cc.Invoke(ctx, StandupService_ShuffleRoster_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) ReorderRoster(ctx context.Context, in *ReorderRosterRequest, opts ...grpc.CallOption) (*ReorderRosterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReorderRosterResponse)
	err := c.cc.Invoke(ctx, StandupService_ReorderRoster_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) UpsertUpdate(ctx context.Context, in *UpsertUpdateRequest, opts ...grpc.CallOption) (*UpsertUpdateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpsertUpdateResponse)
	err := c.cc.Invoke(ctx, StandupService_UpsertUpdate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) SetUpdateReady(ctx context.Context, in *SetUpdateReadyRequest, opts ...grpc.CallOption) (*SetUpdateReadyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetUpdateReadyResponse)
	err := c.cc.Invoke(ctx, StandupService_SetUpdateReady_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) GetUpdate(ctx context.Context, in *GetUpdateRequest, opts ...grpc.CallOption) (*GetUpdateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetUpdateResponse)
	err := c.cc.Invoke(ctx, StandupService_GetUpdate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) PreviousCommitment(ctx context.Context, in *PreviousCommitmentRequest, opts ...grpc.CallOption) (*PreviousCommitmentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PreviousCommitmentResponse)
	err := c.cc.Invoke(ctx, StandupService_PreviousCommitment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) StartStandup(ctx context.Context, in *StartStandupRequest, opts ...grpc.CallOption) (*StartStandupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartStandupResponse)
	err := c.cc.Invoke(ctx, StandupService_StartStandup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) AdvanceTurn(ctx context.Context, in *AdvanceTurnRequest, opts ...grpc.CallOption) (*AdvanceTurnResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdvanceTurnResponse)
	err := c.cc.Invoke(ctx, StandupService_AdvanceTurn_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) RetreatTurn(ctx context.Context, in *RetreatTurnRequest, opts ...grpc.CallOption) (*RetreatTurnResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RetreatTurnResponse)
	err := c.cc.Invoke(ctx, StandupService_RetreatTurn_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) SkipTurn(ctx context.Context, in *SkipTurnRequest, opts ...grpc.CallOption) (*SkipTurnResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SkipTurnResponse)
	err := c.cc.Invoke(ctx, StandupService_SkipTurn_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) FinishStandup(ctx context.Context, in *FinishStandupRequest, opts ...grpc.CallOption) (*FinishStandupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FinishStandupResponse)
	err := c.cc.Invoke(ctx, StandupService_FinishStandup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *standupServiceClient) GetUserStats(ctx context.Context, in *GetUserStatsRequest, opts ...grpc.CallOption) (*GetUserStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetUserStatsResponse)
	err := c.cc.Invoke(ctx, StandupService_GetUserStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StandupServiceServer is the server API for StandupService service.
// All implementations must embed UnimplementedStandupServiceServer
// for forward compatibility.
//
// StandupService orchestrates round-robin status meetings: roster management,
// written updates with readiness gating, race-safe turn transitions, and
// derived participation statistics.
type StandupServiceServer interface {
	// Standup lifecycle and metadata.
	CreateStandup(context.Context, *CreateStandupRequest) (*CreateStandupResponse, error)
	GetStandup(context.Context, *GetStandupRequest) (*GetStandupResponse, error)
	ListStandups(context.Context, *ListStandupsRequest) (*ListStandupsResponse, error)
	DeleteStandup(context.Context, *DeleteStandupRequest) (*DeleteStandupResponse, error)
	SetIcebreaker(context.Context, *SetIcebreakerRequest) (*SetIcebreakerResponse, error)
	// Roster membership and ordering.
	JoinStandup(context.Context, *JoinStandupRequest) (*JoinStandupResponse, error)
	LeaveStandup(context.Context, *LeaveStandupRequest) (*LeaveStandupResponse, error)
	ShuffleRoster(context.Context, *ShuffleRosterRequest) (*ShuffleRosterResponse, error)
	ReorderRoster(context.Context, *ReorderRosterRequest) (*ReorderRosterResponse, error)
	// Written updates and readiness.
	UpsertUpdate(context.Context, *UpsertUpdateRequest) (*UpsertUpdateResponse, error)
	SetUpdateReady(context.Context, *SetUpdateReadyRequest) (*SetUpdateReadyResponse, error)
	GetUpdate(context.Context, *GetUpdateRequest) (*GetUpdateResponse, error)
	PreviousCommitment(context.Context, *PreviousCommitmentRequest) (*PreviousCommitmentResponse, error)
	// Turn transitions.
	StartStandup(context.Context, *StartStandupRequest) (*StartStandupResponse, error)
	AdvanceTurn(context.Context, *AdvanceTurnRequest) (*AdvanceTurnResponse, error)
	RetreatTurn(context.Context, *RetreatTurnRequest) (*RetreatTurnResponse, error)
	SkipTurn(context.Context, *SkipTurnRequest) (*SkipTurnResponse, error)
	FinishStandup(context.Context, *FinishStandupRequest) (*FinishStandupResponse, error)
	// Statistics.
	GetUserStats(context.Context, *GetUserStatsRequest) (*GetUserStatsResponse, error)
	mustEmbedUnimplementedStandupServiceServer()
}

// UnimplementedStandupServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedStandupServiceServer struct{}

func (UnimplementedStandupServiceServer) CreateStandup(context.Context, *CreateStandupRequest) (*CreateStandupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateStandup not implemented")
}
func (UnimplementedStandupServiceServer) GetStandup(context.Context, *GetStandupRequest) (*GetStandupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStandup not implemented")
}
func (UnimplementedStandupServiceServer) ListStandups(context.Context, *ListStandupsRequest) (*ListStandupsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListStandups not implemented")
}
func (UnimplementedStandupServiceServer) DeleteStandup(context.Context, *DeleteStandupRequest) (*DeleteStandupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteStandup not implemented")
}
func (UnimplementedStandupServiceServer) SetIcebreaker(context.Context, *SetIcebreakerRequest) (*SetIcebreakerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetIcebreaker not implemented")
}
func (UnimplementedStandupServiceServer) JoinStandup(context.Context, *JoinStandupRequest) (*JoinStandupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method JoinStandup not implemented")
}
func (UnimplementedStandupServiceServer) LeaveStandup(context.Context, *LeaveStandupRequest) (*LeaveStandupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LeaveStandup not implemented")
}
func (UnimplementedStandupServiceServer) ShuffleRoster(context.Context, *ShuffleRosterRequest) (*ShuffleRosterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ShuffleRoster not implemented")
}
func (UnimplementedStandupServiceServer) ReorderRoster(context.Context, *ReorderRosterRequest) (*ReorderRosterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReorderRoster not implemented")
}
func (UnimplementedStandupServiceServer) UpsertUpdate(context.Context, *UpsertUpdateRequest) (*UpsertUpdateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpsertUpdate not implemented")
}
func (UnimplementedStandupServiceServer) SetUpdateReady(context.Context, *SetUpdateReadyRequest) (*SetUpdateReadyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetUpdateReady not implemented")
}
func (UnimplementedStandupServiceServer) GetUpdate(context.Context, *GetUpdateRequest) (*GetUpdateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUpdate not implemented")
}
func (UnimplementedStandupServiceServer) PreviousCommitment(context.Context, *PreviousCommitmentRequest) (*PreviousCommitmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PreviousCommitment not implemented")
}
func (UnimplementedStandupServiceServer) StartStandup(context.Context, *StartStandupRequest) (*StartStandupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartStandup not implemented")
}
func (UnimplementedStandupServiceServer) AdvanceTurn(context.Context, *AdvanceTurnRequest) (*AdvanceTurnResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AdvanceTurn not implemented")
}
func (UnimplementedStandupServiceServer) RetreatTurn(context.Context, *RetreatTurnRequest) (*RetreatTurnResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RetreatTurn not implemented")
}
func (UnimplementedStandupServiceServer) SkipTurn(context.Context, *SkipTurnRequest) (*SkipTurnResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SkipTurn not implemented")
}
func (UnimplementedStandupServiceServer) FinishStandup(context.Context, *FinishStandupRequest) (*FinishStandupResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FinishStandup not implemented")
}
func (UnimplementedStandupServiceServer) GetUserStats(context.Context, *GetUserStatsRequest) (*GetUserStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserStats not implemented")
}
func (UnimplementedStandupServiceServer) mustEmbedUnimplementedStandupServiceServer() {}
func (UnimplementedStandupServiceServer) testEmbeddedByValue()                        {}

// UnsafeStandupServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to StandupServiceServer will
// result in compilation errors.
type UnsafeStandupServiceServer interface {
	mustEmbedUnimplementedStandupServiceServer()
}

func RegisterStandupServiceServer(s grpc.ServiceRegistrar, srv StandupServiceServer) {
	// If the following call panics, it indicates UnimplementedStandupServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&StandupService_ServiceDesc, srv)
}

func _StandupService_CreateStandup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateStandupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).CreateStandup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_CreateStandup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).CreateStandup(ctx, req.(*CreateStandupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_GetStandup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStandupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).GetStandup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_GetStandup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).GetStandup(ctx, req.(*GetStandupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_ListStandups_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListStandupsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).ListStandups(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_ListStandups_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).ListStandups(ctx, req.(*ListStandupsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_DeleteStandup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteStandupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).DeleteStandup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_DeleteStandup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).DeleteStandup(ctx, req.(*DeleteStandupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_SetIcebreaker_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetIcebreakerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).SetIcebreaker(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_SetIcebreaker_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).SetIcebreaker(ctx, req.(*SetIcebreakerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_JoinStandup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(JoinStandupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).JoinStandup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_JoinStandup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).JoinStandup(ctx, req.(*JoinStandupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_LeaveStandup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LeaveStandupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).LeaveStandup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_LeaveStandup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).LeaveStandup(ctx, req.(*LeaveStandupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_ShuffleRoster_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ShuffleRosterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).ShuffleRoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_ShuffleRoster_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).ShuffleRoster(ctx, req.(*ShuffleRosterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_ReorderRoster_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReorderRosterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).ReorderRoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_ReorderRoster_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).ReorderRoster(ctx, req.(*ReorderRosterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_UpsertUpdate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpsertUpdateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).UpsertUpdate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_UpsertUpdate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).UpsertUpdate(ctx, req.(*UpsertUpdateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_SetUpdateReady_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetUpdateReadyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).SetUpdateReady(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_SetUpdateReady_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).SetUpdateReady(ctx, req.(*SetUpdateReadyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_GetUpdate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUpdateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).GetUpdate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_GetUpdate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).GetUpdate(ctx, req.(*GetUpdateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_PreviousCommitment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PreviousCommitmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).PreviousCommitment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_PreviousCommitment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).PreviousCommitment(ctx, req.(*PreviousCommitmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_StartStandup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartStandupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).StartStandup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_StartStandup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).StartStandup(ctx, req.(*StartStandupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_AdvanceTurn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AdvanceTurnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).AdvanceTurn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_AdvanceTurn_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).AdvanceTurn(ctx, req.(*AdvanceTurnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_RetreatTurn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RetreatTurnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).RetreatTurn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_RetreatTurn_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).RetreatTurn(ctx, req.(*RetreatTurnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_SkipTurn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SkipTurnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).SkipTurn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_SkipTurn_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).SkipTurn(ctx, req.(*SkipTurnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_FinishStandup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinishStandupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).FinishStandup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_FinishStandup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).FinishStandup(ctx, req.(*FinishStandupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StandupService_GetUserStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUserStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StandupServiceServer).GetUserStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StandupService_GetUserStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StandupServiceServer).GetUserStats(ctx, req.(*GetUserStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// StandupService_ServiceDesc is the grpc.ServiceDesc for StandupService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var StandupService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "standup.v1.StandupService",
	HandlerType: (*StandupServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateStandup",
			Handler:    _StandupService_CreateStandup_Handler,
		},
		{
			MethodName: "GetStandup",
			Handler:    _StandupService_GetStandup_Handler,
		},
		{
			MethodName: "ListStandups",
			Handler:    _StandupService_ListStandups_Handler,
		},
		{
			MethodName: "DeleteStandup",
			Handler:    _StandupService_DeleteStandup_Handler,
		},
		{
			MethodName: "SetIcebreaker",
			Handler:    _StandupService_SetIcebreaker_Handler,
		},
		{
			MethodName: "JoinStandup",
			Handler:    _StandupService_JoinStandup_Handler,
		},
		{
			MethodName: "LeaveStandup",
			Handler:    _StandupService_LeaveStandup_Handler,
		},
		{
			MethodName: "ShuffleRoster",
			Handler:    _StandupService_ShuffleRoster_Handler,
		},
		{
			MethodName: "ReorderRoster",
			Handler:    _StandupService_ReorderRoster_Handler,
		},
		{
			MethodName: "UpsertUpdate",
			Handler:    _StandupService_UpsertUpdate_Handler,
		},
		{
			MethodName: "SetUpdateReady",
			Handler:    _StandupService_SetUpdateReady_Handler,
		},
		{
			MethodName: "GetUpdate",
			Handler:    _StandupService_GetUpdate_Handler,
		},
		{
			MethodName: "PreviousCommitment",
			Handler:    _StandupService_PreviousCommitment_Handler,
		},
		{
			MethodName: "StartStandup",
			Handler:    _StandupService_StartStandup_Handler,
		},
		{
			MethodName: "AdvanceTurn",
			Handler:    _StandupService_AdvanceTurn_Handler,
		},
		{
			MethodName: "RetreatTurn",
			Handler:    _StandupService_RetreatTurn_Handler,
		},
		{
			MethodName: "SkipTurn",
			Handler:    _StandupService_SkipTurn_Handler,
		},
		{
			MethodName: "FinishStandup",
			Handler:    _StandupService_FinishStandup_Handler,
		},
		{
			MethodName: "GetUserStats",
			Handler:    _StandupService_GetUserStats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "standup/v1/standup.proto",
}
