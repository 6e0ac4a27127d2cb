// Package netdiag_service declares the netdiag.NetDiagService gRPC service.
// Every method exchanges protobuf well-known types, so the service needs no
// generated message code; the descriptors below follow the layout
// protoc-gen-go-grpc would emit.
package netdiag_service

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
	structpb "google.golang.org/protobuf/types/known/structpb"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "netdiag.NetDiagService"

const (
	NetDiagService_Diagnose_FullMethodName        = "/netdiag.NetDiagService/Diagnose"
	NetDiagService_GetDiagnosis_FullMethodName    = "/netdiag.NetDiagService/GetDiagnosis"
	NetDiagService_ListDiagnoses_FullMethodName   = "/netdiag.NetDiagService/ListDiagnoses"
	NetDiagService_DeleteDiagnosis_FullMethodName = "/netdiag.NetDiagService/DeleteDiagnosis"
	NetDiagService_ClearDiagnoses_FullMethodName  = "/netdiag.NetDiagService/ClearDiagnoses"
	NetDiagService_GetStats_FullMethodName        = "/netdiag.NetDiagService/GetStats"
	NetDiagService_PostLimiter_FullMethodName     = "/netdiag.NetDiagService/PostLimiter"
)

// NetDiagServiceClient is the client API for NetDiagService.
type NetDiagServiceClient interface {
	Diagnose(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetDiagnosis(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListDiagnoses(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteDiagnosis(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	ClearDiagnoses(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	PostLimiter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type netDiagServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewNetDiagServiceClient(cc grpc.ClientConnInterface) NetDiagServiceClient {
	return &netDiagServiceClient{cc}
}

func (c *netDiagServiceClient) invoke(ctx context.Context, method string, in any, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *netDiagServiceClient) Diagnose(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, NetDiagService_Diagnose_FullMethodName, in, opts)
}

func (c *netDiagServiceClient) GetDiagnosis(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, NetDiagService_GetDiagnosis_FullMethodName, in, opts)
}

func (c *netDiagServiceClient) ListDiagnoses(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, NetDiagService_ListDiagnoses_FullMethodName, in, opts)
}

func (c *netDiagServiceClient) DeleteDiagnosis(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, NetDiagService_DeleteDiagnosis_FullMethodName, in, opts)
}

func (c *netDiagServiceClient) ClearDiagnoses(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, NetDiagService_ClearDiagnoses_FullMethodName, in, opts)
}

func (c *netDiagServiceClient) GetStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, NetDiagService_GetStats_FullMethodName, in, opts)
}

func (c *netDiagServiceClient) PostLimiter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, NetDiagService_PostLimiter_FullMethodName, in, opts)
}

// NetDiagServiceServer is the server API for NetDiagService.
// All implementations must embed UnimplementedNetDiagServiceServer.
type NetDiagServiceServer interface {
	Diagnose(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDiagnosis(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListDiagnoses(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteDiagnosis(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ClearDiagnoses(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetStats(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	PostLimiter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	mustEmbedUnimplementedNetDiagServiceServer()
}

type UnimplementedNetDiagServiceServer struct{}

func (UnimplementedNetDiagServiceServer) Diagnose(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Diagnose not implemented")
}
func (UnimplementedNetDiagServiceServer) GetDiagnosis(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDiagnosis not implemented")
}
func (UnimplementedNetDiagServiceServer) ListDiagnoses(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDiagnoses not implemented")
}
func (UnimplementedNetDiagServiceServer) DeleteDiagnosis(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteDiagnosis not implemented")
}
func (UnimplementedNetDiagServiceServer) ClearDiagnoses(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearDiagnoses not implemented")
}
func (UnimplementedNetDiagServiceServer) GetStats(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStats not implemented")
}
func (UnimplementedNetDiagServiceServer) PostLimiter(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PostLimiter not implemented")
}
func (UnimplementedNetDiagServiceServer) mustEmbedUnimplementedNetDiagServiceServer() {}

func RegisterNetDiagServiceServer(s grpc.ServiceRegistrar, srv NetDiagServiceServer) {
	s.RegisterService(&NetDiagService_ServiceDesc, srv)
}

// unaryHandler adapts one typed server method to grpc.MethodDesc.
func unaryHandler[Req any](fullMethod string, call func(NetDiagServiceServer, context.Context, *Req) (*structpb.Struct, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(NetDiagServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(NetDiagServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var NetDiagService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NetDiagServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Diagnose",
			Handler:    unaryHandler(NetDiagService_Diagnose_FullMethodName, NetDiagServiceServer.Diagnose),
		},
		{
			MethodName: "GetDiagnosis",
			Handler:    unaryHandler(NetDiagService_GetDiagnosis_FullMethodName, NetDiagServiceServer.GetDiagnosis),
		},
		{
			MethodName: "ListDiagnoses",
			Handler:    unaryHandler(NetDiagService_ListDiagnoses_FullMethodName, NetDiagServiceServer.ListDiagnoses),
		},
		{
			MethodName: "DeleteDiagnosis",
			Handler:    unaryHandler(NetDiagService_DeleteDiagnosis_FullMethodName, NetDiagServiceServer.DeleteDiagnosis),
		},
		{
			MethodName: "ClearDiagnoses",
			Handler:    unaryHandler(NetDiagService_ClearDiagnoses_FullMethodName, NetDiagServiceServer.ClearDiagnoses),
		},
		{
			MethodName: "GetStats",
			Handler:    unaryHandler(NetDiagService_GetStats_FullMethodName, NetDiagServiceServer.GetStats),
		},
		{
			MethodName: "PostLimiter",
			Handler:    unaryHandler(NetDiagService_PostLimiter_FullMethodName, NetDiagServiceServer.PostLimiter),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "netdiag_service.proto",
}
