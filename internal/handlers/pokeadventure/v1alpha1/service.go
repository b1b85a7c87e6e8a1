package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Full method names
const (
	AdventureServiceName                 = "pokeadventure.v1alpha1.AdventureService"
	AdventureServiceExploreFullMethod    = "/" + AdventureServiceName + "/Explore"
	AdventureServiceAttackFullMethod     = "/" + AdventureServiceName + "/Attack"
	AdventureServiceThrowBallFullMethod  = "/" + AdventureServiceName + "/ThrowBall"
	AdventureServiceCheckEvolutionMethod = "/" + AdventureServiceName + "/CheckEvolution"
	AdventureServiceReleaseFullMethod    = "/" + AdventureServiceName + "/Release"
)

// AdventureServiceServer is the server API for the adventure service
type AdventureServiceServer interface {
	Explore(context.Context, *ExploreRequest) (*ExploreResponse, error)
	Attack(context.Context, *AttackRequest) (*AttackResponse, error)
	ThrowBall(context.Context, *ThrowBallRequest) (*ThrowBallResponse, error)
	CheckEvolution(context.Context, *CheckEvolutionRequest) (*CheckEvolutionResponse, error)
	Release(context.Context, *ReleaseRequest) (*ReleaseResponse, error)
}

// UnimplementedAdventureServiceServer can be embedded for forward compatibility
type UnimplementedAdventureServiceServer struct{}

// Explore returns Unimplemented
func (UnimplementedAdventureServiceServer) Explore(context.Context, *ExploreRequest) (*ExploreResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Explore not implemented")
}

// Attack returns Unimplemented
func (UnimplementedAdventureServiceServer) Attack(context.Context, *AttackRequest) (*AttackResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Attack not implemented")
}

// ThrowBall returns Unimplemented
func (UnimplementedAdventureServiceServer) ThrowBall(
	context.Context,
	*ThrowBallRequest,
) (*ThrowBallResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ThrowBall not implemented")
}

// CheckEvolution returns Unimplemented
func (UnimplementedAdventureServiceServer) CheckEvolution(
	context.Context,
	*CheckEvolutionRequest,
) (*CheckEvolutionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckEvolution not implemented")
}

// Release returns Unimplemented
func (UnimplementedAdventureServiceServer) Release(context.Context, *ReleaseRequest) (*ReleaseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Release not implemented")
}

// RegisterAdventureServiceServer registers srv on s
func RegisterAdventureServiceServer(s grpc.ServiceRegistrar, srv AdventureServiceServer) {
	s.RegisterService(&AdventureServiceDesc, srv)
}

// unaryHandler adapts a typed method to grpc's method handler shape
func unaryHandler[Req any, Resp any](
	fullMethod string,
	call func(AdventureServiceServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AdventureServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AdventureServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AdventureServiceDesc is the grpc.ServiceDesc for the adventure service
var AdventureServiceDesc = grpc.ServiceDesc{
	ServiceName: AdventureServiceName,
	HandlerType: (*AdventureServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Explore",
			Handler: unaryHandler(AdventureServiceExploreFullMethod,
				AdventureServiceServer.Explore),
		},
		{
			MethodName: "Attack",
			Handler: unaryHandler(AdventureServiceAttackFullMethod,
				AdventureServiceServer.Attack),
		},
		{
			MethodName: "ThrowBall",
			Handler: unaryHandler(AdventureServiceThrowBallFullMethod,
				AdventureServiceServer.ThrowBall),
		},
		{
			MethodName: "CheckEvolution",
			Handler: unaryHandler(AdventureServiceCheckEvolutionMethod,
				AdventureServiceServer.CheckEvolution),
		},
		{
			MethodName: "Release",
			Handler: unaryHandler(AdventureServiceReleaseFullMethod,
				AdventureServiceServer.Release),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pokeadventure/v1alpha1/adventure.json",
}

// AdventureServiceClient is the client API for the adventure service
type AdventureServiceClient interface {
	Explore(ctx context.Context, in *ExploreRequest, opts ...grpc.CallOption) (*ExploreResponse, error)
	Attack(ctx context.Context, in *AttackRequest, opts ...grpc.CallOption) (*AttackResponse, error)
	ThrowBall(ctx context.Context, in *ThrowBallRequest, opts ...grpc.CallOption) (*ThrowBallResponse, error)
	CheckEvolution(
		ctx context.Context,
		in *CheckEvolutionRequest,
		opts ...grpc.CallOption,
	) (*CheckEvolutionResponse, error)
	Release(ctx context.Context, in *ReleaseRequest, opts ...grpc.CallOption) (*ReleaseResponse, error)
}

type adventureServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAdventureServiceClient creates a client that always uses the JSON codec
func NewAdventureServiceClient(cc grpc.ClientConnInterface) AdventureServiceClient {
	return &adventureServiceClient{cc: cc}
}

func (c *adventureServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *adventureServiceClient) Explore(
	ctx context.Context,
	in *ExploreRequest,
	opts ...grpc.CallOption,
) (*ExploreResponse, error) {
	out := new(ExploreResponse)
	if err := c.invoke(ctx, AdventureServiceExploreFullMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adventureServiceClient) Attack(
	ctx context.Context,
	in *AttackRequest,
	opts ...grpc.CallOption,
) (*AttackResponse, error) {
	out := new(AttackResponse)
	if err := c.invoke(ctx, AdventureServiceAttackFullMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adventureServiceClient) ThrowBall(
	ctx context.Context,
	in *ThrowBallRequest,
	opts ...grpc.CallOption,
) (*ThrowBallResponse, error) {
	out := new(ThrowBallResponse)
	if err := c.invoke(ctx, AdventureServiceThrowBallFullMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adventureServiceClient) CheckEvolution(
	ctx context.Context,
	in *CheckEvolutionRequest,
	opts ...grpc.CallOption,
) (*CheckEvolutionResponse, error) {
	out := new(CheckEvolutionResponse)
	if err := c.invoke(ctx, AdventureServiceCheckEvolutionMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adventureServiceClient) Release(
	ctx context.Context,
	in *ReleaseRequest,
	opts ...grpc.CallOption,
) (*ReleaseResponse, error) {
	out := new(ReleaseResponse)
	if err := c.invoke(ctx, AdventureServiceReleaseFullMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
