package pantryv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	RecipeService_UseRecipe_FullMethodName     = "/pantry.v1.RecipeService/UseRecipe"
	RecipeService_ListUsageLogs_FullMethodName = "/pantry.v1.RecipeService/ListUsageLogs"
)

type RecipeServiceServer interface {
	UseRecipe(context.Context, *UseRecipeRequest) (*UseRecipeResponse, error)
	ListUsageLogs(context.Context, *ListUsageLogsRequest) (*ListUsageLogsResponse, error)
}

// UnimplementedRecipeServiceServer can be embedded for forward compatibility.
type UnimplementedRecipeServiceServer struct{}

func (UnimplementedRecipeServiceServer) UseRecipe(context.Context, *UseRecipeRequest) (*UseRecipeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UseRecipe not implemented")
}

func (UnimplementedRecipeServiceServer) ListUsageLogs(context.Context, *ListUsageLogsRequest) (*ListUsageLogsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListUsageLogs not implemented")
}

func RegisterRecipeServiceServer(s grpc.ServiceRegistrar, srv RecipeServiceServer) {
	s.RegisterService(&RecipeService_ServiceDesc, srv)
}

func _RecipeService_UseRecipe_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UseRecipeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecipeServiceServer).UseRecipe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RecipeService_UseRecipe_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RecipeServiceServer).UseRecipe(ctx, req.(*UseRecipeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RecipeService_ListUsageLogs_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListUsageLogsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecipeServiceServer).ListUsageLogs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RecipeService_ListUsageLogs_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RecipeServiceServer).ListUsageLogs(ctx, req.(*ListUsageLogsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var RecipeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pantry.v1.RecipeService",
	HandlerType: (*RecipeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "UseRecipe", Handler: _RecipeService_UseRecipe_Handler},
		{MethodName: "ListUsageLogs", Handler: _RecipeService_ListUsageLogs_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pantry/v1/recipe.json",
}

type RecipeServiceClient interface {
	UseRecipe(ctx context.Context, in *UseRecipeRequest, opts ...grpc.CallOption) (*UseRecipeResponse, error)
	ListUsageLogs(ctx context.Context, in *ListUsageLogsRequest, opts ...grpc.CallOption) (*ListUsageLogsResponse, error)
}

type recipeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRecipeServiceClient(cc grpc.ClientConnInterface) RecipeServiceClient {
	return &recipeServiceClient{cc: cc}
}

func (c *recipeServiceClient) UseRecipe(ctx context.Context, in *UseRecipeRequest, opts ...grpc.CallOption) (*UseRecipeResponse, error) {
	out := new(UseRecipeResponse)
	if err := c.cc.Invoke(ctx, RecipeService_UseRecipe_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeServiceClient) ListUsageLogs(ctx context.Context, in *ListUsageLogsRequest, opts ...grpc.CallOption) (*ListUsageLogsResponse, error) {
	out := new(ListUsageLogsResponse)
	if err := c.cc.Invoke(ctx, RecipeService_ListUsageLogs_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
