package pantryv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	InventoryService_ListLots_FullMethodName  = "/pantry.v1.InventoryService/ListLots"
	InventoryService_AddLot_FullMethodName    = "/pantry.v1.InventoryService/AddLot"
	InventoryService_RemoveLot_FullMethodName = "/pantry.v1.InventoryService/RemoveLot"
)

type InventoryServiceServer interface {
	ListLots(context.Context, *ListLotsRequest) (*ListLotsResponse, error)
	AddLot(context.Context, *AddLotRequest) (*Lot, error)
	RemoveLot(context.Context, *RemoveLotRequest) (*RemoveLotResponse, error)
}

type UnimplementedInventoryServiceServer struct{}

func (UnimplementedInventoryServiceServer) ListLots(context.Context, *ListLotsRequest) (*ListLotsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLots not implemented")
}

func (UnimplementedInventoryServiceServer) AddLot(context.Context, *AddLotRequest) (*Lot, error) {
	return nil, status.Error(codes.Unimplemented, "method AddLot not implemented")
}

func (UnimplementedInventoryServiceServer) RemoveLot(context.Context, *RemoveLotRequest) (*RemoveLotResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveLot not implemented")
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

func _InventoryService_ListLots_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListLotsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ListLots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InventoryService_ListLots_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).ListLots(ctx, req.(*ListLotsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_AddLot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddLotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).AddLot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InventoryService_AddLot_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).AddLot(ctx, req.(*AddLotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_RemoveLot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RemoveLotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).RemoveLot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InventoryService_RemoveLot_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InventoryServiceServer).RemoveLot(ctx, req.(*RemoveLotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pantry.v1.InventoryService",
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListLots", Handler: _InventoryService_ListLots_Handler},
		{MethodName: "AddLot", Handler: _InventoryService_AddLot_Handler},
		{MethodName: "RemoveLot", Handler: _InventoryService_RemoveLot_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pantry/v1/inventory.json",
}

type InventoryServiceClient interface {
	ListLots(ctx context.Context, in *ListLotsRequest, opts ...grpc.CallOption) (*ListLotsResponse, error)
	AddLot(ctx context.Context, in *AddLotRequest, opts ...grpc.CallOption) (*Lot, error)
	RemoveLot(ctx context.Context, in *RemoveLotRequest, opts ...grpc.CallOption) (*RemoveLotResponse, error)
}

type inventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryServiceClient(cc grpc.ClientConnInterface) InventoryServiceClient {
	return &inventoryServiceClient{cc: cc}
}

func (c *inventoryServiceClient) ListLots(ctx context.Context, in *ListLotsRequest, opts ...grpc.CallOption) (*ListLotsResponse, error) {
	out := new(ListLotsResponse)
	if err := c.cc.Invoke(ctx, InventoryService_ListLots_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) AddLot(ctx context.Context, in *AddLotRequest, opts ...grpc.CallOption) (*Lot, error) {
	out := new(Lot)
	if err := c.cc.Invoke(ctx, InventoryService_AddLot_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) RemoveLot(ctx context.Context, in *RemoveLotRequest, opts ...grpc.CallOption) (*RemoveLotResponse, error) {
	out := new(RemoveLotResponse)
	if err := c.cc.Invoke(ctx, InventoryService_RemoveLot_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
