// Package v1alpha1 exposes the armor orchestrator as the mecharmor.v1alpha1.ArmorService gRPC
// service. Every method takes and returns a google.protobuf.Struct holding a JSON-shaped body.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "mecharmor.v1alpha1.ArmorService"

// Method names of the armor service
const (
	MethodCreateDraft         = "CreateDraft"
	MethodGetDraft            = "GetDraft"
	MethodListDrafts          = "ListDrafts"
	MethodDeleteDraft         = "DeleteDraft"
	MethodSetArmorType        = "SetArmorType"
	MethodSetTonnage          = "SetTonnage"
	MethodAdjustTonnage       = "AdjustTonnage"
	MethodUpdateLocation      = "UpdateLocation"
	MethodApplyDistribution   = "ApplyDistribution"
	MethodPreviewDistribution = "PreviewDistribution"
	MethodMaximize            = "Maximize"
	MethodAutoAllocate        = "AutoAllocate"
	MethodUndo                = "Undo"
	MethodRedo                = "Redo"
	MethodInteract            = "Interact"
	MethodListArmorTypes      = "ListArmorTypes"
	MethodListPresets         = "ListPresets"
	MethodSaveLoadout         = "SaveLoadout"
	MethodGetLoadout          = "GetLoadout"
	MethodListLoadouts        = "ListLoadouts"
	MethodImportMTF           = "ImportMTF"
)

// ArmorServiceServer is the server API for the armor service
type ArmorServiceServer interface {
	CreateDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListDrafts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetArmorType(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetTonnage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AdjustTonnage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateLocation(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ApplyDistribution(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PreviewDistribution(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Maximize(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AutoAllocate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Undo(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Redo(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Interact(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListArmorTypes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListPresets(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveLoadout(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetLoadout(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListLoadouts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ImportMTF(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(ArmorServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv interface{},
			ctx context.Context,
			dec func(interface{}) error,
			interceptor grpc.UnaryServerInterceptor,
		) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(ArmorServiceServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(server, ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// FullMethod returns the /service/method path of a method
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// ArmorServiceDesc describes the armor service for grpc.Server.RegisterService
var ArmorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ArmorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodCreateDraft, ArmorServiceServer.CreateDraft),
		unary(MethodGetDraft, ArmorServiceServer.GetDraft),
		unary(MethodListDrafts, ArmorServiceServer.ListDrafts),
		unary(MethodDeleteDraft, ArmorServiceServer.DeleteDraft),
		unary(MethodSetArmorType, ArmorServiceServer.SetArmorType),
		unary(MethodSetTonnage, ArmorServiceServer.SetTonnage),
		unary(MethodAdjustTonnage, ArmorServiceServer.AdjustTonnage),
		unary(MethodUpdateLocation, ArmorServiceServer.UpdateLocation),
		unary(MethodApplyDistribution, ArmorServiceServer.ApplyDistribution),
		unary(MethodPreviewDistribution, ArmorServiceServer.PreviewDistribution),
		unary(MethodMaximize, ArmorServiceServer.Maximize),
		unary(MethodAutoAllocate, ArmorServiceServer.AutoAllocate),
		unary(MethodUndo, ArmorServiceServer.Undo),
		unary(MethodRedo, ArmorServiceServer.Redo),
		unary(MethodInteract, ArmorServiceServer.Interact),
		unary(MethodListArmorTypes, ArmorServiceServer.ListArmorTypes),
		unary(MethodListPresets, ArmorServiceServer.ListPresets),
		unary(MethodSaveLoadout, ArmorServiceServer.SaveLoadout),
		unary(MethodGetLoadout, ArmorServiceServer.GetLoadout),
		unary(MethodListLoadouts, ArmorServiceServer.ListLoadouts),
		unary(MethodImportMTF, ArmorServiceServer.ImportMTF),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mecharmor/v1alpha1/armor.proto",
}

// RegisterArmorServiceServer registers the armor service on s
func RegisterArmorServiceServer(s grpc.ServiceRegistrar, srv ArmorServiceServer) {
	s.RegisterService(&ArmorServiceDesc, srv)
}

// Client calls the armor service with JSON-shaped request and response values
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates an armor service client on an existing connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with req encoded as a Struct and decodes the reply into resp. resp may
// be nil when the reply is not needed.
func (c *Client) Call(ctx context.Context, method string, req, resp interface{}, opts ...grpc.CallOption) error {
	in, err := encode(req)
	if err != nil {
		return err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return err
	}

	if resp == nil {
		return nil
	}
	return decode(out, resp)
}
