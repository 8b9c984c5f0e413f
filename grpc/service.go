package chainmsggrpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

const serviceName = "github.com/blockberries/chainmsg.v1.TranscodeService"

// TranscodeServiceServer is the server-side interface for the
// transcoding gRPC service.
type TranscodeServiceServer interface {
	Validate(context.Context, *ValidateRequest) (*ValidateResponse, error)
	TypeURLs(context.Context, *TypeURLsRequest) (*TypeURLsResponse, error)
}

// RegisterTranscodeServiceServer registers srv on a gRPC server.
func RegisterTranscodeServiceServer(s *grpc.Server, srv TranscodeServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

func handlerValidate(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(ValidateRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(TranscodeServiceServer).Validate(ctx, req)
}

func handlerTypeURLs(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(TypeURLsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(TranscodeServiceServer).TypeURLs(ctx, req)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*TranscodeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Validate", Handler: handlerValidate},
		{MethodName: "TypeURLs", Handler: handlerTypeURLs},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "github.com/blockberries/chainmsg/v1/service.cram",
}
