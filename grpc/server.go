package chainmsggrpc

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/blockberries/chainmsg"
	"github.com/blockberries/chainmsg/tx"
)

// Compile-time interface check.
var _ TranscodeServiceServer = (*Server)(nil)

// Server answers transcoding RPCs from a Registry. Conversion failures
// are reported in the response, not as RPC errors.
type Server struct {
	reg    *tx.Registry
	logger *zap.Logger
}

// NewServer wraps reg. A nil logger discards everything.
func NewServer(reg *tx.Registry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{reg: reg, logger: logger}
}

// Register registers the service on s.
func (srv *Server) Register(s *grpc.Server) {
	RegisterTranscodeServiceServer(s, srv)
}

func (srv *Server) Validate(_ context.Context, req *ValidateRequest) (*ValidateResponse, error) {
	urls := make([]string, 0, len(req.Body.Messages))
	for i, a := range req.Body.Messages {
		if _, err := srv.reg.Unpack(a); err != nil {
			resp := &ValidateResponse{Index: uint32(i), Error: err.Error()}
			if e, ok := chainmsg.AsError(err); ok {
				resp.Kind = string(e.Kind)
				resp.Field = e.Field
			}
			srv.logger.Info("rejected tx body",
				zap.Int("index", i),
				zap.String("type_url", a.TypeURL),
				zap.String("kind", resp.Kind),
				zap.Error(errors.Cause(err)),
			)
			return resp, nil
		}
		urls = append(urls, srv.reg.Resolve(a.TypeURL))
	}
	return &ValidateResponse{Valid: true, TypeURLs: urls}, nil
}

func (srv *Server) TypeURLs(context.Context, *TypeURLsRequest) (*TypeURLsResponse, error) {
	return &TypeURLsResponse{TypeURLs: srv.reg.TypeURLs()}, nil
}
