package chainmsggrpc

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/grpc"

	"github.com/blockberries/chainmsg/types"
)

// Client calls a remote TranscodeService using cramberry
// serialization.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a remote transcoding service.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(CramberryCodec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "chainmsg client: dial %s", addr)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

// Validate asks the server to decode every message of body.
func (c *Client) Validate(ctx context.Context, body types.TxBody) (ValidateResponse, error) {
	resp := new(ValidateResponse)
	if err := c.cc.Invoke(ctx, fullMethod("Validate"), &ValidateRequest{Body: body}, resp); err != nil {
		return ValidateResponse{}, err
	}
	return *resp, nil
}

// TypeURLs lists the type URLs the server can decode.
func (c *Client) TypeURLs(ctx context.Context) ([]string, error) {
	resp := new(TypeURLsResponse)
	if err := c.cc.Invoke(ctx, fullMethod("TypeURLs"), &TypeURLsRequest{}, resp); err != nil {
		return nil, err
	}
	return resp.TypeURLs, nil
}
