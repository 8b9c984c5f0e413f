package chainmsggrpc

import "github.com/blockberries/chainmsg/types"

// ValidateRequest carries a wire transaction body to validate.
type ValidateRequest struct {
	Body types.TxBody `cramberry:"1"`
}

// ValidateResponse reports the outcome of decoding a body. Valid is
// false when any message fails to decode; the remaining fields then
// describe the first failure.
type ValidateResponse struct {
	Valid bool `cramberry:"1"`
	// Canonical type URL of every message, in order. Set when Valid.
	TypeURLs []string `cramberry:"2"`
	// Index of the failing message.
	Index uint32 `cramberry:"3"`
	// Conversion error kind, or "" for registry-level failures.
	Kind string `cramberry:"4"`
	// Dotted path of the offending field.
	Field string `cramberry:"5"`
	Error string `cramberry:"6"`
}

// TypeURLsRequest is the (empty) request for TypeURLs.
type TypeURLsRequest struct{}

// TypeURLsResponse lists the type URLs a server can decode.
type TypeURLsResponse struct {
	TypeURLs []string `cramberry:"1"`
}
