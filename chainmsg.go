// Package chainmsg converts between wire messages and validated
// domain messages used for transaction construction and signing.
// Wire messages are the flat, loosely-typed structs in package types
// that the cramberry codec reads and writes.
//
// The core [Transcodable] interface is implemented once per on-chain
// operation (see packages market and cosmwasm). The primitive codecs
// in this package (AccountID, Denom, Amount, Coin) and the helpers in
// optional.go and enum.go hold every field-level rule, so message
// implementations only wire fields together.
//
// Decoding is fallible and returns an *Error of a closed set of kinds.
// Encoding is total: a constructed domain message is always
// representable on the wire.
package chainmsg

// Msg is a domain message. TypeURL identifies the wire message it
// pairs with, e.g. "/terra.market.v1beta1.MsgSwap", and is how a
// transaction assembler routes a packed message to its decoder.
type Msg interface {
	TypeURL() string
}

// Transcodable is the conversion contract between a wire message W
// and its domain form D. D implements it on its value receiver so the
// zero value can act as the decoder:
//
//	swap, err := market.MsgSwap{}.Decode(wire)
//	wire = swap.Encode()
//
// Every implementation guarantees:
//  1. Decode never returns a partially valid D alongside a nil error.
//  2. Decode returns the first failing field only; errors are not
//     aggregated.
//  3. Encode never fails, and Decode(Encode(m)) equals m.
type Transcodable[W any, D any] interface {
	Msg

	// Decode validates w and builds the domain message.
	Decode(w W) (D, error)

	// Encode projects the receiver into its wire form. Optional
	// fields that are absent become the wire's empty sentinel.
	Encode() W
}
