package types

// Coin is the wire form of a denomination-tagged amount
// (cosmos.base.v1beta1.Coin). Amount is a decimal string; it is
// not validated here.
type Coin struct {
	Denom  string `cramberry:"1"`
	Amount string `cramberry:"2"`
}
