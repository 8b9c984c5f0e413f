package types

// MsgSwap swaps a coin to another denomination (terra.market.v1beta1).
type MsgSwap struct {
	Trader    string `cramberry:"1"`
	OfferCoin *Coin  `cramberry:"2"`
	AskDenom  string `cramberry:"3"`
}

// MsgSwapSend swaps a coin and sends the result to a recipient.
type MsgSwapSend struct {
	FromAddress string `cramberry:"1"`
	ToAddress   string `cramberry:"2"`
	OfferCoin   *Coin  `cramberry:"3"`
	AskDenom    string `cramberry:"4"`
}
