package types

// Any carries a serialized wire message together with the type URL
// that identifies which message it is (e.g.
// "/terra.market.v1beta1.MsgSwap").
type Any struct {
	TypeURL string `cramberry:"1"`
	Value   []byte `cramberry:"2"`
}

// TxBody is the message-carrying part of a transaction, prior to
// signing.
type TxBody struct {
	// Messages in execution order.
	Messages []Any `cramberry:"1"`
	// Free-form note attached to the transaction.
	Memo string `cramberry:"2"`
	// Block height after which the transaction is invalid. 0 = none.
	TimeoutHeight uint64 `cramberry:"3"`
}
