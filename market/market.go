// Package market holds the Terra market module messages: swapping a
// coin into another denomination.
package market

import (
	"github.com/blockberries/chainmsg"
	"github.com/blockberries/chainmsg/types"
)

const (
	TypeURLMsgSwap     = "/terra.market.v1beta1.MsgSwap"
	TypeURLMsgSwapSend = "/terra.market.v1beta1.MsgSwapSend"
)

// Compile-time interface checks.
var (
	_ chainmsg.Transcodable[types.MsgSwap, MsgSwap]         = MsgSwap{}
	_ chainmsg.Transcodable[types.MsgSwapSend, MsgSwapSend] = MsgSwapSend{}
)

// MsgSwap swaps OfferCoin into AskDenom on behalf of Trader.
type MsgSwap struct {
	Trader    chainmsg.AccountID
	OfferCoin chainmsg.Coin
	AskDenom  chainmsg.Denom
}

func (MsgSwap) TypeURL() string { return TypeURLMsgSwap }

func (MsgSwap) Decode(w types.MsgSwap) (MsgSwap, error) {
	trader, err := chainmsg.DecodeAccountID("trader", w.Trader)
	if err != nil {
		return MsgSwap{}, err
	}
	offer, err := chainmsg.DecodeRequiredCoin("offer_coin", w.OfferCoin)
	if err != nil {
		return MsgSwap{}, err
	}
	ask, err := chainmsg.DecodeDenom("ask_denom", w.AskDenom)
	if err != nil {
		return MsgSwap{}, err
	}
	return MsgSwap{Trader: trader, OfferCoin: offer, AskDenom: ask}, nil
}

func (m MsgSwap) Encode() types.MsgSwap {
	return types.MsgSwap{
		Trader:    m.Trader.String(),
		OfferCoin: chainmsg.EncodeRequiredCoin(m.OfferCoin),
		AskDenom:  m.AskDenom.String(),
	}
}

// MsgSwapSend swaps OfferCoin into AskDenom, paid by FromAddress, and
// sends the proceeds to ToAddress.
type MsgSwapSend struct {
	FromAddress chainmsg.AccountID
	ToAddress   chainmsg.AccountID
	OfferCoin   chainmsg.Coin
	AskDenom    chainmsg.Denom
}

func (MsgSwapSend) TypeURL() string { return TypeURLMsgSwapSend }

func (MsgSwapSend) Decode(w types.MsgSwapSend) (MsgSwapSend, error) {
	from, err := chainmsg.DecodeAccountID("from_address", w.FromAddress)
	if err != nil {
		return MsgSwapSend{}, err
	}
	to, err := chainmsg.DecodeAccountID("to_address", w.ToAddress)
	if err != nil {
		return MsgSwapSend{}, err
	}
	offer, err := chainmsg.DecodeRequiredCoin("offer_coin", w.OfferCoin)
	if err != nil {
		return MsgSwapSend{}, err
	}
	ask, err := chainmsg.DecodeDenom("ask_denom", w.AskDenom)
	if err != nil {
		return MsgSwapSend{}, err
	}
	return MsgSwapSend{
		FromAddress: from,
		ToAddress:   to,
		OfferCoin:   offer,
		AskDenom:    ask,
	}, nil
}

func (m MsgSwapSend) Encode() types.MsgSwapSend {
	return types.MsgSwapSend{
		FromAddress: m.FromAddress.String(),
		ToAddress:   m.ToAddress.String(),
		OfferCoin:   chainmsg.EncodeRequiredCoin(m.OfferCoin),
		AskDenom:    m.AskDenom.String(),
	}
}
