package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/chainmsg"
	"github.com/blockberries/chainmsg/market"
	chainmsgtest "github.com/blockberries/chainmsg/testing"
	"github.com/blockberries/chainmsg/types"
)

func wireSwap() types.MsgSwap {
	return types.MsgSwap{
		Trader:    chainmsgtest.Address("terra", 1),
		OfferCoin: &types.Coin{Denom: "uluna", Amount: "1000000"},
		AskDenom:  "uusd",
	}
}

func TestMsgSwapDecode(t *testing.T) {
	w := wireSwap()

	msg, err := market.MsgSwap{}.Decode(w)
	require.NoError(t, err)
	assert.Equal(t, market.MsgSwap{
		Trader:    chainmsg.MustParseAccountID(w.Trader),
		OfferCoin: chainmsg.MustParseCoin("uluna", "1000000"),
		AskDenom:  chainmsg.MustParseDenom("uusd"),
	}, msg)

	// Re-encoding reproduces the wire message field for field.
	assert.Equal(t, w, msg.Encode())
}

func TestMsgSwapMissingOfferCoin(t *testing.T) {
	w := wireSwap()
	w.OfferCoin = nil

	_, err := market.MsgSwap{}.Decode(w)
	e, ok := chainmsg.AsError(err)
	require.True(t, ok)
	assert.Equal(t, chainmsg.KindMissingField, e.Kind)
	assert.Equal(t, "offer_coin", e.Field)
}

func TestMsgSwapDecodeErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*types.MsgSwap)
		kind   chainmsg.Kind
		field  string
	}{
		{"bad trader", func(w *types.MsgSwap) { w.Trader = "terra1xyz" }, chainmsg.KindInvalidAddress, "trader"},
		{"empty trader", func(w *types.MsgSwap) { w.Trader = "" }, chainmsg.KindInvalidAddress, "trader"},
		{"bad offer denom", func(w *types.MsgSwap) { w.OfferCoin.Denom = "u" }, chainmsg.KindInvalidDenom, "offer_coin.denom"},
		{"bad offer amount", func(w *types.MsgSwap) { w.OfferCoin.Amount = "1,000" }, chainmsg.KindInvalidAmount, "offer_coin.amount"},
		{"negative offer", func(w *types.MsgSwap) { w.OfferCoin.Amount = "-5" }, chainmsg.KindNegativeAmount, "offer_coin.amount"},
		{"bad ask denom", func(w *types.MsgSwap) { w.AskDenom = "" }, chainmsg.KindInvalidDenom, "ask_denom"},
		// First failing field wins.
		{"trader and ask", func(w *types.MsgSwap) { w.Trader = "x"; w.AskDenom = "" }, chainmsg.KindInvalidAddress, "trader"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := wireSwap()
			c.mutate(&w)
			msg, err := market.MsgSwap{}.Decode(w)
			assert.Equal(t, market.MsgSwap{}, msg)
			e, ok := chainmsg.AsError(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, c.kind, e.Kind)
			assert.Equal(t, c.field, e.Field)
		})
	}
}

func TestMsgSwapSend(t *testing.T) {
	w := types.MsgSwapSend{
		FromAddress: chainmsgtest.Address("terra", 1),
		ToAddress:   chainmsgtest.Address("terra", 2),
		OfferCoin:   &types.Coin{Denom: "uusd", Amount: "250.5"},
		AskDenom:    "ukrw",
	}
	msg, err := market.MsgSwapSend{}.Decode(w)
	require.NoError(t, err)
	assert.Equal(t, chainmsgtest.AccountID(1), msg.FromAddress)
	assert.Equal(t, chainmsgtest.AccountID(2), msg.ToAddress)
	assert.Equal(t, w, msg.Encode())

	w.OfferCoin = nil
	_, err = market.MsgSwapSend{}.Decode(w)
	assert.ErrorIs(t, err, chainmsg.MissingField("offer_coin"))

	w.OfferCoin = &types.Coin{Denom: "uusd", Amount: "1"}
	w.ToAddress = "terra"
	_, err = market.MsgSwapSend{}.Decode(w)
	assert.ErrorIs(t, err, &chainmsg.Error{Kind: chainmsg.KindInvalidAddress, Field: "to_address"})
}

func TestMsgSwapCompliance(t *testing.T) {
	chainmsgtest.RunTranscodableSuite[types.MsgSwap](t, []market.MsgSwap{
		{
			Trader:    chainmsgtest.AccountID(1),
			OfferCoin: chainmsgtest.Coin("uluna", "1000000"),
			AskDenom:  chainmsg.MustParseDenom("uusd"),
		},
		{
			Trader:    chainmsgtest.AccountID(2),
			OfferCoin: chainmsgtest.Coin("ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", "0.000001"),
			AskDenom:  chainmsg.MustParseDenom("uluna"),
		},
	})
}

func TestMsgSwapSendCompliance(t *testing.T) {
	chainmsgtest.RunTranscodableSuite[types.MsgSwapSend](t, []market.MsgSwapSend{
		{
			FromAddress: chainmsgtest.AccountID(1),
			ToAddress:   chainmsgtest.AccountID(2),
			OfferCoin:   chainmsgtest.Coin("uusd", "42"),
			AskDenom:    chainmsg.MustParseDenom("uluna"),
		},
	})
}
