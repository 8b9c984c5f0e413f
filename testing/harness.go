package chainmsgtest

import (
	"testing"

	"github.com/blockberries/chainmsg"
	"github.com/blockberries/chainmsg/config"
	"github.com/blockberries/chainmsg/tx"
	"github.com/blockberries/chainmsg/types"
)

// Harness wraps a registry and fails the test on any unexpected error.
type Harness struct {
	t   *testing.T
	reg *tx.Registry
}

// NewHarness creates a harness around a default registry with the
// default config.
func NewHarness(t *testing.T) *Harness {
	t.Helper()
	reg, err := tx.NewDefaultRegistry(config.Default())
	if err != nil {
		t.Fatalf("NewDefaultRegistry failed: %v", err)
	}
	return &Harness{t: t, reg: reg}
}

// Registry returns the underlying registry.
func (h *Harness) Registry() *tx.Registry {
	return h.reg
}

// Pack packs msg.
func (h *Harness) Pack(msg chainmsg.Msg) types.Any {
	h.t.Helper()
	a, err := h.reg.Pack(msg)
	if err != nil {
		h.t.Fatalf("Pack failed: %v", err)
	}
	return a
}

// Unpack unpacks a.
func (h *Harness) Unpack(a types.Any) chainmsg.Msg {
	h.t.Helper()
	msg, err := h.reg.Unpack(a)
	if err != nil {
		h.t.Fatalf("Unpack failed: %v", err)
	}
	return msg
}

// RoundTripBody encodes msgs into body bytes and decodes them back.
func (h *Harness) RoundTripBody(memo string, msgs ...chainmsg.Msg) tx.Body {
	h.t.Helper()
	data, err := h.reg.EncodeBody(tx.Body{Msgs: msgs, Memo: memo})
	if err != nil {
		h.t.Fatalf("EncodeBody failed: %v", err)
	}
	body, err := h.reg.DecodeBody(data)
	if err != nil {
		h.t.Fatalf("DecodeBody failed: %v", err)
	}
	return body
}
