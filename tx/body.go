package tx

import (
	"github.com/blockberries/cramberry/pkg/cramberry"
	"github.com/pkg/errors"

	"github.com/blockberries/chainmsg"
	"github.com/blockberries/chainmsg/types"
)

// Body is the domain form of a transaction body: the messages to
// execute, in order, plus the unsigned envelope fields.
type Body struct {
	Msgs          []chainmsg.Msg
	Memo          string
	TimeoutHeight uint64
}

// BodyToWire packs every message of b.
func (r *Registry) BodyToWire(b Body) (types.TxBody, error) {
	anys, err := r.PackAll(b.Msgs)
	if err != nil {
		return types.TxBody{}, errors.Wrap(err, "tx body")
	}
	return types.TxBody{
		Messages:      anys,
		Memo:          b.Memo,
		TimeoutHeight: b.TimeoutHeight,
	}, nil
}

// BodyFromWire unpacks every message of w.
func (r *Registry) BodyFromWire(w types.TxBody) (Body, error) {
	msgs, err := r.UnpackAll(w.Messages)
	if err != nil {
		return Body{}, errors.Wrap(err, "tx body")
	}
	return Body{
		Msgs:          msgs,
		Memo:          w.Memo,
		TimeoutHeight: w.TimeoutHeight,
	}, nil
}

// EncodeBody packs b and serializes it for signing.
func (r *Registry) EncodeBody(b Body) ([]byte, error) {
	w, err := r.BodyToWire(b)
	if err != nil {
		return nil, err
	}
	data, err := cramberry.Marshal(&w)
	if err != nil {
		return nil, errors.Wrap(err, "cramberry marshal tx body")
	}
	return data, nil
}

// DecodeBody parses serialized body bytes and unpacks every message.
func (r *Registry) DecodeBody(data []byte) (Body, error) {
	var w types.TxBody
	if err := cramberry.Unmarshal(data, &w); err != nil {
		return Body{}, errors.Wrapf(ErrMalformedPayload, "tx body: %v", err)
	}
	return r.BodyFromWire(w)
}
