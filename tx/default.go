package tx

import (
	"github.com/blockberries/chainmsg/config"
	"github.com/blockberries/chainmsg/cosmwasm"
	"github.com/blockberries/chainmsg/market"
	"github.com/blockberries/chainmsg/types"
)

// RegisterDefaults registers every message type this module defines.
func RegisterDefaults(r *Registry) error {
	for _, register := range []func(*Registry) error{
		Register[types.MsgSwap, market.MsgSwap],
		Register[types.MsgSwapSend, market.MsgSwapSend],
		Register[types.MsgStoreCode, cosmwasm.MsgStoreCode],
		Register[types.MsgInstantiateContract, cosmwasm.MsgInstantiateContract],
		Register[types.MsgExecuteContract, cosmwasm.MsgExecuteContract],
		Register[types.MsgMigrateContract, cosmwasm.MsgMigrateContract],
		Register[types.MsgUpdateAdmin, cosmwasm.MsgUpdateAdmin],
		Register[types.MsgClearAdmin, cosmwasm.MsgClearAdmin],
		Register[types.TerraMsgExecuteContract, cosmwasm.TerraMsgExecuteContract],
	} {
		if err := register(r); err != nil {
			return err
		}
	}
	return nil
}

// NewDefaultRegistry returns a registry with every message type of
// this module registered.
func NewDefaultRegistry(cfg config.Config, opts ...Option) (*Registry, error) {
	r, err := NewRegistry(cfg, opts...)
	if err != nil {
		return nil, err
	}
	if err := RegisterDefaults(r); err != nil {
		return nil, err
	}
	return r, nil
}
