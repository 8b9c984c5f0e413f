// Package cosmwasm holds the CosmWasm smart contract messages
// (cosmwasm.wasm.v1) and the legacy Terra execute message
// (terra.wasm.v1beta1).
package cosmwasm

import (
	"bytes"

	"github.com/blockberries/chainmsg"
	"github.com/blockberries/chainmsg/types"
)

const (
	TypeURLMsgStoreCode            = "/cosmwasm.wasm.v1.MsgStoreCode"
	TypeURLMsgInstantiateContract  = "/cosmwasm.wasm.v1.MsgInstantiateContract"
	TypeURLMsgExecuteContract      = "/cosmwasm.wasm.v1.MsgExecuteContract"
	TypeURLMsgMigrateContract      = "/cosmwasm.wasm.v1.MsgMigrateContract"
	TypeURLMsgUpdateAdmin          = "/cosmwasm.wasm.v1.MsgUpdateAdmin"
	TypeURLMsgClearAdmin           = "/cosmwasm.wasm.v1.MsgClearAdmin"
	TypeURLTerraMsgExecuteContract = "/terra.wasm.v1beta1.MsgExecuteContract"
)

// Compile-time interface checks.
var (
	_ chainmsg.Transcodable[types.MsgStoreCode, MsgStoreCode]                       = MsgStoreCode{}
	_ chainmsg.Transcodable[types.MsgInstantiateContract, MsgInstantiateContract]   = MsgInstantiateContract{}
	_ chainmsg.Transcodable[types.MsgExecuteContract, MsgExecuteContract]           = MsgExecuteContract{}
	_ chainmsg.Transcodable[types.MsgMigrateContract, MsgMigrateContract]           = MsgMigrateContract{}
	_ chainmsg.Transcodable[types.MsgUpdateAdmin, MsgUpdateAdmin]                   = MsgUpdateAdmin{}
	_ chainmsg.Transcodable[types.MsgClearAdmin, MsgClearAdmin]                     = MsgClearAdmin{}
	_ chainmsg.Transcodable[types.TerraMsgExecuteContract, TerraMsgExecuteContract] = TerraMsgExecuteContract{}
)

// MsgStoreCode uploads Wasm code.
type MsgStoreCode struct {
	Sender chainmsg.AccountID
	// Raw or gzip compressed Wasm.
	WASMByteCode []byte
	// Nil = chain default.
	InstantiatePermission *AccessConfig
}

func (MsgStoreCode) TypeURL() string { return TypeURLMsgStoreCode }

func (MsgStoreCode) Decode(w types.MsgStoreCode) (MsgStoreCode, error) {
	sender, err := chainmsg.DecodeAccountID("sender", w.Sender)
	if err != nil {
		return MsgStoreCode{}, err
	}
	perm, err := decodeOptionalAccessConfig("instantiate_permission", w.InstantiatePermission)
	if err != nil {
		return MsgStoreCode{}, err
	}
	return MsgStoreCode{
		Sender:                sender,
		WASMByteCode:          bytes.Clone(w.WASMByteCode),
		InstantiatePermission: perm,
	}, nil
}

func (m MsgStoreCode) Encode() types.MsgStoreCode {
	return types.MsgStoreCode{
		Sender:                m.Sender.String(),
		WASMByteCode:          bytes.Clone(m.WASMByteCode),
		InstantiatePermission: encodeOptionalAccessConfig(m.InstantiatePermission),
	}
}

// MsgInstantiateContract creates a contract instance from stored code.
//
// The wire cannot tell an empty value from an absent one, so a Label
// pointing at "", an empty non-nil Funds or an empty non-nil Msg are
// not valid domain values and do not survive a round trip. Use nil.
type MsgInstantiateContract struct {
	Sender chainmsg.AccountID
	// Address allowed to migrate the contract. Nil = immutable.
	Admin  *chainmsg.AccountID
	CodeID uint64
	Label  *string
	// JSON encoded instantiation message.
	Msg []byte
	// Coins transferred to the contract on instantiation.
	Funds []chainmsg.Coin
}

func (MsgInstantiateContract) TypeURL() string { return TypeURLMsgInstantiateContract }

func (MsgInstantiateContract) Decode(w types.MsgInstantiateContract) (MsgInstantiateContract, error) {
	sender, err := chainmsg.DecodeAccountID("sender", w.Sender)
	if err != nil {
		return MsgInstantiateContract{}, err
	}
	admin, err := chainmsg.DecodeOptionalAccountID("admin", w.Admin)
	if err != nil {
		return MsgInstantiateContract{}, err
	}
	funds, err := chainmsg.DecodeCoins("funds", w.Funds)
	if err != nil {
		return MsgInstantiateContract{}, err
	}
	return MsgInstantiateContract{
		Sender: sender,
		Admin:  admin,
		CodeID: w.CodeID,
		Label:  chainmsg.DecodeOptionalString(w.Label),
		Msg:    bytes.Clone(w.Msg),
		Funds:  funds,
	}, nil
}

func (m MsgInstantiateContract) Encode() types.MsgInstantiateContract {
	return types.MsgInstantiateContract{
		Sender: m.Sender.String(),
		Admin:  chainmsg.EncodeOptionalAccountID(m.Admin),
		CodeID: m.CodeID,
		Label:  chainmsg.EncodeOptionalString(m.Label),
		Msg:    bytes.Clone(m.Msg),
		Funds:  chainmsg.EncodeCoins(m.Funds),
	}
}

// MsgExecuteContract submits Msg to Contract. As with
// MsgInstantiateContract, use nil rather than empty Msg and Funds.
type MsgExecuteContract struct {
	Sender   chainmsg.AccountID
	Contract chainmsg.AccountID
	// JSON encoded message passed to the contract.
	Msg []byte
	// Coins transferred to the contract on execution.
	Funds []chainmsg.Coin
}

func (MsgExecuteContract) TypeURL() string { return TypeURLMsgExecuteContract }

func (MsgExecuteContract) Decode(w types.MsgExecuteContract) (MsgExecuteContract, error) {
	sender, contract, err := decodeSenderContract(w.Sender, w.Contract)
	if err != nil {
		return MsgExecuteContract{}, err
	}
	funds, err := chainmsg.DecodeCoins("funds", w.Funds)
	if err != nil {
		return MsgExecuteContract{}, err
	}
	return MsgExecuteContract{
		Sender:   sender,
		Contract: contract,
		Msg:      bytes.Clone(w.Msg),
		Funds:    funds,
	}, nil
}

func (m MsgExecuteContract) Encode() types.MsgExecuteContract {
	return types.MsgExecuteContract{
		Sender:   m.Sender.String(),
		Contract: m.Contract.String(),
		Msg:      bytes.Clone(m.Msg),
		Funds:    chainmsg.EncodeCoins(m.Funds),
	}
}

// MsgMigrateContract moves Contract to the code stored under CodeID.
type MsgMigrateContract struct {
	Sender   chainmsg.AccountID
	Contract chainmsg.AccountID
	CodeID   uint64
	// JSON encoded message passed to the contract on migration.
	Msg []byte
}

func (MsgMigrateContract) TypeURL() string { return TypeURLMsgMigrateContract }

func (MsgMigrateContract) Decode(w types.MsgMigrateContract) (MsgMigrateContract, error) {
	sender, contract, err := decodeSenderContract(w.Sender, w.Contract)
	if err != nil {
		return MsgMigrateContract{}, err
	}
	return MsgMigrateContract{
		Sender:   sender,
		Contract: contract,
		CodeID:   w.CodeID,
		Msg:      bytes.Clone(w.Msg),
	}, nil
}

func (m MsgMigrateContract) Encode() types.MsgMigrateContract {
	return types.MsgMigrateContract{
		Sender:   m.Sender.String(),
		Contract: m.Contract.String(),
		CodeID:   m.CodeID,
		Msg:      bytes.Clone(m.Msg),
	}
}

// MsgUpdateAdmin sets NewAdmin as the admin of Contract.
type MsgUpdateAdmin struct {
	Sender   chainmsg.AccountID
	NewAdmin chainmsg.AccountID
	Contract chainmsg.AccountID
}

func (MsgUpdateAdmin) TypeURL() string { return TypeURLMsgUpdateAdmin }

func (MsgUpdateAdmin) Decode(w types.MsgUpdateAdmin) (MsgUpdateAdmin, error) {
	sender, err := chainmsg.DecodeAccountID("sender", w.Sender)
	if err != nil {
		return MsgUpdateAdmin{}, err
	}
	admin, err := chainmsg.DecodeAccountID("new_admin", w.NewAdmin)
	if err != nil {
		return MsgUpdateAdmin{}, err
	}
	contract, err := chainmsg.DecodeAccountID("contract", w.Contract)
	if err != nil {
		return MsgUpdateAdmin{}, err
	}
	return MsgUpdateAdmin{Sender: sender, NewAdmin: admin, Contract: contract}, nil
}

func (m MsgUpdateAdmin) Encode() types.MsgUpdateAdmin {
	return types.MsgUpdateAdmin{
		Sender:   m.Sender.String(),
		NewAdmin: m.NewAdmin.String(),
		Contract: m.Contract.String(),
	}
}

// MsgClearAdmin removes the admin of Contract.
type MsgClearAdmin struct {
	Sender   chainmsg.AccountID
	Contract chainmsg.AccountID
}

func (MsgClearAdmin) TypeURL() string { return TypeURLMsgClearAdmin }

func (MsgClearAdmin) Decode(w types.MsgClearAdmin) (MsgClearAdmin, error) {
	sender, contract, err := decodeSenderContract(w.Sender, w.Contract)
	if err != nil {
		return MsgClearAdmin{}, err
	}
	return MsgClearAdmin{Sender: sender, Contract: contract}, nil
}

func (m MsgClearAdmin) Encode() types.MsgClearAdmin {
	return types.MsgClearAdmin{
		Sender:   m.Sender.String(),
		Contract: m.Contract.String(),
	}
}

// TerraMsgExecuteContract is the legacy Terra form of
// MsgExecuteContract. Only its type URL tells the two apart.
type TerraMsgExecuteContract struct {
	Sender     chainmsg.AccountID
	Contract   chainmsg.AccountID
	ExecuteMsg []byte
	Coins      []chainmsg.Coin
}

func (TerraMsgExecuteContract) TypeURL() string { return TypeURLTerraMsgExecuteContract }

func (TerraMsgExecuteContract) Decode(w types.TerraMsgExecuteContract) (TerraMsgExecuteContract, error) {
	sender, contract, err := decodeSenderContract(w.Sender, w.Contract)
	if err != nil {
		return TerraMsgExecuteContract{}, err
	}
	coins, err := chainmsg.DecodeCoins("coins", w.Coins)
	if err != nil {
		return TerraMsgExecuteContract{}, err
	}
	return TerraMsgExecuteContract{
		Sender:     sender,
		Contract:   contract,
		ExecuteMsg: bytes.Clone(w.ExecuteMsg),
		Coins:      coins,
	}, nil
}

func (m TerraMsgExecuteContract) Encode() types.TerraMsgExecuteContract {
	return types.TerraMsgExecuteContract{
		Sender:     m.Sender.String(),
		Contract:   m.Contract.String(),
		ExecuteMsg: bytes.Clone(m.ExecuteMsg),
		Coins:      chainmsg.EncodeCoins(m.Coins),
	}
}

// decodeSenderContract parses the sender/contract pair most messages
// start with.
func decodeSenderContract(sender, contract string) (chainmsg.AccountID, chainmsg.AccountID, error) {
	s, err := chainmsg.DecodeAccountID("sender", sender)
	if err != nil {
		return chainmsg.AccountID{}, chainmsg.AccountID{}, err
	}
	c, err := chainmsg.DecodeAccountID("contract", contract)
	if err != nil {
		return chainmsg.AccountID{}, chainmsg.AccountID{}, err
	}
	return s, c, nil
}
