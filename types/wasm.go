package types

// AccessType is the wire code of a CosmWasm access permission.
type AccessType int32

const (
	AccessTypeUnspecified    AccessType = 0
	AccessTypeNobody         AccessType = 1
	AccessTypeOnlyAddress    AccessType = 2
	AccessTypeEverybody      AccessType = 3
	AccessTypeAnyOfAddresses AccessType = 4
)

// AccessConfig is the access control applied to code instantiation.
type AccessConfig struct {
	Permission AccessType `cramberry:"1"`
	// Empty unless Permission is AccessTypeOnlyAddress.
	Address string `cramberry:"2"`
}

// MsgStoreCode uploads Wasm code (cosmwasm.wasm.v1).
type MsgStoreCode struct {
	Sender string `cramberry:"1"`
	// Raw or gzip compressed Wasm.
	WASMByteCode []byte `cramberry:"2"`
	// Nil = chain default.
	InstantiatePermission *AccessConfig `cramberry:"5"`
}

// MsgInstantiateContract creates a contract instance from stored code.
type MsgInstantiateContract struct {
	Sender string `cramberry:"1"`
	// Empty = no admin.
	Admin  string `cramberry:"2"`
	CodeID uint64 `cramberry:"3"`
	// Empty = no label.
	Label string `cramberry:"4"`
	// JSON encoded instantiation message.
	Msg   []byte `cramberry:"5"`
	Funds []Coin `cramberry:"6"`
}

// MsgExecuteContract calls a contract (cosmwasm.wasm.v1).
type MsgExecuteContract struct {
	Sender   string `cramberry:"1"`
	Contract string `cramberry:"2"`
	Msg      []byte `cramberry:"3"`
	Funds    []Coin `cramberry:"5"`
}

// MsgMigrateContract moves a contract to new code.
type MsgMigrateContract struct {
	Sender   string `cramberry:"1"`
	Contract string `cramberry:"2"`
	CodeID   uint64 `cramberry:"3"`
	Msg      []byte `cramberry:"4"`
}

// MsgUpdateAdmin sets a new contract admin.
type MsgUpdateAdmin struct {
	Sender   string `cramberry:"1"`
	NewAdmin string `cramberry:"2"`
	Contract string `cramberry:"3"`
}

// MsgClearAdmin removes the contract admin.
type MsgClearAdmin struct {
	Sender   string `cramberry:"1"`
	Contract string `cramberry:"3"`
}

// TerraMsgExecuteContract is the legacy Terra execute message
// (terra.wasm.v1beta1.MsgExecuteContract). Same shape as
// MsgExecuteContract under different field names and type URL.
type TerraMsgExecuteContract struct {
	Sender     string `cramberry:"1"`
	Contract   string `cramberry:"2"`
	ExecuteMsg []byte `cramberry:"3"`
	Coins      []Coin `cramberry:"5"`
}
