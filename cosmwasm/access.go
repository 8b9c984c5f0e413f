package cosmwasm

import (
	"github.com/blockberries/chainmsg"
	"github.com/blockberries/chainmsg/types"
)

// AccessType is who may instantiate stored code.
type AccessType int32

const (
	AccessTypeUnspecified AccessType = AccessType(types.AccessTypeUnspecified)
	AccessTypeNobody      AccessType = AccessType(types.AccessTypeNobody)
	AccessTypeOnlyAddress AccessType = AccessType(types.AccessTypeOnlyAddress)
	AccessTypeEverybody   AccessType = AccessType(types.AccessTypeEverybody)
)

// accessTypes lists every code with a domain variant. The wire's
// ANY_OF_ADDRESSES has none: AccessConfig carries a single address.
var accessTypes = []AccessType{
	AccessTypeUnspecified,
	AccessTypeNobody,
	AccessTypeOnlyAddress,
	AccessTypeEverybody,
}

func (a AccessType) String() string {
	switch a {
	case AccessTypeUnspecified:
		return "ACCESS_TYPE_UNSPECIFIED"
	case AccessTypeNobody:
		return "ACCESS_TYPE_NOBODY"
	case AccessTypeOnlyAddress:
		return "ACCESS_TYPE_ONLY_ADDRESS"
	case AccessTypeEverybody:
		return "ACCESS_TYPE_EVERYBODY"
	default:
		return "ACCESS_TYPE_UNKNOWN"
	}
}

// AccessConfig is the access control applied on contract creation.
type AccessConfig struct {
	Permission AccessType
	// Nil unless the wire carried an address.
	Address *chainmsg.AccountID
}

func (AccessConfig) Decode(w types.AccessConfig) (AccessConfig, error) {
	perm, err := chainmsg.DecodeEnum("permission", int32(w.Permission), accessTypes...)
	if err != nil {
		return AccessConfig{}, err
	}
	addr, err := chainmsg.DecodeOptionalAccountID("address", w.Address)
	if err != nil {
		return AccessConfig{}, err
	}
	return AccessConfig{Permission: perm, Address: addr}, nil
}

func (c AccessConfig) Encode() types.AccessConfig {
	return types.AccessConfig{
		Permission: types.AccessType(c.Permission),
		Address:    chainmsg.EncodeOptionalAccountID(c.Address),
	}
}

func decodeOptionalAccessConfig(field string, w *types.AccessConfig) (*AccessConfig, error) {
	if w == nil {
		return nil, nil
	}
	c, err := AccessConfig{}.Decode(*w)
	if err != nil {
		return nil, chainmsg.WithField(err, field)
	}
	return &c, nil
}

func encodeOptionalAccessConfig(c *AccessConfig) *types.AccessConfig {
	if c == nil {
		return nil
	}
	w := c.Encode()
	return &w
}
