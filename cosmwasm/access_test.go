package cosmwasm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/chainmsg"
	"github.com/blockberries/chainmsg/cosmwasm"
	chainmsgtest "github.com/blockberries/chainmsg/testing"
	"github.com/blockberries/chainmsg/types"
)

func TestAccessConfigDecode(t *testing.T) {
	w := types.AccessConfig{
		Permission: types.AccessTypeOnlyAddress,
		Address:    chainmsgtest.Address("terra", 4),
	}
	c, err := cosmwasm.AccessConfig{}.Decode(w)
	require.NoError(t, err)
	assert.Equal(t, cosmwasm.AccessTypeOnlyAddress, c.Permission)
	require.NotNil(t, c.Address)
	assert.Equal(t, chainmsgtest.AccountID(4), *c.Address)
	assert.Equal(t, w, c.Encode())

	c, err = cosmwasm.AccessConfig{}.Decode(types.AccessConfig{Permission: types.AccessTypeNobody})
	require.NoError(t, err)
	assert.Nil(t, c.Address)
}

func TestAccessConfigInvalidEnumValue(t *testing.T) {
	for _, code := range []types.AccessType{types.AccessTypeAnyOfAddresses, 5, -1} {
		_, err := cosmwasm.AccessConfig{}.Decode(types.AccessConfig{Permission: code})
		e := assertConversionError(t, err, chainmsg.KindInvalidEnumValue, "permission")
		assert.Equal(t, int32(code), e.Value)
	}
}

func TestStoreCodeInvalidPermission(t *testing.T) {
	w := types.MsgStoreCode{
		Sender: chainmsgtest.Address("terra", 1),
		InstantiatePermission: &types.AccessConfig{
			Permission: types.AccessTypeAnyOfAddresses,
		},
	}
	_, err := cosmwasm.MsgStoreCode{}.Decode(w)
	e := assertConversionError(t, err, chainmsg.KindInvalidEnumValue, "instantiate_permission.permission")
	assert.Equal(t, int32(4), e.Value)

	w.InstantiatePermission = &types.AccessConfig{
		Permission: types.AccessTypeOnlyAddress,
		Address:    "terra1bad",
	}
	_, err = cosmwasm.MsgStoreCode{}.Decode(w)
	assertConversionError(t, err, chainmsg.KindInvalidAddress, "instantiate_permission.address")
}

func TestAccessTypeString(t *testing.T) {
	assert.Equal(t, "ACCESS_TYPE_EVERYBODY", cosmwasm.AccessTypeEverybody.String())
	assert.Equal(t, "ACCESS_TYPE_UNKNOWN", cosmwasm.AccessType(9).String())
}
