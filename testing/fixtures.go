package chainmsgtest

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/blockberries/chainmsg"
)

// DefaultPrefix is the address prefix used by the fixtures.
const DefaultPrefix = "terra"

// Address returns a valid bech32 address with a 20-byte payload filled
// with seed. Distinct seeds give distinct addresses.
func Address(prefix string, seed byte) string {
	return addressOfLen(prefix, seed, 20)
}

// ContractAddress is like Address with a 32-byte payload, the length
// CosmWasm uses for contract addresses.
func ContractAddress(prefix string, seed byte) string {
	return addressOfLen(prefix, seed, 32)
}

func addressOfLen(prefix string, seed byte, n int) string {
	words, err := bech32.ConvertBits(bytes.Repeat([]byte{seed}, n), 8, 5, true)
	if err != nil {
		panic(err)
	}
	s, err := bech32.Encode(prefix, words)
	if err != nil {
		panic(err)
	}
	return s
}

// AccountID returns the AccountID of Address(DefaultPrefix, seed).
func AccountID(seed byte) chainmsg.AccountID {
	return chainmsg.MustParseAccountID(Address(DefaultPrefix, seed))
}

// ContractID returns the AccountID of ContractAddress(DefaultPrefix, seed).
func ContractID(seed byte) chainmsg.AccountID {
	return chainmsg.MustParseAccountID(ContractAddress(DefaultPrefix, seed))
}

// AccountIDPtr is AccountID returned by pointer, for optional fields.
func AccountIDPtr(seed byte) *chainmsg.AccountID {
	id := AccountID(seed)
	return &id
}

// Coin returns a valid coin.
func Coin(denom, amount string) chainmsg.Coin {
	return chainmsg.MustParseCoin(denom, amount)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }
