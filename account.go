package chainmsg

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// MaxAddressLength is the largest decoded address payload accepted.
const MaxAddressLength = 255

// AccountID is a validated bech32 account address, e.g.
// "terra1...". The zero value is not a valid address; obtain one from
// ParseAccountID or NewAccountID.
//
// The canonical string form is lower-case, so two AccountIDs are equal
// with == exactly when they name the same prefix and payload.
type AccountID struct {
	s string
}

// ParseAccountID validates raw against the bech32 grammar and checksum.
// Upper-case input is accepted and canonicalized to lower case.
func ParseAccountID(raw string) (AccountID, error) {
	prefix, payload, err := decodeBech32(raw)
	if err != nil {
		return AccountID{}, newError(KindInvalidAddress, err)
	}
	if err := checkAccount(prefix, payload); err != nil {
		return AccountID{}, newError(KindInvalidAddress, err)
	}
	return AccountID{s: strings.ToLower(raw)}, nil
}

// MustParseAccountID is like ParseAccountID but panics on error.
// Intended for constants and tests.
func MustParseAccountID(raw string) AccountID {
	id, err := ParseAccountID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// NewAccountID encodes payload under prefix.
func NewAccountID(prefix string, payload []byte) (AccountID, error) {
	prefix = strings.ToLower(prefix)
	if err := checkAccount(prefix, payload); err != nil {
		return AccountID{}, newError(KindInvalidAddress, err)
	}
	words, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return AccountID{}, newError(KindInvalidAddress, err)
	}
	s, err := bech32.Encode(prefix, words)
	if err != nil {
		return AccountID{}, newError(KindInvalidAddress, err)
	}
	return AccountID{s: s}, nil
}

// FormatAccountID returns the canonical wire string of id.
func FormatAccountID(id AccountID) string { return id.s }

// String returns the canonical bech32 string.
func (id AccountID) String() string { return id.s }

// IsZero reports whether id is the zero value.
func (id AccountID) IsZero() bool { return id.s == "" }

// Prefix returns the human-readable part, e.g. "terra".
func (id AccountID) Prefix() string {
	prefix, _, _ := decodeBech32(id.s)
	return prefix
}

// Bytes returns a copy of the decoded address payload.
func (id AccountID) Bytes() []byte {
	_, payload, _ := decodeBech32(id.s)
	return payload
}

func decodeBech32(raw string) (string, []byte, error) {
	prefix, words, err := bech32.DecodeNoLimit(raw)
	if err != nil {
		return "", nil, err
	}
	payload, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return prefix, payload, nil
}

func checkAccount(prefix string, payload []byte) error {
	if prefix == "" {
		return fmt.Errorf("empty prefix")
	}
	if prefix[0] < 'a' || prefix[0] > 'z' {
		return fmt.Errorf("prefix %q must start with a letter", prefix)
	}
	for _, c := range prefix {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return fmt.Errorf("prefix %q contains %q", prefix, c)
		}
	}
	if len(payload) == 0 {
		return fmt.Errorf("empty address payload")
	}
	if len(payload) > MaxAddressLength {
		return fmt.Errorf("address payload is %d bytes, max %d", len(payload), MaxAddressLength)
	}
	return nil
}
