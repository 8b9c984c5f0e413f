package chainmsg

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/blockberries/chainmsg/types"
)

var (
	denomRe  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$`)
	amountRe = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
)

// Denom is a validated denomination such as "uluna" or
// "ibc/27394FB0...".
type Denom struct {
	s string
}

// ParseDenom validates raw against the denomination grammar.
func ParseDenom(raw string) (Denom, error) {
	if !denomRe.MatchString(raw) {
		return Denom{}, newError(KindInvalidDenom, fmt.Errorf("%q does not match %s", raw, denomRe))
	}
	return Denom{s: raw}, nil
}

// MustParseDenom is like ParseDenom but panics on error.
func MustParseDenom(raw string) Denom {
	d, err := ParseDenom(raw)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Denom) String() string { return d.s }

// Amount is a non-negative decimal of arbitrary precision. It keeps
// the exact lexical form it was parsed from, so formatting never
// rounds or re-scales. The zero value is the amount "0".
type Amount struct {
	s string
}

// ParseAmount validates raw as a non-negative decimal string.
// A lexically valid negative value fails with KindNegativeAmount;
// anything else malformed fails with KindInvalidAmount.
func ParseAmount(raw string) (Amount, error) {
	if !amountRe.MatchString(raw) {
		return Amount{}, newError(KindInvalidAmount, fmt.Errorf("%q is not a decimal", raw))
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}, newError(KindInvalidAmount, err)
	}
	if d.IsNegative() {
		return Amount{}, newError(KindNegativeAmount, fmt.Errorf("%s is negative", raw))
	}
	// "-0" and friends are zero; drop the sign.
	raw = strings.TrimPrefix(raw, "-")
	if raw == "0" {
		// Same as the zero value, which formats as "0".
		return Amount{}, nil
	}
	return Amount{s: raw}, nil
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(raw string) Amount {
	a, err := ParseAmount(raw)
	if err != nil {
		panic(err)
	}
	return a
}

// NewAmount converts d. It fails with KindNegativeAmount if d < 0.
func NewAmount(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Amount{}, newError(KindNegativeAmount, fmt.Errorf("%s is negative", d))
	}
	if d.IsZero() {
		return Amount{}, nil
	}
	return Amount{s: d.String()}, nil
}

// AmountFromUint64 returns n as an Amount.
func AmountFromUint64(n uint64) Amount {
	if n == 0 {
		return Amount{}
	}
	return Amount{s: strconv.FormatUint(n, 10)}
}

// String returns the wire lexical form. The zero value formats as "0".
func (a Amount) String() string {
	if a.s == "" {
		return "0"
	}
	return a.s
}

// Decimal returns the numeric value.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.RequireFromString(a.String())
}

// Equal compares numerically, so "1.5" equals "1.50".
func (a Amount) Equal(b Amount) bool {
	return a.Decimal().Equal(b.Decimal())
}

// Coin is a denomination-tagged amount.
type Coin struct {
	Denom  Denom
	Amount Amount
}

// NewCoin builds a Coin from validated parts.
func NewCoin(denom Denom, amount Amount) Coin {
	return Coin{Denom: denom, Amount: amount}
}

// ParseCoin validates the wire denom and amount strings. The denom is
// checked first.
func ParseCoin(denom, amount string) (Coin, error) {
	d, err := ParseDenom(denom)
	if err != nil {
		return Coin{}, WithField(err, "denom")
	}
	a, err := ParseAmount(amount)
	if err != nil {
		return Coin{}, WithField(err, "amount")
	}
	return Coin{Denom: d, Amount: a}, nil
}

// MustParseCoin is like ParseCoin but panics on error.
func MustParseCoin(denom, amount string) Coin {
	c, err := ParseCoin(denom, amount)
	if err != nil {
		panic(err)
	}
	return c
}

// FormatCoin returns the wire denom and amount strings.
func FormatCoin(c Coin) (denom, amount string) {
	return c.Denom.String(), c.Amount.String()
}

// String renders c as "<amount><denom>", e.g. "1000000uluna".
func (c Coin) String() string {
	return c.Amount.String() + c.Denom.String()
}

// DecodeCoin converts a wire coin.
func DecodeCoin(w types.Coin) (Coin, error) {
	return ParseCoin(w.Denom, w.Amount)
}

// DecodeRequiredCoin decodes the sub-message named field, failing
// with KindMissingField when it is absent.
func DecodeRequiredCoin(field string, w *types.Coin) (Coin, error) {
	if w == nil {
		return Coin{}, MissingField(field)
	}
	c, err := DecodeCoin(*w)
	if err != nil {
		return Coin{}, WithField(err, field)
	}
	return c, nil
}

// DecodeCoins decodes a repeated coin field. The first failing
// element aborts the whole decode; its index is part of the field
// path. An empty list decodes to nil.
func DecodeCoins(field string, ws []types.Coin) ([]Coin, error) {
	if len(ws) == 0 {
		return nil, nil
	}
	coins := make([]Coin, 0, len(ws))
	for i, w := range ws {
		c, err := DecodeCoin(w)
		if err != nil {
			return nil, WithField(WithField(err, fmt.Sprintf("[%d]", i)), field)
		}
		coins = append(coins, c)
	}
	return coins, nil
}

// EncodeCoin converts c to its wire form.
func EncodeCoin(c Coin) types.Coin {
	denom, amount := FormatCoin(c)
	return types.Coin{Denom: denom, Amount: amount}
}

// EncodeRequiredCoin converts c to a present wire sub-message.
func EncodeRequiredCoin(c Coin) *types.Coin {
	w := EncodeCoin(c)
	return &w
}

// EncodeCoins converts a coin list. An empty list encodes to nil, so
// an empty non-nil list does not survive a round trip.
func EncodeCoins(coins []Coin) []types.Coin {
	if len(coins) == 0 {
		return nil
	}
	ws := make([]types.Coin, len(coins))
	for i, c := range coins {
		ws[i] = EncodeCoin(c)
	}
	return ws
}

// DecodeDenom parses the wire denomination in field.
func DecodeDenom(field, raw string) (Denom, error) {
	d, err := ParseDenom(raw)
	if err != nil {
		return Denom{}, WithField(err, field)
	}
	return d, nil
}
