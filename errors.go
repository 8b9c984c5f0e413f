package chainmsg

import (
	"errors"
	"fmt"
)

// Kind is the category of a conversion failure. The set is closed:
// every failure returned by a Decode in this module carries one of
// the kinds below.
type Kind string

const (
	KindInvalidAddress   Kind = "InvalidAddress"
	KindInvalidDenom     Kind = "InvalidDenom"
	KindInvalidAmount    Kind = "InvalidAmount"
	KindNegativeAmount   Kind = "NegativeAmount"
	KindMissingField     Kind = "MissingField"
	KindInvalidEnumValue Kind = "InvalidEnumValue"
)

// Error is a conversion failure.
//
// Field names the offending wire field as a dotted path relative to
// the message being decoded (e.g. "offer_coin.amount", "funds[1].denom").
// For KindMissingField and KindInvalidEnumValue it is the field name.
// Value holds the unrecognized code for KindInvalidEnumValue.
type Error struct {
	Kind  Kind
	Field string
	Value int32
	Cause error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindMissingField:
		msg = fmt.Sprintf("missing field %q", e.Field)
	case KindInvalidEnumValue:
		msg = fmt.Sprintf("invalid enum value %d for %q", e.Value, e.Field)
	default:
		msg = string(e.Kind)
		if e.Field != "" {
			msg = fmt.Sprintf("%s in %q", e.Kind, e.Field)
		}
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches a target *Error of the same Kind. A target with a Field
// set must also match the Field.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Field == "" || t.Field == e.Field
}

// Sentinels for errors.Is matching on kind alone.
var (
	ErrInvalidAddress   = &Error{Kind: KindInvalidAddress}
	ErrInvalidDenom     = &Error{Kind: KindInvalidDenom}
	ErrInvalidAmount    = &Error{Kind: KindInvalidAmount}
	ErrNegativeAmount   = &Error{Kind: KindNegativeAmount}
	ErrMissingField     = &Error{Kind: KindMissingField}
	ErrInvalidEnumValue = &Error{Kind: KindInvalidEnumValue}
)

func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

// MissingField reports that the required sub-message name is absent.
func MissingField(name string) *Error {
	return &Error{Kind: KindMissingField, Field: name}
}

// InvalidEnumValue reports that code has no domain variant for name.
func InvalidEnumValue(name string, code int32) *Error {
	return &Error{Kind: KindInvalidEnumValue, Field: name, Value: code}
}

// WithField prefixes the field path of a conversion error with the
// enclosing field's name. The kind is preserved. Errors that are not
// *Error are returned unchanged.
func WithField(err error, field string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	wrapped := *e
	switch {
	case e.Field == "":
		wrapped.Field = field
	case e.Field[0] == '[':
		wrapped.Field = field + e.Field
	default:
		wrapped.Field = field + "." + e.Field
	}
	return &wrapped
}

// KindOf returns the Kind of a conversion error, or "" if err is not
// (and does not wrap) an *Error.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// AsError extracts the *Error from err.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
