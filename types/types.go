// Package types defines the wire message set: plain Go structs with
// cramberry struct tags, laid out field-for-field like the chain's
// protobuf messages.
//
// Wire structs are loosely typed. Addresses, denominations and
// amounts are bare strings, absent optional strings are "", and
// absent sub-messages are nil pointers. Validation happens when a
// wire struct is decoded into its domain form (see packages market
// and cosmwasm), never here.
package types
