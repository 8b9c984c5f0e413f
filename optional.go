package chainmsg

// The wire format has no notion of an absent string: an empty string
// stands for "not set". The helpers below are the only place that
// convention is mapped to and from nil.

// DecodeAccountID parses the required address in field.
func DecodeAccountID(field, raw string) (AccountID, error) {
	id, err := ParseAccountID(raw)
	if err != nil {
		return AccountID{}, WithField(err, field)
	}
	return id, nil
}

// DecodeOptionalAccountID maps "" to nil and parses anything else.
// A present but malformed address is an error, not nil.
func DecodeOptionalAccountID(field, raw string) (*AccountID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := DecodeAccountID(field, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// EncodeOptionalAccountID maps nil to "".
func EncodeOptionalAccountID(id *AccountID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

// DecodeOptionalString maps "" to nil. A pointer to "" therefore
// encodes like nil.
func DecodeOptionalString(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}

// EncodeOptionalString maps nil to "".
func EncodeOptionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

