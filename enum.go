package chainmsg

// DecodeEnum maps a wire enum code to its domain variant. The code
// must equal one of known; otherwise the error is
// KindInvalidEnumValue naming the field and carrying the code.
func DecodeEnum[T ~int32](name string, code int32, known ...T) (T, error) {
	for _, v := range known {
		if int32(v) == code {
			return v, nil
		}
	}
	return 0, InvalidEnumValue(name, code)
}
