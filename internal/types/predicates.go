package types

func info(k Kind) BasicInfo {
	if k >= kindCount {
		return 0
	}
	return Typ[k].info
}

// IsBooleanKind reports whether k is bool.
func IsBooleanKind(k Kind) bool {
	return info(k)&IsBoolean != 0
}

// IsIntegerKind reports whether k is a signed or unsigned integer kind.
func IsIntegerKind(k Kind) bool {
	return info(k)&IsInteger != 0
}

// IsUnsignedKind reports whether k is an unsigned integer kind.
func IsUnsignedKind(k Kind) bool {
	return info(k)&IsUnsigned != 0
}

// IsFloatKind reports whether k is a floating-point kind.
func IsFloatKind(k Kind) bool {
	return info(k)&IsFloat != 0
}

// IsNumericKind reports whether k is an integer or floating-point kind.
func IsNumericKind(k Kind) bool {
	return info(k)&IsNumeric != 0
}

// IsStringKind reports whether k is string.
func IsStringKind(k Kind) bool {
	return info(k)&IsString != 0
}

// IsVoidKind reports whether k is void. void is only meaningful as a
// function result type; checking that is left to semantic analysis.
func IsVoidKind(k Kind) bool {
	return info(k)&IsVoid != 0
}
