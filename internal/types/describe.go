package types

import "fmt"

// Describe returns a short human-readable description of k,
// such as "unsigned integer, 2 bytes".
func Describe(k Kind) string {
	switch {
	case !k.IsValid():
		return "invalid type"
	case IsIntegerKind(k) && IsUnsignedKind(k):
		return sized("unsigned integer", k)
	case IsIntegerKind(k):
		return sized("signed integer", k)
	case IsFloatKind(k):
		return sized("floating point", k)
	case IsBooleanKind(k):
		return sized("boolean", k)
	case IsStringKind(k):
		return "string"
	case IsVoidKind(k):
		return "no value"
	}
	return k.String()
}

func sized(class string, k Kind) string {
	n := Sizeof(k)
	if n == 1 {
		return class + ", 1 byte"
	}
	return fmt.Sprintf("%s, %d bytes", class, n)
}
