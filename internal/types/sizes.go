package types

// Bits returns the storage width of k in bits.
// It returns 0 for string, void and invalid kinds, whose size is not fixed.
func Bits(k Kind) int {
	if k >= kindCount {
		return 0
	}
	return Typ[k].bits
}

// Sizeof returns the storage size of k in bytes, or 0 if it has no fixed size.
func Sizeof(k Kind) int64 {
	return int64(Bits(k) / 8)
}
