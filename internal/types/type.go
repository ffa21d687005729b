// Package types describes the primitive types of the alna language.
// There are no user-defined types: a type is one of a closed set of
// kinds, so this package has no AST dependencies and no Type tree.
package types

import "fmt"

// Kind identifies one of the predeclared primitive types.
// The zero value is Invalid.
type Kind uint8

const (
	Invalid Kind = iota // invalid type

	// Signed integers
	Int
	I8
	I16
	I32
	I64

	// Unsigned integers
	U8
	U16
	U32
	U64

	// Floating point
	Float
	F32
	F64

	Bool
	String
	Void

	kindCount
)

// String returns the source spelling of the kind ("int", "u8", ...).
func (k Kind) String() string {
	if k < kindCount {
		return Typ[k].name
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsValid reports whether k is one of the predeclared kinds.
func (k Kind) IsValid() bool {
	return k > Invalid && k < kindCount
}

// Kinds returns all valid kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := Int; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
