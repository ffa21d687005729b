package types

// BasicInfo is a set of flags describing properties of a kind.
type BasicInfo int

const (
	IsBoolean BasicInfo = 1 << iota
	IsInteger
	IsUnsigned
	IsFloat
	IsString
	IsVoid
	IsNumeric = IsInteger | IsFloat
)

// Basic describes a primitive type.
type Basic struct {
	kind Kind
	info BasicInfo
	name string
	bits int // storage width; 0 for string and void
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() Kind {
	return b.kind
}

// Info returns information about the basic type.
func (b *Basic) Info() BasicInfo {
	return b.info
}

// Name returns the source spelling of the basic type.
func (b *Basic) Name() string {
	return b.name
}

// String returns the source spelling of the basic type.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the predeclared types, indexed by Kind.
// int and float are the 64-bit defaults.
var Typ = [kindCount]*Basic{
	Invalid: {kind: Invalid, name: "invalid type"},
	Int:     {kind: Int, info: IsInteger, name: "int", bits: 64},
	I8:      {kind: I8, info: IsInteger, name: "i8", bits: 8},
	I16:     {kind: I16, info: IsInteger, name: "i16", bits: 16},
	I32:     {kind: I32, info: IsInteger, name: "i32", bits: 32},
	I64:     {kind: I64, info: IsInteger, name: "i64", bits: 64},
	U8:      {kind: U8, info: IsInteger | IsUnsigned, name: "u8", bits: 8},
	U16:     {kind: U16, info: IsInteger | IsUnsigned, name: "u16", bits: 16},
	U32:     {kind: U32, info: IsInteger | IsUnsigned, name: "u32", bits: 32},
	U64:     {kind: U64, info: IsInteger | IsUnsigned, name: "u64", bits: 64},
	Float:   {kind: Float, info: IsFloat, name: "float", bits: 64},
	F32:     {kind: F32, info: IsFloat, name: "f32", bits: 32},
	F64:     {kind: F64, info: IsFloat, name: "f64", bits: 64},
	Bool:    {kind: Bool, info: IsBoolean, name: "bool", bits: 8},
	String:  {kind: String, info: IsString, name: "string"},
	Void:    {kind: Void, info: IsVoid, name: "void"},
}

// byName maps a type keyword to its kind. Built once at package init.
var byName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := Int; k < kindCount; k++ {
		m[Typ[k].name] = k
	}
	return m
}()

// Lookup returns the kind spelled name, or Invalid if name is not a type keyword.
func Lookup(name string) Kind {
	return byName[name]
}
