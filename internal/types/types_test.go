package types

import "testing"

func TestBasicTypes(t *testing.T) {
	tests := []struct {
		kind Kind
		name string
		info BasicInfo
	}{
		{Int, "int", IsInteger},
		{I8, "i8", IsInteger},
		{I16, "i16", IsInteger},
		{I32, "i32", IsInteger},
		{I64, "i64", IsInteger},
		{U8, "u8", IsInteger | IsUnsigned},
		{U16, "u16", IsInteger | IsUnsigned},
		{U32, "u32", IsInteger | IsUnsigned},
		{U64, "u64", IsInteger | IsUnsigned},
		{Float, "float", IsFloat},
		{F32, "f32", IsFloat},
		{F64, "f64", IsFloat},
		{Bool, "bool", IsBoolean},
		{String, "string", IsString},
		{Void, "void", IsVoid},
	}

	if len(tests) != len(Kinds()) {
		t.Fatalf("table covers %d kinds, Kinds() has %d", len(tests), len(Kinds()))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := Typ[tt.kind]
			if typ == nil {
				t.Fatalf("Typ[%d] is nil", tt.kind)
			}
			if typ.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", typ.Kind(), tt.kind)
			}
			if typ.Info() != tt.info {
				t.Errorf("Info() = %v, want %v", typ.Info(), tt.info)
			}
			if typ.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", typ.Name(), tt.name)
			}
			if tt.kind.String() != tt.name {
				t.Errorf("Kind.String() = %q, want %q", tt.kind.String(), tt.name)
			}
			if !tt.kind.IsValid() {
				t.Errorf("IsValid() = false")
			}
			if got := Lookup(tt.name); got != tt.kind {
				t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tt.kind)
			}
		})
	}
}

func TestLookupNonType(t *testing.T) {
	for _, name := range []string{"", "x", "Int", "i128", "double", "if", "invalid type"} {
		if got := Lookup(name); got != Invalid {
			t.Errorf("Lookup(%q) = %v, want Invalid", name, got)
		}
	}
}

func TestInvalidKind(t *testing.T) {
	if Invalid.IsValid() {
		t.Error("Invalid.IsValid() = true")
	}
	if Kind(200).IsValid() {
		t.Error("Kind(200).IsValid() = true")
	}
	if got := Kind(200).String(); got != "Kind(200)" {
		t.Errorf("Kind(200).String() = %q", got)
	}
}
