package ast

// TypeRef is the type annotation slot on expression nodes. The parser
// always leaves it TypeUnresolved; only the later semantic stage may
// replace the sentinel. Integer literal suffixes reuse the same values
// (`42u8` carries TypeU8 on its literal payload).
type TypeRef uint8

const (
	// TypeUnresolved marks an annotation not yet filled in.
	TypeUnresolved TypeRef = iota
	TypeBool
	TypeChar
	TypeField
	TypeGroup
	TypeAddress
	TypeU8
	TypeU16
	TypeU32
	TypeU64
	TypeU128
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeI128
)

var typeRefNames = [...]string{
	TypeUnresolved: "unresolved",
	TypeBool:       "bool",
	TypeChar:       "char",
	TypeField:      "field",
	TypeGroup:      "group",
	TypeAddress:    "address",
	TypeU8:         "u8",
	TypeU16:        "u16",
	TypeU32:        "u32",
	TypeU64:        "u64",
	TypeU128:       "u128",
	TypeI8:         "i8",
	TypeI16:        "i16",
	TypeI32:        "i32",
	TypeI64:        "i64",
	TypeI128:       "i128",
}

func (t TypeRef) String() string {
	if int(t) < len(typeRefNames) {
		return typeRefNames[t]
	}
	return "unknown"
}

// IsResolved reports whether the slot was filled by the semantic stage.
func (t TypeRef) IsResolved() bool { return t != TypeUnresolved }
