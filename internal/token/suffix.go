package token

// IntSuffix is the closed set of integer literal type suffixes.
type IntSuffix uint8

const (
	// SuffixNone marks an unsuffixed integer literal.
	SuffixNone IntSuffix = iota
	SuffixI8
	SuffixI16
	SuffixI32
	SuffixI64
	// SuffixIsz is the pointer-sized signed suffix.
	SuffixIsz
	SuffixU8
	SuffixU16
	SuffixU32
	SuffixU64
	// SuffixUsz is the pointer-sized unsigned suffix.
	SuffixUsz
)

var suffixNames = map[string]IntSuffix{
	"i8":  SuffixI8,
	"i16": SuffixI16,
	"i32": SuffixI32,
	"i64": SuffixI64,
	"isz": SuffixIsz,
	"u8":  SuffixU8,
	"u16": SuffixU16,
	"u32": SuffixU32,
	"u64": SuffixU64,
	"usz": SuffixUsz,
}

// LookupSuffix resolves text against the closed suffix list.
func LookupSuffix(text string) (IntSuffix, bool) {
	s, ok := suffixNames[text]
	return s, ok
}

func (s IntSuffix) String() string {
	switch s {
	case SuffixNone:
		return "None"
	case SuffixI8:
		return "i8"
	case SuffixI16:
		return "i16"
	case SuffixI32:
		return "i32"
	case SuffixI64:
		return "i64"
	case SuffixIsz:
		return "isz"
	case SuffixU8:
		return "u8"
	case SuffixU16:
		return "u16"
	case SuffixU32:
		return "u32"
	case SuffixU64:
		return "u64"
	case SuffixUsz:
		return "usz"
	}
	return "Unknown"
}
