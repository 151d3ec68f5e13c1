package schema

// Kind identifies a primitive value kind supported by the type table.
type Kind int

const (
	KindBool Kind = iota
	KindString
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat64
)

// String returns the Go type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat64:
		return "float64"
	}
	return "invalid"
}

// TypeDescriptor is the semantic type of one key: a primitive, an array of
// a primitive, or a closed choice over string storage. Derived once per key
// and read-only afterwards.
type TypeDescriptor struct {
	Kind    Kind
	Array   bool
	Choices []string // non-empty marks a choice type; Kind is KindString
}

// IsChoice reports whether the descriptor is a closed choice type.
func (d TypeDescriptor) IsChoice() bool {
	return len(d.Choices) > 0
}

// GoType returns the Go type generated accessors use for plain values.
// Choice descriptors are represented by a generated variant type instead;
// their storage type is string.
func (d TypeDescriptor) GoType() string {
	if d.Array {
		return "[]" + d.Kind.String()
	}
	return d.Kind.String()
}

// signatureTable is the fixed set of recognized GVariant type signatures.
// Anything else fails UnsupportedType so generated code stays exhaustive
// instead of degrading to an untyped representation.
var signatureTable = map[string]TypeDescriptor{
	"b":  {Kind: KindBool},
	"s":  {Kind: KindString},
	"i":  {Kind: KindInt32},
	"u":  {Kind: KindUint32},
	"x":  {Kind: KindInt64},
	"t":  {Kind: KindUint64},
	"d":  {Kind: KindFloat64},
	"as": {Kind: KindString, Array: true},
}

// MapType maps a raw type signature to its descriptor. The key name is
// only used for error reporting.
func MapType(keyName, signature string) (TypeDescriptor, error) {
	desc, ok := signatureTable[signature]
	if !ok {
		return TypeDescriptor{}, errf(KindUnsupportedType, keyName, "type", "signature %q is not supported", signature)
	}
	return desc, nil
}

// DescribeKey maps a key declaration to its descriptor, applying the
// choice override: a non-empty choice list turns a string key into a
// closed choice type while the storage representation stays string.
func DescribeKey(k Key) (TypeDescriptor, error) {
	desc, err := MapType(k.Name, k.Type)
	if err != nil {
		return TypeDescriptor{}, err
	}
	if len(k.Choices) == 0 {
		return desc, nil
	}
	if desc.Kind != KindString || desc.Array {
		return TypeDescriptor{}, errf(KindUnsupportedType, k.Name, "choices", "choices require type signature \"s\", have %q", k.Type)
	}
	desc.Choices = k.Choices
	return desc, nil
}
