package schema

import "fmt"

// ErrorKind classifies schema compilation failures. Every kind is detected
// before any code is emitted and is fatal to the generation run.
type ErrorKind int

const (
	// KindSchemaNotFound: no schema element matches the requested id.
	KindSchemaNotFound ErrorKind = iota

	// KindMissingAttribute: a key lacks a required attribute or element.
	KindMissingAttribute

	// KindInvalidName: a key name violates the kebab-case grammar.
	KindInvalidName

	// KindUnsupportedType: a type signature outside the fixed table.
	KindUnsupportedType

	// KindInvalidDefault: a default literal does not parse as the key's type.
	KindInvalidDefault

	// KindNameCollision: duplicate key names, or two keys whose derived
	// accessor names coincide.
	KindNameCollision
)

// String returns the kind's stable name.
func (k ErrorKind) String() string {
	switch k {
	case KindSchemaNotFound:
		return "schema not found"
	case KindMissingAttribute:
		return "missing attribute"
	case KindInvalidName:
		return "invalid key name"
	case KindUnsupportedType:
		return "unsupported type"
	case KindInvalidDefault:
		return "invalid default"
	case KindNameCollision:
		return "name collision"
	}
	return "unknown error"
}

// Error describes a schema compilation failure. Key and Attr identify the
// offending declaration so the message is actionable.
type Error struct {
	Kind   ErrorKind
	Key    string // offending key name, empty for document-level errors
	Attr   string // offending attribute or element, if any
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Key != "" {
		msg = fmt.Sprintf("key %q: %s", e.Key, msg)
	}
	if e.Attr != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Attr)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

func errf(kind ErrorKind, key, attr, format string, args ...any) *Error {
	return &Error{Kind: kind, Key: key, Attr: attr, Detail: fmt.Sprintf(format, args...)}
}
