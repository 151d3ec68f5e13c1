// File: gsettings-gen/errors.go
package gsettings

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is returned when a key is not registered in the store.
	ErrKeyNotFound = errors.New("key not registered")

	// ErrNotWritable is returned when setting a key the store refuses to write.
	ErrNotWritable = errors.New("key is not writable")
)

// UnknownVariantError is returned by generated FromString conversions when a
// choice key's stored value is not among the declared choices, typically
// because the schema was edited after data was written. Callers should treat
// it as recoverable; generated code never panics on it.
type UnknownVariantError struct {
	// Key is the schema key the value was read from.
	Key string

	// Value is the stored string that matched no declared choice.
	Value string
}

// Error implements the error interface.
func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown value %q for key %q", e.Value, e.Key)
}

// TypeMismatchError is returned when a value written to the store does not
// match the type the key was registered with.
type TypeMismatchError struct {
	Key      string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("key %q holds %s, cannot store %s", e.Key, e.Expected, e.Actual)
}
