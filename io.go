// File: gsettings-gen/io.go
package gsettings

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/BurntSushi/toml"
)

// SaveFile writes the current values of all registered keys to a TOML file.
// It performs an atomic write using a temporary file.
func (s *Store) SaveFile(path string) error {
	values := s.snapshot()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(values); err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// Atomic write logic
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory %q: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary settings file: %w", err)
	}
	defer os.Remove(tempFile.Name()) // Clean up temp file if rename fails

	if _, err := tempFile.Write(buf.Bytes()); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temp settings file %q: %w", tempFile.Name(), err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp settings file %q: %w", tempFile.Name(), err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp settings file %q: %w", tempFile.Name(), err)
	}

	if err := os.Rename(tempFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temp file to %q: %w", path, err)
	}

	if err := os.Chmod(path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on settings file %q: %w", path, err)
	}

	return nil
}

// LoadFile reads previously saved values from a TOML file. Values are
// coerced to the type each key was registered with; keys present in the
// file but not registered for this schema are ignored, as are values that
// cannot be coerced. Loading sets values directly, bypassing writability:
// the file is the store's own persisted state, not an external write.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	loaded := make(map[string]any)
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse TOML settings file %q: %w", path, err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key, value := range loaded {
		item, registered := s.items[key]
		if !registered {
			continue
		}
		coerced, ok := coerceToType(value, item.defaultValue)
		if !ok {
			continue
		}
		item.currentValue = coerced
		s.items[key] = item
	}

	return nil
}

// coerceToType converts a TOML-decoded value to the type of the registered
// default. TOML decodes every integer as int64 and arrays as []any, so the
// numeric widths and []string need converting back.
func coerceToType(value, defaultValue any) (any, bool) {
	if defaultValue == nil || value == nil {
		return value, true
	}

	want := reflect.TypeOf(defaultValue)
	got := reflect.ValueOf(value)
	if got.Type().AssignableTo(want) {
		return value, true
	}

	switch want.Kind() {
	case reflect.Int32, reflect.Int64, reflect.Uint32, reflect.Uint64, reflect.Float64:
		if isNumericKind(got.Kind()) && got.Type().ConvertibleTo(want) {
			return got.Convert(want).Interface(), true
		}
	case reflect.Slice:
		if want.Elem().Kind() == reflect.String {
			elems, ok := value.([]any)
			if !ok {
				return nil, false
			}
			out := make([]string, 0, len(elems))
			for _, elem := range elems {
				str, ok := elem.(string)
				if !ok {
					return nil, false
				}
				out = append(out, str)
			}
			return out, true
		}
	}

	return nil, false
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
