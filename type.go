// File: gsettings-gen/type.go
package gsettings

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// String retrieves a string value using the key.
// Attempts conversion from common types if the stored value isn't already a string.
func (s *Store) String(key string) (string, error) {
	val, found := s.GetValue(key)
	if !found {
		return "", fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}
	if val == nil {
		return "", nil // Treat nil as empty string for convenience
	}

	if strVal, ok := val.(string); ok {
		return strVal, nil
	}

	// Attempt conversion for common types
	switch v := val.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for key %q", val, key)
	}
}

// Bool retrieves a boolean value using the key.
// Attempts conversion from numeric types (0=false, non-zero=true) and parsable strings.
func (s *Store) Bool(key string) (bool, error) {
	val, found := s.GetValue(key)
	if !found {
		return false, fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}
	if val == nil {
		return false, fmt.Errorf("value for key %q is nil, cannot convert to bool", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		b, err := strconv.ParseBool(v.String())
		if err != nil {
			return false, fmt.Errorf("cannot convert string %q to bool for key %q: %w", v.String(), key, err)
		}
		return b, nil
	// Numeric interpretation: 0 is false, non-zero is true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for key %q", val, key)
}

// Int32 retrieves an int32 value using the key.
// Attempts conversion from other numeric types and parsable strings,
// rejecting values that overflow int32.
func (s *Store) Int32(key string) (int32, error) {
	i, err := s.Int64(key)
	if err != nil {
		return 0, err
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, fmt.Errorf("value %d for key %q overflows int32", i, key)
	}
	return int32(i), nil
}

// Int64 retrieves an int64 value using the key.
// Attempts conversion from numeric types and parsable strings.
func (s *Store) Int64(key string) (int64, error) {
	val, found := s.GetValue(key)
	if !found {
		return 0, fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}
	if val == nil {
		return 0, fmt.Errorf("value for key %q is nil, cannot convert to int64", key)
	}

	// Use reflection for broader compatibility with numeric types
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > uint64(math.MaxInt64) {
			return 0, fmt.Errorf("cannot convert unsigned integer %d (type %T) to int64 for key %q: overflow", u, val, key)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		// Truncate float to int
		return int64(v.Float()), nil
	case reflect.String:
		str := v.String()
		if i, err := strconv.ParseInt(str, 0, 64); err == nil { // Base 0 for auto-detection (e.g., "0xFF")
			return i, nil
		} else {
			if f, ferr := strconv.ParseFloat(str, 64); ferr == nil {
				return int64(f), nil // Truncate
			}
			// Return the original integer parsing error if float also fails
			return 0, fmt.Errorf("cannot convert string %q to int64 for key %q: %w", str, key, err)
		}
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for key %q", val, key)
}

// Uint32 retrieves a uint32 value using the key,
// rejecting negative values and values that overflow uint32.
func (s *Store) Uint32(key string) (uint32, error) {
	u, err := s.Uint64(key)
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("value %d for key %q overflows uint32", u, key)
	}
	return uint32(u), nil
}

// Uint64 retrieves a uint64 value using the key.
// Attempts conversion from numeric types and parsable strings,
// rejecting negative values.
func (s *Store) Uint64(key string) (uint64, error) {
	val, found := s.GetValue(key)
	if !found {
		return 0, fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}
	if val == nil {
		return 0, fmt.Errorf("value for key %q is nil, cannot convert to uint64", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		if i < 0 {
			return 0, fmt.Errorf("cannot convert negative value %d to uint64 for key %q", i, key)
		}
		return uint64(i), nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f < 0 {
			return 0, fmt.Errorf("cannot convert negative value %v to uint64 for key %q", f, key)
		}
		return uint64(f), nil
	case reflect.String:
		str := v.String()
		u, err := strconv.ParseUint(str, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to uint64 for key %q: %w", str, key, err)
		}
		return u, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to uint64 for key %q", val, key)
}

// Float64 retrieves a float64 value using the key.
// Attempts conversion from numeric types, parsable strings, and booleans.
func (s *Store) Float64(key string) (float64, error) {
	val, found := s.GetValue(key)
	if !found {
		return 0.0, fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}
	if val == nil {
		return 0.0, fmt.Errorf("value for key %q is nil, cannot convert to float64", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.String:
		str := v.String()
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return 0.0, fmt.Errorf("cannot convert string %q to float64 for key %q: %w", str, key, err)
		}
		return f, nil
	case reflect.Bool:
		if v.Bool() {
			return 1.0, nil
		}
		return 0.0, nil
	}

	return 0.0, fmt.Errorf("cannot convert type %T to float64 for key %q", val, key)
}

// StringSlice retrieves a []string value using the key.
// Accepts []string directly and []any whose elements convert to strings,
// which is what TOML decoding produces for arrays.
func (s *Store) StringSlice(key string) ([]string, error) {
	val, found := s.GetValue(key)
	if !found {
		return nil, fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}
	if val == nil {
		return nil, nil
	}

	switch v := val.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, elem := range v {
			str, ok := elem.(string)
			if !ok {
				return nil, fmt.Errorf("element %d of key %q is %T, not string", i, key, elem)
			}
			out = append(out, str)
		}
		return out, nil
	}

	return nil, fmt.Errorf("cannot convert type %T to []string for key %q", val, key)
}
