package gsettings

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// storeItem holds the default and current value for a single key.
type storeItem struct {
	defaultValue any
	currentValue any
	writable     bool
}

// Store manages the values of one settings schema. Every key must be
// registered with its default before it can be read or written; generated
// constructors do this from the schema's declared defaults.
type Store struct {
	schemaID string
	items    map[string]storeItem
	mutex    sync.RWMutex // Protects items and subs

	subs  map[string]map[int64]func(any) // Per-key change subscribers
	subID int64
}

// NewStore creates an empty store bound to the given schema identifier.
func NewStore(schemaID string) *Store {
	return &Store{
		schemaID: schemaID,
		items:    make(map[string]storeItem),
		subs:     make(map[string]map[int64]func(any)),
	}
}

// SchemaID returns the schema identifier the store is bound to.
func (s *Store) SchemaID() string {
	return s.schemaID
}

// Register makes a key known to the store with its default value.
// defaultValue is the value returned by reads until an explicit Set.
// Registering an already known key resets it to the new default.
func (s *Store) Register(key string, defaultValue any) {
	s.register(key, defaultValue, true)
}

// RegisterReadOnly registers a key that rejects writes with ErrNotWritable.
func (s *Store) RegisterReadOnly(key string, defaultValue any) {
	s.register(key, defaultValue, false)
}

func (s *Store) register(key string, defaultValue any, writable bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.items[key] = storeItem{
		defaultValue: defaultValue,
		currentValue: defaultValue, // Initially set to default
		writable:     writable,
	}
}

// SetWritable changes whether a key accepts writes.
// It returns ErrKeyNotFound if the key is not registered.
func (s *Store) SetWritable(key string, writable bool) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	item, registered := s.items[key]
	if !registered {
		return fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}

	item.writable = writable
	s.items[key] = item
	return nil
}

// IsWritable reports whether the key accepts writes.
// Unregistered keys are not writable.
func (s *Store) IsWritable(key string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, registered := s.items[key]
	return registered && item.writable
}

// HasKey reports whether the key is registered.
func (s *Store) HasKey(key string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, registered := s.items[key]
	return registered
}

// Keys returns all registered key names in sorted order.
func (s *Store) Keys() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	keys := make([]string, 0, len(s.items))
	for key := range s.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GetValue retrieves the raw value of a key: the current value, or the
// default if nothing has been explicitly set. The second return value
// reports whether the key is registered.
func (s *Store) GetValue(key string) (any, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, registered := s.items[key]
	if !registered {
		return nil, false
	}
	return item.currentValue, true
}

// Default returns the registered default value of a key.
func (s *Store) Default(key string) (any, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, registered := s.items[key]
	if !registered {
		return nil, false
	}
	return item.defaultValue, true
}

// SetValue updates the value of a key. It returns ErrKeyNotFound for
// unregistered keys, ErrNotWritable for read-only keys, and a
// TypeMismatchError when the value's type differs from the default's.
// Subscribers are notified when the stored value actually changes.
func (s *Store) SetValue(key string, value any) error {
	s.mutex.Lock()

	item, registered := s.items[key]
	if !registered {
		s.mutex.Unlock()
		return fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}
	if !item.writable {
		s.mutex.Unlock()
		return fmt.Errorf("%q: %w", key, ErrNotWritable)
	}
	if err := checkAssignable(key, item.defaultValue, value); err != nil {
		s.mutex.Unlock()
		return err
	}

	changed := !reflect.DeepEqual(item.currentValue, value)
	item.currentValue = value
	s.items[key] = item
	fns := s.subscribersLocked(key)
	s.mutex.Unlock()

	if changed {
		for _, fn := range fns {
			fn(value)
		}
	}
	return nil
}

// Reset restores a key to its registered default and notifies subscribers
// if the value changes. Resetting ignores writability: it is the caller's
// own schema default, not an external write.
func (s *Store) Reset(key string) error {
	s.mutex.Lock()

	item, registered := s.items[key]
	if !registered {
		s.mutex.Unlock()
		return fmt.Errorf("%q: %w", key, ErrKeyNotFound)
	}

	changed := !reflect.DeepEqual(item.currentValue, item.defaultValue)
	item.currentValue = item.defaultValue
	s.items[key] = item
	fns := s.subscribersLocked(key)
	s.mutex.Unlock()

	if changed {
		for _, fn := range fns {
			fn(item.defaultValue)
		}
	}
	return nil
}

// snapshot returns a copy of the current values keyed by name.
func (s *Store) snapshot() map[string]any {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	values := make(map[string]any, len(s.items))
	for key, item := range s.items {
		values[key] = item.currentValue
	}
	return values
}

// checkAssignable verifies that value matches the type the key was
// registered with. A nil default accepts anything.
func checkAssignable(key string, defaultValue, value any) error {
	if defaultValue == nil {
		return nil
	}
	want := reflect.TypeOf(defaultValue)
	got := reflect.TypeOf(value)
	if got == nil || !got.AssignableTo(want) {
		gotName := "nil"
		if got != nil {
			gotName = got.String()
		}
		return &TypeMismatchError{Key: key, Expected: want.String(), Actual: gotName}
	}
	return nil
}
