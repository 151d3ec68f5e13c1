// File: gsettings-gen/watch.go
package gsettings

// Change notification. Subscribers are registered per key and called after a
// successful SetValue or Reset that actually changed the stored value. There
// is no file polling: the store itself is the single write path, so Set is
// the only place changes can originate.

// Subscribe registers fn to be called with the new value whenever the key
// changes. The returned function cancels the subscription; calling it more
// than once is harmless. Subscribing to an unregistered key is allowed and
// simply never fires.
func (s *Store) Subscribe(key string, fn func(any)) func() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.subs[key] == nil {
		s.subs[key] = make(map[int64]func(any))
	}
	s.subID++
	id := s.subID
	s.subs[key][id] = fn

	return func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()
		delete(s.subs[key], id)
		if len(s.subs[key]) == 0 {
			delete(s.subs, key)
		}
	}
}

// SubscriberCount returns the number of active subscriptions for the key.
func (s *Store) SubscriberCount(key string) int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.subs[key])
}

// subscribersLocked copies the current subscriber list for a key so callers
// can invoke them after releasing the store mutex. Must be called with the
// mutex held.
func (s *Store) subscribersLocked(key string) []func(any) {
	if len(s.subs[key]) == 0 {
		return nil
	}
	fns := make([]func(any), 0, len(s.subs[key]))
	for _, fn := range s.subs[key] {
		fns = append(fns, fn)
	}
	return fns
}
