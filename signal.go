package sprig

// subscription pairs a subscriber key with its callback.
type subscription[T any] struct {
	key any
	fn  func(T)
}

// Signal is a synchronous publish/subscribe point for one kind of node event.
// Callbacks are keyed by subscriber identity: a component usually subscribes
// with itself as the key and cancels with the same key. Keys must be
// comparable.
//
// Delivery happens inline on the calling goroutine, in subscription order,
// before Fire returns. There is no queuing or coalescing.
type Signal[T any] struct {
	subs   []subscription[T]
	firing int
	dirty  bool
}

// Subscribe registers fn under key. Subscribing an existing key replaces its
// callback without changing its delivery position.
func (s *Signal[T]) Subscribe(key any, fn func(T)) {
	if key == nil {
		panic("sprig: cannot subscribe with a nil key")
	}
	if fn == nil {
		panic("sprig: cannot subscribe a nil callback")
	}
	for i := range s.subs {
		if s.subs[i].key == key {
			s.subs[i].fn = fn
			return
		}
	}
	s.subs = append(s.subs, subscription[T]{key: key, fn: fn})
}

// CancelSubscription removes the callback registered under key.
// Cancelling an unknown key is a no-op.
func (s *Signal[T]) CancelSubscription(key any) {
	for i := range s.subs {
		if s.subs[i].key != key {
			continue
		}
		if s.firing > 0 {
			// Fire is iterating; tombstone the entry and compact afterwards.
			s.subs[i].fn = nil
			s.subs[i].key = nil
			s.dirty = true
			return
		}
		copy(s.subs[i:], s.subs[i+1:])
		s.subs[len(s.subs)-1] = subscription[T]{}
		s.subs = s.subs[:len(s.subs)-1]
		return
	}
}

// Subscribed reports whether key currently has a callback.
func (s *Signal[T]) Subscribed(key any) bool {
	if key == nil {
		return false
	}
	for i := range s.subs {
		if s.subs[i].key == key {
			return true
		}
	}
	return false
}

// Len returns the number of live subscriptions.
func (s *Signal[T]) Len() int {
	n := 0
	for i := range s.subs {
		if s.subs[i].fn != nil {
			n++
		}
	}
	return n
}

// Fire invokes every subscribed callback with v. Subscriptions added during
// delivery are not called until the next Fire; subscriptions cancelled during
// delivery are skipped if they have not run yet.
func (s *Signal[T]) Fire(v T) {
	n := len(s.subs)
	if n == 0 {
		return
	}
	s.firing++
	defer s.endFire()
	for i := 0; i < n && i < len(s.subs); i++ {
		if fn := s.subs[i].fn; fn != nil {
			fn(v)
		}
	}
}

// endFire runs even when a callback panics, so a recovered panic does not
// leave the signal stuck in delivery mode.
func (s *Signal[T]) endFire() {
	s.firing--
	if s.firing == 0 && s.dirty {
		s.compact()
	}
}

// Clear drops every subscription.
func (s *Signal[T]) Clear() {
	if s.firing > 0 {
		for i := range s.subs {
			s.subs[i] = subscription[T]{}
		}
		s.dirty = true
		return
	}
	clear(s.subs)
	s.subs = s.subs[:0]
}

// compact removes tombstoned entries left by cancellation during Fire.
func (s *Signal[T]) compact() {
	live := s.subs[:0]
	for _, sub := range s.subs {
		if sub.fn != nil {
			live = append(live, sub)
		}
	}
	clear(s.subs[len(live):])
	s.subs = live
	s.dirty = false
}
