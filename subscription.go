package rivulet

import "sync"

// Subscription ties a stream to one registered listener. It keeps the
// stream's backing state reachable for as long as it exists, and removing
// the listener is its sole responsibility: call Unsubscribe on every exit
// path, typically with defer.
type Subscription[T any] struct {
	id     uint64
	stream Stream[T]
	once   sync.Once
}

// Unsubscribe removes this subscription's listener from the stream. It is
// idempotent; the first call takes effect before it returns, and later calls
// do nothing. Other subscriptions on the same stream are unaffected.
func (s *Subscription[T]) Unsubscribe() {
	s.once.Do(func() {
		s.stream.st.unsubscribe(s.id)
	})
}

// Stream returns the stream this subscription listens on.
func (s *Subscription[T]) Stream() Stream[T] {
	return s.stream
}
