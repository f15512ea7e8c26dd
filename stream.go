package rivulet

import (
	"fmt"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/casualjim/rivulet/pkg/uuidx"
)

// Listener receives every value emitted on a stream after it was registered.
// The pointer is shared with all other listeners of the same emission, and
// with downstream sinks when the value travels through a pipe; treat the
// pointee as read-only.
type Listener[T any] func(*T)

// state is the record shared by a sink, its streams, and its subscriptions.
// A single mutex guards the registry, the alive flag, and the extension
// payload together; the delivery ordering guarantees depend on that.
type state[T any] struct {
	name string

	mu        sync.Mutex
	nextID    uint64
	alive     bool
	poisoned  bool
	listeners *orderedmap.OrderedMap[uint64, Listener[T]]
	extension any
}

func newState[T any](name string, extension any) *state[T] {
	if name == "" {
		name = uuidx.NewString()
	}
	return &state[T]{
		name:      name,
		alive:     true,
		listeners: orderedmap.New[uint64, Listener[T]](),
		extension: extension,
	}
}

// usable panics when the state was poisoned. Callers must hold s.mu.
func (s *state[T]) usable() {
	if s.poisoned {
		panic(fmt.Errorf("%w: stream %s", ErrPoisoned, s.name))
	}
}

func (s *state[T]) subscribe(fn Listener[T]) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usable()

	// ids are never reused, so insertion order equals ascending id order.
	id := s.nextID
	s.nextID++
	s.listeners.Set(id, fn)
	return id
}

// unsubscribe removes the registration for id. Removing an id that is not
// registered is a no-op.
func (s *state[T]) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usable()

	s.listeners.Delete(id)
}

// emitShared delivers v to every registered listener in registration order
// while holding the state lock. A panic escaping a listener leaves the
// delivery pass incomplete, so the state is marked poisoned before the panic
// continues to unwind; every later operation on this stream fails.
func (s *state[T]) emitShared(v *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usable()
	if !s.alive {
		panic(fmt.Errorf("%w: stream %s", ErrClosed, s.name))
	}

	delivered := false
	defer func() {
		if !delivered {
			s.poisoned = true
		}
	}()
	for pair := s.listeners.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value(v)
	}
	delivered = true
}

// Stream is the read handle of a sink. Copies of a Stream are cheap and all
// share the same backing state, so a Stream can be handed out freely to any
// party that should observe emissions but never produce them.
type Stream[T any] struct {
	st *state[T]
}

// Subscribe registers fn to run for every subsequent emission on the stream.
// The returned Subscription controls the registration's lifetime; callers
// are expected to release it, typically with defer:
//
//	sub := stream.Subscribe(onValue)
//	defer sub.Unsubscribe()
//
// fn must not call back into this same stream (see the package comment).
func (s Stream[T]) Subscribe(fn Listener[T]) *Subscription[T] {
	return &Subscription[T]{id: s.st.subscribe(fn), stream: s}
}

// CountSubscribers returns the number of currently registered listeners,
// including forwarding listeners created by PipeInto and by derived streams.
func (s Stream[T]) CountSubscribers() int {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	s.st.usable()
	return s.st.listeners.Len()
}

// Alive reports whether the originating sink is still open. It is advisory:
// a false result only means no further emissions will ever arrive.
func (s Stream[T]) Alive() bool {
	s.st.mu.Lock()
	defer s.st.mu.Unlock()
	s.st.usable()
	return s.st.alive
}

// Name returns the stream's name, for log correlation. When the sink was
// built without WithName this is a generated uuid.
func (s Stream[T]) Name() string {
	return s.st.name
}
