package rivulet

import (
	"sync"

	"github.com/fogfish/opts"
)

type config struct {
	name      string
	extension any
}

var (
	// WithName assigns a stable name to the stream, used in log output and
	// error messages. Unnamed streams get a generated uuid.
	WithName = opts.ForName[config, string]("name")

	// WithExtension attaches a type-erased payload to the stream at
	// construction time. The payload must be a pointer; the extension
	// accessors hand it back as the same pointer type. Derived-stream
	// constructors use this slot to retain their upstream subscriptions.
	WithExtension = opts.ForName[config, any]("extension")
)

// Sink is the write handle of a stream. It is created with New, hands out
// read handles through Stream, and is the only party allowed to emit.
//
// Closing the sink marks the stream as no longer alive. Emitting through a
// closed sink is a programmer error and panics with ErrClosed.
type Sink[T any] struct {
	stream    Stream[T]
	closeOnce sync.Once
}

// New creates a sink owning a fresh, empty stream: no subscribers, alive,
// and carrying the extension payload when one was configured.
func New[T any](options ...opts.Option[config]) *Sink[T] {
	var cfg config
	if err := opts.Apply(&cfg, options); err != nil {
		panic(err)
	}
	return &Sink[T]{stream: Stream[T]{st: newState[T](cfg.name, cfg.extension)}}
}

// Stream returns a read handle sharing this sink's backing state. Usually
// the Stream is the public face of a component while the Sink stays private.
func (s *Sink[T]) Stream() Stream[T] {
	return s.stream
}

// Emit broadcasts value to every currently registered listener, in
// registration order, before returning.
func (s *Sink[T]) Emit(value T) {
	s.EmitShared(&value)
}

// EmitShared is Emit for a value that is already shared. Emissions travel
// between streams as pointers, so forwarding an upstream value through
// EmitShared avoids a copy; this is the entry point pipes use.
func (s *Sink[T]) EmitShared(value *T) {
	s.stream.st.emitShared(value)
}

// Close marks the stream as not alive. It is idempotent. Existing read
// handles and subscriptions stay valid; they simply observe no further
// emissions, and Stream.Alive reports false.
func (s *Sink[T]) Close() {
	s.closeOnce.Do(func() {
		st := s.stream.st
		st.mu.Lock()
		defer st.mu.Unlock()
		st.usable()
		st.alive = false
	})
}
