package rivulet

import "errors"

var (
	// ErrClosed indicates an emission through a sink that was already closed.
	ErrClosed = errors.New("sink is closed")

	// ErrPoisoned indicates the stream's shared state was abandoned
	// mid-operation by a listener fault and can no longer be trusted.
	ErrPoisoned = errors.New("stream state is poisoned")

	// ErrNoExtension indicates an extension accessor was used on a stream
	// that was constructed without an extension payload.
	ErrNoExtension = errors.New("stream has no extension payload")

	// ErrExtensionType indicates an extension accessor asked for a payload
	// type other than the one the stream was constructed with.
	ErrExtensionType = errors.New("extension payload type mismatch")
)
