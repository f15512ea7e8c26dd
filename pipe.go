package rivulet

// PipeInto forwards every value emitted on s into sink, sharing the value
// rather than copying it. The returned Subscription governs the forwarding
// link: releasing it stops forwarding without otherwise affecting either
// endpoint.
//
// Piping is the composition primitive derived streams are built on: a
// derived operator creates its own private sink, subscribes a transforming
// listener on the upstream stream, and exposes only the resulting read
// handle. Because the forwarding listener runs while the upstream stream's
// lock is held, it may emit into a different stream but never back into the
// upstream one.
func (s Stream[T]) PipeInto(sink *Sink[T]) *Subscription[T] {
	target := sink.stream.st
	return s.Subscribe(func(v *T) {
		target.emitShared(v)
	})
}
