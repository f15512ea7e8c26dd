// Package rivulet provides a small in-process reactive primitive: a typed,
// multicast event stream with a matching write handle.
//
// A [Sink] is the write side. It owns a brand new stream and is the only
// handle allowed to push values into it. A [Stream] is the read side: a
// cheap, copyable handle sharing the sink's backing state. Listeners
// register through [Stream.Subscribe] and receive every value emitted after
// registration, synchronously and in registration order.
//
// Design decisions:
//   - Type safety: streams are generic over their value type, so listeners
//     never see interface{} values.
//   - Synchronous delivery: an emission invokes every registered listener
//     before Emit returns. There is no internal goroutine, queue, or buffer.
//   - One critical section per stream: the subscriber registry, the alive
//     flag, and the extension payload are guarded together, so an emission
//     is never interleaved with a concurrent subscribe or unsubscribe on the
//     same stream.
//   - Explicit cancellation: subscribing returns a [Subscription]; calling
//     its Unsubscribe method (usually via defer) removes the listener.
//
// Example usage:
//
//	sink := rivulet.New[int]()
//	defer sink.Close()
//
//	stream := sink.Stream()
//	sub := stream.Subscribe(func(v *int) {
//		fmt.Println("got", *v)
//	})
//	defer sub.Unsubscribe()
//
//	sink.Emit(1)
//	sink.Emit(100)
//
// Streams compose: [Stream.PipeInto] forwards every emission of one stream
// into another sink, and the derive package builds map/filter/merge streams
// on top of that same mechanism.
//
// A listener must not call back into the stream that is currently delivering
// to it: Subscribe, Unsubscribe, Emit, and the extension accessors all take
// the stream's lock, which is not reentrant, so a same-stream call from
// inside a listener deadlocks. Calling into a different stream (the pipe
// pattern) is the intended composition idiom.
package rivulet
