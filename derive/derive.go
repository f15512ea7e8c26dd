package derive

import "github.com/casualjim/rivulet"

// upstream is the extension payload of every derived stream. It retains the
// subscriptions feeding the derived sink so they are reachable for as long
// as the derived stream's state is.
type upstream[T any] struct {
	links []*rivulet.Subscription[T]
}

func retain[T, U any](derived rivulet.Stream[U], link *rivulet.Subscription[T]) {
	rivulet.MutateExtension(derived, func(u *upstream[T]) {
		u.links = append(u.links, link)
	})
}

// Map returns a stream emitting fn(v) for every value v emitted on src.
func Map[T, U any](src rivulet.Stream[T], fn func(*T) U) rivulet.Stream[U] {
	sink := rivulet.New[U](rivulet.WithExtension(&upstream[T]{}))
	link := src.Subscribe(func(v *T) {
		sink.Emit(fn(v))
	})

	out := sink.Stream()
	retain(out, link)
	return out
}

// Filter returns a stream emitting only the values of src for which keep
// returns true. Values that pass are shared, not copied.
func Filter[T any](src rivulet.Stream[T], keep func(*T) bool) rivulet.Stream[T] {
	sink := rivulet.New[T](rivulet.WithExtension(&upstream[T]{}))
	link := src.Subscribe(func(v *T) {
		if keep(v) {
			sink.EmitShared(v)
		}
	})

	out := sink.Stream()
	retain(out, link)
	return out
}

// Merge returns a stream emitting every value emitted on any of srcs.
// Within a single source emission order is preserved; across sources the
// interleaving follows whatever order the sources emit in.
func Merge[T any](srcs ...rivulet.Stream[T]) rivulet.Stream[T] {
	sink := rivulet.New[T](rivulet.WithExtension(&upstream[T]{}))

	out := sink.Stream()
	for _, src := range srcs {
		retain(out, src.PipeInto(sink))
	}
	return out
}

// Detach disconnects a derived stream from its upstream sources. The type
// parameter T names the upstream value type and must be given explicitly:
//
//	derive.Detach[int](doubled)
//
// The derived stream stays subscribable but will never emit again.
func Detach[T, U any](derived rivulet.Stream[U]) {
	rivulet.MutateExtension(derived, func(u *upstream[T]) {
		for _, link := range u.links {
			link.Unsubscribe()
		}
		u.links = u.links[:0]
	})
}
