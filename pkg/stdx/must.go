// Package stdx carries small generic helpers with no better home.
package stdx

// Must0 panics if the provided error is not nil. It is meant for call sites
// where an error indicates a programming mistake rather than a runtime
// condition worth handling.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v when err is nil and panics otherwise. It collapses the
// value-and-error return shape at call sites that cannot meaningfully
// recover:
//
//	sub := stdx.Must1(topic.Subscribe(ctx, onScore))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Must2 is Must1 for functions returning two values and an error.
func Must2[T any, V any](t T, v V, err error) (T, V) {
	if err != nil {
		panic(err)
	}
	return t, v
}
