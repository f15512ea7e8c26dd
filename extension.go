package rivulet

import (
	"fmt"
	"reflect"

	"github.com/casualjim/rivulet/pkg/reflectx"
)

// payload resolves the extension slot as *X. The concrete type stored in the
// slot is fixed at construction, so a mismatch here is a contract violation
// between the constructor and accessor code paths, not bad input: it panics.
// Callers must hold st.mu.
func payload[X any, T any](st *state[T]) *X {
	if st.extension == nil {
		panic(fmt.Errorf("%w: stream %s", ErrNoExtension, st.name))
	}
	if !reflectx.IsRefinedType[*X](reflect.TypeOf(st.extension)) {
		panic(fmt.Errorf("%w: stream %s holds %T, want %s",
			ErrExtensionType, st.name, st.extension, reflect.TypeFor[*X]()))
	}
	return st.extension.(*X)
}

// ReadExtension runs fn with the stream's extension payload, resolved as *X,
// and returns fn's result. The stream's lock is held for the duration of fn,
// so fn must not call back into the same stream.
func ReadExtension[X, R any, T any](s Stream[T], fn func(*X) R) R {
	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()
	st.usable()

	x := payload[X](st)
	ok := false
	defer func() {
		if !ok {
			st.poisoned = true
		}
	}()
	r := fn(x)
	ok = true
	return r
}

// MutateExtension runs fn with exclusive access to the stream's extension
// payload, resolved as *X. Like an emission, a panic escaping fn poisons the
// stream. fn must not call back into the same stream.
func MutateExtension[X any, T any](s Stream[T], fn func(*X)) {
	st := s.st
	st.mu.Lock()
	defer st.mu.Unlock()
	st.usable()

	x := payload[X](st)
	ok := false
	defer func() {
		if !ok {
			st.poisoned = true
		}
	}()
	fn(x)
	ok = true
}
