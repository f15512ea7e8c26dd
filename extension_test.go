package rivulet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type tallyFields struct {
	label string
	seen  int
}

type otherFields struct {
	unused bool
}

func TestExtension_Read(t *testing.T) {
	sink := New[int](WithExtension(&tallyFields{label: "totals", seen: 3}))
	stream := sink.Stream()

	label := ReadExtension(stream, func(f *tallyFields) string { return f.label })
	require.Equal(t, "totals", label)
}

func TestExtension_MutateThenRead(t *testing.T) {
	sink := New[int](WithExtension(&tallyFields{}))
	stream := sink.Stream()

	MutateExtension(stream, func(f *tallyFields) { f.seen++ })
	MutateExtension(stream, func(f *tallyFields) { f.seen++ })

	seen := ReadExtension(stream, func(f *tallyFields) int { return f.seen })
	require.Equal(t, 2, seen)
}

func TestExtension_SharedAcrossHandles(t *testing.T) {
	sink := New[int](WithExtension(&tallyFields{}))

	MutateExtension(sink.Stream(), func(f *tallyFields) { f.seen = 42 })

	other := sink.Stream()
	require.Equal(t, 42, ReadExtension(other, func(f *tallyFields) int { return f.seen }))
}

func TestExtension_MissingPayloadPanics(t *testing.T) {
	stream := New[int]().Stream()

	requirePanicsErrorIs(t, ErrNoExtension, func() {
		ReadExtension(stream, func(f *tallyFields) int { return f.seen })
	})
	requirePanicsErrorIs(t, ErrNoExtension, func() {
		MutateExtension(stream, func(f *tallyFields) {})
	})
}

func TestExtension_TypeMismatchPanics(t *testing.T) {
	stream := New[int](WithExtension(&tallyFields{})).Stream()

	requirePanicsErrorIs(t, ErrExtensionType, func() {
		ReadExtension(stream, func(f *otherFields) bool { return f.unused })
	})
	requirePanicsErrorIs(t, ErrExtensionType, func() {
		MutateExtension(stream, func(f *otherFields) {})
	})
}

func TestExtension_MismatchDoesNotPoison(t *testing.T) {
	sink := New[int](WithExtension(&tallyFields{}))
	stream := sink.Stream()

	require.Panics(t, func() { MutateExtension(stream, func(f *otherFields) {}) })

	// A mismatch is detected before any payload access, so the stream
	// remains usable.
	require.NotPanics(t, func() { sink.Emit(1) })
}

func TestExtension_CallbackPanicPoisons(t *testing.T) {
	sink := New[int](WithExtension(&tallyFields{}))
	stream := sink.Stream()

	require.PanicsWithValue(t, "mutate fault", func() {
		MutateExtension(stream, func(f *tallyFields) { panic("mutate fault") })
	})

	requirePanicsErrorIs(t, ErrPoisoned, func() { sink.Emit(1) })
	requirePanicsErrorIs(t, ErrPoisoned, func() {
		ReadExtension(stream, func(f *tallyFields) int { return f.seen })
	})
}
