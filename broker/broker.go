package broker

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alphadose/haxmap"

	"github.com/casualjim/rivulet"
	"github.com/casualjim/rivulet/pkg/slogx"
)

// ErrNilListener is returned by Subscribe when no listener is given.
var ErrNilListener = errors.New("listener is required")

// Broker hands out topics by id, creating each topic's sink on first use.
// It is safe for concurrent use.
type Broker[T any] struct {
	topics *haxmap.Map[string, *Topic[T]]
	log    *slog.Logger
}

// New creates an empty broker.
func New[T any]() *Broker[T] {
	return &Broker[T]{
		topics: haxmap.New[string, *Topic[T]](),
		log:    slog.Default().With(slogx.LoggerName("rivulet.broker")),
	}
}

// Topic returns the topic registered under id, creating it if needed. All
// callers asking for the same id share one topic.
func (b *Broker[T]) Topic(id string) *Topic[T] {
	topic, loaded := b.topics.GetOrCompute(id, func() *Topic[T] {
		return &Topic[T]{
			ID:   id,
			sink: rivulet.New[T](rivulet.WithName(id)),
			log:  b.log.With(slog.String("topic", id)),
		}
	})
	if !loaded {
		topic.log.Debug("created topic")
	}
	return topic
}

// Close closes the sink of every topic the broker created. Streams and
// subscriptions handed out earlier remain valid; they just observe no
// further emissions.
func (b *Broker[T]) Close() {
	b.topics.ForEach(func(id string, t *Topic[T]) bool {
		t.sink.Close()
		t.log.Debug("closed topic")
		return true
	})
}

// Topic is one named stream owned by a broker. The broker keeps the write
// side; everything reachable from here is either publishing through the
// topic or reading from its stream.
type Topic[T any] struct {
	ID   string
	sink *rivulet.Sink[T]
	log  *slog.Logger
}

// Publish emits value to every subscriber of the topic, synchronously and
// in subscription order.
func (t *Topic[T]) Publish(value T) {
	t.sink.Emit(value)
}

// Stream returns the topic's read handle.
func (t *Topic[T]) Stream() rivulet.Stream[T] {
	return t.sink.Stream()
}

// Subscribe registers fn for every subsequent value published on the topic.
// When ctx is cancelable, cancellation releases the subscription in the
// background; callers that want deterministic release call Unsubscribe
// themselves.
func (t *Topic[T]) Subscribe(ctx context.Context, fn rivulet.Listener[T]) (*rivulet.Subscription[T], error) {
	if fn == nil {
		return nil, ErrNilListener
	}

	sub := t.sink.Stream().Subscribe(fn)
	t.log.Debug("subscribed", slog.Int("subscribers", t.sink.Stream().CountSubscribers()))

	if done := ctx.Done(); done != nil {
		go func() {
			<-done
			sub.Unsubscribe()
			t.log.Debug("subscription released by context")
		}()
	}
	return sub, nil
}

// PipeInto forwards every value published on t into dst. The returned
// subscription controls the forwarding link.
func (t *Topic[T]) PipeInto(dst *Topic[T]) *rivulet.Subscription[T] {
	t.log.Debug("piping topic", slog.String("into", dst.ID))
	return t.sink.Stream().PipeInto(dst.sink)
}
