package broker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_TopicIdentity(t *testing.T) {
	b := New[int]()

	first := b.Topic("scores")
	second := b.Topic("scores")
	other := b.Topic("misses")

	require.Same(t, first, second)
	require.NotSame(t, first, other)
}

func TestBroker_PublishSubscribe(t *testing.T) {
	b := New[string]()
	topic := b.Topic("greetings")

	var got []string
	sub, err := topic.Subscribe(context.Background(), func(v *string) { got = append(got, *v) })
	require.NoError(t, err)
	defer sub.Unsubscribe()

	topic.Publish("hello")
	topic.Publish("world")

	require.Equal(t, []string{"hello", "world"}, got)
}

func TestBroker_SubscribeRequiresListener(t *testing.T) {
	b := New[int]()

	sub, err := b.Topic("x").Subscribe(context.Background(), nil)
	require.ErrorIs(t, err, ErrNilListener)
	assert.Nil(t, sub)
}

func TestBroker_ContextCancelReleasesSubscription(t *testing.T) {
	b := New[int]()
	topic := b.Topic("numbers")

	ctx, cancel := context.WithCancel(context.Background())
	_, err := topic.Subscribe(ctx, func(*int) {})
	require.NoError(t, err)
	require.Equal(t, 1, topic.Stream().CountSubscribers())

	cancel()
	require.Eventually(t, func() bool {
		return topic.Stream().CountSubscribers() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestBroker_PipeBetweenTopics(t *testing.T) {
	b := New[int]()
	source := b.Topic("source")
	dest := b.Topic("dest")

	link := source.PipeInto(dest)
	defer link.Unsubscribe()

	var got []int
	sub, err := dest.Subscribe(context.Background(), func(v *int) { got = append(got, *v) })
	require.NoError(t, err)
	defer sub.Unsubscribe()

	source.Publish(1)
	source.Publish(100)

	require.Equal(t, []int{1, 100}, got)
}

func TestBroker_CloseClosesTopics(t *testing.T) {
	b := New[int]()
	topic := b.Topic("doomed")

	b.Close()

	require.False(t, topic.Stream().Alive())
	require.Panics(t, func() { topic.Publish(1) })
}
