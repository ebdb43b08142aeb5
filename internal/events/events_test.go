package events

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

type chanBroadcaster chan domain.Event

func (c chanBroadcaster) Broadcast(event domain.Event) { c <- event }

func TestLocalPublisher(t *testing.T) {
	received := make(chanBroadcaster, 1)
	pub := NewLocalPublisher(received)

	event := domain.Event{ID: "e1", Type: domain.EventQuestionCreated, QuestionID: 3}
	require.NoError(t, pub.Publish(context.Background(), event))
	assert.Equal(t, event, <-received)
}

func TestRedisRelay(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chanBroadcaster, 1)
	relay := NewRelay(client, "", received, nil)
	errs := make(chan error, 1)
	go func() { errs <- relay.Run(ctx) }()

	require.Eventually(t, func() bool {
		return mr.PubSubNumSub(DefaultChannel)[DefaultChannel] == 1
	}, 2*time.Second, 10*time.Millisecond)

	// A malformed payload is dropped without stopping the relay
	mr.Publish(DefaultChannel, "{not json")

	event := domain.Event{
		ID:         "e2",
		Type:       domain.EventQuestionDeleted,
		QuestionID: 12,
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, NewRedisPublisher(client, "").Publish(ctx, event))

	select {
	case got := <-received:
		assert.Equal(t, event, got)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not relayed")
	}

	cancel()
	select {
	case err := <-errs:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not stop")
	}
}

func TestRedisPublisherError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	err := NewRedisPublisher(client, "custom").Publish(context.Background(), domain.Event{ID: "x"})
	assert.Error(t, err)
}
