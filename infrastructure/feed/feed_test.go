package feed

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	topics []string
}

func (r *recorder) Notify(topic string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.topics = append(r.topics, topic)
}

func (r *recorder) seen(topic string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.topics {
		if t == topic {
			return true
		}
	}
	return false
}

func Test_Local_Feed_Notifies_Synchronously(t *testing.T) {
	req := require.New(t)
	rec := &recorder{}

	req.NoError(NewLocalFeed(rec).Publish(context.Background(), "chat:42"))
	req.True(rec.seen("chat:42"))
}

func Test_Redis_Feed_Reaches_Other_Instance(t *testing.T) {
	req := require.New(t)
	s := miniredis.RunT(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Given two hub instances sharing one Redis
	publisherSide := &recorder{}
	listenerSide := &recorder{}
	publisher, err := NewRedisFeed("redis://"+s.Addr(), "collab-hub:changes", publisherSide, slog.Default())
	req.NoError(err)
	defer publisher.Close()
	listener, err := NewRedisFeed("redis://"+s.Addr(), "collab-hub:changes", listenerSide, slog.Default())
	req.NoError(err)
	defer listener.Close()

	done := make(chan error, 1)
	go func() { done <- listener.Run(ctx) }()

	// When the first one publishes, the second one is notified
	req.Eventually(func() bool {
		_ = publisher.Publish(ctx, "notifications:a1")
		return listenerSide.seen("notifications:a1")
	}, 2*time.Second, 20*time.Millisecond)
	req.False(publisherSide.seen("notifications:a1"))

	cancel()
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop")
	}
}

func Test_Redis_Feed_Rejects_Bad_Url(t *testing.T) {
	_, err := NewRedisFeed("not a url", "c", &recorder{}, slog.Default())
	require.Error(t, err)
}
