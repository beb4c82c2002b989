package runtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu  sync.Mutex
	ops []string
}

func (r *recordingSink) Report(_ context.Context, op string, _ error, _ ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
}

func (r *recordingSink) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ops)
}

// snapshots collects every delivered snapshot.
type snapshots struct {
	mu   sync.Mutex
	seen [][]string
}

func (s *snapshots) add(v []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, v)
}

func (s *snapshots) last() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.seen) == 0 {
		return nil
	}
	return s.seen[len(s.seen)-1]
}

func (s *snapshots) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}

// store is a tiny mutable list standing in for the database.
type store struct {
	mu    sync.Mutex
	items []string
}

func (s *store) append(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, v)
}

func (s *store) load(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.items...), nil
}

func TestSubscribe_Initial_Snapshot_And_Changes(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(nil, slog.Default())
	db := &store{items: []string{"a"}}
	got := &snapshots{}

	// Given a subscription on a topic
	unsubscribe := Subscribe(context.Background(), registry, "chat:1", db.load, got.add)
	defer unsubscribe()

	// Then the initial snapshot is delivered
	req.Eventually(func() bool { return len(got.last()) == 1 }, time.Second, 5*time.Millisecond)

	// When the data changes and the topic is notified
	db.append("b")
	registry.Notify("chat:1")

	// Then the full snapshot is delivered again
	req.Eventually(func() bool { return len(got.last()) == 2 }, time.Second, 5*time.Millisecond)
	req.Equal([]string{"a", "b"}, got.last())
}

func TestSubscribe_Other_Topic_Is_Not_Delivered(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(nil, slog.Default())
	db := &store{}
	got := &snapshots{}

	unsubscribe := Subscribe(context.Background(), registry, "notifications:a1", db.load, got.add)
	defer unsubscribe()
	req.Eventually(func() bool { return got.len() == 1 }, time.Second, 5*time.Millisecond)

	registry.Notify("notifications:a2")
	time.Sleep(50 * time.Millisecond)
	req.Equal(1, got.len())
}

func TestSubscribe_Two_Subscriptions_Are_Independent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(nil, slog.Default())
	db := &store{}
	tab1, tab2 := &snapshots{}, &snapshots{}

	unsubscribe1 := Subscribe(context.Background(), registry, "chat:1", db.load, tab1.add)
	unsubscribe2 := Subscribe(context.Background(), registry, "chat:1", db.load, tab2.add)
	defer unsubscribe2()
	req.Equal(2, registry.Count("chat:1"))

	db.append("x")
	registry.Notify("chat:1")
	req.Eventually(func() bool { return len(tab1.last()) == 1 && len(tab2.last()) == 1 }, time.Second, 5*time.Millisecond)

	// Closing one tab leaves the other one live
	unsubscribe1()
	req.Equal(1, registry.Count("chat:1"))
	db.append("y")
	registry.Notify("chat:1")
	req.Eventually(func() bool { return len(tab2.last()) == 2 }, time.Second, 5*time.Millisecond)
	req.Len(tab1.last(), 1)
}

func TestSubscribe_No_Callback_After_Unsubscribe(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(nil, slog.Default())
	db := &store{}
	var calls atomic.Int64

	unsubscribe := Subscribe(context.Background(), registry, "chat:1", db.load, func([]string) {
		calls.Add(1)
	})
	req.Eventually(func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	// A burst of notifications racing with unsubscribe
	for i := 0; i < 100; i++ {
		registry.Notify("chat:1")
	}
	unsubscribe()
	// A callback already running when unsubscribe returned may still finish.
	time.Sleep(20 * time.Millisecond)
	after := calls.Load()

	for i := 0; i < 100; i++ {
		registry.Notify("chat:1")
	}
	time.Sleep(50 * time.Millisecond)
	req.Equal(after, calls.Load())
	req.Equal(0, registry.Count("chat:1"))

	// Calling it again is harmless
	unsubscribe()
}

func TestSubscribe_Unsubscribe_From_Inside_Callback(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(nil, slog.Default())
	db := &store{}
	var calls atomic.Int64
	var unsubscribe func()
	ready := make(chan struct{})

	unsubscribe = Subscribe(context.Background(), registry, "chat:1", db.load, func([]string) {
		<-ready
		calls.Add(1)
		unsubscribe()
	})
	close(ready)

	req.Eventually(func() bool { return registry.Count("chat:1") == 0 }, time.Second, 5*time.Millisecond)
	registry.Notify("chat:1")
	time.Sleep(50 * time.Millisecond)
	req.Equal(int64(1), calls.Load())
}

func TestSubscribe_Context_Cancel_Detaches(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(nil, slog.Default())
	db := &store{}
	ctx, cancel := context.WithCancel(context.Background())

	Subscribe(ctx, registry, "chat:1", db.load, func([]string) {})
	req.Equal(1, registry.Count("chat:1"))

	cancel()
	req.Eventually(func() bool { return registry.Count("chat:1") == 0 }, time.Second, 5*time.Millisecond)
}

func TestSubscribe_Load_Error_Goes_To_Sink(t *testing.T) {
	req := require.New(t)
	sink := &recordingSink{}
	registry := NewRegistry(sink, slog.Default())
	var delivered atomic.Bool

	unsubscribe := Subscribe(context.Background(), registry, "chat:1",
		func(context.Context) (int, error) { return 0, errors.New("disk on fire") },
		func(int) { delivered.Store(true) })
	defer unsubscribe()

	req.Eventually(func() bool { return sink.count() == 1 }, time.Second, 5*time.Millisecond)
	req.False(delivered.Load())
}
