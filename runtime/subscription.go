package runtime

import (
	"context"
	"sync"
	"sync/atomic"
)

// Loader reads the current snapshot behind a topic.
type Loader[T any] func(ctx context.Context) (T, error)

type subscription[T any] struct {
	registry *Registry
	topic    string
	id       uint64
	load     Loader[T]
	onChange func(T)
	dirty    chan struct{}
	cancel   context.CancelFunc
	once     sync.Once

	// callbackMu is held from the closed check until the callback returns.
	callbackMu sync.Mutex
	closed     atomic.Bool
	inCallback atomic.Bool
}

// Subscribe delivers the snapshot returned by load to onChange, first
// right away and then after every change signalled on topic. Changes that
// arrive while a snapshot is being loaded or delivered collapse into one
// more re-read.
//
// The returned function detaches the subscription: once it has returned no
// new callback starts. It can be called more than once, and from inside
// onChange. Cancelling ctx detaches as well.
func Subscribe[T any](ctx context.Context, registry *Registry, topic string, load Loader[T], onChange func(T)) (unsubscribe func()) {
	ctx, cancel := context.WithCancel(ctx)
	s := &subscription[T]{
		registry: registry,
		topic:    topic,
		load:     load,
		onChange: onChange,
		dirty:    make(chan struct{}, 1),
		cancel:   cancel,
	}
	s.id = registry.add(topic, s)
	// Initial snapshot.
	s.signal()

	go s.run(ctx)
	return s.unsubscribe
}

func (s *subscription[T]) signal() {
	select {
	case s.dirty <- struct{}{}:
	default:
	}
}

func (s *subscription[T]) run(ctx context.Context) {
	defer s.unsubscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.dirty:
			snapshot, err := s.load(ctx)
			if err != nil {
				if ctx.Err() == nil {
					s.registry.report(ctx, "subscription.load", err, "topic", s.topic)
				}
				continue
			}
			s.deliver(snapshot)
		}
	}
}

func (s *subscription[T]) deliver(snapshot T) {
	s.callbackMu.Lock()
	defer s.callbackMu.Unlock()
	if s.closed.Load() {
		return
	}
	s.inCallback.Store(true)
	defer s.inCallback.Store(false)
	s.onChange(snapshot)
}

// unsubscribe waits for a delivery that passed the closed check but has
// not entered the callback yet. A callback already running (possibly the
// caller itself) is not waited for.
func (s *subscription[T]) unsubscribe() {
	s.once.Do(func() {
		s.closed.Store(true)
		s.cancel()
		s.registry.remove(s.topic, s.id)
		if !s.inCallback.Load() {
			s.callbackMu.Lock()
			s.callbackMu.Unlock() //nolint:staticcheck
		}
	})
}
