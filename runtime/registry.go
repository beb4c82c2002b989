package runtime

import (
	"collab-hub/contract"
	"context"
	"log/slog"
	"sync"
)

// signaler is the registry's view of a live subscription.
type signaler interface {
	signal()
}

// Registry maps change-feed topics to live subscriptions.
// It implements feed.Notifier: the change feed calls Notify for every
// topic that changed, locally or on another instance.
type Registry struct {
	mu     sync.RWMutex
	nextID uint64
	topics map[string]map[uint64]signaler
	sink   contract.ErrorSink
	log    *slog.Logger
}

func NewRegistry(sink contract.ErrorSink, log *slog.Logger) *Registry {
	return &Registry{
		topics: make(map[string]map[uint64]signaler),
		sink:   sink,
		log:    log,
	}
}

// Notify marks every subscription of topic dirty. It never blocks: a
// subscription that already has a pending change absorbs the signal.
func (r *Registry) Notify(topic string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.topics[topic] {
		s.signal()
	}
}

// Count returns the number of live subscriptions on topic.
func (r *Registry) Count(topic string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.topics[topic])
}

func (r *Registry) add(topic string, s signaler) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	if _, ok := r.topics[topic]; !ok {
		r.topics[topic] = make(map[uint64]signaler)
	}
	r.topics[topic][r.nextID] = s
	return r.nextID
}

// remove detaches a subscription and drops the topic once it is empty.
func (r *Registry) remove(topic string, id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs, ok := r.topics[topic]
	if !ok {
		return
	}
	delete(subs, id)
	if len(subs) == 0 {
		delete(r.topics, topic)
	}
}

func (r *Registry) report(ctx context.Context, op string, err error, attrs ...any) {
	if r.sink == nil {
		r.log.Warn("Subscription failure", append([]any{"op", op, "error", err}, attrs...)...)
		return
	}
	r.sink.Report(ctx, op, err, attrs...)
}
