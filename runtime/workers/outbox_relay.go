package workers

import (
	"collab-hub/contract"
	"collab-hub/infrastructure/storage"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// OutboxRelay delivers the events recorded in the outbox to a handler,
// oldest first. Delivery is at-least-once: an event is acknowledged only
// after the handler succeeded, and a failed event stays pending until it
// has failed maxAttempts times, then it is dead-lettered.
type OutboxRelay struct {
	outbox      storage.IOutboxRepository
	handler     contract.EventHandler
	sink        contract.ErrorSink
	log         *slog.Logger
	interval    time.Duration
	batchSize   int
	maxAttempts int
	kick        chan struct{}
}

func NewOutboxRelay(outbox storage.IOutboxRepository, handler contract.EventHandler, sink contract.ErrorSink,
	log *slog.Logger, interval time.Duration, batchSize, maxAttempts int) *OutboxRelay {
	return &OutboxRelay{
		outbox:      outbox,
		handler:     handler,
		sink:        sink,
		log:         log,
		interval:    interval,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		kick:        make(chan struct{}, 1),
	}
}

// Kick asks for a drain without waiting for the next tick. It never blocks.
func (r *OutboxRelay) Kick() {
	select {
	case r.kick <- struct{}{}:
	default:
	}
}

func (r *OutboxRelay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	// Events left over by a previous run.
	if _, err := r.Drain(ctx); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			r.log.Debug("Context done, stopping outbox relay")
			return nil
		case <-ticker.C:
		case <-r.kick:
		}
		if _, err := r.Drain(ctx); err != nil {
			return err
		}
	}
}

// Drain delivers pending events until the outbox is empty or only holds
// events that failed during this drain. It returns how many were delivered.
// Only store errors are returned; handler errors are counted on the event.
func (r *OutboxRelay) Drain(ctx context.Context) (int, error) {
	delivered := 0
	failed := make(map[string]struct{})
	for ctx.Err() == nil {
		entries, err := r.outbox.Pending(r.batchSize + len(failed))
		if err != nil {
			return delivered, fmt.Errorf("read outbox: %w", err)
		}
		progressed := false
		for _, entry := range entries {
			if ctx.Err() != nil {
				break
			}
			id := entry.Event.ID.String()
			if _, ok := failed[id]; ok {
				continue
			}
			progressed = true
			if err := r.handler.Handle(ctx, entry.Event); err != nil {
				failed[id] = struct{}{}
				if err := r.fail(ctx, entry, err); err != nil {
					return delivered, err
				}
				continue
			}
			if err := r.outbox.Ack(entry); err != nil {
				return delivered, fmt.Errorf("ack outbox event %s: %w", id, err)
			}
			delivered++
		}
		if !progressed {
			break
		}
	}
	if delivered > 0 {
		r.log.Debug("Outbox drained", "delivered", delivered, "failed", len(failed))
	}
	return delivered, nil
}

func (r *OutboxRelay) fail(ctx context.Context, entry storage.OutboxEntry, cause error) error {
	dead, err := r.outbox.Fail(entry, r.maxAttempts)
	if err != nil {
		return fmt.Errorf("record outbox failure %s: %w", entry.Event.ID, err)
	}
	if dead {
		r.sink.Report(ctx, "outbox.dead_letter", cause,
			"event_id", entry.Event.ID, "type", entry.Event.Type, "attempts", entry.Attempts+1)
		return nil
	}
	r.log.Warn("Outbox delivery failed, will retry",
		"event_id", entry.Event.ID, "type", entry.Event.Type, "attempts", entry.Attempts+1, "error", cause)
	return nil
}
