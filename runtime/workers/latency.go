package workers

import (
	"collab-hub/clock"
	"collab-hub/contract"
	"collab-hub/domain/event"
	"context"
	"log/slog"
	"time"
)

// LatencyHandler wraps the relay handler and measures how long each event
// waited in the outbox before delivery.
type LatencyHandler struct {
	next             contract.EventHandler
	clock            clock.Clock
	latencyThreshold time.Duration
	log              *slog.Logger
}

func NewLatencyHandler(next contract.EventHandler, clk clock.Clock, latencyThreshold time.Duration, log *slog.Logger) *LatencyHandler {
	return &LatencyHandler{next: next, clock: clk, latencyThreshold: latencyThreshold, log: log}
}

func (h *LatencyHandler) Handle(ctx context.Context, e event.Event) error {
	leadTime := h.clock.Now().Sub(e.CreatedAt)
	err := h.next.Handle(ctx, e)

	h.log.Debug("telemetry: delivery latency",
		"event_id", e.ID,
		"type", e.Type,
		"lead_time_ms", leadTime.Milliseconds(),
	)
	if h.latencyThreshold > 0 && leadTime > h.latencyThreshold {
		h.log.Warn("high delivery latency detected", "event_id", e.ID, "type", e.Type, "lead_time", leadTime)
	}
	return err
}
