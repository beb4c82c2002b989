package observability

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"go.opentelemetry.io/otel/trace"
)

// LogErrorSink is the single place where failures of best-effort side
// effects end up. Each failure is logged at WARN and counted per operation.
type LogErrorSink struct {
	log    *slog.Logger
	mu     sync.Mutex
	counts map[string]int64
}

func NewLogErrorSink(log *slog.Logger) *LogErrorSink {
	return &LogErrorSink{log: log, counts: make(map[string]int64)}
}

func (s *LogErrorSink) Report(ctx context.Context, op string, err error, attrs ...any) {
	s.mu.Lock()
	s.counts[op]++
	s.mu.Unlock()

	args := append([]any{"op", op, "error", err}, attrs...)
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		args = append(args, "trace_id", sc.TraceID().String())
	}
	s.log.WarnContext(ctx, "Side effect failed", args...)
}

func (s *LogErrorSink) Count(op string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[op]
}

// OpCount is the number of failures of one operation.
type OpCount struct {
	Op    string `json:"op"`
	Count int64  `json:"count"`
}

// Counts returns every operation that failed at least once, by name.
func (s *LogErrorSink) Counts() []OpCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]OpCount, 0, len(s.counts))
	for op, n := range s.counts {
		out = append(out, OpCount{Op: op, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Op < out[j].Op })
	return out
}
