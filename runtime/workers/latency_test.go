package workers

import (
	"bytes"
	"collab-hub/clock"
	"collab-hub/domain/event"
	"collab-hub/mocks"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLatencyHandler_Warns_Past_Threshold(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	next := mocks.NewMockEventHandler(ctrl)
	createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	clk := clock.NewFake(createdAt.Add(10 * time.Second))
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelWarn}))

	evt := event.New("org-1", createdAt, event.ReportSubmitted{ReportID: "r1"})
	next.EXPECT().Handle(gomock.Any(), evt).Return(nil)
	h := NewLatencyHandler(next, clk, 5*time.Second, log)

	req.NoError(h.Handle(context.Background(), evt))
	req.Contains(out.String(), "high delivery latency detected")
}

func TestLatencyHandler_Passes_Errors_Through(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockEventHandler(ctrl)
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	evt := event.New("org-1", now, event.ReportSubmitted{ReportID: "r1"})
	boom := errors.New("boom")
	next.EXPECT().Handle(gomock.Any(), evt).Return(boom)

	h := NewLatencyHandler(next, clock.NewFake(now), time.Second, slog.Default())

	require.ErrorIs(t, h.Handle(context.Background(), evt), boom)
}
