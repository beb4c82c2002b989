package services_test

import (
	"collab-hub/clock"
	"collab-hub/domain"
	"collab-hub/infrastructure/feed"
	"collab-hub/infrastructure/storage"
	"collab-hub/observability"
	"collab-hub/runtime"
	"collab-hub/runtime/workers"
	"collab-hub/services"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

var testLogger = logs.GetLoggerFromLevel(slog.LevelDebug)

func fixedNow() time.Time {
	return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
}

// hub wires the real stores and services the way cmd/hub does, with a
// fake clock and an in-memory search index.
type hub struct {
	clock         *clock.Fake
	sink          *observability.LogErrorSink
	registry      *runtime.Registry
	directory     storage.DirectoryRepository
	channels      storage.ChannelRepository
	messages      storage.MessageRepository
	notifications storage.NotificationRepository
	documents     storage.DocumentRepository
	tickets       storage.TicketRepository
	outbox        storage.OutboxRepository
	relay         *workers.OutboxRelay
	chat          *services.ChatService
	notifier      *services.NotificationService
	workflow      *services.WorkflowService
}

func newHub(t *testing.T) *hub {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })

	h := &hub{
		clock:         clock.NewFake(fixedNow()),
		sink:          observability.NewLogErrorSink(testLogger),
		directory:     storage.NewDirectoryRepository(db, testLogger),
		channels:      storage.NewChannelRepository(db, testLogger),
		messages:      storage.NewMessageRepository(db, testLogger),
		notifications: storage.NewNotificationRepository(db, testLogger),
		documents:     storage.NewDocumentRepository(db, testLogger),
		tickets:       storage.NewTicketRepository(db, testLogger),
		outbox:        storage.NewOutboxRepository(db, testLogger),
	}
	h.registry = runtime.NewRegistry(h.sink, testLogger)
	changes := feed.NewLocalFeed(h.registry)

	h.notifier = services.NewNotificationService(h.notifications, h.directory, changes, h.sink,
		h.registry, h.clock, 50, testLogger)
	fanout := services.NewFanoutEngine(h.channels, h.directory, h.notifier, nopMailer{}, h.sink,
		"https://app.example.com", testLogger)
	h.relay = workers.NewOutboxRelay(h.outbox, fanout, h.sink, testLogger, time.Hour, 100, 3)
	h.chat = services.NewChatService(h.channels, h.messages, storage.NewMessageIndex(writer, testLogger),
		h.directory, changes, h.sink, h.relay, nil, h.registry, h.clock,
		services.ChatConfig{MaxContentLength: 200, MessageWindow: 50}, testLogger)
	h.workflow = services.NewWorkflowService(h.documents, h.tickets,
		storage.NewReportRepository(db, testLogger), h.directory, h.relay, h.clock, testLogger)
	return h
}

// seedProject stores project P of org-1 with client c1 and admins a1, a2.
func (h *hub) seedProject(t *testing.T) domain.Project {
	t.Helper()
	users := []domain.User{
		{ID: "c1", OrganizationID: "org-1", Name: "Carl", Email: "carl@example.com", Role: domain.RoleClient},
		{ID: "a1", OrganizationID: "org-1", Name: "Ada", Role: domain.RoleAdmin},
		{ID: "a2", OrganizationID: "org-1", Name: "Alan", Role: domain.RoleAdmin},
		{ID: "m1", OrganizationID: "org-1", Name: "Mia", Role: domain.RoleMember},
		{ID: "x1", OrganizationID: "org-2", Name: "Xavier", Role: domain.RoleAdmin},
	}
	for _, u := range users {
		require.NoError(t, h.directory.SaveUser(u))
	}
	project := domain.Project{ID: "P", OrganizationID: "org-1", Name: "Website", ClientIDs: []string{"c1"}}
	require.NoError(t, h.directory.SaveProject(project))
	return project
}

func (h *hub) drain(t *testing.T) int {
	t.Helper()
	delivered, err := h.relay.Drain(t.Context())
	require.NoError(t, err)
	return delivered
}

func (h *hub) unread(t *testing.T, userID string) []domain.Notification {
	t.Helper()
	list, err := h.notifier.ListNotifications(t.Context(), userID, 0)
	require.NoError(t, err)
	var unread []domain.Notification
	for _, n := range list {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread
}

type nopMailer struct{}

func (nopMailer) SendEmail(_ context.Context, _, _, _ string) error { return nil }
