//go:generate go run go.uber.org/mock/mockgen -source=notification_service.go -destination=../mocks/mock_notification_service.go -package=mocks
package services

import (
	"collab-hub/clock"
	"collab-hub/contract"
	"collab-hub/domain"
	"collab-hub/errors"
	"collab-hub/infrastructure/storage"
	"collab-hub/runtime"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// NotifyArgs describes one notification for one recipient. ProjectName is
// resolved from the directory when left empty.
type NotifyArgs struct {
	RecipientID string
	Message     string
	Correlation domain.Correlation
	ProjectID   string
	ProjectName string
}

// INotifier is the single primitive every fan-out rule converges on.
type INotifier interface {
	Notify(ctx context.Context, args NotifyArgs) (uuid.UUID, error)
}

type INotificationService interface {
	INotifier
	GetNotification(ctx context.Context, id uuid.UUID) (domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID) (domain.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
	ListNotifications(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	DeleteExpiredNotifications(ctx context.Context) (int, error)
	SubscribeToNotifications(ctx context.Context, userID string, onChange func([]domain.Notification)) (unsubscribe func())
}

type NotificationService struct {
	notifications storage.INotificationRepository
	directory     storage.IDirectoryRepository
	feed          contract.ChangeFeed
	sink          contract.ErrorSink
	registry      *runtime.Registry
	clock         clock.Clock
	feedWindow    int
	log           *slog.Logger
}

func NewNotificationService(
	notifications storage.INotificationRepository,
	directory storage.IDirectoryRepository,
	feed contract.ChangeFeed,
	sink contract.ErrorSink,
	registry *runtime.Registry,
	clk clock.Clock,
	feedWindow int,
	log *slog.Logger,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		directory:     directory,
		feed:          feed,
		sink:          sink,
		registry:      registry,
		clock:         clk,
		feedWindow:    feedWindow,
		log:           log,
	}
}

// Notify writes one unread notification expiring after domain.NotificationTTL.
// It is not idempotent: two calls create two records.
func (s *NotificationService) Notify(ctx context.Context, args NotifyArgs) (id uuid.UUID, err error) {
	ctx, span := startSpan(ctx, "NotificationService.Notify", trace.WithAttributes(
		attribute.String("recipient_id", args.RecipientID),
	))
	defer func() { endSpan(span, err) }()

	if args.RecipientID == "" || args.Message == "" {
		return uuid.Nil, fmt.Errorf("%w: recipient and message are required", errors.ErrInvalidRequest)
	}
	if args.ProjectName == "" {
		args.ProjectName = s.projectName(args.ProjectID)
	}

	notification := domain.NewNotification(args.RecipientID, args.Message, args.Correlation,
		args.ProjectID, args.ProjectName, s.clock.Now())
	if err := s.notifications.StoreNotification(notification); err != nil {
		return uuid.Nil, fmt.Errorf("store notification for %s: %w", args.RecipientID, err)
	}
	s.publish(ctx, args.RecipientID)
	return notification.ID, nil
}

// projectName never fails: a missing project or a directory error yields
// domain.UnknownProject.
func (s *NotificationService) projectName(projectID string) string {
	if projectID == "" {
		return domain.UnknownProject
	}
	project, err := s.directory.GetProject(projectID)
	if err != nil {
		s.log.Debug("Project name not resolved", "project_id", projectID, "error", err)
		return domain.UnknownProject
	}
	return project.Name
}

func (s *NotificationService) GetNotification(_ context.Context, id uuid.UUID) (domain.Notification, error) {
	return s.notifications.GetNotification(id)
}

// MarkNotificationRead is idempotent.
func (s *NotificationService) MarkNotificationRead(ctx context.Context, id uuid.UUID) (domain.Notification, error) {
	notification, err := s.notifications.MarkRead(id)
	if err != nil {
		return domain.Notification{}, err
	}
	s.publish(ctx, notification.RecipientID)
	return notification, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	marked, err := s.notifications.MarkAllRead(userID)
	if err != nil {
		return 0, err
	}
	if marked > 0 {
		s.publish(ctx, userID)
	}
	return marked, nil
}

// ListNotifications returns the newest notifications first, at most the
// feed window.
func (s *NotificationService) ListNotifications(_ context.Context, userID string, limit int) ([]domain.Notification, error) {
	return s.notifications.GetLatestNotifications(userID, s.window(limit))
}

// DeleteExpiredNotifications removes every notification that expired
// strictly before now and refreshes the feeds it touched.
func (s *NotificationService) DeleteExpiredNotifications(ctx context.Context) (deleted int, err error) {
	ctx, span := startSpan(ctx, "NotificationService.DeleteExpiredNotifications")
	defer func() { endSpan(span, err) }()

	removed, err := s.notifications.DeleteExpired(s.clock.Now())
	if err != nil {
		return len(removed), fmt.Errorf("delete expired notifications: %w", err)
	}
	recipients := lo.Uniq(lo.Map(removed, func(n domain.Notification, _ int) string { return n.RecipientID }))
	for _, recipient := range recipients {
		s.publish(ctx, recipient)
	}
	s.log.Info("Expired notifications deleted", "count", len(removed), "recipients", len(recipients))
	return len(removed), nil
}

// SubscribeToNotifications pushes the latest feed window, newest first,
// on subscribe and after every change of the user's feed.
func (s *NotificationService) SubscribeToNotifications(ctx context.Context, userID string, onChange func([]domain.Notification)) func() {
	load := func(context.Context) ([]domain.Notification, error) {
		return s.notifications.GetLatestNotifications(userID, s.feedWindow)
	}
	return runtime.Subscribe(ctx, s.registry, contract.FeedTopic(userID), load, onChange)
}

func (s *NotificationService) window(limit int) int {
	if limit <= 0 || limit > s.feedWindow {
		return s.feedWindow
	}
	return limit
}

func (s *NotificationService) publish(ctx context.Context, userID string) {
	topic := contract.FeedTopic(userID)
	if err := s.feed.Publish(ctx, topic); err != nil {
		s.sink.Report(ctx, "notification.publish", err, "topic", topic)
	}
}
