//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"collab-hub/clock"
	"collab-hub/contract"
	"collab-hub/domain"
	"collab-hub/domain/event"
	"collab-hub/errors"
	"collab-hub/infrastructure/storage"
	"collab-hub/runtime"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type IChatService interface {
	GetOrCreateChannel(ctx context.Context, projectID, organizationID string) (domain.ChannelID, error)
	GetChannel(ctx context.Context, channelID domain.ChannelID) (domain.Channel, error)
	PostMessage(ctx context.Context, cmd domain.PostMessageCommand) (domain.Message, error)
	GetMessages(ctx context.Context, channelID domain.ChannelID, limit int) ([]domain.Message, error)
	SearchMessages(ctx context.Context, channelID domain.ChannelID, query string, limit int) ([]domain.Message, error)
	SubscribeToMessages(ctx context.Context, channelID domain.ChannelID, onChange func([]domain.Message)) (unsubscribe func())
}

type ChatConfig struct {
	MaxContentLength int
	MessageWindow    int
}

type ChatService struct {
	channels  storage.IChannelRepository
	messages  storage.IMessageRepository
	index     storage.IMessageIndex
	directory storage.IDirectoryRepository
	feed      contract.ChangeFeed
	sink      contract.ErrorSink
	relay     contract.Kicker
	censor    contract.Censor
	registry  *runtime.Registry
	clock     clock.Clock
	validate  *validator.Validate
	config    ChatConfig
	log       *slog.Logger
}

// NewChatService wires the chat pipeline. censor may be nil when
// moderation is disabled.
func NewChatService(
	channels storage.IChannelRepository,
	messages storage.IMessageRepository,
	index storage.IMessageIndex,
	directory storage.IDirectoryRepository,
	feed contract.ChangeFeed,
	sink contract.ErrorSink,
	relay contract.Kicker,
	censor contract.Censor,
	registry *runtime.Registry,
	clk clock.Clock,
	config ChatConfig,
	log *slog.Logger,
) *ChatService {
	return &ChatService{
		channels:  channels,
		messages:  messages,
		index:     index,
		directory: directory,
		feed:      feed,
		sink:      sink,
		relay:     relay,
		censor:    censor,
		registry:  registry,
		clock:     clk,
		validate:  validator.New(),
		config:    config,
		log:       log,
	}
}

// GetOrCreateChannel returns the single channel of a project, creating it
// on first access with the project clients and the tenant admins as
// members. The id is derived from the project, so concurrent first
// accesses all end up on the same document.
func (s *ChatService) GetOrCreateChannel(ctx context.Context, projectID, organizationID string) (id domain.ChannelID, err error) {
	_, span := startSpan(ctx, "ChatService.GetOrCreateChannel", trace.WithAttributes(
		attribute.String("project_id", projectID),
		attribute.String("organization_id", organizationID),
	))
	defer func() { endSpan(span, err) }()

	if projectID == "" || organizationID == "" {
		return "", fmt.Errorf("%w: project and organization are required", errors.ErrInvalidRequest)
	}
	id = domain.NewChannelID(projectID, organizationID)
	if existing, err := s.channels.GetChannel(id); err == nil {
		if existing.ProjectID != projectID || existing.OrganizationID != organizationID {
			s.log.Error("Channel id bound to another project", "channel_id", id,
				"project_id", projectID, "owner_project_id", existing.ProjectID)
			return "", errors.ErrProjectNotFound
		}
		return id, nil
	} else if !stderrors.Is(err, errors.ErrChannelNotFound) {
		return "", err
	}

	project, err := s.directory.GetProject(projectID)
	if err != nil {
		return "", err
	}
	if project.OrganizationID != organizationID {
		return "", errors.ErrProjectNotFound
	}
	users, err := s.directory.ListByOrganization(organizationID)
	if err != nil {
		return "", fmt.Errorf("list users of %s: %w", organizationID, err)
	}

	channel, created, err := s.channels.CreateIfAbsent(domain.Channel{
		ID:             id,
		ProjectID:      projectID,
		OrganizationID: organizationID,
		ProjectName:    project.Name,
		Members:        domain.ChannelMembers(project, users),
		CreatedAt:      s.clock.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("create channel for project %s: %w", projectID, err)
	}
	if created {
		s.log.Info("Channel created", "channel_id", channel.ID, "project_id", projectID, "members", len(channel.Members))
	}
	return channel.ID, nil
}

func (s *ChatService) GetChannel(_ context.Context, channelID domain.ChannelID) (domain.Channel, error) {
	return s.channels.GetChannel(channelID)
}

// PostMessage stores the message and its MessagePosted event atomically.
// Everything after that is best-effort: preview, search index and change
// signal failures go to the error sink and never fail the post.
// Notifications are produced by the outbox relay.
func (s *ChatService) PostMessage(ctx context.Context, cmd domain.PostMessageCommand) (message domain.Message, err error) {
	ctx, span := startSpan(ctx, "ChatService.PostMessage", trace.WithAttributes(
		attribute.String("channel_id", string(cmd.ChannelID)),
		attribute.String("sender_id", cmd.Sender.ID),
	))
	defer func() { endSpan(span, err) }()

	if err := s.validateMessage(cmd); err != nil {
		return domain.Message{}, err
	}
	channel, err := s.channels.GetChannel(cmd.ChannelID)
	if err != nil {
		return domain.Message{}, err
	}

	text := cmd.Text
	if s.censor != nil {
		text = s.censor.Censor(text)
	}
	message = domain.Message{
		ID:        uuid.New(),
		ChannelID: channel.ID,
		Sender:    cmd.Sender,
		Text:      text,
		SentAt:    s.clock.Now(),
	}
	evt := event.New(channel.OrganizationID, message.SentAt, event.MessagePosted{
		ChannelID:  channel.ID,
		MessageID:  message.ID,
		SenderID:   message.Sender.ID,
		SenderName: message.Sender.Name,
		Text:       message.Text,
		SentAt:     message.SentAt,
	})
	if err := s.messages.StoreMessage(message, evt); err != nil {
		return domain.Message{}, fmt.Errorf("store message: %w", err)
	}

	if err := s.channels.UpdatePreview(channel.ID, domain.Preview{Text: message.Text, At: message.SentAt}); err != nil {
		s.sink.Report(ctx, "chat.preview", err, "channel_id", channel.ID)
	}
	if err := s.index.Index(message); err != nil {
		s.sink.Report(ctx, "chat.index", err, "message_id", message.ID)
	}
	topic := contract.ChannelTopic(channel.ID)
	if err := s.feed.Publish(ctx, topic); err != nil {
		s.sink.Report(ctx, "chat.publish", err, "topic", topic)
	}
	s.relay.Kick()
	return message, nil
}

func (s *ChatService) validateMessage(cmd domain.PostMessageCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	if strings.TrimSpace(cmd.Text) == "" {
		return fmt.Errorf("%w: empty message", errors.ErrInvalidRequest)
	}
	if s.config.MaxContentLength > 0 && utf8.RuneCountInString(cmd.Text) > s.config.MaxContentLength {
		return fmt.Errorf("%w: message longer than %d characters", errors.ErrInvalidRequest, s.config.MaxContentLength)
	}
	return nil
}

// GetMessages returns the latest window of a channel, oldest first.
func (s *ChatService) GetMessages(_ context.Context, channelID domain.ChannelID, limit int) ([]domain.Message, error) {
	if limit <= 0 || limit > s.config.MessageWindow {
		limit = s.config.MessageWindow
	}
	return s.messages.GetLatestMessages(channelID, limit)
}

func (s *ChatService) SearchMessages(ctx context.Context, channelID domain.ChannelID, query string, limit int) (messages []domain.Message, err error) {
	ctx, span := startSpan(ctx, "ChatService.SearchMessages")
	defer func() { endSpan(span, err) }()

	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty query", errors.ErrInvalidRequest)
	}
	if limit <= 0 || limit > s.config.MessageWindow {
		limit = s.config.MessageWindow
	}
	return s.index.Search(ctx, channelID, query, limit)
}

// SubscribeToMessages pushes the latest message window, oldest first, on
// subscribe and after every message posted to the channel.
func (s *ChatService) SubscribeToMessages(ctx context.Context, channelID domain.ChannelID, onChange func([]domain.Message)) func() {
	load := func(context.Context) ([]domain.Message, error) {
		return s.messages.GetLatestMessages(channelID, s.config.MessageWindow)
	}
	return runtime.Subscribe(ctx, s.registry, contract.ChannelTopic(channelID), load, onChange)
}
