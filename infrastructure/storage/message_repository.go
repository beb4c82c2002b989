//go:generate go run go.uber.org/mock/mockgen -source=message_repository.go -destination=../../mocks/mock_message_repository.go -package=mocks
package storage

import (
	"collab-hub/domain"
	"collab-hub/domain/event"
	"collab-hub/infrastructure/codec"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IMessageRepository interface {
	StoreMessage(message domain.Message, evt event.Event) error
	GetLatestMessages(channelID domain.ChannelID, limit int) ([]domain.Message, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

type diskMessage struct {
	ID           string    `cbor:"id"`
	ChannelID    string    `cbor:"channel_id"`
	SenderID     string    `cbor:"sender_id"`
	SenderName   string    `cbor:"sender_name"`
	SenderAvatar string    `cbor:"sender_avatar,omitempty"`
	SenderRole   string    `cbor:"sender_role,omitempty"`
	Text         string    `cbor:"text"`
	SentAt       time.Time `cbor:"sent_at"`
}

func messagePrefix(channelID domain.ChannelID) string {
	return fmt.Sprintf("msg:%s:", channelID)
}

// StoreMessage persists a message together with its outbox event.
// The key is formatted as "msg:{channel_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Break ties between messages sent in the same nanosecond by message id.
func (m MessageRepository) StoreMessage(message domain.Message, evt event.Event) error {
	key := fmt.Sprintf("%s%s:%s", messagePrefix(message.ChannelID), padded(message.SentAt), message.ID)
	return update(m.db, func(txn *badger.Txn) error {
		if err := setValue(txn, []byte(key), fromMessage(message)); err != nil {
			return err
		}
		return putOutbox(txn, evt)
	})
}

// GetLatestMessages returns the most recent messages of a channel,
// oldest first.
func (m MessageRepository) GetLatestMessages(channelID domain.ChannelID, limit int) ([]domain.Message, error) {
	var messages []domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		return scanLatest(txn, []byte(messagePrefix(channelID)), limit, func(_, val []byte) error {
			var disk diskMessage
			if err := codec.Unmarshal(val, &disk); err != nil {
				return err
			}
			message, err := toMessage(disk)
			if err != nil {
				return err
			}
			messages = append(messages, message)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(messages)
	return messages, nil
}

func fromMessage(message domain.Message) diskMessage {
	return diskMessage{
		ID:           message.ID.String(),
		ChannelID:    string(message.ChannelID),
		SenderID:     message.Sender.ID,
		SenderName:   message.Sender.Name,
		SenderAvatar: message.Sender.Avatar,
		SenderRole:   string(message.Sender.Role),
		Text:         message.Text,
		SentAt:       message.SentAt,
	}
}

func toMessage(disk diskMessage) (domain.Message, error) {
	parsedID, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:        parsedID,
		ChannelID: domain.ChannelID(disk.ChannelID),
		Sender: domain.Sender{
			ID:     disk.SenderID,
			Name:   disk.SenderName,
			Avatar: disk.SenderAvatar,
			Role:   domain.Role(disk.SenderRole),
		},
		Text:   disk.Text,
		SentAt: disk.SentAt.UTC(),
	}, nil
}
