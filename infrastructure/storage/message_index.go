//go:generate go run go.uber.org/mock/mockgen -source=message_index.go -destination=../../mocks/mock_message_index.go -package=mocks
package storage

import (
	"collab-hub/domain"
	"context"
	"fmt"
	"log/slog"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

const (
	fieldChannel    = "channel"
	fieldText       = "text"
	fieldSenderID   = "sender_id"
	fieldSenderName = "sender_name"
	fieldSentAt     = "sent_at"
)

// IMessageIndex is the full-text search side of the chat history.
// Badger stays the source of truth; the index can be rebuilt from it.
type IMessageIndex interface {
	Index(message domain.Message) error
	Search(ctx context.Context, channelID domain.ChannelID, query string, limit int) ([]domain.Message, error)
}

type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger) MessageIndex {
	return MessageIndex{writer: writer, log: log}
}

func (m MessageIndex) Index(message domain.Message) error {
	doc := bluge.NewDocument(message.ID.String())
	doc.AddField(bluge.NewKeywordField(fieldChannel, string(message.ChannelID)).StoreValue())
	doc.AddField(bluge.NewTextField(fieldText, message.Text).StoreValue())
	doc.AddField(bluge.NewKeywordField(fieldSenderID, message.Sender.ID).StoreValue())
	doc.AddField(bluge.NewStoredOnlyField(fieldSenderName, []byte(message.Sender.Name)))
	doc.AddField(bluge.NewDateTimeField(fieldSentAt, message.SentAt).StoreValue().Sortable())
	if err := m.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("index message %s: %w", message.ID, err)
	}
	return nil
}

// Search returns the channel messages matching query, newest first.
func (m MessageIndex) Search(ctx context.Context, channelID domain.ChannelID, query string, limit int) ([]domain.Message, error) {
	reader, err := m.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(string(channelID)).SetField(fieldChannel)).
		AddMust(bluge.NewMatchQuery(query).SetField(fieldText))
	request := bluge.NewTopNSearch(limit, q).SortBy([]string{"-" + fieldSentAt})

	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("search channel %s: %w", channelID, err)
	}

	var messages []domain.Message
	match, err := matches.Next()
	for err == nil && match != nil {
		message := domain.Message{ChannelID: channelID}
		var visitErr error
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				message.ID, visitErr = uuid.ParseBytes(value)
			case fieldText:
				message.Text = string(value)
			case fieldSenderID:
				message.Sender.ID = string(value)
			case fieldSenderName:
				message.Sender.Name = string(value)
			case fieldSentAt:
				message.SentAt, visitErr = bluge.DecodeDateTime(value)
			}
			return visitErr == nil
		})
		if err != nil {
			return nil, err
		}
		if visitErr != nil {
			return nil, visitErr
		}
		message.SentAt = message.SentAt.UTC()
		messages = append(messages, message)
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	return messages, nil
}
