package storage

import (
	"collab-hub/domain"
	"collab-hub/domain/event"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newMessage(channelID domain.ChannelID, sender, text string, at time.Time) domain.Message {
	return domain.Message{
		ID:        uuid.New(),
		ChannelID: channelID,
		Sender:    domain.Sender{ID: sender, Name: sender, Role: domain.RoleClient},
		Text:      text,
		SentAt:    at,
	}
}

func postedEvent(message domain.Message) event.Event {
	return event.New("org-1", message.SentAt, event.MessagePosted{
		ChannelID:  message.ChannelID,
		MessageID:  message.ID,
		SenderID:   message.Sender.ID,
		SenderName: message.Sender.Name,
		Text:       message.Text,
		SentAt:     message.SentAt,
	})
}

func Test_Store_Messages_Returns_Ascending_Window(t *testing.T) {
	req := require.New(t)
	db := openDB(t)
	repository := NewMessageRepository(db, testLogger)
	channelID := domain.NewChannelID("p1", "org-1")

	// Given messages stored out of order
	var stored []domain.Message
	for _, i := range []int{3, 1, 4, 0, 2} {
		message := newMessage(channelID, "alice", fmt.Sprintf("message %d", i), fixedNow().Add(time.Duration(i)*time.Second))
		req.NoError(repository.StoreMessage(message, postedEvent(message)))
		stored = append(stored, message)
	}
	// And a message of another channel
	other := newMessage(domain.NewChannelID("p2", "org-1"), "bob", "elsewhere", fixedNow())
	req.NoError(repository.StoreMessage(other, postedEvent(other)))

	// When the latest three are fetched
	messages, err := repository.GetLatestMessages(channelID, 3)
	req.NoError(err)

	// Then they are the three most recent, oldest first
	req.Len(messages, 3)
	req.Equal("message 2", messages[0].Text)
	req.Equal("message 3", messages[1].Text)
	req.Equal("message 4", messages[2].Text)

	all, err := repository.GetLatestMessages(channelID, 0)
	req.NoError(err)
	req.Len(all, len(stored))
	for i := 1; i < len(all); i++ {
		req.False(all[i].SentAt.Before(all[i-1].SentAt))
	}
}

func Test_Store_Message_Records_Outbox_Event(t *testing.T) {
	req := require.New(t)
	db := openDB(t)
	repository := NewMessageRepository(db, testLogger)
	outbox := NewOutboxRepository(db, testLogger)
	message := newMessage(domain.NewChannelID("p1", "org-1"), "alice", "hello", fixedNow())

	req.NoError(repository.StoreMessage(message, postedEvent(message)))

	pending, err := outbox.Pending(10)
	req.NoError(err)
	req.Len(pending, 1)
	payload, ok := pending[0].Event.Payload.(event.MessagePosted)
	req.True(ok)
	req.Equal(message.ID, payload.MessageID)
	req.Equal("hello", payload.Text)
	req.True(message.SentAt.Equal(payload.SentAt))
}

func Test_Messages_Sent_At_The_Same_Instant_Are_Ordered_By_Id(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), testLogger)
	channelID := domain.NewChannelID("p1", "org-1")

	var stored []domain.Message
	for i := 0; i < 8; i++ {
		message := newMessage(channelID, "alice", fmt.Sprintf("message %d", i), fixedNow())
		req.NoError(repository.StoreMessage(message, postedEvent(message)))
		stored = append(stored, message)
	}
	domain.SortMessages(stored)

	messages, err := repository.GetLatestMessages(channelID, 0)
	req.NoError(err)
	req.Len(messages, len(stored))
	for i := range stored {
		req.Equal(stored[i].ID, messages[i].ID)
	}
}
