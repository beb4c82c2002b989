// Package domain contains core concepts of the collaboration hub.
// This file defines chat messages. Messages are immutable once stored.
package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Sender is a snapshot of the author taken when the message is sent.
type Sender struct {
	ID     string `validate:"required"`
	Name   string
	Avatar string
	Role   Role
}

type Message struct {
	ID        uuid.UUID // unique identifier
	ChannelID ChannelID
	Sender    Sender
	Text      string
	SentAt    time.Time
}

// Before orders messages by send time, then by id for equal timestamps.
func (m Message) Before(other Message) bool {
	if !m.SentAt.Equal(other.SentAt) {
		return m.SentAt.Before(other.SentAt)
	}
	return m.ID.String() < other.ID.String()
}

func SortMessages(messages []Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Before(messages[j])
	})
}
