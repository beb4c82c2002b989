package storage

import (
	"collab-hub/domain"
	"context"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/stretchr/testify/require"
)

func Test_Search_Messages_In_Channel(t *testing.T) {
	req := require.New(t)
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	req.NoError(err)
	defer writer.Close()
	index := NewMessageIndex(writer, testLogger)

	channelID := domain.NewChannelID("p1", "org-1")
	otherID := domain.NewChannelID("p2", "org-1")
	first := newMessage(channelID, "alice", "the invoice is ready", fixedNow())
	second := newMessage(channelID, "bob", "thanks for the invoice", fixedNow().Add(time.Minute))
	unrelated := newMessage(channelID, "bob", "see you tomorrow", fixedNow().Add(2*time.Minute))
	elsewhere := newMessage(otherID, "carol", "another invoice", fixedNow())
	for _, m := range []domain.Message{first, second, unrelated, elsewhere} {
		req.NoError(index.Index(m))
	}

	found, err := index.Search(context.Background(), channelID, "invoice", 10)
	req.NoError(err)
	req.Len(found, 2)
	req.Equal(second.ID, found[0].ID)
	req.Equal(first.ID, found[1].ID)
	req.Equal("bob", found[0].Sender.ID)
	req.True(second.SentAt.Equal(found[0].SentAt))
}
