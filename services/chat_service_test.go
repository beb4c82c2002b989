package services_test

import (
	"collab-hub/clock"
	"collab-hub/contract"
	"collab-hub/domain"
	"collab-hub/domain/event"
	"collab-hub/errors"
	"collab-hub/mocks"
	"collab-hub/runtime"
	"collab-hub/services"
	stderrors "errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type chatMocks struct {
	channels  *mocks.MockIChannelRepository
	messages  *mocks.MockIMessageRepository
	index     *mocks.MockIMessageIndex
	directory *mocks.MockIDirectoryRepository
	feed      *mocks.MockChangeFeed
	sink      *mocks.MockErrorSink
	relay     *mocks.MockKicker
	censor    *mocks.MockCensor
	service   *services.ChatService
}

func newChat(t *testing.T) chatMocks {
	ctrl := gomock.NewController(t)
	m := chatMocks{
		channels:  mocks.NewMockIChannelRepository(ctrl),
		messages:  mocks.NewMockIMessageRepository(ctrl),
		index:     mocks.NewMockIMessageIndex(ctrl),
		directory: mocks.NewMockIDirectoryRepository(ctrl),
		feed:      mocks.NewMockChangeFeed(ctrl),
		sink:      mocks.NewMockErrorSink(ctrl),
		relay:     mocks.NewMockKicker(ctrl),
		censor:    mocks.NewMockCensor(ctrl),
	}
	m.service = services.NewChatService(m.channels, m.messages, m.index, m.directory, m.feed, m.sink,
		m.relay, m.censor, runtime.NewRegistry(m.sink, testLogger), clock.NewFake(fixedNow()),
		services.ChatConfig{MaxContentLength: 20, MessageWindow: 50}, testLogger)
	return m
}

var projectChannel = domain.Channel{
	ID:             domain.NewChannelID("P", "org-1"),
	ProjectID:      "P",
	OrganizationID: "org-1",
	ProjectName:    "Website",
	Members:        []string{"c1", "a1"},
}

func TestChat_PostMessage_Censors_And_Records_Event(t *testing.T) {
	req := require.New(t)
	m := newChat(t)
	m.channels.EXPECT().GetChannel(projectChannel.ID).Return(projectChannel, nil)
	m.censor.EXPECT().Censor("what the heck").Return("what the ****")
	m.messages.EXPECT().StoreMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(message domain.Message, evt event.Event) error {
			req.Equal("what the ****", message.Text)
			req.Equal(event.MessagePostedType, evt.Type)
			req.Equal("org-1", evt.OrganizationID)
			payload, ok := evt.Payload.(event.MessagePosted)
			req.True(ok)
			req.Equal(message.ID, payload.MessageID)
			return nil
		})
	m.channels.EXPECT().UpdatePreview(projectChannel.ID, domain.Preview{Text: "what the ****", At: fixedNow()}).Return(nil)
	m.index.EXPECT().Index(gomock.Any()).Return(nil)
	m.feed.EXPECT().Publish(gomock.Any(), contract.ChannelTopic(projectChannel.ID)).Return(nil)
	m.relay.EXPECT().Kick()

	message, err := m.service.PostMessage(t.Context(), domain.PostMessageCommand{
		ChannelID: projectChannel.ID, Sender: domain.Sender{ID: "c1", Name: "Carl"}, Text: "what the heck",
	})

	req.NoError(err)
	req.Equal("what the ****", message.Text)
	req.Equal(fixedNow(), message.SentAt)
}

func TestChat_PostMessage_Side_Effects_Are_Best_Effort(t *testing.T) {
	req := require.New(t)
	m := newChat(t)
	previewErr := stderrors.New("preview")
	indexErr := stderrors.New("index")
	publishErr := stderrors.New("redis down")
	m.channels.EXPECT().GetChannel(projectChannel.ID).Return(projectChannel, nil)
	m.censor.EXPECT().Censor("hello").Return("hello")
	m.messages.EXPECT().StoreMessage(gomock.Any(), gomock.Any()).Return(nil)
	m.channels.EXPECT().UpdatePreview(gomock.Any(), gomock.Any()).Return(previewErr)
	m.index.EXPECT().Index(gomock.Any()).Return(indexErr)
	m.feed.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(publishErr)
	m.sink.EXPECT().Report(gomock.Any(), "chat.preview", previewErr, gomock.Any(), gomock.Any())
	m.sink.EXPECT().Report(gomock.Any(), "chat.index", indexErr, gomock.Any(), gomock.Any())
	m.sink.EXPECT().Report(gomock.Any(), "chat.publish", publishErr, gomock.Any(), gomock.Any())
	m.relay.EXPECT().Kick()

	_, err := m.service.PostMessage(t.Context(), domain.PostMessageCommand{
		ChannelID: projectChannel.ID, Sender: domain.Sender{ID: "c1"}, Text: "hello",
	})

	req.NoError(err)
}

func TestChat_PostMessage_Store_Failure_Fails_Post(t *testing.T) {
	req := require.New(t)
	m := newChat(t)
	boom := stderrors.New("disk full")
	m.channels.EXPECT().GetChannel(projectChannel.ID).Return(projectChannel, nil)
	m.censor.EXPECT().Censor(gomock.Any()).Return("hello")
	m.messages.EXPECT().StoreMessage(gomock.Any(), gomock.Any()).Return(boom)

	_, err := m.service.PostMessage(t.Context(), domain.PostMessageCommand{
		ChannelID: projectChannel.ID, Sender: domain.Sender{ID: "c1"}, Text: "hello",
	})

	req.ErrorIs(err, boom)
}

func TestChat_PostMessage_Rejects_Invalid_Input(t *testing.T) {
	m := newChat(t)
	cases := []struct {
		name string
		cmd  domain.PostMessageCommand
	}{
		{"no channel", domain.PostMessageCommand{Sender: domain.Sender{ID: "c1"}, Text: "hi"}},
		{"no sender", domain.PostMessageCommand{ChannelID: projectChannel.ID, Text: "hi"}},
		{"blank text", domain.PostMessageCommand{ChannelID: projectChannel.ID, Sender: domain.Sender{ID: "c1"}, Text: "   "}},
		{"too long", domain.PostMessageCommand{ChannelID: projectChannel.ID, Sender: domain.Sender{ID: "c1"}, Text: strings.Repeat("é", 21)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.service.PostMessage(t.Context(), tc.cmd)
			require.ErrorIs(t, err, errors.ErrInvalidRequest)
		})
	}
}

func TestChat_PostMessage_Unknown_Channel(t *testing.T) {
	m := newChat(t)
	m.channels.EXPECT().GetChannel(gomock.Any()).Return(domain.Channel{}, errors.ErrChannelNotFound)

	_, err := m.service.PostMessage(t.Context(), domain.PostMessageCommand{
		ChannelID: "nope", Sender: domain.Sender{ID: "c1"}, Text: "hello",
	})

	require.ErrorIs(t, err, errors.ErrChannelNotFound)
}

func TestChat_GetOrCreateChannel_Existing(t *testing.T) {
	req := require.New(t)
	m := newChat(t)
	m.channels.EXPECT().GetChannel(projectChannel.ID).Return(projectChannel, nil)

	id, err := m.service.GetOrCreateChannel(t.Context(), "P", "org-1")

	req.NoError(err)
	req.Equal(projectChannel.ID, id)
}

func TestChat_GetOrCreateChannel_Existing_Channel_Of_Other_Project(t *testing.T) {
	m := newChat(t)
	m.channels.EXPECT().GetChannel(domain.NewChannelID("P", "org-2")).Return(projectChannel, nil)

	_, err := m.service.GetOrCreateChannel(t.Context(), "P", "org-2")

	require.ErrorIs(t, err, errors.ErrProjectNotFound)
}

func TestChat_GetOrCreateChannel_Project_Of_Other_Tenant(t *testing.T) {
	m := newChat(t)
	m.channels.EXPECT().GetChannel(gomock.Any()).Return(domain.Channel{}, errors.ErrChannelNotFound)
	m.directory.EXPECT().GetProject("P").Return(domain.Project{ID: "P", OrganizationID: "org-2"}, nil)

	_, err := m.service.GetOrCreateChannel(t.Context(), "P", "org-1")

	require.ErrorIs(t, err, errors.ErrProjectNotFound)
}

func TestChat_GetOrCreateChannel_Freezes_Members(t *testing.T) {
	req := require.New(t)
	m := newChat(t)
	m.channels.EXPECT().GetChannel(gomock.Any()).Return(domain.Channel{}, errors.ErrChannelNotFound)
	m.directory.EXPECT().GetProject("P").Return(domain.Project{ID: "P", OrganizationID: "org-1", Name: "Website", ClientIDs: []string{"c1"}}, nil)
	m.directory.EXPECT().ListByOrganization("org-1").Return(orgUsers, nil)
	m.channels.EXPECT().CreateIfAbsent(gomock.Any()).DoAndReturn(func(channel domain.Channel) (domain.Channel, bool, error) {
		req.ElementsMatch([]string{"c1", "a1", "a2"}, channel.Members)
		req.Equal("Website", channel.ProjectName)
		req.Equal(fixedNow(), channel.CreatedAt)
		return channel, true, nil
	})

	id, err := m.service.GetOrCreateChannel(t.Context(), "P", "org-1")

	req.NoError(err)
	req.Equal(domain.NewChannelID("P", "org-1"), id)
}

func TestChat_SearchMessages_Requires_Query(t *testing.T) {
	m := newChat(t)
	_, err := m.service.SearchMessages(t.Context(), projectChannel.ID, " ", 10)
	require.ErrorIs(t, err, errors.ErrInvalidRequest)
}

func TestChat_GetMessages_Caps_Window(t *testing.T) {
	m := newChat(t)
	m.messages.EXPECT().GetLatestMessages(projectChannel.ID, 50).Return(nil, nil)

	_, err := m.service.GetMessages(t.Context(), projectChannel.ID, 5000)

	require.NoError(t, err)
}

func TestChat_SubscribeToMessages_Pushes_Initial_Window(t *testing.T) {
	req := require.New(t)
	m := newChat(t)
	window := []domain.Message{{Text: "hi", ChannelID: projectChannel.ID}}
	m.messages.EXPECT().GetLatestMessages(projectChannel.ID, 50).Return(window, nil).AnyTimes()

	var mu sync.Mutex
	var pushed [][]domain.Message
	unsubscribe := m.service.SubscribeToMessages(t.Context(), projectChannel.ID, func(messages []domain.Message) {
		mu.Lock()
		defer mu.Unlock()
		pushed = append(pushed, messages)
	})
	defer unsubscribe()

	req.Eventually(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(pushed) == 1
	}, time.Second, 10*time.Millisecond)
}
