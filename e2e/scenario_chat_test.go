package e2e

import (
	"collab-hub/infrastructure/grpc/client"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	pb "collab-hub/infrastructure/grpc/api"
)

type testChatFanoutSuite struct {
	BaseGrpcSuite
}

func TestChatFanoutSuite(t *testing.T) {
	suite.Run(t, &testChatFanoutSuite{})
}

func (s *testChatFanoutSuite) TestClientMessageReachesAdmins() {
	text := "e2e " + uuid.NewString()
	var channelID string

	// --- STEP 1: CHANNEL ---
	s.Run("Step 1: Resolve the project channel", func() {
		s.As("Get or create channel", s.Client(), func(ctx context.Context, hub *client.HubClient) {
			res, err := hub.Chat.GetOrCreateChannel(ctx, &pb.GetOrCreateChannelRequest{ProjectID: s.Config.ProjectID})
			s.Require().NoError(err)
			s.Require().NotEmpty(res.ChannelID)
			channelID = res.ChannelID
		})
	})

	// --- STEP 2: POST ---
	s.Run("Step 2: Client posts a message", func() {
		s.As("Post message", s.Client(), func(ctx context.Context, hub *client.HubClient) {
			msg, err := hub.Chat.PostMessage(ctx, &pb.PostMessageRequest{ChannelID: channelID, Text: text})
			s.Require().NoError(err)
			s.Require().Equal(s.Config.ClientID, msg.SenderID)
		})
	})

	// --- STEP 3: FAN-OUT ---
	// The relay delivers asynchronously; poll the admin feed.
	s.Run("Step 3: Admin receives a chat notification", func() {
		s.As("Poll admin notifications", s.Admin(), func(ctx context.Context, hub *client.HubClient) {
			s.Require().Eventually(func() bool {
				res, err := hub.Notifications.ListNotifications(ctx, &pb.ListNotificationsRequest{Limit: 50})
				if err != nil {
					return false
				}
				for _, n := range res.Notifications {
					if n.Correlation.ChatID == channelID && strings.HasPrefix(n.Message, "New message from") {
						return true
					}
				}
				return false
			}, 20*time.Second, 200*time.Millisecond)
		})
	})

	// --- STEP 4: SEARCH ---
	s.Run("Step 4: Message is searchable", func() {
		s.As("Search message", s.Admin(), func(ctx context.Context, hub *client.HubClient) {
			res, err := hub.Chat.SearchMessages(ctx, &pb.SearchMessagesRequest{ChannelID: channelID, Query: text})
			s.Require().NoError(err)
			s.Require().NotEmpty(res.Messages)
		})
	})
}

func (s *testChatFanoutSuite) TestSubscriptionStreamsWindow() {
	s.As("Subscribe to channel", s.Admin(), func(ctx context.Context, hub *client.HubClient) {
		channel, err := hub.Chat.GetOrCreateChannel(ctx, &pb.GetOrCreateChannelRequest{ProjectID: s.Config.ProjectID})
		s.Require().NoError(err)

		stream, err := hub.Chat.SubscribeMessages(ctx, &pb.SubscribeMessagesRequest{ChannelID: channel.ChannelID})
		s.Require().NoError(err)
		_, err = stream.Recv()
		s.Require().NoError(err, "the current window is pushed on subscribe")
	})
}
