package server

import (
	"collab-hub/domain"
	"collab-hub/errors"
	pb "collab-hub/infrastructure/grpc/api"
	"collab-hub/services"
	"context"
	"log/slog"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	chatService services.IChatService
	log         *slog.Logger
}

func NewChatServer(chatService services.IChatService, log *slog.Logger) *ChatServer {
	return &ChatServer{chatService: chatService, log: log}
}

// GetOrCreateChannel resolves the channel of a project of the caller's tenant.
func (s *ChatServer) GetOrCreateChannel(ctx context.Context, req *pb.GetOrCreateChannelRequest) (*pb.GetOrCreateChannelResponse, error) {
	user, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := s.chatService.GetOrCreateChannel(ctx, req.ProjectID, user.OrganizationID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GetOrCreateChannelResponse{ChannelID: string(id)}, nil
}

func (s *ChatServer) GetChannel(ctx context.Context, req *pb.GetChannelRequest) (*pb.Channel, error) {
	channel, _, err := s.channel(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}
	return toChannelResponse(channel), nil
}

// PostMessage stores the message with the caller as sender. The sender
// gets the message back here and through its own subscription.
func (s *ChatServer) PostMessage(ctx context.Context, req *pb.PostMessageRequest) (*pb.Message, error) {
	channel, user, err := s.channel(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}
	message, err := s.chatService.PostMessage(ctx, domain.PostMessageCommand{
		ChannelID: channel.ID,
		Sender:    domain.Sender{ID: user.ID, Name: user.Name, Avatar: user.Avatar, Role: user.Role},
		Text:      req.Text,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	res := toMessageResponse(message)
	return &res, nil
}

func (s *ChatServer) GetMessages(ctx context.Context, req *pb.GetMessagesRequest) (*pb.MessagesResponse, error) {
	channel, _, err := s.channel(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}
	messages, err := s.chatService.GetMessages(ctx, channel.ID, req.Limit)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toMessagesResponse(messages), nil
}

func (s *ChatServer) SearchMessages(ctx context.Context, req *pb.SearchMessagesRequest) (*pb.MessagesResponse, error) {
	channel, _, err := s.channel(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}
	messages, err := s.chatService.SearchMessages(ctx, channel.ID, req.Query, req.Limit)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toMessagesResponse(messages), nil
}

// SubscribeMessages streams the message window of a channel until the
// client goes away. A slow client only ever misses intermediate windows.
func (s *ChatServer) SubscribeMessages(req *pb.SubscribeMessagesRequest, stream pb.ChatService_SubscribeMessagesServer) error {
	ctx := stream.Context()
	channel, user, err := s.channel(ctx, req.ChannelID)
	if err != nil {
		return err
	}
	snapshots := make(chan []domain.Message, 1)
	unsubscribe := s.chatService.SubscribeToMessages(ctx, channel.ID, func(messages []domain.Message) {
		latest(snapshots, messages)
	})
	defer unsubscribe()

	s.log.Debug("Message subscriber connected", "channel_id", channel.ID, "user_id", user.ID)
	return pump(ctx, snapshots, func(messages []domain.Message) error {
		return stream.Send(toMessagesResponse(messages))
	})
}

// channel loads a channel of the caller's tenant. Channels of other
// tenants are reported as missing.
func (s *ChatServer) channel(ctx context.Context, channelID string) (domain.Channel, domain.User, error) {
	user, err := caller(ctx)
	if err != nil {
		return domain.Channel{}, domain.User{}, err
	}
	channel, err := s.chatService.GetChannel(ctx, domain.ChannelID(channelID))
	if err != nil {
		return domain.Channel{}, domain.User{}, errors.MapToGRPCError(err)
	}
	if channel.OrganizationID != user.OrganizationID {
		return domain.Channel{}, domain.User{}, errors.MapToGRPCError(errors.ErrChannelNotFound)
	}
	return channel, user, nil
}
