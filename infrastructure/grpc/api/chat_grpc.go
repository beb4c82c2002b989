package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ChatService_GetOrCreateChannel_FullMethodName = "/collabhub.v1.ChatService/GetOrCreateChannel"
	ChatService_GetChannel_FullMethodName         = "/collabhub.v1.ChatService/GetChannel"
	ChatService_PostMessage_FullMethodName        = "/collabhub.v1.ChatService/PostMessage"
	ChatService_GetMessages_FullMethodName        = "/collabhub.v1.ChatService/GetMessages"
	ChatService_SearchMessages_FullMethodName     = "/collabhub.v1.ChatService/SearchMessages"
	ChatService_SubscribeMessages_FullMethodName  = "/collabhub.v1.ChatService/SubscribeMessages"
)

// ChatServiceClient is the client API for ChatService.
type ChatServiceClient interface {
	GetOrCreateChannel(ctx context.Context, in *GetOrCreateChannelRequest, opts ...grpc.CallOption) (*GetOrCreateChannelResponse, error)
	GetChannel(ctx context.Context, in *GetChannelRequest, opts ...grpc.CallOption) (*Channel, error)
	PostMessage(ctx context.Context, in *PostMessageRequest, opts ...grpc.CallOption) (*Message, error)
	GetMessages(ctx context.Context, in *GetMessagesRequest, opts ...grpc.CallOption) (*MessagesResponse, error)
	SearchMessages(ctx context.Context, in *SearchMessagesRequest, opts ...grpc.CallOption) (*MessagesResponse, error)
	SubscribeMessages(ctx context.Context, in *SubscribeMessagesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[MessagesResponse], error)
}

type chatServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewChatServiceClient(cc grpc.ClientConnInterface) ChatServiceClient {
	return &chatServiceClient{cc}
}

func (c *chatServiceClient) GetOrCreateChannel(ctx context.Context, in *GetOrCreateChannelRequest, opts ...grpc.CallOption) (*GetOrCreateChannelResponse, error) {
	out := new(GetOrCreateChannelResponse)
	if err := c.cc.Invoke(ctx, ChatService_GetOrCreateChannel_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) GetChannel(ctx context.Context, in *GetChannelRequest, opts ...grpc.CallOption) (*Channel, error) {
	out := new(Channel)
	if err := c.cc.Invoke(ctx, ChatService_GetChannel_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) PostMessage(ctx context.Context, in *PostMessageRequest, opts ...grpc.CallOption) (*Message, error) {
	out := new(Message)
	if err := c.cc.Invoke(ctx, ChatService_PostMessage_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) GetMessages(ctx context.Context, in *GetMessagesRequest, opts ...grpc.CallOption) (*MessagesResponse, error) {
	out := new(MessagesResponse)
	if err := c.cc.Invoke(ctx, ChatService_GetMessages_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) SearchMessages(ctx context.Context, in *SearchMessagesRequest, opts ...grpc.CallOption) (*MessagesResponse, error) {
	out := new(MessagesResponse)
	if err := c.cc.Invoke(ctx, ChatService_SearchMessages_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) SubscribeMessages(ctx context.Context, in *SubscribeMessagesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[MessagesResponse], error) {
	stream, err := c.cc.NewStream(ctx, &ChatService_ServiceDesc.Streams[0], ChatService_SubscribeMessages_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SubscribeMessagesRequest, MessagesResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// ChatServiceServer is the server API for ChatService. SubscribeMessages sends the latest window on subscribe and after every change.
type ChatServiceServer interface {
	GetOrCreateChannel(context.Context, *GetOrCreateChannelRequest) (*GetOrCreateChannelResponse, error)
	GetChannel(context.Context, *GetChannelRequest) (*Channel, error)
	PostMessage(context.Context, *PostMessageRequest) (*Message, error)
	GetMessages(context.Context, *GetMessagesRequest) (*MessagesResponse, error)
	SearchMessages(context.Context, *SearchMessagesRequest) (*MessagesResponse, error)
	SubscribeMessages(*SubscribeMessagesRequest, grpc.ServerStreamingServer[MessagesResponse]) error
}

type ChatService_SubscribeMessagesServer = grpc.ServerStreamingServer[MessagesResponse]

type ChatService_SubscribeMessagesClient = grpc.ServerStreamingClient[MessagesResponse]

// UnimplementedChatServiceServer answers codes.Unimplemented to every call.
type UnimplementedChatServiceServer struct{}

func (UnimplementedChatServiceServer) GetOrCreateChannel(context.Context, *GetOrCreateChannelRequest) (*GetOrCreateChannelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOrCreateChannel not implemented")
}

func (UnimplementedChatServiceServer) GetChannel(context.Context, *GetChannelRequest) (*Channel, error) {
	return nil, status.Error(codes.Unimplemented, "method GetChannel not implemented")
}

func (UnimplementedChatServiceServer) PostMessage(context.Context, *PostMessageRequest) (*Message, error) {
	return nil, status.Error(codes.Unimplemented, "method PostMessage not implemented")
}

func (UnimplementedChatServiceServer) GetMessages(context.Context, *GetMessagesRequest) (*MessagesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMessages not implemented")
}

func (UnimplementedChatServiceServer) SearchMessages(context.Context, *SearchMessagesRequest) (*MessagesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchMessages not implemented")
}

func (UnimplementedChatServiceServer) SubscribeMessages(*SubscribeMessagesRequest, grpc.ServerStreamingServer[MessagesResponse]) error {
	return status.Error(codes.Unimplemented, "method SubscribeMessages not implemented")
}

func RegisterChatServiceServer(s grpc.ServiceRegistrar, srv ChatServiceServer) {
	s.RegisterService(&ChatService_ServiceDesc, srv)
}

func _ChatService_GetOrCreateChannel_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetOrCreateChannelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).GetOrCreateChannel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChatService_GetOrCreateChannel_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).GetOrCreateChannel(ctx, req.(*GetOrCreateChannelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_GetChannel_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetChannelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).GetChannel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChatService_GetChannel_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).GetChannel(ctx, req.(*GetChannelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_PostMessage_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PostMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).PostMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChatService_PostMessage_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).PostMessage(ctx, req.(*PostMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_GetMessages_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetMessagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).GetMessages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChatService_GetMessages_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).GetMessages(ctx, req.(*GetMessagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_SearchMessages_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchMessagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).SearchMessages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChatService_SearchMessages_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServiceServer).SearchMessages(ctx, req.(*SearchMessagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_SubscribeMessages_Handler(srv any, stream grpc.ServerStream) error {
	in := new(SubscribeMessagesRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(ChatServiceServer).SubscribeMessages(in, &grpc.GenericServerStream[SubscribeMessagesRequest, MessagesResponse]{ServerStream: stream})
}

var ChatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "collabhub.v1.ChatService",
	HandlerType: (*ChatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetOrCreateChannel",
			Handler:    _ChatService_GetOrCreateChannel_Handler,
		},
		{
			MethodName: "GetChannel",
			Handler:    _ChatService_GetChannel_Handler,
		},
		{
			MethodName: "PostMessage",
			Handler:    _ChatService_PostMessage_Handler,
		},
		{
			MethodName: "GetMessages",
			Handler:    _ChatService_GetMessages_Handler,
		},
		{
			MethodName: "SearchMessages",
			Handler:    _ChatService_SearchMessages_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeMessages",
			Handler:       _ChatService_SubscribeMessages_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "collabhub/v1",
}
