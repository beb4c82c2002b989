package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	NotificationService_ListNotifications_FullMethodName      = "/collabhub.v1.NotificationService/ListNotifications"
	NotificationService_MarkRead_FullMethodName               = "/collabhub.v1.NotificationService/MarkRead"
	NotificationService_MarkAllRead_FullMethodName            = "/collabhub.v1.NotificationService/MarkAllRead"
	NotificationService_DeleteExpired_FullMethodName          = "/collabhub.v1.NotificationService/DeleteExpired"
	NotificationService_SubscribeNotifications_FullMethodName = "/collabhub.v1.NotificationService/SubscribeNotifications"
)

// NotificationServiceClient is the client API for NotificationService.
type NotificationServiceClient interface {
	ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*NotificationsResponse, error)
	MarkRead(ctx context.Context, in *MarkReadRequest, opts ...grpc.CallOption) (*Notification, error)
	MarkAllRead(ctx context.Context, in *MarkAllReadRequest, opts ...grpc.CallOption) (*MarkAllReadResponse, error)
	DeleteExpired(ctx context.Context, in *DeleteExpiredRequest, opts ...grpc.CallOption) (*DeleteExpiredResponse, error)
	SubscribeNotifications(ctx context.Context, in *SubscribeNotificationsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[NotificationsResponse], error)
}

type notificationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewNotificationServiceClient(cc grpc.ClientConnInterface) NotificationServiceClient {
	return &notificationServiceClient{cc}
}

func (c *notificationServiceClient) ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*NotificationsResponse, error) {
	out := new(NotificationsResponse)
	if err := c.cc.Invoke(ctx, NotificationService_ListNotifications_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *notificationServiceClient) MarkRead(ctx context.Context, in *MarkReadRequest, opts ...grpc.CallOption) (*Notification, error) {
	out := new(Notification)
	if err := c.cc.Invoke(ctx, NotificationService_MarkRead_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *notificationServiceClient) MarkAllRead(ctx context.Context, in *MarkAllReadRequest, opts ...grpc.CallOption) (*MarkAllReadResponse, error) {
	out := new(MarkAllReadResponse)
	if err := c.cc.Invoke(ctx, NotificationService_MarkAllRead_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *notificationServiceClient) DeleteExpired(ctx context.Context, in *DeleteExpiredRequest, opts ...grpc.CallOption) (*DeleteExpiredResponse, error) {
	out := new(DeleteExpiredResponse)
	if err := c.cc.Invoke(ctx, NotificationService_DeleteExpired_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *notificationServiceClient) SubscribeNotifications(ctx context.Context, in *SubscribeNotificationsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[NotificationsResponse], error) {
	stream, err := c.cc.NewStream(ctx, &NotificationService_ServiceDesc.Streams[0], NotificationService_SubscribeNotifications_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SubscribeNotificationsRequest, NotificationsResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// NotificationServiceServer is the server API for NotificationService. Every call acts on the feed of the caller; DeleteExpired is admin only.
type NotificationServiceServer interface {
	ListNotifications(context.Context, *ListNotificationsRequest) (*NotificationsResponse, error)
	MarkRead(context.Context, *MarkReadRequest) (*Notification, error)
	MarkAllRead(context.Context, *MarkAllReadRequest) (*MarkAllReadResponse, error)
	DeleteExpired(context.Context, *DeleteExpiredRequest) (*DeleteExpiredResponse, error)
	SubscribeNotifications(*SubscribeNotificationsRequest, grpc.ServerStreamingServer[NotificationsResponse]) error
}

type NotificationService_SubscribeNotificationsServer = grpc.ServerStreamingServer[NotificationsResponse]

type NotificationService_SubscribeNotificationsClient = grpc.ServerStreamingClient[NotificationsResponse]

// UnimplementedNotificationServiceServer answers codes.Unimplemented to every call.
type UnimplementedNotificationServiceServer struct{}

func (UnimplementedNotificationServiceServer) ListNotifications(context.Context, *ListNotificationsRequest) (*NotificationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListNotifications not implemented")
}

func (UnimplementedNotificationServiceServer) MarkRead(context.Context, *MarkReadRequest) (*Notification, error) {
	return nil, status.Error(codes.Unimplemented, "method MarkRead not implemented")
}

func (UnimplementedNotificationServiceServer) MarkAllRead(context.Context, *MarkAllReadRequest) (*MarkAllReadResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MarkAllRead not implemented")
}

func (UnimplementedNotificationServiceServer) DeleteExpired(context.Context, *DeleteExpiredRequest) (*DeleteExpiredResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteExpired not implemented")
}

func (UnimplementedNotificationServiceServer) SubscribeNotifications(*SubscribeNotificationsRequest, grpc.ServerStreamingServer[NotificationsResponse]) error {
	return status.Error(codes.Unimplemented, "method SubscribeNotifications not implemented")
}

func RegisterNotificationServiceServer(s grpc.ServiceRegistrar, srv NotificationServiceServer) {
	s.RegisterService(&NotificationService_ServiceDesc, srv)
}

func _NotificationService_ListNotifications_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListNotificationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NotificationServiceServer).ListNotifications(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NotificationService_ListNotifications_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(NotificationServiceServer).ListNotifications(ctx, req.(*ListNotificationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NotificationService_MarkRead_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(MarkReadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NotificationServiceServer).MarkRead(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NotificationService_MarkRead_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(NotificationServiceServer).MarkRead(ctx, req.(*MarkReadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NotificationService_MarkAllRead_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(MarkAllReadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NotificationServiceServer).MarkAllRead(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NotificationService_MarkAllRead_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(NotificationServiceServer).MarkAllRead(ctx, req.(*MarkAllReadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NotificationService_DeleteExpired_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteExpiredRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NotificationServiceServer).DeleteExpired(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NotificationService_DeleteExpired_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(NotificationServiceServer).DeleteExpired(ctx, req.(*DeleteExpiredRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NotificationService_SubscribeNotifications_Handler(srv any, stream grpc.ServerStream) error {
	in := new(SubscribeNotificationsRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(NotificationServiceServer).SubscribeNotifications(in, &grpc.GenericServerStream[SubscribeNotificationsRequest, NotificationsResponse]{ServerStream: stream})
}

var NotificationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "collabhub.v1.NotificationService",
	HandlerType: (*NotificationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListNotifications",
			Handler:    _NotificationService_ListNotifications_Handler,
		},
		{
			MethodName: "MarkRead",
			Handler:    _NotificationService_MarkRead_Handler,
		},
		{
			MethodName: "MarkAllRead",
			Handler:    _NotificationService_MarkAllRead_Handler,
		},
		{
			MethodName: "DeleteExpired",
			Handler:    _NotificationService_DeleteExpired_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeNotifications",
			Handler:       _NotificationService_SubscribeNotifications_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "collabhub/v1",
}
