package server

import (
	"collab-hub/domain"
	"collab-hub/errors"
	pb "collab-hub/infrastructure/grpc/api"
	"collab-hub/services"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type NotificationServer struct {
	pb.UnimplementedNotificationServiceServer
	notificationService services.INotificationService
	log                 *slog.Logger
}

func NewNotificationServer(notificationService services.INotificationService, log *slog.Logger) *NotificationServer {
	return &NotificationServer{notificationService: notificationService, log: log}
}

func (s *NotificationServer) ListNotifications(ctx context.Context, req *pb.ListNotificationsRequest) (*pb.NotificationsResponse, error) {
	user, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notificationService.ListNotifications(ctx, user.ID, req.Limit)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toNotificationsResponse(notifications), nil
}

// MarkRead only touches notifications of the caller; others are reported
// as missing.
func (s *NotificationServer) MarkRead(ctx context.Context, req *pb.MarkReadRequest) (*pb.Notification, error) {
	user, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(req.NotificationID)
	if err != nil {
		return nil, errors.MapToGRPCError(fmt.Errorf("%w: notification id: %v", errors.ErrInvalidRequest, err))
	}
	current, err := s.notificationService.GetNotification(ctx, id)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	if current.RecipientID != user.ID {
		return nil, errors.MapToGRPCError(errors.ErrNotificationNotFound)
	}
	notification, err := s.notificationService.MarkNotificationRead(ctx, id)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	res := toNotificationResponse(notification)
	return &res, nil
}

func (s *NotificationServer) MarkAllRead(ctx context.Context, _ *pb.MarkAllReadRequest) (*pb.MarkAllReadResponse, error) {
	user, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	marked, err := s.notificationService.MarkAllRead(ctx, user.ID)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.MarkAllReadResponse{Marked: marked}, nil
}

// DeleteExpired sweeps expired notifications of every tenant and is
// reserved to admins.
func (s *NotificationServer) DeleteExpired(ctx context.Context, _ *pb.DeleteExpiredRequest) (*pb.DeleteExpiredResponse, error) {
	user, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, errors.MapToGRPCError(errors.ErrPermissionDenied)
	}
	deleted, err := s.notificationService.DeleteExpiredNotifications(ctx)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	s.log.Info("Expired notifications swept", "by", user.ID, "deleted", deleted)
	return &pb.DeleteExpiredResponse{Deleted: deleted}, nil
}

func (s *NotificationServer) SubscribeNotifications(_ *pb.SubscribeNotificationsRequest, stream pb.NotificationService_SubscribeNotificationsServer) error {
	ctx := stream.Context()
	user, err := caller(ctx)
	if err != nil {
		return err
	}
	snapshots := make(chan []domain.Notification, 1)
	unsubscribe := s.notificationService.SubscribeToNotifications(ctx, user.ID, func(notifications []domain.Notification) {
		latest(snapshots, notifications)
	})
	defer unsubscribe()

	s.log.Debug("Notification subscriber connected", "user_id", user.ID)
	return pump(ctx, snapshots, func(notifications []domain.Notification) error {
		return stream.Send(toNotificationsResponse(notifications))
	})
}
