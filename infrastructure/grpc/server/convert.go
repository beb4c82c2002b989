package server

import (
	"collab-hub/auth"
	"collab-hub/domain"
	pb "collab-hub/infrastructure/grpc/api"
	"context"

	"github.com/samber/lo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// caller returns the authenticated user injected by the auth interceptors.
func caller(ctx context.Context) (domain.User, error) {
	user, ok := auth.UserFromContext(ctx)
	if !ok {
		return domain.User{}, status.Error(codes.Unauthenticated, "caller is not authenticated")
	}
	return user, nil
}

func toChannelResponse(c domain.Channel) *pb.Channel {
	res := &pb.Channel{
		ID:          string(c.ID),
		ProjectID:   c.ProjectID,
		ProjectName: c.ProjectName,
		Members:     c.Members,
		CreatedAt:   c.CreatedAt,
	}
	if c.LastMessage != nil {
		res.LastMessage = &pb.Preview{Text: c.LastMessage.Text, At: c.LastMessage.At}
	}
	return res
}

func toMessageResponse(m domain.Message) pb.Message {
	return pb.Message{
		ID:           m.ID.String(),
		ChannelID:    string(m.ChannelID),
		SenderID:     m.Sender.ID,
		SenderName:   m.Sender.Name,
		SenderAvatar: m.Sender.Avatar,
		SenderRole:   string(m.Sender.Role),
		Text:         m.Text,
		SentAt:       m.SentAt,
	}
}

func toMessagesResponse(messages []domain.Message) *pb.MessagesResponse {
	return &pb.MessagesResponse{
		Messages: lo.Map(messages, func(m domain.Message, _ int) pb.Message { return toMessageResponse(m) }),
	}
}

func toNotificationResponse(n domain.Notification) pb.Notification {
	return pb.Notification{
		ID:        n.ID.String(),
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
		ExpiresAt: n.ExpiresAt,
		Correlation: pb.Correlation{
			TicketID:   n.Correlation.TicketID,
			ProposalID: n.Correlation.ProposalID,
			InvoiceID:  n.Correlation.InvoiceID,
			ReportID:   n.Correlation.ReportID,
			ChatID:     string(n.Correlation.ChatID),
		},
		ProjectID:   n.ProjectID,
		ProjectName: n.ProjectName,
	}
}

func toNotificationsResponse(notifications []domain.Notification) *pb.NotificationsResponse {
	return &pb.NotificationsResponse{
		Notifications: lo.Map(notifications, func(n domain.Notification, _ int) pb.Notification {
			return toNotificationResponse(n)
		}),
	}
}

func toTicketResponse(t domain.Ticket) *pb.Ticket {
	return &pb.Ticket{
		ID:         t.ID,
		ProjectID:  t.ProjectID,
		Title:      t.Title,
		AssigneeID: t.AssigneeID,
		UpdatedAt:  t.UpdatedAt,
	}
}

func toDocumentResponse(d domain.Document) *pb.Document {
	return &pb.Document{
		ID:        d.ID,
		Kind:      string(d.Kind),
		ProjectID: d.ProjectID,
		ClientID:  d.ClientID,
		Title:     d.Title,
		Status:    string(d.Status),
		Feedback: lo.Map(d.Feedback, func(f domain.FeedbackComment, _ int) pb.Feedback {
			return pb.Feedback{
				AuthorID:     f.AuthorID,
				AuthorName:   f.AuthorName,
				AuthorAvatar: f.AuthorAvatar,
				Message:      f.Message,
				At:           f.At,
			}
		}),
		UpdatedAt: d.UpdatedAt,
	}
}

func toReportResponse(r domain.Report) *pb.Report {
	return &pb.Report{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		AuthorID:    r.AuthorID,
		Title:       r.Title,
		Body:        r.Body,
		SubmittedAt: r.SubmittedAt,
	}
}
