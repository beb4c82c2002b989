package api

import "time"

type Preview struct {
	Text string    `cbor:"text"`
	At   time.Time `cbor:"at"`
}

type Channel struct {
	ID          string    `cbor:"id"`
	ProjectID   string    `cbor:"project_id"`
	ProjectName string    `cbor:"project_name"`
	Members     []string  `cbor:"members"`
	CreatedAt   time.Time `cbor:"created_at"`
	LastMessage *Preview  `cbor:"last_message,omitempty"`
}

type Message struct {
	ID           string    `cbor:"id"`
	ChannelID    string    `cbor:"channel_id"`
	SenderID     string    `cbor:"sender_id"`
	SenderName   string    `cbor:"sender_name"`
	SenderAvatar string    `cbor:"sender_avatar,omitempty"`
	SenderRole   string    `cbor:"sender_role"`
	Text         string    `cbor:"text"`
	SentAt       time.Time `cbor:"sent_at"`
}

type Correlation struct {
	TicketID   string `cbor:"ticket_id,omitempty"`
	ProposalID string `cbor:"proposal_id,omitempty"`
	InvoiceID  string `cbor:"invoice_id,omitempty"`
	ReportID   string `cbor:"report_id,omitempty"`
	ChatID     string `cbor:"chat_id,omitempty"`
}

type Notification struct {
	ID          string      `cbor:"id"`
	Message     string      `cbor:"message"`
	Read        bool        `cbor:"read"`
	CreatedAt   time.Time   `cbor:"created_at"`
	ExpiresAt   time.Time   `cbor:"expires_at"`
	Correlation Correlation `cbor:"correlation"`
	ProjectID   string      `cbor:"project_id,omitempty"`
	ProjectName string      `cbor:"project_name"`
}

type Ticket struct {
	ID         string    `cbor:"id"`
	ProjectID  string    `cbor:"project_id"`
	Title      string    `cbor:"title"`
	AssigneeID string    `cbor:"assignee_id"`
	UpdatedAt  time.Time `cbor:"updated_at"`
}

type Feedback struct {
	AuthorID     string    `cbor:"author_id"`
	AuthorName   string    `cbor:"author_name"`
	AuthorAvatar string    `cbor:"author_avatar,omitempty"`
	Message      string    `cbor:"message"`
	At           time.Time `cbor:"at"`
}

type Document struct {
	ID        string     `cbor:"id"`
	Kind      string     `cbor:"kind"`
	ProjectID string     `cbor:"project_id"`
	ClientID  string     `cbor:"client_id"`
	Title     string     `cbor:"title"`
	Status    string     `cbor:"status"`
	Feedback  []Feedback `cbor:"feedback,omitempty"`
	UpdatedAt time.Time  `cbor:"updated_at"`
}

type Report struct {
	ID          string    `cbor:"id"`
	ProjectID   string    `cbor:"project_id"`
	AuthorID    string    `cbor:"author_id"`
	Title       string    `cbor:"title"`
	Body        string    `cbor:"body"`
	SubmittedAt time.Time `cbor:"submitted_at"`
}

// Chat

type GetOrCreateChannelRequest struct {
	ProjectID string `cbor:"project_id"`
}

type GetOrCreateChannelResponse struct {
	ChannelID string `cbor:"channel_id"`
}

type GetChannelRequest struct {
	ChannelID string `cbor:"channel_id"`
}

type PostMessageRequest struct {
	ChannelID string `cbor:"channel_id"`
	Text      string `cbor:"text"`
}

type GetMessagesRequest struct {
	ChannelID string `cbor:"channel_id"`
	Limit     int    `cbor:"limit,omitempty"`
}

type SearchMessagesRequest struct {
	ChannelID string `cbor:"channel_id"`
	Query     string `cbor:"query"`
	Limit     int    `cbor:"limit,omitempty"`
}

type SubscribeMessagesRequest struct {
	ChannelID string `cbor:"channel_id"`
}

// MessagesResponse is a window of messages, oldest first.
type MessagesResponse struct {
	Messages []Message `cbor:"messages"`
}

// Notifications

type ListNotificationsRequest struct {
	Limit int `cbor:"limit,omitempty"`
}

type MarkReadRequest struct {
	NotificationID string `cbor:"notification_id"`
}

type MarkAllReadRequest struct{}

type MarkAllReadResponse struct {
	Marked int `cbor:"marked"`
}

type DeleteExpiredRequest struct{}

type DeleteExpiredResponse struct {
	Deleted int `cbor:"deleted"`
}

type SubscribeNotificationsRequest struct{}

// NotificationsResponse is a feed window, newest first.
type NotificationsResponse struct {
	Notifications []Notification `cbor:"notifications"`
}

// Workflow

type AssignTicketRequest struct {
	TicketID   string `cbor:"ticket_id"`
	AssigneeID string `cbor:"assignee_id"`
}

type ChangeDocumentStatusRequest struct {
	Kind       string `cbor:"kind"`
	DocumentID string `cbor:"document_id"`
	Status     string `cbor:"status"`
}

type SubmitFeedbackRequest struct {
	Kind       string `cbor:"kind"`
	DocumentID string `cbor:"document_id"`
	Message    string `cbor:"message"`
}

type SubmitReportRequest struct {
	ProjectID string `cbor:"project_id"`
	Title     string `cbor:"title"`
	Body      string `cbor:"body"`
}
