// Package event defines the domain events recorded in the outbox.
// Each state change that must notify somebody writes exactly one event
// in the same store transaction as the change itself.
package event

import (
	"collab-hub/domain"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	MessagePostedType         Type = "MESSAGE_POSTED"
	TicketAssignedType        Type = "TICKET_ASSIGNED"
	DocumentStatusChangedType Type = "DOCUMENT_STATUS_CHANGED"
	FeedbackSubmittedType     Type = "FEEDBACK_SUBMITTED"
	ReportSubmittedType       Type = "REPORT_SUBMITTED"
)

// Payload is implemented by every event body.
type Payload interface {
	EventType() Type
}

type Event struct {
	ID             uuid.UUID
	Type           Type
	OrganizationID string
	CreatedAt      time.Time
	Payload        Payload
}

func New(organizationID string, at time.Time, payload Payload) Event {
	return Event{
		ID:             uuid.New(),
		Type:           payload.EventType(),
		OrganizationID: organizationID,
		CreatedAt:      at,
		Payload:        payload,
	}
}

type MessagePosted struct {
	ChannelID  domain.ChannelID
	MessageID  uuid.UUID
	SenderID   string
	SenderName string
	Text       string
	SentAt     time.Time
}

func (MessagePosted) EventType() Type { return MessagePostedType }

type TicketAssigned struct {
	TicketID   string
	ProjectID  string
	Title      string
	AssigneeID string
	ActorName  string
}

func (TicketAssigned) EventType() Type { return TicketAssignedType }

type DocumentStatusChanged struct {
	Kind       domain.DocumentKind
	DocumentID string
	ProjectID  string
	Title      string
	ClientID   string
	From       domain.DocumentStatus
	To         domain.DocumentStatus
	ActorID    string
	ActorName  string
}

func (DocumentStatusChanged) EventType() Type { return DocumentStatusChangedType }

type FeedbackSubmitted struct {
	Kind       domain.DocumentKind
	DocumentID string
	ProjectID  string
	Title      string
	AuthorID   string
	AuthorName string
}

func (FeedbackSubmitted) EventType() Type { return FeedbackSubmittedType }

type ReportSubmitted struct {
	ReportID   string
	ProjectID  string
	Title      string
	AuthorID   string
	AuthorName string
}

func (ReportSubmitted) EventType() Type { return ReportSubmittedType }
