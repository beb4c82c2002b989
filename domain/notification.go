package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationTTL is the fixed lifetime of a notification.
const NotificationTTL = 7 * 24 * time.Hour

const UnknownProject = "Unknown Project"

// Correlation links a notification to the entity that caused it.
type Correlation struct {
	TicketID   string
	ProposalID string
	InvoiceID  string
	ReportID   string
	ChatID     ChannelID
}

type Notification struct {
	ID          uuid.UUID
	RecipientID string
	Message     string
	Read        bool
	CreatedAt   time.Time
	ExpiresAt   time.Time
	Correlation Correlation
	ProjectID   string
	ProjectName string
}

func NewNotification(recipientID, message string, correlation Correlation,
	projectID, projectName string, now time.Time) Notification {
	return Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Message:     message,
		CreatedAt:   now,
		ExpiresAt:   now.Add(NotificationTTL),
		Correlation: correlation,
		ProjectID:   projectID,
		ProjectName: projectName,
	}
}

func (n Notification) Expired(now time.Time) bool {
	return n.ExpiresAt.Before(now)
}
