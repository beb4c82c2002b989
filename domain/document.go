package domain

import (
	"collab-hub/errors"
	"time"
)

type DocumentKind string

const (
	KindProposal DocumentKind = "proposal"
	KindInvoice  DocumentKind = "invoice"
)

type DocumentStatus string

const (
	StatusDraft            DocumentStatus = "draft"
	StatusSent             DocumentStatus = "sent"
	StatusAccepted         DocumentStatus = "accepted"
	StatusDeclined         DocumentStatus = "declined"
	StatusPaid             DocumentStatus = "paid"
	StatusChangesRequested DocumentStatus = "changes_requested"
)

type FeedbackComment struct {
	AuthorID     string
	AuthorName   string
	AuthorAvatar string
	Message      string
	At           time.Time
}

// Document is a proposal or an invoice sent to a project client.
type Document struct {
	ID             string
	Kind           DocumentKind
	OrganizationID string
	ProjectID      string
	ClientID       string
	Title          string
	Status         DocumentStatus
	Feedback       []FeedbackComment
	UpdatedAt      time.Time
}

// AddFeedback appends a comment and forces the document into
// changes_requested. Drafts never receive feedback.
func (d *Document) AddFeedback(comment FeedbackComment) error {
	if d.Status == StatusDraft {
		return errors.ErrFeedbackOnDraft
	}
	d.Feedback = append(d.Feedback, comment)
	d.Status = StatusChangesRequested
	d.UpdatedAt = comment.At
	return nil
}

type Ticket struct {
	ID             string
	OrganizationID string
	ProjectID      string
	Title          string
	AssigneeID     string
	UpdatedAt      time.Time
}

// Report is a client report submitted from the client portal.
type Report struct {
	ID             string
	OrganizationID string
	ProjectID      string
	AuthorID       string
	AuthorName     string
	Title          string
	Body           string
	SubmittedAt    time.Time
}
