package storage

import (
	"collab-hub/domain"
	"collab-hub/domain/event"
	"collab-hub/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func statusEvent(from domain.DocumentStatus) EventBuilder[domain.Document] {
	return func(d domain.Document) event.Event {
		return event.New(d.OrganizationID, d.UpdatedAt, event.DocumentStatusChanged{
			Kind:       d.Kind,
			DocumentID: d.ID,
			ProjectID:  d.ProjectID,
			Title:      d.Title,
			ClientID:   d.ClientID,
			From:       from,
			To:         d.Status,
		})
	}
}

func seedDocument(t *testing.T, repository DocumentRepository, status domain.DocumentStatus) domain.Document {
	t.Helper()
	document := domain.Document{
		ID:             "inv-1",
		Kind:           domain.KindInvoice,
		OrganizationID: "org-1",
		ProjectID:      "p1",
		ClientID:       "c1",
		Title:          "March invoice",
		Status:         status,
		UpdatedAt:      fixedNow(),
	}
	require.NoError(t, repository.SaveDocument(document))
	return document
}

func Test_Update_Status_Writes_State_And_Event(t *testing.T) {
	req := require.New(t)
	db := openDB(t)
	repository := NewDocumentRepository(db, testLogger)
	outbox := NewOutboxRepository(db, testLogger)
	seedDocument(t, repository, domain.StatusDraft)

	updated, err := repository.UpdateStatus(domain.KindInvoice, "inv-1", domain.StatusDraft, domain.StatusSent, fixedNow().Add(time.Minute), statusEvent(domain.StatusDraft))
	req.NoError(err)
	req.Equal(domain.StatusSent, updated.Status)

	pending, err := outbox.Pending(0)
	req.NoError(err)
	req.Len(pending, 1)
	payload := pending[0].Event.Payload.(event.DocumentStatusChanged)
	req.Equal(domain.StatusDraft, payload.From)
	req.Equal(domain.StatusSent, payload.To)
}

func Test_Update_Status_Conflict_Writes_Nothing(t *testing.T) {
	req := require.New(t)
	db := openDB(t)
	repository := NewDocumentRepository(db, testLogger)
	outbox := NewOutboxRepository(db, testLogger)
	seedDocument(t, repository, domain.StatusAccepted)

	// Given a caller that read "sent" before somebody accepted the invoice
	_, err := repository.UpdateStatus(domain.KindInvoice, "inv-1", domain.StatusSent, domain.StatusDeclined, fixedNow(), statusEvent(domain.StatusSent))

	// Then the swap fails and no event is recorded
	req.ErrorIs(err, errors.ErrStatusConflict)
	stored, err := repository.GetDocument(domain.KindInvoice, "inv-1")
	req.NoError(err)
	req.Equal(domain.StatusAccepted, stored.Status)
	pending, err := outbox.Pending(0)
	req.NoError(err)
	req.Empty(pending)
}

func Test_Append_Feedback(t *testing.T) {
	req := require.New(t)
	repository := NewDocumentRepository(openDB(t), testLogger)
	seedDocument(t, repository, domain.StatusSent)
	comment := domain.FeedbackComment{AuthorID: "c1", AuthorName: "Carol", Message: "Wrong VAT", At: fixedNow()}
	build := func(d domain.Document) event.Event {
		return event.New(d.OrganizationID, d.UpdatedAt, event.FeedbackSubmitted{Kind: d.Kind, DocumentID: d.ID, Title: d.Title})
	}

	updated, err := repository.AppendFeedback(domain.KindInvoice, "inv-1", comment, build)
	req.NoError(err)
	req.Equal(domain.StatusChangesRequested, updated.Status)
	req.Equal([]domain.FeedbackComment{comment}, updated.Feedback)

	_, err = repository.AppendFeedback(domain.KindInvoice, "missing", comment, build)
	req.ErrorIs(err, errors.ErrDocumentNotFound)
}

func Test_Append_Feedback_On_Draft_Is_Rejected(t *testing.T) {
	req := require.New(t)
	repository := NewDocumentRepository(openDB(t), testLogger)
	seedDocument(t, repository, domain.StatusDraft)

	_, err := repository.AppendFeedback(domain.KindInvoice, "inv-1", domain.FeedbackComment{Message: "x", At: fixedNow()}, func(d domain.Document) event.Event {
		return event.New(d.OrganizationID, d.UpdatedAt, event.FeedbackSubmitted{})
	})
	req.ErrorIs(err, errors.ErrFeedbackOnDraft)

	stored, err := repository.GetDocument(domain.KindInvoice, "inv-1")
	req.NoError(err)
	req.Equal(domain.StatusDraft, stored.Status)
	req.Empty(stored.Feedback)
}
