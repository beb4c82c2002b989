//go:generate go run go.uber.org/mock/mockgen -source=document_repository.go -destination=../../mocks/mock_document_repository.go -package=mocks
package storage

import (
	"collab-hub/domain"
	"collab-hub/domain/event"
	"collab-hub/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// EventBuilder turns the committed state of a record into the outbox event
// written alongside it.
type EventBuilder[T any] func(record T) event.Event

type IDocumentRepository interface {
	SaveDocument(document domain.Document) error
	GetDocument(kind domain.DocumentKind, id string) (domain.Document, error)
	UpdateStatus(kind domain.DocumentKind, id string, expected, next domain.DocumentStatus, at time.Time, build EventBuilder[domain.Document]) (domain.Document, error)
	AppendFeedback(kind domain.DocumentKind, id string, comment domain.FeedbackComment, build EventBuilder[domain.Document]) (domain.Document, error)
}

type DocumentRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDocumentRepository(db *badger.DB, log *slog.Logger) DocumentRepository {
	return DocumentRepository{db: db, log: log}
}

type diskFeedback struct {
	AuthorID     string    `cbor:"author_id"`
	AuthorName   string    `cbor:"author_name"`
	AuthorAvatar string    `cbor:"author_avatar,omitempty"`
	Message      string    `cbor:"message"`
	At           time.Time `cbor:"at"`
}

type diskDocument struct {
	ID             string         `cbor:"id"`
	Kind           string         `cbor:"kind"`
	OrganizationID string         `cbor:"org"`
	ProjectID      string         `cbor:"project_id"`
	ClientID       string         `cbor:"client_id"`
	Title          string         `cbor:"title"`
	Status         string         `cbor:"status"`
	Feedback       []diskFeedback `cbor:"feedback,omitempty"`
	UpdatedAt      time.Time      `cbor:"updated_at"`
}

func documentKey(kind domain.DocumentKind, id string) []byte {
	return []byte(fmt.Sprintf("doc:%s:%s", kind, id))
}

func (d DocumentRepository) SaveDocument(document domain.Document) error {
	return update(d.db, func(txn *badger.Txn) error {
		return setValue(txn, documentKey(document.Kind, document.ID), fromDocument(document))
	})
}

func (d DocumentRepository) GetDocument(kind domain.DocumentKind, id string) (domain.Document, error) {
	var disk diskDocument
	err := d.db.View(func(txn *badger.Txn) error {
		return getValue(txn, documentKey(kind, id), &disk)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Document{}, errors.ErrDocumentNotFound
	}
	if err != nil {
		return domain.Document{}, err
	}
	return toDocument(disk), nil
}

// UpdateStatus moves a document from expected to next. The write only
// happens if the stored status still equals expected when the transaction
// commits; otherwise ErrStatusConflict is returned and no event is recorded.
func (d DocumentRepository) UpdateStatus(kind domain.DocumentKind, id string, expected, next domain.DocumentStatus, at time.Time, build EventBuilder[domain.Document]) (domain.Document, error) {
	return d.mutate(kind, id, build, func(document *domain.Document) error {
		if document.Status != expected {
			return fmt.Errorf("%s %s is %s, expected %s: %w", kind, id, document.Status, expected, errors.ErrStatusConflict)
		}
		document.Status = next
		document.UpdatedAt = at
		return nil
	})
}

// AppendFeedback adds exactly one comment and forces changes_requested.
func (d DocumentRepository) AppendFeedback(kind domain.DocumentKind, id string, comment domain.FeedbackComment, build EventBuilder[domain.Document]) (domain.Document, error) {
	return d.mutate(kind, id, build, func(document *domain.Document) error {
		return document.AddFeedback(comment)
	})
}

func (d DocumentRepository) mutate(kind domain.DocumentKind, id string, build EventBuilder[domain.Document], change func(*domain.Document) error) (domain.Document, error) {
	var document domain.Document
	err := update(d.db, func(txn *badger.Txn) error {
		var disk diskDocument
		if err := getValue(txn, documentKey(kind, id), &disk); err != nil {
			return err
		}
		document = toDocument(disk)
		if err := change(&document); err != nil {
			return err
		}
		if err := setValue(txn, documentKey(kind, id), fromDocument(document)); err != nil {
			return err
		}
		return putOutbox(txn, build(document))
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Document{}, errors.ErrDocumentNotFound
	}
	if err != nil {
		return domain.Document{}, err
	}
	return document, nil
}

func fromDocument(document domain.Document) diskDocument {
	feedback := make([]diskFeedback, 0, len(document.Feedback))
	for _, c := range document.Feedback {
		feedback = append(feedback, diskFeedback{
			AuthorID:     c.AuthorID,
			AuthorName:   c.AuthorName,
			AuthorAvatar: c.AuthorAvatar,
			Message:      c.Message,
			At:           c.At,
		})
	}
	return diskDocument{
		ID:             document.ID,
		Kind:           string(document.Kind),
		OrganizationID: document.OrganizationID,
		ProjectID:      document.ProjectID,
		ClientID:       document.ClientID,
		Title:          document.Title,
		Status:         string(document.Status),
		Feedback:       feedback,
		UpdatedAt:      document.UpdatedAt,
	}
}

func toDocument(disk diskDocument) domain.Document {
	var feedback []domain.FeedbackComment
	for _, c := range disk.Feedback {
		feedback = append(feedback, domain.FeedbackComment{
			AuthorID:     c.AuthorID,
			AuthorName:   c.AuthorName,
			AuthorAvatar: c.AuthorAvatar,
			Message:      c.Message,
			At:           c.At.UTC(),
		})
	}
	return domain.Document{
		ID:             disk.ID,
		Kind:           domain.DocumentKind(disk.Kind),
		OrganizationID: disk.OrganizationID,
		ProjectID:      disk.ProjectID,
		ClientID:       disk.ClientID,
		Title:          disk.Title,
		Status:         domain.DocumentStatus(disk.Status),
		Feedback:       feedback,
		UpdatedAt:      disk.UpdatedAt.UTC(),
	}
}
