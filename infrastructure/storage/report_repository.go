//go:generate go run go.uber.org/mock/mockgen -source=report_repository.go -destination=../../mocks/mock_report_repository.go -package=mocks
package storage

import (
	"collab-hub/domain"
	"collab-hub/domain/event"
	"collab-hub/errors"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IReportRepository interface {
	StoreReport(report domain.Report, evt event.Event) error
	GetReport(id string) (domain.Report, error)
}

type ReportRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewReportRepository(db *badger.DB, log *slog.Logger) ReportRepository {
	return ReportRepository{db: db, log: log}
}

type diskReport struct {
	ID             string    `cbor:"id"`
	OrganizationID string    `cbor:"org"`
	ProjectID      string    `cbor:"project_id"`
	AuthorID       string    `cbor:"author_id"`
	AuthorName     string    `cbor:"author_name"`
	Title          string    `cbor:"title"`
	Body           string    `cbor:"body,omitempty"`
	SubmittedAt    time.Time `cbor:"submitted_at"`
}

func reportKey(id string) []byte {
	return []byte("report:" + id)
}

func (r ReportRepository) StoreReport(report domain.Report, evt event.Event) error {
	return update(r.db, func(txn *badger.Txn) error {
		err := setValue(txn, reportKey(report.ID), diskReport{
			ID:             report.ID,
			OrganizationID: report.OrganizationID,
			ProjectID:      report.ProjectID,
			AuthorID:       report.AuthorID,
			AuthorName:     report.AuthorName,
			Title:          report.Title,
			Body:           report.Body,
			SubmittedAt:    report.SubmittedAt,
		})
		if err != nil {
			return err
		}
		return putOutbox(txn, evt)
	})
}

func (r ReportRepository) GetReport(id string) (domain.Report, error) {
	var disk diskReport
	err := r.db.View(func(txn *badger.Txn) error {
		return getValue(txn, reportKey(id), &disk)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Report{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.Report{}, err
	}
	return domain.Report{
		ID:             disk.ID,
		OrganizationID: disk.OrganizationID,
		ProjectID:      disk.ProjectID,
		AuthorID:       disk.AuthorID,
		AuthorName:     disk.AuthorName,
		Title:          disk.Title,
		Body:           disk.Body,
		SubmittedAt:    disk.SubmittedAt.UTC(),
	}, nil
}
