//go:generate go run go.uber.org/mock/mockgen -source=workflow_service.go -destination=../mocks/mock_workflow_service.go -package=mocks
package services

import (
	"collab-hub/clock"
	"collab-hub/contract"
	"collab-hub/domain"
	"collab-hub/domain/event"
	"collab-hub/errors"
	"collab-hub/infrastructure/storage"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type IWorkflowService interface {
	AssignTicket(ctx context.Context, cmd domain.AssignTicketCommand) (domain.Ticket, error)
	ChangeDocumentStatus(ctx context.Context, cmd domain.ChangeDocumentStatusCommand) (domain.Document, error)
	SubmitFeedback(ctx context.Context, cmd domain.SubmitFeedbackCommand) (domain.Document, error)
	SubmitReport(ctx context.Context, cmd domain.SubmitReportCommand) (domain.Report, error)
}

// WorkflowService owns the state changes that notify people: ticket
// assignment, document status, feedback and client reports. Each change
// is written with its event in one transaction and only when it is a real
// transition; the relay then fans the event out.
type WorkflowService struct {
	documents storage.IDocumentRepository
	tickets   storage.ITicketRepository
	reports   storage.IReportRepository
	directory storage.IDirectoryRepository
	relay     contract.Kicker
	clock     clock.Clock
	validate  *validator.Validate
	log       *slog.Logger
}

func NewWorkflowService(
	documents storage.IDocumentRepository,
	tickets storage.ITicketRepository,
	reports storage.IReportRepository,
	directory storage.IDirectoryRepository,
	relay contract.Kicker,
	clk clock.Clock,
	log *slog.Logger,
) *WorkflowService {
	return &WorkflowService{
		documents: documents,
		tickets:   tickets,
		reports:   reports,
		directory: directory,
		relay:     relay,
		clock:     clk,
		validate:  validator.New(),
		log:       log,
	}
}

// AssignTicket is a no-op when the ticket already belongs to the assignee.
func (s *WorkflowService) AssignTicket(ctx context.Context, cmd domain.AssignTicketCommand) (ticket domain.Ticket, err error) {
	_, span := startSpan(ctx, "WorkflowService.AssignTicket")
	defer func() { endSpan(span, err) }()

	if err := s.check(cmd); err != nil {
		return domain.Ticket{}, err
	}
	current, err := s.tickets.GetTicket(cmd.TicketID)
	if err != nil {
		return domain.Ticket{}, err
	}
	if current.OrganizationID != cmd.Actor.OrganizationID {
		return domain.Ticket{}, errors.ErrTicketNotFound
	}
	if current.AssigneeID == cmd.AssigneeID {
		return current, nil
	}

	ticket, err = s.tickets.Assign(current.ID, current.AssigneeID, cmd.AssigneeID, s.clock.Now(),
		func(t domain.Ticket) event.Event {
			return event.New(t.OrganizationID, t.UpdatedAt, event.TicketAssigned{
				TicketID:   t.ID,
				ProjectID:  t.ProjectID,
				Title:      t.Title,
				AssigneeID: t.AssigneeID,
				ActorName:  cmd.Actor.Name,
			})
		})
	if err != nil {
		return domain.Ticket{}, err
	}
	s.relay.Kick()
	return ticket, nil
}

// ChangeDocumentStatus is a no-op when the status does not change. The
// write is a compare-and-swap on the status read just before, so two
// concurrent identical transitions produce one event and one
// ErrStatusConflict.
func (s *WorkflowService) ChangeDocumentStatus(ctx context.Context, cmd domain.ChangeDocumentStatusCommand) (document domain.Document, err error) {
	_, span := startSpan(ctx, "WorkflowService.ChangeDocumentStatus")
	defer func() { endSpan(span, err) }()

	if err := s.check(cmd); err != nil {
		return domain.Document{}, err
	}
	current, err := s.document(cmd.Actor, cmd.Kind, cmd.DocumentID)
	if err != nil {
		return domain.Document{}, err
	}
	if current.Status == cmd.Status {
		return current, nil
	}

	from := current.Status
	document, err = s.documents.UpdateStatus(cmd.Kind, cmd.DocumentID, from, cmd.Status, s.clock.Now(),
		func(d domain.Document) event.Event {
			return event.New(d.OrganizationID, d.UpdatedAt, event.DocumentStatusChanged{
				Kind:       d.Kind,
				DocumentID: d.ID,
				ProjectID:  d.ProjectID,
				Title:      d.Title,
				ClientID:   d.ClientID,
				From:       from,
				To:         d.Status,
				ActorID:    cmd.Actor.ID,
				ActorName:  cmd.Actor.Name,
			})
		})
	if err != nil {
		return domain.Document{}, err
	}
	s.relay.Kick()
	return document, nil
}

// SubmitFeedback appends exactly one comment and forces the document into
// changes_requested. Drafts are rejected with ErrFeedbackOnDraft.
func (s *WorkflowService) SubmitFeedback(ctx context.Context, cmd domain.SubmitFeedbackCommand) (document domain.Document, err error) {
	_, span := startSpan(ctx, "WorkflowService.SubmitFeedback")
	defer func() { endSpan(span, err) }()

	if err := s.check(cmd); err != nil {
		return domain.Document{}, err
	}
	if _, err := s.document(cmd.Author, cmd.Kind, cmd.DocumentID); err != nil {
		return domain.Document{}, err
	}

	comment := domain.FeedbackComment{
		AuthorID:     cmd.Author.ID,
		AuthorName:   cmd.Author.Name,
		AuthorAvatar: cmd.Author.Avatar,
		Message:      cmd.Message,
		At:           s.clock.Now(),
	}
	document, err = s.documents.AppendFeedback(cmd.Kind, cmd.DocumentID, comment,
		func(d domain.Document) event.Event {
			return event.New(d.OrganizationID, d.UpdatedAt, event.FeedbackSubmitted{
				Kind:       d.Kind,
				DocumentID: d.ID,
				ProjectID:  d.ProjectID,
				Title:      d.Title,
				AuthorID:   cmd.Author.ID,
				AuthorName: cmd.Author.Name,
			})
		})
	if err != nil {
		return domain.Document{}, err
	}
	s.relay.Kick()
	return document, nil
}

func (s *WorkflowService) SubmitReport(ctx context.Context, cmd domain.SubmitReportCommand) (report domain.Report, err error) {
	_, span := startSpan(ctx, "WorkflowService.SubmitReport")
	defer func() { endSpan(span, err) }()

	if err := s.check(cmd); err != nil {
		return domain.Report{}, err
	}
	project, err := s.directory.GetProject(cmd.ProjectID)
	if err != nil {
		return domain.Report{}, err
	}
	if project.OrganizationID != cmd.Author.OrganizationID {
		return domain.Report{}, errors.ErrProjectNotFound
	}

	report = domain.Report{
		ID:             uuid.NewString(),
		OrganizationID: project.OrganizationID,
		ProjectID:      project.ID,
		AuthorID:       cmd.Author.ID,
		AuthorName:     cmd.Author.Name,
		Title:          cmd.Title,
		Body:           cmd.Body,
		SubmittedAt:    s.clock.Now(),
	}
	evt := event.New(report.OrganizationID, report.SubmittedAt, event.ReportSubmitted{
		ReportID:   report.ID,
		ProjectID:  report.ProjectID,
		Title:      report.Title,
		AuthorID:   report.AuthorID,
		AuthorName: report.AuthorName,
	})
	if err := s.reports.StoreReport(report, evt); err != nil {
		return domain.Report{}, fmt.Errorf("store report: %w", err)
	}
	s.relay.Kick()
	return report, nil
}

// document loads a document of the caller's tenant. Documents of another
// tenant are reported as missing.
func (s *WorkflowService) document(caller domain.User, kind domain.DocumentKind, id string) (domain.Document, error) {
	document, err := s.documents.GetDocument(kind, id)
	if err != nil {
		return domain.Document{}, err
	}
	if document.OrganizationID != caller.OrganizationID {
		return domain.Document{}, errors.ErrDocumentNotFound
	}
	return document, nil
}

// check validates cmd. An unknown kind or status is also reported with
// its own sentinel.
func (s *WorkflowService) check(cmd any) error {
	err := s.validate.Struct(cmd)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if stderrors.As(err, &fields) {
		for _, field := range fields {
			switch field.Field() {
			case "Kind":
				return fmt.Errorf("%w: %w: %v", errors.ErrInvalidRequest, errors.ErrInvalidKind, err)
			case "Status":
				return fmt.Errorf("%w: %w: %v", errors.ErrInvalidRequest, errors.ErrInvalidStatus, err)
			}
		}
	}
	return fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
}
