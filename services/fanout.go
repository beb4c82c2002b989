package services

import (
	"collab-hub/contract"
	"collab-hub/domain"
	"collab-hub/domain/event"
	"collab-hub/errors"
	"collab-hub/infrastructure/email"
	"collab-hub/infrastructure/storage"
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentNotify bounds the notification writes of one event.
const maxConcurrentNotify = 16

// FanoutEngine turns outbox events into notifications. It implements
// contract.EventHandler for the outbox relay.
//
// Returning an error means the recipients could not be resolved; the
// relay retries the whole event. Once recipients are known, a failed
// notification or email is reported to the sink and the event succeeds.
type FanoutEngine struct {
	channels  storage.IChannelRepository
	directory storage.IDirectoryRepository
	notifier  INotifier
	mailer    contract.EmailSender
	sink      contract.ErrorSink
	appURL    string
	log       *slog.Logger
}

func NewFanoutEngine(
	channels storage.IChannelRepository,
	directory storage.IDirectoryRepository,
	notifier INotifier,
	mailer contract.EmailSender,
	sink contract.ErrorSink,
	appURL string,
	log *slog.Logger,
) *FanoutEngine {
	return &FanoutEngine{
		channels:  channels,
		directory: directory,
		notifier:  notifier,
		mailer:    mailer,
		sink:      sink,
		appURL:    appURL,
		log:       log,
	}
}

func (f *FanoutEngine) Handle(ctx context.Context, e event.Event) (err error) {
	ctx, span := startSpan(ctx, "FanoutEngine.Handle", trace.WithAttributes(
		attribute.String("event_id", e.ID.String()),
		attribute.String("event_type", string(e.Type)),
	))
	defer func() { endSpan(span, err) }()

	switch p := e.Payload.(type) {
	case event.MessagePosted:
		return f.messagePosted(ctx, p)
	case event.TicketAssigned:
		f.notifyAll(ctx, []string{p.AssigneeID}, NotifyArgs{
			Message:     fmt.Sprintf("You have been assigned to ticket: %s", p.Title),
			Correlation: domain.Correlation{TicketID: p.TicketID},
			ProjectID:   p.ProjectID,
		})
		return nil
	case event.DocumentStatusChanged:
		return f.documentStatusChanged(ctx, e.OrganizationID, p)
	case event.FeedbackSubmitted:
		return f.notifyAdmins(ctx, e.OrganizationID, NotifyArgs{
			Message:     fmt.Sprintf("%s requested changes on %s: %s", p.AuthorName, p.Kind, p.Title),
			Correlation: documentCorrelation(p.Kind, p.DocumentID),
			ProjectID:   p.ProjectID,
		})
	case event.ReportSubmitted:
		return f.notifyAdmins(ctx, e.OrganizationID, NotifyArgs{
			Message:     fmt.Sprintf("New report from %s: %s", p.AuthorName, p.Title),
			Correlation: domain.Correlation{ReportID: p.ReportID},
			ProjectID:   p.ProjectID,
		})
	default:
		return fmt.Errorf("%w: no fan-out rule for %s", errors.ErrInvalidPayload, e.Type)
	}
}

// messagePosted re-reads the channel for its frozen membership and
// notifies everyone but the sender.
func (f *FanoutEngine) messagePosted(ctx context.Context, p event.MessagePosted) error {
	channel, err := f.channels.GetChannel(p.ChannelID)
	if err != nil {
		return fmt.Errorf("resolve members of %s: %w", p.ChannelID, err)
	}
	f.notifyAll(ctx, channel.Recipients(p.SenderID), NotifyArgs{
		Message:     fmt.Sprintf("New message from %s in %s", p.SenderName, channel.ProjectName),
		Correlation: domain.Correlation{ChatID: channel.ID},
		ProjectID:   channel.ProjectID,
		ProjectName: channel.ProjectName,
	})
	return nil
}

func (f *FanoutEngine) documentStatusChanged(ctx context.Context, organizationID string, p event.DocumentStatusChanged) error {
	args := NotifyArgs{
		Correlation: documentCorrelation(p.Kind, p.DocumentID),
		ProjectID:   p.ProjectID,
	}
	switch p.To {
	case domain.StatusSent:
		args.Message = fmt.Sprintf("New %s received: %s", p.Kind, p.Title)
		f.notifyAll(ctx, []string{p.ClientID}, args)
		f.emailClient(ctx, organizationID, p)
		return nil
	case domain.StatusAccepted, domain.StatusDeclined, domain.StatusPaid:
		args.Message = fmt.Sprintf("%s %s %s: %s", p.ActorName, p.To, p.Kind, p.Title)
		return f.notifyAdmins(ctx, organizationID, args)
	default:
		return nil
	}
}

func (f *FanoutEngine) notifyAdmins(ctx context.Context, organizationID string, args NotifyArgs) error {
	users, err := f.directory.ListByOrganization(organizationID)
	if err != nil {
		return fmt.Errorf("resolve admins of %s: %w", organizationID, err)
	}
	admins := lo.Map(domain.AdminsOf(users), func(u domain.User, _ int) string { return u.ID })
	f.notifyAll(ctx, admins, args)
	return nil
}

// notifyAll writes one notification per recipient concurrently. There is
// no ordering among the writes and a failed write is not retried.
func (f *FanoutEngine) notifyAll(ctx context.Context, recipients []string, args NotifyArgs) {
	var g errgroup.Group
	g.SetLimit(maxConcurrentNotify)
	for _, recipient := range recipients {
		a := args
		a.RecipientID = recipient
		g.Go(func() error {
			if _, err := f.notifier.Notify(ctx, a); err != nil {
				f.sink.Report(ctx, "fanout.notify", err, "recipient_id", a.RecipientID)
			}
			return nil
		})
	}
	_ = g.Wait()
	f.log.Debug("Fan-out done", "recipients", len(recipients), "message", args.Message)
}

func (f *FanoutEngine) emailClient(ctx context.Context, organizationID string, p event.DocumentStatusChanged) {
	client, err := f.directory.GetUser(organizationID, p.ClientID)
	if err != nil {
		f.sink.Report(ctx, "fanout.email", err, "client_id", p.ClientID)
		return
	}
	if client.Email == "" {
		return
	}
	projectName := domain.UnknownProject
	if project, err := f.directory.GetProject(p.ProjectID); err == nil {
		projectName = project.Name
	}
	subject, html, err := email.RenderDocumentSent(email.DocumentSentData{
		ClientName:  client.Name,
		Kind:        string(p.Kind),
		Title:       p.Title,
		ProjectName: projectName,
		URL:         f.appURL,
	})
	if err != nil {
		f.sink.Report(ctx, "fanout.email", err, "client_id", p.ClientID)
		return
	}
	if err := f.mailer.SendEmail(ctx, client.Email, subject, html); err != nil {
		f.sink.Report(ctx, "fanout.email", err, "client_id", p.ClientID)
	}
}

func documentCorrelation(kind domain.DocumentKind, id string) domain.Correlation {
	if kind == domain.KindInvoice {
		return domain.Correlation{InvoiceID: id}
	}
	return domain.Correlation{ProposalID: id}
}
