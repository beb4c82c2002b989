package services_test

import (
	"collab-hub/domain"
	"collab-hub/domain/event"
	"collab-hub/errors"
	"collab-hub/mocks"
	"collab-hub/services"
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fanoutMocks struct {
	channels  *mocks.MockIChannelRepository
	directory *mocks.MockIDirectoryRepository
	notifier  *mocks.MockINotifier
	mailer    *mocks.MockEmailSender
	sink      *mocks.MockErrorSink
	engine    *services.FanoutEngine
}

func newFanout(t *testing.T) fanoutMocks {
	ctrl := gomock.NewController(t)
	m := fanoutMocks{
		channels:  mocks.NewMockIChannelRepository(ctrl),
		directory: mocks.NewMockIDirectoryRepository(ctrl),
		notifier:  mocks.NewMockINotifier(ctrl),
		mailer:    mocks.NewMockEmailSender(ctrl),
		sink:      mocks.NewMockErrorSink(ctrl),
	}
	m.engine = services.NewFanoutEngine(m.channels, m.directory, m.notifier, m.mailer, m.sink,
		"https://app.example.com", testLogger)
	return m
}

// recordNotify captures every Notify call; the writes run concurrently.
func recordNotify(m fanoutMocks, fail map[string]error) (*sync.Mutex, *[]services.NotifyArgs) {
	var mu sync.Mutex
	var calls []services.NotifyArgs
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args services.NotifyArgs) (uuid.UUID, error) {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, args)
			return uuid.New(), fail[args.RecipientID]
		}).AnyTimes()
	return &mu, &calls
}

func recipients(calls []services.NotifyArgs) []string {
	ids := make([]string, 0, len(calls))
	for _, c := range calls {
		ids = append(ids, c.RecipientID)
	}
	return ids
}

var orgUsers = []domain.User{
	{ID: "c1", OrganizationID: "org-1", Name: "Carl", Email: "carl@example.com", Role: domain.RoleClient},
	{ID: "a1", OrganizationID: "org-1", Name: "Ada", Role: domain.RoleAdmin},
	{ID: "a2", OrganizationID: "org-1", Name: "Alan", Role: domain.RoleAdmin},
	{ID: "m1", OrganizationID: "org-1", Name: "Mia", Role: domain.RoleMember},
}

func TestFanout_MessagePosted_Skips_Sender(t *testing.T) {
	req := require.New(t)
	m := newFanout(t)
	channelID := domain.NewChannelID("P", "org-1")
	m.channels.EXPECT().GetChannel(channelID).Return(domain.Channel{
		ID: channelID, ProjectID: "P", ProjectName: "Website", Members: []string{"c1", "a1", "a2"},
	}, nil)
	_, calls := recordNotify(m, nil)

	err := m.engine.Handle(t.Context(), event.New("org-1", fixedNow(), event.MessagePosted{
		ChannelID: channelID, SenderID: "a1", SenderName: "Ada", Text: "hi",
	}))

	req.NoError(err)
	req.ElementsMatch([]string{"c1", "a2"}, recipients(*calls))
	for _, c := range *calls {
		req.Equal("New message from Ada in Website", c.Message)
		req.Equal(channelID, c.Correlation.ChatID)
		req.Equal("Website", c.ProjectName)
	}
}

func TestFanout_Failed_Recipient_Does_Not_Fail_Event(t *testing.T) {
	req := require.New(t)
	m := newFanout(t)
	m.directory.EXPECT().ListByOrganization("org-1").Return(orgUsers, nil)
	boom := stderrors.New("disk full")
	_, calls := recordNotify(m, map[string]error{"a1": boom})
	m.sink.EXPECT().Report(gomock.Any(), "fanout.notify", boom, "recipient_id", "a1").Times(1)

	err := m.engine.Handle(t.Context(), event.New("org-1", fixedNow(), event.ReportSubmitted{
		ReportID: "r1", ProjectID: "P", Title: "Bug", AuthorName: "Carl",
	}))

	req.NoError(err)
	req.ElementsMatch([]string{"a1", "a2"}, recipients(*calls))
}

func TestFanout_Unresolved_Recipients_Fail_Event(t *testing.T) {
	req := require.New(t)
	m := newFanout(t)
	channelID := domain.NewChannelID("P", "org-1")
	m.channels.EXPECT().GetChannel(channelID).Return(domain.Channel{}, errors.ErrChannelNotFound)

	err := m.engine.Handle(t.Context(), event.New("org-1", fixedNow(), event.MessagePosted{ChannelID: channelID}))

	req.ErrorIs(err, errors.ErrChannelNotFound)
}

func TestFanout_Sent_Document_Emails_Client(t *testing.T) {
	req := require.New(t)
	m := newFanout(t)
	_, calls := recordNotify(m, nil)
	m.directory.EXPECT().GetUser("org-1", "c1").Return(orgUsers[0], nil)
	m.directory.EXPECT().GetProject("P").Return(domain.Project{ID: "P", Name: "Website"}, nil)
	m.mailer.EXPECT().SendEmail(gomock.Any(), "carl@example.com", "New invoice: March", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, html string) error {
			req.Contains(html, "Website")
			req.Contains(html, "https://app.example.com")
			return nil
		})

	err := m.engine.Handle(t.Context(), event.New("org-1", fixedNow(), event.DocumentStatusChanged{
		Kind: domain.KindInvoice, DocumentID: "inv-1", ProjectID: "P", Title: "March", ClientID: "c1",
		From: domain.StatusDraft, To: domain.StatusSent,
	}))

	req.NoError(err)
	req.Len(*calls, 1)
	req.Equal("c1", (*calls)[0].RecipientID)
	req.Equal("New invoice received: March", (*calls)[0].Message)
	req.Equal("inv-1", (*calls)[0].Correlation.InvoiceID)
}

func TestFanout_Email_Failure_Is_Reported(t *testing.T) {
	req := require.New(t)
	m := newFanout(t)
	recordNotify(m, nil)
	m.directory.EXPECT().GetUser("org-1", "c1").Return(orgUsers[0], nil)
	m.directory.EXPECT().GetProject("P").Return(domain.Project{}, errors.ErrProjectNotFound)
	m.mailer.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.ErrEmailNotConfigured)
	m.sink.EXPECT().Report(gomock.Any(), "fanout.email", errors.ErrEmailNotConfigured, "client_id", "c1")

	err := m.engine.Handle(t.Context(), event.New("org-1", fixedNow(), event.DocumentStatusChanged{
		Kind: domain.KindProposal, DocumentID: "p-1", ProjectID: "P", Title: "Scope", ClientID: "c1",
		To: domain.StatusSent,
	}))

	req.NoError(err)
}

func TestFanout_Declined_Document_Notifies_Admins(t *testing.T) {
	req := require.New(t)
	m := newFanout(t)
	m.directory.EXPECT().ListByOrganization("org-1").Return(orgUsers, nil)
	_, calls := recordNotify(m, nil)

	err := m.engine.Handle(t.Context(), event.New("org-1", fixedNow(), event.DocumentStatusChanged{
		Kind: domain.KindProposal, DocumentID: "p-1", ProjectID: "P", Title: "Scope",
		From: domain.StatusSent, To: domain.StatusDeclined, ActorName: "Carl",
	}))

	req.NoError(err)
	req.ElementsMatch([]string{"a1", "a2"}, recipients(*calls))
	req.Equal("Carl declined proposal: Scope", (*calls)[0].Message)
	req.Equal("p-1", (*calls)[0].Correlation.ProposalID)
}

func TestFanout_Other_Transitions_Notify_Nobody(t *testing.T) {
	req := require.New(t)
	m := newFanout(t)

	for _, to := range []domain.DocumentStatus{domain.StatusDraft, domain.StatusChangesRequested} {
		err := m.engine.Handle(t.Context(), event.New("org-1", fixedNow(), event.DocumentStatusChanged{
			Kind: domain.KindProposal, DocumentID: "p-1", To: to,
		}))
		req.NoError(err)
	}
}

func TestFanout_Admin_Lookup_Failure_Fails_Event(t *testing.T) {
	req := require.New(t)
	m := newFanout(t)
	boom := stderrors.New("store closed")
	m.directory.EXPECT().ListByOrganization("org-1").Return(nil, boom)

	err := m.engine.Handle(t.Context(), event.New("org-1", fixedNow(), event.FeedbackSubmitted{
		Kind: domain.KindProposal, DocumentID: "p-1", Title: "Scope", AuthorName: "Carl",
	}))

	req.ErrorIs(err, boom)
}

type unknownPayload struct{}

func (unknownPayload) EventType() event.Type { return "UNKNOWN" }

func TestFanout_Unknown_Payload(t *testing.T) {
	m := newFanout(t)
	err := m.engine.Handle(t.Context(), event.New("org-1", fixedNow(), unknownPayload{}))
	require.ErrorIs(t, err, errors.ErrInvalidPayload)
}
