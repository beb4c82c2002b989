package storage

import (
	"collab-hub/domain"
	"collab-hub/domain/event"
	"collab-hub/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func assignedEvent(ticket domain.Ticket) event.Event {
	return event.New(ticket.OrganizationID, ticket.UpdatedAt, event.TicketAssigned{
		TicketID:   ticket.ID,
		ProjectID:  ticket.ProjectID,
		Title:      ticket.Title,
		AssigneeID: ticket.AssigneeID,
	})
}

func Test_Assign_Ticket_Compare_And_Swap(t *testing.T) {
	req := require.New(t)
	db := openDB(t)
	repository := NewTicketRepository(db, testLogger)
	outbox := NewOutboxRepository(db, testLogger)
	req.NoError(repository.SaveTicket(domain.Ticket{ID: "t1", OrganizationID: "org-1", ProjectID: "p1", Title: "Fix login", UpdatedAt: fixedNow()}))

	ticket, err := repository.Assign("t1", "", "u1", fixedNow(), assignedEvent)
	req.NoError(err)
	req.Equal("u1", ticket.AssigneeID)

	// A writer that still believes the ticket is unassigned loses
	_, err = repository.Assign("t1", "", "u2", fixedNow(), assignedEvent)
	req.ErrorIs(err, errors.ErrStatusConflict)

	pending, err := outbox.Pending(0)
	req.NoError(err)
	req.Len(pending, 1)

	_, err = repository.Assign("missing", "", "u1", fixedNow(), assignedEvent)
	req.ErrorIs(err, errors.ErrTicketNotFound)
}
