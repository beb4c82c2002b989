//go:generate go run go.uber.org/mock/mockgen -source=ticket_repository.go -destination=../../mocks/mock_ticket_repository.go -package=mocks
package storage

import (
	"collab-hub/domain"
	"collab-hub/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type ITicketRepository interface {
	SaveTicket(ticket domain.Ticket) error
	GetTicket(id string) (domain.Ticket, error)
	Assign(id, expectedAssignee, assignee string, at time.Time, build EventBuilder[domain.Ticket]) (domain.Ticket, error)
}

type TicketRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewTicketRepository(db *badger.DB, log *slog.Logger) TicketRepository {
	return TicketRepository{db: db, log: log}
}

type diskTicket struct {
	ID             string    `cbor:"id"`
	OrganizationID string    `cbor:"org"`
	ProjectID      string    `cbor:"project_id"`
	Title          string    `cbor:"title"`
	AssigneeID     string    `cbor:"assignee_id,omitempty"`
	UpdatedAt      time.Time `cbor:"updated_at"`
}

func ticketKey(id string) []byte {
	return []byte("ticket:" + id)
}

func (t TicketRepository) SaveTicket(ticket domain.Ticket) error {
	return update(t.db, func(txn *badger.Txn) error {
		return setValue(txn, ticketKey(ticket.ID), fromTicket(ticket))
	})
}

func (t TicketRepository) GetTicket(id string) (domain.Ticket, error) {
	var disk diskTicket
	err := t.db.View(func(txn *badger.Txn) error {
		return getValue(txn, ticketKey(id), &disk)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Ticket{}, errors.ErrTicketNotFound
	}
	if err != nil {
		return domain.Ticket{}, err
	}
	return toTicket(disk), nil
}

// Assign hands the ticket to assignee if it is still held by
// expectedAssignee, and records the event built from the new state.
func (t TicketRepository) Assign(id, expectedAssignee, assignee string, at time.Time, build EventBuilder[domain.Ticket]) (domain.Ticket, error) {
	var ticket domain.Ticket
	err := update(t.db, func(txn *badger.Txn) error {
		var disk diskTicket
		if err := getValue(txn, ticketKey(id), &disk); err != nil {
			return err
		}
		if disk.AssigneeID != expectedAssignee {
			return fmt.Errorf("ticket %s is assigned to %q: %w", id, disk.AssigneeID, errors.ErrStatusConflict)
		}
		disk.AssigneeID = assignee
		disk.UpdatedAt = at
		if err := setValue(txn, ticketKey(id), disk); err != nil {
			return err
		}
		ticket = toTicket(disk)
		return putOutbox(txn, build(ticket))
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Ticket{}, errors.ErrTicketNotFound
	}
	if err != nil {
		return domain.Ticket{}, err
	}
	return ticket, nil
}

func fromTicket(ticket domain.Ticket) diskTicket {
	return diskTicket{
		ID:             ticket.ID,
		OrganizationID: ticket.OrganizationID,
		ProjectID:      ticket.ProjectID,
		Title:          ticket.Title,
		AssigneeID:     ticket.AssigneeID,
		UpdatedAt:      ticket.UpdatedAt,
	}
}

func toTicket(disk diskTicket) domain.Ticket {
	return domain.Ticket{
		ID:             disk.ID,
		OrganizationID: disk.OrganizationID,
		ProjectID:      disk.ProjectID,
		Title:          disk.Title,
		AssigneeID:     disk.AssigneeID,
		UpdatedAt:      disk.UpdatedAt.UTC(),
	}
}
