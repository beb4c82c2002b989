//go:generate go run go.uber.org/mock/mockgen -source=outbox_repository.go -destination=../../mocks/mock_outbox_repository.go -package=mocks
package storage

import (
	"collab-hub/domain/event"
	"collab-hub/errors"
	"collab-hub/infrastructure/codec"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	outboxPendingPrefix = "outbox:pending:"
	outboxDeadPrefix    = "outbox:dead:"
)

type IOutboxRepository interface {
	Pending(limit int) ([]OutboxEntry, error)
	Ack(entry OutboxEntry) error
	Fail(entry OutboxEntry, maxAttempts int) (bool, error)
	DeadLetters(limit int) ([]OutboxEntry, error)
}

// OutboxEntry is an event waiting to be delivered, with the number of
// failed deliveries so far.
type OutboxEntry struct {
	Event    event.Event
	Attempts int
	key      []byte
}

type OutboxRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewOutboxRepository(db *badger.DB, log *slog.Logger) OutboxRepository {
	return OutboxRepository{db: db, log: log}
}

type diskOutboxEntry struct {
	ID             string           `cbor:"id"`
	Type           event.Type       `cbor:"type"`
	OrganizationID string           `cbor:"org"`
	CreatedAt      time.Time        `cbor:"at"`
	Payload        codec.RawMessage `cbor:"payload"`
	Attempts       int              `cbor:"attempts"`
}

func outboxKey(evt event.Event) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", outboxPendingPrefix, padded(evt.CreatedAt), evt.ID))
}

// putOutbox records evt inside the caller's transaction, so the event
// exists if and only if the state change that produced it committed.
func putOutbox(txn *badger.Txn, evt event.Event) error {
	disk, err := fromEvent(evt, 0)
	if err != nil {
		return err
	}
	return setValue(txn, outboxKey(evt), disk)
}

// Pending returns undelivered events, oldest first.
func (o OutboxRepository) Pending(limit int) ([]OutboxEntry, error) {
	return o.list(outboxPendingPrefix, limit)
}

func (o OutboxRepository) DeadLetters(limit int) ([]OutboxEntry, error) {
	return o.list(outboxDeadPrefix, limit)
}

func (o OutboxRepository) list(prefix string, limit int) ([]OutboxEntry, error) {
	var entries []OutboxEntry
	var undecodable [][]byte
	err := o.db.View(func(txn *badger.Txn) error {
		return scanForward(txn, []byte(prefix), func(key, val []byte) (bool, error) {
			evt, attempts, err := decodeEntry(val)
			if err != nil {
				o.log.Error("Undecodable outbox entry", "key", string(key), "error", err)
				undecodable = append(undecodable, key)
				return true, nil
			}
			entries = append(entries, OutboxEntry{Event: evt, Attempts: attempts, key: key})
			return limit <= 0 || len(entries) < limit, nil
		})
	})
	if err != nil {
		return nil, err
	}
	if prefix == outboxPendingPrefix {
		for _, key := range undecodable {
			if err := o.bury(key); err != nil {
				return entries, err
			}
		}
	}
	return entries, nil
}

func decodeEntry(val []byte) (event.Event, int, error) {
	var disk diskOutboxEntry
	if err := codec.Unmarshal(val, &disk); err != nil {
		return event.Event{}, 0, err
	}
	evt, err := toEvent(disk)
	return evt, disk.Attempts, err
}

// bury moves a pending entry that can never be delivered to the
// dead-letter prefix, keeping its raw value.
func (o OutboxRepository) bury(key []byte) error {
	dead := []byte(outboxDeadPrefix + strings.TrimPrefix(string(key), outboxPendingPrefix))
	return update(o.db, func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if err := txn.Set(dead, val); err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

func (o OutboxRepository) Ack(entry OutboxEntry) error {
	return update(o.db, func(txn *badger.Txn) error {
		return txn.Delete(entry.key)
	})
}

// Fail counts a failed delivery. Once maxAttempts is reached the entry
// moves to the dead-letter prefix and Fail returns true.
func (o OutboxRepository) Fail(entry OutboxEntry, maxAttempts int) (bool, error) {
	attempts := entry.Attempts + 1
	disk, err := fromEvent(entry.Event, attempts)
	if err != nil {
		return false, err
	}
	dead := maxAttempts > 0 && attempts >= maxAttempts
	err = update(o.db, func(txn *badger.Txn) error {
		if !dead {
			return setValue(txn, entry.key, disk)
		}
		if err := txn.Delete(entry.key); err != nil {
			return err
		}
		return setValue(txn, []byte(outboxDeadPrefix+entry.Event.ID.String()), disk)
	})
	return dead, err
}

func fromEvent(evt event.Event, attempts int) (diskOutboxEntry, error) {
	payload, err := codec.Marshal(evt.Payload)
	if err != nil {
		return diskOutboxEntry{}, fmt.Errorf("marshal %s payload: %w", evt.Type, err)
	}
	return diskOutboxEntry{
		ID:             evt.ID.String(),
		Type:           evt.Type,
		OrganizationID: evt.OrganizationID,
		CreatedAt:      evt.CreatedAt,
		Payload:        payload,
		Attempts:       attempts,
	}, nil
}

func toEvent(disk diskOutboxEntry) (event.Event, error) {
	id, err := uuid.Parse(disk.ID)
	if err != nil {
		return event.Event{}, err
	}
	payload, err := decodePayload(disk.Type, disk.Payload)
	if err != nil {
		return event.Event{}, err
	}
	return event.Event{
		ID:             id,
		Type:           disk.Type,
		OrganizationID: disk.OrganizationID,
		CreatedAt:      disk.CreatedAt,
		Payload:        payload,
	}, nil
}

func decodePayload(t event.Type, raw []byte) (event.Payload, error) {
	switch t {
	case event.MessagePostedType:
		var p event.MessagePosted
		err := codec.Unmarshal(raw, &p)
		return p, err
	case event.TicketAssignedType:
		var p event.TicketAssigned
		err := codec.Unmarshal(raw, &p)
		return p, err
	case event.DocumentStatusChangedType:
		var p event.DocumentStatusChanged
		err := codec.Unmarshal(raw, &p)
		return p, err
	case event.FeedbackSubmittedType:
		var p event.FeedbackSubmitted
		err := codec.Unmarshal(raw, &p)
		return p, err
	case event.ReportSubmittedType:
		var p event.ReportSubmitted
		err := codec.Unmarshal(raw, &p)
		return p, err
	default:
		return nil, fmt.Errorf("%w: unknown event type %q", errors.ErrInvalidPayload, t)
	}
}
