//go:generate go run go.uber.org/mock/mockgen -source=notification_repository.go -destination=../../mocks/mock_notification_repository.go -package=mocks
package storage

import (
	"collab-hub/domain"
	"collab-hub/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	notificationPrefix   = "notif:"
	recipientIndexPrefix = "idx:notif:rcpt:"
	expiryIndexPrefix    = "idx:notif:exp:"
	// sweepBatchSize keeps each delete transaction well under Badger's
	// transaction size limit.
	sweepBatchSize = 500
)

type INotificationRepository interface {
	StoreNotification(notification domain.Notification) error
	GetNotification(id uuid.UUID) (domain.Notification, error)
	MarkRead(id uuid.UUID) (domain.Notification, error)
	MarkAllRead(recipientID string) (int, error)
	GetLatestNotifications(recipientID string, limit int) ([]domain.Notification, error)
	DeleteExpired(now time.Time) ([]domain.Notification, error)
}

type NotificationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewNotificationRepository(db *badger.DB, log *slog.Logger) NotificationRepository {
	return NotificationRepository{db: db, log: log}
}

type diskNotification struct {
	ID          string    `cbor:"id"`
	RecipientID string    `cbor:"recipient_id"`
	Message     string    `cbor:"message"`
	Read        bool      `cbor:"read"`
	CreatedAt   time.Time `cbor:"created_at"`
	ExpiresAt   time.Time `cbor:"expires_at"`
	TicketID    string    `cbor:"ticket_id,omitempty"`
	ProposalID  string    `cbor:"proposal_id,omitempty"`
	InvoiceID   string    `cbor:"invoice_id,omitempty"`
	ReportID    string    `cbor:"report_id,omitempty"`
	ChatID      string    `cbor:"chat_id,omitempty"`
	ProjectID   string    `cbor:"project_id,omitempty"`
	ProjectName string    `cbor:"project_name,omitempty"`
}

func notificationKey(id uuid.UUID) []byte {
	return []byte(notificationPrefix + id.String())
}

func recipientPrefix(recipientID string) string {
	return fmt.Sprintf("%s%s:", recipientIndexPrefix, segment(recipientID))
}

func recipientKey(n domain.Notification) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", recipientPrefix(n.RecipientID), padded(n.CreatedAt), n.ID))
}

func expiryKey(n domain.Notification) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", expiryIndexPrefix, padded(n.ExpiresAt), n.ID))
}

// StoreNotification writes the record and both of its index entries
// atomically.
func (r NotificationRepository) StoreNotification(n domain.Notification) error {
	return update(r.db, func(txn *badger.Txn) error {
		if err := setValue(txn, notificationKey(n.ID), fromNotification(n)); err != nil {
			return err
		}
		if err := txn.Set(recipientKey(n), []byte(n.ID.String())); err != nil {
			return err
		}
		return txn.Set(expiryKey(n), []byte(n.ID.String()))
	})
}

func (r NotificationRepository) GetNotification(id uuid.UUID) (domain.Notification, error) {
	var disk diskNotification
	err := r.db.View(func(txn *badger.Txn) error {
		return getValue(txn, notificationKey(id), &disk)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Notification{}, errors.ErrNotificationNotFound
	}
	if err != nil {
		return domain.Notification{}, err
	}
	return toNotification(disk)
}

// MarkRead sets the read flag. Marking an already read notification is
// a no-op that still succeeds.
func (r NotificationRepository) MarkRead(id uuid.UUID) (domain.Notification, error) {
	var disk diskNotification
	err := update(r.db, func(txn *badger.Txn) error {
		if err := getValue(txn, notificationKey(id), &disk); err != nil {
			return err
		}
		if disk.Read {
			return nil
		}
		disk.Read = true
		return setValue(txn, notificationKey(id), disk)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Notification{}, errors.ErrNotificationNotFound
	}
	if err != nil {
		return domain.Notification{}, err
	}
	return toNotification(disk)
}

func (r NotificationRepository) MarkAllRead(recipientID string) (int, error) {
	var marked int
	err := update(r.db, func(txn *badger.Txn) error {
		marked = 0
		var ids []uuid.UUID
		err := scanLatest(txn, []byte(recipientPrefix(recipientID)), 0, func(_, val []byte) error {
			id, err := uuid.ParseBytes(val)
			if err != nil {
				return err
			}
			ids = append(ids, id)
			return nil
		})
		if err != nil {
			return err
		}
		for _, id := range ids {
			var disk diskNotification
			if err := getValue(txn, notificationKey(id), &disk); err != nil {
				return err
			}
			if disk.Read || disk.RecipientID != recipientID {
				continue
			}
			disk.Read = true
			if err := setValue(txn, notificationKey(id), disk); err != nil {
				return err
			}
			marked++
		}
		return nil
	})
	return marked, err
}

// GetLatestNotifications returns a recipient's notifications, newest first.
func (r NotificationRepository) GetLatestNotifications(recipientID string, limit int) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.View(func(txn *badger.Txn) error {
		var ids []uuid.UUID
		err := scanLatest(txn, []byte(recipientPrefix(recipientID)), limit, func(_, val []byte) error {
			id, err := uuid.ParseBytes(val)
			if err != nil {
				return err
			}
			ids = append(ids, id)
			return nil
		})
		if err != nil {
			return err
		}
		for _, id := range ids {
			var disk diskNotification
			if err := getValue(txn, notificationKey(id), &disk); err != nil {
				return err
			}
			if disk.RecipientID != recipientID {
				continue
			}
			n, err := toNotification(disk)
			if err != nil {
				return err
			}
			notifications = append(notifications, n)
		}
		return nil
	})
	return notifications, err
}

// DeleteExpired removes every notification whose expiry is strictly before
// now and returns the removed records. It walks the expiry index in order
// and stops at the first entry that is still alive.
func (r NotificationRepository) DeleteExpired(now time.Time) ([]domain.Notification, error) {
	var deleted []domain.Notification
	cutoff := now.UnixNano()
	for {
		batch, err := r.deleteExpiredBatch(cutoff)
		if err != nil {
			return deleted, err
		}
		deleted = append(deleted, batch...)
		if len(batch) < sweepBatchSize {
			return deleted, nil
		}
	}
}

func (r NotificationRepository) deleteExpiredBatch(cutoff int64) ([]domain.Notification, error) {
	var batch []domain.Notification
	err := update(r.db, func(txn *badger.Txn) error {
		batch = batch[:0]
		var expired [][]byte
		err := scanForward(txn, []byte(expiryIndexPrefix), func(key, _ []byte) (bool, error) {
			expiresAt, err := expiryOf(key)
			if err != nil {
				return false, err
			}
			if expiresAt >= cutoff {
				return false, nil
			}
			expired = append(expired, key)
			return len(expired) < sweepBatchSize, nil
		})
		if err != nil {
			return err
		}
		for _, key := range expired {
			id, err := uuid.Parse(string(key[strings.LastIndexByte(string(key), ':')+1:]))
			if err != nil {
				return err
			}
			var disk diskNotification
			err = getValue(txn, notificationKey(id), &disk)
			if err != nil && !stderrors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
			if err == nil {
				n, err := toNotification(disk)
				if err != nil {
					return err
				}
				if err := txn.Delete(recipientKey(n)); err != nil {
					return err
				}
				if err := txn.Delete(notificationKey(id)); err != nil {
					return err
				}
				batch = append(batch, n)
			}
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	return batch, err
}

// expiryOf extracts the padded timestamp of an expiry index key.
func expiryOf(key []byte) (int64, error) {
	rest := strings.TrimPrefix(string(key), expiryIndexPrefix)
	ts, _, ok := strings.Cut(rest, ":")
	if !ok {
		return 0, fmt.Errorf("malformed expiry key %q", key)
	}
	return strconv.ParseInt(ts, 10, 64)
}

func fromNotification(n domain.Notification) diskNotification {
	return diskNotification{
		ID:          n.ID.String(),
		RecipientID: n.RecipientID,
		Message:     n.Message,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
		ExpiresAt:   n.ExpiresAt,
		TicketID:    n.Correlation.TicketID,
		ProposalID:  n.Correlation.ProposalID,
		InvoiceID:   n.Correlation.InvoiceID,
		ReportID:    n.Correlation.ReportID,
		ChatID:      string(n.Correlation.ChatID),
		ProjectID:   n.ProjectID,
		ProjectName: n.ProjectName,
	}
}

func toNotification(disk diskNotification) (domain.Notification, error) {
	id, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.Notification{}, err
	}
	return domain.Notification{
		ID:          id,
		RecipientID: disk.RecipientID,
		Message:     disk.Message,
		Read:        disk.Read,
		CreatedAt:   disk.CreatedAt.UTC(),
		ExpiresAt:   disk.ExpiresAt.UTC(),
		Correlation: domain.Correlation{
			TicketID:   disk.TicketID,
			ProposalID: disk.ProposalID,
			InvoiceID:  disk.InvoiceID,
			ReportID:   disk.ReportID,
			ChatID:     domain.ChannelID(disk.ChatID),
		},
		ProjectID:   disk.ProjectID,
		ProjectName: disk.ProjectName,
	}, nil
}
