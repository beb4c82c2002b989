//go:generate go run go.uber.org/mock/mockgen -source=channel_repository.go -destination=../../mocks/mock_channel_repository.go -package=mocks
package storage

import (
	"collab-hub/domain"
	"collab-hub/errors"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const channelPrefix = "chan:"

type IChannelRepository interface {
	GetChannel(id domain.ChannelID) (domain.Channel, error)
	CreateIfAbsent(channel domain.Channel) (domain.Channel, bool, error)
	UpdatePreview(id domain.ChannelID, preview domain.Preview) error
}

type ChannelRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewChannelRepository(db *badger.DB, log *slog.Logger) ChannelRepository {
	return ChannelRepository{db: db, log: log}
}

type diskChannel struct {
	ID             string     `cbor:"id"`
	ProjectID      string     `cbor:"project_id"`
	OrganizationID string     `cbor:"org"`
	ProjectName    string     `cbor:"project_name"`
	Members        []string   `cbor:"members"`
	CreatedAt      time.Time  `cbor:"created_at"`
	PreviewText    string     `cbor:"preview_text,omitempty"`
	PreviewAt      *time.Time `cbor:"preview_at,omitempty"`
}

func channelKey(id domain.ChannelID) []byte {
	return []byte(channelPrefix + string(id))
}

func (c ChannelRepository) GetChannel(id domain.ChannelID) (domain.Channel, error) {
	var disk diskChannel
	err := c.db.View(func(txn *badger.Txn) error {
		return getValue(txn, channelKey(id), &disk)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Channel{}, errors.ErrChannelNotFound
	}
	if err != nil {
		return domain.Channel{}, err
	}
	return toChannel(disk), nil
}

// CreateIfAbsent writes channel unless a document already exists under its
// id. The existing document wins: it is returned with created=false.
// Two concurrent creators conflict at commit and the replayed transaction
// sees the first writer's document.
func (c ChannelRepository) CreateIfAbsent(channel domain.Channel) (domain.Channel, bool, error) {
	var stored diskChannel
	var created bool
	err := update(c.db, func(txn *badger.Txn) error {
		created = false
		key := channelKey(channel.ID)
		err := getValue(txn, key, &stored)
		if err == nil {
			return nil
		}
		if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		stored = fromChannel(channel)
		created = true
		return setValue(txn, key, stored)
	})
	if err != nil {
		return domain.Channel{}, false, err
	}
	if created {
		c.log.Debug("Channel created", "channel_id", channel.ID, "members", len(channel.Members))
	}
	return toChannel(stored), created, nil
}

// UpdatePreview replaces the last-message preview unless the stored one
// is already newer.
func (c ChannelRepository) UpdatePreview(id domain.ChannelID, preview domain.Preview) error {
	return update(c.db, func(txn *badger.Txn) error {
		var disk diskChannel
		if err := getValue(txn, channelKey(id), &disk); err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return errors.ErrChannelNotFound
			}
			return err
		}
		if disk.PreviewAt != nil && disk.PreviewAt.After(preview.At) {
			return nil
		}
		at := preview.At
		disk.PreviewText = preview.Text
		disk.PreviewAt = &at
		return setValue(txn, channelKey(id), disk)
	})
}

func fromChannel(ch domain.Channel) diskChannel {
	disk := diskChannel{
		ID:             string(ch.ID),
		ProjectID:      ch.ProjectID,
		OrganizationID: ch.OrganizationID,
		ProjectName:    ch.ProjectName,
		Members:        ch.Members,
		CreatedAt:      ch.CreatedAt,
	}
	if ch.LastMessage != nil {
		at := ch.LastMessage.At
		disk.PreviewText = ch.LastMessage.Text
		disk.PreviewAt = &at
	}
	return disk
}

func toChannel(disk diskChannel) domain.Channel {
	ch := domain.Channel{
		ID:             domain.ChannelID(disk.ID),
		ProjectID:      disk.ProjectID,
		OrganizationID: disk.OrganizationID,
		ProjectName:    disk.ProjectName,
		Members:        disk.Members,
		CreatedAt:      disk.CreatedAt.UTC(),
	}
	if disk.PreviewAt != nil {
		ch.LastMessage = &domain.Preview{Text: disk.PreviewText, At: disk.PreviewAt.UTC()}
	}
	return ch
}
