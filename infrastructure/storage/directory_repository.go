//go:generate go run go.uber.org/mock/mockgen -source=directory_repository.go -destination=../../mocks/mock_directory_repository.go -package=mocks
package storage

import (
	"collab-hub/domain"
	"collab-hub/errors"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// IDirectoryRepository is the tenant directory: users and projects.
type IDirectoryRepository interface {
	SaveUser(user domain.User) error
	GetUser(organizationID, userID string) (domain.User, error)
	ListByOrganization(organizationID string) ([]domain.User, error)
	SaveProject(project domain.Project) error
	GetProject(projectID string) (domain.Project, error)
}

type DirectoryRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDirectoryRepository(db *badger.DB, log *slog.Logger) DirectoryRepository {
	return DirectoryRepository{db: db, log: log}
}

type diskUser struct {
	ID             string `cbor:"id"`
	OrganizationID string `cbor:"org"`
	Name           string `cbor:"name"`
	Avatar         string `cbor:"avatar,omitempty"`
	Email          string `cbor:"email,omitempty"`
	Role           string `cbor:"role"`
}

type diskProject struct {
	ID             string   `cbor:"id"`
	OrganizationID string   `cbor:"org"`
	Name           string   `cbor:"name"`
	ClientIDs      []string `cbor:"client_ids"`
}

func userPrefix(organizationID string) string {
	return fmt.Sprintf("user:%s:", segment(organizationID))
}

func userKey(organizationID, userID string) []byte {
	return []byte(userPrefix(organizationID) + userID)
}

func projectKey(projectID string) []byte {
	return []byte("project:" + projectID)
}

func (d DirectoryRepository) SaveUser(user domain.User) error {
	return update(d.db, func(txn *badger.Txn) error {
		return setValue(txn, userKey(user.OrganizationID, user.ID), diskUser{
			ID:             user.ID,
			OrganizationID: user.OrganizationID,
			Name:           user.Name,
			Avatar:         user.Avatar,
			Email:          user.Email,
			Role:           string(user.Role),
		})
	})
}

func (d DirectoryRepository) GetUser(organizationID, userID string) (domain.User, error) {
	var disk diskUser
	err := d.db.View(func(txn *badger.Txn) error {
		return getValue(txn, userKey(organizationID, userID), &disk)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return toUser(disk), nil
}

// ListByOrganization returns every user of a tenant ordered by id.
func (d DirectoryRepository) ListByOrganization(organizationID string) ([]domain.User, error) {
	var users []domain.User
	err := d.db.View(func(txn *badger.Txn) error {
		return scanForward(txn, []byte(userPrefix(organizationID)), func(key, val []byte) (bool, error) {
			var disk diskUser
			if err := unmarshalValue(key, val, &disk); err != nil {
				return false, err
			}
			if disk.OrganizationID != organizationID {
				return true, nil
			}
			users = append(users, toUser(disk))
			return true, nil
		})
	})
	return users, err
}

func (d DirectoryRepository) SaveProject(project domain.Project) error {
	return update(d.db, func(txn *badger.Txn) error {
		return setValue(txn, projectKey(project.ID), diskProject{
			ID:             project.ID,
			OrganizationID: project.OrganizationID,
			Name:           project.Name,
			ClientIDs:      project.ClientIDs,
		})
	})
}

func (d DirectoryRepository) GetProject(projectID string) (domain.Project, error) {
	var disk diskProject
	err := d.db.View(func(txn *badger.Txn) error {
		return getValue(txn, projectKey(projectID), &disk)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Project{}, errors.ErrProjectNotFound
	}
	if err != nil {
		return domain.Project{}, err
	}
	return domain.Project{
		ID:             disk.ID,
		OrganizationID: disk.OrganizationID,
		Name:           disk.Name,
		ClientIDs:      disk.ClientIDs,
	}, nil
}

func toUser(disk diskUser) domain.User {
	return domain.User{
		ID:             disk.ID,
		OrganizationID: disk.OrganizationID,
		Name:           disk.Name,
		Avatar:         disk.Avatar,
		Email:          disk.Email,
		Role:           domain.Role(disk.Role),
	}
}
