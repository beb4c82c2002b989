package storage

import (
	"collab-hub/domain"
	"collab-hub/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Directory_Users_Are_Scoped_By_Organization(t *testing.T) {
	req := require.New(t)
	repository := NewDirectoryRepository(openDB(t), testLogger)
	users := []domain.User{
		{ID: "a1", OrganizationID: "org-1", Name: "Ann", Role: domain.RoleAdmin},
		{ID: "c1", OrganizationID: "org-1", Name: "Carl", Role: domain.RoleClient, Email: "carl@example.com"},
		{ID: "a9", OrganizationID: "org-2", Name: "Zed", Role: domain.RoleAdmin},
	}
	for _, u := range users {
		req.NoError(repository.SaveUser(u))
	}

	listed, err := repository.ListByOrganization("org-1")
	req.NoError(err)
	req.Equal(users[:2], listed)

	user, err := repository.GetUser("org-1", "c1")
	req.NoError(err)
	req.Equal("carl@example.com", user.Email)

	_, err = repository.GetUser("org-1", "a9")
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func Test_Directory_Projects(t *testing.T) {
	req := require.New(t)
	repository := NewDirectoryRepository(openDB(t), testLogger)
	project := domain.Project{ID: "p1", OrganizationID: "org-1", Name: "Website", ClientIDs: []string{"c1"}}
	req.NoError(repository.SaveProject(project))

	stored, err := repository.GetProject("p1")
	req.NoError(err)
	req.Equal(project, stored)

	_, err = repository.GetProject("nope")
	req.ErrorIs(err, errors.ErrProjectNotFound)
}

func Test_Directory_Organization_Ids_Sharing_A_Prefix_Stay_Apart(t *testing.T) {
	req := require.New(t)
	repository := NewDirectoryRepository(openDB(t), testLogger)
	ann := domain.User{ID: "a1", OrganizationID: "acme", Name: "Ann", Role: domain.RoleAdmin}
	eve := domain.User{ID: "eve", OrganizationID: "acme:eu", Name: "Eve", Role: domain.RoleAdmin}
	req.NoError(repository.SaveUser(ann))
	req.NoError(repository.SaveUser(eve))

	listed, err := repository.ListByOrganization("acme")
	req.NoError(err)
	req.Equal([]domain.User{ann}, listed)

	listed, err = repository.ListByOrganization("acme:eu")
	req.NoError(err)
	req.Equal([]domain.User{eve}, listed)

	_, err = repository.GetUser("acme", "eu:eve")
	req.ErrorIs(err, errors.ErrUserNotFound)
}
