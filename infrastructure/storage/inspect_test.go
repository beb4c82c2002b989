package storage

import (
	"collab-hub/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScan_Decodes_Entries(t *testing.T) {
	req := require.New(t)
	db := openDB(t)
	directory := NewDirectoryRepository(db, testLogger)
	req.NoError(directory.SaveUser(domain.User{ID: "c1", OrganizationID: "org-1", Name: "Carl", Role: domain.RoleClient}))
	req.NoError(directory.SaveUser(domain.User{ID: "a1", OrganizationID: "org-1", Name: "Ada", Role: domain.RoleAdmin}))

	rows, err := Scan(db, "user:", 0)
	req.NoError(err)
	req.Len(rows, 2)
	for _, row := range rows {
		req.Equal("user", row.Kind)
		req.NotEmpty(row.Detail)
	}

	rows, err = Scan(db, "user:", 1)
	req.NoError(err)
	req.Len(rows, 1)
}

func TestDescribe(t *testing.T) {
	req := require.New(t)
	req.Equal("index", Describe("idx:notif:rcpt:a1:x", nil).Kind)
	req.Equal("outbox:dead", Describe("outbox:dead:0001", nil).Kind)
	req.Equal("chan", Describe("chan:abc", nil).Kind)
	req.Contains(Describe("chan:abc", []byte{0xff}).Detail, "undecodable")
}
