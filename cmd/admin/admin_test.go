package main

import (
	"bytes"
	"collab-hub/domain"
	"collab-hub/infrastructure/storage"
	"log/slog"
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const seedJSON = `{
  "users": [
    {"id": "c1", "organization_id": "org-1", "name": "Carl", "email": "carl@example.com", "role": "client"},
    {"id": "a1", "organization_id": "org-1", "name": "Ada", "role": "admin"}
  ],
  "projects": [{"id": "P", "organization_id": "org-1", "name": "Website", "client_ids": ["c1"]}],
  "documents": [{"id": "inv-1", "kind": "invoice", "project_id": "P", "client_id": "c1", "title": "March"}],
  "tickets": [{"id": "t-1", "project_id": "P", "title": "Fix footer"}]
}`

func TestSeed(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer func() { _ = db.Close() }()

	counts, err := seed(db, strings.NewReader(seedJSON))
	req.NoError(err)
	req.Equal(seedCounts{Users: 2, Projects: 1, Documents: 1, Tickets: 1}, counts)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	users, err := storage.NewDirectoryRepository(db, log).ListByOrganization("org-1")
	req.NoError(err)
	req.Len(users, 2)
	doc, err := storage.NewDocumentRepository(db, log).GetDocument(domain.KindInvoice, "inv-1")
	req.NoError(err)
	req.Equal("org-1", doc.OrganizationID)
	req.Equal(domain.StatusDraft, doc.Status)
}

func TestSeed_Rejects_Unknown_Role(t *testing.T) {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = seed(db, strings.NewReader(`{"users": [{"id": "u", "organization_id": "o", "role": "owner"}]}`))
	require.Error(t, err)
}

func TestRun_Token(t *testing.T) {
	req := require.New(t)
	t.Setenv("JWT_SECRET", "a-test-secret-that-is-long-enough-for-hs256")
	t.Setenv("ADMIN_COLOURS", "false")
	var out bytes.Buffer

	code, err := run([]string{"token", "--user", "a1", "--org", "org-1"}, &out)
	req.NoError(err)
	req.Equal(exitOK, code)
	req.Len(strings.Split(strings.TrimSpace(out.String()), "."), 3)

	code, err = run([]string{"token"}, &out)
	req.Error(err)
	req.Equal(exitRuntime, code)

	code, err = run([]string{"unknown"}, &out)
	req.Error(err)
	req.Equal(exitConfig, code)
}
