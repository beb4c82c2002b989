package main

import (
	"collab-hub/domain"
	"collab-hub/infrastructure/storage"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

type seedFile struct {
	Users []struct {
		ID             string `json:"id"`
		OrganizationID string `json:"organization_id"`
		Name           string `json:"name"`
		Avatar         string `json:"avatar"`
		Email          string `json:"email"`
		Role           string `json:"role"`
	} `json:"users"`
	Projects []struct {
		ID             string   `json:"id"`
		OrganizationID string   `json:"organization_id"`
		Name           string   `json:"name"`
		ClientIDs      []string `json:"client_ids"`
	} `json:"projects"`
	Documents []struct {
		ID        string `json:"id"`
		Kind      string `json:"kind"`
		ProjectID string `json:"project_id"`
		ClientID  string `json:"client_id"`
		Title     string `json:"title"`
	} `json:"documents"`
	Tickets []struct {
		ID         string `json:"id"`
		ProjectID  string `json:"project_id"`
		Title      string `json:"title"`
		AssigneeID string `json:"assignee_id"`
	} `json:"tickets"`
}

type seedCounts struct {
	Users, Projects, Documents, Tickets int
}

// seed writes the directory entries of r. Documents start as drafts and
// inherit the organization of their project.
func seed(db *badger.DB, r io.Reader) (seedCounts, error) {
	var file seedFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return seedCounts{}, fmt.Errorf("decode seed file: %w", err)
	}

	log := logs.GetLoggerFromLevel(slog.LevelWarn)
	directory := storage.NewDirectoryRepository(db, log)
	documents := storage.NewDocumentRepository(db, log)
	tickets := storage.NewTicketRepository(db, log)
	now := time.Now().UTC()
	var counts seedCounts

	for _, u := range file.Users {
		role := domain.Role(u.Role)
		if role != domain.RoleAdmin && role != domain.RoleMember && role != domain.RoleClient {
			return counts, fmt.Errorf("user %s: unknown role %q", u.ID, u.Role)
		}
		if err := directory.SaveUser(domain.User{ID: u.ID, OrganizationID: u.OrganizationID, Name: u.Name,
			Avatar: u.Avatar, Email: u.Email, Role: role}); err != nil {
			return counts, err
		}
		counts.Users++
	}

	organizations := make(map[string]string, len(file.Projects))
	for _, p := range file.Projects {
		if err := directory.SaveProject(domain.Project{ID: p.ID, OrganizationID: p.OrganizationID,
			Name: p.Name, ClientIDs: p.ClientIDs}); err != nil {
			return counts, err
		}
		organizations[p.ID] = p.OrganizationID
		counts.Projects++
	}

	for _, d := range file.Documents {
		org, ok := organizations[d.ProjectID]
		if !ok {
			return counts, fmt.Errorf("document %s: project %s is not in the seed file", d.ID, d.ProjectID)
		}
		if err := documents.SaveDocument(domain.Document{ID: d.ID, Kind: domain.DocumentKind(d.Kind), OrganizationID: org,
			ProjectID: d.ProjectID, ClientID: d.ClientID, Title: d.Title, Status: domain.StatusDraft, UpdatedAt: now}); err != nil {
			return counts, err
		}
		counts.Documents++
	}

	for _, t := range file.Tickets {
		org, ok := organizations[t.ProjectID]
		if !ok {
			return counts, fmt.Errorf("ticket %s: project %s is not in the seed file", t.ID, t.ProjectID)
		}
		if err := tickets.SaveTicket(domain.Ticket{ID: t.ID, OrganizationID: org, ProjectID: t.ProjectID,
			Title: t.Title, AssigneeID: t.AssigneeID, UpdatedAt: now}); err != nil {
			return counts, err
		}
		counts.Tickets++
	}
	return counts, nil
}
