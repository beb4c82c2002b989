package main

import (
	"collab-hub/auth"
	"collab-hub/domain"
	pb "collab-hub/infrastructure/grpc/api"
	"collab-hub/infrastructure/grpc/client"
	"collab-hub/infrastructure/storage"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
)

func tokenCommand(config Config, args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("token", pflag.ContinueOnError)
	secret := flags.String("secret", config.JWTSecret, "HS256 signing secret")
	userID := flags.String("user", "", "user id")
	org := flags.String("org", "", "organization id")
	name := flags.String("name", "", "display name")
	role := flags.String("role", string(domain.RoleAdmin), "admin, member or client")
	ttl := flags.Duration("ttl", time.Hour, "token lifetime")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *userID == "" || *org == "" {
		return fmt.Errorf("--user and --org are required")
	}

	token, err := mint(*secret, *ttl, domain.User{ID: *userID, OrganizationID: *org, Name: *name, Role: domain.Role(*role)})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}

// sweepCommand calls DeleteExpired as a short-lived admin of org.
func sweepCommand(config Config, args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("sweep", pflag.ContinueOnError)
	addr := flags.String("addr", config.HubAddr, "hub gRPC address")
	secret := flags.String("secret", config.JWTSecret, "HS256 signing secret")
	org := flags.String("org", "", "organization of the admin identity")
	timeout := flags.Duration("timeout", 30*time.Second, "call timeout")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *org == "" {
		return fmt.Errorf("--org is required")
	}

	token, err := mint(*secret, time.Minute, domain.User{ID: "admin-cli", OrganizationID: *org, Name: "admin cli", Role: domain.RoleAdmin})
	if err != nil {
		return err
	}
	hub, err := client.Dial(*addr, token)
	if err != nil {
		return err
	}
	defer func() { _ = hub.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	res, err := hub.Notifications.DeleteExpired(ctx, &pb.DeleteExpiredRequest{})
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	fmt.Fprintln(out, color.Green.Sprintf("%d expired notifications deleted", res.Deleted))
	return nil
}

func inspectCommand(config Config, args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	dbPath := flags.String("db", config.BadgerFilepath, "path to the badger directory")
	prefix := flags.String("prefix", "", "key prefix, empty lists the known prefixes")
	limit := flags.Int("limit", 50, "maximum rows, 0 for all")
	if err := flags.Parse(args); err != nil {
		return err
	}

	db, err := openReadOnly(*dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if *prefix == "" {
		table := newTable(out, "Prefix", "Entries")
		for _, p := range storage.Prefixes {
			rows, err := storage.Scan(db, p, 0)
			if err != nil {
				return err
			}
			table.Append([]string{p, strconv.Itoa(len(rows))})
		}
		table.Render()
		return nil
	}

	rows, err := storage.Scan(db, *prefix, *limit)
	if err != nil {
		return err
	}
	table := newTable(out, "Key", "Kind", "Detail")
	for _, row := range rows {
		table.Append([]string{row.Key, row.Kind, row.Detail})
	}
	table.Render()
	fmt.Fprintln(out, color.Cyan.Sprintf("%d rows under %q", len(rows), *prefix))
	return nil
}

func seedCommand(config Config, args []string, out io.Writer) error {
	flags := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	dbPath := flags.String("db", config.BadgerFilepath, "path to the badger directory")
	file := flags.String("file", "seed.json", "JSON file with users and projects")
	if err := flags.Parse(args); err != nil {
		return err
	}

	f, err := os.Open(*file)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLogger(nil))
	if err != nil {
		return fmt.Errorf("open badger: %w", err)
	}
	defer func() { _ = db.Close() }()

	counts, err := seed(db, f)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, color.Green.Sprintf("seeded %d users, %d projects, %d documents, %d tickets",
		counts.Users, counts.Projects, counts.Documents, counts.Tickets))
	return nil
}

func mint(secret string, ttl time.Duration, user domain.User) (string, error) {
	tokens, err := auth.NewTokenManager(secret, ttl)
	if err != nil {
		return "", err
	}
	return tokens.Generate(user)
}

func openReadOnly(path string) (*badger.DB, error) {
	db, err := badger.Open(badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open badger read-only (is the hub still running?): %w", err)
	}
	return db, nil
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
