package storage

import (
	"collab-hub/infrastructure/codec"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// Prefixes lists the key spaces of the store, for inspection tools.
var Prefixes = []string{
	"user:", "project:", channelPrefix, "msg:", notificationPrefix,
	"doc:", "ticket:", "report:", outboxPendingPrefix, outboxDeadPrefix,
}

// Row is one decoded entry of the store.
type Row struct {
	Key    string
	Kind   string
	Detail string
}

// Describe decodes a raw entry for display. Index entries carry no value.
func Describe(key string, val []byte) Row {
	row := Row{Key: key, Kind: kindOf(key)}
	if len(val) == 0 {
		return row
	}
	var v any
	if err := codec.Unmarshal(val, &v); err != nil {
		row.Detail = "undecodable: " + err.Error()
		return row
	}
	row.Detail = fmt.Sprintf("%v", v)
	return row
}

// Scan visits up to limit entries under prefix in key order. A limit
// of zero or less means no limit.
func Scan(db *badger.DB, prefix string, limit int) ([]Row, error) {
	var rows []Row
	err := db.View(func(txn *badger.Txn) error {
		return scanForward(txn, []byte(prefix), func(key, val []byte) (bool, error) {
			rows = append(rows, Describe(string(key), val))
			return limit <= 0 || len(rows) < limit, nil
		})
	})
	return rows, err
}

func kindOf(key string) string {
	if strings.HasPrefix(key, "idx:") {
		return "index"
	}
	for _, p := range []string{outboxPendingPrefix, outboxDeadPrefix} {
		if strings.HasPrefix(key, p) {
			return strings.TrimSuffix(p, ":")
		}
	}
	kind, _, _ := strings.Cut(key, ":")
	return kind
}
