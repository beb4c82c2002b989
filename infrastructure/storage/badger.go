// Package storage persists the hub's documents in BadgerDB.
// Values are CBOR encoded. Keys embed zero-padded nanosecond timestamps so
// that a prefix scan returns records in chronological order.
package storage

import (
	"collab-hub/infrastructure/codec"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// maxConflictRetries bounds how often an optimistic transaction is replayed
// after another writer committed to a key it read.
const maxConflictRetries = 5

// update runs fn in a read-write transaction and replays it on commit
// conflicts. Replaying re-reads every key, so a conditional write observes
// the winner's value on the next attempt.
func update(db *badger.DB, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		err = db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

func getValue(txn *badger.Txn, key []byte, v any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return codec.Unmarshal(val, v)
	})
}

func unmarshalValue(key, val []byte, v any) error {
	if err := codec.Unmarshal(val, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func setValue(txn *badger.Txn, key []byte, v any) error {
	data, err := codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set(key, data)
}

func exists(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

// segment length-prefixes a caller-supplied id used inside a key, so that
// ids containing ':' cannot extend the prefix of another id.
func segment(id string) string {
	return fmt.Sprintf("%d:%s", len(id), id)
}

// padded formats a timestamp on 19 digits so lexicographic and
// chronological order agree.
func padded(t time.Time) string {
	return fmt.Sprintf("%019d", t.UnixNano())
}

// scanLatest walks keys under prefix from the newest one backwards and
// stops after limit values (limit <= 0 means no limit).
func scanLatest(txn *badger.Txn, prefix []byte, limit int, visit func(key, val []byte) error) error {
	options := badger.DefaultIteratorOptions
	options.Reverse = true
	options.Prefix = prefix
	it := txn.NewIterator(options)
	defer it.Close()

	// 0xFF sorts after every digit, so the seek lands on the newest key.
	seekKey := append(append([]byte{}, prefix...), 0xFF)
	count := 0
	for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
		if limit > 0 && count == limit {
			break
		}
		item := it.Item()
		key := item.KeyCopy(nil)
		if err := item.Value(func(val []byte) error {
			return visit(key, val)
		}); err != nil {
			return err
		}
		count++
	}
	return nil
}

// scanForward walks keys under prefix in ascending order until visit
// returns false.
func scanForward(txn *badger.Txn, prefix []byte, visit func(key, val []byte) (bool, error)) error {
	options := badger.DefaultIteratorOptions
	options.Prefix = prefix
	it := txn.NewIterator(options)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		key := item.KeyCopy(nil)
		var more bool
		err := item.Value(func(val []byte) error {
			var err error
			more, err = visit(key, val)
			return err
		})
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	return nil
}
