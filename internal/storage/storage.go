package storage

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/koffeecuptales/timeleft/internal/config"
)

// Store is the narrow key-value surface the rest of the application sees.
// Each Set replaces the whole value for a key in one transaction, so a
// concurrent reader observes either the old bytes or the new ones, never
// a partial write.
type Store interface {
	// Get returns the stored bytes and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Open opens the shared Badger database at the configured directory.
func Open(cfg config.Storage) (*BadgerStore, error) {
	opts := badger.DefaultOptions(cfg.Dir).WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage at %s: %w", cfg.Dir, err)
	}
	return &BadgerStore{db: db}, nil
}

// NewBadgerStore wraps an already opened Badger database. Used by tests
// that open the database in a temporary directory.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

type BadgerStore struct {
	db *badger.DB
}

func (s *BadgerStore) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *BadgerStore) Set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *BadgerStore) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
