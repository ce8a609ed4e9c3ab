package test_utils

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/koffeecuptales/timeleft/internal/storage"
	"github.com/stretchr/testify/require"
)

// OpenTestStore opens a throwaway Badger store in a temporary directory.
// The store is closed automatically when the test finishes.
func OpenTestStore(t *testing.T) *storage.BadgerStore {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	return storage.NewBadgerStore(db)
}
