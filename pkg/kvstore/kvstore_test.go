package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newStores(t *testing.T) map[string]Store {
	badger, err := NewBadgerStore("")
	require.NoError(t, err)
	t.Cleanup(func() { badger.Close() })

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every connection of an in-memory sqlite has its own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))

	return map[string]Store{
		"memory": NewMemoryStore(),
		"badger": badger,
		"gorm":   NewGormStore(db),
	}
}

func TestStore_CommitAndRollback(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			tx, err := store.Begin(ctx)
			require.NoError(t, err)
			require.NoError(t, tx.Set([]byte("a"), []byte("1")))
			require.NoError(t, tx.Set([]byte("b"), []byte("2")))

			v, err := tx.Get([]byte("a"))
			require.NoError(t, err)
			require.Equal(t, []byte("1"), v)
			require.NoError(t, tx.Commit())

			tx, err = store.Begin(ctx)
			require.NoError(t, err)
			require.NoError(t, tx.Set([]byte("a"), []byte("3")))
			require.NoError(t, tx.Delete([]byte("b")))
			require.NoError(t, tx.Rollback())

			tx, err = store.Begin(ctx)
			require.NoError(t, err)
			defer tx.Rollback()

			v, err = tx.Get([]byte("a"))
			require.NoError(t, err)
			require.Equal(t, []byte("1"), v)

			ok, err := tx.Has([]byte("b"))
			require.NoError(t, err)
			require.True(t, ok)

			_, err = tx.Get([]byte("c"))
			require.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_DeleteAndOverwrite(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			tx, err := store.Begin(context.Background())
			require.NoError(t, err)
			defer tx.Rollback()

			require.NoError(t, tx.Set([]byte("k"), []byte("1")))
			require.NoError(t, tx.Set([]byte("k"), []byte("2")))

			v, err := tx.Get([]byte("k"))
			require.NoError(t, err)
			require.Equal(t, []byte("2"), v)

			require.NoError(t, tx.Delete([]byte("k")))
			ok, err := tx.Has([]byte("k"))
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestTx_Closed(t *testing.T) {
	tx, err := NewMemoryStore().Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	require.ErrorIs(t, tx.Commit(), ErrTxClosed)
	require.ErrorIs(t, tx.Rollback(), ErrTxClosed)
	require.ErrorIs(t, tx.Set([]byte("a"), nil), ErrTxClosed)
}

func TestPrefix(t *testing.T) {
	tx, err := NewMemoryStore().Begin(context.Background())
	require.NoError(t, err)

	a := Prefix(tx, "ab")
	b := Prefix(tx, "a")

	require.NoError(t, a.Set([]byte("c"), []byte("1")))

	// "ab"+"c" and "a"+"bc" must not collide.
	_, err = b.Get([]byte("bc"))
	require.ErrorIs(t, err, ErrNotFound)

	v, err := a.Get([]byte("c"))
	require.NoError(t, err)
	require.Equal(t, []byte("1"), v)

	ok, err := tx.Has([]byte("c"))
	require.NoError(t, err)
	require.False(t, ok)
}
