package kvstore

import (
	"context"
	"errors"
	"fmt"
	"os"

	badgerdb "github.com/dgraph-io/badger/v3"
)

type badgerStore struct {
	db *badgerdb.DB
}

// NewBadgerStore opens a badger database at path. An empty path opens an
// in-memory database.
func NewBadgerStore(path string) (*badgerStore, error) {
	var opts badgerdb.Options
	if path == "" {
		opts = badgerdb.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, 0700); err != nil {
			return nil, fmt.Errorf("cannot create badger directory: %w", err)
		}
		opts = badgerdb.DefaultOptions(path).WithSyncWrites(true)
	}

	db, err := badgerdb.Open(opts.WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("cannot open badger: %w", err)
	}

	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Begin(context.Context) (Tx, error) {
	return &badgerTx{txn: s.db.NewTransaction(true)}, nil
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}

type badgerTx struct {
	txn    *badgerdb.Txn
	closed bool
}

func (tx *badgerTx) Get(key []byte) ([]byte, error) {
	if tx.closed {
		return nil, ErrTxClosed
	}

	item, err := tx.txn.Get(key)
	if err != nil {
		if errors.Is(err, badgerdb.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return item.ValueCopy(nil)
}

func (tx *badgerTx) Has(key []byte) (bool, error) {
	_, err := tx.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}

	return err == nil, err
}

func (tx *badgerTx) Set(key, value []byte) error {
	if tx.closed {
		return ErrTxClosed
	}

	return tx.txn.Set(clone(key), clone(value))
}

func (tx *badgerTx) Delete(key []byte) error {
	if tx.closed {
		return ErrTxClosed
	}

	return tx.txn.Delete(clone(key))
}

func (tx *badgerTx) Commit() error {
	if tx.closed {
		return ErrTxClosed
	}

	tx.closed = true
	return tx.txn.Commit()
}

func (tx *badgerTx) Rollback() error {
	if tx.closed {
		return ErrTxClosed
	}

	tx.closed = true
	tx.txn.Discard()
	return nil
}
