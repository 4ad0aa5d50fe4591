package kvstore

import (
	"context"
	"sync"
)

type memoryStore struct {
	mutex sync.RWMutex
	data  map[string][]byte
}

// NewMemoryStore returns a store which keeps everything in memory. It is used
// by tests and by local hosts which don't need durability.
func NewMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Begin(context.Context) (Tx, error) {
	return &memoryTx{store: s, writes: make(map[string][]byte)}, nil
}

func (s *memoryStore) Close() error {
	return nil
}

func (s *memoryStore) get(key string) ([]byte, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.data[key]
	return value, ok
}

type memoryTx struct {
	store  *memoryStore
	closed bool

	// A nil value marks a deleted key.
	writes map[string][]byte
}

func (tx *memoryTx) Get(key []byte) ([]byte, error) {
	if tx.closed {
		return nil, ErrTxClosed
	}

	if value, ok := tx.writes[string(key)]; ok {
		if value == nil {
			return nil, ErrNotFound
		}
		return clone(value), nil
	}

	value, ok := tx.store.get(string(key))
	if !ok {
		return nil, ErrNotFound
	}

	return clone(value), nil
}

func (tx *memoryTx) Has(key []byte) (bool, error) {
	_, err := tx.Get(key)
	if err == ErrNotFound {
		return false, nil
	}

	return err == nil, err
}

func (tx *memoryTx) Set(key, value []byte) error {
	if tx.closed {
		return ErrTxClosed
	}

	if value == nil {
		value = []byte{}
	}

	tx.writes[string(key)] = clone(value)
	return nil
}

func (tx *memoryTx) Delete(key []byte) error {
	if tx.closed {
		return ErrTxClosed
	}

	tx.writes[string(key)] = nil
	return nil
}

func (tx *memoryTx) Commit() error {
	if tx.closed {
		return ErrTxClosed
	}
	tx.closed = true

	tx.store.mutex.Lock()
	defer tx.store.mutex.Unlock()

	for key, value := range tx.writes {
		if value == nil {
			delete(tx.store.data, key)
		} else {
			tx.store.data[key] = value
		}
	}

	return nil
}

func (tx *memoryTx) Rollback() error {
	if tx.closed {
		return ErrTxClosed
	}

	tx.closed = true
	tx.writes = nil
	return nil
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
