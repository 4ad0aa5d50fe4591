// Package kvstore is the persistent key/value storage of the contract host.
// Every write happens inside a transaction which is either committed as a
// whole or rolled back without leaving any trace.
package kvstore

import (
	"context"
	"encoding/binary"
	"errors"
)

var (
	ErrNotFound = errors.New("key not found")
	ErrTxClosed = errors.New("transaction is already closed")
)

type Reader interface {
	// Get returns ErrNotFound if the key doesn't exist.
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
}

type ReadWriter interface {
	Reader
	Set(key, value []byte) error
	Delete(key []byte) error
}

type Tx interface {
	ReadWriter
	Commit() error
	Rollback() error
}

type Store interface {
	Begin(ctx context.Context) (Tx, error)
	Close() error
}

type prefixed struct {
	inner  ReadWriter
	prefix []byte
}

// Prefix returns a view of rw where every key is transparently namespaced. The
// prefix is length-prefixed, so two different namespaces never overlap.
func Prefix(rw ReadWriter, namespace string) ReadWriter {
	prefix := binary.AppendUvarint(nil, uint64(len(namespace)))
	prefix = append(prefix, namespace...)
	return &prefixed{inner: rw, prefix: prefix}
}

func (p *prefixed) key(key []byte) []byte {
	k := make([]byte, 0, len(p.prefix)+len(key))
	k = append(k, p.prefix...)
	return append(k, key...)
}

func (p *prefixed) Get(key []byte) ([]byte, error) {
	return p.inner.Get(p.key(key))
}

func (p *prefixed) Has(key []byte) (bool, error) {
	return p.inner.Has(p.key(key))
}

func (p *prefixed) Set(key, value []byte) error {
	return p.inner.Set(p.key(key), value)
}

func (p *prefixed) Delete(key []byte) error {
	return p.inner.Delete(p.key(key))
}
