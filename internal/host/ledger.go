package host

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/questx-lab/marketplace/pkg/errorx"
	"github.com/questx-lab/marketplace/pkg/kvstore"
)

// Namespaces owned by the host. Contract addresses cannot start with '$', so
// they never overlap with a contract storage.
const (
	ledgerNamespace   = "$ledger"
	deployedNamespace = "$deployed"
)

type ledger struct {
	rw kvstore.ReadWriter
}

func newLedger(tx kvstore.ReadWriter) ledger {
	return ledger{rw: kvstore.Prefix(tx, ledgerNamespace)}
}

func (l ledger) balance(address string) (uint64, error) {
	b, err := l.rw.Get([]byte(address))
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return 0, nil
		}

		return 0, err
	}

	if len(b) != 8 {
		return 0, errorx.New(errorx.Deserialization, "Invalid balance of %s", address)
	}

	return binary.BigEndian.Uint64(b), nil
}

func (l ledger) setBalance(address string, amount uint64) error {
	if amount == 0 {
		return l.rw.Delete([]byte(address))
	}

	return l.rw.Set([]byte(address), binary.BigEndian.AppendUint64(nil, amount))
}

func (l ledger) credit(address string, amount uint64) error {
	balance, err := l.balance(address)
	if err != nil {
		return err
	}

	if balance > math.MaxUint64-amount {
		return errorx.New(errorx.Internal, "Balance of %s overflows", address)
	}

	return l.setBalance(address, balance+amount)
}

func (l ledger) transfer(from, to string, amount uint64) error {
	if amount == 0 || from == to {
		return nil
	}

	balance, err := l.balance(from)
	if err != nil {
		return err
	}

	if balance < amount {
		return errorx.New(errorx.InsufficientPayment,
			"Balance of %s is %d, cannot transfer %d", from, balance, amount)
	}

	if err := l.setBalance(from, balance-amount); err != nil {
		return err
	}

	return l.credit(to, amount)
}

func isDeployed(tx kvstore.ReadWriter, address string) (bool, error) {
	return kvstore.Prefix(tx, deployedNamespace).Has([]byte(address))
}

func markDeployed(tx kvstore.ReadWriter, address string) error {
	return kvstore.Prefix(tx, deployedNamespace).Set([]byte(address), []byte{1})
}
