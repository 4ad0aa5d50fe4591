package host

import (
	"context"

	"github.com/questx-lab/marketplace/pkg/errorx"
	"github.com/questx-lab/marketplace/pkg/kvstore"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

const (
	genesisNamespace = "$genesis"
	genesisKey       = "applied"
)

// Allocation is a balance minted by the genesis.
type Allocation struct {
	Address string
	Amount  uint64
}

func (r *Runtime) IsGenesisApplied(ctx context.Context) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ctx, err := xcontext.WithKVTransaction(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot begin transaction: %v", err)
		return false, errorx.Unknown
	}
	defer xcontext.WithRollbackKVTransaction(ctx)

	return kvstore.Prefix(xcontext.KVTransaction(ctx), genesisNamespace).Has([]byte(genesisKey))
}

// CompleteGenesis mints every allocation and marks the genesis as applied, in
// a single transaction. It must be the last step of the genesis, so a failed
// start can be retried without minting twice.
func (r *Runtime) CompleteGenesis(ctx context.Context, allocations []Allocation) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ctx, err := xcontext.WithKVTransaction(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot begin transaction: %v", err)
		return errorx.Unknown
	}
	defer xcontext.WithRollbackKVTransaction(ctx)

	tx := xcontext.KVTransaction(ctx)
	marker := kvstore.Prefix(tx, genesisNamespace)

	applied, err := marker.Has([]byte(genesisKey))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check genesis marker: %v", err)
		return errorx.Unknown
	}

	if applied {
		return errorx.New(errorx.AlreadyExists, "Genesis is already applied")
	}

	l := newLedger(tx)
	for _, a := range allocations {
		if err := l.credit(a.Address, a.Amount); err != nil {
			return err
		}
	}

	if err := marker.Set([]byte(genesisKey), []byte{1}); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set genesis marker: %v", err)
		return errorx.Unknown
	}

	return xcontext.WithCommitKVTransaction(ctx)
}
