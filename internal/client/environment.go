package client

import (
	"context"

	"github.com/questx-lab/marketplace/internal/model"
)

type ContractCaller interface {
	// Call synchronously runs function of target inside the current operation,
	// with the current contract as caller. req and resp are JSON encoded.
	Call(ctx context.Context, target, function string, coins uint64, req, resp any) error
}

// Environment is everything the host offers to contract code.
type Environment interface {
	ContractCaller

	// TransferCoins moves coins from the current contract to an address.
	TransferCoins(ctx context.Context, to string, amount uint64) error
	Balance(ctx context.Context, address string) (uint64, error)

	// GenerateEvent and SendMessage take effect only if the operation commits.
	GenerateEvent(ctx context.Context, name string, data any) error
	SendMessage(ctx context.Context, msg *model.ScheduledMessage) error
}
