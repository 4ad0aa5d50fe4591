package testutil

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/questx-lab/marketplace/config"
	"github.com/questx-lab/marketplace/pkg/kvstore"
	"github.com/questx-lab/marketplace/pkg/logger"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

func MockContext() context.Context {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}

	cfg := config.Default()
	cfg.Env = "test"

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewNopLogger())
	ctx = xcontext.WithSnowFlake(ctx, node)
	ctx = xcontext.WithStore(ctx, kvstore.NewMemoryStore())

	return ctx
}

// MockContextWithTx returns a context which already holds an opened KV
// transaction, as contract code always expects.
func MockContextWithTx() context.Context {
	ctx, err := xcontext.WithKVTransaction(MockContext())
	if err != nil {
		panic(err)
	}

	return ctx
}

// MockCallContext places a call frame on ctx.
func MockCallContext(ctx context.Context, caller, callee string, coins uint64) context.Context {
	return xcontext.WithCallFrame(ctx, xcontext.CallFrame{
		Caller: caller,
		Callee: callee,
		Coins:  coins,
	})
}
