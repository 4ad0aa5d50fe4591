package xcontext

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/questx-lab/marketplace/config"
	"github.com/questx-lab/marketplace/pkg/kvstore"
	"github.com/questx-lab/marketplace/pkg/logger"
)

type (
	configsKey   struct{}
	loggerKey    struct{}
	snowflakeKey struct{}
	storeKey     struct{}
	txKey        struct{}
	kvKey        struct{}
)

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg := ctx.Value(configsKey{})
	if cfg == nil {
		return config.Default()
	}

	return cfg.(config.Configs)
}

func WithLogger(ctx context.Context, logger logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func Logger(ctx context.Context) logger.Logger {
	l := ctx.Value(loggerKey{})
	if l == nil {
		return logger.NewNopLogger()
	}

	return l.(logger.Logger)
}

func WithSnowFlake(ctx context.Context, node *snowflake.Node) context.Context {
	return context.WithValue(ctx, snowflakeKey{}, node)
}

func SnowFlake(ctx context.Context) *snowflake.Node {
	node := ctx.Value(snowflakeKey{})
	if node == nil {
		return nil
	}

	return node.(*snowflake.Node)
}

func WithStore(ctx context.Context, store kvstore.Store) context.Context {
	return context.WithValue(ctx, storeKey{}, store)
}

func Store(ctx context.Context) kvstore.Store {
	store := ctx.Value(storeKey{})
	if store == nil {
		return nil
	}

	return store.(kvstore.Store)
}

// WithKVTransaction begins a transaction on the store of context. Every KV
// access through the returned context goes through this transaction until it
// is committed or rolled back.
func WithKVTransaction(ctx context.Context) (context.Context, error) {
	store := Store(ctx)
	if store == nil {
		return ctx, errors.New("no store in context")
	}

	tx, err := store.Begin(ctx)
	if err != nil {
		return ctx, err
	}

	ctx = context.WithValue(ctx, txKey{}, tx)
	return WithKV(ctx, tx), nil
}

func WithCommitKVTransaction(ctx context.Context) error {
	tx := KVTransaction(ctx)
	if tx == nil {
		return nil
	}

	return tx.Commit()
}

// WithRollbackKVTransaction is a no-op if the transaction was already
// committed.
func WithRollbackKVTransaction(ctx context.Context) {
	if tx := KVTransaction(ctx); tx != nil {
		_ = tx.Rollback()
	}
}

func KVTransaction(ctx context.Context) kvstore.Tx {
	tx := ctx.Value(txKey{})
	if tx == nil {
		return nil
	}

	return tx.(kvstore.Tx)
}

// WithKV replaces the storage view seen by contract code, for example by a
// view namespaced to the current contract.
func WithKV(ctx context.Context, rw kvstore.ReadWriter) context.Context {
	return context.WithValue(ctx, kvKey{}, rw)
}

func KV(ctx context.Context) kvstore.ReadWriter {
	rw := ctx.Value(kvKey{})
	if rw == nil {
		return nil
	}

	return rw.(kvstore.ReadWriter)
}
