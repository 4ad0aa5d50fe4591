package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

type HostCaller interface {
	Execute(ctx context.Context, op *model.Operation) (*model.Receipt, error)
	Read(ctx context.Context, op *model.Operation) (json.RawMessage, error)
	Balance(ctx context.Context, address string) (uint64, error)
	Close()
}

type hostCaller struct {
	client *rpc.Client
}

func NewHostCaller(client *rpc.Client) *hostCaller {
	return &hostCaller{client: client}
}

func (c *hostCaller) Execute(ctx context.Context, op *model.Operation) (*model.Receipt, error) {
	var result model.Receipt
	if err := c.client.CallContext(ctx, &result, c.fname(ctx, "execute"), op); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *hostCaller) Read(ctx context.Context, op *model.Operation) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.client.CallContext(ctx, &result, c.fname(ctx, "read"), op); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *hostCaller) Balance(ctx context.Context, address string) (uint64, error) {
	var result model.BalanceResponse
	err := c.client.CallContext(ctx, &result, c.fname(ctx, "balance"), &model.BalanceRequest{Address: address})
	if err != nil {
		return 0, err
	}

	return result.Balance, nil
}

func (c *hostCaller) Close() {
	c.client.Close()
}

func (c *hostCaller) fname(ctx context.Context, funcName string) string {
	return fmt.Sprintf("%s_%s", xcontext.Configs(ctx).Host.RPCName, funcName)
}
