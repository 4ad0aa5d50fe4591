package main

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/questx-lab/marketplace/internal/client"
	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCall(ctx *cli.Context) error {
	cfg := xcontext.Configs(s.ctx)

	params := ctx.String("params")
	if !json.Valid([]byte(params)) {
		return fmt.Errorf("params is not a valid json: %s", params)
	}

	rpcClient, err := rpc.DialContext(s.ctx, cfg.Host.Endpoint())
	if err != nil {
		return err
	}

	hostCaller := client.NewHostCaller(rpcClient)
	defer hostCaller.Close()

	op := &model.Operation{
		Caller:   ctx.String("caller"),
		Target:   ctx.String("target"),
		Function: ctx.String("function"),
		Coins:    ctx.Uint64("coins"),
		Params:   json.RawMessage(params),
	}

	var result any
	if ctx.Bool("read") {
		result, err = hostCaller.Read(s.ctx, op)
	} else {
		result, err = hostCaller.Execute(s.ctx, op)
	}
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(b))
	return nil
}
