package host

import (
	"context"
	"encoding/json"

	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/pkg/errorx"
)

// RPCService exposes the runtime on a go-ethereum rpc server. Requests run
// with the root context of the host, the request context only carries the
// deadline of the http call.
type RPCService struct {
	rootCtx context.Context
	runtime *Runtime
}

func NewRPCService(rootCtx context.Context, runtime *Runtime) *RPCService {
	return &RPCService{rootCtx: rootCtx, runtime: runtime}
}

func (s *RPCService) Execute(_ context.Context, op model.Operation) (*model.Receipt, error) {
	if op.Target == "" || op.Function == "" {
		return nil, errorx.New(errorx.BadRequest, "Target and function are required")
	}

	return s.runtime.Execute(s.rootCtx, &op)
}

func (s *RPCService) Read(_ context.Context, op model.Operation) (json.RawMessage, error) {
	if op.Target == "" || op.Function == "" {
		return nil, errorx.New(errorx.BadRequest, "Target and function are required")
	}

	return s.runtime.Read(s.rootCtx, &op)
}

func (s *RPCService) Balance(_ context.Context, req model.BalanceRequest) (*model.BalanceResponse, error) {
	balance, err := s.runtime.Balance(s.rootCtx, req.Address)
	if err != nil {
		return nil, err
	}

	return &model.BalanceResponse{Address: req.Address, Balance: balance}, nil
}
