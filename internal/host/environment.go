package host

import (
	"context"
	"encoding/json"

	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/pkg/errorx"
	"github.com/questx-lab/marketplace/pkg/kvstore"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

func contractStorage(tx kvstore.ReadWriter, address string) kvstore.ReadWriter {
	return kvstore.Prefix(tx, address)
}

// environment implements client.Environment on top of the operation being
// executed by the runtime.
type environment struct {
	runtime *Runtime
}

func (e *environment) Call(ctx context.Context, target, function string, coins uint64, req, resp any) error {
	tx := xcontext.KVTransaction(ctx)
	if tx == nil {
		return errorx.New(errorx.Internal, "Call outside of an operation")
	}

	params, err := json.Marshal(req)
	if err != nil {
		return errorx.Wrap(errorx.BadRequest, err, "Cannot encode params of %s", function)
	}

	caller := xcontext.Callee(ctx)
	if err := newLedger(tx).transfer(caller, target, coins); err != nil {
		return err
	}

	result, err := e.runtime.call(ctx, caller, target, function, coins, params, false)
	if err != nil {
		return err
	}

	if resp != nil && len(result) > 0 {
		if err := json.Unmarshal(result, resp); err != nil {
			return errorx.Wrap(errorx.Internal, err, "Cannot decode result of %s", function)
		}
	}

	return nil
}

func (e *environment) TransferCoins(ctx context.Context, to string, amount uint64) error {
	tx := xcontext.KVTransaction(ctx)
	if tx == nil {
		return errorx.New(errorx.Internal, "Transfer outside of an operation")
	}

	if to == "" {
		return errorx.New(errorx.BadRequest, "Empty recipient")
	}

	return newLedger(tx).transfer(xcontext.Callee(ctx), to, amount)
}

func (e *environment) Balance(ctx context.Context, address string) (uint64, error) {
	tx := xcontext.KVTransaction(ctx)
	if tx == nil {
		return 0, errorx.New(errorx.Internal, "Balance outside of an operation")
	}

	return newLedger(tx).balance(address)
}

func (e *environment) GenerateEvent(ctx context.Context, name string, data any) error {
	j := journalOf(ctx)
	if j == nil {
		return errorx.New(errorx.Internal, "Event outside of an operation")
	}

	b, err := json.Marshal(data)
	if err != nil {
		return errorx.Wrap(errorx.Internal, err, "Cannot encode event %s", name)
	}

	var id int64
	if node := xcontext.SnowFlake(ctx); node != nil {
		id = node.Generate().Int64()
	}

	j.events = append(j.events, model.Event{
		ID:        id,
		TxID:      j.txID,
		Contract:  xcontext.Callee(ctx),
		Name:      name,
		Data:      b,
		Timestamp: j.timestamp,
	})

	return nil
}

// SendMessage only accepts messages to the contract itself.
func (e *environment) SendMessage(ctx context.Context, msg *model.ScheduledMessage) error {
	j := journalOf(ctx)
	if j == nil {
		return errorx.New(errorx.Internal, "Message outside of an operation")
	}

	if msg.Target != xcontext.Callee(ctx) {
		return errorx.New(errorx.PermissionDenied, "A contract can only send messages to itself")
	}

	if msg.EndTime < msg.StartTime {
		return errorx.New(errorx.BadRequest, "Message window ends before it starts")
	}

	j.messages = append(j.messages, msg)
	return nil
}
