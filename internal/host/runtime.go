package host

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync"
	"github.com/questx-lab/marketplace/internal/common"
	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/pkg/clock"
	"github.com/questx-lab/marketplace/pkg/errorx"
	"github.com/questx-lab/marketplace/pkg/pubsub"
	"github.com/questx-lab/marketplace/pkg/router"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

// Runtime executes operations against the registered contracts. Operations run
// one at a time, each in its own KV transaction: either everything it did is
// committed or nothing is.
type Runtime struct {
	mutex     sync.Mutex
	contracts *xsync.MapOf[string, *router.Router]

	clock     clock.Clock
	queue     MessageQueue
	publisher pubsub.Publisher
}

func NewRuntime(clock clock.Clock, queue MessageQueue, publisher pubsub.Publisher) *Runtime {
	if publisher == nil {
		publisher = pubsub.NewNopPublisher()
	}

	return &Runtime{
		contracts: xsync.NewMapOf[*router.Router](),
		clock:     clock,
		queue:     queue,
		publisher: publisher,
	}
}

// Register binds the code of a contract to an address. The contract is not
// callable until it is deployed.
func (r *Runtime) Register(address string, contract *router.Router) error {
	if address == "" || strings.HasPrefix(address, "$") {
		return errorx.New(errorx.BadRequest, "Invalid contract address %q", address)
	}

	if _, loaded := r.contracts.LoadOrStore(address, contract); loaded {
		return errorx.New(errorx.AlreadyExists, "Contract %s is already registered", address)
	}

	return nil
}

// Environment returns the host functions offered to contract code.
func (r *Runtime) Environment() *environment {
	return &environment{runtime: r}
}

// Deploy runs the constructor of a registered contract. A contract can only be
// deployed once.
func (r *Runtime) Deploy(
	ctx context.Context, deployer, address string, coins uint64, params any,
) (*model.Receipt, error) {
	b, err := json.Marshal(params)
	if err != nil {
		return nil, errorx.Wrap(errorx.BadRequest, err, "Invalid constructor params")
	}

	return r.run(ctx, &model.Operation{
		Caller:   deployer,
		Target:   address,
		Function: router.Constructor,
		Coins:    coins,
		Params:   b,
	}, true)
}

func (r *Runtime) IsDeployed(ctx context.Context, address string) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ctx, err := xcontext.WithKVTransaction(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot begin transaction: %v", err)
		return false, errorx.Unknown
	}
	defer xcontext.WithRollbackKVTransaction(ctx)

	return isDeployed(xcontext.KVTransaction(ctx), address)
}

// Execute runs an operation submitted from outside the host. Contracts hold
// no keys, so an external operation can never act as a contract.
func (r *Runtime) Execute(ctx context.Context, op *model.Operation) (*model.Receipt, error) {
	if op.Function == router.Constructor {
		return nil, errorx.New(errorx.PermissionDenied, "Constructor can only be called at deployment")
	}

	if r.isContract(op.Caller) {
		return nil, errorx.New(errorx.PermissionDenied, "Caller %s is a contract address", op.Caller)
	}

	return r.run(ctx, op, false)
}

// Deliver runs a scheduled message as a call of its target to itself. It is
// the only way for a contract to be the caller of a top-level operation.
func (r *Runtime) Deliver(ctx context.Context, msg *model.ScheduledMessage) (*model.Receipt, error) {
	if msg.Function == router.Constructor {
		return nil, errorx.New(errorx.PermissionDenied, "Constructor can only be called at deployment")
	}

	if _, ok := r.contracts.Load(msg.Target); !ok {
		return nil, errorx.New(errorx.NotFound, "Contract %s does not exist", msg.Target)
	}

	return r.run(ctx, &model.Operation{
		Caller:   msg.Target,
		Target:   msg.Target,
		Function: msg.Function,
		Params:   msg.Params,
	}, false)
}

func (r *Runtime) isContract(address string) bool {
	if strings.HasPrefix(address, "$") {
		return true
	}

	_, ok := r.contracts.Load(address)
	return ok
}

// Read runs a call and discards everything it wrote.
func (r *Runtime) Read(ctx context.Context, op *model.Operation) (json.RawMessage, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ctx = xcontext.WithTimestamp(ctx, r.clock.UnixMilli())
	ctx, err := xcontext.WithKVTransaction(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot begin transaction: %v", err)
		return nil, errorx.Unknown
	}
	defer xcontext.WithRollbackKVTransaction(ctx)

	ctx = withJournal(ctx, &journal{})
	return r.call(ctx, op.Caller, op.Target, op.Function, 0, op.Params, false)
}

// Credit mints coins to an address.
func (r *Runtime) Credit(ctx context.Context, address string, amount uint64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ctx, err := xcontext.WithKVTransaction(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot begin transaction: %v", err)
		return errorx.Unknown
	}
	defer xcontext.WithRollbackKVTransaction(ctx)

	if err := newLedger(xcontext.KVTransaction(ctx)).credit(address, amount); err != nil {
		return err
	}

	return xcontext.WithCommitKVTransaction(ctx)
}

func (r *Runtime) Balance(ctx context.Context, address string) (uint64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ctx, err := xcontext.WithKVTransaction(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot begin transaction: %v", err)
		return 0, errorx.Unknown
	}
	defer xcontext.WithRollbackKVTransaction(ctx)

	return newLedger(xcontext.KVTransaction(ctx)).balance(address)
}

func (r *Runtime) run(ctx context.Context, op *model.Operation, deploying bool) (*model.Receipt, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	start := time.Now()
	defer func() {
		common.PromHistograms[common.ContractCallDurationSecond].
			WithLabelValues(op.Function).Observe(time.Since(start).Seconds())
	}()

	receipt, err := r.runTx(ctx, op, deploying)
	if err != nil {
		common.PromCounters[common.ContractCallFailure].
			WithLabelValues(op.Function, errorx.CodeOf(err).String()).Inc()
		xcontext.Logger(ctx).Debugf("Operation %s of %s failed: %v", op.Function, op.Target, err)
		return nil, err
	}

	return receipt, nil
}

func (r *Runtime) runTx(ctx context.Context, op *model.Operation, deploying bool) (*model.Receipt, error) {
	if op.Caller == "" {
		return nil, errorx.New(errorx.BadRequest, "Empty caller")
	}

	j := &journal{txID: uuid.NewString(), timestamp: r.clock.UnixMilli()}
	ctx = xcontext.WithTimestamp(ctx, j.timestamp)
	ctx = withJournal(ctx, j)

	ctx, err := xcontext.WithKVTransaction(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot begin transaction: %v", err)
		return nil, errorx.Unknown
	}
	defer xcontext.WithRollbackKVTransaction(ctx)

	tx := xcontext.KVTransaction(ctx)
	if deploying {
		deployed, err := isDeployed(tx, op.Target)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot check deployment of %s: %v", op.Target, err)
			return nil, errorx.Unknown
		}

		if deployed {
			return nil, errorx.New(errorx.AlreadyExists, "Contract %s is already deployed", op.Target)
		}

		if err := markDeployed(tx, op.Target); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot mark %s as deployed: %v", op.Target, err)
			return nil, errorx.Unknown
		}
	}

	if err := newLedger(tx).transfer(op.Caller, op.Target, op.Coins); err != nil {
		return nil, err
	}

	result, err := r.call(ctx, op.Caller, op.Target, op.Function, op.Coins, op.Params, deploying)
	if err != nil {
		return nil, err
	}

	if err := xcontext.WithCommitKVTransaction(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit operation %s: %v", j.txID, err)
		return nil, errorx.Unknown
	}

	r.flush(ctx, j)

	events := j.events
	if events == nil {
		events = []model.Event{}
	}

	return &model.Receipt{
		TxID:      j.txID,
		Timestamp: j.timestamp,
		Result:    result,
		Events:    events,
	}, nil
}

func (r *Runtime) call(
	ctx context.Context,
	caller, target, function string,
	coins uint64,
	params json.RawMessage,
	deploying bool,
) (json.RawMessage, error) {
	contract, ok := r.contracts.Load(target)
	if !ok {
		return nil, errorx.New(errorx.NotFound, "Contract %s does not exist", target)
	}

	for _, address := range xcontext.CallStack(ctx) {
		if address == target {
			return nil, errorx.New(errorx.PermissionDenied, "Contract %s is already on the call stack", target)
		}
	}

	tx := xcontext.KVTransaction(ctx)
	if !deploying {
		deployed, err := isDeployed(tx, target)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot check deployment of %s: %v", target, err)
			return nil, errorx.Unknown
		}

		if !deployed {
			return nil, errorx.New(errorx.NotFound, "Contract %s is not deployed", target)
		}
	}

	ctx = xcontext.WithCallFrame(ctx, xcontext.CallFrame{
		Caller:    caller,
		Callee:    target,
		Coins:     coins,
		Deploying: deploying,
	})
	ctx = xcontext.WithKV(ctx, contractStorage(tx, target))

	return contract.Dispatch(ctx, function, params)
}

// flush publishes what the committed operation produced. The operation is
// already durable, failures here are only logged.
func (r *Runtime) flush(ctx context.Context, j *journal) {
	topic := xcontext.Configs(ctx).Kafka.EventTopic
	for _, event := range j.events {
		xcontext.Logger(ctx).Infof("Event %s from %s: %s", event.Name, event.Contract, event.Data)

		if isSettlementEvent(event.Name) {
			common.PromCounters[common.SettlementTotal].WithLabelValues(event.Name).Inc()
		}

		b, err := json.Marshal(event)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot encode event: %v", err)
			continue
		}

		err = r.publisher.Publish(ctx, topic, &pubsub.Pack{Key: []byte(event.Contract), Msg: b})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot publish event %s: %v", event.Name, err)
		}
	}

	for _, msg := range j.messages {
		if r.queue == nil {
			xcontext.Logger(ctx).Warnf("No message queue, drop message %s", msg.ID)
			continue
		}

		if err := r.queue.Push(ctx, msg); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot push scheduled message %s: %v", msg.ID, err)
			common.PromCounters[common.ScheduledMessageTotal].WithLabelValues("lost").Inc()
			continue
		}

		common.PromCounters[common.ScheduledMessageTotal].WithLabelValues("scheduled").Inc()
	}
}

func isSettlementEvent(name string) bool {
	switch name {
	case model.SellOfferEvent, model.RemoveSellOfferEvent, model.BuyOfferEvent,
		model.DeleteOfferEvent, model.ExpireOfferEvent:
		return true
	}

	return false
}
