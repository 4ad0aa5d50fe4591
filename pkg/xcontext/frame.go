package xcontext

import "context"

type (
	callerKey    struct{}
	calleeKey    struct{}
	coinsKey     struct{}
	timestampKey struct{}
	deployingKey struct{}
	callStackKey struct{}
)

// CallFrame describes the contract call being executed.
type CallFrame struct {
	Caller    string
	Callee    string
	Coins     uint64
	Deploying bool
}

func WithCallFrame(ctx context.Context, frame CallFrame) context.Context {
	ctx = context.WithValue(ctx, callerKey{}, frame.Caller)
	ctx = context.WithValue(ctx, calleeKey{}, frame.Callee)
	ctx = context.WithValue(ctx, coinsKey{}, frame.Coins)
	ctx = context.WithValue(ctx, deployingKey{}, frame.Deploying)

	parent := CallStack(ctx)
	stack := make([]string, 0, len(parent)+1)
	stack = append(stack, parent...)
	stack = append(stack, frame.Callee)
	return context.WithValue(ctx, callStackKey{}, stack)
}

// Caller returns the address of whoever called the current contract. For a
// self-call it is the address of the contract itself.
func Caller(ctx context.Context) string {
	return stringValue(ctx, callerKey{})
}

// Callee returns the address of the contract being executed.
func Callee(ctx context.Context) string {
	return stringValue(ctx, calleeKey{})
}

func TransferredCoins(ctx context.Context) uint64 {
	coins := ctx.Value(coinsKey{})
	if coins == nil {
		return 0
	}

	return coins.(uint64)
}

func IsDeploying(ctx context.Context) bool {
	deploying := ctx.Value(deployingKey{})
	if deploying == nil {
		return false
	}

	return deploying.(bool)
}

// CallStack returns the addresses of all contracts in the current call chain,
// outermost first.
func CallStack(ctx context.Context) []string {
	stack := ctx.Value(callStackKey{})
	if stack == nil {
		return nil
	}

	return stack.([]string)
}

// WithTimestamp sets the execution timestamp in milliseconds.
func WithTimestamp(ctx context.Context, ts uint64) context.Context {
	return context.WithValue(ctx, timestampKey{}, ts)
}

func Timestamp(ctx context.Context) uint64 {
	ts := ctx.Value(timestampKey{})
	if ts == nil {
		return 0
	}

	return ts.(uint64)
}

func stringValue(ctx context.Context, key any) string {
	v := ctx.Value(key)
	if v == nil {
		return ""
	}

	return v.(string)
}
