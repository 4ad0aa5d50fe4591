package deliveries

import (
	"context"

	"github.com/questx-lab/marketplace/internal/common"
	"github.com/questx-lab/marketplace/pkg/router"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

func logCall(ctx context.Context, function string) (context.Context, error) {
	xcontext.Logger(ctx).Debugf("Call %s of %s from %s with %d coins",
		function, xcontext.Callee(ctx), xcontext.Caller(ctx), xcontext.TransferredCoins(ctx))
	return ctx, nil
}

func countCall(contract string) router.MiddlewareFunc {
	return func(ctx context.Context, function string) (context.Context, error) {
		common.PromCounters[common.ContractCallTotal].WithLabelValues(contract, function).Inc()
		return ctx, nil
	}
}
