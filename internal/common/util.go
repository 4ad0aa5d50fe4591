package common

import (
	"context"

	"github.com/questx-lab/marketplace/pkg/xcontext"
)

// Batch splits a into two slices. DO NOT write on the returned value.
func Batch[T any](a *[]T, n int) []T {
	if len(*a) > n {
		batch := (*a)[:n]
		*a = (*a)[n:]
		return batch
	}

	b := (*a)
	*a = (*a)[:0]
	return b
}

// DetectBottleneck is used to write a warning message when the pending queue
// size is too large for the number of processed elements.
func DetectBottleneck[T any](ctx context.Context, processed, queue []T, reason string) {
	processedSize := len(processed)
	queueSize := len(queue)
	if processedSize > 0 && queueSize > 5*processedSize {
		xcontext.Logger(ctx).Warnf("Bottleneck detected when %s, ratio=%d", reason, queueSize/processedSize)
	}
}
