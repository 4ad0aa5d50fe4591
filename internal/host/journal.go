package host

import (
	"context"

	"github.com/questx-lab/marketplace/internal/model"
)

type journalKey struct{}

// journal buffers the side effects of an operation which must not be visible
// before it commits.
type journal struct {
	txID      string
	timestamp uint64
	events    []model.Event
	messages  []*model.ScheduledMessage
}

func withJournal(ctx context.Context, j *journal) context.Context {
	return context.WithValue(ctx, journalKey{}, j)
}

func journalOf(ctx context.Context) *journal {
	j := ctx.Value(journalKey{})
	if j == nil {
		return nil
	}

	return j.(*journal)
}
