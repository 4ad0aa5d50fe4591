package cron

import (
	"context"
	"time"

	"github.com/questx-lab/marketplace/internal/common"
	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/pkg/clock"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

const scheduledMessageBatch = 100

type Deliverer interface {
	Deliver(ctx context.Context, msg *model.ScheduledMessage) (*model.Receipt, error)
}

type MessageSource interface {
	PopDue(ctx context.Context, now uint64, limit int) ([]*model.ScheduledMessage, error)
}

// ScheduledMessageCronJob delivers due scheduled messages as self-calls of
// their target contract.
type ScheduledMessageCronJob struct {
	deliverer Deliverer
	queue     MessageSource
	clock     clock.Clock
	interval  time.Duration
}

func NewScheduledMessageCronJob(
	deliverer Deliverer,
	queue MessageSource,
	clock clock.Clock,
	interval time.Duration,
) *ScheduledMessageCronJob {
	return &ScheduledMessageCronJob{
		deliverer: deliverer,
		queue:     queue,
		clock:     clock,
		interval:  interval,
	}
}

func (job *ScheduledMessageCronJob) Do(ctx context.Context) {
	now := job.clock.UnixMilli()

	var pending []*model.ScheduledMessage
	for {
		messages, err := job.queue.PopDue(ctx, now, scheduledMessageBatch)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot pop due messages: %v", err)
			break
		}

		pending = append(pending, messages...)
		if len(messages) < scheduledMessageBatch {
			break
		}
	}

	for len(pending) > 0 {
		batch := common.Batch(&pending, scheduledMessageBatch)
		common.DetectBottleneck(ctx, batch, pending, "delivering scheduled messages")

		for _, msg := range batch {
			job.deliver(ctx, now, msg)
		}
	}
}

func (job *ScheduledMessageCronJob) deliver(ctx context.Context, now uint64, msg *model.ScheduledMessage) {
	if msg.EndTime != 0 && now > msg.EndTime {
		xcontext.Logger(ctx).Warnf("Message %s to %s missed its window, drop it", msg.ID, msg.Target)
		common.PromCounters[common.ScheduledMessageTotal].WithLabelValues("dropped").Inc()
		return
	}

	_, err := job.deliverer.Deliver(ctx, msg)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot deliver message %s to %s: %v", msg.ID, msg.Target, err)
		common.PromCounters[common.ScheduledMessageTotal].WithLabelValues("failed").Inc()
		return
	}

	common.PromCounters[common.ScheduledMessageTotal].WithLabelValues("delivered").Inc()
}

func (job *ScheduledMessageCronJob) RunNow() bool {
	return true
}

func (job *ScheduledMessageCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
