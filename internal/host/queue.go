package host

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"sync"

	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/pkg/xcontext"
	"github.com/questx-lab/marketplace/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

// MessageQueue holds scheduled messages until their start time.
type MessageQueue interface {
	Push(ctx context.Context, msg *model.ScheduledMessage) error

	// PopDue removes and returns at most limit messages whose start time is not
	// after now, earliest first.
	PopDue(ctx context.Context, now uint64, limit int) ([]*model.ScheduledMessage, error)
}

type memoryMessageQueue struct {
	mutex    sync.Mutex
	messages []*model.ScheduledMessage
}

func NewMemoryMessageQueue() *memoryMessageQueue {
	return &memoryMessageQueue{}
}

func (q *memoryMessageQueue) Push(_ context.Context, msg *model.ScheduledMessage) error {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	i := sort.Search(len(q.messages), func(i int) bool {
		return q.messages[i].StartTime > msg.StartTime
	})

	q.messages = append(q.messages, nil)
	copy(q.messages[i+1:], q.messages[i:])
	q.messages[i] = msg
	return nil
}

func (q *memoryMessageQueue) PopDue(_ context.Context, now uint64, limit int) ([]*model.ScheduledMessage, error) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	n := 0
	for n < len(q.messages) && n < limit && q.messages[n].StartTime <= now {
		n++
	}

	due := make([]*model.ScheduledMessage, n)
	copy(due, q.messages[:n])
	q.messages = q.messages[n:]
	return due, nil
}

func (q *memoryMessageQueue) Len() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	return len(q.messages)
}

// redisMessageQueue keeps messages in a sorted set scored by start time. A
// message belongs to whoever removes it from the set, so many hosts can share
// the same queue.
type redisMessageQueue struct {
	client xredis.Client
	key    string
}

func NewRedisMessageQueue(client xredis.Client, key string) *redisMessageQueue {
	return &redisMessageQueue{client: client, key: key}
}

func (q *redisMessageQueue) Push(ctx context.Context, msg *model.ScheduledMessage) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return q.client.ZAdd(ctx, q.key, redis.Z{Score: float64(msg.StartTime), Member: string(b)})
}

func (q *redisMessageQueue) PopDue(ctx context.Context, now uint64, limit int) ([]*model.ScheduledMessage, error) {
	members, err := q.client.ZRangeByScore(ctx, q.key, "-inf", strconv.FormatUint(now, 10), limit)
	if err != nil {
		return nil, err
	}

	due := make([]*model.ScheduledMessage, 0, len(members))
	for _, member := range members {
		removed, err := q.client.ZRem(ctx, q.key, member)
		if err != nil {
			return due, err
		}

		// Another host took it.
		if removed == 0 {
			continue
		}

		var msg model.ScheduledMessage
		if err := json.Unmarshal([]byte(member), &msg); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot decode scheduled message, drop it: %v", err)
			continue
		}

		due = append(due, &msg)
	}

	return due, nil
}
