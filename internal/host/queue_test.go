package host

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/pkg/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func Test_memoryMessageQueue(t *testing.T) {
	ctx := testutil.MockContext()
	q := NewMemoryMessageQueue()

	for _, msg := range []*model.ScheduledMessage{
		{ID: "c", StartTime: 30},
		{ID: "a", StartTime: 10},
		{ID: "b", StartTime: 20},
		{ID: "a2", StartTime: 10},
	} {
		require.NoError(t, q.Push(ctx, msg))
	}

	due, err := q.PopDue(ctx, 5, 10)
	require.NoError(t, err)
	require.Empty(t, due)

	due, err = q.PopDue(ctx, 20, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "a2"}, messageIDs(due))

	due, err = q.PopDue(ctx, 100, 10)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, messageIDs(due))
	require.Zero(t, q.Len())
}

func Test_redisMessageQueue(t *testing.T) {
	ctx := testutil.MockContext()
	members := map[string]float64{}
	taken := map[string]bool{"stolen": true}

	client := &testutil.MockRedisClient{
		ZAddFunc: func(ctx context.Context, key string, z redis.Z) error {
			require.Equal(t, "queue", key)
			members[z.Member.(string)] = z.Score
			return nil
		},
		ZRangeByScoreFunc: func(ctx context.Context, key, min, max string, limit int) ([]string, error) {
			require.Equal(t, "-inf", min)
			require.Equal(t, "15", max)
			result := []string{}
			for member, score := range members {
				if score <= 15 {
					result = append(result, member)
				}
			}
			return append(result, "stolen"), nil
		},
		ZRemFunc: func(ctx context.Context, key string, ms ...string) (int64, error) {
			if taken[ms[0]] {
				return 0, nil
			}
			delete(members, ms[0])
			return 1, nil
		},
	}

	q := NewRedisMessageQueue(client, "queue")
	require.NoError(t, q.Push(ctx, &model.ScheduledMessage{ID: "a", Target: "AS1a", StartTime: 10}))
	require.NoError(t, q.Push(ctx, &model.ScheduledMessage{ID: "b", Target: "AS1a", StartTime: 20}))

	due, err := q.PopDue(ctx, 15, 10)
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, messageIDs(due))
	require.Len(t, members, 1)

	for member := range members {
		var msg model.ScheduledMessage
		require.NoError(t, json.Unmarshal([]byte(member), &msg))
		require.Equal(t, "b", msg.ID)
	}
}

func messageIDs(messages []*model.ScheduledMessage) []string {
	ids := []string{}
	for _, msg := range messages {
		ids = append(ids, msg.ID)
	}

	return ids
}
