package webhook

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestRedisWebhookPublisher_Publish(t *testing.T) {
	client, mr := newTestRedis(t)
	publisher := NewRedisWebhookPublisher(client)
	event := RefreshEvent{
		ID:        uuid.New(),
		Source:    "bigquery",
		Status:    "success",
		RowCount:  3,
		Timestamp: time.Date(2023, 1, 5, 10, 0, 0, 0, time.UTC),
	}

	err := publisher.Publish(context.Background(), event)
	require.NoError(t, err)

	items, err := mr.List(webhookQueueKey)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var got RefreshEvent
	require.NoError(t, json.Unmarshal([]byte(items[0]), &got))
	assert.Equal(t, event, got)
	assert.NotContains(t, items[0], `"error"`)
}

func TestRedisWebhookPublisher_PublishFIFO(t *testing.T) {
	client, _ := newTestRedis(t)
	publisher := NewRedisWebhookPublisher(client)
	ctx := context.Background()
	first := RefreshEvent{ID: uuid.New(), Status: "failed", Error: "timeout"}
	second := RefreshEvent{ID: uuid.New(), Status: "success"}

	require.NoError(t, publisher.Publish(ctx, first))
	require.NoError(t, publisher.Publish(ctx, second))

	// Воркер забирает события справа
	payload, err := client.RPop(ctx, webhookQueueKey).Result()
	require.NoError(t, err)
	var got RefreshEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &got))
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "timeout", got.Error)
}

func TestRedisWebhookPublisher_RedisDown(t *testing.T) {
	client, mr := newTestRedis(t)
	publisher := NewRedisWebhookPublisher(client)
	mr.Close()

	err := publisher.Publish(context.Background(), RefreshEvent{ID: uuid.New()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish webhook event to Redis")
}
