package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_incidents_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRowCache(t *testing.T, ttl time.Duration) (*RowCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRowCache(client, ttl), mr
}

func TestRowCache_SetAndGet(t *testing.T) {
	cache, mr := newTestRowCache(t, 5*time.Minute)
	ctx := context.Background()
	rows := []models.RawIncident{
		{IncidentNo: "1", DateTimeOfEvent: &models.BoxedTimestamp{Value: "2023-01-05T10:00:00"}, FinalIncidentCategory: "Fire"},
		{IncidentNo: "2"},
	}

	require.NoError(t, cache.SetRows(ctx, "bigquery", rows))

	got, err := cache.GetRows(ctx, "bigquery")
	require.NoError(t, err)
	assert.Equal(t, rows, got)
	assert.Equal(t, 5*time.Minute, mr.TTL("fire_incidents:rows:bigquery"))
}

func TestRowCache_Miss(t *testing.T) {
	cache, _ := newTestRowCache(t, time.Minute)

	got, err := cache.GetRows(context.Background(), "postgres")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRowCache_Expires(t *testing.T) {
	cache, mr := newTestRowCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetRows(ctx, "bigquery", []models.RawIncident{{IncidentNo: "1"}}))
	mr.FastForward(2 * time.Minute)

	got, err := cache.GetRows(ctx, "bigquery")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRowCache_EmptySnapshotIsHit(t *testing.T) {
	cache, _ := newTestRowCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetRows(ctx, "bigquery", []models.RawIncident{}))

	got, err := cache.GetRows(ctx, "bigquery")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRowCache_Invalidate(t *testing.T) {
	cache, mr := newTestRowCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetRows(ctx, "bigquery", []models.RawIncident{{IncidentNo: "1"}}))
	require.NoError(t, cache.InvalidateRows(ctx, "bigquery"))

	assert.False(t, mr.Exists("fire_incidents:rows:bigquery"))
}

func TestRowCache_CorruptPayload(t *testing.T) {
	cache, mr := newTestRowCache(t, time.Minute)
	require.NoError(t, mr.Set("fire_incidents:rows:bigquery", "{not json"))

	got, err := cache.GetRows(context.Background(), "bigquery")

	assert.Nil(t, got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal rows from cache")
}
