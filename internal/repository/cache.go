package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_incidents_dashboard/internal/models"
	"github.com/shenikar/fire_incidents_dashboard/internal/service"
)

// RowCache хранит снимок сырых строк источника в Redis
type RowCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

var _ service.RowCache = (*RowCache)(nil)

func NewRowCache(redisClient *redis.Client, ttl time.Duration) *RowCache {
	return &RowCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func rowsKey(source string) string {
	return fmt.Sprintf("fire_incidents:rows:%s", source)
}

// GetRows пытается получить строки из Redis, при промахе возвращает nil, nil
func (c *RowCache) GetRows(ctx context.Context, source string) ([]models.RawIncident, error) {
	val, err := c.redisClient.Get(ctx, rowsKey(source)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rows from cache: %w", err)
	}

	rows := make([]models.RawIncident, 0)
	if err := json.Unmarshal(val, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rows from cache: %w", err)
	}
	return rows, nil
}

// SetRows сохраняет строки в Redis на время ttl
func (c *RowCache) SetRows(ctx context.Context, source string, rows []models.RawIncident) error {
	val, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal rows for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, rowsKey(source), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set rows in cache: %w", err)
	}
	return nil
}

// InvalidateRows удаляет снимок строк из Redis
func (c *RowCache) InvalidateRows(ctx context.Context, source string) error {
	if err := c.redisClient.Del(ctx, rowsKey(source)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate rows cache: %w", err)
	}
	return nil
}
