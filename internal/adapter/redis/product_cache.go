package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
)

const productKeyPrefix = "product:"

var ErrCacheMiss = errors.New("product not in cache")

// ProductCache keeps product details with a TTL so chat-list assembly does
// not refetch the same product once per session.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProductCache{client: client, ttl: ttl}
}

func (c *ProductCache) key(id int64) string {
	return fmt.Sprintf("%s%d", productKeyPrefix, id)
}

func (c *ProductCache) Get(ctx context.Context, id int64) (*entity.Product, error) {
	val, err := c.client.Get(ctx, c.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get product %d from cache: %w", id, err)
	}

	var product entity.Product
	if err := json.Unmarshal([]byte(val), &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached product %d: %w", id, err)
	}
	return &product, nil
}

func (c *ProductCache) Set(ctx context.Context, product *entity.Product) error {
	if product == nil {
		return errors.New("cannot cache nil product")
	}
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product %d: %w", product.ID, err)
	}
	if err := c.client.Set(ctx, c.key(product.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache product %d: %w", product.ID, err)
	}
	return nil
}

func (c *ProductCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to evict product %d from cache: %w", id, err)
	}
	return nil
}
