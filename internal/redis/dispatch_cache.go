package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"roadguard/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// DispatchCache holds the currently-dispatched services listing so the
// operations dashboard does not hit postgres on every poll.
type DispatchCache struct {
	client *goredis.Client
	key    string
}

func NewDispatchCache(r *Redis) *DispatchCache {
	return &DispatchCache{
		client: r.Client,
		key:    "dispatch:active",
	}
}

// GetActive returns the cached listing, or (nil, nil) on a cache miss.
func (c *DispatchCache) GetActive(ctx context.Context) ([]*domain.EmergencyService, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var services []*domain.EmergencyService
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, err
	}

	return services, nil
}

func (c *DispatchCache) SetActive(ctx context.Context, services []*domain.EmergencyService, ttl time.Duration) error {
	b, err := json.Marshal(services)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
