package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/walletmonitor/internal/scheduler"
)

// schedulerStatusKey holds the JSON job statuses of the running scheduler.
func schedulerStatusKey() string {
	return monitorKeyPrefix + ":scheduler:status"
}

// SaveJobStatus implements scheduler.StatusStore.
func (c *client) SaveJobStatus(ctx context.Context, statuses []scheduler.JobStatus, ttl time.Duration) error {
	data, err := json.Marshal(statuses)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, schedulerStatusKey(), data, ttl).Err()
}

// LoadJobStatus implements scheduler.StatusStore.
func (c *client) LoadJobStatus(ctx context.Context) ([]scheduler.JobStatus, error) {
	data, err := c.conn.Get(ctx, schedulerStatusKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var statuses []scheduler.JobStatus
	if err := json.Unmarshal(data, &statuses); err != nil {
		return nil, err
	}

	return statuses, nil
}

var _ scheduler.StatusStore = (*client)(nil)
