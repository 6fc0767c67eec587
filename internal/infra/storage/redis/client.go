// Package redis stores wallet monitors and their block cursors in Redis.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Options selects the Redis server and logical database holding the monitors.
type Options struct {
	Addr     string
	Username string
	Password string
	DB       int

	// LockTTL bounds how long a crashed holder keeps the batch lock.
	// Defaults to 30 seconds.
	LockTTL time.Duration
}

const defaultLockTTL = 30 * time.Second

type client struct {
	conn *redis.Client
	now  func() time.Time // stamps last_checked_at and the active index score

	lockTTL time.Duration
}

// Close releases the connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects with opts and fails unless the server answers a PING.
func NewClient(ctx context.Context, opts Options) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	lockTTL := opts.LockTTL
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}

	return &client{conn: conn, now: time.Now, lockTTL: lockTTL}, nil
}
