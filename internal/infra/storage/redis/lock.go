package redis

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/walletmonitor/internal/pkg/logger"
	"github.com/gabapcia/walletmonitor/internal/pkg/x/chflow"
	"github.com/gabapcia/walletmonitor/internal/scheduler"
)

// batchLockKey holds the token of the process running a batch pass.
func batchLockKey() string {
	return monitorKeyPrefix + ":batch"
}

// refreshLockScript extends the lock only while the caller still owns it.
//
// KEYS[1] lock key, ARGV[1] token, ARGV[2] ttl in milliseconds
var refreshLockScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return 0
`)

// releaseLockScript deletes the lock only while the caller still owns it.
//
// KEYS[1] lock key, ARGV[1] token
var releaseLockScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// TryLock implements scheduler.BatchLock with SET NX PX. While held, the lock
// is refreshed every third of its TTL so a long pass keeps it and a crashed
// process loses it after one TTL.
func (c *client) TryLock(ctx context.Context) (func(), bool, error) {
	token := uuid.NewString()

	acquired, err := c.conn.SetNX(ctx, batchLockKey(), token, c.lockTTL).Result()
	if err != nil || !acquired {
		return nil, false, err
	}

	ctx = context.WithoutCancel(ctx)
	refreshCtx, stopRefresh := context.WithCancel(ctx)
	refreshed := make(chan struct{})

	go func() {
		defer close(refreshed)
		c.refreshLock(refreshCtx, token)
	}()

	var once sync.Once
	unlock := func() {
		once.Do(func() {
			stopRefresh()
			<-refreshed

			ctx, cancel := context.WithTimeout(ctx, c.lockTTL)
			defer cancel()

			if err := releaseLockScript.Run(ctx, c.conn, []string{batchLockKey()}, token).Err(); err != nil {
				logger.Warn(ctx, "batch lock not released", "error", err)
			}
		})
	}

	return unlock, true, nil
}

func (c *client) refreshLock(ctx context.Context, token string) {
	ticker := time.NewTicker(c.lockTTL / 3)
	defer ticker.Stop()

	for {
		if _, ok := chflow.Receive(ctx, ticker.C); !ok {
			return
		}

		kept, err := refreshLockScript.Run(ctx, c.conn, []string{batchLockKey()}, token, c.lockTTL.Milliseconds()).Int()
		switch {
		case ctx.Err() != nil:
			return
		case err != nil:
			logger.Warn(ctx, "batch lock not refreshed", "error", err)
		case kept == 0:
			logger.Error(ctx, "batch lock lost")
			return
		}
	}
}

var _ scheduler.BatchLock = (*client)(nil)
