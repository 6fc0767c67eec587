package redis

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/walletmonitor/internal/activity"
	"github.com/gabapcia/walletmonitor/internal/walletmonitor"
	"github.com/gabapcia/walletmonitor/internal/walletregistry"
)

// monitorKeyPrefix namespaces every key written by the cursor store.
const monitorKeyPrefix = "walletmonitor"

const (
	fieldUserID           = "user_id"
	fieldWalletAddress    = "wallet_address"
	fieldChainID          = "chain_id"
	fieldLastCheckedBlock = "last_checked_block"
	fieldLastCheckedAt    = "last_checked_at"
	fieldActive           = "active"
)

// monitorMember identifies a monitor inside the index sets.
//
// Format: "{chainID}:{wallet}"
func monitorMember(walletAddress string, chainID int64) string {
	return fmt.Sprintf("%d:%s", chainID, walletmonitor.NormalizeAddress(walletAddress))
}

// monitorKey is the hash holding one monitor.
//
// Format: "walletmonitor:monitor:{chainID}:{wallet}"
func monitorKey(member string) string {
	return fmt.Sprintf("%s:monitor:%s", monitorKeyPrefix, member)
}

// activeMonitorsKey is the sorted set of active monitors scored by last
// checked time in unix milliseconds.
func activeMonitorsKey() string {
	return monitorKeyPrefix + ":active"
}

// userMonitorsKey is the set of monitors owned by a user.
//
// Format: "walletmonitor:user:{userID}"
func userMonitorsKey(userID int64) string {
	return fmt.Sprintf("%s:user:%d", monitorKeyPrefix, userID)
}

// GetCursor implements walletmonitor.CursorStorage.
func (c *client) GetCursor(ctx context.Context, walletAddress string, chainID int64) (uint64, error) {
	val, err := c.conn.HGet(ctx, monitorKey(monitorMember(walletAddress, chainID)), fieldLastCheckedBlock).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, walletmonitor.ErrCursorNotFound
	}

	return val, err
}

// UpsertCursor implements walletregistry.MonitorStorage.
//
// The hash, the active index and the owner index are written in one
// MULTI/EXEC transaction. A monitor that changes owner is moved between the
// owner indexes.
func (c *client) UpsertCursor(ctx context.Context, userID int64, walletAddress string, chainID int64, blockHeight uint64) error {
	var (
		member = monitorMember(walletAddress, chainID)
		key    = monitorKey(member)
		now    = c.now().UTC()
	)

	previousOwner, err := c.conn.HGet(ctx, key, fieldUserID).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			fieldUserID, userID,
			fieldWalletAddress, walletmonitor.NormalizeAddress(walletAddress),
			fieldChainID, chainID,
			fieldLastCheckedBlock, blockHeight,
			fieldLastCheckedAt, now.UnixMilli(),
			fieldActive, "1",
		)
		pipe.ZAdd(ctx, activeMonitorsKey(), redis.Z{Score: float64(now.UnixMilli()), Member: member})
		pipe.SAdd(ctx, userMonitorsKey(userID), member)

		if previousOwner != 0 && previousOwner != userID {
			pipe.SRem(ctx, userMonitorsKey(previousOwner), member)
		}
		return nil
	})

	return err
}

// advanceCursorScript raises the cursor of an existing monitor. The active
// index is only touched while the monitor is active.
//
// KEYS[1] monitor hash, KEYS[2] active index
// ARGV[1] block height, ARGV[2] checked at (unix ms), ARGV[3] member
var advanceCursorScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
local current = tonumber(redis.call('HGET', KEYS[1], 'last_checked_block') or '0')
if tonumber(ARGV[1]) > current then
	redis.call('HSET', KEYS[1], 'last_checked_block', ARGV[1])
end
redis.call('HSET', KEYS[1], 'last_checked_at', ARGV[2])
if redis.call('HGET', KEYS[1], 'active') == '1' then
	redis.call('ZADD', KEYS[2], ARGV[2], ARGV[3])
end
return 1
`)

// AdvanceCursor implements walletmonitor.CursorStorage.
func (c *client) AdvanceCursor(ctx context.Context, walletAddress string, chainID int64, blockHeight uint64) error {
	member := monitorMember(walletAddress, chainID)
	now := c.now().UTC().UnixMilli()

	found, err := advanceCursorScript.Run(ctx, c.conn,
		[]string{monitorKey(member), activeMonitorsKey()},
		blockHeight, now, member,
	).Int()
	if err != nil {
		return err
	}

	if found == 0 {
		return fmt.Errorf("%w: %s", walletmonitor.ErrCursorNotFound, member)
	}

	return nil
}

// DeactivateMonitor implements walletmonitor.CursorStorage.
func (c *client) DeactivateMonitor(ctx context.Context, walletAddress string, chainID int64) error {
	member := monitorMember(walletAddress, chainID)
	key := monitorKey(member)

	exists, err := c.conn.Exists(ctx, key).Result()
	if err != nil {
		return err
	}

	if exists == 0 {
		return fmt.Errorf("%w: %s", walletmonitor.ErrCursorNotFound, member)
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fieldActive, "0")
		pipe.ZRem(ctx, activeMonitorsKey(), member)
		return nil
	})

	return err
}

// ListActiveMonitors implements walletmonitor.CursorStorage. Monitors come out
// least recently checked first.
func (c *client) ListActiveMonitors(ctx context.Context) ([]walletmonitor.Monitor, error) {
	members, err := c.conn.ZRange(ctx, activeMonitorsKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	return c.loadMonitors(ctx, members)
}

// ListMonitorsByUser implements activity.MonitorReader, ordered by chain then wallet.
func (c *client) ListMonitorsByUser(ctx context.Context, userID int64) ([]walletmonitor.Monitor, error) {
	members, err := c.conn.SMembers(ctx, userMonitorsKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	monitors, err := c.loadMonitors(ctx, members)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(monitors, func(a, b walletmonitor.Monitor) int {
		return cmp.Or(
			cmp.Compare(a.ChainID, b.ChainID),
			strings.Compare(a.WalletAddress, b.WalletAddress),
		)
	})

	return monitors, nil
}

// loadMonitors reads the hashes of members in order, skipping members whose
// hash no longer exists.
func (c *client) loadMonitors(ctx context.Context, members []string) ([]walletmonitor.Monitor, error) {
	if len(members) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(members))
	_, err := c.conn.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, member := range members {
			cmds[i] = pipe.HGetAll(ctx, monitorKey(member))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitors := make([]walletmonitor.Monitor, 0, len(members))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}

		m, err := parseMonitor(fields)
		if err != nil {
			return nil, fmt.Errorf("monitor %s: %w", members[i], err)
		}
		monitors = append(monitors, m)
	}

	return monitors, nil
}

func parseMonitor(fields map[string]string) (walletmonitor.Monitor, error) {
	userID, err := strconv.ParseInt(fields[fieldUserID], 10, 64)
	if err != nil {
		return walletmonitor.Monitor{}, err
	}

	chainID, err := strconv.ParseInt(fields[fieldChainID], 10, 64)
	if err != nil {
		return walletmonitor.Monitor{}, err
	}

	block, err := strconv.ParseUint(fields[fieldLastCheckedBlock], 10, 64)
	if err != nil {
		return walletmonitor.Monitor{}, err
	}

	checkedAt, err := strconv.ParseInt(fields[fieldLastCheckedAt], 10, 64)
	if err != nil {
		return walletmonitor.Monitor{}, err
	}

	return walletmonitor.Monitor{
		UserID:           userID,
		WalletAddress:    fields[fieldWalletAddress],
		ChainID:          chainID,
		LastCheckedBlock: block,
		LastCheckedAt:    time.UnixMilli(checkedAt).UTC(),
		Active:           fields[fieldActive] == "1",
	}, nil
}

var (
	_ walletmonitor.CursorStorage   = (*client)(nil)
	_ walletregistry.MonitorStorage = (*client)(nil)
	_ activity.MonitorReader        = (*client)(nil)
)
