package ethereum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/walletmonitor/internal/pkg/types"
)

// LatestBlockNumber returns the node's current head via eth_blockNumber.
func (c *client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	var blockNumber types.Hex
	if err := json.Unmarshal(data, &blockNumber); err != nil {
		return 0, fmt.Errorf("eth_blockNumber: %w", err)
	}

	return blockNumber.Uint64(), nil
}
