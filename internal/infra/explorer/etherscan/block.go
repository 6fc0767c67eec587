package etherscan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/gabapcia/walletmonitor/internal/pkg/types"
)

// ChainHead returns the latest block of chainID, from its head source when one
// is configured and from the explorer proxy otherwise.
func (c *client) ChainHead(ctx context.Context, chainID int64) (uint64, error) {
	if src, ok := c.headSources[chainID]; ok {
		return src.LatestBlockNumber(ctx)
	}

	params := url.Values{}
	params.Set("module", "proxy")
	params.Set("action", "eth_blockNumber")

	data, err := c.get(ctx, chainID, params)
	if err != nil {
		return 0, err
	}

	if data.Error != nil {
		return 0, fmt.Errorf("eth_blockNumber: [%d] %s", data.Error.Code, data.Error.Message)
	}

	var head types.Hex
	if err := json.Unmarshal(data.Result, &head); err != nil {
		return 0, fmt.Errorf("eth_blockNumber: %s %s: %w", data.Message, data.resultText(), err)
	}

	return head.Uint64(), nil
}
