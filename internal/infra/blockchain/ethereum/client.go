// Package ethereum reads chain state from Ethereum compatible nodes over
// JSON-RPC. It serves as the chain head source of chains that have a node
// endpoint configured.
package ethereum

import (
	"github.com/gabapcia/walletmonitor/internal/infra/explorer/etherscan"
	"github.com/gabapcia/walletmonitor/internal/pkg/transport/jsonrpc"
)

// client talks to one node through conn.
type client struct {
	conn jsonrpc.Client
}

var _ etherscan.HeadSource = (*client)(nil)

// NewClient creates a node client over conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
