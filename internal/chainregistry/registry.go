// Package chainregistry maps EVM chain ids to the explorer endpoint, API
// credential and native asset used to monitor wallets on that chain.
//
// A Registry is built once at startup and never changes afterwards.
package chainregistry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnsupportedChain is returned when a chain id has no registered configuration.
var ErrUnsupportedChain = errors.New("unsupported chain")

const (
	// Ethereum mainnet.
	Ethereum int64 = 1

	// BSC is the BNB Smart Chain mainnet.
	BSC int64 = 56
)

// Chain holds everything needed to query one chain.
type Chain struct {
	ID           int64  // EVM chain id
	Name         string // display name, e.g. "Ethereum"
	APIURL       string // explorer API base url
	APIKey       string // explorer API key
	NativeSymbol string // symbol of the native asset, e.g. "ETH"
	RPCURL       string // optional JSON-RPC node used for chain head lookups
}

// Registry resolves chain configurations by id.
type Registry interface {
	// ConfigFor returns the configuration of chainID or ErrUnsupportedChain.
	ConfigFor(chainID int64) (Chain, error)

	// Chains returns every registered chain ordered by id.
	Chains() []Chain
}

type registry struct {
	chains map[int64]Chain
}

var _ Registry = (*registry)(nil)

// ConfigFor implements Registry.
func (r *registry) ConfigFor(chainID int64) (Chain, error) {
	chain, ok := r.chains[chainID]
	if !ok {
		return Chain{}, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}

	return chain, nil
}

// Chains implements Registry.
func (r *registry) Chains() []Chain {
	ids := slices.Sorted(maps.Keys(r.chains))

	chains := make([]Chain, 0, len(ids))
	for _, id := range ids {
		chains = append(chains, r.chains[id])
	}

	return chains
}

// DefaultChains returns the built-in Ethereum and BSC configurations without API keys.
func DefaultChains() []Chain {
	return []Chain{
		{
			ID:           Ethereum,
			Name:         "Ethereum",
			APIURL:       "https://api.etherscan.io/api",
			NativeSymbol: "ETH",
		},
		{
			ID:           BSC,
			Name:         "BSC",
			APIURL:       "https://api.bscscan.com/api",
			NativeSymbol: "BNB",
		},
	}
}

// New builds a Registry from chains. A later entry with the same id
// replaces an earlier one.
func New(chains ...Chain) *registry {
	r := &registry{
		chains: make(map[int64]Chain, len(chains)),
	}

	for _, c := range chains {
		r.chains[c.ID] = c
	}

	return r
}
