// Package etherscan implements walletmonitor.Explorer over Etherscan
// compatible explorer APIs (Etherscan, BscScan and their forks).
package etherscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/gabapcia/walletmonitor/internal/chainregistry"
	"github.com/gabapcia/walletmonitor/internal/pkg/logger"
	"github.com/gabapcia/walletmonitor/internal/walletmonitor"
	"github.com/gabapcia/walletmonitor/internal/walletregistry"
)

const (
	defaultPageSize = 100

	// Free tier explorer keys allow 5 calls per second.
	defaultRequestsPerSecond = 5
	defaultBurst             = 1

	statusOK = "1"

	// messageNoTransactions is the status "0" answer for an empty range.
	messageNoTransactions = "No transactions found"
)

// ErrUnexpectedStatus indicates a non-2xx HTTP answer from the explorer.
var ErrUnexpectedStatus = errors.New("unexpected http status")

// HeadSource reads the latest block of a chain from somewhere other than the explorer.
type HeadSource interface {
	LatestBlockNumber(ctx context.Context) (uint64, error)
}

// envelope is the common explorer response shape. Proxy actions answer with
// a JSON-RPC object instead, which only fills Result or Error.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// resultText renders a string result, used by explorers to carry error details.
func (e envelope) resultText() string {
	var s string
	if err := json.Unmarshal(e.Result, &s); err != nil {
		return ""
	}
	return s
}

type client struct {
	registry    chainregistry.Registry
	httpClient  *http.Client
	limiters    map[int64]*rate.Limiter
	headSources map[int64]HeadSource
	pageSize    int
}

var (
	_ walletmonitor.Explorer          = (*client)(nil)
	_ walletregistry.ChainHeadReader = (*client)(nil)
)

// get sends one explorer call for chainID and decodes the envelope. Only
// transport problems are returned as errors here; status handling is left to
// the caller.
func (c *client) get(ctx context.Context, chainID int64, params url.Values) (envelope, error) {
	chain, err := c.registry.ConfigFor(chainID)
	if err != nil {
		return envelope{}, err
	}

	if limiter, ok := c.limiters[chainID]; ok {
		if err := limiter.Wait(ctx); err != nil {
			return envelope{}, err
		}
	}

	logger.Debug(ctx, "explorer request",
		"explorer.chain_id", chainID,
		"explorer.module", params.Get("module"),
		"explorer.action", params.Get("action"),
	)

	params.Set("apikey", chain.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, chain.APIURL+"?"+params.Encode(), nil)
	if err != nil {
		return envelope{}, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return envelope{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var data envelope
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return envelope{}, fmt.Errorf("%w: %s: %w", walletmonitor.ErrCategoryUnavailable, params.Get("action"), err)
	}

	return data, nil
}

// listAccount runs one paginated account action and decodes the first page
// into out.
func (c *client) listAccount(ctx context.Context, chainID int64, action, walletAddress string, startBlock uint64, out any) error {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", action)
	params.Set("address", walletAddress)
	params.Set("startblock", strconv.FormatUint(startBlock, 10))
	params.Set("endblock", "latest")
	params.Set("page", "1")
	params.Set("offset", strconv.Itoa(c.pageSize))
	params.Set("sort", "asc")

	data, err := c.get(ctx, chainID, params)
	if err != nil {
		return err
	}

	if data.Status != statusOK {
		if data.Message == messageNoTransactions {
			return nil
		}

		return fmt.Errorf("%w: %s: %s %s", walletmonitor.ErrCategoryUnavailable, action, data.Message, data.resultText())
	}

	if err := json.Unmarshal(data.Result, out); err != nil {
		return fmt.Errorf("%w: %s: %w", walletmonitor.ErrCategoryUnavailable, action, err)
	}

	return nil
}

type config struct {
	httpClient        *http.Client
	requestsPerSecond float64
	burst             int
	pageSize          int
	headSources       map[int64]HeadSource
}

// Option configures the explorer client.
type Option func(*config)

// New creates an explorer client for every chain of registry.
//
// Defaults: http.DefaultClient with a 10 second timeout, 5 requests per
// second per chain and pages of 100 transfers.
func New(registry chainregistry.Registry, opts ...Option) *client {
	cfg := config{
		httpClient:        &http.Client{Timeout: 10 * time.Second},
		requestsPerSecond: defaultRequestsPerSecond,
		burst:             defaultBurst,
		pageSize:          defaultPageSize,
		headSources:       make(map[int64]HeadSource),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	limiters := make(map[int64]*rate.Limiter)
	if cfg.requestsPerSecond > 0 {
		for _, chain := range registry.Chains() {
			limiters[chain.ID] = rate.NewLimiter(rate.Limit(cfg.requestsPerSecond), max(cfg.burst, 1))
		}
	}

	return &client{
		registry:    registry,
		httpClient:  cfg.httpClient,
		limiters:    limiters,
		headSources: cfg.headSources,
		pageSize:    cfg.pageSize,
	}
}

// WithHTTPClient sets the HTTP client used for every call.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

// WithRateLimit paces calls per chain. A non-positive rps disables pacing.
func WithRateLimit(rps float64, burst int) Option {
	return func(cfg *config) {
		cfg.requestsPerSecond = rps
		cfg.burst = burst
	}
}

// WithPageSize sets the number of transfers requested per category.
func WithPageSize(n int) Option {
	return func(cfg *config) {
		cfg.pageSize = n
	}
}

// WithHeadSource reads the chain head of chainID from src instead of the explorer proxy.
func WithHeadSource(chainID int64, src HeadSource) Option {
	return func(cfg *config) {
		cfg.headSources[chainID] = src
	}
}
