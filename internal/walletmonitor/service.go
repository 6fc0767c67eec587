// Package walletmonitor scans registered wallets for new inbound transfers.
//
// One cycle of a wallet on a chain reads its block cursor, lists the native,
// internal and token transfers above it, stores the inbound ones exactly once,
// emits one notification per newly stored transfer and finally moves the
// cursor to the chain head. A batch pass runs that cycle for every active
// monitor, sequentially and with a fixed delay between wallets, isolating
// failures per wallet.
package walletmonitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/walletmonitor/internal/chainregistry"
	"github.com/gabapcia/walletmonitor/internal/pkg/logger"
	"github.com/gabapcia/walletmonitor/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletmonitor/internal/pkg/x/chflow"
)

const (
	defaultWalletDelay   = 200 * time.Millisecond
	defaultWalletTimeout = 2 * time.Minute
)

// Service runs wallet check cycles.
type Service interface {
	// CheckWallet runs one full cycle for m. The cursor is only written when
	// every step before it succeeded.
	CheckWallet(ctx context.Context, m Monitor) (CheckResult, error)

	// MonitorAll runs CheckWallet over every active monitor, least recently
	// checked first. Wallet failures are logged and counted, never returned.
	// An error is returned only when the monitors cannot be listed or ctx is
	// cancelled, together with the summary gathered so far.
	MonitorAll(ctx context.Context) (Summary, error)
}

// CheckResult describes one wallet cycle.
type CheckResult struct {
	FromBlock            uint64              // cursor read at the start of the cycle
	ToBlock              uint64              // cursor written at the end, zero when not written
	NewTransactions      []StoredTransaction // transactions stored for the first time
	NotificationFailures int
	DegradedCategories   []string
}

// Summary aggregates one batch pass.
type Summary struct {
	BatchID              string
	WalletsChecked       int
	NewTransactionsFound int
	WalletsFailed        int
}

type service struct {
	registry            chainregistry.Registry
	explorer            Explorer
	cursorStorage       CursorStorage
	transactionStorage  TransactionStorage
	notificationStorage NotificationStorage

	retry         retry.Retry
	walletDelay   time.Duration
	walletTimeout time.Duration

	metrics *metrics
	tracer  trace.Tracer
}

var _ Service = (*service)(nil)

// writeCursor stores the new cursor, retrying transient storage errors.
func (s *service) writeCursor(ctx context.Context, m Monitor, height uint64) error {
	return s.retry.Execute(ctx, func() error {
		return s.cursorStorage.AdvanceCursor(ctx, m.WalletAddress, m.ChainID, height)
	})
}

// readCursor returns the stored cursor, zero when the pair was never scanned.
func (s *service) readCursor(ctx context.Context, m Monitor) (uint64, error) {
	cursor, err := s.cursorStorage.GetCursor(ctx, m.WalletAddress, m.ChainID)
	if errors.Is(err, ErrCursorNotFound) {
		return 0, nil
	}

	return cursor, err
}

func (s *service) CheckWallet(ctx context.Context, m Monitor) (result CheckResult, err error) {
	ctx, span := s.tracer.Start(ctx, "walletmonitor.CheckWallet", trace.WithAttributes(
		attribute.String("wallet.address", m.WalletAddress),
		attribute.Int64("wallet.chain_id", m.ChainID),
	))

	start := time.Now()
	defer func() {
		attrs := metric.WithAttributes(attribute.Int64("chain.id", m.ChainID), attribute.Bool("failed", err != nil))
		s.metrics.cycleDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		s.metrics.walletsChecked.Add(ctx, 1, attrs)
		s.metrics.newTransactions.Add(ctx, int64(len(result.NewTransactions)), attrs)

		if err != nil {
			s.metrics.walletsFailed.Add(ctx, 1, attrs)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	ctx = logger.Derive(ctx, "wallet.address", m.WalletAddress, "wallet.chain_id", m.ChainID)

	if s.walletTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.walletTimeout)
		defer cancel()
	}

	chain, err := s.registry.ConfigFor(m.ChainID)
	if err != nil {
		return result, err
	}

	cursor, err := s.readCursor(ctx, m)
	if err != nil {
		return result, fmt.Errorf("read cursor: %w", err)
	}
	result.FromBlock = cursor

	fetched, degraded, err := s.fetch(ctx, m.WalletAddress, m.ChainID, cursor)
	if err != nil {
		return result, err
	}

	result.DegradedCategories = degraded
	if len(degraded) > 0 {
		s.metrics.degradedCategories.Add(ctx, int64(len(degraded)), metric.WithAttributes(attribute.Int64("chain.id", m.ChainID)))
	}

	inserted, storeErr := s.store(ctx, classify(m, chain, fetched))
	result.NewTransactions = inserted
	result.NotificationFailures = s.notify(ctx, inserted)
	if storeErr != nil {
		return result, storeErr
	}

	head, err := s.explorer.ChainHead(ctx, m.ChainID)
	if err != nil {
		return result, fmt.Errorf("%w: chain head: %w", ErrFetchFailed, err)
	}

	next := max(head, cursor)
	if err := s.writeCursor(ctx, m, next); err != nil {
		return result, fmt.Errorf("write cursor: %w", err)
	}
	result.ToBlock = next

	logger.Info(ctx, "wallet checked",
		"cursor.from", cursor,
		"cursor.to", next,
		"transactions.fetched", fetched.Len(),
		"transactions.new", len(inserted),
	)

	return result, nil
}

// wait pauses between two wallets of a batch pass.
func (s *service) wait(ctx context.Context) error {
	return chflow.Sleep(ctx, s.walletDelay)
}

func (s *service) MonitorAll(ctx context.Context) (Summary, error) {
	summary := Summary{BatchID: uuid.NewString()}

	ctx = logger.Derive(ctx, "batch.id", summary.BatchID)
	ctx, span := s.tracer.Start(ctx, "walletmonitor.MonitorAll", trace.WithAttributes(attribute.String("batch.id", summary.BatchID)))
	defer span.End()

	monitors, err := s.cursorStorage.ListActiveMonitors(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return summary, fmt.Errorf("list active monitors: %w", err)
	}

	logger.Info(ctx, "wallet monitoring pass started", "batch.wallets", len(monitors))

	for i, m := range monitors {
		if i > 0 {
			err = s.wait(ctx)
		} else {
			err = ctx.Err()
		}
		if err != nil {
			logger.Warn(ctx, "wallet monitoring pass interrupted",
				"batch.wallets_checked", summary.WalletsChecked,
				"batch.wallets_remaining", len(monitors)-i,
				"error", err,
			)
			return summary, err
		}

		summary.WalletsChecked++

		result, err := s.CheckWallet(ctx, m)
		summary.NewTransactionsFound += len(result.NewTransactions)
		if err != nil {
			summary.WalletsFailed++
			logger.Error(ctx, "wallet check failed",
				"wallet.address", m.WalletAddress,
				"wallet.chain_id", m.ChainID,
				"error", err,
			)
		}
	}

	span.SetAttributes(
		attribute.Int("batch.wallets_checked", summary.WalletsChecked),
		attribute.Int("batch.wallets_failed", summary.WalletsFailed),
		attribute.Int("batch.transactions_new", summary.NewTransactionsFound),
	)

	logger.Info(ctx, "wallet monitoring pass completed",
		"batch.wallets_checked", summary.WalletsChecked,
		"batch.wallets_failed", summary.WalletsFailed,
		"batch.transactions_new", summary.NewTransactionsFound,
	)

	return summary, nil
}

type config struct {
	retry         retry.Retry
	walletDelay   time.Duration
	walletTimeout time.Duration
	meterProvider metric.MeterProvider
	tracer        trace.Tracer
}

// Option configures the service.
type Option func(*config)

// New builds the monitoring service.
//
// Defaults: 200ms between wallets, a 2 minute budget per wallet cycle, three
// attempts for the cursor write and the global OpenTelemetry providers.
func New(
	registry chainregistry.Registry,
	explorer Explorer,
	cursorStorage CursorStorage,
	transactionStorage TransactionStorage,
	notificationStorage NotificationStorage,
	opts ...Option,
) *service {
	cfg := config{
		retry:         retry.New(retry.WithAttempts(3), retry.WithDelay(200*time.Millisecond), retry.WithMaxDelay(time.Second)),
		walletDelay:   defaultWalletDelay,
		walletTimeout: defaultWalletTimeout,
		meterProvider: defaultMeterProvider(),
		tracer:        defaultTracer(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		registry:            registry,
		explorer:            explorer,
		cursorStorage:       cursorStorage,
		transactionStorage:  transactionStorage,
		notificationStorage: notificationStorage,
		retry:               cfg.retry,
		walletDelay:         cfg.walletDelay,
		walletTimeout:       cfg.walletTimeout,
		metrics:             newMetrics(cfg.meterProvider),
		tracer:              cfg.tracer,
	}
}

// WithRetry sets the retry policy of the cursor write.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithWalletDelay sets the pause between two wallets of a batch pass.
func WithWalletDelay(d time.Duration) Option {
	return func(c *config) {
		c.walletDelay = d
	}
}

// WithWalletTimeout bounds one wallet cycle. Zero disables the bound.
func WithWalletTimeout(d time.Duration) Option {
	return func(c *config) {
		c.walletTimeout = d
	}
}

// WithMeterProvider overrides the meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithTracer overrides the tracer.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) {
		c.tracer = t
	}
}
