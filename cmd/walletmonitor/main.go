package main

import (
	"context"
	"errors"
	"os"

	"github.com/gabapcia/walletmonitor/internal/activity"
	"github.com/gabapcia/walletmonitor/internal/chainregistry"
	"github.com/gabapcia/walletmonitor/internal/config"
	"github.com/gabapcia/walletmonitor/internal/handlers/cli"
	"github.com/gabapcia/walletmonitor/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/walletmonitor/internal/infra/explorer/etherscan"
	"github.com/gabapcia/walletmonitor/internal/infra/storage/postgres"
	"github.com/gabapcia/walletmonitor/internal/infra/storage/redis"
	"github.com/gabapcia/walletmonitor/internal/pkg/logger"
	"github.com/gabapcia/walletmonitor/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/walletmonitor/internal/pkg/transport/http"
	"github.com/gabapcia/walletmonitor/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletmonitor/internal/scheduler"
	"github.com/gabapcia/walletmonitor/internal/walletmonitor"
	"github.com/gabapcia/walletmonitor/internal/walletregistry"
)

func main() {
	ctx := context.Background()

	if err := run(ctx); err != nil {
		logger.Error(ctx, "walletmonitor exited with error", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		_ = logger.Init("error")
		return err
	}

	if cfg.Telemetry.Enabled {
		shutdown, initErr := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if initErr != nil {
			_ = logger.Init(cfg.LogLevel)
			return initErr
		}
		defer func() { err = errors.Join(err, shutdown(context.WithoutCancel(ctx))) }()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	registry := chainregistry.New(cfg.Chains()...)

	httpClient := transporthttp.NewStandardClient(
		transporthttp.WithTimeout(cfg.Explorer.HTTPTimeout),
		transporthttp.WithRetryMax(cfg.Explorer.HTTPRetryMax),
		transporthttp.WithRetryLogging(true),
	)

	explorerOpts := []etherscan.Option{
		etherscan.WithHTTPClient(httpClient),
		etherscan.WithRateLimit(cfg.Explorer.RPS, cfg.Explorer.Burst),
		etherscan.WithPageSize(cfg.Explorer.PageSize),
	}
	for _, chain := range registry.Chains() {
		if chain.RPCURL == "" {
			continue
		}

		node := ethereum.NewClient(jsonrpc.NewClient(httpClient, chain.RPCURL))
		explorerOpts = append(explorerOpts, etherscan.WithHeadSource(chain.ID, node))
	}
	explorer := etherscan.New(registry, explorerOpts...)

	cursors, err := redis.NewClient(ctx, redis.Options{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		LockTTL:  cfg.Redis.LockTTL,
	})
	if err != nil {
		return err
	}
	defer cursors.Close()

	ledger, err := postgres.NewClient(ctx, cfg.Postgres.DSN)
	if err != nil {
		return err
	}
	defer ledger.Close()

	if err := ledger.Migrate(ctx); err != nil {
		return err
	}

	monitor := walletmonitor.New(registry, explorer, cursors, ledger, ledger,
		walletmonitor.WithWalletDelay(cfg.Monitor.WalletDelay),
		walletmonitor.WithWalletTimeout(cfg.Monitor.WalletTimeout),
	)

	sched := scheduler.New(monitor,
		scheduler.WithProduction(cfg.IsProduction()),
		scheduler.WithDailyHour(cfg.Schedule.DailyHour),
		scheduler.WithFrequentInterval(cfg.Schedule.FrequentHours),
		scheduler.WithProbeInterval(cfg.Schedule.ProbeMinutes),
		scheduler.WithBatchLock(cursors),
		scheduler.WithStatusStore(cursors),
	)

	wallets := walletregistry.New(registry, explorer, cursors)
	activities := activity.New(ledger, ledger, cursors)

	return cli.Run(ctx, sched, wallets, activities)
}
