package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/walletmonitor/internal/pkg/logger"
	"github.com/gabapcia/walletmonitor/internal/walletregistry"
)

// initMonitoringCommand starts monitoring a wallet on every supported chain
// from the current chain head.
//
// Usage example:
//
//	walletmonitor init --user 7 --address 0xABC123...
//
// A partial initialization prints the chains that succeeded and logs the
// failures as a warning.
func initMonitoringCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "init",
		Description: "Initialize monitoring of a wallet on every supported chain, starting at the current block.",
		Usage:       "Registers a wallet for deposit monitoring. Must provide both user and address.",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "user",
				Usage:    "Owner user id",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to monitor",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				userID  = c.Int64("user")
				address = c.String("address")
			)

			monitors, err := wr.InitializeMonitoring(ctx, userID, address)
			if err != nil && !errors.Is(err, walletregistry.ErrPartialInitialization) {
				return err
			}

			if err != nil {
				logger.Warn(ctx, "wallet monitoring partially initialized",
					"wallet.address", address,
					"error", err,
				)
			}

			for _, m := range monitors {
				if _, err := fmt.Fprintf(c.Root().Writer, "%s (%d): monitoring from block %d\n", m.ChainName, m.ChainID, m.Block); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// deactivateMonitoringCommand stops monitoring a wallet on one chain.
//
// Usage example:
//
//	walletmonitor deactivate --chain 1 --address 0xABC123...
func deactivateMonitoringCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "deactivate",
		Description: "Stop monitoring a wallet on a specific chain.",
		Usage:       "Deactivates a wallet monitor. Must provide both chain and address.",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "chain",
				Usage:    "Chain id (e.g., 1 for Ethereum, 56 for BSC)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to stop monitoring",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				chainID = c.Int64("chain")
				address = c.String("address")
			)

			return wr.DeactivateMonitoring(ctx, address, chainID)
		},
	}
}
