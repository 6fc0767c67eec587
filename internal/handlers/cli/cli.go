// Package cli exposes the monitor through command-line commands.
package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/walletmonitor/internal/activity"
	"github.com/gabapcia/walletmonitor/internal/scheduler"
	"github.com/gabapcia/walletmonitor/internal/walletregistry"
)

// newApp builds the root command with every subcommand registered.
func newApp(sched scheduler.Service, wr walletregistry.Service, act activity.Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "walletmonitor",
		Description:           "Command-line interface for running and operating the wallet deposit monitor.",
		Usage:                 "walletmonitor [command] [flags]",
		Commands: []*cli.Command{
			startCommand(sched),
			triggerCommand(sched),
			statusCommand(sched),
			initMonitoringCommand(wr),
			deactivateMonitoringCommand(wr),
			monitorsCommand(act),
			transactionsCommand(act),
			notificationsCommand(act),
			ackNotificationCommand(act),
		},
	}
}

// Run parses os.Args and executes the matching command.
//
// Commands:
//
//   - `start`: runs the scheduler until interrupted.
//   - `trigger`: runs one monitoring pass now.
//   - `status`: lists the scheduled jobs.
//   - `init` / `deactivate`: manage the monitors of a wallet.
//   - `monitors`, `transactions`, `notifications`, `ack`: user activity.
func Run(ctx context.Context, sched scheduler.Service, wr walletregistry.Service, act activity.Service) error {
	return newApp(sched, wr, act).Run(ctx, os.Args)
}
