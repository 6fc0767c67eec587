package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/walletmonitor/internal/pkg/x/chflow"
	"github.com/gabapcia/walletmonitor/internal/scheduler"
)

// startCommand runs the scheduler until SIGINT, SIGTERM or ctx cancellation.
//
// Usage example:
//
//	walletmonitor start
func startCommand(sched scheduler.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the monitoring scheduler and keeps it running.",
		Usage:       "Runs the scheduled monitoring jobs. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := sched.Start(ctx); err != nil {
				return err
			}
			defer sched.Stop()

			chflow.Receive(ctx, quit)
			return nil
		},
	}
}

// triggerCommand runs one monitoring pass and prints its summary.
//
// Usage example:
//
//	walletmonitor trigger
func triggerCommand(sched scheduler.Service) *cli.Command {
	return &cli.Command{
		Name:        "trigger",
		Description: "Runs one monitoring pass over every active wallet right now.",
		Usage:       "Checks all active monitors once and prints the summary.",
		Action: func(ctx context.Context, c *cli.Command) error {
			summary, err := sched.TriggerNow(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.Root().Writer,
				"batch %s: %d wallets checked, %d new transactions, %d failed\n",
				summary.BatchID, summary.WalletsChecked, summary.NewTransactionsFound, summary.WalletsFailed,
			)
			return err
		},
	}
}

// statusCommand prints the jobs known to the scheduler.
//
// Usage example:
//
//	walletmonitor status
func statusCommand(sched scheduler.Service) *cli.Command {
	return &cli.Command{
		Name:        "status",
		Description: "Lists the monitoring jobs with their schedule.",
		Usage:       "Prints every job of the running scheduler, whether it is armed in the current mode and its next run.",
		Action: func(ctx context.Context, c *cli.Command) error {
			statuses, err := sched.Report(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "JOB\tSCHEDULE\tSCHEDULED\tARMED\tRUNNING\tNEXT RUN\tDESCRIPTION")

			for _, job := range statuses {
				next := "-"
				if !job.NextRun.IsZero() {
					next = job.NextRun.UTC().Format(time.RFC3339)
				}

				fmt.Fprintf(w, "%s\t%s\t%t\t%t\t%t\t%s\t%s\n",
					job.Name, job.Schedule, job.Scheduled, job.Armed, job.Running, next, job.Description,
				)
			}

			return w.Flush()
		},
	}
}
