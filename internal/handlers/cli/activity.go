package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/walletmonitor/internal/activity"
)

func userFlag() cli.Flag {
	return &cli.Int64Flag{
		Name:     "user",
		Usage:    "User id",
		Required: true,
	}
}

func limitFlag(def int) cli.Flag {
	return &cli.IntFlag{
		Name:  "limit",
		Usage: fmt.Sprintf("Maximum number of rows (at most %d)", activity.MaxLimit),
		Value: def,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

// monitorsCommand lists the monitors of a user.
//
// Usage example:
//
//	walletmonitor monitors --user 7
func monitorsCommand(act activity.Service) *cli.Command {
	return &cli.Command{
		Name:        "monitors",
		Description: "List the wallet monitors of a user with their cursor.",
		Usage:       "Prints every monitor of the user, active or not.",
		Flags:       []cli.Flag{userFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			monitors, err := act.ListMonitors(ctx, c.Int64("user"))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CHAIN\tWALLET\tLAST BLOCK\tLAST CHECKED\tACTIVE")
			for _, m := range monitors {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%t\n", m.ChainID, m.WalletAddress, m.LastCheckedBlock, formatTime(m.LastCheckedAt), m.Active)
			}

			return w.Flush()
		},
	}
}

// transactionsCommand lists the stored deposits of a user, newest first.
//
// Usage example:
//
//	walletmonitor transactions --user 7 --limit 10
func transactionsCommand(act activity.Service) *cli.Command {
	return &cli.Command{
		Name:        "transactions",
		Description: "List the deposits recorded for a user, newest first.",
		Usage:       "Prints the stored inbound transactions of the user.",
		Flags:       []cli.Flag{userFlag(), limitFlag(activity.DefaultTransactionsLimit)},
		Action: func(ctx context.Context, c *cli.Command) error {
			txs, err := act.ListTransactions(ctx, c.Int64("user"), c.Int("limit"))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tCHAIN\tBLOCK\tHASH\tFROM\tVALUE\tSYMBOL")
			for _, tx := range txs {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
					formatTime(tx.BlockTimestamp), tx.ChainID, tx.BlockNumber, tx.TxHash, tx.From, tx.Value, tx.TokenSymbol,
				)
			}

			return w.Flush()
		},
	}
}

// notificationsCommand lists the notifications of a user, newest first.
//
// Usage example:
//
//	walletmonitor notifications --user 7 --unread
func notificationsCommand(act activity.Service) *cli.Command {
	return &cli.Command{
		Name:        "notifications",
		Description: "List the notifications of a user, newest first.",
		Usage:       "Prints the deposit notifications of the user.",
		Flags: []cli.Flag{
			userFlag(),
			limitFlag(activity.DefaultNotificationsLimit),
			&cli.BoolFlag{
				Name:  "unread",
				Usage: "Only unread notifications",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			notifications, err := act.ListNotifications(ctx, c.Int64("user"), c.Int("limit"), c.Bool("unread"))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTIME\tREAD\tTITLE\tMESSAGE")
			for _, n := range notifications {
				fmt.Fprintf(w, "%d\t%s\t%t\t%s\t%s\n", n.ID, formatTime(n.CreatedAt), n.Read, n.Title, n.Message)
			}

			return w.Flush()
		},
	}
}

// ackNotificationCommand marks one notification as read.
//
// Usage example:
//
//	walletmonitor ack --user 7 --id 42
func ackNotificationCommand(act activity.Service) *cli.Command {
	return &cli.Command{
		Name:        "ack",
		Description: "Mark a notification of a user as read.",
		Usage:       "Acknowledges one notification. Must provide both user and id.",
		Flags: []cli.Flag{
			userFlag(),
			&cli.Int64Flag{
				Name:     "id",
				Usage:    "Notification id",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return act.MarkNotificationRead(ctx, c.Int64("user"), c.Int64("id"))
		},
	}
}
