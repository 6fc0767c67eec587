package walletmonitor

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gabapcia/walletmonitor/internal/pkg/logger"
)

// displayAmount scales a raw integer amount by decimals and renders it with
// six fractional digits. Unreadable amounts render as zero.
func displayAmount(value string, decimals int32) string {
	v, err := decimal.NewFromString(value)
	if err != nil {
		v = decimal.Zero
	}

	return v.Shift(-decimals).StringFixed(6)
}

// buildNotification renders the deposit notification of tx.
func buildNotification(tx StoredTransaction) Notification {
	return Notification{
		UserID:        tx.UserID,
		WalletAddress: tx.WalletAddress,
		ChainID:       tx.ChainID,
		Type:          NotificationTypeNewDeposit,
		Title:         fmt.Sprintf("New %s Deposit", tx.TokenSymbol),
		Message:       fmt.Sprintf("Received %s %s in your wallet", displayAmount(tx.Value, tx.TokenDecimals), tx.TokenSymbol),
		TxHash:        tx.TxHash,
	}
}

// notify emits one notification per transaction. A failed notification is
// logged and skipped; it never affects the stored transaction or the rest of
// the batch. It returns how many notifications failed.
func (s *service) notify(ctx context.Context, txs []StoredTransaction) int {
	failed := 0

	for _, tx := range txs {
		if _, err := s.notificationStorage.InsertNotification(ctx, buildNotification(tx)); err != nil {
			failed++
			s.metrics.notificationFailures.Add(ctx, 1)

			logger.Error(ctx, "failed to emit notification",
				"tx.hash", tx.TxHash,
				"error", fmt.Errorf("%w: %w", ErrNotificationFailed, err),
			)
		}
	}

	return failed
}
