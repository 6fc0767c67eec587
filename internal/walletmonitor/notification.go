package walletmonitor

import (
	"context"
	"time"
)

// NotificationTypeNewDeposit is the type of deposit notifications.
const NotificationTypeNewDeposit = "new_deposit"

// Notification tells a user about one new stored transaction.
type Notification struct {
	ID            int64
	UserID        int64
	WalletAddress string
	ChainID       int64
	Type          string
	Title         string
	Message       string
	TxHash        string
	Read          bool
	CreatedAt     time.Time
}

// NotificationStorage persists notifications.
type NotificationStorage interface {
	InsertNotification(ctx context.Context, n Notification) (int64, error)
}
