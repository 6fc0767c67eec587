package walletmonitor

import (
	"context"
	"strings"
	"time"
)

// Monitor is the scan state of one wallet on one chain.
type Monitor struct {
	UserID           int64
	WalletAddress    string
	ChainID          int64
	LastCheckedBlock uint64    // highest block already scanned, never decreases
	LastCheckedAt    time.Time // time of the last cursor write
	Active           bool
}

// CursorStorage persists the per wallet/chain block cursor.
//
// Wallet addresses are compared case-insensitively; implementations are
// expected to normalize them with NormalizeAddress.
type CursorStorage interface {
	// GetCursor returns the last checked block for the pair, or ErrCursorNotFound.
	GetCursor(ctx context.Context, walletAddress string, chainID int64) (uint64, error)

	// AdvanceCursor moves the cursor of an existing monitor forward and
	// refreshes the checked timestamp. It never lowers the cursor and never
	// changes whether the monitor is active. A missing monitor yields
	// ErrCursorNotFound.
	AdvanceCursor(ctx context.Context, walletAddress string, chainID int64, blockHeight uint64) error

	// ListActiveMonitors returns active monitors, least recently checked first.
	ListActiveMonitors(ctx context.Context) ([]Monitor, error)

	// DeactivateMonitor stops scheduling the pair without deleting its cursor.
	DeactivateMonitor(ctx context.Context, walletAddress string, chainID int64) error
}

// NormalizeAddress returns the canonical lower-case form of an EVM address.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
