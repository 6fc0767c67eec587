package walletmonitor

import "errors"

var (
	// ErrCursorNotFound is returned by CursorStorage when a wallet/chain pair has
	// no cursor yet. The orchestrator treats it as block 0.
	ErrCursorNotFound = errors.New("cursor not found")

	// ErrFetchFailed means the explorer could not be reached for a wallet. The
	// wallet cycle is aborted and retried on the next pass.
	ErrFetchFailed = errors.New("transaction fetch failed")

	// ErrCategoryUnavailable is returned by an Explorer when a single transfer
	// category answered with a non-success status or an unreadable payload.
	// The category is treated as empty and the cycle continues.
	ErrCategoryUnavailable = errors.New("transfer category unavailable")

	// ErrNotificationFailed wraps a notification that could not be stored.
	ErrNotificationFailed = errors.New("notification failed")
)
