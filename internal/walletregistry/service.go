package walletregistry

import (
	"context"

	"github.com/gabapcia/walletmonitor/internal/chainregistry"
)

// Service starts and stops the monitoring of user wallets.
//
// Registering a user and initializing the monitoring of its wallet are two
// separate steps: the caller creates the account first and then calls
// InitializeMonitoring, reporting its error to the user as a warning.
type Service interface {
	// InitializeMonitoring creates or reactivates the monitor of the wallet on
	// every registered chain with its cursor at the current chain head, so the
	// scan only looks forward from now. An existing cursor above the head is
	// kept. Blocks between a deactivation and the next initialization are
	// not scanned.
	//
	// Parameters:
	//   - ctx: controls cancellation and timeout.
	//   - userID: owner of the wallet, must be positive.
	//   - address: EVM address of the wallet.
	//
	// Returns:
	//   - The chains that were initialized.
	//   - A validation error, or an error wrapping ErrPartialInitialization
	//     that joins the failure of every chain that could not be initialized.
	InitializeMonitoring(ctx context.Context, userID int64, address string) ([]InitializedMonitor, error)

	// DeactivateMonitoring stops the monitoring of a wallet on one chain. The
	// record and its cursor are kept, so a later initialization never moves
	// the cursor below the last scanned block.
	DeactivateMonitoring(ctx context.Context, address string, chainID int64) error
}

type service struct {
	registry       chainregistry.Registry
	chainHead      ChainHeadReader
	monitorStorage MonitorStorage
}

var _ Service = (*service)(nil)

// New creates the wallet registry service.
func New(registry chainregistry.Registry, chainHead ChainHeadReader, ms MonitorStorage) *service {
	return &service{
		registry:       registry,
		chainHead:      chainHead,
		monitorStorage: ms,
	}
}
