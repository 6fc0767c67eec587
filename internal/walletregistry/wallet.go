package walletregistry

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/walletmonitor/internal/pkg/logger"
	"github.com/gabapcia/walletmonitor/internal/pkg/validator"
	"github.com/gabapcia/walletmonitor/internal/walletmonitor"
)

// ErrPartialInitialization is returned when at least one chain could not be
// initialized. Chains that succeeded stay initialized.
var ErrPartialInitialization = errors.New("wallet monitoring partially initialized")

// WalletIdentifier is a validated user wallet.
type WalletIdentifier struct {
	UserID  int64  `validate:"required,gt=0"`
	Address string `validate:"required,eth_addr"`
}

// InitializedMonitor is a chain whose cursor was set by InitializeMonitoring.
type InitializedMonitor struct {
	ChainID   int64
	ChainName string
	Block     uint64
}

// ChainHeadReader returns the latest block of a chain.
type ChainHeadReader interface {
	ChainHead(ctx context.Context, chainID int64) (uint64, error)
}

// MonitorStorage is the subset of the cursor store the registry uses.
type MonitorStorage interface {
	GetCursor(ctx context.Context, walletAddress string, chainID int64) (uint64, error)
	UpsertCursor(ctx context.Context, userID int64, walletAddress string, chainID int64, blockHeight uint64) error
	DeactivateMonitor(ctx context.Context, walletAddress string, chainID int64) error
}

func buildWalletIdentifier(userID int64, address string) (WalletIdentifier, error) {
	id := WalletIdentifier{
		UserID:  userID,
		Address: address,
	}

	if err := validator.Validate(id); err != nil {
		return WalletIdentifier{}, err
	}

	id.Address = walletmonitor.NormalizeAddress(id.Address)
	return id, nil
}

func (s *service) InitializeMonitoring(ctx context.Context, userID int64, address string) ([]InitializedMonitor, error) {
	id, err := buildWalletIdentifier(userID, address)
	if err != nil {
		return nil, err
	}

	ctx = logger.Derive(ctx, "wallet.address", id.Address, "wallet.user_id", id.UserID)

	var (
		initialized []InitializedMonitor
		errs        []error
	)

	for _, chain := range s.registry.Chains() {
		head, err := s.chainHead.ChainHead(ctx, chain.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("chain %d: read chain head: %w", chain.ID, err))
			continue
		}

		current, err := s.monitorStorage.GetCursor(ctx, id.Address, chain.ID)
		if err != nil && !errors.Is(err, walletmonitor.ErrCursorNotFound) {
			errs = append(errs, fmt.Errorf("chain %d: read cursor: %w", chain.ID, err))
			continue
		}

		// A lagging head never moves an existing cursor back.
		block := max(head, current)
		if err := s.monitorStorage.UpsertCursor(ctx, id.UserID, id.Address, chain.ID, block); err != nil {
			errs = append(errs, fmt.Errorf("chain %d: write cursor: %w", chain.ID, err))
			continue
		}

		initialized = append(initialized, InitializedMonitor{ChainID: chain.ID, ChainName: chain.Name, Block: block})
		logger.Info(ctx, "wallet monitoring initialized", "wallet.chain_id", chain.ID, "cursor.block", block)
	}

	if len(errs) > 0 {
		err := errors.Join(append([]error{ErrPartialInitialization}, errs...)...)
		logger.Warn(ctx, "wallet monitoring initialization incomplete",
			"chains.initialized", len(initialized),
			"chains.failed", len(errs),
			"error", err,
		)
		return initialized, err
	}

	return initialized, nil
}

func (s *service) DeactivateMonitoring(ctx context.Context, address string, chainID int64) error {
	if err := validator.Var(address, "required,eth_addr"); err != nil {
		return err
	}

	if _, err := s.registry.ConfigFor(chainID); err != nil {
		return err
	}

	return s.monitorStorage.DeactivateMonitor(ctx, walletmonitor.NormalizeAddress(address), chainID)
}
