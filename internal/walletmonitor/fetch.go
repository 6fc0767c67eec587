package walletmonitor

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gabapcia/walletmonitor/internal/pkg/logger"
)

const (
	categoryNative   = "native"
	categoryInternal = "internal"
	categoryToken    = "token"
)

// fetchCategory runs one listing call and turns a category failure into an
// empty result, recording the category as degraded.
func fetchCategory[T any](ctx context.Context, category string, degraded *bool, list func() ([]T, error)) ([]T, error) {
	items, err := list()
	if err == nil {
		return items, nil
	}

	if errors.Is(err, ErrCategoryUnavailable) {
		logger.Warn(ctx, "transfer category degraded to empty",
			"fetch.category", category,
			"error", err,
		)

		*degraded = true
		return nil, nil
	}

	return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, category, err)
}

// fetch lists the three transfer categories above fromBlockExclusive
// concurrently and waits for all of them. Degraded categories are returned by
// name alongside the data.
func (s *service) fetch(ctx context.Context, walletAddress string, chainID int64, fromBlockExclusive uint64) (FetchedTransactions, []string, error) {
	var (
		result     FetchedTransactions
		startBlock = fromBlockExclusive + 1

		nativeDegraded, internalDegraded, tokenDegraded bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		result.Native, err = fetchCategory(gctx, categoryNative, &nativeDegraded, func() ([]NativeTransfer, error) {
			return s.explorer.ListNativeTransfers(gctx, chainID, walletAddress, startBlock)
		})
		return err
	})

	g.Go(func() (err error) {
		result.Internal, err = fetchCategory(gctx, categoryInternal, &internalDegraded, func() ([]InternalTransfer, error) {
			return s.explorer.ListInternalTransfers(gctx, chainID, walletAddress, startBlock)
		})
		return err
	})

	g.Go(func() (err error) {
		result.Token, err = fetchCategory(gctx, categoryToken, &tokenDegraded, func() ([]TokenTransfer, error) {
			return s.explorer.ListTokenTransfers(gctx, chainID, walletAddress, startBlock)
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return FetchedTransactions{}, nil, err
	}

	var degraded []string
	if nativeDegraded {
		degraded = append(degraded, categoryNative)
	}
	if internalDegraded {
		degraded = append(degraded, categoryInternal)
	}
	if tokenDegraded {
		degraded = append(degraded, categoryToken)
	}

	return result, degraded, nil
}
