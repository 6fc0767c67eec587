package walletmonitor

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gabapcia/walletmonitor/internal/chainregistry"
	"github.com/gabapcia/walletmonitor/internal/pkg/logger"
	"github.com/gabapcia/walletmonitor/internal/pkg/types"
)

// hasPositiveValue reports whether a raw base 10 amount parses and is above zero.
func hasPositiveValue(value string) bool {
	v, err := decimal.NewFromString(value)
	return err == nil && v.IsPositive()
}

// computeFee returns gasUsed * gasPrice, or "0" when either side is missing
// or unreadable.
func computeFee(gasUsed, gasPrice string) string {
	used, err := decimal.NewFromString(gasUsed)
	if err != nil {
		return "0"
	}

	price, err := decimal.NewFromString(gasPrice)
	if err != nil {
		return "0"
	}

	return used.Mul(price).String()
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// classify keeps the inbound transfers of the monitored wallet and normalizes
// them into StoredTransaction records.
//
// Native and internal transfers without a positive value are dropped, token
// transfers are kept whatever their value. A hash seen twice in the same
// batch is kept once, in native, internal, token order.
func classify(m Monitor, chain chainregistry.Chain, fetched FetchedTransactions) []StoredTransaction {
	var (
		wallet = NormalizeAddress(m.WalletAddress)
		seen   = types.NewSet[string]()
		out    = make([]StoredTransaction, 0, fetched.Len())
	)

	base := func(hash string) (StoredTransaction, bool) {
		if seen.Has(hash) {
			return StoredTransaction{}, false
		}
		seen.Add(hash)

		return StoredTransaction{
			UserID:        m.UserID,
			WalletAddress: wallet,
			ChainID:       m.ChainID,
			TxHash:        hash,
			Type:          TransactionTypeDeposit,
		}, true
	}

	for _, t := range fetched.Native {
		if NormalizeAddress(t.To) != wallet || !hasPositiveValue(t.Value) {
			continue
		}

		tx, ok := base(t.Hash)
		if !ok {
			continue
		}

		tx.BlockNumber, tx.BlockTimestamp = t.BlockNumber, t.BlockTimestamp
		tx.From, tx.To, tx.Value = t.From, t.To, t.Value
		tx.TokenSymbol, tx.TokenDecimals = chain.NativeSymbol, nativeDecimals
		tx.GasUsed, tx.GasPrice = orZero(t.GasUsed), orZero(t.GasPrice)
		tx.Fee = computeFee(t.GasUsed, t.GasPrice)

		out = append(out, tx)
	}

	for _, t := range fetched.Internal {
		if NormalizeAddress(t.To) != wallet || !hasPositiveValue(t.Value) {
			continue
		}

		tx, ok := base(t.Hash)
		if !ok {
			continue
		}

		tx.BlockNumber, tx.BlockTimestamp = t.BlockNumber, t.BlockTimestamp
		tx.From, tx.To, tx.Value = t.From, t.To, t.Value
		tx.TokenSymbol, tx.TokenDecimals = chain.NativeSymbol, nativeDecimals
		tx.GasUsed, tx.GasPrice = orZero(t.GasUsed), orZero(t.GasPrice)
		tx.Fee = computeFee(t.GasUsed, t.GasPrice)

		out = append(out, tx)
	}

	for _, t := range fetched.Token {
		if NormalizeAddress(t.To) != wallet {
			continue
		}

		tx, ok := base(t.Hash)
		if !ok {
			continue
		}

		tx.BlockNumber, tx.BlockTimestamp = t.BlockNumber, t.BlockTimestamp
		tx.From, tx.To, tx.Value = t.From, t.To, orZero(t.Value)
		tx.TokenAddress, tx.TokenSymbol, tx.TokenDecimals = t.ContractAddress, t.TokenSymbol, t.TokenDecimals
		tx.GasUsed, tx.GasPrice = orZero(t.GasUsed), orZero(t.GasPrice)
		tx.Fee = computeFee(t.GasUsed, t.GasPrice)

		out = append(out, tx)
	}

	return out
}

// store inserts candidates one by one and returns those that were new.
// On a storage error it stops and returns what was inserted so far together
// with the error, so the caller can still notify them.
func (s *service) store(ctx context.Context, candidates []StoredTransaction) ([]StoredTransaction, error) {
	inserted := make([]StoredTransaction, 0, len(candidates))

	for _, tx := range candidates {
		created, err := s.transactionStorage.InsertIfAbsent(ctx, tx)
		if err != nil {
			return inserted, fmt.Errorf("store transaction %s: %w", tx.TxHash, err)
		}

		if !created {
			logger.Debug(ctx, "transaction already stored", "tx.hash", tx.TxHash)
			continue
		}

		inserted = append(inserted, tx)
	}

	return inserted, nil
}
