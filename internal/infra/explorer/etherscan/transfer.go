package etherscan

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gabapcia/walletmonitor/internal/walletmonitor"
)

const (
	actionNative   = "txlist"
	actionInternal = "txlistinternal"
	actionToken    = "tokentx"
)

// transferResponse holds the fields shared by the txlist, txlistinternal and
// tokentx result items. Every number is a base 10 string.
type transferResponse struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	Gas             string `json:"gas"`
	GasPrice        string `json:"gasPrice"`
	GasUsed         string `json:"gasUsed"`
	IsError         string `json:"isError"`
	ContractAddress string `json:"contractAddress"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenDecimal    string `json:"tokenDecimal"`
}

// failed reports a reverted call, which moved no value.
func (t transferResponse) failed() bool {
	return t.IsError == "1"
}

func (t transferResponse) block() (uint64, time.Time, error) {
	number, err := strconv.ParseUint(t.BlockNumber, 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("block number of %s: %w", t.Hash, err)
	}

	ts, err := strconv.ParseInt(t.TimeStamp, 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("timestamp of %s: %w", t.Hash, err)
	}

	return number, time.Unix(ts, 0).UTC(), nil
}

func (t transferResponse) toNativeTransfer() (walletmonitor.NativeTransfer, error) {
	number, ts, err := t.block()
	if err != nil {
		return walletmonitor.NativeTransfer{}, err
	}

	return walletmonitor.NativeTransfer{
		Hash:           t.Hash,
		BlockNumber:    number,
		BlockTimestamp: ts,
		From:           t.From,
		To:             t.To,
		Value:          t.Value,
		GasUsed:        t.GasUsed,
		GasPrice:       t.GasPrice,
	}, nil
}

func (t transferResponse) toInternalTransfer() (walletmonitor.InternalTransfer, error) {
	number, ts, err := t.block()
	if err != nil {
		return walletmonitor.InternalTransfer{}, err
	}

	return walletmonitor.InternalTransfer{
		Hash:           t.Hash,
		BlockNumber:    number,
		BlockTimestamp: ts,
		From:           t.From,
		To:             t.To,
		Value:          t.Value,
		GasUsed:        t.GasUsed,
		GasPrice:       t.GasPrice,
	}, nil
}

func (t transferResponse) toTokenTransfer() (walletmonitor.TokenTransfer, error) {
	number, ts, err := t.block()
	if err != nil {
		return walletmonitor.TokenTransfer{}, err
	}

	var decimals int64
	if t.TokenDecimal != "" {
		decimals, err = strconv.ParseInt(t.TokenDecimal, 10, 32)
		if err != nil {
			return walletmonitor.TokenTransfer{}, fmt.Errorf("token decimals of %s: %w", t.Hash, err)
		}
	}

	return walletmonitor.TokenTransfer{
		Hash:            t.Hash,
		BlockNumber:     number,
		BlockTimestamp:  ts,
		From:            t.From,
		To:              t.To,
		Value:           t.Value,
		ContractAddress: t.ContractAddress,
		TokenSymbol:     t.TokenSymbol,
		TokenDecimals:   int32(decimals),
		GasUsed:         t.GasUsed,
		GasPrice:        t.GasPrice,
	}, nil
}

// convert maps every item with fn, dropping reverted calls when skipFailed is set.
// A malformed item makes the whole category unavailable.
func convert[T any](action string, items []transferResponse, skipFailed bool, fn func(transferResponse) (T, error)) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if skipFailed && item.failed() {
			continue
		}

		v, err := fn(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", walletmonitor.ErrCategoryUnavailable, action, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func (c *client) ListNativeTransfers(ctx context.Context, chainID int64, walletAddress string, startBlock uint64) ([]walletmonitor.NativeTransfer, error) {
	var items []transferResponse
	if err := c.listAccount(ctx, chainID, actionNative, walletAddress, startBlock, &items); err != nil {
		return nil, err
	}

	return convert(actionNative, items, true, transferResponse.toNativeTransfer)
}

func (c *client) ListInternalTransfers(ctx context.Context, chainID int64, walletAddress string, startBlock uint64) ([]walletmonitor.InternalTransfer, error) {
	var items []transferResponse
	if err := c.listAccount(ctx, chainID, actionInternal, walletAddress, startBlock, &items); err != nil {
		return nil, err
	}

	return convert(actionInternal, items, true, transferResponse.toInternalTransfer)
}

func (c *client) ListTokenTransfers(ctx context.Context, chainID int64, walletAddress string, startBlock uint64) ([]walletmonitor.TokenTransfer, error) {
	var items []transferResponse
	if err := c.listAccount(ctx, chainID, actionToken, walletAddress, startBlock, &items); err != nil {
		return nil, err
	}

	return convert(actionToken, items, false, transferResponse.toTokenTransfer)
}
