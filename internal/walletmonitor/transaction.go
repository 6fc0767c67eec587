package walletmonitor

import (
	"context"
	"time"
)

// TransactionTypeDeposit classifies an inbound transfer.
const TransactionTypeDeposit = "deposit"

// nativeDecimals is the decimals of every EVM native asset.
const nativeDecimals = 18

type (
	// NativeTransfer is a plain value transfer as listed by the explorer.
	NativeTransfer struct {
		Hash           string
		BlockNumber    uint64
		BlockTimestamp time.Time
		From           string
		To             string
		Value          string // wei, base 10
		GasUsed        string
		GasPrice       string
	}

	// InternalTransfer is a value transfer caused by a contract call. Explorers
	// usually report no gas price for these.
	InternalTransfer struct {
		Hash           string
		BlockNumber    uint64
		BlockTimestamp time.Time
		From           string
		To             string
		Value          string
		GasUsed        string
		GasPrice       string
	}

	// TokenTransfer is an ERC-20 style transfer event.
	TokenTransfer struct {
		Hash            string
		BlockNumber     uint64
		BlockTimestamp  time.Time
		From            string
		To              string
		Value           string // smallest token unit, base 10
		ContractAddress string
		TokenSymbol     string
		TokenDecimals   int32
		GasUsed         string
		GasPrice        string
	}

	// FetchedTransactions groups the three transfer categories of one fetch.
	FetchedTransactions struct {
		Native   []NativeTransfer
		Internal []InternalTransfer
		Token    []TokenTransfer
	}
)

// Len returns the number of transfers across all categories.
func (f FetchedTransactions) Len() int {
	return len(f.Native) + len(f.Internal) + len(f.Token)
}

// StoredTransaction is the normalized, persisted form of an inbound transfer.
// It is unique per (ChainID, TxHash).
type StoredTransaction struct {
	ID             int64
	UserID         int64
	WalletAddress  string
	ChainID        int64
	TxHash         string
	BlockNumber    uint64
	BlockTimestamp time.Time
	From           string
	To             string
	Value          string
	TokenAddress   string // empty for native and internal transfers
	TokenSymbol    string
	TokenDecimals  int32
	Type           string
	GasUsed        string
	GasPrice       string
	Fee            string
	CreatedAt      time.Time
}

// TransactionStorage persists stored transactions.
type TransactionStorage interface {
	// InsertIfAbsent stores tx unless (ChainID, TxHash) already exists. It
	// reports whether a new row was created; a duplicate is not an error.
	InsertIfAbsent(ctx context.Context, tx StoredTransaction) (bool, error)
}

// Explorer lists transfers of a wallet from a block explorer API.
//
// Listing methods return transfers with block number >= startBlock in
// ascending order, capped at one page. A category-level failure must wrap
// ErrCategoryUnavailable; any other error is treated as a transport failure.
type Explorer interface {
	// ChainHead returns the latest block number of the chain.
	ChainHead(ctx context.Context, chainID int64) (uint64, error)

	ListNativeTransfers(ctx context.Context, chainID int64, walletAddress string, startBlock uint64) ([]NativeTransfer, error)
	ListInternalTransfers(ctx context.Context, chainID int64, walletAddress string, startBlock uint64) ([]InternalTransfer, error)
	ListTokenTransfers(ctx context.Context, chainID int64, walletAddress string, startBlock uint64) ([]TokenTransfer, error)
}
