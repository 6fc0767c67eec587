package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gabapcia/walletmonitor/internal/activity"
	"github.com/gabapcia/walletmonitor/internal/walletmonitor"
)

const insertTransactionQuery = `INSERT INTO wallet_transactions (user_id, wallet_address, chain_id, tx_hash, block_number, block_timestamp, from_address, to_address, value, token_address, token_symbol, token_decimals, transaction_type, gas_used, gas_price, fee)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
ON CONFLICT (chain_id, tx_hash) DO NOTHING
RETURNING id`

const listTransactionsQuery = `SELECT id, user_id, wallet_address, chain_id, tx_hash, block_number, block_timestamp, from_address, to_address, value, token_address, token_symbol, token_decimals, transaction_type, gas_used, gas_price, fee, created_at
FROM wallet_transactions
WHERE user_id = $1
ORDER BY block_timestamp DESC
LIMIT $2`

// InsertIfAbsent implements walletmonitor.TransactionStorage. A conflicting
// (chain_id, tx_hash) makes RETURNING yield no row, which is reported as false.
func (c *client) InsertIfAbsent(ctx context.Context, tx walletmonitor.StoredTransaction) (bool, error) {
	var id int64
	err := c.db.QueryRowContext(ctx, insertTransactionQuery,
		tx.UserID,
		tx.WalletAddress,
		tx.ChainID,
		tx.TxHash,
		int64(tx.BlockNumber),
		tx.BlockTimestamp,
		tx.From,
		tx.To,
		tx.Value,
		sql.NullString{String: tx.TokenAddress, Valid: tx.TokenAddress != ""},
		tx.TokenSymbol,
		tx.TokenDecimals,
		tx.Type,
		tx.GasUsed,
		tx.GasPrice,
		tx.Fee,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

// ListTransactionsByUser implements activity.TransactionReader.
func (c *client) ListTransactionsByUser(ctx context.Context, userID int64, limit int) ([]walletmonitor.StoredTransaction, error) {
	rows, err := c.db.QueryContext(ctx, listTransactionsQuery, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []walletmonitor.StoredTransaction
	for rows.Next() {
		var (
			tx           walletmonitor.StoredTransaction
			blockNumber  int64
			tokenAddress sql.NullString
		)

		if err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.WalletAddress,
			&tx.ChainID,
			&tx.TxHash,
			&blockNumber,
			&tx.BlockTimestamp,
			&tx.From,
			&tx.To,
			&tx.Value,
			&tokenAddress,
			&tx.TokenSymbol,
			&tx.TokenDecimals,
			&tx.Type,
			&tx.GasUsed,
			&tx.GasPrice,
			&tx.Fee,
			&tx.CreatedAt,
		); err != nil {
			return nil, err
		}

		tx.BlockNumber = uint64(blockNumber)
		tx.TokenAddress = tokenAddress.String
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

var (
	_ walletmonitor.TransactionStorage = (*client)(nil)
	_ activity.TransactionReader       = (*client)(nil)
)
