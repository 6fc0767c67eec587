// Package postgres keeps the transaction ledger and the notifications in
// PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

type client struct {
	db *sql.DB
}

// Close releases the connection pool.
func (c *client) Close() error {
	return c.db.Close()
}

// NewClient opens a pool on dsn and checks it with a ping.
func NewClient(ctx context.Context, dsn string) (*client, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &client{db: db}, nil
}

// migrations create the schema. Every statement is idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS wallet_transactions (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		wallet_address VARCHAR(42) NOT NULL,
		chain_id BIGINT NOT NULL,
		tx_hash VARCHAR(66) NOT NULL,
		block_number BIGINT NOT NULL,
		block_timestamp TIMESTAMPTZ NOT NULL,
		from_address VARCHAR(42) NOT NULL,
		to_address VARCHAR(42) NOT NULL,
		value NUMERIC(78,0) NOT NULL,
		token_address VARCHAR(42),
		token_symbol TEXT NOT NULL,
		token_decimals INTEGER NOT NULL,
		transaction_type VARCHAR(20) NOT NULL,
		gas_used TEXT NOT NULL,
		gas_price TEXT NOT NULL,
		fee NUMERIC(78,0) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (chain_id, tx_hash)
	)`,
	`ALTER TABLE wallet_transactions ALTER COLUMN token_symbol TYPE TEXT`,
	`CREATE INDEX IF NOT EXISTS idx_wallet_transactions_user_timestamp ON wallet_transactions (user_id, block_timestamp DESC)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		wallet_address VARCHAR(42) NOT NULL,
		chain_id BIGINT NOT NULL,
		notification_type VARCHAR(20) NOT NULL,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		tx_hash VARCHAR(66) NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user_created ON notifications (user_id, created_at DESC)`,
}

// Migrate applies the schema in order.
func (c *client) Migrate(ctx context.Context) error {
	for i, query := range migrations {
		if _, err := c.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}

	return nil
}
