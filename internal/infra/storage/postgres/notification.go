package postgres

import (
	"context"

	"github.com/gabapcia/walletmonitor/internal/activity"
	"github.com/gabapcia/walletmonitor/internal/walletmonitor"
)

const insertNotificationQuery = `INSERT INTO notifications (user_id, wallet_address, chain_id, notification_type, title, message, tx_hash)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

const listNotificationsQuery = `SELECT id, user_id, wallet_address, chain_id, notification_type, title, message, tx_hash, is_read, created_at
FROM notifications
WHERE user_id = $1 AND ($2::boolean = FALSE OR is_read = FALSE)
ORDER BY created_at DESC, id DESC
LIMIT $3`

const markNotificationReadQuery = `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`

// InsertNotification implements walletmonitor.NotificationStorage.
func (c *client) InsertNotification(ctx context.Context, n walletmonitor.Notification) (int64, error) {
	var id int64
	err := c.db.QueryRowContext(ctx, insertNotificationQuery,
		n.UserID,
		n.WalletAddress,
		n.ChainID,
		n.Type,
		n.Title,
		n.Message,
		n.TxHash,
	).Scan(&id)

	return id, err
}

// ListNotificationsByUser implements activity.NotificationStore.
func (c *client) ListNotificationsByUser(ctx context.Context, userID int64, limit int, unreadOnly bool) ([]walletmonitor.Notification, error) {
	rows, err := c.db.QueryContext(ctx, listNotificationsQuery, userID, unreadOnly, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []walletmonitor.Notification
	for rows.Next() {
		var n walletmonitor.Notification
		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.WalletAddress,
			&n.ChainID,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.TxHash,
			&n.Read,
			&n.CreatedAt,
		); err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkNotificationRead implements activity.NotificationStore.
func (c *client) MarkNotificationRead(ctx context.Context, userID, notificationID int64) (bool, error) {
	res, err := c.db.ExecContext(ctx, markNotificationReadQuery, notificationID, userID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

var (
	_ walletmonitor.NotificationStorage = (*client)(nil)
	_ activity.NotificationStore        = (*client)(nil)
)
