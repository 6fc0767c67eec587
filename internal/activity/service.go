// Package activity exposes what the monitor recorded for a user: stored
// deposits, notifications and the monitoring status of each wallet.
package activity

import (
	"context"
	"errors"

	"github.com/gabapcia/walletmonitor/internal/pkg/validator"
	"github.com/gabapcia/walletmonitor/internal/walletmonitor"
)

const (
	DefaultTransactionsLimit  = 50
	DefaultNotificationsLimit = 20
	MaxLimit                  = 500
)

// ErrNotificationNotFound is returned when no notification of the user has the given id.
var ErrNotificationNotFound = errors.New("notification not found")

// TransactionReader lists stored transactions.
type TransactionReader interface {
	// ListTransactionsByUser returns the newest transactions first.
	ListTransactionsByUser(ctx context.Context, userID int64, limit int) ([]walletmonitor.StoredTransaction, error)
}

// NotificationStore reads and acknowledges notifications.
type NotificationStore interface {
	// ListNotificationsByUser returns the newest notifications first.
	ListNotificationsByUser(ctx context.Context, userID int64, limit int, unreadOnly bool) ([]walletmonitor.Notification, error)

	// MarkNotificationRead flags one notification of the user as read and
	// reports whether it existed.
	MarkNotificationRead(ctx context.Context, userID, notificationID int64) (bool, error)
}

// MonitorReader lists the monitors of a user, active or not.
type MonitorReader interface {
	ListMonitorsByUser(ctx context.Context, userID int64) ([]walletmonitor.Monitor, error)
}

// Service answers user queries about monitoring results.
type Service interface {
	ListTransactions(ctx context.Context, userID int64, limit int) ([]walletmonitor.StoredTransaction, error)
	ListNotifications(ctx context.Context, userID int64, limit int, unreadOnly bool) ([]walletmonitor.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID int64) error
	ListMonitors(ctx context.Context, userID int64) ([]walletmonitor.Monitor, error)
}

type query struct {
	UserID int64 `validate:"required,gt=0"`
	Limit  int   `validate:"gte=0,lte=500"` // bounded by MaxLimit
}

// normalize validates q and replaces a zero limit with def.
func (q query) normalize(def int) (query, error) {
	if err := validator.Validate(q); err != nil {
		return query{}, err
	}

	if q.Limit == 0 {
		q.Limit = def
	}
	return q, nil
}

type service struct {
	transactions  TransactionReader
	notifications NotificationStore
	monitors      MonitorReader
}

var _ Service = (*service)(nil)

func (s *service) ListTransactions(ctx context.Context, userID int64, limit int) ([]walletmonitor.StoredTransaction, error) {
	q, err := query{UserID: userID, Limit: limit}.normalize(DefaultTransactionsLimit)
	if err != nil {
		return nil, err
	}

	return s.transactions.ListTransactionsByUser(ctx, q.UserID, q.Limit)
}

func (s *service) ListNotifications(ctx context.Context, userID int64, limit int, unreadOnly bool) ([]walletmonitor.Notification, error) {
	q, err := query{UserID: userID, Limit: limit}.normalize(DefaultNotificationsLimit)
	if err != nil {
		return nil, err
	}

	return s.notifications.ListNotificationsByUser(ctx, q.UserID, q.Limit, unreadOnly)
}

func (s *service) MarkNotificationRead(ctx context.Context, userID, notificationID int64) error {
	if err := validator.Var(notificationID, "required,gt=0"); err != nil {
		return err
	}

	if _, err := (query{UserID: userID}).normalize(0); err != nil {
		return err
	}

	found, err := s.notifications.MarkNotificationRead(ctx, userID, notificationID)
	if err != nil {
		return err
	}

	if !found {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *service) ListMonitors(ctx context.Context, userID int64) ([]walletmonitor.Monitor, error) {
	if _, err := (query{UserID: userID}).normalize(0); err != nil {
		return nil, err
	}

	return s.monitors.ListMonitorsByUser(ctx, userID)
}

// New creates the activity service.
func New(transactions TransactionReader, notifications NotificationStore, monitors MonitorReader) *service {
	return &service{
		transactions:  transactions,
		notifications: notifications,
		monitors:      monitors,
	}
}
