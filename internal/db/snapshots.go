package db

import (
	"context"
	"time"

	"github.com/andrisoa/malsci/internal/domain"
)

// Snapshots persists the last good result of each polling pass so the local
// server can keep answering after a restart or while the remote API is down.
type Snapshots interface {
	SaveFeed(ctx context.Context, items []domain.FeedItem, at time.Time) error
	// LoadFeed returns ErrNotFound when no pass has ever been persisted.
	LoadFeed(ctx context.Context) ([]domain.FeedItem, time.Time, error)
	SaveNotifications(ctx context.Context, views []domain.NotificationView, at time.Time) error
	LoadNotifications(ctx context.Context) ([]domain.NotificationView, time.Time, error)
}
