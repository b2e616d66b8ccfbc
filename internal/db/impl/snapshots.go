package impl

import (
	"context"
	"encoding/json"
	"time"

	"github.com/andrisoa/malsci/internal/domain"
)

const (
	feedSnapshot         = "feed"
	notificationSnapshot = "notifications"
)

func (d *dbImpl) saveSnapshot(ctx context.Context, name string, payload any, at time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return d.HandleError(err)
	}

	_, err = d.db.ExecContext(ctx, `INSERT INTO snapshots(name, payload, fetched_at)
			VALUES (?,?,?)
			ON CONFLICT(name) DO UPDATE SET
				payload = excluded.payload,
				fetched_at = excluded.fetched_at`,
		name, string(data), at)
	return d.HandleError(err)
}

func (d *dbImpl) loadSnapshot(ctx context.Context, name string, out any) (time.Time, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT payload, fetched_at FROM snapshots WHERE name = ?", name)

	var payload string
	var at time.Time
	if err := row.Scan(&payload, &at); err != nil {
		return time.Time{}, d.HandleError(err)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return time.Time{}, d.HandleError(err)
	}
	return at, nil
}

func (d *dbImpl) SaveFeed(ctx context.Context, items []domain.FeedItem, at time.Time) error {
	return d.saveSnapshot(ctx, feedSnapshot, items, at)
}

func (d *dbImpl) LoadFeed(ctx context.Context) ([]domain.FeedItem, time.Time, error) {
	var items []domain.FeedItem
	at, err := d.loadSnapshot(ctx, feedSnapshot, &items)
	return items, at, err
}

func (d *dbImpl) SaveNotifications(ctx context.Context, views []domain.NotificationView, at time.Time) error {
	return d.saveSnapshot(ctx, notificationSnapshot, views, at)
}

func (d *dbImpl) LoadNotifications(ctx context.Context) ([]domain.NotificationView, time.Time, error) {
	var views []domain.NotificationView
	at, err := d.loadSnapshot(ctx, notificationSnapshot, &views)
	return views, at, err
}
