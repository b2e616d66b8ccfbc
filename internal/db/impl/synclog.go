package impl

import (
	"context"

	"github.com/andrisoa/malsci/internal/domain"
)

func (d *dbImpl) RecordPass(ctx context.Context, rec domain.PassRecord) error {
	_, err := d.db.ExecContext(ctx,
		"INSERT INTO sync_log(name, started_at, finished_at, error) VALUES (?,?,?,?)",
		rec.Name, rec.StartedAt, rec.FinishedAt, rec.Error)
	return d.HandleError(err)
}

func (d *dbImpl) LastPass(ctx context.Context, name string) (domain.PassRecord, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT name, started_at, finished_at, error FROM sync_log WHERE name = ? ORDER BY finished_at DESC, id DESC LIMIT 1",
		name)

	var rec domain.PassRecord
	err := row.Scan(&rec.Name, &rec.StartedAt, &rec.FinishedAt, &rec.Error)
	return rec, d.HandleError(err)
}
