package db

import (
	"context"

	"github.com/andrisoa/malsci/internal/domain"
)

type SyncLog interface {
	RecordPass(ctx context.Context, rec domain.PassRecord) error
	// LastPass returns the most recent record for the named poller, or
	// ErrNotFound when it has never run.
	LastPass(ctx context.Context, name string) (domain.PassRecord, error)
}
