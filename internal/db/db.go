package db

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("")
)

type DB interface {
	Snapshots
	SyncLog
}
