package impl

import (
	"database/sql"

	"github.com/andrisoa/malsci/internal/config"
	"github.com/andrisoa/malsci/internal/db"
	"github.com/rs/zerolog/log"
)

type dbImpl struct {
	Config config.Configuration
	db     *sql.DB
}

func New(config config.Configuration, d *sql.DB) db.DB {
	return &dbImpl{
		Config: config,
		db:     d,
	}
}

// HandleError funnels every database error through one place: a missing row
// becomes db.ErrNotFound, anything else is logged here once and passed on,
// so callers only ever compare against the package sentinels.
func (d *dbImpl) HandleError(err error) error {
	switch err {
	case sql.ErrNoRows:
		return db.ErrNotFound
	default:
		if err != nil {
			log.Error().Err(err).Msg("database error")
		}
		return err
	}
}
