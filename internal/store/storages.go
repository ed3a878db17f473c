package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-data/internal/config"
	"github.com/MKhiriev/go-secure-data/internal/logger"
)

// Storages bundles the repositories built over one migrated connection.
type Storages struct {
	Entities Factory
	Shares   SharesRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.Driver, applies the
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		_ = db.Close()
		return nil, err
	}

	return newStorages(db), nil
}

func newStorages(db *DB) *Storages {
	return &Storages{
		Entities: NewStoreFactory(db),
		Shares:   NewSharesRepository(db),
		db:       db,
	}
}

// Close closes the underlying connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
