package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/migrations"
)

// DB is a database connection together with the driver specifics the
// repositories need: the goose dialect, the placeholder format and the
// error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// wrapDriverError wraps a failed query or statement in op. Errors the
// classifier reports as [Transient] also carry [ErrUnavailable]. Statements
// are never repeated here.
func (db *DB) wrapDriverError(op, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Transient {
		return fmt.Errorf("%w: %w: %w", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}
