package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a driver error reflects a temporary
// condition of the database rather than of the statement.
type ErrorClassification int

const (
	// Permanent is the default for unrecognised errors.
	Permanent ErrorClassification = iota

	// Transient marks failures such as a lost connection or a
	// serialization conflict. The caller may resubmit the whole event.
	Transient
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return Permanent
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
//
// Connection exceptions (class 08) and transaction rollbacks (class 40,
// which covers serialization failures and deadlocks) are transient, as is
// 57P03 raised while the server is starting up. Everything else, constraint
// violations included, is permanent.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Transient
	}
	return Permanent
}
