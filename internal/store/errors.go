package store

import (
	"errors"

	"github.com/MKhiriev/go-secure-data/models"
)

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccessDenied is returned when the record exists but the acting user
	// may not read or change it.
	ErrAccessDenied = errors.New("access to the record is denied")

	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = errors.New("record was not found")

	// ErrAlreadyExists is returned when a create collides with an existing
	// primary key.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrUnknownEntity is returned for a logical name that has no table.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrUnknownAttribute is returned for an attribute the entity's table
	// has no column for.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrInvalidAttributeValue is returned when an attribute value does not
	// match the column's kind.
	ErrInvalidAttributeValue = models.ErrInvalidAttributeValue

	// ErrUnavailable is wrapped into query and statement errors the driver
	// reports as temporary, such as a lost connection. Nothing is retried.
	ErrUnavailable = errors.New("database is temporarily unavailable")

	// ErrUnsupportedDriver is returned by [NewStorages] for a driver other
	// than pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails
	// mid-way.
	ErrScanningRows = errors.New("failed to scan rows")
)
