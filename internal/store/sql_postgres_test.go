package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostgresDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return newPostgresDB(conn, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestPostgres_RetrieveTransientErrorIsNotRetried(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	id, user := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM secure_data r WHERE r.id = $3")).
		WithArgs(user.String(), user.String(), id.String()).
		WillReturnError(pgError(pgerrcode.SerializationFailure))

	_, err := NewStoreFactory(db).ForUser(user).
		Retrieve(context.Background(), models.EntitySecureData, id, models.NewColumnSet(models.AttrDetails))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateConnectionLossIsNotRetried(t *testing.T) {
	db, mock := newTestPostgresDB(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO secure_data (id,owner_id,details)")).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	record := models.NewEntity(models.EntitySecureData, uuid.New())
	record.Set(models.AttrDetails, "x")
	_, err := NewStoreFactory(db).ForUser(uuid.New()).Create(context.Background(), record)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_RetrievePermanentError(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	id := uuid.New()

	mock.ExpectQuery("FROM secure_data r").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := NewStoreFactory(db).ForUser(uuid.New()).
		Retrieve(context.Background(), models.EntitySecureData, id, models.AllColumns())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_RetrieveDenied(t *testing.T) {
	db, mock := newTestPostgresDB(t)
	id := uuid.New()

	mock.ExpectQuery("FROM secure_data r").
		WillReturnRows(sqlmock.NewRows([]string{"id", "details", "has_access"}).
			AddRow(id.String(), "secret", int64(0)))

	_, err := NewStoreFactory(db).ForUser(uuid.New()).
		Retrieve(context.Background(), models.EntitySecureData, id, models.NewColumnSet(models.AttrDetails))

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestPostgres_CreateUniqueViolation(t *testing.T) {
	db, mock := newTestPostgresDB(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO secure_data (id,owner_id,details)")).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	record := models.NewEntity(models.EntitySecureData, uuid.New())
	record.Set(models.AttrDetails, "x")
	_, err := NewStoreFactory(db).ForUser(uuid.New()).Create(context.Background(), record)

	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateDeadlockIsNotRetried(t *testing.T) {
	db, mock := newTestPostgresDB(t)

	mock.ExpectExec("UPDATE secure_data SET details").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	record := models.NewEntity(models.EntitySecureData, uuid.New())
	record.Set(models.AttrDetails, "x")
	err := NewStoreFactory(db).ForUser(uuid.New()).Update(context.Background(), record)

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CancelledContext(t *testing.T) {
	db, _ := newTestPostgresDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewStoreFactory(db).ForUser(uuid.New()).Delete(ctx, models.EntitySecureData, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{pgerrcode.ConnectionException, Transient},
		{pgerrcode.SerializationFailure, Transient},
		{pgerrcode.DeadlockDetected, Transient},
		{pgerrcode.CannotConnectNow, Transient},
		{pgerrcode.UniqueViolation, Permanent},
		{pgerrcode.SyntaxError, Permanent},
		{"XX000", Permanent},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(pgError(tt.code)))
		})
	}

	assert.Equal(t, Permanent, c.Classify(nil))
	assert.Equal(t, Permanent, c.Classify(errors.New("plain")))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := SQLiteErrorClassifier{}

	assert.Equal(t, Transient, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Transient, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, Permanent, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, Permanent, c.Classify(errors.New("plain")))
}
