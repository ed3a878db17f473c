package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/utils"
	"github.com/MKhiriev/go-secure-data/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// entityStoreFactory builds [Store] handles over one connection.
type entityStoreFactory struct {
	db  *DB
	ids *utils.UUIDGenerator
}

// entityStore is the SQL implementation of [Store] for one acting user.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// database failures are traced with the request's fields.
type entityStore struct {
	*DB
	ids    *utils.UUIDGenerator
	userID uuid.UUID
}

// NewStoreFactory constructs a [Factory] backed by db.
func NewStoreFactory(db *DB) Factory {
	return &entityStoreFactory{db: db, ids: utils.NewUUIDGenerator()}
}

// ForUser implements [Factory].
func (f *entityStoreFactory) ForUser(userID uuid.UUID) Store {
	return &entityStore{DB: f.db, ids: f.ids, userID: userID}
}

// Retrieve implements [Store].
func (s *entityStore) Retrieve(ctx context.Context, logicalName string, id uuid.UUID, columns models.ColumnSet) (*models.Entity, error) {
	log := logger.FromContext(ctx)

	t, err := lookupTable(logicalName)
	if err != nil {
		return nil, err
	}
	cols, err := t.projection(columns)
	if err != nil {
		return nil, err
	}

	q, err := buildRetrieveQuery(s.builder, t, id, cols, s.userID)
	if err != nil {
		log.Err(err).Str("func", "*entityStore.Retrieve").Msg("failed to create query")
		return nil, err
	}

	entity, allowed, err := scanEntity(s.QueryRowContext(ctx, q.sql, q.args...).Scan, t, q)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, logicalName, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "*entityStore.Retrieve").
			Str("entity", logicalName).
			Str("id", id.String()).
			Msg("failed to retrieve record")
		return nil, s.wrapDriverError(ErrExecutingQuery, err)
	}

	if q.hasAccess && !allowed {
		log.Debug().
			Str("func", "*entityStore.Retrieve").
			Str("entity", logicalName).
			Str("id", id.String()).
			Str("user_id", s.userID.String()).
			Msg("read of secured record denied")
		return nil, fmt.Errorf("%w: %s %s", ErrAccessDenied, logicalName, id)
	}

	return entity, nil
}

// RetrieveMultiple implements [Store].
func (s *entityStore) RetrieveMultiple(ctx context.Context, query *models.QueryExpression) ([]*models.Entity, error) {
	log := logger.FromContext(ctx)

	q, err := buildRetrieveMultipleQuery(s.builder, query, s.userID)
	if err != nil {
		log.Err(err).Str("func", "*entityStore.RetrieveMultiple").Msg("failed to create query")
		return nil, err
	}
	t, _ := lookupTable(query.EntityName)

	results, err := s.queryEntities(ctx, q, t)
	if err != nil {
		log.Err(err).
			Str("func", "*entityStore.RetrieveMultiple").
			Str("entity", query.EntityName).
			Msg("failed to run query")
		return nil, err
	}

	return results, nil
}

// Create implements [Store]. Owned records default to the acting user as
// owner; secured records are always owned by the acting user.
func (s *entityStore) Create(ctx context.Context, entity *models.Entity) (uuid.UUID, error) {
	log := logger.FromContext(ctx)

	t, err := lookupTable(entity.LogicalName)
	if err != nil {
		return uuid.Nil, err
	}

	id := entity.ID
	if id == uuid.Nil {
		id = s.ids.Generate()
	}

	record := entity.Clone()
	if t.owned && (t.secured || !record.Contains(models.AttrOwnerID)) {
		record.Set(models.AttrOwnerID, models.EntityReference{LogicalName: models.EntitySystemUser, ID: s.userID})
	}

	values, err := assignments(t, record)
	if err != nil {
		return uuid.Nil, err
	}

	query, args, err := buildInsertQuery(s.builder, t, id, values)
	if err != nil {
		log.Err(err).Str("func", "*entityStore.Create").Msg("failed to create query")
		return uuid.Nil, err
	}

	_, err = s.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*entityStore.Create").
			Str("entity", entity.LogicalName).
			Str("id", id.String()).
			Msg("failed to insert record")
		if postgresError(err) == pgerrcode.UniqueViolation || sqliteUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%w: %s %s", ErrAlreadyExists, entity.LogicalName, id)
		}
		return uuid.Nil, s.wrapDriverError(ErrExecutingStatement, err)
	}

	return id, nil
}

// Update implements [Store]. An entity that carries no attributes besides
// its key is a no-op.
func (s *entityStore) Update(ctx context.Context, entity *models.Entity) error {
	log := logger.FromContext(ctx)

	t, err := lookupTable(entity.LogicalName)
	if err != nil {
		return err
	}
	if entity.ID == uuid.Nil {
		return fmt.Errorf("%w: update of %s without id", ErrBuildingSQLQuery, entity.LogicalName)
	}

	values, err := assignments(t, entity)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	query, args, err := buildUpdateQuery(s.builder, t, entity.ID, values, s.userID)
	if err != nil {
		log.Err(err).Str("func", "*entityStore.Update").Msg("failed to create query")
		return err
	}

	return s.execAffectingOne(ctx, "*entityStore.Update", t, entity.ID, query, args)
}

// Delete implements [Store].
func (s *entityStore) Delete(ctx context.Context, logicalName string, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	t, err := lookupTable(logicalName)
	if err != nil {
		return err
	}

	query, args, err := buildDeleteQuery(s.builder, t, id, s.userID)
	if err != nil {
		log.Err(err).Str("func", "*entityStore.Delete").Msg("failed to create query")
		return err
	}

	return s.execAffectingOne(ctx, "*entityStore.Delete", t, id, query, args)
}

// execAffectingOne runs a statement addressed at one record. When no row is
// affected it reports [ErrAccessDenied] if the record exists and
// [ErrNotFound] otherwise.
func (s *entityStore) execAffectingOne(ctx context.Context, fn string, t *table, id uuid.UUID, query string, args []any) error {
	log := logger.FromContext(ctx)

	var affected int64
	res, err := s.ExecContext(ctx, query, args...)
	if err == nil {
		affected, err = res.RowsAffected()
	}
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Str("entity", t.logicalName).
			Str("id", id.String()).
			Msg("failed to execute statement")
		return s.wrapDriverError(ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	exists, err := s.exists(ctx, t, id)
	if err != nil {
		return err
	}
	if exists && t.secured {
		log.Debug().
			Str("func", fn).
			Str("entity", t.logicalName).
			Str("id", id.String()).
			Str("user_id", s.userID.String()).
			Msg("write to secured record denied")
		return fmt.Errorf("%w: %s %s", ErrAccessDenied, t.logicalName, id)
	}
	if exists {
		return nil
	}
	return fmt.Errorf("%w: %s %s", ErrNotFound, t.logicalName, id)
}

func (s *entityStore) exists(ctx context.Context, t *table, id uuid.UUID) (bool, error) {
	query, args, err := buildExistsQuery(s.builder, t, id)
	if err != nil {
		return false, err
	}

	var one int
	err = s.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "*entityStore.exists").
			Str("entity", t.logicalName).
			Msg("failed to check record existence")
		return false, s.wrapDriverError(ErrExecutingQuery, err)
	}
	return true, nil
}

// queryEntities runs q and scans every row into an entity of table t.
func (s *entityStore) queryEntities(ctx context.Context, q selectQuery, t *table) ([]*models.Entity, error) {
	rows, err := s.QueryContext(ctx, q.sql, q.args...)
	if err != nil {
		return nil, s.wrapDriverError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var results []*models.Entity
	for rows.Next() {
		entity, _, err := scanEntity(rows.Scan, t, q)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, entity)
	}

	if err = rows.Err(); err != nil {
		return nil, s.wrapDriverError(ErrScanningRows, err)
	}
	return results, nil
}

// scanEntity scans one row shaped by q into an entity of table t. allowed
// reports the has_access column when q projects it.
func scanEntity(scan func(dest ...any) error, t *table, q selectQuery) (entity *models.Entity, allowed bool, err error) {
	var (
		key       string
		hasAccess int64
	)

	dests := make([]any, 0, len(q.fields)+2)
	dests = append(dests, &key)
	for _, f := range q.fields {
		dests = append(dests, scanTarget(f.col))
	}
	if q.hasAccess {
		dests = append(dests, &hasAccess)
	}

	if err := scan(dests...); err != nil {
		return nil, false, err
	}

	id, err := uuid.Parse(key)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s id %q: %w", ErrInvalidAttributeValue, t.logicalName, key, err)
	}

	entity = models.NewEntity(t.logicalName, id)
	for i, f := range q.fields {
		v, ok, err := fromScanned(f.col, dests[i+1])
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}
		if f.linkedEntity != "" {
			v = models.AliasedValue{EntityLogicalName: f.linkedEntity, AttributeLogicalName: f.col.attribute, Value: v}
		}
		entity.Set(f.key, v)
	}

	return entity, hasAccess == 1, nil
}
