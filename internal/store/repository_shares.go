package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/google/uuid"
)

// sharesRepository is the SQL implementation of [SharesRepository] over the
// "secure_data_shares" table.
type sharesRepository struct {
	*DB
}

// NewSharesRepository constructs a [SharesRepository] backed by db.
func NewSharesRepository(db *DB) SharesRepository {
	return &sharesRepository{DB: db}
}

// Grant lets userID read and write the secure data record. Granting an
// existing share is a no-op.
func (r *sharesRepository) Grant(ctx context.Context, ownerID, secureDataID, userID uuid.UUID) error {
	if err := r.checkOwner(ctx, ownerID, secureDataID); err != nil {
		return err
	}

	query, args, err := buildGrantQuery(r.builder, secureDataID, userID)
	if err != nil {
		return err
	}

	return r.exec(ctx, "*sharesRepository.Grant", secureDataID, query, args)
}

// Revoke removes the share of the record with userID. Revoking a share
// that does not exist is a no-op.
func (r *sharesRepository) Revoke(ctx context.Context, ownerID, secureDataID, userID uuid.UUID) error {
	if err := r.checkOwner(ctx, ownerID, secureDataID); err != nil {
		return err
	}

	query, args, err := buildRevokeQuery(r.builder, secureDataID, userID)
	if err != nil {
		return err
	}

	return r.exec(ctx, "*sharesRepository.Revoke", secureDataID, query, args)
}

func (r *sharesRepository) exec(ctx context.Context, fn string, secureDataID uuid.UUID, query string, args []any) error {
	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Str("secure_data_id", secureDataID.String()).
			Msg("failed to change share")
		return r.wrapDriverError(ErrExecutingStatement, err)
	}
	return nil
}

// checkOwner returns [ErrNotFound] for a missing record and
// [ErrAccessDenied] when ownerID does not own it.
func (r *sharesRepository) checkOwner(ctx context.Context, ownerID, secureDataID uuid.UUID) error {
	query, args, err := buildOwnerQuery(r.builder, secureDataID)
	if err != nil {
		return err
	}

	var owner string
	err = r.QueryRowContext(ctx, query, args...).Scan(&owner)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: securedata %s", ErrNotFound, secureDataID)
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "*sharesRepository.checkOwner").
			Str("secure_data_id", secureDataID.String()).
			Msg("failed to look up owner")
		return r.wrapDriverError(ErrExecutingQuery, err)
	}

	if owner != ownerID.String() {
		return fmt.Errorf("%w: securedata %s is not owned by %s", ErrAccessDenied, secureDataID, ownerID)
	}
	return nil
}
