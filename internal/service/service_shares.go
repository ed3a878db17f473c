package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/store"
	"github.com/google/uuid"
)

type sharesService struct {
	shares store.SharesRepository

	logger *logger.Logger
}

func NewSharesService(shares store.SharesRepository, logger *logger.Logger) SharesService {
	return &sharesService{shares: shares, logger: logger}
}

// Grant lets userID read the vault record secureDataID. Only the owner of
// the record may grant; granting twice is not an error.
func (s *sharesService) Grant(ctx context.Context, ownerID, secureDataID, userID uuid.UUID) error {
	if err := requireIDs(ownerID, secureDataID, userID); err != nil {
		return err
	}

	if err := s.shares.Grant(ctx, ownerID, secureDataID, userID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sharesService.Grant").
			Str("secure_data_id", secureDataID.String()).
			Str("user_id", userID.String()).
			Msg("failed to grant access")
		return fmt.Errorf("error granting access to secure data: %w", err)
	}
	return nil
}

// Revoke takes back the access granted to userID. Revoking a share that does
// not exist is not an error.
func (s *sharesService) Revoke(ctx context.Context, ownerID, secureDataID, userID uuid.UUID) error {
	if err := requireIDs(ownerID, secureDataID, userID); err != nil {
		return err
	}

	if err := s.shares.Revoke(ctx, ownerID, secureDataID, userID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sharesService.Revoke").
			Str("secure_data_id", secureDataID.String()).
			Str("user_id", userID.String()).
			Msg("failed to revoke access")
		return fmt.Errorf("error revoking access to secure data: %w", err)
	}
	return nil
}

func requireIDs(ownerID, secureDataID, userID uuid.UUID) error {
	switch {
	case ownerID == uuid.Nil:
		return fmt.Errorf("%w: owner id", ErrMissingParameter)
	case secureDataID == uuid.Nil:
		return fmt.Errorf("%w: secure data id", ErrMissingParameter)
	case userID == uuid.Nil:
		return fmt.Errorf("%w: user id", ErrMissingParameter)
	}
	return nil
}
