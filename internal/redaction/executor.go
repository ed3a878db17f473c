// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package redaction

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/models"
	"github.com/google/uuid"
)

// VaultStore is the part of the user-scoped store the executor needs.
type VaultStore interface {
	Create(ctx context.Context, entity *models.Entity) (uuid.UUID, error)
	Retrieve(ctx context.Context, logicalName string, id uuid.UUID, columns models.ColumnSet) (*models.Entity, error)
	Update(ctx context.Context, entity *models.Entity) error
	Delete(ctx context.Context, logicalName string, id uuid.UUID) error
}

// Executor applies a [Plan] to a Target view.
type Executor struct {
	logger *logger.Logger
}

// NewExecutor constructs an [Executor].
func NewExecutor(logger *logger.Logger) *Executor {
	return &Executor{logger: logger}
}

// Apply runs the vault operations of plan in order against st and then
// updates target. A failed operation stops the run and is returned; target
// is only modified once every operation succeeded.
//
// The vault record created, loaded or written by an earlier operation is
// reused by later ones instead of being fetched again.
func (x *Executor) Apply(ctx context.Context, st VaultStore, plan Plan, target *models.Email) error {
	log := logger.FromContext(ctx)

	var (
		held    *models.SecureData
		created *models.SecureData
	)

	for _, op := range plan.Ops {
		log.Debug().
			Str("func", "*Executor.Apply").
			Stringer("op", op.Kind).
			Str("secure_data_id", op.Ref.ID.String()).
			Msg("applying vault operation")

		switch op.Kind {
		case OpCreate:
			record := models.SecureData{Details: op.Details}
			id, err := st.Create(ctx, record.ToEntity())
			if err != nil {
				log.Err(err).Str("func", "*Executor.Apply").Msg("failed to create secure data record")
				return fmt.Errorf("%w: %w", ErrCreatingSecureData, err)
			}
			record.ID = id
			held, created = &record, &record

		case OpRetrieve:
			if held != nil && held.ID == op.Ref.ID {
				continue
			}
			entity, err := st.Retrieve(ctx, op.Ref.LogicalName, op.Ref.ID, models.AllColumns())
			if err != nil {
				log.Err(err).Str("func", "*Executor.Apply").
					Str("secure_data_id", op.Ref.ID.String()).
					Msg("failed to retrieve secure data record")
				return fmt.Errorf("%w: %w", ErrRetrievingSecureData, err)
			}
			record := models.SecureDataFromEntity(entity)
			held = &record

		case OpUpdate:
			record := models.SecureData{ID: op.Ref.ID, Details: op.Details}
			if err := st.Update(ctx, record.ToEntity()); err != nil {
				log.Err(err).Str("func", "*Executor.Apply").
					Str("secure_data_id", op.Ref.ID.String()).
					Msg("failed to update secure data record")
				return fmt.Errorf("%w: %w", ErrUpdatingSecureData, err)
			}
			held = &record

		case OpDelete:
			if err := st.Delete(ctx, op.Ref.LogicalName, op.Ref.ID); err != nil {
				log.Err(err).Str("func", "*Executor.Apply").
					Str("secure_data_id", op.Ref.ID.String()).
					Msg("failed to delete secure data record")
				return fmt.Errorf("%w: %w", ErrDeletingSecureData, err)
			}
		}
	}

	switch plan.Link {
	case LinkCreated:
		if created == nil {
			return fmt.Errorf("%w: nothing was created to link", ErrNoSecureDataInHand)
		}
		target.SecureDataRef = models.Set(created.Ref())
	case Unlink:
		target.SecureDataRef = models.Null[models.EntityReference]()
	}

	switch plan.Description.Source {
	case SourceValue:
		target.Description = plan.Description.Value
	case SourceVault:
		if held == nil {
			return ErrNoSecureDataInHand
		}
		details := held.Details
		if !details.Present {
			details = models.Null[string]()
		}
		target.Description = details
	}

	return nil
}
