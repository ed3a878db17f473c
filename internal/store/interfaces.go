package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-secure-data/models"
	"github.com/google/uuid"
)

// ErrorClassificator decides whether a driver error is transient. Transient
// errors are reported with [ErrUnavailable].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Store is the record store as seen by one acting user. Records of a
// secured entity type are only visible to their owner and the users they
// are shared with.
//
// Returned entities never carry nil attributes: a NULL column is left out.
type Store interface {
	// Retrieve loads one record. It returns [ErrNotFound] when no record has
	// the id and [ErrAccessDenied] when the user may not read it.
	Retrieve(ctx context.Context, logicalName string, id uuid.UUID, columns models.ColumnSet) (*models.Entity, error)
	// RetrieveMultiple runs a query. Inaccessible secured records are left
	// out of the result.
	RetrieveMultiple(ctx context.Context, query *models.QueryExpression) ([]*models.Entity, error)
	// Create inserts a record and returns its id. A zero entity id is
	// replaced by a fresh one.
	Create(ctx context.Context, entity *models.Entity) (uuid.UUID, error)
	// Update writes the attributes carried by entity. A nil attribute
	// clears the column.
	Update(ctx context.Context, entity *models.Entity) error
	// Delete removes a record.
	Delete(ctx context.Context, logicalName string, id uuid.UUID) error
}

// Factory hands out stores scoped to an acting user.
type Factory interface {
	ForUser(userID uuid.UUID) Store
}

// SharesRepository grants and revokes access to secure data records.
// Only the owner of a record may change who it is shared with.
type SharesRepository interface {
	Grant(ctx context.Context, ownerID, secureDataID, userID uuid.UUID) error
	Revoke(ctx context.Context, ownerID, secureDataID, userID uuid.UUID) error
}
