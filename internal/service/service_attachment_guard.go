package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/store"
	"github.com/MKhiriev/go-secure-data/models"
)

// vaultAlias is the alias of the vault record joined to the parent email.
const vaultAlias = "sd"

type attachmentGuardService struct {
	logger *logger.Logger
}

// NewAttachmentGuardService builds the read check of attachments.
func NewAttachmentGuardService(logger *logger.Logger) AttachmentGuardService {
	return &attachmentGuardService{logger: logger}
}

// Check rejects the read of attachment with [store.ErrAccessDenied] when its
// parent email has a vault record the caller cannot see.
//
// Reads that do not project the body pass without any lookup; the guard's
// own lookup of the owning activity is such a read.
func (s *attachmentGuardService) Check(ctx context.Context, st store.Store, attachment *models.Entity) error {
	log := logger.FromContext(ctx)

	view := models.AttachmentFromEntity(attachment)
	if !view.HasBody {
		return nil
	}

	parent, ok, err := s.owningActivity(ctx, st, view)
	if err != nil {
		log.Err(err).
			Str("func", "*attachmentGuardService.Check").
			Str("attachment_id", view.ID.String()).
			Msg("failed to resolve owning activity")
		return fmt.Errorf("error resolving owner of attachment %s: %w", view.ID, err)
	}
	if !ok || (parent.LogicalName != "" && parent.LogicalName != models.EntityEmail) {
		return nil
	}

	query := models.NewQueryExpression(models.EntityEmail, models.NewColumnSet(models.AttrSecureDataID)).
		AddCondition(models.AttrActivityID, models.ConditionEqual, parent.ID).
		AddLink(models.LinkEntity{
			LinkToEntityName:      models.EntitySecureData,
			LinkFromAttributeName: models.AttrSecureDataID,
			LinkToAttributeName:   models.AttrSecureDataID,
			JoinOperator:          models.JoinLeftOuter,
			EntityAlias:           vaultAlias,
			Columns:               models.NewColumnSet(models.AttrSecureDataID),
		})

	emails, err := st.RetrieveMultiple(ctx, query)
	if err != nil {
		log.Err(err).
			Str("func", "*attachmentGuardService.Check").
			Str("email_id", parent.ID.String()).
			Msg("failed to query parent email")
		return fmt.Errorf("error querying parent of attachment %s: %w", view.ID, err)
	}

	joinedKey := models.AliasedAttribute(vaultAlias, models.AttrSecureDataID)
	for _, email := range emails {
		if email.Contains(models.AttrSecureDataID) && !email.Contains(joinedKey) {
			log.Debug().
				Str("func", "*attachmentGuardService.Check").
				Str("attachment_id", view.ID.String()).
				Str("email_id", email.ID.String()).
				Msg("attachment of a secured email denied")
			return fmt.Errorf("%w: attachment %s", store.ErrAccessDenied, view.ID)
		}
	}

	return nil
}

// owningActivity returns the objectid of the attachment, reading it from the
// store when the projection left it out.
func (s *attachmentGuardService) owningActivity(ctx context.Context, st store.Store, view models.Attachment) (models.EntityReference, bool, error) {
	if view.ObjectRef.Present {
		ref, ok := view.ObjectRef.Get()
		return ref, ok, nil
	}

	stored, err := st.Retrieve(ctx, models.EntityAttachment, view.ID, models.NewColumnSet(models.AttrObjectID))
	if err != nil {
		return models.EntityReference{}, false, err
	}
	ref, ok := models.ReferenceField(stored, models.AttrObjectID).Get()
	return ref, ok, nil
}
