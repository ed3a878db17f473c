package service

import (
	"context"

	"github.com/MKhiriev/go-secure-data/internal/config"
	"github.com/MKhiriev/go-secure-data/internal/store"
	"github.com/MKhiriev/go-secure-data/models"
)

// DefaultDeniedText replaces the description when the caller may not read
// the vault record.
const DefaultDeniedText = "This is a protected email - please contact the owner to get access!"

type vaultGatewayService struct {
	deniedText string
}

// NewVaultGatewayService builds the read path of secured emails.
func NewVaultGatewayService(cfg config.Redaction) VaultGatewayService {
	deniedText := cfg.DeniedText
	if deniedText == "" {
		deniedText = DefaultDeniedText
	}
	return &vaultGatewayService{deniedText: deniedText}
}

// Reveal looks up the vault reference of email and copies the vault details
// into its description. A vault record without details leaves the
// description alone.
//
// Any failure, a denied vault read above all, puts the denied text in the
// description. It is neither logged nor returned, so the reader cannot tell
// a missing record from one it may not see.
func (s *vaultGatewayService) Reveal(ctx context.Context, st store.Store, email *models.Entity) {
	if email == nil {
		return
	}

	details, err := s.vaultDetails(ctx, st, email)
	if err != nil {
		email.Set(models.AttrDescription, s.deniedText)
		return
	}
	if value, ok := details.Get(); ok {
		email.Set(models.AttrDescription, value)
	}
}

func (s *vaultGatewayService) vaultDetails(ctx context.Context, st store.Store, email *models.Entity) (models.Field[string], error) {
	current, err := st.Retrieve(ctx, email.LogicalName, email.ID, models.NewColumnSet(models.AttrSecureDataID))
	if err != nil {
		return models.Field[string]{}, err
	}

	ref, ok := models.ReferenceField(current, models.AttrSecureDataID).Get()
	if !ok {
		return models.Field[string]{}, nil
	}
	if ref.LogicalName == "" {
		ref.LogicalName = models.EntitySecureData
	}

	vault, err := st.Retrieve(ctx, ref.LogicalName, ref.ID, models.AllColumns())
	if err != nil {
		return models.Field[string]{}, err
	}
	return models.SecureDataFromEntity(vault).Details, nil
}
