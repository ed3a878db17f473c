package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-secure-data/internal/store"
	"github.com/MKhiriev/go-secure-data/models"
	"github.com/google/uuid"
)

// PipelineService dispatches a host pipeline event to the handler for its
// stage, message and entity. Events no handler is registered for pass
// through untouched.
type PipelineService interface {
	Execute(ctx context.Context, event *models.PipelineEvent) error
}

// RedactionService runs on Create and Update of an email. It moves the
// description in and out of the vault record as the secure flag and the
// status change, and rewrites the event's Target accordingly.
type RedactionService interface {
	ApplyWrite(ctx context.Context, st store.Store, event *models.PipelineEvent) error
}

// VaultGatewayService runs after Retrieve of an email and replaces the
// masked description with the vault content the caller may read.
//
// It never fails: when the vault record cannot be read the description is
// replaced with the access-denied text instead.
type VaultGatewayService interface {
	Reveal(ctx context.Context, st store.Store, email *models.Entity)
}

// AttachmentGuardService runs after Retrieve of an attachment and rejects
// the read when the caller may not read the vault record of the owning
// email.
type AttachmentGuardService interface {
	Check(ctx context.Context, st store.Store, attachment *models.Entity) error
}

// SharesService lets the owner of a vault record grant and revoke read
// access to it.
type SharesService interface {
	Grant(ctx context.Context, ownerID, secureDataID, userID uuid.UUID) error
	Revoke(ctx context.Context, ownerID, secureDataID, userID uuid.UUID) error
}

// AuthService issues and verifies the bearer tokens that carry the acting
// user of a pipeline event.
type AuthService interface {
	CreateToken(ctx context.Context, userID uuid.UUID) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build information of the running gateway.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
