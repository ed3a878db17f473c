package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-secure-data/internal/config"
	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/mock"
	"github.com/MKhiriev/go-secure-data/internal/redaction"
	"github.com/MKhiriev/go-secure-data/internal/store"
	"github.com/MKhiriev/go-secure-data/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func updateEvent(target, pre *models.Entity) *models.PipelineEvent {
	return &models.PipelineEvent{
		Stage:             models.StagePreOperation,
		MessageName:       models.MessageUpdate,
		PrimaryEntityName: models.EntityEmail,
		UserID:            uuid.New(),
		InputParameters:   map[string]*models.Entity{models.ParamTarget: target},
		PreEntityImages:   map[string]*models.Entity{models.PreImageName: pre},
	}
}

func securedEmail(id, vault uuid.UUID) *models.Entity {
	e := models.NewEntity(models.EntityEmail, id)
	e.Set(models.AttrIsSecure, true)
	e.Set(models.AttrDescription, redaction.DefaultMaskText)
	e.Set(models.AttrSecureDataID, models.EntityReference{LogicalName: models.EntitySecureData, ID: vault})
	return e
}

func TestRedactionService_CreateSecuredUsesConfiguredMask(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockStore(ctrl)
	svc := NewRedactionService(config.Redaction{MaskText: "[hidden]"}, logger.Nop())
	vaultID := uuid.New()

	target := models.NewEntity(models.EntityEmail, uuid.Nil)
	target.Set(models.AttrIsSecure, true)
	target.Set(models.AttrDescription, "payroll")

	st.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *models.Entity) (uuid.UUID, error) {
			assert.Equal(t, models.EntitySecureData, e.LogicalName)
			assert.Equal(t, "payroll", e.Attributes[models.AttrDetails])
			return vaultID, nil
		})

	event := &models.PipelineEvent{
		Stage:             models.StagePreOperation,
		MessageName:       models.MessageCreate,
		PrimaryEntityName: models.EntityEmail,
		UserID:            uuid.New(),
		InputParameters:   map[string]*models.Entity{models.ParamTarget: target},
	}
	require.NoError(t, svc.ApplyWrite(context.Background(), st, event))

	assert.Equal(t, "[hidden]", target.Attributes[models.AttrDescription])
	assert.Equal(t, models.EntityReference{LogicalName: models.EntitySecureData, ID: vaultID}, target.Attributes[models.AttrSecureDataID])
}

func TestRedactionService_VaultErrorLeavesTargetAsSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockStore(ctrl)
	svc := NewRedactionService(config.Redaction{}, logger.Nop())
	emailID, vaultID := uuid.New(), uuid.New()

	target := models.NewEntity(models.EntityEmail, emailID)
	target.Set(models.AttrIsSecure, false)
	sent := target.Clone()

	st.EXPECT().Retrieve(gomock.Any(), models.EntitySecureData, vaultID, models.AllColumns()).
		Return(nil, store.ErrAccessDenied)

	err := svc.ApplyWrite(context.Background(), st, updateEvent(target, securedEmail(emailID, vaultID)))

	require.ErrorIs(t, err, store.ErrAccessDenied)
	assert.ErrorIs(t, err, redaction.ErrRetrievingSecureData)
	assert.Equal(t, sent, target)
}

func TestRedactionService_DeleteErrorLeavesTargetAsSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockStore(ctrl)
	svc := NewRedactionService(config.Redaction{}, logger.Nop())
	emailID, vaultID := uuid.New(), uuid.New()

	target := models.NewEntity(models.EntityEmail, emailID)
	target.Set(models.AttrIsSecure, false)
	sent := target.Clone()

	vault := models.NewEntity(models.EntitySecureData, vaultID)
	vault.Set(models.AttrDetails, "secret")

	gomock.InOrder(
		st.EXPECT().Retrieve(gomock.Any(), models.EntitySecureData, vaultID, models.AllColumns()).Return(vault, nil),
		st.EXPECT().Delete(gomock.Any(), models.EntitySecureData, vaultID).Return(store.ErrExecutingStatement),
	)

	err := svc.ApplyWrite(context.Background(), st, updateEvent(target, securedEmail(emailID, vaultID)))

	require.ErrorIs(t, err, redaction.ErrDeletingSecureData)
	assert.Equal(t, sent, target)
}

func TestRedactionService_NoopTouchesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockStore(ctrl)
	svc := NewRedactionService(config.Redaction{}, logger.Nop())
	emailID := uuid.New()

	target := models.NewEntity(models.EntityEmail, emailID)
	target.Set(models.AttrSubject, "hello")
	sent := target.Clone()

	require.NoError(t, svc.ApplyWrite(context.Background(), st, updateEvent(target, securedEmail(emailID, uuid.New()))))
	assert.Equal(t, sent, target)
}

func TestRedactionService_MissingTarget(t *testing.T) {
	svc := NewRedactionService(config.Redaction{}, logger.Nop())

	err := svc.ApplyWrite(context.Background(), nil, &models.PipelineEvent{MessageName: models.MessageCreate})
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestRedactionService_ConfiguredVisibleStatusCodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockStore(ctrl)
	svc := NewRedactionService(config.Redaction{VisibleStatusCodes: []int{9}}, logger.Nop())
	emailID, vaultID := uuid.New(), uuid.New()

	// sent is no longer a visible status
	target := models.NewEntity(models.EntityEmail, emailID)
	target.Set(models.AttrStatusCode, models.OptionSetValue(redaction.StatusSent))
	require.NoError(t, svc.ApplyWrite(context.Background(), st, updateEvent(target, securedEmail(emailID, vaultID))))
	assert.Equal(t, redaction.DefaultMaskText, target.Attributes[models.AttrDescription])

	vault := models.NewEntity(models.EntitySecureData, vaultID)
	vault.Set(models.AttrDetails, "secret")
	st.EXPECT().Retrieve(gomock.Any(), models.EntitySecureData, vaultID, models.AllColumns()).Return(vault, nil)

	target = models.NewEntity(models.EntityEmail, emailID)
	target.Set(models.AttrStatusCode, models.OptionSetValue(9))
	require.NoError(t, svc.ApplyWrite(context.Background(), st, updateEvent(target, securedEmail(emailID, vaultID))))
	assert.Equal(t, "secret", target.Attributes[models.AttrDescription])
}

func TestRedactionService_MistypedAttributeIsRejected(t *testing.T) {
	vaultID := uuid.New()

	tests := []struct {
		name   string
		target func(id uuid.UUID) *models.Entity
		pre    func(id uuid.UUID) *models.Entity
	}{
		{
			name: "issecure as text",
			target: func(id uuid.UUID) *models.Entity {
				e := models.NewEntity(models.EntityEmail, id)
				e.Set(models.AttrIsSecure, "true")
				e.Set(models.AttrDescription, "payroll")
				return e
			},
			pre: func(id uuid.UUID) *models.Entity { return models.NewEntity(models.EntityEmail, id) },
		},
		{
			name: "statuscode as text",
			target: func(id uuid.UUID) *models.Entity {
				e := models.NewEntity(models.EntityEmail, id)
				e.Set(models.AttrStatusCode, "6")
				return e
			},
			pre: func(id uuid.UUID) *models.Entity { return securedEmail(id, vaultID) },
		},
		{
			name: "pre image vault reference as id",
			target: func(id uuid.UUID) *models.Entity {
				e := models.NewEntity(models.EntityEmail, id)
				e.Set(models.AttrIsSecure, false)
				return e
			},
			pre: func(id uuid.UUID) *models.Entity {
				e := securedEmail(id, vaultID)
				e.Set(models.AttrSecureDataID, vaultID.String())
				return e
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: the store must not be touched
			st := mock.NewMockStore(gomock.NewController(t))
			svc := NewRedactionService(config.Redaction{}, logger.Nop())
			emailID := uuid.New()

			target := tt.target(emailID)
			sent := target.Clone()

			err := svc.ApplyWrite(context.Background(), st, updateEvent(target, tt.pre(emailID)))

			assert.ErrorIs(t, err, models.ErrInvalidAttributeValue)
			assert.ErrorIs(t, err, store.ErrInvalidAttributeValue)
			assert.Equal(t, sent, target)
		})
	}
}
