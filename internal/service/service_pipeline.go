// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/store"
	"github.com/MKhiriev/go-secure-data/models"
)

type pipelineService struct {
	stores store.Factory

	redaction RedactionService
	gateway   VaultGatewayService
	guard     AttachmentGuardService

	logger *logger.Logger
}

// NewPipelineService wires the event handlers to the store factory the
// user-scoped stores are taken from.
func NewPipelineService(stores store.Factory, redaction RedactionService, gateway VaultGatewayService, guard AttachmentGuardService, logger *logger.Logger) PipelineService {
	return &pipelineService{
		stores:    stores,
		redaction: redaction,
		gateway:   gateway,
		guard:     guard,
		logger:    logger,
	}
}

// Execute routes event by stage and message:
//
//   - post-operation Retrieve of an email reveals its description;
//   - post-operation Retrieve of an attachment runs the attachment guard;
//   - Create and Update of an email at any other stage run the write path.
//
// Every store access is scoped to event.UserID.
func (p *pipelineService) Execute(ctx context.Context, event *models.PipelineEvent) error {
	log := logger.FromContext(ctx).With().
		Int("stage", event.Stage).
		Str("message", event.MessageName).
		Str("entity", event.PrimaryEntityName).
		Logger()

	if event.Stage == models.StagePostOperation {
		if event.MessageName != models.MessageRetrieve {
			return nil
		}

		switch event.PrimaryEntityName {
		case models.EntityEmail:
			entity, err := businessEntity(event)
			if err != nil {
				return err
			}
			p.gateway.Reveal(ctx, p.stores.ForUser(event.UserID), entity)
		case models.EntityAttachment:
			entity, err := businessEntity(event)
			if err != nil {
				return err
			}
			return p.guard.Check(ctx, p.stores.ForUser(event.UserID), entity)
		default:
			log.Debug().Str("func", "*pipelineService.Execute").Msg("no handler for entity")
		}
		return nil
	}

	if event.MessageName != models.MessageCreate && event.MessageName != models.MessageUpdate {
		return nil
	}
	if event.PrimaryEntityName != models.EntityEmail {
		log.Debug().Str("func", "*pipelineService.Execute").Msg("no handler for entity")
		return nil
	}

	return p.redaction.ApplyWrite(ctx, p.stores.ForUser(event.UserID), event)
}

func businessEntity(event *models.PipelineEvent) (*models.Entity, error) {
	entity := event.BusinessEntity()
	if entity == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingParameter, models.ParamBusinessEntity)
	}
	return entity, nil
}
