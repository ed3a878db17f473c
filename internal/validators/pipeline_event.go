// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-data/models"
	"github.com/google/uuid"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldUserID targets the acting user of an event.
	FieldUserID = "user_id"

	// FieldStage targets the pipeline stage of an event. Any non-negative
	// stage is accepted.
	FieldStage = "stage"

	// FieldMessageName targets the message name of an event.
	FieldMessageName = "message_name"

	// FieldPrimaryEntity targets the primary entity name of an event.
	FieldPrimaryEntity = "primary_entity"

	// FieldParameters targets the entities carried by an event: parameters
	// and images must be records of the primary entity.
	FieldParameters = "parameters"

	// FieldLogicalName targets the logical name of an entity.
	FieldLogicalName = "logical_name"

	// FieldRecordID targets the id of an entity. Retrieve results and
	// images always carry one; a Create target may not.
	FieldRecordID = "record_id"
)

// PipelineEventValidator implements the Validator interface for
// models.PipelineEvent and models.Entity, value or pointer.
type PipelineEventValidator struct {
}

// NewPipelineEventValidator constructs a new PipelineEventValidator
// and returns it as the Validator interface.
func NewPipelineEventValidator() Validator {
	return &PipelineEventValidator{}
}

// Validate dispatches on the dynamic type of obj.
func (v *PipelineEventValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PipelineEvent:
		return v.validateEvent(ctx, value, fields...)
	case *models.PipelineEvent:
		if value == nil {
			return ErrNilEntity
		}
		return v.validateEvent(ctx, *value, fields...)

	case models.Entity:
		return v.validateEntity(ctx, &value, fields...)
	case *models.Entity:
		if value == nil {
			return ErrNilEntity
		}
		return v.validateEntity(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PipelineEventValidator) validateEvent(ctx context.Context, event models.PipelineEvent, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldStage, FieldMessageName, FieldPrimaryEntity, FieldParameters}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if event.UserID == uuid.Nil {
				return ErrInvalidUserID
			}
		case FieldStage:
			if event.Stage < 0 {
				return fmt.Errorf("%w: %d", ErrInvalidStage, event.Stage)
			}
		case FieldMessageName:
			if event.MessageName == "" {
				return ErrEmptyMessageName
			}
		case FieldPrimaryEntity:
			if event.PrimaryEntityName == "" {
				return ErrEmptyPrimaryEntity
			}
		case FieldParameters:
			if err := v.validateParameters(ctx, event); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PipelineEventValidator) validateParameters(ctx context.Context, event models.PipelineEvent) error {
	groups := []struct {
		name     string
		entities map[string]*models.Entity
		needID   bool
	}{
		{"input parameter", event.InputParameters, false},
		{"output parameter", event.OutputParameters, true},
		{"pre image", event.PreEntityImages, true},
		{"post image", event.PostEntityImages, true},
	}

	for _, group := range groups {
		for name, entity := range group.entities {
			fields := []string{FieldLogicalName}
			if group.needID {
				fields = append(fields, FieldRecordID)
			}
			if err := v.validateEntity(ctx, entity, fields...); err != nil {
				return fmt.Errorf("%s %q: %w", group.name, name, err)
			}
			if entity.LogicalName != event.PrimaryEntityName {
				return fmt.Errorf("%s %q: %w: %s", group.name, name, ErrEntityNameMismatch, entity.LogicalName)
			}
		}
	}

	return nil
}

func (v *PipelineEventValidator) validateEntity(ctx context.Context, entity *models.Entity, fields ...string) error {
	if entity == nil {
		return ErrNilEntity
	}
	if len(fields) == 0 {
		fields = []string{FieldLogicalName}
	}

	for _, f := range fields {
		switch f {
		case FieldLogicalName:
			if entity.LogicalName == "" {
				return ErrEmptyLogicalName
			}
		case FieldRecordID:
			if entity.ID == uuid.Nil {
				return ErrMissingRecordID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
