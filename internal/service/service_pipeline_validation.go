package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/validators"
	"github.com/MKhiriev/go-secure-data/models"
)

// PipelineServiceWrapper defines middleware composition for PipelineService.
// Implementations wrap an existing PipelineService to add behavior such as
// logging or validating.
type PipelineServiceWrapper interface {
	Wrap(PipelineService) PipelineService
}

// PipelineValidationService rejects malformed events before they reach the
// wrapped PipelineService.
type PipelineValidationService struct {
	inner     PipelineService
	validator validators.Validator
}

func NewPipelineValidationService() PipelineServiceWrapper {
	return &PipelineValidationService{
		validator: validators.NewPipelineEventValidator(),
	}
}

func (v *PipelineValidationService) Execute(ctx context.Context, event *models.PipelineEvent) error {
	if err := v.validator.Validate(ctx, event); err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "*PipelineValidationService.Execute").
			Msg("pipeline event rejected")
		return fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}

	return v.inner.Execute(ctx, event)
}

func (v *PipelineValidationService) Wrap(inner PipelineService) PipelineService {
	v.inner = inner
	return v
}
