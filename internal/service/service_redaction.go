// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-data/internal/config"
	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/redaction"
	"github.com/MKhiriev/go-secure-data/internal/store"
	"github.com/MKhiriev/go-secure-data/models"
)

type redactionService struct {
	policy   redaction.Policy
	executor *redaction.Executor

	logger *logger.Logger
}

// NewRedactionService builds the write path from the redaction settings.
// Unset settings keep the values of [redaction.DefaultPolicy].
func NewRedactionService(cfg config.Redaction, logger *logger.Logger) RedactionService {
	return &redactionService{
		policy:   policyFromConfig(cfg),
		executor: redaction.NewExecutor(logger),
		logger:   logger,
	}
}

func policyFromConfig(cfg config.Redaction) redaction.Policy {
	policy := redaction.DefaultPolicy()
	if cfg.MaskText != "" {
		policy.MaskText = cfg.MaskText
	}
	if len(cfg.VisibleStatusCodes) > 0 {
		policy.VisibleStatusCodes = cfg.VisibleStatusCodes
	}
	return policy
}

// ApplyWrite decides what the Create or Update carried by event does to the
// email's vault record, performs it through st and rewrites the Target.
// A failed vault operation aborts the write and leaves the Target as sent.
func (s *redactionService) ApplyWrite(ctx context.Context, st store.Store, event *models.PipelineEvent) error {
	log := logger.FromContext(ctx)

	target := event.Target()
	if target == nil {
		return fmt.Errorf("%w: %s", ErrMissingParameter, models.ParamTarget)
	}

	view, err := models.EmailFromEntity(target)
	if err != nil {
		return fmt.Errorf("%s: %w", models.ParamTarget, err)
	}
	var pre *models.Email
	if image := event.PreImage(); image != nil {
		preView, err := models.EmailFromEntity(image)
		if err != nil {
			return fmt.Errorf("%s: %w", models.PreImageName, err)
		}
		pre = &preView
	}

	plan := redaction.Decide(s.policy, view, pre)
	if plan.IsNoop() {
		return nil
	}

	log.Debug().
		Str("func", "*redactionService.ApplyWrite").
		Str("email_id", target.ID.String()).
		Bool("secure_changed", plan.SecureChanged).
		Bool("secure_now", plan.SecureNow).
		Int("vault_ops", len(plan.Ops)).
		Msg("applying redaction plan")

	if err := s.executor.Apply(ctx, st, plan, &view); err != nil {
		return fmt.Errorf("error applying redaction to email %s: %w", target.ID, err)
	}

	view.WriteTo(target)
	return nil
}
