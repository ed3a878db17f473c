// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client of the secure-data gateway, for host
// runtimes that dispatch their pipeline events out of process.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so callers can match them with [errors.Is]. A 403 is mapped
// back to [store.ErrAccessDenied], the error the host sees in process.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_client_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-secure-data/models"
	"github.com/google/uuid"
)

// GatewayClient submits pipeline events and share changes to the gateway.
// Every call is made as the user the bearer token was issued for.
type GatewayClient interface {
	// SetToken stores the bearer token attached to every later request.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Execute runs event on the gateway and returns the event as the
	// handlers left it. The acting user is the token's subject.
	Execute(ctx context.Context, event *models.PipelineEvent) (*models.PipelineEvent, error)

	// GrantShare lets userID read the vault record secureDataID.
	GrantShare(ctx context.Context, secureDataID, userID uuid.UUID) error

	// RevokeShare takes the access of userID back.
	RevokeShare(ctx context.Context, secureDataID, userID uuid.UUID) error

	// Version returns the gateway's build version.
	Version(ctx context.Context) (string, error)
}
