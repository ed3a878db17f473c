// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// secure-data gateway handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or the pipeline event fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires the acting user
	// but the auth middleware put none in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the acting user may not read or
	// change a vault record.
	MsgAccessDenied = "access denied"

	// MsgNotFound is returned when the addressed record does not exist.
	MsgNotFound = "record not found"

	// MsgAlreadyExists is returned when a create collides with an existing
	// record.
	MsgAlreadyExists = "record already exists"

	// MsgServiceUnavailable is returned when the database is temporarily
	// unreachable and the event may be submitted again.
	MsgServiceUnavailable = "service temporarily unavailable"

	// MsgInvalidRecordID is returned when a path parameter is not a uuid.
	MsgInvalidRecordID = "invalid record id"
)
