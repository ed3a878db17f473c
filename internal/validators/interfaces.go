// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of pipeline events before any handler
// sees them.
//
// A validator rejects malformed input with the sentinel errors of this package
// and never consults the store: whether the acting user may touch a record
// is decided later, by the store's access rules.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
// With no fields every rule applies.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
