// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package redaction

import (
	"slices"

	"github.com/MKhiriev/go-secure-data/models"
)

// Default policy values.
const (
	DefaultMaskText = "This is a protected email!"

	// StatusSent and StatusReceived are the email status codes that force the
	// description visible so the mail integration can deliver it.
	StatusSent     = 6
	StatusReceived = 7
)

// Policy holds the tunables of the redaction rules.
type Policy struct {
	// MaskText replaces the description of a secured email.
	MaskText string
	// VisibleStatusCodes force the real description back into the record.
	VisibleStatusCodes []int
}

// DefaultPolicy returns the stock policy.
func DefaultPolicy() Policy {
	return Policy{
		MaskText:           DefaultMaskText,
		VisibleStatusCodes: []int{StatusSent, StatusReceived},
	}
}

// Reveals reports whether status forces the description visible.
func (p Policy) Reveals(status int) bool {
	return slices.Contains(p.VisibleStatusCodes, status)
}

// OpKind is the kind of a vault record operation.
type OpKind int

const (
	OpCreate OpKind = iota + 1
	OpRetrieve
	OpUpdate
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpCreate:
		return "create"
	case OpRetrieve:
		return "retrieve"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// VaultOp is one operation on a vault record. Ref is unset for OpCreate;
// Details is only meaningful for OpCreate and OpUpdate.
type VaultOp struct {
	Kind    OpKind
	Ref     models.EntityReference
	Details models.Field[string]
}

// FieldSource tells the executor where the new description comes from.
type FieldSource int

const (
	// SourceKeep leaves the Target description as the caller sent it.
	SourceKeep FieldSource = iota
	// SourceValue writes FieldChange.Value.
	SourceValue
	// SourceVault writes the details of the vault record loaded by the plan.
	SourceVault
)

// FieldChange is the planned value of the description.
type FieldChange struct {
	Source FieldSource
	Value  models.Field[string]
}

// LinkChange is the planned value of the vault reference.
type LinkChange int

const (
	LinkKeep LinkChange = iota
	// LinkCreated points the Target at the record created by the plan.
	LinkCreated
	// Unlink clears the Target's vault reference.
	Unlink
)

// Plan is the outcome of [Decide].
type Plan struct {
	SecureChanged bool
	SecureNow     bool
	Ops           []VaultOp
	Description   FieldChange
	Link          LinkChange
}

// IsNoop reports whether applying the plan changes nothing.
func (p Plan) IsNoop() bool {
	return len(p.Ops) == 0 && p.Description.Source == SourceKeep && p.Link == LinkKeep
}

func valueOf(v models.Field[string]) FieldChange {
	return FieldChange{Source: SourceValue, Value: v}
}
