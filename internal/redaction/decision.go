// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package redaction

import (
	"github.com/MKhiriev/go-secure-data/models"
)

// Decide computes the plan for a Create or Update of an email.
//
// target is the delta sent by the caller; pre is the pre-operation image and
// is nil on Create. The steps run in order and the lifecycle step may
// override the description chosen by the earlier ones:
//
//  1. secure flag transition: securing creates a vault record holding the
//     description and masks the field; unsecuring loads and deletes the vault
//     record and restores the description unless the delta carries one.
//  2. edit while secured: a new description goes to the existing vault
//     record and the field stays masked.
//  3. lifecycle: a status change on a secured email reveals the description
//     for the visible status codes and masks it for every other status.
func Decide(policy Policy, target models.Email, pre *models.Email) Plan {
	plan := Plan{
		SecureChanged: secureChanged(target, pre),
		SecureNow:     target.IsSecure.IsTrue(),
	}

	// vault content already known to this invocation
	var (
		known     models.Field[string]
		haveKnown bool
	)

	switch {
	case plan.SecureChanged && plan.SecureNow:
		details := target.Description
		if !details.Present && pre != nil {
			details = pre.Description
		}
		if !details.Present {
			details = models.Null[string]()
		}

		plan.Ops = append(plan.Ops, VaultOp{Kind: OpCreate, Details: details})
		plan.Link = LinkCreated
		plan.Description = valueOf(models.Set(policy.MaskText))
		known, haveKnown = details, true

	case plan.SecureChanged:
		plan.Link = Unlink
		if ref, ok := vaultRefOf(pre); ok {
			plan.Ops = append(plan.Ops,
				VaultOp{Kind: OpRetrieve, Ref: ref},
				VaultOp{Kind: OpDelete, Ref: ref},
			)
			// a description in the delta wins over the vaulted one
			if !target.Description.Present {
				plan.Description = FieldChange{Source: SourceVault}
			}
		}

	case target.Description.Present:
		if ref, ok := vaultRefOf(pre); ok {
			plan.Ops = append(plan.Ops, VaultOp{Kind: OpUpdate, Ref: ref, Details: target.Description})
			plan.Description = valueOf(models.Set(policy.MaskText))
			known, haveKnown = target.Description, true
		}
	}

	status, ok := target.StatusCode.Get()
	if !ok || !securedForLifecycle(target, pre, plan.SecureNow) {
		return plan
	}

	if !policy.Reveals(status) {
		plan.Description = valueOf(models.Set(policy.MaskText))
		return plan
	}

	if haveKnown {
		plan.Description = valueOf(known)
		return plan
	}
	if ref, ok := vaultRefOf(pre); ok {
		plan.Ops = append(plan.Ops, VaultOp{Kind: OpRetrieve, Ref: ref})
		plan.Description = FieldChange{Source: SourceVault}
	}
	// secured without a reachable vault record: leave the field as it is

	return plan
}

// secureChanged reports whether the delta flips the secure flag. Only a
// delta that carries the flag can flip it. An image without the flag, or
// with it cleared, counts as not secure.
func secureChanged(target models.Email, pre *models.Email) bool {
	if !target.IsSecure.Present {
		return false
	}

	if pre == nil {
		return target.IsSecure.State == models.True
	}

	wasSecure := pre.IsSecure.IsTrue()
	if target.IsSecure.State == models.Unset {
		return wasSecure
	}
	return wasSecure != (target.IsSecure.State == models.True)
}

// securedForLifecycle reports whether the email is secured, or becomes
// secured, by this operation, which is when status changes drive the
// visibility of the description.
//
// A Create counts only when it secures the email. Masking a new email that
// was never secured would overwrite its description with no vault record to
// restore it from.
func securedForLifecycle(target models.Email, pre *models.Email, secureNow bool) bool {
	if pre == nil {
		return secureNow
	}
	if pre.IsSecure.IsTrue() {
		return !target.IsSecure.Present || secureNow
	}
	return secureNow
}

func vaultRefOf(pre *models.Email) (models.EntityReference, bool) {
	if pre == nil {
		return models.EntityReference{}, false
	}
	ref, ok := pre.SecureDataRef.Get()
	if ok && ref.LogicalName == "" {
		ref.LogicalName = models.EntitySecureData
	}
	return ref, ok
}
