// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/google/uuid"
)

// Logical names of the host entity types handled by the pipeline.
const (
	// EntityEmail is the protected activity type.
	EntityEmail = "email"
	// EntitySecureData is the access-controlled vault record that holds the
	// real email description while the email is secured.
	EntitySecureData = "securedata"
	// EntityAttachment is the attachment type owned by activities.
	EntityAttachment = "activitymimeattachment"
	// EntitySystemUser is the host user type referenced by ownerid.
	EntitySystemUser = "systemuser"
)

// Attribute logical names.
const (
	AttrActivityID   = "activityid"
	AttrSubject      = "subject"
	AttrDescription  = "description"
	AttrIsSecure     = "issecure"
	AttrSecureDataID = "securedataid"
	AttrStatusCode   = "statuscode"

	AttrDetails = "details"
	AttrOwnerID = "ownerid"

	AttrAttachmentID = "activitymimeattachmentid"
	AttrObjectID     = "objectid"
	AttrFileName     = "filename"
	AttrMimeType     = "mimetype"
	AttrBody         = "body"
)

// EntityReference points at a record of another entity type.
type EntityReference struct {
	LogicalName string    `json:"logical_name"`
	ID          uuid.UUID `json:"id"`
}

// OptionSetValue is a choice attribute value such as a status code.
type OptionSetValue int

// AliasedValue is an attribute value coming from a linked entity in a
// query result. It is stored under "alias.attribute".
type AliasedValue struct {
	EntityLogicalName    string `json:"entity_logical_name"`
	AttributeLogicalName string `json:"attribute_logical_name"`
	Value                any    `json:"value"`
}

// Entity is a host record with dynamically keyed attributes.
//
// An attribute that is absent from Attributes was not carried by the
// snapshot. An attribute mapped to nil was carried as a cleared value.
// Records returned by a [Store] never contain nil attributes.
type Entity struct {
	LogicalName string
	ID          uuid.UUID
	Attributes  map[string]any
}

// NewEntity returns an empty entity of the given type.
func NewEntity(logicalName string, id uuid.UUID) *Entity {
	return &Entity{
		LogicalName: logicalName,
		ID:          id,
		Attributes:  make(map[string]any),
	}
}

// Contains reports whether the attribute is carried by the entity, with or
// without a value.
func (e *Entity) Contains(attribute string) bool {
	if e == nil || e.Attributes == nil {
		return false
	}
	_, ok := e.Attributes[attribute]
	return ok
}

// Get returns the raw attribute value and whether it was carried.
func (e *Entity) Get(attribute string) (any, bool) {
	if e == nil || e.Attributes == nil {
		return nil, false
	}
	v, ok := e.Attributes[attribute]
	return v, ok
}

// Set stores v under attribute. A nil v marks the attribute as cleared.
func (e *Entity) Set(attribute string, v any) {
	if e.Attributes == nil {
		e.Attributes = make(map[string]any)
	}
	e.Attributes[attribute] = v
}

// Remove drops the attribute from the entity.
func (e *Entity) Remove(attribute string) {
	delete(e.Attributes, attribute)
}

// ToEntityReference returns a reference to e.
func (e *Entity) ToEntityReference() EntityReference {
	return EntityReference{LogicalName: e.LogicalName, ID: e.ID}
}

// Clone returns a shallow copy of e with its own attribute map.
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	c := NewEntity(e.LogicalName, e.ID)
	for k, v := range e.Attributes {
		c.Attributes[k] = v
	}
	return c
}

// ColumnSet selects the attributes a retrieve operation projects.
type ColumnSet struct {
	AllColumns bool     `json:"all_columns"`
	Columns    []string `json:"columns"`
}

// NewColumnSet projects the listed attributes only.
func NewColumnSet(columns ...string) ColumnSet {
	return ColumnSet{Columns: columns}
}

// AllColumns projects every attribute of the entity.
func AllColumns() ColumnSet {
	return ColumnSet{AllColumns: true}
}
