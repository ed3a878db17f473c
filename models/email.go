// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Email is the typed view of an email snapshot that the redaction engine
// reads and writes. Every other attribute of the host record is left alone.
type Email struct {
	ID            uuid.UUID
	Description   Field[string]
	IsSecure      Flag
	SecureDataRef Field[EntityReference]
	StatusCode    Field[int]
}

// EmailFromEntity builds the typed view of e. An engine attribute carrying
// a value of the wrong kind fails with [ErrInvalidAttributeValue].
func EmailFromEntity(e *Entity) (Email, error) {
	if e == nil {
		return Email{}, nil
	}

	var err error
	m := Email{ID: e.ID}
	if m.Description, err = readString(e, AttrDescription); err != nil {
		return Email{}, err
	}
	if m.IsSecure, err = readFlag(e, AttrIsSecure); err != nil {
		return Email{}, err
	}
	if m.SecureDataRef, err = readReference(e, AttrSecureDataID); err != nil {
		return Email{}, err
	}
	if m.StatusCode, err = readOption(e, AttrStatusCode); err != nil {
		return Email{}, err
	}
	return m, nil
}

// WriteTo copies the attributes the engine owns back into e. Absent fields
// are not touched; null fields are written as cleared attributes.
func (m Email) WriteTo(e *Entity) {
	writeField(e, AttrDescription, m.Description)
	writeField(e, AttrSecureDataID, m.SecureDataRef)
}

// SecureData is the typed view of a vault record.
type SecureData struct {
	ID      uuid.UUID
	Details Field[string]
}

// SecureDataFromEntity builds the typed view of e.
func SecureDataFromEntity(e *Entity) SecureData {
	if e == nil {
		return SecureData{}
	}
	return SecureData{
		ID:      e.ID,
		Details: StringField(e, AttrDetails),
	}
}

// ToEntity converts the view into a host record ready to be created or
// updated.
func (s SecureData) ToEntity() *Entity {
	e := NewEntity(EntitySecureData, s.ID)
	writeField(e, AttrDetails, s.Details)
	return e
}

// Ref returns a reference to the vault record.
func (s SecureData) Ref() EntityReference {
	return EntityReference{LogicalName: EntitySecureData, ID: s.ID}
}

// Attachment is the typed view of an attachment snapshot.
type Attachment struct {
	ID        uuid.UUID
	ObjectRef Field[EntityReference]
	HasBody   bool
}

// AttachmentFromEntity builds the typed view of e.
func AttachmentFromEntity(e *Entity) Attachment {
	if e == nil {
		return Attachment{}
	}
	return Attachment{
		ID:        e.ID,
		ObjectRef: ReferenceField(e, AttrObjectID),
		HasBody:   e.Contains(AttrBody),
	}
}

func writeField[T any](e *Entity, attribute string, f Field[T]) {
	switch {
	case !f.Present:
		return
	case f.Null:
		e.Set(attribute, nil)
	default:
		e.Set(attribute, f.Value)
	}
}

// StringField reads a string attribute. A value of another kind reads as
// absent.
func StringField(e *Entity, attribute string) Field[string] {
	f, _ := readString(e, attribute)
	return f
}

// ReferenceField reads a lookup attribute. A value of another kind reads as
// absent.
func ReferenceField(e *Entity, attribute string) Field[EntityReference] {
	f, _ := readReference(e, attribute)
	return f
}

// OptionField reads a choice attribute. A value of another kind reads as
// absent.
func OptionField(e *Entity, attribute string) Field[int] {
	f, _ := readOption(e, attribute)
	return f
}

// FlagField reads a nullable boolean attribute. A value of another kind
// reads as absent.
func FlagField(e *Entity, attribute string) Flag {
	f, _ := readFlag(e, attribute)
	return f
}

func readString(e *Entity, attribute string) (Field[string], error) {
	v, ok := e.Get(attribute)
	if !ok {
		return Field[string]{}, nil
	}
	switch value := unalias(v).(type) {
	case nil:
		return Null[string](), nil
	case string:
		return Set(value), nil
	}
	return Field[string]{}, kindMismatch(attribute, "string", v)
}

func readReference(e *Entity, attribute string) (Field[EntityReference], error) {
	v, ok := e.Get(attribute)
	if !ok {
		return Field[EntityReference]{}, nil
	}
	switch value := unalias(v).(type) {
	case nil:
		return Null[EntityReference](), nil
	case EntityReference:
		return Set(value), nil
	case *EntityReference:
		if value == nil {
			return Null[EntityReference](), nil
		}
		return Set(*value), nil
	}
	return Field[EntityReference]{}, kindMismatch(attribute, "reference", v)
}

func readOption(e *Entity, attribute string) (Field[int], error) {
	v, ok := e.Get(attribute)
	if !ok {
		return Field[int]{}, nil
	}
	switch value := unalias(v).(type) {
	case nil:
		return Null[int](), nil
	case OptionSetValue:
		return Set(int(value)), nil
	case int:
		return Set(value), nil
	case int64:
		return Set(int(value)), nil
	}
	return Field[int]{}, kindMismatch(attribute, "option", v)
}

func readFlag(e *Entity, attribute string) (Flag, error) {
	v, ok := e.Get(attribute)
	if !ok {
		return Flag{}, nil
	}
	switch value := unalias(v).(type) {
	case nil:
		return Flag{Present: true, State: Unset}, nil
	case bool:
		return Flag{Present: true, State: TristateOf(value)}, nil
	}
	return Flag{}, kindMismatch(attribute, "bool", v)
}

func kindMismatch(attribute, want string, got any) error {
	return fmt.Errorf("%w: %s must be %s, got %T", ErrInvalidAttributeValue, attribute, want, unalias(got))
}

func unalias(v any) any {
	if a, ok := v.(AliasedValue); ok {
		return a.Value
	}
	return v
}
