// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrUnsupportedAttributeType is returned when an attribute value has no
// wire representation.
var ErrUnsupportedAttributeType = errors.New("unsupported attribute type")

// ErrInvalidAttributeValue is returned when an attribute value does not
// have the kind its attribute requires.
var ErrInvalidAttributeValue = errors.New("invalid attribute value")

// Attribute value kinds on the wire.
const (
	kindNull      = "null"
	kindString    = "string"
	kindBool      = "bool"
	kindInt       = "int"
	kindOption    = "option"
	kindReference = "reference"
	kindAliased   = "aliased"
)

type wireEntity struct {
	LogicalName string                   `json:"logical_name"`
	ID          uuid.UUID                `json:"id"`
	Attributes  map[string]wireAttribute `json:"attributes,omitempty"`
}

// wireAttribute keeps the kind next to the value so that a cleared
// attribute, a reference and a choice survive a round trip.
type wireAttribute struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

type wireAliased struct {
	EntityLogicalName    string        `json:"entity_logical_name"`
	AttributeLogicalName string        `json:"attribute_logical_name"`
	Value                wireAttribute `json:"value"`
}

// MarshalJSON implements [json.Marshaler].
func (e Entity) MarshalJSON() ([]byte, error) {
	w := wireEntity{
		LogicalName: e.LogicalName,
		ID:          e.ID,
		Attributes:  make(map[string]wireAttribute, len(e.Attributes)),
	}
	for name, v := range e.Attributes {
		attr, err := encodeAttribute(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		w.Attributes[name] = attr
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (e *Entity) UnmarshalJSON(b []byte) error {
	var w wireEntity
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	e.LogicalName = w.LogicalName
	e.ID = w.ID
	e.Attributes = make(map[string]any, len(w.Attributes))
	for name, attr := range w.Attributes {
		v, err := decodeAttribute(attr)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		e.Attributes[name] = v
	}
	return nil
}

func encodeAttribute(v any) (wireAttribute, error) {
	var (
		kind    string
		payload any
	)
	switch value := v.(type) {
	case nil:
		return wireAttribute{Type: kindNull}, nil
	case string:
		kind, payload = kindString, value
	case bool:
		kind, payload = kindBool, value
	case int:
		kind, payload = kindInt, int64(value)
	case int64:
		kind, payload = kindInt, value
	case OptionSetValue:
		kind, payload = kindOption, int(value)
	case EntityReference:
		kind, payload = kindReference, value
	case *EntityReference:
		if value == nil {
			return wireAttribute{Type: kindNull}, nil
		}
		kind, payload = kindReference, *value
	case AliasedValue:
		inner, err := encodeAttribute(value.Value)
		if err != nil {
			return wireAttribute{}, err
		}
		kind, payload = kindAliased, wireAliased{
			EntityLogicalName:    value.EntityLogicalName,
			AttributeLogicalName: value.AttributeLogicalName,
			Value:                inner,
		}
	default:
		return wireAttribute{}, fmt.Errorf("%w: %T", ErrUnsupportedAttributeType, v)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return wireAttribute{}, err
	}
	return wireAttribute{Type: kind, Value: raw}, nil
}

func decodeAttribute(attr wireAttribute) (any, error) {
	switch attr.Type {
	case kindNull:
		return nil, nil
	case kindString:
		var s string
		err := json.Unmarshal(attr.Value, &s)
		return s, err
	case kindBool:
		var b bool
		err := json.Unmarshal(attr.Value, &b)
		return b, err
	case kindInt:
		var i int64
		err := json.Unmarshal(attr.Value, &i)
		return i, err
	case kindOption:
		var i int
		err := json.Unmarshal(attr.Value, &i)
		return OptionSetValue(i), err
	case kindReference:
		var ref EntityReference
		err := json.Unmarshal(attr.Value, &ref)
		return ref, err
	case kindAliased:
		var a wireAliased
		if err := json.Unmarshal(attr.Value, &a); err != nil {
			return nil, err
		}
		inner, err := decodeAttribute(a.Value)
		if err != nil {
			return nil, err
		}
		return AliasedValue{
			EntityLogicalName:    a.EntityLogicalName,
			AttributeLogicalName: a.AttributeLogicalName,
			Value:                inner,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAttributeType, attr.Type)
}
