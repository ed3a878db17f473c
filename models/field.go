// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field is a typed attribute of a record snapshot.
//
// Present reports whether the snapshot carried the attribute at all; Null
// reports whether it was carried without a value. A delta that omits an
// attribute and a delta that clears it are different requests.
type Field[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Set returns a present field holding v.
func Set[T any](v T) Field[T] {
	return Field[T]{Present: true, Value: v}
}

// Null returns a present field carrying the cleared value.
func Null[T any]() Field[T] {
	return Field[T]{Present: true, Null: true}
}

// Get returns the value and true when the field is present and not null.
func (f Field[T]) Get() (T, bool) {
	if !f.Present || f.Null {
		var zero T
		return zero, false
	}
	return f.Value, true
}

// Tristate is the value of a nullable boolean attribute.
type Tristate uint8

const (
	// Unset means the attribute holds no value.
	Unset Tristate = iota
	True
	False
)

func (t Tristate) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}

// TristateOf converts a plain bool.
func TristateOf(b bool) Tristate {
	if b {
		return True
	}
	return False
}

// Flag is a nullable boolean attribute of a snapshot. A present flag in the
// Unset state is the cleared value.
type Flag struct {
	Present bool
	State   Tristate
}

// IsTrue reports whether the flag carries an explicit true.
func (f Flag) IsTrue() bool {
	return f.Present && f.State == True
}

// Cleared reports whether the flag was carried as a cleared value.
func (f Flag) Cleared() bool {
	return f.Present && f.State == Unset
}
