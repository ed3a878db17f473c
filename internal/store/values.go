package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-secure-data/models"
	"github.com/google/uuid"
)

// toColumnValue converts an attribute value to the driver value of c.
// A nil attribute value is written as NULL.
func toColumnValue(c column, v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch c.kind {
	case kindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case kindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case kindOption:
		switch o := v.(type) {
		case models.OptionSetValue:
			return int64(o), nil
		case int:
			return int64(o), nil
		case int64:
			return o, nil
		}
	case kindReference:
		switch ref := v.(type) {
		case models.EntityReference:
			return ref.ID.String(), nil
		case *models.EntityReference:
			if ref == nil {
				return nil, nil
			}
			return ref.ID.String(), nil
		case uuid.UUID:
			return ref.String(), nil
		}
	}

	return nil, fmt.Errorf("%w: %s does not accept %T", ErrInvalidAttributeValue, c.attribute, v)
}

// scanTarget returns a fresh destination for scanning c.
func scanTarget(c column) any {
	switch c.kind {
	case kindBool:
		return new(sql.NullBool)
	case kindOption:
		return new(sql.NullInt64)
	default:
		return new(sql.NullString)
	}
}

// fromScanned converts a scanned destination back to an attribute value.
// ok is false for NULL.
func fromScanned(c column, dest any) (value any, ok bool, err error) {
	switch d := dest.(type) {
	case *sql.NullBool:
		return d.Bool, d.Valid, nil
	case *sql.NullInt64:
		return models.OptionSetValue(d.Int64), d.Valid, nil
	case *sql.NullString:
		if !d.Valid {
			return nil, false, nil
		}
		if c.kind != kindReference {
			return d.String, true, nil
		}
		id, err := uuid.Parse(d.String)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s holds %q: %w", ErrInvalidAttributeValue, c.attribute, d.String, err)
		}
		return models.EntityReference{LogicalName: c.target, ID: id}, true, nil
	}
	return nil, false, fmt.Errorf("%w: unexpected scan target %T", ErrScanningRow, dest)
}
