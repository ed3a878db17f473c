package store

import (
	"fmt"

	"github.com/MKhiriev/go-secure-data/models"
)

type columnKind int

const (
	kindString columnKind = iota
	kindBool
	kindOption
	kindReference
)

// column maps an attribute logical name to a table column.
type column struct {
	attribute string
	name      string
	kind      columnKind
	// target is the logical name of the referenced entity for kindReference.
	target string
}

// table maps an entity logical name to a relational table.
type table struct {
	logicalName string
	name        string
	// key is the attribute holding the primary id; stored in column "id".
	key     string
	columns []column
	// owned tables carry an owner_id column stamped on create.
	owned bool
	// secured tables are readable and writable only by their owner and the
	// users they are shared with.
	secured bool
}

const (
	idColumn    = "id"
	ownerColumn = "owner_id"
)

var schema = map[string]*table{
	models.EntityEmail: {
		logicalName: models.EntityEmail,
		name:        "emails",
		key:         models.AttrActivityID,
		owned:       true,
		columns: []column{
			{attribute: models.AttrOwnerID, name: ownerColumn, kind: kindReference, target: models.EntitySystemUser},
			{attribute: models.AttrSubject, name: "subject", kind: kindString},
			{attribute: models.AttrDescription, name: "description", kind: kindString},
			{attribute: models.AttrIsSecure, name: "is_secure", kind: kindBool},
			{attribute: models.AttrSecureDataID, name: "secure_data_id", kind: kindReference, target: models.EntitySecureData},
			{attribute: models.AttrStatusCode, name: "status_code", kind: kindOption},
		},
	},
	models.EntitySecureData: {
		logicalName: models.EntitySecureData,
		name:        "secure_data",
		key:         models.AttrSecureDataID,
		owned:       true,
		secured:     true,
		columns: []column{
			{attribute: models.AttrOwnerID, name: ownerColumn, kind: kindReference, target: models.EntitySystemUser},
			{attribute: models.AttrDetails, name: "details", kind: kindString},
		},
	},
	models.EntityAttachment: {
		logicalName: models.EntityAttachment,
		name:        "attachments",
		key:         models.AttrAttachmentID,
		columns: []column{
			{attribute: models.AttrObjectID, name: "activity_id", kind: kindReference, target: models.EntityEmail},
			{attribute: models.AttrFileName, name: "file_name", kind: kindString},
			{attribute: models.AttrMimeType, name: "mime_type", kind: kindString},
			{attribute: models.AttrBody, name: "body", kind: kindString},
		},
	},
}

func lookupTable(logicalName string) (*table, error) {
	t, ok := schema[logicalName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, logicalName)
	}
	return t, nil
}

// column resolves an attribute, including the primary key attribute.
func (t *table) column(attribute string) (column, error) {
	if attribute == t.key {
		return column{attribute: t.key, name: idColumn, kind: kindReference, target: t.logicalName}, nil
	}
	for _, c := range t.columns {
		if c.attribute == attribute {
			return c, nil
		}
	}
	return column{}, fmt.Errorf("%w: %s.%s", ErrUnknownAttribute, t.logicalName, attribute)
}

// projection resolves a column set to columns. The primary key is not
// included.
func (t *table) projection(cs models.ColumnSet) ([]column, error) {
	if cs.AllColumns {
		return t.columns, nil
	}
	cols := make([]column, 0, len(cs.Columns))
	for _, attr := range cs.Columns {
		if attr == t.key {
			continue
		}
		c, err := t.column(attr)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, nil
}
