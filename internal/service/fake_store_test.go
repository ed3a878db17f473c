package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-secure-data/internal/store"
	"github.com/MKhiriev/go-secure-data/models"
	"github.com/google/uuid"
)

// fakeBackend is an in-memory record store with the access rules of the
// SQL store: a securedata record is visible to its owner and the users it
// is shared with, every other record is visible to everyone.
type fakeBackend struct {
	mu      sync.Mutex
	records map[string]map[uuid.UUID]*models.Entity
	owners  map[uuid.UUID]uuid.UUID
	shares  map[uuid.UUID]map[uuid.UUID]bool
}

var fakeKeys = map[string]string{
	models.EntityEmail:      models.AttrActivityID,
	models.EntitySecureData: models.AttrSecureDataID,
	models.EntityAttachment: models.AttrAttachmentID,
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		records: map[string]map[uuid.UUID]*models.Entity{
			models.EntityEmail:      {},
			models.EntitySecureData: {},
			models.EntityAttachment: {},
		},
		owners: map[uuid.UUID]uuid.UUID{},
		shares: map[uuid.UUID]map[uuid.UUID]bool{},
	}
}

// ForUser implements [store.Factory].
func (b *fakeBackend) ForUser(userID uuid.UUID) store.Store {
	return &fakeStore{backend: b, userID: userID}
}

func (b *fakeBackend) share(secureDataID, userID uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.shares[secureDataID] == nil {
		b.shares[secureDataID] = map[uuid.UUID]bool{}
	}
	b.shares[secureDataID][userID] = true
}

// put stores a copy of entity as is, bypassing access rules. Nil attributes
// are dropped the way a NULL column is.
func (b *fakeBackend) put(entity *models.Entity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records[entity.LogicalName][entity.ID] = withoutNulls(entity)
}

// get returns a copy of the stored record, bypassing access rules.
func (b *fakeBackend) get(logicalName string, id uuid.UUID) *models.Entity {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec, ok := b.records[logicalName][id]
	if !ok {
		return nil
	}
	return rec.Clone()
}

func (b *fakeBackend) count(logicalName string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records[logicalName])
}

func (b *fakeBackend) visible(logicalName string, id, userID uuid.UUID) bool {
	if logicalName != models.EntitySecureData {
		return true
	}
	return b.owners[id] == userID || b.shares[id][userID]
}

type fakeStore struct {
	backend *fakeBackend
	userID  uuid.UUID
}

func (s *fakeStore) Retrieve(_ context.Context, logicalName string, id uuid.UUID, columns models.ColumnSet) (*models.Entity, error) {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	table, ok := b.records[logicalName]
	if !ok {
		return nil, store.ErrUnknownEntity
	}
	rec, ok := table[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", store.ErrNotFound, logicalName, id)
	}
	if !b.visible(logicalName, id, s.userID) {
		return nil, fmt.Errorf("%w: %s %s", store.ErrAccessDenied, logicalName, id)
	}
	return project(rec, columns), nil
}

func (s *fakeStore) RetrieveMultiple(_ context.Context, query *models.QueryExpression) ([]*models.Entity, error) {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	table, ok := b.records[query.EntityName]
	if !ok {
		return nil, store.ErrUnknownEntity
	}

	var results []*models.Entity
	for id, rec := range table {
		if !b.visible(query.EntityName, id, s.userID) || !matches(rec, query) {
			continue
		}

		row := project(rec, query.ColumnSet)
		keep := true
		for _, link := range query.LinkEntities {
			ref, _ := models.ReferenceField(rec, link.LinkFromAttributeName).Get()
			joined, found := b.records[link.LinkToEntityName][ref.ID]
			if !found || !b.visible(link.LinkToEntityName, ref.ID, s.userID) {
				keep = link.JoinOperator == models.JoinLeftOuter
				continue
			}
			for attr, v := range linkColumns(link, joined) {
				row.Set(models.AliasedAttribute(link.EntityAlias, attr), models.AliasedValue{
					EntityLogicalName:    link.LinkToEntityName,
					AttributeLogicalName: attr,
					Value:                v,
				})
			}
		}
		if keep {
			results = append(results, row)
		}
	}
	return results, nil
}

func (s *fakeStore) Create(_ context.Context, entity *models.Entity) (uuid.UUID, error) {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	table, ok := b.records[entity.LogicalName]
	if !ok {
		return uuid.Nil, store.ErrUnknownEntity
	}
	rec := withoutNulls(entity)
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if _, exists := table[rec.ID]; exists {
		return uuid.Nil, store.ErrAlreadyExists
	}
	if entity.LogicalName == models.EntitySecureData {
		b.owners[rec.ID] = s.userID
	}
	table[rec.ID] = rec
	return rec.ID, nil
}

func (s *fakeStore) Update(_ context.Context, entity *models.Entity) error {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	rec, ok := b.records[entity.LogicalName][entity.ID]
	if !ok {
		return fmt.Errorf("%w: %s %s", store.ErrNotFound, entity.LogicalName, entity.ID)
	}
	if !b.visible(entity.LogicalName, entity.ID, s.userID) {
		return fmt.Errorf("%w: %s %s", store.ErrAccessDenied, entity.LogicalName, entity.ID)
	}
	for attr, v := range entity.Attributes {
		if v == nil {
			rec.Remove(attr)
			continue
		}
		rec.Set(attr, v)
	}
	return nil
}

func (s *fakeStore) Delete(_ context.Context, logicalName string, id uuid.UUID) error {
	b := s.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.records[logicalName][id]; !ok {
		return fmt.Errorf("%w: %s %s", store.ErrNotFound, logicalName, id)
	}
	if !b.visible(logicalName, id, s.userID) {
		return fmt.Errorf("%w: %s %s", store.ErrAccessDenied, logicalName, id)
	}
	delete(b.records[logicalName], id)
	delete(b.owners, id)
	delete(b.shares, id)
	return nil
}

func withoutNulls(entity *models.Entity) *models.Entity {
	rec := models.NewEntity(entity.LogicalName, entity.ID)
	for attr, v := range entity.Attributes {
		if v != nil {
			rec.Set(attr, v)
		}
	}
	return rec
}

func project(rec *models.Entity, columns models.ColumnSet) *models.Entity {
	if columns.AllColumns {
		return rec.Clone()
	}
	out := models.NewEntity(rec.LogicalName, rec.ID)
	for _, attr := range columns.Columns {
		if v, ok := rec.Get(attr); ok {
			out.Set(attr, v)
		}
	}
	return out
}

func matches(rec *models.Entity, query *models.QueryExpression) bool {
	key := fakeKeys[query.EntityName]
	for _, cond := range query.Criteria {
		var (
			value   any
			present bool
		)
		if cond.AttributeName == key {
			value, present = rec.ID, true
		} else {
			value, present = rec.Get(cond.AttributeName)
			if ref, ok := value.(models.EntityReference); ok {
				value = ref.ID
			}
		}

		switch cond.Operator {
		case models.ConditionNull:
			if present {
				return false
			}
		case models.ConditionNotNull:
			if !present {
				return false
			}
		case models.ConditionEqual:
			if !present || len(cond.Values) == 0 || value != cond.Values[0] {
				return false
			}
		}
	}
	return true
}

func linkColumns(link models.LinkEntity, joined *models.Entity) map[string]any {
	cols := map[string]any{}
	key := fakeKeys[link.LinkToEntityName]
	wanted := func(attr string) bool {
		if link.Columns.AllColumns {
			return true
		}
		for _, c := range link.Columns.Columns {
			if c == attr {
				return true
			}
		}
		return false
	}

	if wanted(key) {
		cols[key] = joined.ToEntityReference()
	}
	for attr, v := range joined.Attributes {
		if attr != key && wanted(attr) {
			cols[attr] = v
		}
	}
	return cols
}
