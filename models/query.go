// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConditionOperator is the comparison used by a [ConditionExpression].
type ConditionOperator int

const (
	ConditionEqual ConditionOperator = iota
	ConditionNotNull
	ConditionNull
)

// JoinOperator selects how a [LinkEntity] is joined.
type JoinOperator int

const (
	JoinInner JoinOperator = iota
	JoinLeftOuter
)

// ConditionExpression filters the primary entity of a query.
type ConditionExpression struct {
	AttributeName string
	Operator      ConditionOperator
	Values        []any
}

// LinkEntity joins another entity to the primary entity of a query.
// Projected columns of the linked entity are returned as [AliasedValue]
// attributes keyed "EntityAlias.attribute".
type LinkEntity struct {
	LinkToEntityName      string
	LinkFromAttributeName string
	LinkToAttributeName   string
	JoinOperator          JoinOperator
	EntityAlias           string
	Columns               ColumnSet
}

// QueryExpression is a structured query over one entity type.
type QueryExpression struct {
	EntityName   string
	ColumnSet    ColumnSet
	Criteria     []ConditionExpression
	LinkEntities []LinkEntity
}

// NewQueryExpression starts a query over entityName.
func NewQueryExpression(entityName string, columns ColumnSet) *QueryExpression {
	return &QueryExpression{EntityName: entityName, ColumnSet: columns}
}

// AddCondition appends an equality or null check on the primary entity.
func (q *QueryExpression) AddCondition(attribute string, op ConditionOperator, values ...any) *QueryExpression {
	q.Criteria = append(q.Criteria, ConditionExpression{AttributeName: attribute, Operator: op, Values: values})
	return q
}

// AddLink appends a join and returns the query for chaining.
func (q *QueryExpression) AddLink(link LinkEntity) *QueryExpression {
	q.LinkEntities = append(q.LinkEntities, link)
	return q
}

// AliasedAttribute is the key under which a linked column is returned.
func AliasedAttribute(alias, attribute string) string {
	return alias + "." + attribute
}
