package store

import (
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-secure-data/models"
	"github.com/google/uuid"
)

// rootAlias qualifies the primary table of every select.
const rootAlias = "r"

const (
	sharesTable = "secure_data_shares"
	accessSQL   = "(%[1]s.owner_id = ? OR EXISTS (SELECT 1 FROM secure_data_shares s WHERE s.secure_data_id = %[1]s.id AND s.user_id = ?))"
)

// resultField is one projected column of a select after the primary key.
type resultField struct {
	// key is the attribute name in the resulting entity.
	key string
	col column
	// linkedEntity is set for columns of a joined entity, which are
	// returned as models.AliasedValue.
	linkedEntity string
}

// selectQuery is a built select together with the shape of its rows:
// the primary key, then fields, then has_access when hasAccess is set.
type selectQuery struct {
	sql       string
	args      []any
	fields    []resultField
	hasAccess bool
}

// accessPredicate holds when userID owns the secured record qualified by
// qualifier or the record is shared with userID.
func accessPredicate(qualifier string, userID uuid.UUID) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf(accessSQL, qualifier), userID.String(), userID.String())
}

func qualified(alias, name string) string {
	return alias + "." + name
}

// buildRetrieveQuery selects a single record by id. For secured tables the
// access predicate is projected as has_access instead of filtered on, so a
// denied record can be told apart from a missing one.
func buildRetrieveQuery(b sq.StatementBuilderType, t *table, id uuid.UUID, cols []column, userID uuid.UUID) (selectQuery, error) {
	fields := make([]resultField, 0, len(cols))
	builder := b.Select(qualified(rootAlias, idColumn))
	for _, c := range cols {
		builder = builder.Column(qualified(rootAlias, c.name))
		fields = append(fields, resultField{key: c.attribute, col: c})
	}

	if t.secured {
		predicate, args, err := accessPredicate(rootAlias, userID).ToSql()
		if err != nil {
			return selectQuery{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		builder = builder.Column("CASE WHEN "+predicate+" THEN 1 ELSE 0 END AS has_access", args...)
	}

	query, args, err := builder.
		From(t.name + " " + rootAlias).
		Where(sq.Eq{qualified(rootAlias, idColumn): id.String()}).
		ToSql()
	if err != nil {
		return selectQuery{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return selectQuery{sql: query, args: args, fields: fields, hasAccess: t.secured}, nil
}

// buildRetrieveMultipleQuery translates a query expression. Records of a
// secured primary table the user cannot access are filtered out. Joins to a
// secured table carry the access predicate in their ON clause, so an outer
// join to an inaccessible record yields NULL columns.
func buildRetrieveMultipleQuery(b sq.StatementBuilderType, q *models.QueryExpression, userID uuid.UUID) (selectQuery, error) {
	t, err := lookupTable(q.EntityName)
	if err != nil {
		return selectQuery{}, err
	}

	cols, err := t.projection(q.ColumnSet)
	if err != nil {
		return selectQuery{}, err
	}

	fields := make([]resultField, 0, len(cols))
	builder := b.Select(qualified(rootAlias, idColumn))
	for _, c := range cols {
		builder = builder.Column(qualified(rootAlias, c.name))
		fields = append(fields, resultField{key: c.attribute, col: c})
	}
	builder = builder.From(t.name + " " + rootAlias)

	for _, link := range q.LinkEntities {
		lt, err := lookupTable(link.LinkToEntityName)
		if err != nil {
			return selectQuery{}, err
		}
		from, err := t.column(link.LinkFromAttributeName)
		if err != nil {
			return selectQuery{}, err
		}
		to, err := lt.column(link.LinkToAttributeName)
		if err != nil {
			return selectQuery{}, err
		}
		alias := link.EntityAlias
		if alias == "" {
			alias = lt.logicalName
		}

		on := sq.And{sq.Expr(fmt.Sprintf("%s = %s", qualified(alias, to.name), qualified(rootAlias, from.name)))}
		if lt.secured {
			on = append(on, accessPredicate(alias, userID))
		}
		onSQL, onArgs, err := on.ToSql()
		if err != nil {
			return selectQuery{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		clause := fmt.Sprintf("%s %s ON %s", lt.name, alias, onSQL)
		switch link.JoinOperator {
		case models.JoinLeftOuter:
			builder = builder.LeftJoin(clause, onArgs...)
		default:
			builder = builder.Join(clause, onArgs...)
		}

		linkCols, err := lt.projection(link.Columns)
		if err != nil {
			return selectQuery{}, err
		}
		if link.Columns.AllColumns || slices.Contains(link.Columns.Columns, lt.key) {
			keyCol, _ := lt.column(lt.key)
			linkCols = append([]column{keyCol}, linkCols...)
		}
		for _, c := range linkCols {
			builder = builder.Column(qualified(alias, c.name))
			fields = append(fields, resultField{
				key:          models.AliasedAttribute(alias, c.attribute),
				col:          c,
				linkedEntity: lt.logicalName,
			})
		}
	}

	for _, cond := range q.Criteria {
		c, err := t.column(cond.AttributeName)
		if err != nil {
			return selectQuery{}, err
		}
		name := qualified(rootAlias, c.name)

		switch cond.Operator {
		case models.ConditionEqual:
			if len(cond.Values) != 1 {
				return selectQuery{}, fmt.Errorf("%w: equality on %s needs one value, got %d",
					ErrBuildingSQLQuery, cond.AttributeName, len(cond.Values))
			}
			v, err := toColumnValue(c, cond.Values[0])
			if err != nil {
				return selectQuery{}, err
			}
			builder = builder.Where(sq.Eq{name: v})
		case models.ConditionNotNull:
			builder = builder.Where(sq.NotEq{name: nil})
		case models.ConditionNull:
			builder = builder.Where(sq.Eq{name: nil})
		default:
			return selectQuery{}, fmt.Errorf("%w: unsupported condition operator %d", ErrBuildingSQLQuery, cond.Operator)
		}
	}

	if t.secured {
		builder = builder.Where(accessPredicate(rootAlias, userID))
	}

	query, args, err := builder.OrderBy(qualified(rootAlias, idColumn)).ToSql()
	if err != nil {
		return selectQuery{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return selectQuery{sql: query, args: args, fields: fields}, nil
}

// assignment is a column and the value written to it.
type assignment struct {
	col   column
	value any
}

// assignments converts the attributes of e to column values in schema
// order. The primary key attribute is skipped.
func assignments(t *table, e *models.Entity) ([]assignment, error) {
	for attr := range e.Attributes {
		if attr == t.key {
			continue
		}
		if _, err := t.column(attr); err != nil {
			return nil, err
		}
	}

	out := make([]assignment, 0, len(e.Attributes))
	for _, c := range t.columns {
		raw, ok := e.Get(c.attribute)
		if !ok {
			continue
		}
		v, err := toColumnValue(c, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, assignment{col: c, value: v})
	}
	return out, nil
}

func buildInsertQuery(b sq.StatementBuilderType, t *table, id uuid.UUID, values []assignment) (string, []any, error) {
	columns := []string{idColumn}
	args := []any{id.String()}
	for _, a := range values {
		columns = append(columns, a.col.name)
		args = append(args, a.value)
	}

	query, queryArgs, err := b.Insert(t.name).Columns(columns...).Values(args...).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, queryArgs, nil
}

func buildUpdateQuery(b sq.StatementBuilderType, t *table, id uuid.UUID, values []assignment, userID uuid.UUID) (string, []any, error) {
	builder := b.Update(t.name)
	for _, a := range values {
		builder = builder.Set(a.col.name, a.value)
	}
	builder = builder.Where(sq.Eq{idColumn: id.String()})
	if t.secured {
		builder = builder.Where(accessPredicate(t.name, userID))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteQuery(b sq.StatementBuilderType, t *table, id uuid.UUID, userID uuid.UUID) (string, []any, error) {
	builder := b.Delete(t.name).Where(sq.Eq{idColumn: id.String()})
	if t.secured {
		builder = builder.Where(accessPredicate(t.name, userID))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildExistsQuery(b sq.StatementBuilderType, t *table, id uuid.UUID) (string, []any, error) {
	query, args, err := b.Select("1").From(t.name).Where(sq.Eq{idColumn: id.String()}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildOwnerQuery(b sq.StatementBuilderType, secureDataID uuid.UUID) (string, []any, error) {
	query, args, err := b.Select(ownerColumn).
		From(schema[models.EntitySecureData].name).
		Where(sq.Eq{idColumn: secureDataID.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGrantQuery(b sq.StatementBuilderType, secureDataID, userID uuid.UUID) (string, []any, error) {
	query, args, err := b.Insert(sharesTable).
		Columns("secure_data_id", "user_id").
		Values(secureDataID.String(), userID.String()).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildRevokeQuery(b sq.StatementBuilderType, secureDataID, userID uuid.UUID) (string, []any, error) {
	query, args, err := b.Delete(sharesTable).
		Where(sq.Eq{"secure_data_id": secureDataID.String(), "user_id": userID.String()}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
