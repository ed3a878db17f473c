// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-secure-data/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dollar = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func Test_buildRetrieveQuery_SecuredProjectsAccess(t *testing.T) {
	id, user := uuid.New(), uuid.New()
	tbl := schema[models.EntitySecureData]

	q, err := buildRetrieveQuery(dollar, tbl, id, tbl.columns, user)
	require.NoError(t, err)

	lower := strings.ToLower(q.sql)
	assert.Contains(t, lower, "from secure_data r")
	assert.Contains(t, lower, "r.owner_id = $1")
	assert.Contains(t, lower, "s.user_id = $2")
	assert.Contains(t, lower, "as has_access")
	assert.Contains(t, lower, "where r.id = $3")
	assert.Equal(t, []any{user.String(), user.String(), id.String()}, q.args)
	assert.True(t, q.hasAccess)
	require.Len(t, q.fields, 2)
	assert.Equal(t, models.AttrOwnerID, q.fields[0].key)
	assert.Equal(t, models.AttrDetails, q.fields[1].key)
}

func Test_buildRetrieveQuery_PlainTable(t *testing.T) {
	id := uuid.New()
	tbl := schema[models.EntityEmail]
	cols, err := tbl.projection(models.NewColumnSet(models.AttrSecureDataID, models.AttrActivityID))
	require.NoError(t, err)

	q, err := buildRetrieveQuery(dollar, tbl, id, cols, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "SELECT r.id, r.secure_data_id FROM emails r WHERE r.id = $1", q.sql)
	assert.Equal(t, []any{id.String()}, q.args)
	assert.False(t, q.hasAccess)
}

func Test_buildRetrieveMultipleQuery_LeftJoinCarriesAccessInOn(t *testing.T) {
	emailID, user := uuid.New(), uuid.New()

	query := models.NewQueryExpression(models.EntityEmail, models.NewColumnSet(models.AttrSecureDataID)).
		AddCondition(models.AttrActivityID, models.ConditionEqual, emailID).
		AddLink(models.LinkEntity{
			LinkToEntityName:      models.EntitySecureData,
			LinkFromAttributeName: models.AttrSecureDataID,
			LinkToAttributeName:   models.AttrSecureDataID,
			JoinOperator:          models.JoinLeftOuter,
			EntityAlias:           "sd",
			Columns:               models.NewColumnSet(models.AttrSecureDataID),
		})

	q, err := buildRetrieveMultipleQuery(dollar, query, user)
	require.NoError(t, err)

	lower := strings.ToLower(q.sql)
	assert.Contains(t, lower, "select r.id, r.secure_data_id, sd.id from emails r")
	assert.Contains(t, lower, "left join secure_data sd on (sd.id = r.secure_data_id and (sd.owner_id = $1")
	assert.Contains(t, lower, "where r.id = $3")
	assert.Contains(t, lower, "order by r.id")
	assert.Equal(t, []any{user.String(), user.String(), emailID.String()}, q.args)

	require.Len(t, q.fields, 2)
	assert.Equal(t, "sd.securedataid", q.fields[1].key)
	assert.Equal(t, models.EntitySecureData, q.fields[1].linkedEntity)
}

func Test_buildRetrieveMultipleQuery_Conditions(t *testing.T) {
	tests := []struct {
		name    string
		cond    models.ConditionExpression
		want    string
		wantErr error
	}{
		{
			name: "not null",
			cond: models.ConditionExpression{AttributeName: models.AttrSecureDataID, Operator: models.ConditionNotNull},
			want: "r.secure_data_id IS NOT NULL",
		},
		{
			name: "null",
			cond: models.ConditionExpression{AttributeName: models.AttrDescription, Operator: models.ConditionNull},
			want: "r.description IS NULL",
		},
		{
			name: "equal option",
			cond: models.ConditionExpression{
				AttributeName: models.AttrStatusCode,
				Operator:      models.ConditionEqual,
				Values:        []any{models.OptionSetValue(6)},
			},
			want: "r.status_code = $1",
		},
		{
			name:    "equal without value",
			cond:    models.ConditionExpression{AttributeName: models.AttrStatusCode, Operator: models.ConditionEqual},
			wantErr: ErrBuildingSQLQuery,
		},
		{
			name:    "unknown attribute",
			cond:    models.ConditionExpression{AttributeName: "priority", Operator: models.ConditionNull},
			wantErr: ErrUnknownAttribute,
		},
		{
			name: "mistyped value",
			cond: models.ConditionExpression{
				AttributeName: models.AttrIsSecure,
				Operator:      models.ConditionEqual,
				Values:        []any{"yes"},
			},
			wantErr: ErrInvalidAttributeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := models.NewQueryExpression(models.EntityEmail, models.AllColumns())
			query.Criteria = append(query.Criteria, tt.cond)

			q, err := buildRetrieveMultipleQuery(dollar, query, uuid.New())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, q.sql, tt.want)
		})
	}
}

func Test_buildRetrieveMultipleQuery_SecuredRootFiltered(t *testing.T) {
	query := models.NewQueryExpression(models.EntitySecureData, models.AllColumns())

	q, err := buildRetrieveMultipleQuery(dollar, query, uuid.New())
	require.NoError(t, err)
	assert.Contains(t, q.sql, "WHERE (r.owner_id = $1 OR EXISTS")
}

func Test_buildRetrieveMultipleQuery_UnknownEntity(t *testing.T) {
	_, err := buildRetrieveMultipleQuery(dollar, models.NewQueryExpression("contact", models.AllColumns()), uuid.New())
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func Test_buildUpdateQuery(t *testing.T) {
	id, user := uuid.New(), uuid.New()

	entity := models.NewEntity(models.EntitySecureData, id)
	entity.Set(models.AttrDetails, nil)
	values, err := assignments(schema[models.EntitySecureData], entity)
	require.NoError(t, err)

	query, args, err := buildUpdateQuery(dollar, schema[models.EntitySecureData], id, values, user)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE secure_data SET details = $1 WHERE id = $2 AND (secure_data.owner_id = $3"))
	assert.Equal(t, []any{nil, id.String(), user.String(), user.String()}, args)
}

func Test_buildDeleteQuery_PlainTable(t *testing.T) {
	id := uuid.New()

	query, args, err := buildDeleteQuery(dollar, schema[models.EntityAttachment], id, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM attachments WHERE id = $1", query)
	assert.Equal(t, []any{id.String()}, args)
}

func Test_buildInsertQuery_SchemaOrder(t *testing.T) {
	id := uuid.New()
	entity := models.NewEntity(models.EntityEmail, id)
	entity.Set(models.AttrStatusCode, models.OptionSetValue(3))
	entity.Set(models.AttrSubject, "hello")
	entity.Set(models.AttrIsSecure, true)

	values, err := assignments(schema[models.EntityEmail], entity)
	require.NoError(t, err)

	query, args, err := buildInsertQuery(dollar, schema[models.EntityEmail], id, values)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO emails (id,subject,is_secure,status_code) VALUES ($1,$2,$3,$4)", query)
	assert.Equal(t, []any{id.String(), "hello", true, int64(3)}, args)
}

func Test_assignments_UnknownAttribute(t *testing.T) {
	entity := models.NewEntity(models.EntitySecureData, uuid.New())
	entity.Set("nickname", "x")

	_, err := assignments(schema[models.EntitySecureData], entity)
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func Test_buildShareQueries(t *testing.T) {
	record, user := uuid.New(), uuid.New()

	query, args, err := buildGrantQuery(dollar, record, user)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO secure_data_shares (secure_data_id,user_id) VALUES ($1,$2) ON CONFLICT DO NOTHING", query)
	assert.Equal(t, []any{record.String(), user.String()}, args)

	query, args, err = buildRevokeQuery(dollar, record, user)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM secure_data_shares WHERE secure_data_id = $1 AND user_id = $2", query)
	assert.Equal(t, []any{record.String(), user.String()}, args)
}
