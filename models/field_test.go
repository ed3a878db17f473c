package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailFromEntity_AbsentNullAndSet(t *testing.T) {
	vault := EntityReference{LogicalName: EntitySecureData, ID: uuid.New()}

	e := NewEntity(EntityEmail, uuid.New())
	e.Set(AttrDescription, nil)
	e.Set(AttrIsSecure, true)
	e.Set(AttrSecureDataID, &vault)
	e.Set(AttrStatusCode, OptionSetValue(6))

	got, err := EmailFromEntity(e)
	require.NoError(t, err)

	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, Null[string](), got.Description)
	assert.True(t, got.IsSecure.IsTrue())
	assert.Equal(t, Set(vault), got.SecureDataRef)
	assert.Equal(t, Set(6), got.StatusCode)

	empty, err := EmailFromEntity(NewEntity(EntityEmail, uuid.New()))
	require.NoError(t, err)
	assert.False(t, empty.Description.Present)
	assert.False(t, empty.IsSecure.Present)
	assert.False(t, empty.StatusCode.Present)
}

func TestEmailFromEntity_WrongKind(t *testing.T) {
	tests := []struct {
		attribute string
		value     any
	}{
		{AttrIsSecure, "true"},
		{AttrIsSecure, int64(1)},
		{AttrSecureDataID, uuid.New().String()},
		{AttrStatusCode, "6"},
		{AttrDescription, 42},
	}

	for _, tt := range tests {
		t.Run(tt.attribute, func(t *testing.T) {
			e := NewEntity(EntityEmail, uuid.New())
			e.Set(tt.attribute, tt.value)

			_, err := EmailFromEntity(e)
			require.ErrorIs(t, err, ErrInvalidAttributeValue)
			assert.Contains(t, err.Error(), tt.attribute)
		})
	}

	view, err := EmailFromEntity(nil)
	require.NoError(t, err)
	assert.Equal(t, Email{}, view)
}

func TestFlagField(t *testing.T) {
	e := NewEntity(EntityEmail, uuid.New())

	assert.Equal(t, Flag{}, FlagField(e, AttrIsSecure))

	e.Set(AttrIsSecure, nil)
	assert.True(t, FlagField(e, AttrIsSecure).Cleared())
	assert.False(t, FlagField(e, AttrIsSecure).IsTrue())

	e.Set(AttrIsSecure, false)
	assert.Equal(t, Flag{Present: true, State: False}, FlagField(e, AttrIsSecure))

	e.Set(AttrIsSecure, "yes")
	assert.Equal(t, Flag{}, FlagField(e, AttrIsSecure))
}

func TestFields_ReadAliasedValues(t *testing.T) {
	e := NewEntity(EntityEmail, uuid.New())
	e.Set("sd.details", AliasedValue{EntityLogicalName: EntitySecureData, AttributeLogicalName: AttrDetails, Value: "secret"})
	e.Set("sd.statuscode", AliasedValue{Value: int64(7)})

	assert.Equal(t, Set("secret"), StringField(e, "sd.details"))
	assert.Equal(t, Set(7), OptionField(e, "sd.statuscode"))
}

func TestField_Get(t *testing.T) {
	v, ok := Set("x").Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = Null[string]().Get()
	assert.False(t, ok)

	_, ok = Field[string]{}.Get()
	assert.False(t, ok)
}

func TestEmail_WriteTo(t *testing.T) {
	e := NewEntity(EntityEmail, uuid.New())
	e.Set(AttrSubject, "hello")

	Email{
		Description:   Set("masked"),
		SecureDataRef: Null[EntityReference](),
	}.WriteTo(e)

	assert.Equal(t, "masked", e.Attributes[AttrDescription])
	v, ok := e.Get(AttrSecureDataID)
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, "hello", e.Attributes[AttrSubject])
	assert.False(t, e.Contains(AttrStatusCode))
}

func TestSecureData_ToEntity(t *testing.T) {
	id := uuid.New()

	e := SecureData{ID: id, Details: Null[string]()}.ToEntity()
	assert.Equal(t, EntitySecureData, e.LogicalName)
	assert.True(t, e.Contains(AttrDetails))
	assert.Nil(t, e.Attributes[AttrDetails])

	assert.False(t, SecureData{ID: id}.ToEntity().Contains(AttrDetails))
	assert.Equal(t, EntityReference{LogicalName: EntitySecureData, ID: id}, SecureData{ID: id}.Ref())
}

func TestAttachmentFromEntity(t *testing.T) {
	parent := EntityReference{LogicalName: EntityEmail, ID: uuid.New()}
	e := NewEntity(EntityAttachment, uuid.New())
	e.Set(AttrObjectID, parent)
	e.Set(AttrBody, "aGVsbG8=")

	got := AttachmentFromEntity(e)
	assert.Equal(t, Set(parent), got.ObjectRef)
	assert.True(t, got.HasBody)

	assert.Equal(t, Attachment{}, AttachmentFromEntity(nil))
}
