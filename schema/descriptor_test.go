package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionFields() []*FieldDescriptor {
	return []*FieldDescriptor{
		{Number: 2, Name: "shard_sessions", Kind: KindMessage, Label: LabelRepeated, Reference: "vtgate.Session.ShardSession"},
		{Number: 1, Name: "in_transaction", Kind: KindBool, Label: LabelOptional},
	}
}

func TestNewMessageDescriptor(t *testing.T) {
	md, err := NewMessageDescriptor("vtgate.Session", sessionFields()...)
	require.NoError(t, err)

	assert.Equal(t, "vtgate.Session", md.FullName())
	assert.Equal(t, 2, md.Len())

	// declaration order is kept, encoding order is by number
	assert.Equal(t, FieldNumber(2), md.Fields()[0].Number)
	assert.Equal(t, FieldNumber(1), md.SortedFields()[0].Number)

	f, ok := md.Field(2)
	require.True(t, ok)
	assert.Equal(t, "shard_sessions", f.Name)
	assert.Equal(t, "shardSessions", f.JSON())
	assert.Equal(t, WireBytes, f.WireType())
	assert.True(t, f.IsRepeated())

	f, ok = md.FieldByName("in_transaction")
	require.True(t, ok)
	assert.Equal(t, WireVarint, f.WireType())

	_, ok = md.Field(3)
	assert.False(t, ok)
}

func TestNewMessageDescriptor_CopiesFields(t *testing.T) {
	fields := sessionFields()
	md, err := NewMessageDescriptor("vtgate.Session", fields...)
	require.NoError(t, err)

	fields[1].Name = "mutated"
	_, ok := md.FieldByName("in_transaction")
	assert.True(t, ok)
}

func TestNewMessageDescriptor_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		fields []*FieldDescriptor
		field  FieldNumber
	}{
		{
			name: "duplicate number",
			fields: []*FieldDescriptor{
				{Number: 1, Name: "a", Kind: KindInt32, Label: LabelOptional},
				{Number: 1, Name: "b", Kind: KindString, Label: LabelOptional},
			},
			field: 1,
		},
		{
			name: "duplicate name",
			fields: []*FieldDescriptor{
				{Number: 1, Name: "a", Kind: KindInt32, Label: LabelOptional},
				{Number: 2, Name: "a", Kind: KindString, Label: LabelOptional},
			},
			field: 2,
		},
		{
			name:   "zero number",
			fields: []*FieldDescriptor{{Number: 0, Name: "a", Kind: KindInt32, Label: LabelOptional}},
		},
		{
			name:   "reserved number",
			fields: []*FieldDescriptor{{Number: 19500, Name: "a", Kind: KindInt32, Label: LabelOptional}},
			field:  19500,
		},
		{
			name:   "too large",
			fields: []*FieldDescriptor{{Number: MaxFieldNumber + 1, Name: "a", Kind: KindInt32, Label: LabelOptional}},
			field:  MaxFieldNumber + 1,
		},
		{
			name:   "message without reference",
			fields: []*FieldDescriptor{{Number: 1, Name: "a", Kind: KindMessage, Label: LabelOptional}},
			field:  1,
		},
		{
			name:   "scalar with reference",
			fields: []*FieldDescriptor{{Number: 1, Name: "a", Kind: KindBool, Label: LabelOptional, Reference: "x.Y"}},
			field:  1,
		},
		{
			name:   "packed string",
			fields: []*FieldDescriptor{{Number: 1, Name: "a", Kind: KindString, Label: LabelRepeated, Packed: true}},
			field:  1,
		},
		{
			name:   "packed optional",
			fields: []*FieldDescriptor{{Number: 1, Name: "a", Kind: KindInt32, Label: LabelOptional, Packed: true}},
			field:  1,
		},
		{
			name:   "unknown kind",
			fields: []*FieldDescriptor{{Number: 1, Name: "a", Kind: "group", Label: LabelOptional}},
			field:  1,
		},
		{
			name:   "unknown label",
			fields: []*FieldDescriptor{{Number: 1, Name: "a", Kind: KindInt32, Label: "required"}},
			field:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMessageDescriptor("test.Message", tt.fields...)
			require.Error(t, err)

			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, "test.Message", schemaErr.Message)
			assert.Equal(t, tt.field, schemaErr.Field)
			assert.True(t, errors.Is(err, &SchemaError{}))
		})
	}
}

func TestKindWireTypes(t *testing.T) {
	tests := []struct {
		kind     Kind
		wireType WireType
		packable bool
	}{
		{KindInt32, WireVarint, true},
		{KindSint64, WireVarint, true},
		{KindBool, WireVarint, true},
		{KindEnum, WireVarint, true},
		{KindFixed32, WireFixed32, true},
		{KindFloat, WireFixed32, true},
		{KindDouble, WireFixed64, true},
		{KindSfixed64, WireFixed64, true},
		{KindString, WireBytes, false},
		{KindBytes, WireBytes, false},
		{KindMessage, WireBytes, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.wireType, tt.kind.WireType())
			assert.Equal(t, tt.packable, tt.kind.IsPackable())
		})
	}
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("sint64")
	assert.True(t, ok)
	assert.Equal(t, KindSint64, k)

	for _, s := range []string{"message", "enum", "map", "Session"} {
		_, ok := ParseKind(s)
		assert.False(t, ok, s)
	}
}

func TestEnumDescriptor(t *testing.T) {
	ed, err := NewEnumDescriptor("topodata.TabletType",
		EnumValue{Name: "UNKNOWN", Number: 0},
		EnumValue{Name: "RDONLY", Number: 3},
		EnumValue{Name: "BATCH", Number: 3},
	)
	require.NoError(t, err)

	name, ok := ed.ValueByNumber(3)
	require.True(t, ok)
	assert.Equal(t, "RDONLY", name)

	n, ok := ed.ValueByName("BATCH")
	require.True(t, ok)
	assert.Equal(t, int32(3), n)

	_, ok = ed.ValueByNumber(42)
	assert.False(t, ok)

	_, err = NewEnumDescriptor("x.E", EnumValue{Name: "A", Number: 0}, EnumValue{Name: "A", Number: 1})
	assert.True(t, errors.Is(err, &SchemaError{}))
}

func TestToLowerCamel(t *testing.T) {
	assert.Equal(t, "asTransaction", toLowerCamel("as_transaction"))
	assert.Equal(t, "keyspaceIds", toLowerCamel("keyspace_ids"))
	assert.Equal(t, "sql", toLowerCamel("sql"))
	assert.Equal(t, "callerId", toLowerCamel("CallerId"))
}
