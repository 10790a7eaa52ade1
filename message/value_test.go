package message

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudhraja/vtwire/schema"
)

func callerIDDescriptor(t *testing.T) *schema.MessageDescriptor {
	md, err := schema.NewMessageDescriptor("vtrpc.CallerID",
		&schema.FieldDescriptor{Number: 1, Name: "principal", Kind: schema.KindString, Label: schema.LabelOptional},
		&schema.FieldDescriptor{Number: 2, Name: "component", Kind: schema.KindString, Label: schema.LabelOptional},
	)
	require.NoError(t, err)
	return md
}

func requestDescriptor(t *testing.T) *schema.MessageDescriptor {
	md, err := schema.NewMessageDescriptor("test.Request",
		&schema.FieldDescriptor{Number: 1, Name: "caller_id", Kind: schema.KindMessage, Label: schema.LabelOptional, Reference: "vtrpc.CallerID"},
		&schema.FieldDescriptor{Number: 2, Name: "keyspace_ids", Kind: schema.KindBytes, Label: schema.LabelRepeated},
		&schema.FieldDescriptor{Number: 3, Name: "shards", Kind: schema.KindString, Label: schema.LabelRepeated},
		&schema.FieldDescriptor{Number: 4, Name: "tablet_type", Kind: schema.KindEnum, Label: schema.LabelOptional, Reference: "topodata.TabletType"},
		&schema.FieldDescriptor{Number: 5, Name: "as_transaction", Kind: schema.KindBool, Label: schema.LabelOptional},
		&schema.FieldDescriptor{Number: 6, Name: "rows_affected", Kind: schema.KindUint64, Label: schema.LabelOptional},
		&schema.FieldDescriptor{Number: 7, Name: "ratio", Kind: schema.KindDouble, Label: schema.LabelOptional},
		&schema.FieldDescriptor{Number: 8, Name: "callers", Kind: schema.KindMessage, Label: schema.LabelRepeated, Reference: "vtrpc.CallerID"},
	)
	require.NoError(t, err)
	return md
}

func TestValue_PresenceSemantics(t *testing.T) {
	md := requestDescriptor(t)
	v := New(md)

	tests := []struct {
		number schema.FieldNumber
		value  interface{}
		zero   interface{}
	}{
		{4, int32(2), int32(0)},
		{5, true, false},
		{6, uint64(99), uint64(0)},
		{7, float64(0.5), float64(0)},
	}

	for _, tt := range tests {
		assert.False(t, v.Has(tt.number), "field %d set after construction", tt.number)

		require.NoError(t, v.Set(tt.number, tt.value))
		assert.True(t, v.Has(tt.number))
		got, err := v.Get(tt.number)
		require.NoError(t, err)
		assert.Equal(t, tt.value, got)

		require.NoError(t, v.Clear(tt.number))
		assert.False(t, v.Has(tt.number))
		got, err = v.Get(tt.number)
		require.NoError(t, err)
		assert.Equal(t, tt.zero, got)
	}
}

func TestValue_ZeroValueIsPresent(t *testing.T) {
	v := New(requestDescriptor(t))
	require.NoError(t, v.Set(5, false))
	assert.True(t, v.Has(5))
}

func TestValue_MessageField(t *testing.T) {
	v := New(requestDescriptor(t))

	got, err := v.Get(1)
	require.NoError(t, err)
	assert.Nil(t, got)

	caller := New(callerIDDescriptor(t))
	require.NoError(t, caller.Set(1, "alice"))
	require.NoError(t, v.Set(1, caller))

	got, err = v.Get(1)
	require.NoError(t, err)
	assert.Same(t, caller, got)
	assert.Equal(t, "alice", GetAs[string](got.(*Value), 1))
}

func TestValue_TypeMismatch(t *testing.T) {
	v := New(requestDescriptor(t))

	other, err := schema.NewMessageDescriptor("vtgate.Session")
	require.NoError(t, err)

	tests := []struct {
		name   string
		number schema.FieldNumber
		value  interface{}
		add    bool
	}{
		{"string for bool", 5, "true", false},
		{"int for uint64", 6, 99, false},
		{"int64 for enum", 4, int64(1), false},
		{"wrong message type", 1, New(other), false},
		{"nil message", 1, (*Value)(nil), false},
		{"map for message", 1, map[string]interface{}{"principal": "x"}, false},
		{"string for bytes element", 2, "ks", true},
		{"add on singular", 5, true, true},
		{"non-slice for repeated", 3, "a", false},
		{"bad element in slice", 3, []interface{}{"a", 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.add {
				err = v.Add(tt.number, tt.value)
			} else {
				err = v.Set(tt.number, tt.value)
			}
			var mismatch *TypeMismatchError
			require.True(t, errors.As(err, &mismatch), "got %v", err)
			assert.Equal(t, tt.number, mismatch.Field)
			assert.False(t, v.Has(tt.number))
		})
	}
}

func TestValue_RepeatedOrdering(t *testing.T) {
	v := New(requestDescriptor(t))

	for _, s := range []string{"-80", "80-", "c0-"} {
		require.NoError(t, v.Add(3, s))
	}
	all, err := v.GetAll(3)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"-80", "80-", "c0-"}, all)
	assert.Equal(t, []string{"-80", "80-", "c0-"}, ListAs[string](v, 3))
	assert.Equal(t, 3, v.Len(3))

	// Get without index returns the full sequence as a copy
	got, err := v.Get(3)
	require.NoError(t, err)
	got.([]interface{})[0] = "mutated"
	el, err := v.GetAt(3, 0)
	require.NoError(t, err)
	assert.Equal(t, "-80", el)

	require.NoError(t, v.SetAt(3, 1, "40-80"))
	assert.Equal(t, []string{"-80", "40-80", "c0-"}, ListAs[string](v, 3))
}

func TestValue_IndexError(t *testing.T) {
	v := New(requestDescriptor(t))
	require.NoError(t, v.Set(2, [][]byte{{0x01}, {0x02}}))

	for _, i := range []int{-1, 2, 5} {
		_, err := v.GetAt(2, i)
		var idxErr *IndexError
		require.True(t, errors.As(err, &idxErr))
		assert.Equal(t, i, idxErr.Index)
		assert.Equal(t, 2, idxErr.Len)
	}

	err := v.SetAt(2, 2, []byte{0x03})
	assert.True(t, errors.Is(err, &IndexError{}))
}

func TestValue_SetRepeatedReplacesAndEmptyClears(t *testing.T) {
	v := New(requestDescriptor(t))
	require.NoError(t, v.Add(3, "a"))
	require.NoError(t, v.Set(3, []string{"b", "c"}))
	assert.Equal(t, []string{"b", "c"}, ListAs[string](v, 3))

	require.NoError(t, v.Set(3, []string{}))
	assert.False(t, v.Has(3))
	all, err := v.Get(3)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestValue_UnknownFieldNumber(t *testing.T) {
	v := New(requestDescriptor(t))

	_, err := v.Get(42)
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.True(t, errors.Is(v.Set(42, true), ErrUnknownField))
	assert.True(t, errors.Is(v.Add(42, true), ErrUnknownField))
	assert.True(t, errors.Is(v.Clear(42), ErrUnknownField))
	assert.False(t, v.Has(42))
}

func TestValue_RangeIsNumberOrdered(t *testing.T) {
	v := New(requestDescriptor(t))
	require.NoError(t, v.Set(7, float64(1)))
	require.NoError(t, v.Set(5, true))
	require.NoError(t, v.Add(3, "x"))

	var seen []schema.FieldNumber
	v.Range(func(fd *schema.FieldDescriptor, _ interface{}) bool {
		seen = append(seen, fd.Number)
		return true
	})
	assert.Equal(t, []schema.FieldNumber{3, 5, 7}, seen)
}

func TestValue_CloneAndEqual(t *testing.T) {
	md := requestDescriptor(t)
	v := New(md)
	caller := New(callerIDDescriptor(t))
	require.NoError(t, caller.Set(1, "alice"))
	require.NoError(t, v.Set(1, caller))
	require.NoError(t, v.Add(2, []byte{0x80}))
	require.NoError(t, v.Add(8, caller.Clone()))
	v.SetUnknown([]byte{0xa0, 0x06, 0x01})

	c := v.Clone()
	assert.True(t, Equal(v, c))

	require.NoError(t, GetAs[*Value](c, 1).Set(1, "bob"))
	assert.False(t, Equal(v, c))
	assert.Equal(t, "alice", GetAs[string](GetAs[*Value](v, 1), 1))

	c = v.Clone()
	ListAs[[]byte](c, 2)[0][0] = 0x00
	assert.False(t, Equal(v, c))

	c = v.Clone()
	c.SetUnknown(nil)
	assert.False(t, Equal(v, c))

	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(v, nil))
}

func TestValue_Reset(t *testing.T) {
	v := New(requestDescriptor(t))
	require.NoError(t, v.Set(5, true))
	v.AppendUnknown([]byte{0x08, 0x01})
	v.Reset()
	assert.False(t, v.Has(5))
	assert.Nil(t, v.Unknown())
}

type tabletTypes map[int32]string

func (tt tabletTypes) EnumValueName(enum string, n int32) (string, bool) {
	if enum != "topodata.TabletType" {
		return "", false
	}
	name, ok := tt[n]
	return name, ok
}

func TestToMap(t *testing.T) {
	v := New(requestDescriptor(t))
	caller := New(callerIDDescriptor(t))
	require.NoError(t, caller.Set(1, "alice"))
	require.NoError(t, v.Set(1, caller))
	require.NoError(t, v.Set(4, int32(2)))
	require.NoError(t, v.Set(3, []string{"-80"}))
	require.NoError(t, v.Set(5, true))

	m := ToMap(v, tabletTypes{2: "REPLICA"})
	assert.Equal(t, map[string]interface{}{
		"callerId":      map[string]interface{}{"principal": "alice"},
		"shards":        []interface{}{"-80"},
		"tabletType":    "REPLICA",
		"asTransaction": true,
	}, m)

	m = ToMap(v, nil)
	assert.Equal(t, int32(2), m["tabletType"])
}
