package query_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudhraja/vtwire/proto"
	"github.com/anirudhraja/vtwire/proto/query"
	"github.com/anirudhraja/vtwire/registry"
	"github.com/anirudhraja/vtwire/wire"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	require.NoError(t, proto.RegisterAll(r))
	return r
}

func TestRow_Cells(t *testing.T) {
	r := newRegistry(t)
	row, err := query.NewRow(r)
	require.NoError(t, err)

	row.SetCells([][]byte{[]byte("abc"), nil, {}, []byte("de")})
	assert.Equal(t, []int64{3, -1, 0, 2}, row.Lengths())
	assert.Equal(t, []byte("abcde"), row.Values())

	data, err := wire.Marshal(row.Value())
	require.NoError(t, err)
	raw, err := wire.ScanFields(data)
	require.NoError(t, err)
	require.Len(t, raw, 2)
	assert.Equal(t, wire.WireBytes, raw[0].WireType, "lengths are packed")
	assert.Equal(t, []byte{6, 1, 0, 4}, raw[0].RawData, "lengths are zigzag encoded")

	v, err := wire.Unmarshal(data, r.MustDescribe(query.RowName), r)
	require.NoError(t, err)
	got, err := query.WrapRow(v)
	require.NoError(t, err)
	cells, err := got.Cells()
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("abc"), nil, {}, []byte("de")}, cells)
}

func TestRow_CellsAllNull(t *testing.T) {
	r := newRegistry(t)
	row, err := query.NewRow(r)
	require.NoError(t, err)

	row.SetCells([][]byte{nil, nil})
	assert.False(t, row.HasValues())
	cells, err := row.Cells()
	require.NoError(t, err)
	assert.Equal(t, [][]byte{nil, nil}, cells)
}

func TestRow_CellsShortValues(t *testing.T) {
	r := newRegistry(t)
	row, err := query.NewRow(r)
	require.NoError(t, err)

	row.SetLengths([]int64{2, 5})
	row.SetValues([]byte("abc"))
	_, err = row.Cells()
	assert.ErrorContains(t, err, "column 1")
}

func TestRow_CellsOversizedLength(t *testing.T) {
	r := newRegistry(t)
	row, err := query.NewRow(r)
	require.NoError(t, err)
	row.SetLengths([]int64{1, math.MaxInt64})
	row.SetValues([]byte("ab"))

	data, err := wire.Marshal(row.Value())
	require.NoError(t, err)
	v, err := wire.Unmarshal(data, r.MustDescribe(query.RowName), r)
	require.NoError(t, err)
	got, err := query.WrapRow(v)
	require.NoError(t, err)

	var cells [][]byte
	require.NotPanics(t, func() { cells, err = got.Cells() })
	assert.Nil(t, cells)
	assert.ErrorContains(t, err, "column 1")
}

func TestBoundQuery_BindVariableMap(t *testing.T) {
	r := newRegistry(t)
	bq, err := query.NewBoundQuery(r)
	require.NoError(t, err)
	bq.SetSql("select * from t where id = :id")

	for _, val := range []string{"1", "2"} {
		bv, err := query.NewBindVariable(r)
		require.NoError(t, err)
		bv.SetType(query.Type_INT64)
		bv.SetValue_([]byte(val))
		entry, err := query.NewBoundQuery_BindVariablesEntry(r)
		require.NoError(t, err)
		entry.SetKey("id")
		entry.SetValue_(bv)
		bq.AddBindVariable(entry)
	}

	assert.Equal(t, 2, bq.BindVariablesLen())
	vars := bq.BindVariableMap()
	require.Len(t, vars, 1)
	assert.Equal(t, []byte("2"), vars["id"].Value_(), "later entries win")
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "VARBINARY", query.Type_VARBINARY.String())
	assert.Equal(t, "12345", query.Type(12345).String())
}
