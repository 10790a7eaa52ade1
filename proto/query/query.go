// Package query holds the query, bind variable and result messages.
package query

import (
	"fmt"
	"strconv"

	"github.com/anirudhraja/vtwire/message"
	"github.com/anirudhraja/vtwire/proto/internal/accessor"
	"github.com/anirudhraja/vtwire/proto/topodata"
	"github.com/anirudhraja/vtwire/registry"
	"github.com/anirudhraja/vtwire/schema"
)

// Type names.
const (
	TypeName                         = "query.Type"
	BindVariableName                 = "query.BindVariable"
	BoundQueryName                   = "query.BoundQuery"
	BoundQueryBindVariablesEntryName = "query.BoundQuery.BindVariablesEntry"
	FieldName                        = "query.Field"
	RowName                          = "query.Row"
	QueryResultName                  = "query.QueryResult"
	TargetName                       = "query.Target"
)

// BindVariable field numbers.
const (
	BindVariableTypeField  schema.FieldNumber = 1
	BindVariableValueField schema.FieldNumber = 2
)

// BoundQuery field numbers.
const (
	BoundQuerySqlField           schema.FieldNumber = 1
	BoundQueryBindVariablesField schema.FieldNumber = 2
)

// BoundQuery.BindVariablesEntry field numbers.
const (
	BindVariablesEntryKeyField   schema.FieldNumber = 1
	BindVariablesEntryValueField schema.FieldNumber = 2
)

// Field field numbers.
const (
	FieldNameField schema.FieldNumber = 1
	FieldTypeField schema.FieldNumber = 2
)

// Row field numbers.
const (
	RowLengthsField schema.FieldNumber = 1
	RowValuesField  schema.FieldNumber = 2
)

// QueryResult field numbers.
const (
	QueryResultFieldsField       schema.FieldNumber = 1
	QueryResultRowsAffectedField schema.FieldNumber = 2
	QueryResultInsertIdField     schema.FieldNumber = 3
	QueryResultRowsField         schema.FieldNumber = 4
)

// Target field numbers.
const (
	TargetKeyspaceField   schema.FieldNumber = 1
	TargetShardField      schema.FieldNumber = 2
	TargetTabletTypeField schema.FieldNumber = 3
	TargetCellField       schema.FieldNumber = 4
)

// Type is the MySQL column type of a value. The number encodes type flags
// in its high bits.
type Type int32

const (
	Type_NULL_TYPE Type = 0
	Type_INT8      Type = 257
	Type_UINT8     Type = 770
	Type_INT16     Type = 259
	Type_UINT16    Type = 772
	Type_INT24     Type = 261
	Type_UINT24    Type = 774
	Type_INT32     Type = 263
	Type_UINT32    Type = 776
	Type_INT64     Type = 265
	Type_UINT64    Type = 778
	Type_FLOAT32   Type = 1035
	Type_FLOAT64   Type = 1036
	Type_TIMESTAMP Type = 2061
	Type_DATE      Type = 2062
	Type_TIME      Type = 2063
	Type_DATETIME  Type = 2064
	Type_YEAR      Type = 785
	Type_DECIMAL   Type = 18
	Type_TEXT      Type = 6163
	Type_BLOB      Type = 10260
	Type_VARCHAR   Type = 6165
	Type_VARBINARY Type = 10262
	Type_CHAR      Type = 6167
	Type_BINARY    Type = 10264
	Type_BIT       Type = 2073
	Type_ENUM      Type = 2074
	Type_SET       Type = 2075
	Type_TUPLE     Type = 28
	Type_GEOMETRY  Type = 2077
	Type_JSON      Type = 2078
)

var typeValues = []schema.EnumValue{
	{Name: "NULL_TYPE", Number: 0},
	{Name: "INT8", Number: 257},
	{Name: "UINT8", Number: 770},
	{Name: "INT16", Number: 259},
	{Name: "UINT16", Number: 772},
	{Name: "INT24", Number: 261},
	{Name: "UINT24", Number: 774},
	{Name: "INT32", Number: 263},
	{Name: "UINT32", Number: 776},
	{Name: "INT64", Number: 265},
	{Name: "UINT64", Number: 778},
	{Name: "FLOAT32", Number: 1035},
	{Name: "FLOAT64", Number: 1036},
	{Name: "TIMESTAMP", Number: 2061},
	{Name: "DATE", Number: 2062},
	{Name: "TIME", Number: 2063},
	{Name: "DATETIME", Number: 2064},
	{Name: "YEAR", Number: 785},
	{Name: "DECIMAL", Number: 18},
	{Name: "TEXT", Number: 6163},
	{Name: "BLOB", Number: 10260},
	{Name: "VARCHAR", Number: 6165},
	{Name: "VARBINARY", Number: 10262},
	{Name: "CHAR", Number: 6167},
	{Name: "BINARY", Number: 10264},
	{Name: "BIT", Number: 2073},
	{Name: "ENUM", Number: 2074},
	{Name: "SET", Number: 2075},
	{Name: "TUPLE", Number: 28},
	{Name: "GEOMETRY", Number: 2077},
	{Name: "JSON", Number: 2078},
}

func (t Type) String() string {
	for _, v := range typeValues {
		if v.Number == int32(t) {
			return v.Name
		}
	}
	return strconv.Itoa(int(t))
}

var bindVariableFields = []*schema.FieldDescriptor{
	{Number: BindVariableTypeField, Name: "type", Kind: schema.KindEnum, Label: schema.LabelOptional, Reference: TypeName},
	{Number: BindVariableValueField, Name: "value", Kind: schema.KindBytes, Label: schema.LabelOptional},
}

var boundQueryFields = []*schema.FieldDescriptor{
	{Number: BoundQuerySqlField, Name: "sql", Kind: schema.KindString, Label: schema.LabelOptional},
	{Number: BoundQueryBindVariablesField, Name: "bind_variables", Kind: schema.KindMessage, Label: schema.LabelRepeated, Reference: BoundQueryBindVariablesEntryName},
}

// map<string, BindVariable> in wire form
var bindVariablesEntryFields = []*schema.FieldDescriptor{
	{Number: BindVariablesEntryKeyField, Name: "key", Kind: schema.KindString, Label: schema.LabelOptional},
	{Number: BindVariablesEntryValueField, Name: "value", Kind: schema.KindMessage, Label: schema.LabelOptional, Reference: BindVariableName},
}

var fieldFields = []*schema.FieldDescriptor{
	{Number: FieldNameField, Name: "name", Kind: schema.KindString, Label: schema.LabelOptional},
	{Number: FieldTypeField, Name: "type", Kind: schema.KindEnum, Label: schema.LabelOptional, Reference: TypeName},
}

var rowFields = []*schema.FieldDescriptor{
	{Number: RowLengthsField, Name: "lengths", Kind: schema.KindSint64, Label: schema.LabelRepeated, Packed: true},
	{Number: RowValuesField, Name: "values", Kind: schema.KindBytes, Label: schema.LabelOptional},
}

var queryResultFields = []*schema.FieldDescriptor{
	{Number: QueryResultFieldsField, Name: "fields", Kind: schema.KindMessage, Label: schema.LabelRepeated, Reference: FieldName},
	{Number: QueryResultRowsAffectedField, Name: "rows_affected", Kind: schema.KindUint64, Label: schema.LabelOptional},
	{Number: QueryResultInsertIdField, Name: "insert_id", Kind: schema.KindUint64, Label: schema.LabelOptional},
	{Number: QueryResultRowsField, Name: "rows", Kind: schema.KindMessage, Label: schema.LabelRepeated, Reference: RowName},
}

var targetFields = []*schema.FieldDescriptor{
	{Number: TargetKeyspaceField, Name: "keyspace", Kind: schema.KindString, Label: schema.LabelOptional},
	{Number: TargetShardField, Name: "shard", Kind: schema.KindString, Label: schema.LabelOptional},
	{Number: TargetTabletTypeField, Name: "tablet_type", Kind: schema.KindEnum, Label: schema.LabelOptional, Reference: topodata.TabletTypeName},
	{Number: TargetCellField, Name: "cell", Kind: schema.KindString, Label: schema.LabelOptional},
}

// Register adds the query types to r. The topodata enum Target refers to is
// registered separately.
func Register(r *registry.Registry) error {
	ed, err := schema.NewEnumDescriptor(TypeName, typeValues...)
	if err != nil {
		return err
	}
	if err := r.RegisterEnum(ed); err != nil {
		return err
	}
	messages := []struct {
		name   string
		fields []*schema.FieldDescriptor
	}{
		{BindVariableName, bindVariableFields},
		{BoundQueryName, boundQueryFields},
		{BoundQueryBindVariablesEntryName, bindVariablesEntryFields},
		{FieldName, fieldFields},
		{RowName, rowFields},
		{QueryResultName, queryResultFields},
		{TargetName, targetFields},
	}
	for _, m := range messages {
		if err := r.RegisterMessage(m.name, m.fields...); err != nil {
			return err
		}
	}
	return nil
}

// BindVariable is a typed query parameter.
type BindVariable struct {
	v *message.Value
}

// NewBindVariable returns an empty BindVariable.
func NewBindVariable(r *registry.Registry) (*BindVariable, error) {
	v, err := accessor.New(r, BindVariableName)
	if err != nil {
		return nil, err
	}
	return &BindVariable{v: v}, nil
}

// WrapBindVariable gives typed access to v.
func WrapBindVariable(v *message.Value) (*BindVariable, error) {
	if err := accessor.Check(v, BindVariableName); err != nil {
		return nil, err
	}
	return &BindVariable{v: v}, nil
}

// Value returns the underlying message value.
func (m *BindVariable) Value() *message.Value {
	return m.v
}

// HasType reports whether type is set.
func (m *BindVariable) HasType() bool {
	return m.v.Has(BindVariableTypeField)
}

// Type returns type.
func (m *BindVariable) Type() Type {
	return Type(message.GetAs[int32](m.v, BindVariableTypeField))
}

// SetType sets type.
func (m *BindVariable) SetType(x Type) {
	accessor.Must(m.v.Set(BindVariableTypeField, int32(x)))
}

// ClearType unsets type.
func (m *BindVariable) ClearType() {
	accessor.Must(m.v.Clear(BindVariableTypeField))
}

// HasValue_ reports whether value is set.
func (m *BindVariable) HasValue_() bool {
	return m.v.Has(BindVariableValueField)
}

// Value_ returns value, or the zero value when it is unset.
func (m *BindVariable) Value_() []byte {
	return message.GetAs[[]byte](m.v, BindVariableValueField)
}

// SetValue_ sets value.
func (m *BindVariable) SetValue_(x []byte) {
	accessor.Must(m.v.Set(BindVariableValueField, x))
}

// ClearValue_ unsets value.
func (m *BindVariable) ClearValue_() {
	accessor.Must(m.v.Clear(BindVariableValueField))
}

// BoundQuery is a SQL statement with its bind variables.
type BoundQuery struct {
	v *message.Value
}

// NewBoundQuery returns an empty BoundQuery.
func NewBoundQuery(r *registry.Registry) (*BoundQuery, error) {
	v, err := accessor.New(r, BoundQueryName)
	if err != nil {
		return nil, err
	}
	return &BoundQuery{v: v}, nil
}

// WrapBoundQuery gives typed access to v.
func WrapBoundQuery(v *message.Value) (*BoundQuery, error) {
	if err := accessor.Check(v, BoundQueryName); err != nil {
		return nil, err
	}
	return &BoundQuery{v: v}, nil
}

// Value returns the underlying message value.
func (m *BoundQuery) Value() *message.Value {
	return m.v
}

// HasSql reports whether sql is set.
func (m *BoundQuery) HasSql() bool {
	return m.v.Has(BoundQuerySqlField)
}

// Sql returns sql, or the zero value when it is unset.
func (m *BoundQuery) Sql() string {
	return message.GetAs[string](m.v, BoundQuerySqlField)
}

// SetSql sets sql.
func (m *BoundQuery) SetSql(x string) {
	accessor.Must(m.v.Set(BoundQuerySqlField, x))
}

// ClearSql unsets sql.
func (m *BoundQuery) ClearSql() {
	accessor.Must(m.v.Clear(BoundQuerySqlField))
}

// BindVariables returns the elements of bind_variables.
func (m *BoundQuery) BindVariables() []*BoundQuery_BindVariablesEntry {
	list := message.ListAs[*message.Value](m.v, BoundQueryBindVariablesField)
	out := make([]*BoundQuery_BindVariablesEntry, len(list))
	for i, v := range list {
		out[i], _ = WrapBoundQuery_BindVariablesEntry(v)
	}
	return out
}

// BindVariable returns element i of bind_variables.
func (m *BoundQuery) BindVariable(i int) (*BoundQuery_BindVariablesEntry, error) {
	v, err := accessor.At(m.v, BoundQueryBindVariablesField, i)
	if err != nil {
		return nil, err
	}
	return WrapBoundQuery_BindVariablesEntry(v)
}

// AddBindVariable appends x to bind_variables. A nil x is ignored.
func (m *BoundQuery) AddBindVariable(x *BoundQuery_BindVariablesEntry) {
	if x == nil {
		return
	}
	accessor.Must(m.v.Add(BoundQueryBindVariablesField, x.Value()))
}

// SetBindVariables replaces bind_variables with the non-nil elements of xs.
func (m *BoundQuery) SetBindVariables(xs []*BoundQuery_BindVariablesEntry) {
	list := make([]*message.Value, 0, len(xs))
	for _, x := range xs {
		if x != nil {
			list = append(list, x.Value())
		}
	}
	accessor.Must(m.v.Set(BoundQueryBindVariablesField, list))
}

// ClearBindVariables removes every element of bind_variables.
func (m *BoundQuery) ClearBindVariables() {
	accessor.Must(m.v.Clear(BoundQueryBindVariablesField))
}

// BindVariablesLen returns the number of elements in bind_variables.
func (m *BoundQuery) BindVariablesLen() int {
	return m.v.Len(BoundQueryBindVariablesField)
}

// BoundQuery_BindVariablesEntry is one key/value pair of BoundQuery.bind_variables.
type BoundQuery_BindVariablesEntry struct {
	v *message.Value
}

// NewBoundQuery_BindVariablesEntry returns an empty BoundQuery_BindVariablesEntry.
func NewBoundQuery_BindVariablesEntry(r *registry.Registry) (*BoundQuery_BindVariablesEntry, error) {
	v, err := accessor.New(r, BoundQueryBindVariablesEntryName)
	if err != nil {
		return nil, err
	}
	return &BoundQuery_BindVariablesEntry{v: v}, nil
}

// WrapBoundQuery_BindVariablesEntry gives typed access to v.
func WrapBoundQuery_BindVariablesEntry(v *message.Value) (*BoundQuery_BindVariablesEntry, error) {
	if err := accessor.Check(v, BoundQueryBindVariablesEntryName); err != nil {
		return nil, err
	}
	return &BoundQuery_BindVariablesEntry{v: v}, nil
}

// Value returns the underlying message value.
func (m *BoundQuery_BindVariablesEntry) Value() *message.Value {
	return m.v
}

// HasKey reports whether key is set.
func (m *BoundQuery_BindVariablesEntry) HasKey() bool {
	return m.v.Has(BindVariablesEntryKeyField)
}

// Key returns key, or the zero value when it is unset.
func (m *BoundQuery_BindVariablesEntry) Key() string {
	return message.GetAs[string](m.v, BindVariablesEntryKeyField)
}

// SetKey sets key.
func (m *BoundQuery_BindVariablesEntry) SetKey(x string) {
	accessor.Must(m.v.Set(BindVariablesEntryKeyField, x))
}

// ClearKey unsets key.
func (m *BoundQuery_BindVariablesEntry) ClearKey() {
	accessor.Must(m.v.Clear(BindVariablesEntryKeyField))
}

// HasValue_ reports whether value is set.
func (m *BoundQuery_BindVariablesEntry) HasValue_() bool {
	return m.v.Has(BindVariablesEntryValueField)
}

// Value_ returns value, or nil when it is unset.
func (m *BoundQuery_BindVariablesEntry) Value_() *BindVariable {
	v := message.GetAs[*message.Value](m.v, BindVariablesEntryValueField)
	if v == nil {
		return nil
	}
	w, _ := WrapBindVariable(v)
	return w
}

// SetValue_ stores x; nil clears the field.
func (m *BoundQuery_BindVariablesEntry) SetValue_(x *BindVariable) {
	if x == nil {
		m.ClearValue_()
		return
	}
	accessor.SetMessage(m.v, BindVariablesEntryValueField, x.Value())
}

// ClearValue_ unsets value.
func (m *BoundQuery_BindVariablesEntry) ClearValue_() {
	accessor.Must(m.v.Clear(BindVariablesEntryValueField))
}

// Field describes one result column.
type Field struct {
	v *message.Value
}

// NewField returns an empty Field.
func NewField(r *registry.Registry) (*Field, error) {
	v, err := accessor.New(r, FieldName)
	if err != nil {
		return nil, err
	}
	return &Field{v: v}, nil
}

// WrapField gives typed access to v.
func WrapField(v *message.Value) (*Field, error) {
	if err := accessor.Check(v, FieldName); err != nil {
		return nil, err
	}
	return &Field{v: v}, nil
}

// Value returns the underlying message value.
func (m *Field) Value() *message.Value {
	return m.v
}

// HasName reports whether name is set.
func (m *Field) HasName() bool {
	return m.v.Has(FieldNameField)
}

// Name returns name, or the zero value when it is unset.
func (m *Field) Name() string {
	return message.GetAs[string](m.v, FieldNameField)
}

// SetName sets name.
func (m *Field) SetName(x string) {
	accessor.Must(m.v.Set(FieldNameField, x))
}

// ClearName unsets name.
func (m *Field) ClearName() {
	accessor.Must(m.v.Clear(FieldNameField))
}

// HasType reports whether type is set.
func (m *Field) HasType() bool {
	return m.v.Has(FieldTypeField)
}

// Type returns type.
func (m *Field) Type() Type {
	return Type(message.GetAs[int32](m.v, FieldTypeField))
}

// SetType sets type.
func (m *Field) SetType(x Type) {
	accessor.Must(m.v.Set(FieldTypeField, int32(x)))
}

// ClearType unsets type.
func (m *Field) ClearType() {
	accessor.Must(m.v.Clear(FieldTypeField))
}

// Row is one result row. Lengths holds the byte length of each column value, -1 for NULL; Values holds the values back to back.
type Row struct {
	v *message.Value
}

// NewRow returns an empty Row.
func NewRow(r *registry.Registry) (*Row, error) {
	v, err := accessor.New(r, RowName)
	if err != nil {
		return nil, err
	}
	return &Row{v: v}, nil
}

// WrapRow gives typed access to v.
func WrapRow(v *message.Value) (*Row, error) {
	if err := accessor.Check(v, RowName); err != nil {
		return nil, err
	}
	return &Row{v: v}, nil
}

// Value returns the underlying message value.
func (m *Row) Value() *message.Value {
	return m.v
}

// Lengths returns the elements of lengths.
func (m *Row) Lengths() []int64 {
	return message.ListAs[int64](m.v, RowLengthsField)
}

// Length returns element i of lengths.
func (m *Row) Length(i int) (int64, error) {
	v, err := m.v.GetAt(RowLengthsField, i)
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

// AddLength appends x to lengths.
func (m *Row) AddLength(x int64) {
	accessor.Must(m.v.Add(RowLengthsField, x))
}

// SetLengths replaces lengths with xs.
func (m *Row) SetLengths(xs []int64) {
	accessor.Must(m.v.Set(RowLengthsField, xs))
}

// ClearLengths removes every element of lengths.
func (m *Row) ClearLengths() {
	accessor.Must(m.v.Clear(RowLengthsField))
}

// LengthsLen returns the number of elements in lengths.
func (m *Row) LengthsLen() int {
	return m.v.Len(RowLengthsField)
}

// HasValues reports whether values is set.
func (m *Row) HasValues() bool {
	return m.v.Has(RowValuesField)
}

// Values returns values, or the zero value when it is unset.
func (m *Row) Values() []byte {
	return message.GetAs[[]byte](m.v, RowValuesField)
}

// SetValues sets values.
func (m *Row) SetValues(x []byte) {
	accessor.Must(m.v.Set(RowValuesField, x))
}

// ClearValues unsets values.
func (m *Row) ClearValues() {
	accessor.Must(m.v.Clear(RowValuesField))
}

// QueryResult is the result of one query.
type QueryResult struct {
	v *message.Value
}

// NewQueryResult returns an empty QueryResult.
func NewQueryResult(r *registry.Registry) (*QueryResult, error) {
	v, err := accessor.New(r, QueryResultName)
	if err != nil {
		return nil, err
	}
	return &QueryResult{v: v}, nil
}

// WrapQueryResult gives typed access to v.
func WrapQueryResult(v *message.Value) (*QueryResult, error) {
	if err := accessor.Check(v, QueryResultName); err != nil {
		return nil, err
	}
	return &QueryResult{v: v}, nil
}

// Value returns the underlying message value.
func (m *QueryResult) Value() *message.Value {
	return m.v
}

// Fields returns the elements of fields.
func (m *QueryResult) Fields() []*Field {
	list := message.ListAs[*message.Value](m.v, QueryResultFieldsField)
	out := make([]*Field, len(list))
	for i, v := range list {
		out[i], _ = WrapField(v)
	}
	return out
}

// Field returns element i of fields.
func (m *QueryResult) Field(i int) (*Field, error) {
	v, err := accessor.At(m.v, QueryResultFieldsField, i)
	if err != nil {
		return nil, err
	}
	return WrapField(v)
}

// AddField appends x to fields. A nil x is ignored.
func (m *QueryResult) AddField(x *Field) {
	if x == nil {
		return
	}
	accessor.Must(m.v.Add(QueryResultFieldsField, x.Value()))
}

// SetFields replaces fields with the non-nil elements of xs.
func (m *QueryResult) SetFields(xs []*Field) {
	list := make([]*message.Value, 0, len(xs))
	for _, x := range xs {
		if x != nil {
			list = append(list, x.Value())
		}
	}
	accessor.Must(m.v.Set(QueryResultFieldsField, list))
}

// ClearFields removes every element of fields.
func (m *QueryResult) ClearFields() {
	accessor.Must(m.v.Clear(QueryResultFieldsField))
}

// FieldsLen returns the number of elements in fields.
func (m *QueryResult) FieldsLen() int {
	return m.v.Len(QueryResultFieldsField)
}

// HasRowsAffected reports whether rows_affected is set.
func (m *QueryResult) HasRowsAffected() bool {
	return m.v.Has(QueryResultRowsAffectedField)
}

// RowsAffected returns rows_affected, or the zero value when it is unset.
func (m *QueryResult) RowsAffected() uint64 {
	return message.GetAs[uint64](m.v, QueryResultRowsAffectedField)
}

// SetRowsAffected sets rows_affected.
func (m *QueryResult) SetRowsAffected(x uint64) {
	accessor.Must(m.v.Set(QueryResultRowsAffectedField, x))
}

// ClearRowsAffected unsets rows_affected.
func (m *QueryResult) ClearRowsAffected() {
	accessor.Must(m.v.Clear(QueryResultRowsAffectedField))
}

// HasInsertId reports whether insert_id is set.
func (m *QueryResult) HasInsertId() bool {
	return m.v.Has(QueryResultInsertIdField)
}

// InsertId returns insert_id, or the zero value when it is unset.
func (m *QueryResult) InsertId() uint64 {
	return message.GetAs[uint64](m.v, QueryResultInsertIdField)
}

// SetInsertId sets insert_id.
func (m *QueryResult) SetInsertId(x uint64) {
	accessor.Must(m.v.Set(QueryResultInsertIdField, x))
}

// ClearInsertId unsets insert_id.
func (m *QueryResult) ClearInsertId() {
	accessor.Must(m.v.Clear(QueryResultInsertIdField))
}

// Rows returns the elements of rows.
func (m *QueryResult) Rows() []*Row {
	list := message.ListAs[*message.Value](m.v, QueryResultRowsField)
	out := make([]*Row, len(list))
	for i, v := range list {
		out[i], _ = WrapRow(v)
	}
	return out
}

// Row returns element i of rows.
func (m *QueryResult) Row(i int) (*Row, error) {
	v, err := accessor.At(m.v, QueryResultRowsField, i)
	if err != nil {
		return nil, err
	}
	return WrapRow(v)
}

// AddRow appends x to rows. A nil x is ignored.
func (m *QueryResult) AddRow(x *Row) {
	if x == nil {
		return
	}
	accessor.Must(m.v.Add(QueryResultRowsField, x.Value()))
}

// SetRows replaces rows with the non-nil elements of xs.
func (m *QueryResult) SetRows(xs []*Row) {
	list := make([]*message.Value, 0, len(xs))
	for _, x := range xs {
		if x != nil {
			list = append(list, x.Value())
		}
	}
	accessor.Must(m.v.Set(QueryResultRowsField, list))
}

// ClearRows removes every element of rows.
func (m *QueryResult) ClearRows() {
	accessor.Must(m.v.Clear(QueryResultRowsField))
}

// RowsLen returns the number of elements in rows.
func (m *QueryResult) RowsLen() int {
	return m.v.Len(QueryResultRowsField)
}

// Target names the tablet a shard-level operation is sent to.
type Target struct {
	v *message.Value
}

// NewTarget returns an empty Target.
func NewTarget(r *registry.Registry) (*Target, error) {
	v, err := accessor.New(r, TargetName)
	if err != nil {
		return nil, err
	}
	return &Target{v: v}, nil
}

// WrapTarget gives typed access to v.
func WrapTarget(v *message.Value) (*Target, error) {
	if err := accessor.Check(v, TargetName); err != nil {
		return nil, err
	}
	return &Target{v: v}, nil
}

// Value returns the underlying message value.
func (m *Target) Value() *message.Value {
	return m.v
}

// HasKeyspace reports whether keyspace is set.
func (m *Target) HasKeyspace() bool {
	return m.v.Has(TargetKeyspaceField)
}

// Keyspace returns keyspace, or the zero value when it is unset.
func (m *Target) Keyspace() string {
	return message.GetAs[string](m.v, TargetKeyspaceField)
}

// SetKeyspace sets keyspace.
func (m *Target) SetKeyspace(x string) {
	accessor.Must(m.v.Set(TargetKeyspaceField, x))
}

// ClearKeyspace unsets keyspace.
func (m *Target) ClearKeyspace() {
	accessor.Must(m.v.Clear(TargetKeyspaceField))
}

// HasShard reports whether shard is set.
func (m *Target) HasShard() bool {
	return m.v.Has(TargetShardField)
}

// Shard returns shard, or the zero value when it is unset.
func (m *Target) Shard() string {
	return message.GetAs[string](m.v, TargetShardField)
}

// SetShard sets shard.
func (m *Target) SetShard(x string) {
	accessor.Must(m.v.Set(TargetShardField, x))
}

// ClearShard unsets shard.
func (m *Target) ClearShard() {
	accessor.Must(m.v.Clear(TargetShardField))
}

// HasTabletType reports whether tablet_type is set.
func (m *Target) HasTabletType() bool {
	return m.v.Has(TargetTabletTypeField)
}

// TabletType returns tablet_type.
func (m *Target) TabletType() topodata.TabletType {
	return topodata.TabletType(message.GetAs[int32](m.v, TargetTabletTypeField))
}

// SetTabletType sets tablet_type.
func (m *Target) SetTabletType(x topodata.TabletType) {
	accessor.Must(m.v.Set(TargetTabletTypeField, int32(x)))
}

// ClearTabletType unsets tablet_type.
func (m *Target) ClearTabletType() {
	accessor.Must(m.v.Clear(TargetTabletTypeField))
}

// HasCell reports whether cell is set.
func (m *Target) HasCell() bool {
	return m.v.Has(TargetCellField)
}

// Cell returns cell, or the zero value when it is unset.
func (m *Target) Cell() string {
	return message.GetAs[string](m.v, TargetCellField)
}

// SetCell sets cell.
func (m *Target) SetCell(x string) {
	accessor.Must(m.v.Set(TargetCellField, x))
}

// ClearCell unsets cell.
func (m *Target) ClearCell() {
	accessor.Must(m.v.Clear(TargetCellField))
}

// BindVariableMap returns bind_variables keyed by name. Later entries win
// over earlier ones with the same key, as they do for a protobuf map.
func (m *BoundQuery) BindVariableMap() map[string]*BindVariable {
	out := make(map[string]*BindVariable, m.BindVariablesLen())
	for _, e := range m.BindVariables() {
		out[e.Key()] = e.Value_()
	}
	return out
}

// Cells splits Values into one slice per column using Lengths. NULL columns
// (length -1) are returned as nil.
func (m *Row) Cells() ([][]byte, error) {
	values := m.Values()
	lengths := m.Lengths()
	cells := make([][]byte, len(lengths))
	pos := 0
	for i, l := range lengths {
		if l < 0 {
			continue
		}
		if l == 0 {
			cells[i] = []byte{}
			continue
		}
		if l > int64(len(values)-pos) {
			return nil, fmt.Errorf("query.Row: column %d needs %d bytes, %d left", i, l, len(values)-pos)
		}
		end := pos + int(l)
		cells[i] = values[pos:end]
		pos = end
	}
	return cells, nil
}

// SetCells is the inverse of Cells.
func (m *Row) SetCells(cells [][]byte) {
	lengths := make([]int64, len(cells))
	var values []byte
	for i, c := range cells {
		if c == nil {
			lengths[i] = -1
			continue
		}
		lengths[i] = int64(len(c))
		values = append(values, c...)
	}
	m.SetLengths(lengths)
	if values == nil {
		m.ClearValues()
		return
	}
	m.SetValues(values)
}
