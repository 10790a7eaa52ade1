// Package vtgate holds the batch keyspace-id request and response messages
// and the session state they carry.
package vtgate

import (
	"github.com/anirudhraja/vtwire/message"
	"github.com/anirudhraja/vtwire/proto/internal/accessor"
	"github.com/anirudhraja/vtwire/proto/query"
	"github.com/anirudhraja/vtwire/proto/topodata"
	"github.com/anirudhraja/vtwire/proto/vtrpc"
	"github.com/anirudhraja/vtwire/registry"
	"github.com/anirudhraja/vtwire/schema"
)

// Type names.
const (
	SessionName                         = "vtgate.Session"
	SessionShardSessionName             = "vtgate.Session.ShardSession"
	BoundKeyspaceIdQueryName            = "vtgate.BoundKeyspaceIdQuery"
	ExecuteBatchKeyspaceIdsRequestName  = "vtgate.ExecuteBatchKeyspaceIdsRequest"
	ExecuteBatchKeyspaceIdsResponseName = "vtgate.ExecuteBatchKeyspaceIdsResponse"
)

// Session field numbers.
const (
	SessionInTransactionField schema.FieldNumber = 1
	SessionShardSessionsField schema.FieldNumber = 2
)

// Session.ShardSession field numbers.
const (
	ShardSessionTargetField        schema.FieldNumber = 1
	ShardSessionTransactionIdField schema.FieldNumber = 2
)

// BoundKeyspaceIdQuery field numbers.
const (
	BoundKeyspaceIdQueryQueryField       schema.FieldNumber = 1
	BoundKeyspaceIdQueryKeyspaceField    schema.FieldNumber = 2
	BoundKeyspaceIdQueryKeyspaceIdsField schema.FieldNumber = 3
)

// ExecuteBatchKeyspaceIdsRequest field numbers.
const (
	ExecuteBatchKeyspaceIdsRequestCallerIdField      schema.FieldNumber = 1
	ExecuteBatchKeyspaceIdsRequestSessionField       schema.FieldNumber = 2
	ExecuteBatchKeyspaceIdsRequestQueriesField       schema.FieldNumber = 3
	ExecuteBatchKeyspaceIdsRequestTabletTypeField    schema.FieldNumber = 4
	ExecuteBatchKeyspaceIdsRequestAsTransactionField schema.FieldNumber = 5
)

// ExecuteBatchKeyspaceIdsResponse field numbers.
const (
	ExecuteBatchKeyspaceIdsResponseErrorField   schema.FieldNumber = 1
	ExecuteBatchKeyspaceIdsResponseSessionField schema.FieldNumber = 2
	ExecuteBatchKeyspaceIdsResponseResultsField schema.FieldNumber = 3
)

var sessionFields = []*schema.FieldDescriptor{
	{Number: SessionInTransactionField, Name: "in_transaction", Kind: schema.KindBool, Label: schema.LabelOptional},
	{Number: SessionShardSessionsField, Name: "shard_sessions", Kind: schema.KindMessage, Label: schema.LabelRepeated, Reference: SessionShardSessionName},
}

var shardSessionFields = []*schema.FieldDescriptor{
	{Number: ShardSessionTargetField, Name: "target", Kind: schema.KindMessage, Label: schema.LabelOptional, Reference: query.TargetName},
	{Number: ShardSessionTransactionIdField, Name: "transaction_id", Kind: schema.KindInt64, Label: schema.LabelOptional},
}

var boundKeyspaceIdQueryFields = []*schema.FieldDescriptor{
	{Number: BoundKeyspaceIdQueryQueryField, Name: "query", Kind: schema.KindMessage, Label: schema.LabelOptional, Reference: query.BoundQueryName},
	{Number: BoundKeyspaceIdQueryKeyspaceField, Name: "keyspace", Kind: schema.KindString, Label: schema.LabelOptional},
	{Number: BoundKeyspaceIdQueryKeyspaceIdsField, Name: "keyspace_ids", Kind: schema.KindBytes, Label: schema.LabelRepeated},
}

var executeBatchKeyspaceIdsRequestFields = []*schema.FieldDescriptor{
	{Number: ExecuteBatchKeyspaceIdsRequestCallerIdField, Name: "caller_id", Kind: schema.KindMessage, Label: schema.LabelOptional, Reference: vtrpc.CallerIDName},
	{Number: ExecuteBatchKeyspaceIdsRequestSessionField, Name: "session", Kind: schema.KindMessage, Label: schema.LabelOptional, Reference: SessionName},
	{Number: ExecuteBatchKeyspaceIdsRequestQueriesField, Name: "queries", Kind: schema.KindMessage, Label: schema.LabelRepeated, Reference: BoundKeyspaceIdQueryName},
	{Number: ExecuteBatchKeyspaceIdsRequestTabletTypeField, Name: "tablet_type", Kind: schema.KindEnum, Label: schema.LabelOptional, Reference: topodata.TabletTypeName},
	{Number: ExecuteBatchKeyspaceIdsRequestAsTransactionField, Name: "as_transaction", Kind: schema.KindBool, Label: schema.LabelOptional},
}

var executeBatchKeyspaceIdsResponseFields = []*schema.FieldDescriptor{
	{Number: ExecuteBatchKeyspaceIdsResponseErrorField, Name: "error", Kind: schema.KindMessage, Label: schema.LabelOptional, Reference: vtrpc.RPCErrorName},
	{Number: ExecuteBatchKeyspaceIdsResponseSessionField, Name: "session", Kind: schema.KindMessage, Label: schema.LabelOptional, Reference: SessionName},
	{Number: ExecuteBatchKeyspaceIdsResponseResultsField, Name: "results", Kind: schema.KindMessage, Label: schema.LabelRepeated, Reference: query.QueryResultName},
}

// Register adds the vtgate messages to r. The vtrpc, topodata and query
// types they reference are registered separately.
func Register(r *registry.Registry) error {
	messages := []struct {
		name   string
		fields []*schema.FieldDescriptor
	}{
		{SessionName, sessionFields},
		{SessionShardSessionName, shardSessionFields},
		{BoundKeyspaceIdQueryName, boundKeyspaceIdQueryFields},
		{ExecuteBatchKeyspaceIdsRequestName, executeBatchKeyspaceIdsRequestFields},
		{ExecuteBatchKeyspaceIdsResponseName, executeBatchKeyspaceIdsResponseFields},
	}
	for _, m := range messages {
		if err := r.RegisterMessage(m.name, m.fields...); err != nil {
			return err
		}
	}
	return nil
}

// Session is the client transaction state carried between vtgate calls.
type Session struct {
	v *message.Value
}

// NewSession returns an empty Session.
func NewSession(r *registry.Registry) (*Session, error) {
	v, err := accessor.New(r, SessionName)
	if err != nil {
		return nil, err
	}
	return &Session{v: v}, nil
}

// WrapSession gives typed access to v.
func WrapSession(v *message.Value) (*Session, error) {
	if err := accessor.Check(v, SessionName); err != nil {
		return nil, err
	}
	return &Session{v: v}, nil
}

// Value returns the underlying message value.
func (m *Session) Value() *message.Value {
	return m.v
}

// HasInTransaction reports whether in_transaction is set.
func (m *Session) HasInTransaction() bool {
	return m.v.Has(SessionInTransactionField)
}

// InTransaction returns in_transaction, or the zero value when it is unset.
func (m *Session) InTransaction() bool {
	return message.GetAs[bool](m.v, SessionInTransactionField)
}

// SetInTransaction sets in_transaction.
func (m *Session) SetInTransaction(x bool) {
	accessor.Must(m.v.Set(SessionInTransactionField, x))
}

// ClearInTransaction unsets in_transaction.
func (m *Session) ClearInTransaction() {
	accessor.Must(m.v.Clear(SessionInTransactionField))
}

// ShardSessions returns the elements of shard_sessions.
func (m *Session) ShardSessions() []*Session_ShardSession {
	list := message.ListAs[*message.Value](m.v, SessionShardSessionsField)
	out := make([]*Session_ShardSession, len(list))
	for i, v := range list {
		out[i], _ = WrapSession_ShardSession(v)
	}
	return out
}

// ShardSession returns element i of shard_sessions.
func (m *Session) ShardSession(i int) (*Session_ShardSession, error) {
	v, err := accessor.At(m.v, SessionShardSessionsField, i)
	if err != nil {
		return nil, err
	}
	return WrapSession_ShardSession(v)
}

// AddShardSession appends x to shard_sessions. A nil x is ignored.
func (m *Session) AddShardSession(x *Session_ShardSession) {
	if x == nil {
		return
	}
	accessor.Must(m.v.Add(SessionShardSessionsField, x.Value()))
}

// SetShardSessions replaces shard_sessions with the non-nil elements of xs.
func (m *Session) SetShardSessions(xs []*Session_ShardSession) {
	list := make([]*message.Value, 0, len(xs))
	for _, x := range xs {
		if x != nil {
			list = append(list, x.Value())
		}
	}
	accessor.Must(m.v.Set(SessionShardSessionsField, list))
}

// ClearShardSessions removes every element of shard_sessions.
func (m *Session) ClearShardSessions() {
	accessor.Must(m.v.Clear(SessionShardSessionsField))
}

// ShardSessionsLen returns the number of elements in shard_sessions.
func (m *Session) ShardSessionsLen() int {
	return m.v.Len(SessionShardSessionsField)
}

// Session_ShardSession is the open transaction on one shard.
type Session_ShardSession struct {
	v *message.Value
}

// NewSession_ShardSession returns an empty Session_ShardSession.
func NewSession_ShardSession(r *registry.Registry) (*Session_ShardSession, error) {
	v, err := accessor.New(r, SessionShardSessionName)
	if err != nil {
		return nil, err
	}
	return &Session_ShardSession{v: v}, nil
}

// WrapSession_ShardSession gives typed access to v.
func WrapSession_ShardSession(v *message.Value) (*Session_ShardSession, error) {
	if err := accessor.Check(v, SessionShardSessionName); err != nil {
		return nil, err
	}
	return &Session_ShardSession{v: v}, nil
}

// Value returns the underlying message value.
func (m *Session_ShardSession) Value() *message.Value {
	return m.v
}

// HasTarget reports whether target is set.
func (m *Session_ShardSession) HasTarget() bool {
	return m.v.Has(ShardSessionTargetField)
}

// Target returns target, or nil when it is unset.
func (m *Session_ShardSession) Target() *query.Target {
	v := message.GetAs[*message.Value](m.v, ShardSessionTargetField)
	if v == nil {
		return nil
	}
	w, _ := query.WrapTarget(v)
	return w
}

// SetTarget stores x; nil clears the field.
func (m *Session_ShardSession) SetTarget(x *query.Target) {
	if x == nil {
		m.ClearTarget()
		return
	}
	accessor.SetMessage(m.v, ShardSessionTargetField, x.Value())
}

// ClearTarget unsets target.
func (m *Session_ShardSession) ClearTarget() {
	accessor.Must(m.v.Clear(ShardSessionTargetField))
}

// HasTransactionId reports whether transaction_id is set.
func (m *Session_ShardSession) HasTransactionId() bool {
	return m.v.Has(ShardSessionTransactionIdField)
}

// TransactionId returns transaction_id, or the zero value when it is unset.
func (m *Session_ShardSession) TransactionId() int64 {
	return message.GetAs[int64](m.v, ShardSessionTransactionIdField)
}

// SetTransactionId sets transaction_id.
func (m *Session_ShardSession) SetTransactionId(x int64) {
	accessor.Must(m.v.Set(ShardSessionTransactionIdField, x))
}

// ClearTransactionId unsets transaction_id.
func (m *Session_ShardSession) ClearTransactionId() {
	accessor.Must(m.v.Clear(ShardSessionTransactionIdField))
}

// BoundKeyspaceIdQuery is a query routed to the shards owning the given keyspace ids.
type BoundKeyspaceIdQuery struct {
	v *message.Value
}

// NewBoundKeyspaceIdQuery returns an empty BoundKeyspaceIdQuery.
func NewBoundKeyspaceIdQuery(r *registry.Registry) (*BoundKeyspaceIdQuery, error) {
	v, err := accessor.New(r, BoundKeyspaceIdQueryName)
	if err != nil {
		return nil, err
	}
	return &BoundKeyspaceIdQuery{v: v}, nil
}

// WrapBoundKeyspaceIdQuery gives typed access to v.
func WrapBoundKeyspaceIdQuery(v *message.Value) (*BoundKeyspaceIdQuery, error) {
	if err := accessor.Check(v, BoundKeyspaceIdQueryName); err != nil {
		return nil, err
	}
	return &BoundKeyspaceIdQuery{v: v}, nil
}

// Value returns the underlying message value.
func (m *BoundKeyspaceIdQuery) Value() *message.Value {
	return m.v
}

// HasQuery reports whether query is set.
func (m *BoundKeyspaceIdQuery) HasQuery() bool {
	return m.v.Has(BoundKeyspaceIdQueryQueryField)
}

// Query returns query, or nil when it is unset.
func (m *BoundKeyspaceIdQuery) Query() *query.BoundQuery {
	v := message.GetAs[*message.Value](m.v, BoundKeyspaceIdQueryQueryField)
	if v == nil {
		return nil
	}
	w, _ := query.WrapBoundQuery(v)
	return w
}

// SetQuery stores x; nil clears the field.
func (m *BoundKeyspaceIdQuery) SetQuery(x *query.BoundQuery) {
	if x == nil {
		m.ClearQuery()
		return
	}
	accessor.SetMessage(m.v, BoundKeyspaceIdQueryQueryField, x.Value())
}

// ClearQuery unsets query.
func (m *BoundKeyspaceIdQuery) ClearQuery() {
	accessor.Must(m.v.Clear(BoundKeyspaceIdQueryQueryField))
}

// HasKeyspace reports whether keyspace is set.
func (m *BoundKeyspaceIdQuery) HasKeyspace() bool {
	return m.v.Has(BoundKeyspaceIdQueryKeyspaceField)
}

// Keyspace returns keyspace, or the zero value when it is unset.
func (m *BoundKeyspaceIdQuery) Keyspace() string {
	return message.GetAs[string](m.v, BoundKeyspaceIdQueryKeyspaceField)
}

// SetKeyspace sets keyspace.
func (m *BoundKeyspaceIdQuery) SetKeyspace(x string) {
	accessor.Must(m.v.Set(BoundKeyspaceIdQueryKeyspaceField, x))
}

// ClearKeyspace unsets keyspace.
func (m *BoundKeyspaceIdQuery) ClearKeyspace() {
	accessor.Must(m.v.Clear(BoundKeyspaceIdQueryKeyspaceField))
}

// KeyspaceIds returns the elements of keyspace_ids.
func (m *BoundKeyspaceIdQuery) KeyspaceIds() [][]byte {
	return message.ListAs[[]byte](m.v, BoundKeyspaceIdQueryKeyspaceIdsField)
}

// KeyspaceId returns element i of keyspace_ids.
func (m *BoundKeyspaceIdQuery) KeyspaceId(i int) ([]byte, error) {
	v, err := m.v.GetAt(BoundKeyspaceIdQueryKeyspaceIdsField, i)
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// AddKeyspaceId appends x to keyspace_ids.
func (m *BoundKeyspaceIdQuery) AddKeyspaceId(x []byte) {
	accessor.Must(m.v.Add(BoundKeyspaceIdQueryKeyspaceIdsField, x))
}

// SetKeyspaceIds replaces keyspace_ids with xs.
func (m *BoundKeyspaceIdQuery) SetKeyspaceIds(xs [][]byte) {
	accessor.Must(m.v.Set(BoundKeyspaceIdQueryKeyspaceIdsField, xs))
}

// ClearKeyspaceIds removes every element of keyspace_ids.
func (m *BoundKeyspaceIdQuery) ClearKeyspaceIds() {
	accessor.Must(m.v.Clear(BoundKeyspaceIdQueryKeyspaceIdsField))
}

// KeyspaceIdsLen returns the number of elements in keyspace_ids.
func (m *BoundKeyspaceIdQuery) KeyspaceIdsLen() int {
	return m.v.Len(BoundKeyspaceIdQueryKeyspaceIdsField)
}

// ExecuteBatchKeyspaceIdsRequest runs a batch of keyspace-id queries, optionally as one transaction.
type ExecuteBatchKeyspaceIdsRequest struct {
	v *message.Value
}

// NewExecuteBatchKeyspaceIdsRequest returns an empty ExecuteBatchKeyspaceIdsRequest.
func NewExecuteBatchKeyspaceIdsRequest(r *registry.Registry) (*ExecuteBatchKeyspaceIdsRequest, error) {
	v, err := accessor.New(r, ExecuteBatchKeyspaceIdsRequestName)
	if err != nil {
		return nil, err
	}
	return &ExecuteBatchKeyspaceIdsRequest{v: v}, nil
}

// WrapExecuteBatchKeyspaceIdsRequest gives typed access to v.
func WrapExecuteBatchKeyspaceIdsRequest(v *message.Value) (*ExecuteBatchKeyspaceIdsRequest, error) {
	if err := accessor.Check(v, ExecuteBatchKeyspaceIdsRequestName); err != nil {
		return nil, err
	}
	return &ExecuteBatchKeyspaceIdsRequest{v: v}, nil
}

// Value returns the underlying message value.
func (m *ExecuteBatchKeyspaceIdsRequest) Value() *message.Value {
	return m.v
}

// HasCallerId reports whether caller_id is set.
func (m *ExecuteBatchKeyspaceIdsRequest) HasCallerId() bool {
	return m.v.Has(ExecuteBatchKeyspaceIdsRequestCallerIdField)
}

// CallerId returns caller_id, or nil when it is unset.
func (m *ExecuteBatchKeyspaceIdsRequest) CallerId() *vtrpc.CallerID {
	v := message.GetAs[*message.Value](m.v, ExecuteBatchKeyspaceIdsRequestCallerIdField)
	if v == nil {
		return nil
	}
	w, _ := vtrpc.WrapCallerID(v)
	return w
}

// SetCallerId stores x; nil clears the field.
func (m *ExecuteBatchKeyspaceIdsRequest) SetCallerId(x *vtrpc.CallerID) {
	if x == nil {
		m.ClearCallerId()
		return
	}
	accessor.SetMessage(m.v, ExecuteBatchKeyspaceIdsRequestCallerIdField, x.Value())
}

// ClearCallerId unsets caller_id.
func (m *ExecuteBatchKeyspaceIdsRequest) ClearCallerId() {
	accessor.Must(m.v.Clear(ExecuteBatchKeyspaceIdsRequestCallerIdField))
}

// HasSession reports whether session is set.
func (m *ExecuteBatchKeyspaceIdsRequest) HasSession() bool {
	return m.v.Has(ExecuteBatchKeyspaceIdsRequestSessionField)
}

// Session returns session, or nil when it is unset.
func (m *ExecuteBatchKeyspaceIdsRequest) Session() *Session {
	v := message.GetAs[*message.Value](m.v, ExecuteBatchKeyspaceIdsRequestSessionField)
	if v == nil {
		return nil
	}
	w, _ := WrapSession(v)
	return w
}

// SetSession stores x; nil clears the field.
func (m *ExecuteBatchKeyspaceIdsRequest) SetSession(x *Session) {
	if x == nil {
		m.ClearSession()
		return
	}
	accessor.SetMessage(m.v, ExecuteBatchKeyspaceIdsRequestSessionField, x.Value())
}

// ClearSession unsets session.
func (m *ExecuteBatchKeyspaceIdsRequest) ClearSession() {
	accessor.Must(m.v.Clear(ExecuteBatchKeyspaceIdsRequestSessionField))
}

// Queries returns the elements of queries.
func (m *ExecuteBatchKeyspaceIdsRequest) Queries() []*BoundKeyspaceIdQuery {
	list := message.ListAs[*message.Value](m.v, ExecuteBatchKeyspaceIdsRequestQueriesField)
	out := make([]*BoundKeyspaceIdQuery, len(list))
	for i, v := range list {
		out[i], _ = WrapBoundKeyspaceIdQuery(v)
	}
	return out
}

// Query returns element i of queries.
func (m *ExecuteBatchKeyspaceIdsRequest) Query(i int) (*BoundKeyspaceIdQuery, error) {
	v, err := accessor.At(m.v, ExecuteBatchKeyspaceIdsRequestQueriesField, i)
	if err != nil {
		return nil, err
	}
	return WrapBoundKeyspaceIdQuery(v)
}

// AddQuery appends x to queries. A nil x is ignored.
func (m *ExecuteBatchKeyspaceIdsRequest) AddQuery(x *BoundKeyspaceIdQuery) {
	if x == nil {
		return
	}
	accessor.Must(m.v.Add(ExecuteBatchKeyspaceIdsRequestQueriesField, x.Value()))
}

// SetQueries replaces queries with the non-nil elements of xs.
func (m *ExecuteBatchKeyspaceIdsRequest) SetQueries(xs []*BoundKeyspaceIdQuery) {
	list := make([]*message.Value, 0, len(xs))
	for _, x := range xs {
		if x != nil {
			list = append(list, x.Value())
		}
	}
	accessor.Must(m.v.Set(ExecuteBatchKeyspaceIdsRequestQueriesField, list))
}

// ClearQueries removes every element of queries.
func (m *ExecuteBatchKeyspaceIdsRequest) ClearQueries() {
	accessor.Must(m.v.Clear(ExecuteBatchKeyspaceIdsRequestQueriesField))
}

// QueriesLen returns the number of elements in queries.
func (m *ExecuteBatchKeyspaceIdsRequest) QueriesLen() int {
	return m.v.Len(ExecuteBatchKeyspaceIdsRequestQueriesField)
}

// HasTabletType reports whether tablet_type is set.
func (m *ExecuteBatchKeyspaceIdsRequest) HasTabletType() bool {
	return m.v.Has(ExecuteBatchKeyspaceIdsRequestTabletTypeField)
}

// TabletType returns tablet_type.
func (m *ExecuteBatchKeyspaceIdsRequest) TabletType() topodata.TabletType {
	return topodata.TabletType(message.GetAs[int32](m.v, ExecuteBatchKeyspaceIdsRequestTabletTypeField))
}

// SetTabletType sets tablet_type.
func (m *ExecuteBatchKeyspaceIdsRequest) SetTabletType(x topodata.TabletType) {
	accessor.Must(m.v.Set(ExecuteBatchKeyspaceIdsRequestTabletTypeField, int32(x)))
}

// ClearTabletType unsets tablet_type.
func (m *ExecuteBatchKeyspaceIdsRequest) ClearTabletType() {
	accessor.Must(m.v.Clear(ExecuteBatchKeyspaceIdsRequestTabletTypeField))
}

// HasAsTransaction reports whether as_transaction is set.
func (m *ExecuteBatchKeyspaceIdsRequest) HasAsTransaction() bool {
	return m.v.Has(ExecuteBatchKeyspaceIdsRequestAsTransactionField)
}

// AsTransaction returns as_transaction, or the zero value when it is unset.
func (m *ExecuteBatchKeyspaceIdsRequest) AsTransaction() bool {
	return message.GetAs[bool](m.v, ExecuteBatchKeyspaceIdsRequestAsTransactionField)
}

// SetAsTransaction sets as_transaction.
func (m *ExecuteBatchKeyspaceIdsRequest) SetAsTransaction(x bool) {
	accessor.Must(m.v.Set(ExecuteBatchKeyspaceIdsRequestAsTransactionField, x))
}

// ClearAsTransaction unsets as_transaction.
func (m *ExecuteBatchKeyspaceIdsRequest) ClearAsTransaction() {
	accessor.Must(m.v.Clear(ExecuteBatchKeyspaceIdsRequestAsTransactionField))
}

// ExecuteBatchKeyspaceIdsResponse carries one result per query of the request.
type ExecuteBatchKeyspaceIdsResponse struct {
	v *message.Value
}

// NewExecuteBatchKeyspaceIdsResponse returns an empty ExecuteBatchKeyspaceIdsResponse.
func NewExecuteBatchKeyspaceIdsResponse(r *registry.Registry) (*ExecuteBatchKeyspaceIdsResponse, error) {
	v, err := accessor.New(r, ExecuteBatchKeyspaceIdsResponseName)
	if err != nil {
		return nil, err
	}
	return &ExecuteBatchKeyspaceIdsResponse{v: v}, nil
}

// WrapExecuteBatchKeyspaceIdsResponse gives typed access to v.
func WrapExecuteBatchKeyspaceIdsResponse(v *message.Value) (*ExecuteBatchKeyspaceIdsResponse, error) {
	if err := accessor.Check(v, ExecuteBatchKeyspaceIdsResponseName); err != nil {
		return nil, err
	}
	return &ExecuteBatchKeyspaceIdsResponse{v: v}, nil
}

// Value returns the underlying message value.
func (m *ExecuteBatchKeyspaceIdsResponse) Value() *message.Value {
	return m.v
}

// HasError reports whether error is set.
func (m *ExecuteBatchKeyspaceIdsResponse) HasError() bool {
	return m.v.Has(ExecuteBatchKeyspaceIdsResponseErrorField)
}

// Error returns error, or nil when it is unset.
func (m *ExecuteBatchKeyspaceIdsResponse) Error() *vtrpc.RPCError {
	v := message.GetAs[*message.Value](m.v, ExecuteBatchKeyspaceIdsResponseErrorField)
	if v == nil {
		return nil
	}
	w, _ := vtrpc.WrapRPCError(v)
	return w
}

// SetError stores x; nil clears the field.
func (m *ExecuteBatchKeyspaceIdsResponse) SetError(x *vtrpc.RPCError) {
	if x == nil {
		m.ClearError()
		return
	}
	accessor.SetMessage(m.v, ExecuteBatchKeyspaceIdsResponseErrorField, x.Value())
}

// ClearError unsets error.
func (m *ExecuteBatchKeyspaceIdsResponse) ClearError() {
	accessor.Must(m.v.Clear(ExecuteBatchKeyspaceIdsResponseErrorField))
}

// HasSession reports whether session is set.
func (m *ExecuteBatchKeyspaceIdsResponse) HasSession() bool {
	return m.v.Has(ExecuteBatchKeyspaceIdsResponseSessionField)
}

// Session returns session, or nil when it is unset.
func (m *ExecuteBatchKeyspaceIdsResponse) Session() *Session {
	v := message.GetAs[*message.Value](m.v, ExecuteBatchKeyspaceIdsResponseSessionField)
	if v == nil {
		return nil
	}
	w, _ := WrapSession(v)
	return w
}

// SetSession stores x; nil clears the field.
func (m *ExecuteBatchKeyspaceIdsResponse) SetSession(x *Session) {
	if x == nil {
		m.ClearSession()
		return
	}
	accessor.SetMessage(m.v, ExecuteBatchKeyspaceIdsResponseSessionField, x.Value())
}

// ClearSession unsets session.
func (m *ExecuteBatchKeyspaceIdsResponse) ClearSession() {
	accessor.Must(m.v.Clear(ExecuteBatchKeyspaceIdsResponseSessionField))
}

// Results returns the elements of results.
func (m *ExecuteBatchKeyspaceIdsResponse) Results() []*query.QueryResult {
	list := message.ListAs[*message.Value](m.v, ExecuteBatchKeyspaceIdsResponseResultsField)
	out := make([]*query.QueryResult, len(list))
	for i, v := range list {
		out[i], _ = query.WrapQueryResult(v)
	}
	return out
}

// Result returns element i of results.
func (m *ExecuteBatchKeyspaceIdsResponse) Result(i int) (*query.QueryResult, error) {
	v, err := accessor.At(m.v, ExecuteBatchKeyspaceIdsResponseResultsField, i)
	if err != nil {
		return nil, err
	}
	return query.WrapQueryResult(v)
}

// AddResult appends x to results. A nil x is ignored.
func (m *ExecuteBatchKeyspaceIdsResponse) AddResult(x *query.QueryResult) {
	if x == nil {
		return
	}
	accessor.Must(m.v.Add(ExecuteBatchKeyspaceIdsResponseResultsField, x.Value()))
}

// SetResults replaces results with the non-nil elements of xs.
func (m *ExecuteBatchKeyspaceIdsResponse) SetResults(xs []*query.QueryResult) {
	list := make([]*message.Value, 0, len(xs))
	for _, x := range xs {
		if x != nil {
			list = append(list, x.Value())
		}
	}
	accessor.Must(m.v.Set(ExecuteBatchKeyspaceIdsResponseResultsField, list))
}

// ClearResults removes every element of results.
func (m *ExecuteBatchKeyspaceIdsResponse) ClearResults() {
	accessor.Must(m.v.Clear(ExecuteBatchKeyspaceIdsResponseResultsField))
}

// ResultsLen returns the number of elements in results.
func (m *ExecuteBatchKeyspaceIdsResponse) ResultsLen() int {
	return m.v.Len(ExecuteBatchKeyspaceIdsResponseResultsField)
}
