// Package vtrpc holds the RPC caller and error messages shared by the vtgate API.
package vtrpc

import (
	"strconv"

	"github.com/anirudhraja/vtwire/message"
	"github.com/anirudhraja/vtwire/proto/internal/accessor"
	"github.com/anirudhraja/vtwire/registry"
	"github.com/anirudhraja/vtwire/schema"
)

// Type names.
const (
	CallerIDName  = "vtrpc.CallerID"
	RPCErrorName  = "vtrpc.RPCError"
	ErrorCodeName = "vtrpc.ErrorCode"
)

// CallerID field numbers.
const (
	CallerIDPrincipalField    schema.FieldNumber = 1
	CallerIDComponentField    schema.FieldNumber = 2
	CallerIDSubcomponentField schema.FieldNumber = 3
)

// RPCError field numbers.
const (
	RPCErrorCodeField    schema.FieldNumber = 1
	RPCErrorMessageField schema.FieldNumber = 2
)

// ErrorCode classifies RPC failures.
type ErrorCode int32

const (
	ErrorCode_SUCCESS            ErrorCode = 0
	ErrorCode_CANCELLED          ErrorCode = 1
	ErrorCode_UNKNOWN_ERROR      ErrorCode = 2
	ErrorCode_BAD_INPUT          ErrorCode = 3
	ErrorCode_DEADLINE_EXCEEDED  ErrorCode = 4
	ErrorCode_INTEGRITY_ERROR    ErrorCode = 5
	ErrorCode_PERMISSION_DENIED  ErrorCode = 6
	ErrorCode_RESOURCE_EXHAUSTED ErrorCode = 7
	ErrorCode_QUERY_NOT_SERVED   ErrorCode = 8
	ErrorCode_NOT_IN_TX          ErrorCode = 9
	ErrorCode_INTERNAL_ERROR     ErrorCode = 10
	ErrorCode_TRANSIENT_ERROR    ErrorCode = 11
	ErrorCode_UNAUTHENTICATED    ErrorCode = 12
)

var errorCodeValues = []schema.EnumValue{
	{Name: "SUCCESS", Number: 0},
	{Name: "CANCELLED", Number: 1},
	{Name: "UNKNOWN_ERROR", Number: 2},
	{Name: "BAD_INPUT", Number: 3},
	{Name: "DEADLINE_EXCEEDED", Number: 4},
	{Name: "INTEGRITY_ERROR", Number: 5},
	{Name: "PERMISSION_DENIED", Number: 6},
	{Name: "RESOURCE_EXHAUSTED", Number: 7},
	{Name: "QUERY_NOT_SERVED", Number: 8},
	{Name: "NOT_IN_TX", Number: 9},
	{Name: "INTERNAL_ERROR", Number: 10},
	{Name: "TRANSIENT_ERROR", Number: 11},
	{Name: "UNAUTHENTICATED", Number: 12},
}

func (c ErrorCode) String() string {
	for _, v := range errorCodeValues {
		if v.Number == int32(c) {
			return v.Name
		}
	}
	return strconv.Itoa(int(c))
}

var callerIDFields = []*schema.FieldDescriptor{
	{Number: CallerIDPrincipalField, Name: "principal", Kind: schema.KindString, Label: schema.LabelOptional},
	{Number: CallerIDComponentField, Name: "component", Kind: schema.KindString, Label: schema.LabelOptional},
	{Number: CallerIDSubcomponentField, Name: "subcomponent", Kind: schema.KindString, Label: schema.LabelOptional},
}

var rpcErrorFields = []*schema.FieldDescriptor{
	{Number: RPCErrorCodeField, Name: "code", Kind: schema.KindEnum, Label: schema.LabelOptional, Reference: ErrorCodeName},
	{Number: RPCErrorMessageField, Name: "message", Kind: schema.KindString, Label: schema.LabelOptional},
}

// Register adds the vtrpc types to r.
func Register(r *registry.Registry) error {
	ed, err := schema.NewEnumDescriptor(ErrorCodeName, errorCodeValues...)
	if err != nil {
		return err
	}
	if err := r.RegisterEnum(ed); err != nil {
		return err
	}
	if err := r.RegisterMessage(CallerIDName, callerIDFields...); err != nil {
		return err
	}
	return r.RegisterMessage(RPCErrorName, rpcErrorFields...)
}

// CallerID identifies the end user on whose behalf a query runs.
type CallerID struct {
	v *message.Value
}

// NewCallerID returns an empty CallerID.
func NewCallerID(r *registry.Registry) (*CallerID, error) {
	v, err := accessor.New(r, CallerIDName)
	if err != nil {
		return nil, err
	}
	return &CallerID{v: v}, nil
}

// WrapCallerID gives typed access to v.
func WrapCallerID(v *message.Value) (*CallerID, error) {
	if err := accessor.Check(v, CallerIDName); err != nil {
		return nil, err
	}
	return &CallerID{v: v}, nil
}

// Value returns the underlying message value.
func (m *CallerID) Value() *message.Value {
	return m.v
}

// HasPrincipal reports whether principal is set.
func (m *CallerID) HasPrincipal() bool {
	return m.v.Has(CallerIDPrincipalField)
}

// Principal returns principal, or the zero value when it is unset.
func (m *CallerID) Principal() string {
	return message.GetAs[string](m.v, CallerIDPrincipalField)
}

// SetPrincipal sets principal.
func (m *CallerID) SetPrincipal(x string) {
	accessor.Must(m.v.Set(CallerIDPrincipalField, x))
}

// ClearPrincipal unsets principal.
func (m *CallerID) ClearPrincipal() {
	accessor.Must(m.v.Clear(CallerIDPrincipalField))
}

// HasComponent reports whether component is set.
func (m *CallerID) HasComponent() bool {
	return m.v.Has(CallerIDComponentField)
}

// Component returns component, or the zero value when it is unset.
func (m *CallerID) Component() string {
	return message.GetAs[string](m.v, CallerIDComponentField)
}

// SetComponent sets component.
func (m *CallerID) SetComponent(x string) {
	accessor.Must(m.v.Set(CallerIDComponentField, x))
}

// ClearComponent unsets component.
func (m *CallerID) ClearComponent() {
	accessor.Must(m.v.Clear(CallerIDComponentField))
}

// HasSubcomponent reports whether subcomponent is set.
func (m *CallerID) HasSubcomponent() bool {
	return m.v.Has(CallerIDSubcomponentField)
}

// Subcomponent returns subcomponent, or the zero value when it is unset.
func (m *CallerID) Subcomponent() string {
	return message.GetAs[string](m.v, CallerIDSubcomponentField)
}

// SetSubcomponent sets subcomponent.
func (m *CallerID) SetSubcomponent(x string) {
	accessor.Must(m.v.Set(CallerIDSubcomponentField, x))
}

// ClearSubcomponent unsets subcomponent.
func (m *CallerID) ClearSubcomponent() {
	accessor.Must(m.v.Clear(CallerIDSubcomponentField))
}

// RPCError is the error returned inside vtgate responses.
type RPCError struct {
	v *message.Value
}

// NewRPCError returns an empty RPCError.
func NewRPCError(r *registry.Registry) (*RPCError, error) {
	v, err := accessor.New(r, RPCErrorName)
	if err != nil {
		return nil, err
	}
	return &RPCError{v: v}, nil
}

// WrapRPCError gives typed access to v.
func WrapRPCError(v *message.Value) (*RPCError, error) {
	if err := accessor.Check(v, RPCErrorName); err != nil {
		return nil, err
	}
	return &RPCError{v: v}, nil
}

// Value returns the underlying message value.
func (m *RPCError) Value() *message.Value {
	return m.v
}

// HasCode reports whether code is set.
func (m *RPCError) HasCode() bool {
	return m.v.Has(RPCErrorCodeField)
}

// Code returns code.
func (m *RPCError) Code() ErrorCode {
	return ErrorCode(message.GetAs[int32](m.v, RPCErrorCodeField))
}

// SetCode sets code.
func (m *RPCError) SetCode(x ErrorCode) {
	accessor.Must(m.v.Set(RPCErrorCodeField, int32(x)))
}

// ClearCode unsets code.
func (m *RPCError) ClearCode() {
	accessor.Must(m.v.Clear(RPCErrorCodeField))
}

// HasMessage reports whether message is set.
func (m *RPCError) HasMessage() bool {
	return m.v.Has(RPCErrorMessageField)
}

// Message returns message, or the zero value when it is unset.
func (m *RPCError) Message() string {
	return message.GetAs[string](m.v, RPCErrorMessageField)
}

// SetMessage sets message.
func (m *RPCError) SetMessage(x string) {
	accessor.Must(m.v.Set(RPCErrorMessageField, x))
}

// ClearMessage unsets message.
func (m *RPCError) ClearMessage() {
	accessor.Must(m.v.Clear(RPCErrorMessageField))
}
