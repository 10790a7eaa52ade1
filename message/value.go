package message

import (
	"bytes"

	"github.com/anirudhraja/vtwire/schema"
)

// Value is a mutable message instance keyed by field number. Singular fields
// hold their scalar or *Value, repeated fields hold an ordered []interface{}.
// A Value is not safe for concurrent mutation.
type Value struct {
	desc    *schema.MessageDescriptor
	values  map[schema.FieldNumber]interface{}
	unknown []byte
}

// New creates an empty value of the given type.
func New(desc *schema.MessageDescriptor) *Value {
	return &Value{
		desc:   desc,
		values: make(map[schema.FieldNumber]interface{}),
	}
}

// Descriptor returns the message descriptor.
func (v *Value) Descriptor() *schema.MessageDescriptor { return v.desc }

func (v *Value) field(n schema.FieldNumber) (*schema.FieldDescriptor, error) {
	fd, ok := v.desc.Field(n)
	if !ok {
		return nil, unknownField(v.desc, n)
	}
	return fd, nil
}

// Has reports whether field n was explicitly set. A repeated field is set
// when it holds at least one element.
func (v *Value) Has(n schema.FieldNumber) bool {
	_, ok := v.values[n]
	return ok
}

// Get returns field n. Unset singular fields yield the kind's default and
// repeated fields yield a copy of the whole sequence.
func (v *Value) Get(n schema.FieldNumber) (interface{}, error) {
	fd, err := v.field(n)
	if err != nil {
		return nil, err
	}
	val, ok := v.values[n]
	if fd.IsRepeated() {
		if !ok {
			return []interface{}{}, nil
		}
		return append([]interface{}(nil), val.([]interface{})...), nil
	}
	if !ok {
		return defaultValue(fd), nil
	}
	return val, nil
}

// GetAt returns element i of repeated field n.
func (v *Value) GetAt(n schema.FieldNumber, i int) (interface{}, error) {
	fd, err := v.field(n)
	if err != nil {
		return nil, err
	}
	if !fd.IsRepeated() {
		return nil, &TypeMismatchError{Message: v.desc.FullName(), Field: n, Expected: "repeated field", Got: string(fd.Label)}
	}
	list, _ := v.values[n].([]interface{})
	if i < 0 || i >= len(list) {
		return nil, &IndexError{Message: v.desc.FullName(), Field: n, Index: i, Len: len(list)}
	}
	return list[i], nil
}

// GetAll returns field n as a sequence. For a singular field the sequence
// holds the value when set and is empty otherwise.
func (v *Value) GetAll(n schema.FieldNumber) ([]interface{}, error) {
	fd, err := v.field(n)
	if err != nil {
		return nil, err
	}
	val, ok := v.values[n]
	if !ok {
		return []interface{}{}, nil
	}
	if fd.IsRepeated() {
		return append([]interface{}(nil), val.([]interface{})...), nil
	}
	return []interface{}{val}, nil
}

// Len returns the number of elements of repeated field n, or 1/0 for a set/unset singular field.
func (v *Value) Len(n schema.FieldNumber) int {
	val, ok := v.values[n]
	if !ok {
		return 0
	}
	if list, isList := val.([]interface{}); isList {
		return len(list)
	}
	return 1
}

// Set assigns field n. On a repeated field val must be a slice and replaces
// the whole sequence; an empty slice clears the field.
func (v *Value) Set(n schema.FieldNumber, val interface{}) error {
	fd, err := v.field(n)
	if err != nil {
		return err
	}
	if !fd.IsRepeated() {
		if err := checkElement(v.desc, fd, val); err != nil {
			return err
		}
		v.values[n] = val
		return nil
	}
	list, ok := toList(val)
	if !ok {
		return mismatch(v.desc, fd, "[]"+goTypeName(fd), val)
	}
	for _, el := range list {
		if err := checkElement(v.desc, fd, el); err != nil {
			return err
		}
	}
	if len(list) == 0 {
		delete(v.values, n)
		return nil
	}
	v.values[n] = list
	return nil
}

// SetAt replaces element i of repeated field n.
func (v *Value) SetAt(n schema.FieldNumber, i int, val interface{}) error {
	fd, err := v.field(n)
	if err != nil {
		return err
	}
	if !fd.IsRepeated() {
		return &TypeMismatchError{Message: v.desc.FullName(), Field: n, Expected: "repeated field", Got: string(fd.Label)}
	}
	list, _ := v.values[n].([]interface{})
	if i < 0 || i >= len(list) {
		return &IndexError{Message: v.desc.FullName(), Field: n, Index: i, Len: len(list)}
	}
	if err := checkElement(v.desc, fd, val); err != nil {
		return err
	}
	list[i] = val
	return nil
}

// Add appends val to repeated field n.
func (v *Value) Add(n schema.FieldNumber, val interface{}) error {
	fd, err := v.field(n)
	if err != nil {
		return err
	}
	if !fd.IsRepeated() {
		return &TypeMismatchError{Message: v.desc.FullName(), Field: n, Expected: "repeated field", Got: string(fd.Label)}
	}
	if err := checkElement(v.desc, fd, val); err != nil {
		return err
	}
	list, _ := v.values[n].([]interface{})
	v.values[n] = append(list, val)
	return nil
}

// Clear removes field n and its presence marker.
func (v *Value) Clear(n schema.FieldNumber) error {
	if _, err := v.field(n); err != nil {
		return err
	}
	delete(v.values, n)
	return nil
}

// Range calls f for every set field in ascending field-number order until f
// returns false. Repeated fields are passed as []interface{}, which must not
// be modified.
func (v *Value) Range(f func(fd *schema.FieldDescriptor, val interface{}) bool) {
	for _, fd := range v.desc.SortedFields() {
		val, ok := v.values[fd.Number]
		if !ok {
			continue
		}
		if !f(fd, val) {
			return
		}
	}
}

// Unknown returns the raw bytes of fields that were not in the descriptor
// when the value was decoded.
func (v *Value) Unknown() []byte { return v.unknown }

// SetUnknown replaces the preserved unknown bytes.
func (v *Value) SetUnknown(b []byte) { v.unknown = b }

// AppendUnknown appends raw field bytes to the preserved unknown bytes.
func (v *Value) AppendUnknown(b []byte) { v.unknown = append(v.unknown, b...) }

// Reset clears every field and the unknown bytes.
func (v *Value) Reset() {
	v.values = make(map[schema.FieldNumber]interface{})
	v.unknown = nil
}

// Clone returns a deep copy.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	out := New(v.desc)
	for n, val := range v.values {
		if list, ok := val.([]interface{}); ok {
			cp := make([]interface{}, len(list))
			for i, el := range list {
				cp[i] = cloneElement(el)
			}
			out.values[n] = cp
			continue
		}
		out.values[n] = cloneElement(val)
	}
	if v.unknown != nil {
		out.unknown = append([]byte(nil), v.unknown...)
	}
	return out
}

func cloneElement(val interface{}) interface{} {
	switch t := val.(type) {
	case *Value:
		return t.Clone()
	case []byte:
		return append([]byte(nil), t...)
	default:
		return val
	}
}

// Equal reports whether a and b have the same type, fields, element order
// and unknown bytes.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.desc.FullName() != b.desc.FullName() || len(a.values) != len(b.values) {
		return false
	}
	for n, av := range a.values {
		bv, ok := b.values[n]
		if !ok {
			return false
		}
		al, aList := av.([]interface{})
		bl, bList := bv.([]interface{})
		if aList != bList {
			return false
		}
		if !aList {
			if !equalElement(av, bv) {
				return false
			}
			continue
		}
		if len(al) != len(bl) {
			return false
		}
		for i := range al {
			if !equalElement(al[i], bl[i]) {
				return false
			}
		}
	}
	return bytes.Equal(a.unknown, b.unknown)
}

func equalElement(a, b interface{}) bool {
	switch at := a.(type) {
	case *Value:
		bt, ok := b.(*Value)
		return ok && Equal(at, bt)
	case []byte:
		bt, ok := b.([]byte)
		return ok && bytes.Equal(at, bt)
	default:
		return a == b
	}
}

func goTypeName(fd *schema.FieldDescriptor) string {
	if fd.Kind == schema.KindMessage {
		return "*message.Value"
	}
	return goTypeNames[fd.Kind]
}
