package schema

import (
	"sort"
)

// MessageDescriptor is the immutable field table of one message type.
// It is shared by every value of that type and must not be modified after
// construction.
type MessageDescriptor struct {
	fullName string
	fields   []*FieldDescriptor // declaration order, extensions last
	sorted   []*FieldDescriptor // ascending field number
	byNumber map[FieldNumber]*FieldDescriptor
	byName   map[string]*FieldDescriptor
}

// NewMessageDescriptor validates fields and builds a descriptor. Field
// descriptors are copied, so callers may reuse their tables.
func NewMessageDescriptor(fullName string, fields ...*FieldDescriptor) (*MessageDescriptor, error) {
	if fullName == "" {
		return nil, schemaErrorf("<unnamed>", 0, "message name is empty")
	}
	md := &MessageDescriptor{
		fullName: fullName,
		fields:   make([]*FieldDescriptor, 0, len(fields)),
		byNumber: make(map[FieldNumber]*FieldDescriptor, len(fields)),
		byName:   make(map[string]*FieldDescriptor, len(fields)),
	}
	for _, f := range fields {
		if f == nil {
			return nil, schemaErrorf(fullName, 0, "nil field descriptor")
		}
		if err := validateField(fullName, f); err != nil {
			return nil, err
		}
		if prev, ok := md.byNumber[f.Number]; ok {
			return nil, schemaErrorf(fullName, f.Number, "field number used by both %q and %q", prev.Name, f.Name)
		}
		if _, ok := md.byName[f.Name]; ok {
			return nil, schemaErrorf(fullName, f.Number, "duplicate field name %q", f.Name)
		}
		fd := *f
		md.fields = append(md.fields, &fd)
		md.byNumber[fd.Number] = &fd
		md.byName[fd.Name] = &fd
	}
	md.sorted = make([]*FieldDescriptor, len(md.fields))
	copy(md.sorted, md.fields)
	sort.Slice(md.sorted, func(i, j int) bool {
		return md.sorted[i].Number < md.sorted[j].Number
	})
	return md, nil
}

func validateField(message string, f *FieldDescriptor) error {
	if f.Name == "" {
		return schemaErrorf(message, f.Number, "field name is empty")
	}
	if f.Number < MinFieldNumber || f.Number > MaxFieldNumber {
		return schemaErrorf(message, f.Number, "field %q number out of range", f.Name)
	}
	if f.Number >= FirstReservedNumber && f.Number <= LastReservedNumber {
		return schemaErrorf(message, f.Number, "field %q uses a reserved number", f.Name)
	}
	if !f.Kind.IsValid() {
		return schemaErrorf(message, f.Number, "field %q has unknown kind %q", f.Name, f.Kind)
	}
	switch f.Label {
	case LabelOptional, LabelRepeated:
	default:
		return schemaErrorf(message, f.Number, "field %q has unknown label %q", f.Name, f.Label)
	}
	needsRef := f.Kind == KindMessage || f.Kind == KindEnum
	if needsRef && f.Reference == "" {
		return schemaErrorf(message, f.Number, "%s field %q has no reference", f.Kind, f.Name)
	}
	if !needsRef && f.Reference != "" {
		return schemaErrorf(message, f.Number, "%s field %q must not carry a reference", f.Kind, f.Name)
	}
	if f.Packed && (!f.IsRepeated() || !f.Kind.IsPackable()) {
		return schemaErrorf(message, f.Number, "field %q cannot be packed", f.Name)
	}
	return nil
}

// FullName returns the qualified message name, e.g. "vtgate.Session".
func (md *MessageDescriptor) FullName() string { return md.fullName }

// Fields returns the fields in declaration order. The slice must not be modified.
func (md *MessageDescriptor) Fields() []*FieldDescriptor { return md.fields }

// SortedFields returns the fields in ascending number order. The slice must not be modified.
func (md *MessageDescriptor) SortedFields() []*FieldDescriptor { return md.sorted }

// Len returns the number of fields.
func (md *MessageDescriptor) Len() int { return len(md.fields) }

// Field looks up a field by number.
func (md *MessageDescriptor) Field(n FieldNumber) (*FieldDescriptor, bool) {
	f, ok := md.byNumber[n]
	return f, ok
}

// FieldByName looks up a field by its schema name.
func (md *MessageDescriptor) FieldByName(name string) (*FieldDescriptor, bool) {
	f, ok := md.byName[name]
	return f, ok
}

// EnumDescriptor lists the named values of an enum. Enums are open: numbers
// without a name are still valid field values.
type EnumDescriptor struct {
	fullName string
	values   []EnumValue
	byNumber map[int32]string // first name declared for a number wins
	byName   map[string]int32
}

// NewEnumDescriptor builds an enum descriptor. Several names may share a number.
func NewEnumDescriptor(fullName string, values ...EnumValue) (*EnumDescriptor, error) {
	if fullName == "" {
		return nil, schemaErrorf("<unnamed>", 0, "enum name is empty")
	}
	ed := &EnumDescriptor{
		fullName: fullName,
		values:   append([]EnumValue(nil), values...),
		byNumber: make(map[int32]string, len(values)),
		byName:   make(map[string]int32, len(values)),
	}
	for _, v := range values {
		if v.Name == "" {
			return nil, schemaErrorf(fullName, 0, "enum value %d has no name", v.Number)
		}
		if _, ok := ed.byName[v.Name]; ok {
			return nil, schemaErrorf(fullName, 0, "duplicate enum value name %q", v.Name)
		}
		ed.byName[v.Name] = v.Number
		if _, ok := ed.byNumber[v.Number]; !ok {
			ed.byNumber[v.Number] = v.Name
		}
	}
	return ed, nil
}

// FullName returns the qualified enum name.
func (ed *EnumDescriptor) FullName() string { return ed.fullName }

// Values returns the declared values. The slice must not be modified.
func (ed *EnumDescriptor) Values() []EnumValue { return ed.values }

// ValueByNumber returns the first name declared for n.
func (ed *EnumDescriptor) ValueByNumber(n int32) (string, bool) {
	name, ok := ed.byNumber[n]
	return name, ok
}

// ValueByName returns the number of a named value.
func (ed *EnumDescriptor) ValueByName(name string) (int32, bool) {
	n, ok := ed.byName[name]
	return n, ok
}
