package schema

// FieldNumber is the stable wire identifier of a field.
type FieldNumber int32

const (
	MinFieldNumber      FieldNumber = 1
	MaxFieldNumber      FieldNumber = 1<<29 - 1
	FirstReservedNumber FieldNumber = 19000
	LastReservedNumber  FieldNumber = 19999
)

// WireType represents protobuf wire format types
type WireType int8

const (
	WireVarint     WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64    WireType = 1 // fixed64, sfixed64, double
	WireBytes      WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireStartGroup WireType = 3 // deprecated groups, only seen on unknown fields
	WireEndGroup   WireType = 4
	WireFixed32    WireType = 5 // fixed32, sfixed32, float
)

func (w WireType) String() string {
	switch w {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "fixed64"
	case WireBytes:
		return "bytes"
	case WireStartGroup:
		return "start_group"
	case WireEndGroup:
		return "end_group"
	case WireFixed32:
		return "fixed32"
	default:
		return "invalid"
	}
}

// Label represents field cardinality
type Label string

const (
	LabelOptional Label = "optional"
	LabelRepeated Label = "repeated"
)

// Kind represents the semantic type of a field
type Kind string

const (
	KindDouble   Kind = "double"
	KindFloat    Kind = "float"
	KindInt64    Kind = "int64"
	KindUint64   Kind = "uint64"
	KindInt32    Kind = "int32"
	KindFixed64  Kind = "fixed64"
	KindFixed32  Kind = "fixed32"
	KindBool     Kind = "bool"
	KindString   Kind = "string"
	KindBytes    Kind = "bytes"
	KindUint32   Kind = "uint32"
	KindSfixed32 Kind = "sfixed32"
	KindSfixed64 Kind = "sfixed64"
	KindSint32   Kind = "sint32"
	KindSint64   Kind = "sint64"
	KindEnum     Kind = "enum"
	KindMessage  Kind = "message"
)

var kindWireTypes = map[Kind]WireType{
	KindDouble:   WireFixed64,
	KindFloat:    WireFixed32,
	KindInt64:    WireVarint,
	KindUint64:   WireVarint,
	KindInt32:    WireVarint,
	KindFixed64:  WireFixed64,
	KindFixed32:  WireFixed32,
	KindBool:     WireVarint,
	KindString:   WireBytes,
	KindBytes:    WireBytes,
	KindUint32:   WireVarint,
	KindSfixed32: WireFixed32,
	KindSfixed64: WireFixed64,
	KindSint32:   WireVarint,
	KindSint64:   WireVarint,
	KindEnum:     WireVarint,
	KindMessage:  WireBytes,
}

// ParseKind maps a .proto scalar type name to its Kind.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	if _, ok := kindWireTypes[k]; !ok || k == KindEnum || k == KindMessage {
		return "", false
	}
	return k, true
}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	_, ok := kindWireTypes[k]
	return ok
}

// WireType returns the wire type used for a single value of kind k.
func (k Kind) WireType() WireType {
	return kindWireTypes[k]
}

// IsPackable reports whether repeated fields of kind k may use packed encoding.
func (k Kind) IsPackable() bool {
	switch k {
	case KindString, KindBytes, KindMessage, "":
		return false
	}
	return k.IsValid()
}

// FieldDescriptor describes one field of a message.
type FieldDescriptor struct {
	Number    FieldNumber
	Name      string // "caller_id"
	Kind      Kind
	Label     Label
	Reference string // fully qualified message or enum name, only for KindMessage and KindEnum
	Packed    bool   // repeated scalars written as a single length-delimited record
	JSONName  string // defaults to lowerCamelCase of Name
	Extension bool   // appended by an extension registration
}

// WireType returns the wire type of one element of the field.
func (f *FieldDescriptor) WireType() WireType {
	return f.Kind.WireType()
}

// IsRepeated reports whether the field holds a sequence.
func (f *FieldDescriptor) IsRepeated() bool {
	return f.Label == LabelRepeated
}

// IsPacked reports whether the field is written in packed form.
func (f *FieldDescriptor) IsPacked() bool {
	return f.Packed && f.IsRepeated() && f.Kind.IsPackable()
}

// JSON returns the field's JSON name.
func (f *FieldDescriptor) JSON() string {
	if f.JSONName != "" {
		return f.JSONName
	}
	return toLowerCamel(f.Name)
}

// EnumValue is one named enum number.
type EnumValue struct {
	Name   string // "REPLICA"
	Number int32  // 2
}
