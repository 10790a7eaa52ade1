package wire

import "github.com/anirudhraja/vtwire/schema"

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType = schema.WireType

const (
	WireVarint     = schema.WireVarint
	WireFixed64    = schema.WireFixed64
	WireBytes      = schema.WireBytes
	WireStartGroup = schema.WireStartGroup
	WireEndGroup   = schema.WireEndGroup
	WireFixed32    = schema.WireFixed32
)

// FieldNumber represents a protobuf field number
type FieldNumber = schema.FieldNumber

// Tag represents a protobuf field tag (field number + wire type)
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType))
}

// ParseTag parses a tag into field number and wire type. Field numbers that
// do not fit in 32 bits are reported as -1.
func ParseTag(tag Tag) (FieldNumber, WireType) {
	n := uint64(tag >> 3)
	if n > uint64(schema.MaxFieldNumber) {
		return -1, WireType(tag & 0x7)
	}
	return FieldNumber(n), WireType(tag & 0x7)
}

// RawValue represents a raw (undecoded) protobuf field
type RawValue struct {
	Offset      int // offset of the tag
	FieldNumber FieldNumber
	WireType    WireType
	RawData     []byte // payload without the tag; length prefix stripped for WireBytes
}
