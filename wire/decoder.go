package wire

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/anirudhraja/vtwire/message"
	"github.com/anirudhraja/vtwire/schema"
)

// Decoder handles low-level protobuf wire format decoding
type Decoder struct {
	buf  []byte
	pos  int
	base int // absolute offset of buf[0] in the top-level input
}

// NewDecoder creates a new wire format decoder
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf: data,
	}
}

// newSubDecoder decodes an embedded payload while keeping offsets absolute.
func newSubDecoder(data []byte, base int) *Decoder {
	return &Decoder{
		buf:  data,
		base: base,
	}
}

// Offset returns the absolute read position.
func (d *Decoder) Offset() int {
	return d.base + d.pos
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// Unmarshal decodes data as a message of type desc with DefaultOptions.
func Unmarshal(data []byte, desc *schema.MessageDescriptor, resolver Resolver) (*message.Value, error) {
	return DefaultOptions().Unmarshal(data, desc, resolver)
}

// Unmarshal decodes data as a message of type desc. resolver supplies the
// descriptors of nested message fields and may be nil for flat messages.
func (o Options) Unmarshal(data []byte, desc *schema.MessageDescriptor, resolver Resolver) (*message.Value, error) {
	v := message.New(desc)
	if err := o.UnmarshalInto(data, v, resolver); err != nil {
		return nil, err
	}
	return v, nil
}

// UnmarshalInto merges data into dst: scalars are overwritten, repeated
// fields appended and embedded messages merged, as a protobuf parser does.
func (o Options) UnmarshalInto(data []byte, dst *message.Value, resolver Resolver) error {
	md := &MessageDecoder{
		decoder:  NewDecoder(data),
		resolver: resolver,
		opts:     o,
	}
	return md.DecodeMessage(dst, 1)
}

// skipField consumes one field payload of the given wire type (groups
// included) and returns its length.
func (d *Decoder) skipField(n FieldNumber, wireType WireType) (int, error) {
	l := protowire.ConsumeFieldValue(protowire.Number(n), protowire.Type(wireType), d.buf[d.pos:])
	if l < 0 {
		return 0, protowire.ParseError(l)
	}
	d.pos += l
	return l, nil
}

// ScanFields splits data into raw top-level fields in wire order without a
// schema. Length-delimited payloads are returned without their length prefix.
func ScanFields(data []byte) ([]RawValue, error) {
	d := NewDecoder(data)
	var fields []RawValue
	for d.Remaining() > 0 {
		start := d.pos
		tag, err := d.DecodeVarint()
		if err != nil {
			return nil, &DecodeError{Offset: start, Message: "<raw>", Reason: "field tag", Err: err}
		}
		n, wt := ParseTag(Tag(tag))
		if n < schema.MinFieldNumber {
			return nil, &DecodeError{Offset: start, Message: "<raw>", Reason: "invalid field number"}
		}
		payloadStart := d.pos
		var raw []byte
		if wt == WireBytes {
			raw, err = NewBytesDecoder(d).DecodeRawBytes()
		} else {
			_, err = d.skipField(n, wt)
			raw = d.buf[payloadStart:d.pos]
		}
		if err != nil {
			return nil, &DecodeError{Offset: payloadStart, Field: n, Message: "<raw>", Reason: "field value", Err: err}
		}
		fields = append(fields, RawValue{Offset: start, FieldNumber: n, WireType: wt, RawData: raw})
	}
	return fields, nil
}

// MessageDecoder handles schema-aware message decoding
type MessageDecoder struct {
	decoder  *Decoder
	resolver Resolver
	opts     Options
}

// DecodeMessage reads fields in arrival order until the decoder is exhausted
// and stores them on v.
func (md *MessageDecoder) DecodeMessage(v *message.Value, depth int) error {
	d := md.decoder
	desc := v.Descriptor()
	if depth > md.opts.maxDepth() {
		return md.errorf(d.Offset(), 0, desc, "message nesting exceeds %d", md.opts.maxDepth())
	}
	for d.Remaining() > 0 {
		start := d.pos
		tag, err := d.DecodeVarint()
		if err != nil {
			return md.wrap(d.base+start, 0, desc, "field tag", err)
		}
		n, wireType := ParseTag(Tag(tag))
		if n < schema.MinFieldNumber {
			return md.errorf(d.base+start, 0, desc, "invalid field number in tag %#x", tag)
		}
		switch wireType {
		case WireVarint, WireFixed64, WireBytes, WireFixed32, WireStartGroup:
		case WireEndGroup:
			return md.errorf(d.base+start, n, desc, "unexpected end group")
		default:
			return md.errorf(d.base+start, n, desc, "invalid wire type %d", wireType)
		}

		field, ok := desc.Field(n)
		if !ok {
			if err := md.decodeUnknown(v, n, wireType, start); err != nil {
				return err
			}
			continue
		}
		if err := md.decodeField(v, field, wireType, depth); err != nil {
			return err
		}
	}
	return nil
}

func (md *MessageDecoder) decodeUnknown(v *message.Value, n FieldNumber, wireType WireType, start int) error {
	d := md.decoder
	if md.opts.unknownFields() == UnknownReject {
		return md.errorf(d.base+start, n, v.Descriptor(), "unknown field rejected")
	}
	payloadStart := d.pos
	if _, err := d.skipField(n, wireType); err != nil {
		return md.wrap(d.base+payloadStart, n, v.Descriptor(), "unknown field value", err)
	}
	if md.opts.unknownFields() == UnknownPreserve {
		v.AppendUnknown(d.buf[start:d.pos])
	}
	return nil
}

func (md *MessageDecoder) decodeField(v *message.Value, field *schema.FieldDescriptor, wireType WireType, depth int) error {
	d := md.decoder
	desc := v.Descriptor()
	start := d.pos

	// packed and unpacked forms are both accepted for packable fields
	if field.IsRepeated() && wireType == WireBytes && field.Kind.IsPackable() {
		return md.decodePacked(v, field)
	}
	if wireType != field.WireType() {
		return md.errorf(d.base+start, field.Number, desc, "wire type %s does not match %s field %q", wireType, field.Kind, field.Name)
	}

	if field.Kind == schema.KindMessage {
		return md.decodeMessageField(v, field, depth)
	}

	value, err := md.decodeScalar(field)
	if err != nil {
		return md.scalarError(d.base+start, field, desc, "field "+field.Name, err)
	}
	return md.store(v, field, value, start)
}

func (md *MessageDecoder) decodePacked(v *message.Value, field *schema.FieldDescriptor) error {
	d := md.decoder
	start := d.pos
	payload, err := NewBytesDecoder(d).DecodeRawBytes()
	if err != nil {
		return md.wrap(d.base+start, field.Number, v.Descriptor(), "packed field "+field.Name, err)
	}
	sub := &MessageDecoder{
		decoder:  newSubDecoder(payload, d.base+d.pos-len(payload)),
		resolver: md.resolver,
		opts:     md.opts,
	}
	for sub.decoder.Remaining() > 0 {
		elemStart := sub.decoder.pos
		value, err := sub.decodeScalar(field)
		if err != nil {
			return md.scalarError(sub.decoder.base+elemStart, field, v.Descriptor(), "packed element of "+field.Name, err)
		}
		if err := v.Add(field.Number, value); err != nil {
			return md.wrap(sub.decoder.base+elemStart, field.Number, v.Descriptor(), "packed element of "+field.Name, err)
		}
	}
	return nil
}

func (md *MessageDecoder) decodeMessageField(v *message.Value, field *schema.FieldDescriptor, depth int) error {
	d := md.decoder
	desc := v.Descriptor()
	start := d.pos
	payload, err := NewBytesDecoder(d).DecodeRawBytes()
	if err != nil {
		return md.wrap(d.base+start, field.Number, desc, "message field "+field.Name, err)
	}
	if md.resolver == nil {
		return md.errorf(d.base+start, field.Number, desc, "no resolver for %s", field.Reference)
	}
	nestedDesc, err := md.resolver.Describe(field.Reference)
	if err != nil {
		return md.wrap(d.base+start, field.Number, desc, "resolve "+field.Reference, err)
	}

	var nested *message.Value
	if !field.IsRepeated() {
		// a repeated occurrence of a singular message merges into the first
		nested = message.GetAs[*message.Value](v, field.Number)
	}
	if nested == nil {
		nested = message.New(nestedDesc)
	}
	sub := &MessageDecoder{
		decoder:  newSubDecoder(payload, d.base+d.pos-len(payload)),
		resolver: md.resolver,
		opts:     md.opts,
	}
	if err := sub.DecodeMessage(nested, depth+1); err != nil {
		return err
	}
	return md.store(v, field, nested, start)
}

func (md *MessageDecoder) store(v *message.Value, field *schema.FieldDescriptor, value interface{}, start int) error {
	var err error
	if field.IsRepeated() {
		err = v.Add(field.Number, value)
	} else {
		err = v.Set(field.Number, value)
	}
	if err != nil {
		return md.wrap(md.decoder.base+start, field.Number, v.Descriptor(), "store "+field.Name, err)
	}
	return nil
}

// decodeScalar decodes one non-message value of field's kind.
func (md *MessageDecoder) decodeScalar(field *schema.FieldDescriptor) (interface{}, error) {
	d := md.decoder
	switch field.Kind {
	case schema.KindInt32, schema.KindEnum:
		return NewVarintDecoder(d).DecodeInt32()
	case schema.KindInt64:
		return NewVarintDecoder(d).DecodeInt64()
	case schema.KindUint32:
		v, err := d.DecodeVarint()
		return uint32(v), err
	case schema.KindUint64:
		return d.DecodeVarint()
	case schema.KindSint32:
		return NewVarintDecoder(d).DecodeSint32()
	case schema.KindSint64:
		return NewVarintDecoder(d).DecodeSint64()
	case schema.KindBool:
		return NewVarintDecoder(d).DecodeBool()
	case schema.KindFixed32:
		return d.DecodeFixed32()
	case schema.KindSfixed32:
		v, err := d.DecodeFixed32()
		return int32(v), err
	case schema.KindFloat:
		return NewFixedDecoder(d).DecodeFloat32()
	case schema.KindFixed64:
		return d.DecodeFixed64()
	case schema.KindSfixed64:
		v, err := d.DecodeFixed64()
		return int64(v), err
	case schema.KindDouble:
		return NewFixedDecoder(d).DecodeFloat64()
	case schema.KindBytes:
		return d.DecodeBytes()
	case schema.KindString:
		start := d.pos
		raw, err := NewBytesDecoder(d).DecodeRawBytes()
		if err != nil {
			return nil, err
		}
		if !md.opts.SkipUTF8Validation && !utf8.Valid(raw) {
			return nil, &DecodeError{
				Offset: d.base + start,
				Field:  field.Number,
				Reason: "invalid UTF-8 in string field " + field.Name,
			}
		}
		return string(raw), nil
	default:
		return nil, newFieldError("unsupported kind %s", field.Kind)
	}
}

// scalarError passes DecodeErrors raised by decodeScalar through with the
// message name filled in and wraps everything else.
func (md *MessageDecoder) scalarError(offset int, field *schema.FieldDescriptor, desc *schema.MessageDescriptor, reason string, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		de.Message = desc.FullName()
		return de
	}
	return md.wrap(offset, field.Number, desc, reason, err)
}

func (md *MessageDecoder) errorf(offset int, n FieldNumber, desc *schema.MessageDescriptor, format string, args ...interface{}) error {
	return &DecodeError{
		Offset:  offset,
		Field:   n,
		Message: desc.FullName(),
		Reason:  fmt.Sprintf(format, args...),
	}
}

func (md *MessageDecoder) wrap(offset int, n FieldNumber, desc *schema.MessageDescriptor, reason string, err error) error {
	return &DecodeError{
		Offset:  offset,
		Field:   n,
		Message: desc.FullName(),
		Reason:  reason,
		Err:     err,
	}
}
