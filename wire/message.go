package wire

import (
	"fmt"

	"github.com/anirudhraja/vtwire/message"
	"github.com/anirudhraja/vtwire/schema"
)

// MessageEncoder handles message encoding operations
type MessageEncoder struct {
	encoder *Encoder
	opts    Options
}

// NewMessageEncoder creates a new message encoder
func NewMessageEncoder(e *Encoder, opts Options) *MessageEncoder {
	return &MessageEncoder{encoder: e, opts: opts}
}

// Marshal encodes v with DefaultOptions.
func Marshal(v *message.Value) ([]byte, error) {
	return DefaultOptions().Marshal(v)
}

// Marshal encodes v. Set fields are written in ascending field-number order,
// repeated elements in sequence order, followed by any preserved unknown
// bytes. Unset fields produce no bytes.
func (o Options) Marshal(v *message.Value) ([]byte, error) {
	if v == nil {
		return nil, newFieldError("cannot marshal nil message")
	}
	e := NewEncoder()
	if err := NewMessageEncoder(e, o).EncodeMessage(v, 1); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// EncodeMessage writes the fields of v without a length prefix.
func (me *MessageEncoder) EncodeMessage(v *message.Value, depth int) error {
	if depth > me.opts.maxDepth() {
		return newFieldError("message nesting exceeds %d", me.opts.maxDepth())
	}
	var err error
	v.Range(func(fd *schema.FieldDescriptor, val interface{}) bool {
		if list, ok := val.([]interface{}); ok {
			err = me.encodeRepeated(fd, list, depth)
		} else {
			err = me.encodeField(fd, val, depth)
		}
		if err != nil {
			err = wrapWithField(err, fd.Name)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	me.encoder.buf = append(me.encoder.buf, v.Unknown()...)
	return nil
}

func (me *MessageEncoder) encodeRepeated(fd *schema.FieldDescriptor, list []interface{}, depth int) error {
	if fd.IsPacked() {
		packed := NewMessageEncoder(NewEncoder(), me.opts)
		for i, el := range list {
			if err := packed.encodeScalar(fd, el); err != nil {
				return wrapWithField(err, fmt.Sprintf("[%d]", i))
			}
		}
		me.encoder.EncodeTag(fd.Number, WireBytes)
		me.encoder.EncodeBytes(packed.encoder.Bytes())
		return nil
	}
	for i, el := range list {
		if err := me.encodeField(fd, el, depth); err != nil {
			return wrapWithField(err, fmt.Sprintf("[%d]", i))
		}
	}
	return nil
}

// encodeField writes one tag and one element.
func (me *MessageEncoder) encodeField(fd *schema.FieldDescriptor, val interface{}, depth int) error {
	me.encoder.EncodeTag(fd.Number, fd.WireType())
	if fd.Kind != schema.KindMessage {
		return me.encodeScalar(fd, val)
	}
	nested, ok := val.(*message.Value)
	if !ok || nested == nil {
		return newFieldError("expected *message.Value for %s, got %T", fd.Reference, val)
	}
	sub := NewMessageEncoder(NewEncoder(), me.opts)
	if err := sub.EncodeMessage(nested, depth+1); err != nil {
		return err
	}
	me.encoder.EncodeBytes(sub.encoder.Bytes())
	return nil
}

// encodeScalar writes the payload of one non-message element.
func (me *MessageEncoder) encodeScalar(fd *schema.FieldDescriptor, val interface{}) error {
	e := me.encoder
	ve := NewVarintEncoder(e)
	switch fd.Kind {
	case schema.KindInt32, schema.KindEnum:
		if v, ok := val.(int32); ok {
			ve.EncodeInt32(v)
			return nil
		}
	case schema.KindInt64:
		if v, ok := val.(int64); ok {
			ve.EncodeInt64(v)
			return nil
		}
	case schema.KindUint32:
		if v, ok := val.(uint32); ok {
			e.EncodeVarint(uint64(v))
			return nil
		}
	case schema.KindUint64:
		if v, ok := val.(uint64); ok {
			e.EncodeVarint(v)
			return nil
		}
	case schema.KindSint32:
		if v, ok := val.(int32); ok {
			ve.EncodeSint32(v)
			return nil
		}
	case schema.KindSint64:
		if v, ok := val.(int64); ok {
			ve.EncodeSint64(v)
			return nil
		}
	case schema.KindBool:
		if v, ok := val.(bool); ok {
			ve.EncodeBool(v)
			return nil
		}
	case schema.KindFixed32:
		if v, ok := val.(uint32); ok {
			e.EncodeFixed32(v)
			return nil
		}
	case schema.KindSfixed32:
		if v, ok := val.(int32); ok {
			e.EncodeFixed32(uint32(v))
			return nil
		}
	case schema.KindFloat:
		if v, ok := val.(float32); ok {
			NewFixedEncoder(e).EncodeFloat32(v)
			return nil
		}
	case schema.KindFixed64:
		if v, ok := val.(uint64); ok {
			e.EncodeFixed64(v)
			return nil
		}
	case schema.KindSfixed64:
		if v, ok := val.(int64); ok {
			e.EncodeFixed64(uint64(v))
			return nil
		}
	case schema.KindDouble:
		if v, ok := val.(float64); ok {
			NewFixedEncoder(e).EncodeFloat64(v)
			return nil
		}
	case schema.KindString:
		if v, ok := val.(string); ok {
			e.EncodeString(v)
			return nil
		}
	case schema.KindBytes:
		if v, ok := val.([]byte); ok {
			e.EncodeBytes(v)
			return nil
		}
	default:
		return newFieldError("unsupported kind %s", fd.Kind)
	}
	return newFieldError("expected %s value, got %T", fd.Kind, val)
}
