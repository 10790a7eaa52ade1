package message

import (
	"fmt"

	"github.com/anirudhraja/vtwire/schema"
)

// goTypeNames is the Go type each kind is stored as.
var goTypeNames = map[schema.Kind]string{
	schema.KindDouble:   "float64",
	schema.KindFloat:    "float32",
	schema.KindInt64:    "int64",
	schema.KindUint64:   "uint64",
	schema.KindInt32:    "int32",
	schema.KindFixed64:  "uint64",
	schema.KindFixed32:  "uint32",
	schema.KindBool:     "bool",
	schema.KindString:   "string",
	schema.KindBytes:    "[]byte",
	schema.KindUint32:   "uint32",
	schema.KindSfixed32: "int32",
	schema.KindSfixed64: "int64",
	schema.KindSint32:   "int32",
	schema.KindSint64:   "int64",
	schema.KindEnum:     "int32",
}

// checkElement validates a single (non-sequence) value for fd.
func checkElement(md *schema.MessageDescriptor, fd *schema.FieldDescriptor, v interface{}) error {
	ok := false
	switch fd.Kind {
	case schema.KindDouble:
		_, ok = v.(float64)
	case schema.KindFloat:
		_, ok = v.(float32)
	case schema.KindInt64, schema.KindSfixed64, schema.KindSint64:
		_, ok = v.(int64)
	case schema.KindUint64, schema.KindFixed64:
		_, ok = v.(uint64)
	case schema.KindInt32, schema.KindSfixed32, schema.KindSint32, schema.KindEnum:
		_, ok = v.(int32)
	case schema.KindUint32, schema.KindFixed32:
		_, ok = v.(uint32)
	case schema.KindBool:
		_, ok = v.(bool)
	case schema.KindString:
		_, ok = v.(string)
	case schema.KindBytes:
		_, ok = v.([]byte)
	case schema.KindMessage:
		m, isMsg := v.(*Value)
		if !isMsg || m == nil {
			return mismatch(md, fd, "*message.Value("+fd.Reference+")", v)
		}
		if m.desc.FullName() != fd.Reference {
			return &TypeMismatchError{
				Message:  md.FullName(),
				Field:    fd.Number,
				Expected: "*message.Value(" + fd.Reference + ")",
				Got:      "*message.Value(" + m.desc.FullName() + ")",
			}
		}
		return nil
	}
	if !ok {
		return mismatch(md, fd, goTypeNames[fd.Kind], v)
	}
	return nil
}

func mismatch(md *schema.MessageDescriptor, fd *schema.FieldDescriptor, expected string, v interface{}) error {
	return &TypeMismatchError{
		Message:  md.FullName(),
		Field:    fd.Number,
		Expected: expected,
		Got:      fmt.Sprintf("%T", v),
	}
}

// toList converts the accepted slice forms for a repeated field into []interface{}.
func toList(v interface{}) ([]interface{}, bool) {
	switch s := v.(type) {
	case []interface{}:
		return append([]interface{}(nil), s...), true
	case []*Value:
		return convertSlice(s), true
	case []string:
		return convertSlice(s), true
	case [][]byte:
		return convertSlice(s), true
	case []int32:
		return convertSlice(s), true
	case []int64:
		return convertSlice(s), true
	case []uint32:
		return convertSlice(s), true
	case []uint64:
		return convertSlice(s), true
	case []bool:
		return convertSlice(s), true
	case []float32:
		return convertSlice(s), true
	case []float64:
		return convertSlice(s), true
	default:
		return nil, false
	}
}

func convertSlice[T any](s []T) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

// defaultValue is what Get returns for an unset singular field.
func defaultValue(fd *schema.FieldDescriptor) interface{} {
	switch fd.Kind {
	case schema.KindDouble:
		return float64(0)
	case schema.KindFloat:
		return float32(0)
	case schema.KindInt64, schema.KindSfixed64, schema.KindSint64:
		return int64(0)
	case schema.KindUint64, schema.KindFixed64:
		return uint64(0)
	case schema.KindInt32, schema.KindSfixed32, schema.KindSint32, schema.KindEnum:
		return int32(0)
	case schema.KindUint32, schema.KindFixed32:
		return uint32(0)
	case schema.KindBool:
		return false
	case schema.KindString:
		return ""
	case schema.KindBytes:
		return []byte(nil)
	case schema.KindMessage:
		return (*Value)(nil)
	default:
		return nil
	}
}
