package message

import (
	"github.com/anirudhraja/vtwire/schema"
)

// GetAs returns singular field n as T, or T's zero value when the field is
// unset, unknown or holds another type.
func GetAs[T any](v *Value, n schema.FieldNumber) T {
	var zero T
	val, err := v.Get(n)
	if err != nil {
		return zero
	}
	t, ok := val.(T)
	if !ok {
		return zero
	}
	return t
}

// ListAs returns repeated field n as []T. Elements of another type are skipped.
func ListAs[T any](v *Value, n schema.FieldNumber) []T {
	list, _ := v.values[n].([]interface{})
	out := make([]T, 0, len(list))
	for _, el := range list {
		if t, ok := el.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// EnumNamer resolves enum numbers to names for display.
type EnumNamer interface {
	EnumValueName(enum string, number int32) (string, bool)
}

// ToMap converts v into a generic map keyed by JSON field name. Enum values
// are rendered by name when namer knows them, nested messages recursively.
// Unknown bytes are exposed under "__unknown".
func ToMap(v *Value, namer EnumNamer) map[string]interface{} {
	out := make(map[string]interface{}, len(v.values))
	v.Range(func(fd *schema.FieldDescriptor, val interface{}) bool {
		if list, ok := val.([]interface{}); ok {
			items := make([]interface{}, len(list))
			for i, el := range list {
				items[i] = displayElement(fd, el, namer)
			}
			out[fd.JSON()] = items
			return true
		}
		out[fd.JSON()] = displayElement(fd, val, namer)
		return true
	})
	if len(v.unknown) > 0 {
		out["__unknown"] = v.unknown
	}
	return out
}

func displayElement(fd *schema.FieldDescriptor, val interface{}, namer EnumNamer) interface{} {
	switch fd.Kind {
	case schema.KindMessage:
		return ToMap(val.(*Value), namer)
	case schema.KindEnum:
		if namer != nil {
			if name, ok := namer.EnumValueName(fd.Reference, val.(int32)); ok {
				return name
			}
		}
	}
	return val
}
