package message

import (
	"errors"
	"fmt"

	"github.com/anirudhraja/vtwire/schema"
)

// ErrUnknownField is returned when a field number is not in the descriptor.
var ErrUnknownField = errors.New("message: unknown field")

// TypeMismatchError reports a value whose Go type does not match the field.
type TypeMismatchError struct {
	Message  string
	Field    schema.FieldNumber
	Expected string
	Got      string
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("message: %s field=%d: expected %s, got %s", e.Message, e.Field, e.Expected, e.Got)
}

// Is implements errors.Is for compatibility.
func (e *TypeMismatchError) Is(target error) bool {
	_, ok := target.(*TypeMismatchError)
	return ok
}

// IndexError reports out-of-range access on a repeated field.
type IndexError struct {
	Message string
	Field   schema.FieldNumber
	Index   int
	Len     int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("message: %s field=%d: index %d out of range [0,%d)", e.Message, e.Field, e.Index, e.Len)
}

// Is implements errors.Is for compatibility.
func (e *IndexError) Is(target error) bool {
	_, ok := target.(*IndexError)
	return ok
}

func unknownField(md *schema.MessageDescriptor, n schema.FieldNumber) error {
	return fmt.Errorf("%w: %s field=%d", ErrUnknownField, md.FullName(), n)
}
