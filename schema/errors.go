package schema

import "fmt"

// SchemaError reports a conflicting or invalid descriptor definition. It is
// raised while descriptors are built and signals a registration bug.
type SchemaError struct {
	Message string      // fully qualified message or enum name
	Field   FieldNumber // 0 when the problem is not tied to one field
	Reason  string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	if e.Field == 0 {
		return fmt.Sprintf("schema: %s: %s", e.Message, e.Reason)
	}
	return fmt.Sprintf("schema: %s field=%d: %s", e.Message, e.Field, e.Reason)
}

// Is implements errors.Is for compatibility.
func (e *SchemaError) Is(target error) bool {
	_, ok := target.(*SchemaError)
	return ok
}

func schemaErrorf(message string, field FieldNumber, format string, args ...interface{}) *SchemaError {
	return &SchemaError{
		Message: message,
		Field:   field,
		Reason:  fmt.Sprintf(format, args...),
	}
}
