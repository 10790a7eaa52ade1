package wire

import (
	"fmt"
	"strings"
)

// DecodeError reports malformed wire bytes. Offset is the absolute position,
// within the buffer handed to Unmarshal, where the failing tag or value starts.
type DecodeError struct {
	Offset  int
	Field   FieldNumber // 0 when the field number is not known
	Message string      // message type being decoded
	Reason  string
	Err     error // underlying error, may be nil
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "wire: decode %s at offset %d", e.Message, e.Offset)
	if e.Field != 0 {
		fmt.Fprintf(&b, " field=%d", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for compatibility.
func (e *DecodeError) Is(target error) bool {
	_, ok := target.(*DecodeError)
	return ok
}

// FieldError represents an encoding error with a field path.
type FieldError struct {
	FieldPath []string // e.g., ["queries", "query", "sql"]
	Err       error    // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("error at proto path %s: %v", strings.Join(e.FieldPath, "."), e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for compatibility.
func (e *FieldError) Is(target error) bool {
	_, ok := target.(*FieldError)
	return ok
}

// newFieldError creates a path-less FieldError
func newFieldError(format string, args ...interface{}) error {
	return &FieldError{Err: fmt.Errorf(format, args...)}
}

// wrapWithField prepends fieldName to the path of err
func wrapWithField(err error, fieldName string) error {
	if err == nil {
		return nil
	}

	if fe, ok := err.(*FieldError); ok {
		return &FieldError{
			FieldPath: append([]string{fieldName}, fe.FieldPath...),
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []string{fieldName},
		Err:       err,
	}
}
