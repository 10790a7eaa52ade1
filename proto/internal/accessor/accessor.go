// Package accessor holds the helpers shared by the typed message wrappers.
package accessor

import (
	"github.com/anirudhraja/vtwire/message"
	"github.com/anirudhraja/vtwire/registry"
	"github.com/anirudhraja/vtwire/schema"
)

// Must panics on err. Setter argument types are fixed by the field tables,
// so an error here means a table and its accessors disagree.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// New returns an empty value of fullName described by r.
func New(r *registry.Registry, fullName string) (*message.Value, error) {
	desc, err := r.Describe(fullName)
	if err != nil {
		return nil, err
	}
	return message.New(desc), nil
}

// Check reports a TypeMismatchError unless v is a value of fullName.
func Check(v *message.Value, fullName string) error {
	if v == nil {
		return &message.TypeMismatchError{Message: fullName, Expected: fullName, Got: "nil"}
	}
	if got := v.Descriptor().FullName(); got != fullName {
		return &message.TypeMismatchError{Message: fullName, Expected: fullName, Got: got}
	}
	return nil
}

// At returns element i of the repeated message field n.
func At(v *message.Value, n schema.FieldNumber, i int) (*message.Value, error) {
	el, err := v.GetAt(n, i)
	if err != nil {
		return nil, err
	}
	return el.(*message.Value), nil
}

// SetMessage stores m in field n, or clears the field when m is nil.
func SetMessage(v *message.Value, n schema.FieldNumber, m *message.Value) {
	if m == nil {
		Must(v.Clear(n))
		return
	}
	Must(v.Set(n, m))
}
