package registry

import "fmt"

// LateRegistrationError reports an extension registered after its target
// message descriptor was built. The extension is not applied.
type LateRegistrationError struct {
	Target string // fully qualified name of the extended message
}

// Error implements the error interface.
func (e *LateRegistrationError) Error() string {
	return fmt.Sprintf("registry: extension for %s registered after its descriptor was built", e.Target)
}

// Is implements errors.Is for compatibility.
func (e *LateRegistrationError) Is(target error) bool {
	_, ok := target.(*LateRegistrationError)
	return ok
}
