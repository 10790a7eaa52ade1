package wire

import (
	"fmt"
	"strings"

	"github.com/anirudhraja/vtwire/schema"
)

// UnknownFieldPolicy selects what Unmarshal does with field numbers that are
// not in the message descriptor. The same policy applies to every message
// type, nested ones included.
type UnknownFieldPolicy string

const (
	// UnknownPreserve keeps the raw tag and payload on the value; Marshal
	// writes them back after the known fields.
	UnknownPreserve UnknownFieldPolicy = "preserve"
	// UnknownDiscard drops them.
	UnknownDiscard UnknownFieldPolicy = "discard"
	// UnknownReject fails with a DecodeError.
	UnknownReject UnknownFieldPolicy = "reject"
)

// DefaultMaxDepth bounds message nesting during encode and decode.
const DefaultMaxDepth = 100

// ParseUnknownFieldPolicy parses a policy name; the empty string selects UnknownPreserve.
func ParseUnknownFieldPolicy(s string) (UnknownFieldPolicy, error) {
	switch p := UnknownFieldPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return UnknownPreserve, nil
	case UnknownPreserve, UnknownDiscard, UnknownReject:
		return p, nil
	default:
		return "", fmt.Errorf("unknown field policy %q (want preserve, discard or reject)", s)
	}
}

// Options controls encode and decode behavior. The zero value is usable and
// equals DefaultOptions.
type Options struct {
	// UnknownFields defaults to UnknownPreserve.
	UnknownFields UnknownFieldPolicy

	// SkipUTF8Validation disables the UTF-8 check on decoded string fields.
	SkipUTF8Validation bool

	// MaxDepth limits message nesting; 0 means DefaultMaxDepth.
	MaxDepth int
}

// DefaultOptions returns the options used by Marshal and Unmarshal.
func DefaultOptions() Options {
	return Options{
		UnknownFields: UnknownPreserve,
		MaxDepth:      DefaultMaxDepth,
	}
}

func (o Options) unknownFields() UnknownFieldPolicy {
	if o.UnknownFields == "" {
		return UnknownPreserve
	}
	return o.UnknownFields
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Resolver looks up descriptors of nested message types while decoding.
// *registry.Registry implements it.
type Resolver interface {
	Describe(fullName string) (*schema.MessageDescriptor, error)
}
