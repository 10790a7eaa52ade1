// Package vtwire encodes and decodes vtgate RPC messages in the protobuf
// binary wire format without generated code.
package vtwire

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/anirudhraja/vtwire/message"
	"github.com/anirudhraja/vtwire/proto"
	"github.com/anirudhraja/vtwire/registry"
	"github.com/anirudhraja/vtwire/wire"
)

// Valuer is implemented by the typed message wrappers.
type Valuer interface {
	Value() *message.Value
}

// Codec provides schema-aware protobuf operations on registered message types.
// It is the seam a transport uses: bytes in, values out, and back.
type Codec struct {
	registry *registry.Registry
	opts     wire.Options
	logger   logrus.FieldLogger
	builtins bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithRegistry makes the codec use r instead of a new registry.
func WithRegistry(r *registry.Registry) Option {
	return func(c *Codec) {
		c.registry = r
	}
}

// WithLogger sets the logger. A new registry created by New shares it.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Codec) {
		c.logger = logger
	}
}

// WithWireOptions sets the encode and decode options.
func WithWireOptions(o wire.Options) Option {
	return func(c *Codec) {
		c.opts = o
	}
}

// WithoutBuiltins skips registering the vtgate message family.
func WithoutBuiltins() Option {
	return func(c *Codec) {
		c.builtins = false
	}
}

// New creates a Codec. Unless WithoutBuiltins is given, the vtrpc, topodata,
// query and vtgate types are registered.
func New(opts ...Option) (*Codec, error) {
	c := &Codec{
		opts:     wire.DefaultOptions(),
		builtins: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		var ropts []registry.Option
		if c.logger != nil {
			ropts = append(ropts, registry.WithLogger(c.logger))
		}
		c.registry = registry.New(ropts...)
	}
	if c.logger == nil {
		c.logger = c.registry.Logger()
	}
	if c.builtins {
		if err := proto.RegisterAll(c.registry); err != nil {
			return nil, fmt.Errorf("register builtin types: %w", err)
		}
	}
	return c, nil
}

// ===== SCHEMA-AWARE API =====

// NewMessage returns an empty value of a registered message type.
func (c *Codec) NewMessage(fullName string) (*message.Value, error) {
	desc, err := c.registry.Describe(fullName)
	if err != nil {
		return nil, err
	}
	return message.New(desc), nil
}

// Marshal encodes v.
func (c *Codec) Marshal(v *message.Value) ([]byte, error) {
	return c.opts.Marshal(v)
}

// Unmarshal decodes data as a message of type fullName.
func (c *Codec) Unmarshal(data []byte, fullName string) (*message.Value, error) {
	desc, err := c.registry.Describe(fullName)
	if err != nil {
		return nil, err
	}
	v, err := c.opts.Unmarshal(data, desc, c.registry)
	if err != nil {
		c.logDecodeError(fullName, err)
		return nil, err
	}
	return v, nil
}

// Encode encodes a *message.Value or a typed wrapper.
func (c *Codec) Encode(v interface{}) ([]byte, error) {
	mv, err := valueOf(v)
	if err != nil {
		return nil, err
	}
	return c.Marshal(mv)
}

// Decode replaces the contents of v, a *message.Value or a typed wrapper,
// with data decoded as v's message type.
func (c *Codec) Decode(data []byte, v interface{}) error {
	mv, err := valueOf(v)
	if err != nil {
		return err
	}
	fresh := message.New(mv.Descriptor())
	if err := c.opts.UnmarshalInto(data, fresh, c.registry); err != nil {
		c.logDecodeError(mv.Descriptor().FullName(), err)
		return err
	}
	*mv = *fresh
	return nil
}

// ToMap renders v as a map keyed by JSON field name, with enum values by name.
func (c *Codec) ToMap(v *message.Value) map[string]interface{} {
	return message.ToMap(v, c.registry)
}

func (c *Codec) logDecodeError(fullName string, err error) {
	entry := c.logger.WithField("type", fullName).WithError(err)
	var de *wire.DecodeError
	if errors.As(err, &de) {
		entry = entry.WithField("offset", de.Offset).WithField("field", de.Field)
	}
	entry.Debug("decode failed")
}

func valueOf(v interface{}) (*message.Value, error) {
	switch t := v.(type) {
	case *message.Value:
		if t == nil {
			return nil, errors.New("vtwire: nil message value")
		}
		return t, nil
	case Valuer:
		mv := t.Value()
		if mv == nil {
			return nil, errors.New("vtwire: nil message value")
		}
		return mv, nil
	default:
		return nil, fmt.Errorf("vtwire: cannot encode %T: want *message.Value or a typed message", v)
	}
}

// ===== REGISTRY ACCESS =====

// LoadProtoFile registers the types declared in each .proto file and its imports.
func (c *Codec) LoadProtoFile(paths ...string) error {
	for _, p := range paths {
		if err := c.registry.LoadProtoFile(p); err != nil {
			return err
		}
	}
	return nil
}

func (c *Codec) Registry() *registry.Registry { return c.registry }
func (c *Codec) Options() wire.Options        { return c.opts }
func (c *Codec) ListMessages() []string       { return c.registry.ListMessages() }
func (c *Codec) ListEnums() []string          { return c.registry.ListEnums() }
