package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/anirudhraja/vtwire/schema"
)

// ExtensionFactory produces one extension field. It runs when the target
// message descriptor is first built, not when it is registered.
type ExtensionFactory func() *schema.FieldDescriptor

// messageEntry is the registration state of one message type.
type messageEntry struct {
	registered bool // false while only extensions reference the name
	fields     []*schema.FieldDescriptor
	extensions []ExtensionFactory
	frozen     bool

	once sync.Once
	desc *schema.MessageDescriptor
	err  error
}

// Registry allows us to store the schema of the protobuf messages. We look
// this up when we need to parse or marshal a message.
//
// Registration is expected to happen during initialization. Describe builds
// each message descriptor once, on first use; after that the type is frozen
// and further extensions for it fail with LateRegistrationError.
type Registry struct {
	// ProtoDirectories are searched, in order, for .proto files and their imports.
	ProtoDirectories []string

	mu       sync.Mutex
	messages map[string]*messageEntry // fully qualified name -> message
	enums    map[string]*schema.EnumDescriptor
	logger   logrus.FieldLogger

	parsedProtoBody map[string]*parser.Proto
	protoEntities   map[string]*protoFileEntity
	loadedFiles     map[string]struct{}
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration and build events.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithProtoDirectories sets the .proto search path.
func WithProtoDirectories(dirs ...string) Option {
	return func(r *Registry) {
		r.ProtoDirectories = append(r.ProtoDirectories, dirs...)
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		messages:        make(map[string]*messageEntry),
		enums:           make(map[string]*schema.EnumDescriptor),
		parsedProtoBody: make(map[string]*parser.Proto),
		protoEntities:   make(map[string]*protoFileEntity),
		loadedFiles:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		r.logger = l
	}
	return r
}

// Logger returns the registry's logger.
func (r *Registry) Logger() logrus.FieldLogger {
	return r.logger
}

func (r *Registry) entry(fullName string) *messageEntry {
	e, ok := r.messages[fullName]
	if !ok {
		e = &messageEntry{}
		r.messages[fullName] = e
	}
	return e
}

// RegisterMessage registers the native fields of a message type. Fields are
// validated when the descriptor is built.
func (r *Registry) RegisterMessage(fullName string, fields ...*schema.FieldDescriptor) error {
	if fullName == "" {
		return &schema.SchemaError{Reason: "message name is empty"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.enums[fullName]; ok {
		return &schema.SchemaError{Message: fullName, Reason: "name already registered as an enum"}
	}
	e := r.entry(fullName)
	if e.registered {
		return &schema.SchemaError{Message: fullName, Reason: "message already registered"}
	}
	e.registered = true
	e.fields = append([]*schema.FieldDescriptor(nil), fields...)
	r.logger.WithField("message", fullName).WithField("fields", len(fields)).Debug("registered message")
	return nil
}

// RegisterEnum registers an enum type.
func (r *Registry) RegisterEnum(ed *schema.EnumDescriptor) error {
	if ed == nil {
		return &schema.SchemaError{Reason: "nil enum descriptor"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	name := ed.FullName()
	if _, ok := r.enums[name]; ok {
		return &schema.SchemaError{Message: name, Reason: "enum already registered"}
	}
	if e, ok := r.messages[name]; ok && e.registered {
		return &schema.SchemaError{Message: name, Reason: "name already registered as a message"}
	}
	r.enums[name] = ed
	r.logger.WithField("enum", name).Debug("registered enum")
	return nil
}

// RegisterExtension adds a deferred extension field to target. Extensions
// may be registered before target itself. They are appended after the
// native fields, in registration order.
func (r *Registry) RegisterExtension(target string, factory ExtensionFactory) error {
	if factory == nil {
		return &schema.SchemaError{Message: target, Reason: "nil extension factory"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entry(target)
	if e.frozen {
		err := &LateRegistrationError{Target: target}
		r.logger.WithField("message", target).WithError(err).Warn("late extension registration rejected")
		return err
	}
	e.extensions = append(e.extensions, factory)
	r.logger.WithField("message", target).WithField("extensions", len(e.extensions)).Debug("registered extension")
	return nil
}

// Describe returns the descriptor of fullName, building it on first use.
// Every call returns the same descriptor, or the same error, and concurrent
// first calls are safe.
func (r *Registry) Describe(fullName string) (*schema.MessageDescriptor, error) {
	r.mu.Lock()
	e, ok := r.messages[fullName]
	if !ok || !e.registered {
		r.mu.Unlock()
		return nil, &schema.SchemaError{Message: fullName, Reason: "message type not registered"}
	}
	r.mu.Unlock()

	e.once.Do(func() {
		defer func() {
			if p := recover(); p != nil {
				e.desc = nil
				e.err = &schema.SchemaError{Message: fullName, Reason: fmt.Sprintf("building descriptor panicked: %v", p)}
				r.logger.WithField("message", fullName).WithError(e.err).Error("building descriptor")
			}
		}()
		e.desc, e.err = r.build(fullName, e)
	})
	return e.desc, e.err
}

func (r *Registry) build(fullName string, e *messageEntry) (*schema.MessageDescriptor, error) {
	r.mu.Lock()
	e.frozen = true
	fields := append([]*schema.FieldDescriptor(nil), e.fields...)
	extensions := append([]ExtensionFactory(nil), e.extensions...)
	r.mu.Unlock()

	for i, factory := range extensions {
		fd := factory()
		if fd == nil {
			err := &schema.SchemaError{Message: fullName, Reason: fmt.Sprintf("extension %d produced no field", i)}
			r.logger.WithField("message", fullName).WithError(err).Error("building descriptor")
			return nil, err
		}
		ext := *fd
		ext.Extension = true
		fields = append(fields, &ext)
	}

	desc, err := schema.NewMessageDescriptor(fullName, fields...)
	if err != nil {
		r.logger.WithField("message", fullName).WithError(err).Error("building descriptor")
		return nil, err
	}
	r.logger.WithField("message", fullName).
		WithField("fields", desc.Len()).
		WithField("extensions", len(extensions)).
		Debug("built descriptor")
	return desc, nil
}

// MustDescribe is like Describe but panics on error. It is meant for
// startup paths where a schema conflict is a programming error.
func (r *Registry) MustDescribe(fullName string) *schema.MessageDescriptor {
	desc, err := r.Describe(fullName)
	if err != nil {
		panic(err)
	}
	return desc
}

// Enum returns a registered enum.
func (r *Registry) Enum(fullName string) (*schema.EnumDescriptor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ed, ok := r.enums[fullName]
	return ed, ok
}

// EnumValueName returns the name of number in enum.
func (r *Registry) EnumValueName(enum string, number int32) (string, bool) {
	ed, ok := r.Enum(enum)
	if !ok {
		return "", false
	}
	return ed.ValueByNumber(number)
}

// HasMessage reports whether fullName is a registered message type.
func (r *Registry) HasMessage(fullName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.messages[fullName]
	return ok && e.registered
}

// ListMessages returns all registered message names, sorted
func (r *Registry) ListMessages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var names []string
	for name, e := range r.messages {
		if e.registered {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ListEnums returns all registered enum names, sorted
func (r *Registry) ListEnums() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var names []string
	for name := range r.enums {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate builds every registered message and checks that every message
// and enum reference resolves. All problems are reported together.
// Extensions whose target was never registered are reported as well.
func (r *Registry) Validate() error {
	var result *multierror.Error

	r.mu.Lock()
	var orphans []string
	for name, e := range r.messages {
		if !e.registered && len(e.extensions) > 0 {
			orphans = append(orphans, name)
		}
	}
	r.mu.Unlock()
	sort.Strings(orphans)
	for _, name := range orphans {
		result = multierror.Append(result, &schema.SchemaError{Message: name, Reason: "extended message is not registered"})
	}

	for _, name := range r.ListMessages() {
		desc, err := r.Describe(name)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		for _, fd := range desc.Fields() {
			switch fd.Kind {
			case schema.KindMessage:
				if !r.HasMessage(fd.Reference) {
					result = multierror.Append(result, &schema.SchemaError{
						Message: name,
						Field:   fd.Number,
						Reason:  fmt.Sprintf("field %q references unknown message %s", fd.Name, fd.Reference),
					})
				}
			case schema.KindEnum:
				if _, ok := r.Enum(fd.Reference); !ok {
					result = multierror.Append(result, &schema.SchemaError{
						Message: name,
						Field:   fd.Number,
						Reason:  fmt.Sprintf("field %q references unknown enum %s", fd.Name, fd.Reference),
					})
				}
			}
		}
	}
	return result.ErrorOrNil()
}
