package registry

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	protoparser "github.com/yoheimuta/go-protoparser/v4"
	"github.com/yoheimuta/go-protoparser/v4/parser"

	"github.com/anirudhraja/vtwire/schema"
)

// LoadProtoFile parses protoFile, and every file it imports, and registers
// their messages, enums and extensions. Imports are searched for in
// ProtoDirectories; google/protobuf imports are skipped. Files already
// loaded into this registry are not loaded again.
//
// Loading is not safe for concurrent use with other loads.
func (r *Registry) LoadProtoFile(protoFile string) error {
	files, err := r.getAllProtoInfo(protoFile)
	if err != nil {
		return err
	}
	protos := make([]*parser.Proto, 0, len(files))
	for _, f := range files {
		protos = append(protos, r.parsedProtoBody[f])
	}
	if err := r.registerProtos(protos); err != nil {
		return errors.Wrapf(err, "load %s", protoFile)
	}
	for _, f := range files {
		r.loadedFiles[f] = struct{}{}
	}
	r.logger.WithField("file", protoFile).WithField("files", len(files)).Info("loaded proto schema")
	return nil
}

// LoadProto parses a single .proto document. Types it references from other
// files must already be registered.
func (r *Registry) LoadProto(name string, rd io.Reader) error {
	p, err := protoparser.Parse(rd, protoparser.WithFilename(name))
	if err != nil {
		return errors.Wrapf(err, "parse %s", name)
	}
	return errors.Wrapf(r.registerProtos([]*parser.Proto{p}), "load %s", name)
}

type declaredMessage struct {
	fullName string
	proto3   bool
	body     []parser.Visitee
}

type declaredExtend struct {
	scope  string
	proto3 bool
	ext    *parser.Extend
}

// protoDecls collects the declarations of a set of files before any
// reference is resolved, so files may refer to each other in any order.
type protoDecls struct {
	messages []declaredMessage
	enums    []*schema.EnumDescriptor
	extends  []declaredExtend
	kinds    map[string]schema.Kind // fully qualified name -> message or enum
	names    map[string]struct{}
}

func (r *Registry) registerProtos(protos []*parser.Proto) error {
	decls := &protoDecls{
		kinds: make(map[string]schema.Kind),
		names: make(map[string]struct{}),
	}
	for _, name := range r.ListMessages() {
		decls.kinds[name] = schema.KindMessage
		decls.names[name] = struct{}{}
	}
	for _, name := range r.ListEnums() {
		decls.kinds[name] = schema.KindEnum
		decls.names[name] = struct{}{}
	}
	for _, p := range protos {
		if err := decls.collectFile(p); err != nil {
			return err
		}
	}

	// resolve everything before registering anything
	fields := make([][]*schema.FieldDescriptor, len(decls.messages))
	for i, m := range decls.messages {
		fds, err := decls.buildFields(m.fullName, m.fullName, m.proto3, m.body)
		if err != nil {
			return err
		}
		fields[i] = fds
	}
	type extension struct {
		target string
		field  *schema.FieldDescriptor
	}
	var extensions []extension
	for _, d := range decls.extends {
		target, err := getReferencedType(d.ext.MessageType, d.scope, decls.names)
		if err != nil || decls.kinds[target] != schema.KindMessage {
			return &schema.SchemaError{Message: d.ext.MessageType, Reason: "extended type is not a known message"}
		}
		fds, err := decls.buildFields(target, d.scope, d.proto3, d.ext.ExtendBody)
		if err != nil {
			return err
		}
		for _, fd := range fds {
			extensions = append(extensions, extension{target: target, field: fd})
		}
	}

	for _, ed := range decls.enums {
		if err := r.RegisterEnum(ed); err != nil {
			return err
		}
	}
	for i, m := range decls.messages {
		if err := r.RegisterMessage(m.fullName, fields[i]...); err != nil {
			return err
		}
	}
	for _, ext := range extensions {
		fd := ext.field
		if err := r.RegisterExtension(ext.target, func() *schema.FieldDescriptor { return fd }); err != nil {
			return err
		}
	}
	return nil
}

func (d *protoDecls) collectFile(p *parser.Proto) error {
	proto3 := false
	if p.Syntax != nil {
		proto3 = strings.Trim(p.Syntax.ProtobufVersion, `"'`) == "proto3"
	}
	pkg := ""
	for _, body := range p.ProtoBody {
		if b, ok := body.(*parser.Package); ok {
			pkg = b.Name
		}
	}
	for _, body := range p.ProtoBody {
		switch b := body.(type) {
		case *parser.Message:
			if err := d.collectMessage(pkg, proto3, b); err != nil {
				return err
			}
		case *parser.Enum:
			if err := d.collectEnum(pkg, b); err != nil {
				return err
			}
		case *parser.Extend:
			d.extends = append(d.extends, declaredExtend{scope: pkg, proto3: proto3, ext: b})
		}
	}
	return nil
}

func (d *protoDecls) declare(fullName string, kind schema.Kind) error {
	if _, ok := d.kinds[fullName]; ok {
		return &schema.SchemaError{Message: fullName, Reason: "type declared more than once"}
	}
	d.kinds[fullName] = kind
	d.names[fullName] = struct{}{}
	return nil
}

func (d *protoDecls) collectMessage(scope string, proto3 bool, m *parser.Message) error {
	fullName := qualify(scope, m.MessageName)
	if err := d.declare(fullName, schema.KindMessage); err != nil {
		return err
	}
	d.messages = append(d.messages, declaredMessage{fullName: fullName, proto3: proto3, body: m.MessageBody})
	for _, body := range m.MessageBody {
		switch b := body.(type) {
		case *parser.Message:
			if err := d.collectMessage(fullName, proto3, b); err != nil {
				return err
			}
		case *parser.Enum:
			if err := d.collectEnum(fullName, b); err != nil {
				return err
			}
		case *parser.Extend:
			d.extends = append(d.extends, declaredExtend{scope: fullName, proto3: proto3, ext: b})
		}
	}
	return nil
}

func (d *protoDecls) collectEnum(scope string, e *parser.Enum) error {
	fullName := qualify(scope, e.EnumName)
	if err := d.declare(fullName, schema.KindEnum); err != nil {
		return err
	}
	var values []schema.EnumValue
	for _, body := range e.EnumBody {
		f, ok := body.(*parser.EnumField)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(f.Number, 0, 32)
		if err != nil {
			return &schema.SchemaError{Message: fullName, Reason: fmt.Sprintf("enum value %s has invalid number %q", f.Ident, f.Number)}
		}
		values = append(values, schema.EnumValue{Name: f.Ident, Number: int32(n)})
	}
	ed, err := schema.NewEnumDescriptor(fullName, values...)
	if err != nil {
		return err
	}
	d.enums = append(d.enums, ed)
	return nil
}

// buildFields converts the field declarations of body. owner names the
// message the fields belong to; scope is where type names are resolved from.
func (d *protoDecls) buildFields(owner, scope string, proto3 bool, body []parser.Visitee) ([]*schema.FieldDescriptor, error) {
	var fields []*schema.FieldDescriptor
	for _, item := range body {
		switch b := item.(type) {
		case *parser.Field:
			fd, err := d.buildField(owner, scope, proto3, b)
			if err != nil {
				return nil, err
			}
			fields = append(fields, fd)
		case *parser.MapField:
			return nil, &schema.SchemaError{Message: owner, Reason: fmt.Sprintf("map field %s is not supported; declare an entry message", b.MapName)}
		case *parser.Oneof:
			return nil, &schema.SchemaError{Message: owner, Reason: fmt.Sprintf("oneof %s is not supported", b.OneofName)}
		}
	}
	return fields, nil
}

func (d *protoDecls) buildField(owner, scope string, proto3 bool, f *parser.Field) (*schema.FieldDescriptor, error) {
	n, err := strconv.ParseInt(f.FieldNumber, 0, 32)
	if err != nil {
		return nil, &schema.SchemaError{Message: owner, Reason: fmt.Sprintf("field %s has invalid number %q", f.FieldName, f.FieldNumber)}
	}
	fd := &schema.FieldDescriptor{
		Number: schema.FieldNumber(n),
		Name:   f.FieldName,
		Label:  schema.LabelOptional, // required is read as optional
	}
	if f.IsRepeated {
		fd.Label = schema.LabelRepeated
	}

	if kind, ok := schema.ParseKind(f.Type); ok {
		fd.Kind = kind
	} else {
		ref, err := getReferencedType(f.Type, scope, d.names)
		if err != nil {
			return nil, &schema.SchemaError{Message: owner, Field: fd.Number, Reason: err.Error()}
		}
		fd.Kind = d.kinds[ref]
		fd.Reference = ref
	}

	packedSet := false
	for _, opt := range f.FieldOptions {
		switch opt.OptionName {
		case "packed":
			fd.Packed = opt.Constant == "true"
			packedSet = true
		case "json_name":
			fd.JSONName = strings.Trim(opt.Constant, `"'`)
		}
	}
	// proto3 packs repeated scalars unless told otherwise
	if !packedSet && proto3 && fd.IsRepeated() && fd.Kind.IsPackable() {
		fd.Packed = true
	}
	return fd, nil
}

func qualify(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "." + name
}
