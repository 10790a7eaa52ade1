package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/anirudhraja/vtwire/schema"
)

func stringField(n schema.FieldNumber, name string) *schema.FieldDescriptor {
	return &schema.FieldDescriptor{Number: n, Name: name, Kind: schema.KindString, Label: schema.LabelOptional}
}

func boolField(n schema.FieldNumber, name string) *schema.FieldDescriptor {
	return &schema.FieldDescriptor{Number: n, Name: name, Kind: schema.KindBool, Label: schema.LabelOptional}
}

func TestRegistry_DescribeBuildsOnce(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterMessage("vtrpc.CallerID", stringField(1, "principal"), stringField(2, "component")))

	first, err := r.Describe("vtrpc.CallerID")
	require.NoError(t, err)
	assert.Equal(t, "vtrpc.CallerID", first.FullName())
	assert.Equal(t, 2, first.Len())

	var g errgroup.Group
	got := make([]*schema.MessageDescriptor, 32)
	for i := range got {
		i := i
		g.Go(func() error {
			d, err := r.Describe("vtrpc.CallerID")
			got[i] = d
			return err
		})
	}
	require.NoError(t, g.Wait())
	for _, d := range got {
		assert.Same(t, first, d)
	}
}

func TestRegistry_ConcurrentFirstDescribe(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterMessage("vtgate.Session", boolField(1, "in_transaction")))
	calls := 0
	var mu sync.Mutex
	require.NoError(t, r.RegisterExtension("vtgate.Session", func() *schema.FieldDescriptor {
		mu.Lock()
		calls++
		mu.Unlock()
		return stringField(100, "trace_id")
	}))

	var g errgroup.Group
	descs := make([]*schema.MessageDescriptor, 16)
	for i := range descs {
		i := i
		g.Go(func() error {
			d, err := r.Describe("vtgate.Session")
			descs[i] = d
			return err
		})
	}
	require.NoError(t, g.Wait())
	for _, d := range descs[1:] {
		assert.Same(t, descs[0], d)
	}
	assert.Equal(t, 1, calls, "extension factory must run once")
}

func TestRegistry_ExtensionsAppendInOrder(t *testing.T) {
	r := New()
	// extensions may arrive before their target
	require.NoError(t, r.RegisterExtension("test.Request", func() *schema.FieldDescriptor {
		return stringField(100, "ext_a")
	}))
	require.NoError(t, r.RegisterMessage("test.Request", stringField(2, "b"), stringField(1, "a")))
	require.NoError(t, r.RegisterExtension("test.Request", func() *schema.FieldDescriptor {
		return stringField(50, "ext_b")
	}))

	desc, err := r.Describe("test.Request")
	require.NoError(t, err)

	var names []string
	for _, fd := range desc.Fields() {
		names = append(names, fd.Name)
	}
	assert.Equal(t, []string{"b", "a", "ext_a", "ext_b"}, names)

	ext, ok := desc.FieldByName("ext_b")
	require.True(t, ok)
	assert.True(t, ext.Extension)

	var numbers []schema.FieldNumber
	for _, fd := range desc.SortedFields() {
		numbers = append(numbers, fd.Number)
	}
	assert.Equal(t, []schema.FieldNumber{1, 2, 50, 100}, numbers)
}

func TestRegistry_ExtensionCollision(t *testing.T) {
	tests := []struct {
		name string
		ext  *schema.FieldDescriptor
	}{
		{"number", stringField(5, "ext")},
		{"name", stringField(100, "as_transaction")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			require.NoError(t, r.RegisterMessage("vtgate.ExecuteBatchKeyspaceIdsRequest", boolField(5, "as_transaction")))
			ext := tt.ext
			require.NoError(t, r.RegisterExtension("vtgate.ExecuteBatchKeyspaceIdsRequest", func() *schema.FieldDescriptor { return ext }))

			_, err := r.Describe("vtgate.ExecuteBatchKeyspaceIdsRequest")
			var se *schema.SchemaError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.Equal(t, "vtgate.ExecuteBatchKeyspaceIdsRequest", se.Message)

			// the failure is cached
			_, again := r.Describe("vtgate.ExecuteBatchKeyspaceIdsRequest")
			assert.Same(t, err, again)

			assert.Panics(t, func() { r.MustDescribe("vtgate.ExecuteBatchKeyspaceIdsRequest") })
		})
	}
}

func TestRegistry_LateRegistration(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := New(WithLogger(logger))
	require.NoError(t, r.RegisterMessage("vtgate.Session", boolField(1, "in_transaction")))

	before, err := r.Describe("vtgate.Session")
	require.NoError(t, err)

	err = r.RegisterExtension("vtgate.Session", func() *schema.FieldDescriptor { return stringField(100, "late") })
	var late *LateRegistrationError
	require.True(t, errors.As(err, &late))
	assert.Equal(t, "vtgate.Session", late.Target)

	after, err := r.Describe("vtgate.Session")
	require.NoError(t, err)
	assert.Same(t, before, after)
	_, ok := after.FieldByName("late")
	assert.False(t, ok)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestRegistry_PanickingExtension(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := New(WithLogger(logger))
	require.NoError(t, r.RegisterMessage("vtgate.Session", boolField(1, "in_transaction")))
	require.NoError(t, r.RegisterExtension("vtgate.Session", func() *schema.FieldDescriptor {
		panic("boom")
	}))

	for i := 0; i < 2; i++ {
		desc, err := r.Describe("vtgate.Session")
		assert.Nil(t, desc)
		var se *schema.SchemaError
		require.True(t, errors.As(err, &se), "call %d: %v", i, err)
		assert.Equal(t, "vtgate.Session", se.Message)
		assert.Contains(t, se.Reason, "boom")
	}
	assert.Panics(t, func() { r.MustDescribe("vtgate.Session") })
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestRegistry_DuplicatesAndUnknown(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterMessage("a.M", stringField(1, "x")))
	assert.True(t, errors.Is(r.RegisterMessage("a.M"), &schema.SchemaError{}))

	ed, err := schema.NewEnumDescriptor("a.E", schema.EnumValue{Name: "ZERO", Number: 0})
	require.NoError(t, err)
	require.NoError(t, r.RegisterEnum(ed))
	assert.True(t, errors.Is(r.RegisterEnum(ed), &schema.SchemaError{}))
	assert.True(t, errors.Is(r.RegisterMessage("a.E"), &schema.SchemaError{}))

	_, err = r.Describe("a.Missing")
	assert.True(t, errors.Is(err, &schema.SchemaError{}))

	// a name known only through an extension is not a message yet
	require.NoError(t, r.RegisterExtension("a.Later", func() *schema.FieldDescriptor { return stringField(1, "x") }))
	_, err = r.Describe("a.Later")
	assert.Error(t, err)
	assert.Equal(t, []string{"a.M"}, r.ListMessages())
	assert.Equal(t, []string{"a.E"}, r.ListEnums())
}

func TestRegistry_EnumValueName(t *testing.T) {
	r := New()
	ed, err := schema.NewEnumDescriptor("topodata.TabletType",
		schema.EnumValue{Name: "UNKNOWN", Number: 0},
		schema.EnumValue{Name: "REPLICA", Number: 2},
	)
	require.NoError(t, err)
	require.NoError(t, r.RegisterEnum(ed))

	name, ok := r.EnumValueName("topodata.TabletType", 2)
	assert.True(t, ok)
	assert.Equal(t, "REPLICA", name)

	_, ok = r.EnumValueName("topodata.TabletType", 42)
	assert.False(t, ok)
	_, ok = r.EnumValueName("nope.Enum", 0)
	assert.False(t, ok)
}

func TestRegistry_Validate(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterMessage("a.Good", stringField(1, "x")))
	require.NoError(t, r.RegisterMessage("a.Dangling",
		&schema.FieldDescriptor{Number: 1, Name: "child", Kind: schema.KindMessage, Label: schema.LabelOptional, Reference: "a.Nowhere"},
		&schema.FieldDescriptor{Number: 2, Name: "kind", Kind: schema.KindEnum, Label: schema.LabelOptional, Reference: "a.NoEnum"},
	))
	require.NoError(t, r.RegisterMessage("a.Broken", stringField(1, "x"), stringField(1, "y")))
	require.NoError(t, r.RegisterExtension("a.Orphan", func() *schema.FieldDescriptor { return stringField(1, "x") }))

	err := r.Validate()
	require.Error(t, err)
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 4)
	for _, e := range merr.Errors {
		assert.True(t, errors.Is(e, &schema.SchemaError{}), "unexpected error %v", e)
	}

	ok := New()
	require.NoError(t, ok.RegisterMessage("a.Good", stringField(1, "x")))
	assert.NoError(t, ok.Validate())
}

func TestGetReferencedType(t *testing.T) {
	known := map[string]struct{}{
		"query.BoundQuery":                    {},
		"query.BoundQuery.BindVariablesEntry": {},
		"query.BindVariable":                  {},
		"vtrpc.CallerID":                      {},
	}
	tests := []struct {
		typeName, scope, want string
		wantErr               bool
	}{
		{"BindVariablesEntry", "query.BoundQuery", "query.BoundQuery.BindVariablesEntry", false},
		{"BindVariable", "query.BoundQuery.BindVariablesEntry", "query.BindVariable", false},
		{"vtrpc.CallerID", "vtgate", "vtrpc.CallerID", false},
		{".query.BindVariable", "vtgate", "query.BindVariable", false},
		{".BindVariable", "query", "", true},
		{"Missing", "query", "", true},
	}
	for _, tt := range tests {
		got, err := getReferencedType(tt.typeName, tt.scope, known)
		if tt.wantErr {
			assert.Error(t, err, tt.typeName)
			continue
		}
		require.NoError(t, err, tt.typeName)
		assert.Equal(t, tt.want, got)
	}
}
