// Package topodata holds the topology types referenced by vtgate requests.
package topodata

import (
	"strconv"

	"github.com/anirudhraja/vtwire/registry"
	"github.com/anirudhraja/vtwire/schema"
)

// TabletTypeName is the fully qualified enum name.
const TabletTypeName = "topodata.TabletType"

// TabletType is the role of a tablet. Numbers outside the list are kept as is.
type TabletType int32

const (
	TabletType_UNKNOWN      TabletType = 0
	TabletType_MASTER       TabletType = 1
	TabletType_REPLICA      TabletType = 2
	TabletType_RDONLY       TabletType = 3
	TabletType_BATCH        TabletType = 3
	TabletType_SPARE        TabletType = 4
	TabletType_EXPERIMENTAL TabletType = 5
	TabletType_BACKUP       TabletType = 6
	TabletType_RESTORE      TabletType = 7
	TabletType_DRAINED      TabletType = 8
)

// BATCH is an alias of RDONLY; the first name wins when printing.
var tabletTypeValues = []schema.EnumValue{
	{Name: "UNKNOWN", Number: 0},
	{Name: "MASTER", Number: 1},
	{Name: "REPLICA", Number: 2},
	{Name: "RDONLY", Number: 3},
	{Name: "BATCH", Number: 3},
	{Name: "SPARE", Number: 4},
	{Name: "EXPERIMENTAL", Number: 5},
	{Name: "BACKUP", Number: 6},
	{Name: "RESTORE", Number: 7},
	{Name: "DRAINED", Number: 8},
}

func (t TabletType) String() string {
	for _, v := range tabletTypeValues {
		if v.Number == int32(t) {
			return v.Name
		}
	}
	return strconv.Itoa(int(t))
}

// ParseTabletType accepts an enum name, aliases included.
func ParseTabletType(s string) (TabletType, bool) {
	for _, v := range tabletTypeValues {
		if v.Name == s {
			return TabletType(v.Number), true
		}
	}
	return 0, false
}

// Register adds the topodata types to r.
func Register(r *registry.Registry) error {
	ed, err := schema.NewEnumDescriptor(TabletTypeName, tabletTypeValues...)
	if err != nil {
		return err
	}
	return r.RegisterEnum(ed)
}
