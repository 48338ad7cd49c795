package column

import "github.com/GriffinCanCode/dfq/internal/value"

// Col identifies one reportable attribute.
type Col int

const (
	ColDev Col = iota
	ColFilesystem
	ColLabel
	ColDisk
	ColType
	ColRemote
	ColSize
	ColUsed
	ColUse
	ColFree
	ColFreePercent
	ColInodes
	ColInodesUsed
	ColInodesUse
	ColInodesFree
	ColMountPoint
	ColUUID
	ColPartUUID
	ColLustreUUID
	ColLustreComponent
	ColLustreIndex

	colCount
)

// Align positions cell content inside a table column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

type meta struct {
	name         string
	aliases      []string
	title        string
	kind         value.Kind
	align        Align
	defaultOrder Order
	lustre       bool
}

// metas is the registry; indexed by Col, ordered as --list-cols shows.
var metas = [colCount]meta{
	ColDev:             {name: "dev", aliases: []string{"device"}, title: "dev", kind: value.KindText, align: AlignLeft},
	ColFilesystem:      {name: "filesystem", aliases: []string{"fs"}, title: "filesystem", kind: value.KindText, align: AlignLeft},
	ColLabel:           {name: "label", title: "label", kind: value.KindOptionalText, align: AlignLeft},
	ColDisk:            {name: "disk", title: "disk", kind: value.KindOptionalText, align: AlignCenter},
	ColType:            {name: "type", title: "type", kind: value.KindText, align: AlignLeft},
	ColRemote:          {name: "remote", aliases: []string{"rem"}, title: "remote", kind: value.KindBool, align: AlignCenter},
	ColSize:            {name: "size", title: "size", kind: value.KindBytes, align: AlignRight, defaultOrder: Desc},
	ColUsed:            {name: "used", title: "used", kind: value.KindBytes, align: AlignRight, defaultOrder: Desc},
	ColUse:             {name: "use", aliases: []string{"use_percent"}, title: "use%", kind: value.KindPercent, align: AlignRight, defaultOrder: Desc},
	ColFree:            {name: "free", aliases: []string{"avail"}, title: "free", kind: value.KindBytes, align: AlignRight, defaultOrder: Desc},
	ColFreePercent:     {name: "free_percent", title: "free%", kind: value.KindPercent, align: AlignRight, defaultOrder: Desc},
	ColInodes:          {name: "inodes", title: "inodes", kind: value.KindNumber, align: AlignRight, defaultOrder: Desc},
	ColInodesUsed:      {name: "iused", title: "used inodes", kind: value.KindNumber, align: AlignRight, defaultOrder: Desc},
	ColInodesUse:       {name: "iuse", aliases: []string{"iuse_percent"}, title: "iuse%", kind: value.KindPercent, align: AlignRight, defaultOrder: Desc},
	ColInodesFree:      {name: "ifree", title: "free inodes", kind: value.KindNumber, align: AlignRight, defaultOrder: Desc},
	ColMountPoint:      {name: "mount", aliases: []string{"mount_point", "mp"}, title: "mount point", kind: value.KindText, align: AlignLeft},
	ColUUID:            {name: "uuid", title: "uuid", kind: value.KindOptionalText, align: AlignLeft},
	ColPartUUID:        {name: "part_uuid", title: "part uuid", kind: value.KindOptionalText, align: AlignLeft},
	ColLustreUUID:      {name: "lustre_uuid", title: "lustre uuid", kind: value.KindOptionalText, align: AlignLeft, lustre: true},
	ColLustreComponent: {name: "lustre_component", aliases: []string{"lcomp"}, title: "lustre comp", kind: value.KindOptionalText, align: AlignLeft, lustre: true},
	ColLustreIndex:     {name: "lustre_index", aliases: []string{"lidx"}, title: "lustre idx", kind: value.KindNumber, align: AlignRight, lustre: true},
}

// Name returns the stable identifier used in sort and filter text.
func (c Col) Name() string { return metas[c].name }

// Title returns the display header.
func (c Col) Title() string { return metas[c].title }

// Kind returns the value kind governing literals and operators.
func (c Col) Kind() value.Kind { return metas[c].kind }

// Align returns the table alignment.
func (c Col) Align() Align { return metas[c].align }

// DefaultSortOrder is used when a sort directive names no order.
func (c Col) DefaultSortOrder() Order { return metas[c].defaultOrder }

// Lustre reports whether the column is backed by the overlay table.
func (c Col) Lustre() bool { return metas[c].lustre }

// DefaultSortCol is the column sorted on when no directive is given.
func DefaultSortCol() Col { return ColSize }

// All returns every column in registry order.
func All() []Col {
	cols := make([]Col, colCount)
	for i := range cols {
		cols[i] = Col(i)
	}
	return cols
}

// Default returns the columns shown without a --cols selection.
func Default() []Col {
	return []Col{ColFilesystem, ColType, ColSize, ColUsed, ColUse, ColFree, ColMountPoint}
}
