package column

import (
	"github.com/GriffinCanCode/dfq/internal/lustre"
	"github.com/GriffinCanCode/dfq/internal/mount"
	"github.com/GriffinCanCode/dfq/internal/value"
)

// Value extracts this column's value from a record. Attributes undefined
// for the mount resolve to Missing; so does any Lustre column when the
// overlay has no entry for the record or is unavailable.
func (c Col) Value(rec *mount.Record, overlay *lustre.Data) value.Value {
	switch c {
	case ColDev:
		return value.Text(rec.DeviceID)
	case ColFilesystem:
		return value.Text(rec.DisplayName())
	case ColLabel:
		return optionalText(rec.Label)
	case ColDisk:
		return optionalText(rec.DiskKind)
	case ColType:
		return value.Text(rec.FSType)
	case ColRemote:
		return value.Bool(rec.Remote)
	case ColSize:
		if rec.Stats == nil {
			return value.Missing()
		}
		return value.Bytes(rec.Stats.Total)
	case ColUsed:
		if rec.Stats == nil {
			return value.Missing()
		}
		return value.Bytes(rec.Stats.Used)
	case ColUse:
		if rec.Stats == nil {
			return value.Missing()
		}
		return value.Percent(clampShare(rec.Stats.UseShare) * 100)
	case ColFree:
		if rec.Stats == nil {
			return value.Missing()
		}
		return value.Bytes(rec.Stats.Available)
	case ColFreePercent:
		if rec.Stats == nil {
			return value.Missing()
		}
		return value.Percent((1 - clampShare(rec.Stats.UseShare)) * 100)
	case ColInodes:
		if rec.Inodes == nil {
			return value.Missing()
		}
		return value.Number(float64(rec.Inodes.Total))
	case ColInodesUsed:
		if rec.Inodes == nil {
			return value.Missing()
		}
		return value.Number(float64(rec.Inodes.Used))
	case ColInodesUse:
		if rec.Inodes == nil {
			return value.Missing()
		}
		return value.Percent(clampShare(rec.Inodes.UseShare) * 100)
	case ColInodesFree:
		if rec.Inodes == nil {
			return value.Missing()
		}
		return value.Number(float64(rec.Inodes.Free))
	case ColMountPoint:
		return value.Text(rec.MountPoint)
	case ColUUID:
		return optionalText(rec.UUID)
	case ColPartUUID:
		return optionalText(rec.PartUUID)
	case ColLustreUUID:
		if info, ok := overlay.Lookup(rec); ok {
			return value.Text(info.UUID)
		}
		return value.Missing()
	case ColLustreComponent:
		if info, ok := overlay.Lookup(rec); ok {
			return value.Text(info.Component.String())
		}
		return value.Missing()
	case ColLustreIndex:
		if info, ok := overlay.Lookup(rec); ok && info.HasIndex {
			return value.Number(float64(info.Index))
		}
		return value.Missing()
	}
	return value.Missing()
}

// Compare orders two records by this column. Records with a missing
// value sort after records with one; two missing values tie. The Lustre
// component column orders by role (MDT, OST, client) rather than by its
// display string.
func (c Col) Compare(a, b *mount.Record, overlay *lustre.Data) int {
	if c == ColLustreComponent {
		ia, oka := overlay.Lookup(a)
		ib, okb := overlay.Lookup(b)
		if !oka || !okb {
			return missingLast(oka, okb)
		}
		return int(ia.Component) - int(ib.Component)
	}
	va := c.Value(a, overlay)
	vb := c.Value(b, overlay)
	if va.IsMissing() || vb.IsMissing() {
		return missingLast(!va.IsMissing(), !vb.IsMissing())
	}
	return value.Compare(va, vb)
}

func missingLast(aPresent, bPresent bool) int {
	switch {
	case aPresent == bPresent:
		return 0
	case aPresent:
		return -1
	default:
		return 1
	}
}

func optionalText(s string) value.Value {
	if s == "" {
		return value.Missing()
	}
	return value.Text(s)
}

func clampShare(share float64) float64 {
	switch {
	case share < 0:
		return 0
	case share > 1:
		return 1
	default:
		return share
	}
}
