package sorting

import (
	"testing"

	"github.com/GriffinCanCode/dfq/internal/column"
	"github.com/GriffinCanCode/dfq/internal/lustre"
	"github.com/GriffinCanCode/dfq/internal/mount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sized(mountPoint string, total uint64) *mount.Record {
	return &mount.Record{
		Device:     "/dev/" + mountPoint,
		FSType:     "ext4",
		MountPoint: mountPoint,
		Stats:      &mount.Stats{Total: total},
	}
}

func TestParse(t *testing.T) {
	cases := map[string]Sorting{
		"size":         {Col: column.ColSize, Order: column.Desc},
		"size-asc":     {Col: column.ColSize, Order: column.Asc},
		"size asc":     {Col: column.ColSize, Order: column.Asc},
		"size-a":       {Col: column.ColSize, Order: column.Asc},
		"use desc":     {Col: column.ColUse, Order: column.Desc},
		"use-DESC":     {Col: column.ColUse, Order: column.Desc},
		"mount":        {Col: column.ColMountPoint, Order: column.Asc},
		"mount-d":      {Col: column.ColMountPoint, Order: column.Desc},
		"free_percent": {Col: column.ColFreePercent, Order: column.Desc},
	}
	for raw, want := range cases {
		got, err := Parse(raw, false)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("sizzle", false)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "sizzle", perr.Raw)

	_, err = Parse("size-upward", false)
	assert.Error(t, err)

	// lustre columns need the overlay to be requested
	_, err = Parse("lustre_index", false)
	assert.Error(t, err)
	_, err = Parse("lustre_index", true)
	assert.NoError(t, err)
}

func TestRoundTrip(t *testing.T) {
	for _, raw := range []string{"size", "size-asc", "use desc", "mount", "lustre_uuid"} {
		first, err := Parse(raw, true)
		require.NoError(t, err)
		second, err := Parse(first.String(), true)
		require.NoError(t, err)
		assert.Equal(t, first, second, raw)
	}
}

func TestSortAscending(t *testing.T) {
	records := []*mount.Record{sized("/c", 30), sized("/a", 10), sized("/b", 20)}
	s, err := Parse("size-asc", false)
	require.NoError(t, err)
	s.Sort(records, nil)

	assert.Equal(t, "/a", records[0].MountPoint)
	assert.Equal(t, "/b", records[1].MountPoint)
	assert.Equal(t, "/c", records[2].MountPoint)
}

// Descending sort is reversal of the ascending stable sort, so tied
// records come out in reversed input order, matching the ascending tie
// order read backwards.
func TestDescendingIsStableReversal(t *testing.T) {
	records := []*mount.Record{
		sized("/first", 10),
		sized("/second", 10),
		sized("/third", 20),
	}
	asc := append([]*mount.Record(nil), records...)
	Sorting{Col: column.ColSize, Order: column.Asc}.Sort(asc, nil)

	desc := append([]*mount.Record(nil), records...)
	Sorting{Col: column.ColSize, Order: column.Desc}.Sort(desc, nil)

	// reversing desc must reproduce asc exactly, ties included
	for i := range desc {
		assert.Same(t, asc[i], desc[len(desc)-1-i])
	}
	assert.Equal(t, "/first", asc[0].MountPoint)
	assert.Equal(t, "/second", asc[1].MountPoint)
}

func TestSortMissingLast(t *testing.T) {
	unreachable := &mount.Record{Device: "filer:/vol", MountPoint: "/mnt/far"}
	records := []*mount.Record{unreachable, sized("/a", 10), sized("/b", 20)}

	Sorting{Col: column.ColSize, Order: column.Asc}.Sort(records, nil)
	assert.Equal(t, "/mnt/far", records[2].MountPoint)

	// descending reversal brings the missing record first; the relative
	// order of defined values still flips
	Sorting{Col: column.ColSize, Order: column.Desc}.Sort(records, nil)
	assert.Equal(t, "/mnt/far", records[0].MountPoint)
	assert.Equal(t, "/b", records[1].MountPoint)
}

func TestSortByOverlayColumn(t *testing.T) {
	client := sized("/mnt/lfs01", 10)
	mdt := sized("/mnt/mdt0", 10)
	ost := sized("/mnt/ost0", 10)
	plainA := sized("/a", 10)
	plainB := sized("/b", 10)

	overlay := lustre.NewData(map[string]lustre.Info{
		"/mnt/lfs01": {UUID: "lfs01-client", Component: lustre.ComponentClient},
		"/mnt/mdt0":  {UUID: "lfs01-MDT0000_UUID", Component: lustre.ComponentMDT, Index: 0, HasIndex: true},
		"/mnt/ost0":  {UUID: "lfs01-OST0000_UUID", Component: lustre.ComponentOST, Index: 0, HasIndex: true},
	})

	records := []*mount.Record{plainA, client, ost, plainB, mdt}
	Sorting{Col: column.ColLustreComponent, Order: column.Asc}.Sort(records, overlay)

	assert.Same(t, mdt, records[0])
	assert.Same(t, ost, records[1])
	assert.Same(t, client, records[2])
	// overlay-less records sort after, keeping their input order
	assert.Same(t, plainA, records[3])
	assert.Same(t, plainB, records[4])
}

// Sorting by an overlay column with the overlay unavailable is a total
// tie: the stable sort leaves the input order untouched.
func TestSortByOverlayColumnUnavailable(t *testing.T) {
	records := []*mount.Record{sized("/c", 30), sized("/a", 10), sized("/b", 20)}
	Sorting{Col: column.ColLustreUUID, Order: column.Asc}.Sort(records, nil)

	assert.Equal(t, "/c", records[0].MountPoint)
	assert.Equal(t, "/a", records[1].MountPoint)
	assert.Equal(t, "/b", records[2].MountPoint)
	assert.Len(t, records, 3)
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, column.ColSize, s.Col)
	assert.Equal(t, column.Desc, s.Order)
}
