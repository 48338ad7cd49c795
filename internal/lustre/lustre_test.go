package lustre

import (
	"context"
	"strings"
	"testing"

	"github.com/GriffinCanCode/dfq/internal/mount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const devicesFixture = `  0 UP osd-ldiskfs lfs01-MDT0000-osd lfs01-MDT0000-osd_UUID 9
  1 UP mgs MGS MGS 5
  2 UP mgc MGC10.0.0.1@tcp 59bda1f0 5
  3 UP mdt lfs01-MDT0000 lfs01-MDT0000_UUID 11
  4 UP obdfilter lfs01-OST0000 lfs01-OST0000_UUID 7
  5 UP obdfilter lfs01-OST001a lfs01-OST001a_UUID 7
`

func TestParseDevices(t *testing.T) {
	targets, err := parseDevices(strings.NewReader(devicesFixture))
	require.NoError(t, err)
	require.Len(t, targets, 3)

	mdt := targets["lfs01-MDT0000"]
	assert.Equal(t, ComponentMDT, mdt.Component)
	assert.Equal(t, "lfs01-MDT0000_UUID", mdt.UUID)
	assert.True(t, mdt.HasIndex)
	assert.Equal(t, 0, mdt.Index)

	ost := targets["lfs01-OST001a"]
	assert.Equal(t, ComponentOST, ost.Component)
	assert.True(t, ost.HasIndex)
	assert.Equal(t, 0x1a, ost.Index)
}

func TestBuildDataLookup(t *testing.T) {
	targets, err := parseDevices(strings.NewReader(devicesFixture))
	require.NoError(t, err)

	client := &mount.Record{Device: "10.0.0.1@tcp:/lfs01", FSType: "lustre", MountPoint: "/mnt/lfs01"}
	backing := &mount.Record{Device: "/dev/mapper/lfs01-OST0000", FSType: "ldiskfs", MountPoint: "/mnt/ost0"}
	plain := &mount.Record{Device: "/dev/sda1", FSType: "ext4", MountPoint: "/"}

	data := buildData(targets, []*mount.Record{client, backing, plain})
	assert.True(t, data.Available())

	info, ok := data.Lookup(client)
	require.True(t, ok)
	assert.Equal(t, ComponentClient, info.Component)
	assert.Equal(t, "lfs01-client", info.UUID)

	info, ok = data.Lookup(backing)
	require.True(t, ok)
	assert.Equal(t, ComponentOST, info.Component)

	_, ok = data.Lookup(plain)
	assert.False(t, ok)

	assert.True(t, data.IsLustre(client))
	assert.True(t, data.IsLustre(backing))
	assert.False(t, data.IsLustre(plain))
}

func TestUnavailableData(t *testing.T) {
	var data *Data
	assert.False(t, data.Available())
	_, ok := data.Lookup(&mount.Record{MountPoint: "/mnt/lfs01"})
	assert.False(t, ok)

	zero := &Data{}
	assert.False(t, zero.Available())
}

func TestCollectorDegradesWhenAbsent(t *testing.T) {
	// On hosts without Lustre the proc file is absent and collection
	// fails; the caller treats that as an unavailable overlay.
	_, err := NewCollector().Collect(context.Background(), nil)
	if err == nil {
		t.Skip("host has a Lustre stack")
	}
	assert.Error(t, err)
}

func TestComponentTypeString(t *testing.T) {
	assert.Equal(t, "MDT", ComponentMDT.String())
	assert.Equal(t, "OST", ComponentOST.String())
	assert.Equal(t, "client", ComponentClient.String())
	assert.Equal(t, "unknown", ComponentUnknown.String())
}
