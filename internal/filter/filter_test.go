package filter

import (
	"testing"

	"github.com/GriffinCanCode/dfq/internal/lustre"
	"github.com/GriffinCanCode/dfq/internal/mount"
	"github.com/GriffinCanCode/dfq/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gib = uint64(1024 * 1024 * 1024)

func rec(mountPoint, fstype string, totalGiB uint64, useShare float64) *mount.Record {
	total := totalGiB * gib
	used := uint64(float64(total) * useShare)
	return &mount.Record{
		Device:     "/dev/sda1",
		FSType:     fstype,
		MountPoint: mountPoint,
		Stats: &mount.Stats{
			Total:     total,
			Used:      used,
			Available: total - used,
			UseShare:  useShare,
		},
	}
}

func fixtures() []*mount.Record {
	return []*mount.Record{
		rec("/", "ext4", 50, 0.5),
		rec("/big", "xfs", 200, 0.95),
		rec("/huge", "ext4", 500, 0.2),
		rec("/run", "tmpfs", 2, 0.01),
	}
}

func compile(t *testing.T, raw string) *Filter {
	t.Helper()
	f, err := Compile(raw, false)
	require.NoError(t, err, raw)
	return f
}

func TestEmptyFilterIsIdentity(t *testing.T) {
	f, err := Compile("", false)
	require.NoError(t, err)
	records := fixtures()
	assert.Equal(t, records, f.Apply(records, nil))

	f, err = Compile("   ", false)
	require.NoError(t, err)
	assert.Equal(t, records, f.Apply(records, nil))

	var nilFilter *Filter
	assert.Equal(t, records, nilFilter.Apply(records, nil))
	assert.True(t, nilFilter.Matches(records[0], nil))
}

func TestFilteringIsIdempotent(t *testing.T) {
	f := compile(t, "size>10G")
	once := f.Apply(fixtures(), nil)
	twice := f.Apply(once, nil)
	assert.Equal(t, once, twice)
}

func TestConjunction(t *testing.T) {
	f := compile(t, "size>10G and use<90%")
	kept := f.Apply(fixtures(), nil)
	require.Len(t, kept, 2)
	assert.Equal(t, "/", kept[0].MountPoint)
	assert.Equal(t, "/huge", kept[1].MountPoint)

	// symbolic form is a synonym
	sym := compile(t, "size>10G && use<90%")
	assert.Equal(t, kept, sym.Apply(fixtures(), nil))
}

func TestDisjunctionAndPrecedence(t *testing.T) {
	// and binds tighter than or
	f := compile(t, "type=tmpfs or size>100G and use>90%")
	kept := f.Apply(fixtures(), nil)
	require.Len(t, kept, 2)
	assert.Equal(t, "/big", kept[0].MountPoint)
	assert.Equal(t, "/run", kept[1].MountPoint)

	grouped := compile(t, "(type=tmpfs or size>100G) and use>90%")
	kept = grouped.Apply(fixtures(), nil)
	require.Len(t, kept, 1)
	assert.Equal(t, "/big", kept[0].MountPoint)
}

func TestNegation(t *testing.T) {
	f := compile(t, "not (type=tmpfs)")
	for _, r := range f.Apply(fixtures(), nil) {
		assert.NotEqual(t, "tmpfs", r.FSType)
	}
	assert.Len(t, f.Apply(fixtures(), nil), 3)

	f = compile(t, "not type=tmpfs and not type=xfs")
	assert.Len(t, f.Apply(fixtures(), nil), 2)
}

func TestLiteralUnits(t *testing.T) {
	// 10G is binary, 10GB is SI; the /big mount is 200GiB
	f := compile(t, "size>150G")
	assert.Len(t, f.Apply(fixtures(), nil), 2)

	f = compile(t, "size<3GB")
	kept := f.Apply(fixtures(), nil)
	require.Len(t, kept, 1)
	assert.Equal(t, "/run", kept[0].MountPoint)
}

func TestMatchOperator(t *testing.T) {
	f := compile(t, "mount~RU")
	kept := f.Apply(fixtures(), nil)
	require.Len(t, kept, 1)
	assert.Equal(t, "/run", kept[0].MountPoint)

	f = compile(t, "mount!~run")
	assert.Len(t, f.Apply(fixtures(), nil), 3)
}

func TestQuotedLiterals(t *testing.T) {
	spaced := rec("/mnt/my data", "ext4", 10, 0.1)
	f := compile(t, `mount="/mnt/my data"`)
	kept := f.Apply([]*mount.Record{spaced, rec("/", "ext4", 10, 0.1)}, nil)
	require.Len(t, kept, 1)
	assert.Same(t, spaced, kept[0])

	f = compile(t, `mount~'my data'`)
	assert.Len(t, f.Apply([]*mount.Record{spaced}, nil), 1)
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	f := compile(t, "type=tmpfs OR type=xfs")
	assert.Len(t, f.Apply(fixtures(), nil), 2)

	f = compile(t, "NOT type=tmpfs AND size>10G")
	assert.Len(t, f.Apply(fixtures(), nil), 3)
}

func TestMissingNeverMatches(t *testing.T) {
	unreachable := &mount.Record{Device: "filer:/vol", FSType: "nfs4", MountPoint: "/mnt/far", Remote: true}
	records := []*mount.Record{unreachable, rec("/", "ext4", 10, 0.5)}

	for _, raw := range []string{"size>0", "size<1T", "size=0", "size!=0"} {
		f := compile(t, raw)
		for _, kept := range f.Apply(records, nil) {
			assert.NotSame(t, unreachable, kept, raw)
		}
	}
}

func TestTypeMismatchFailsCompilation(t *testing.T) {
	for _, raw := range []string{
		"filesystem<5",
		"mount>=10G",
		"remote~yes",
		"size~10",
	} {
		_, err := Compile(raw, false)
		require.Error(t, err, raw)
		assert.ErrorIs(t, err, ErrTypeMismatch, raw)
	}
}

func TestLiteralErrorsFailCompilation(t *testing.T) {
	_, err := Compile("size>tiny", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, value.ErrUnitParse)

	_, err = Compile("use>150%", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, value.ErrOutOfRange)

	_, err = Compile("remote=maybe", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, value.ErrBadLiteral)
}

func TestSyntaxErrors(t *testing.T) {
	for _, raw := range []string{
		"(size>10G",
		"size>10G)",
		"size>10G and",
		"and size>10G",
		"size>",
		"size 10G",
		`mount="/unterminated`,
		"not",
	} {
		_, err := Compile(raw, false)
		require.Error(t, err, raw)
		var ferr *Error
		require.ErrorAs(t, err, &ferr, raw)
		assert.Equal(t, raw, ferr.Raw, raw)
	}
}

func TestUnknownColumn(t *testing.T) {
	_, err := Compile("capacity>10G", false)
	require.Error(t, err)
	var ferr *Error
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Error(), "capacity")
}

func TestBooleanColumn(t *testing.T) {
	remote := rec("/mnt/far", "nfs4", 10, 0.1)
	remote.Remote = true
	records := []*mount.Record{remote, rec("/", "ext4", 10, 0.1)}

	f := compile(t, "remote=true")
	kept := f.Apply(records, nil)
	require.Len(t, kept, 1)
	assert.Same(t, remote, kept[0])

	f = compile(t, "remote!=true")
	kept = f.Apply(records, nil)
	require.Len(t, kept, 1)
	assert.Equal(t, "/", kept[0].MountPoint)
}

func TestLustreColumnsGated(t *testing.T) {
	_, err := Compile("lustre_component=OST", false)
	assert.Error(t, err)

	f, err := Compile("lustre_component~ost", true)
	require.NoError(t, err)

	ost := rec("/mnt/ost0", "ldiskfs", 10, 0.1)
	overlay := lustre.NewData(map[string]lustre.Info{
		"/mnt/ost0": {UUID: "lfs01-OST0000_UUID", Component: lustre.ComponentOST},
	})
	kept := f.Apply([]*mount.Record{ost, rec("/", "ext4", 10, 0.1)}, overlay)
	require.Len(t, kept, 1)
	assert.Same(t, ost, kept[0])

	// unavailable overlay degrades to missing: nothing matches, no panic
	assert.Empty(t, f.Apply([]*mount.Record{ost}, nil))
}
