package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteralBytes(t *testing.T) {
	cases := map[string]uint64{
		"10":    10,
		"10b":   10,
		"10K":   10 * 1024,
		"10k":   10 * 1024,
		"10KiB": 10 * 1024,
		"10KB":  10 * 1000,
		"10G":   10 * 1024 * 1024 * 1024,
		"10GB":  10 * 1000 * 1000 * 1000,
		"1.5M":  uint64(1.5 * 1024 * 1024),
		"2T":    2 << 40,
	}
	for token, want := range cases {
		v, err := ParseLiteral(token, KindBytes)
		require.NoError(t, err, token)
		assert.Equal(t, TypeBytes, v.Type(), token)
		assert.Equal(t, want, v.AsBytes(), token)
	}
}

func TestParseLiteralBytesErrors(t *testing.T) {
	for _, token := range []string{"", "G", "10X", "ten", "10GBs", "-5M"} {
		_, err := ParseLiteral(token, KindBytes)
		require.Error(t, err, token)
		assert.ErrorIs(t, err, ErrUnitParse, token)
	}
}

func TestParseLiteralPercent(t *testing.T) {
	v, err := ParseLiteral("90%", KindPercent)
	require.NoError(t, err)
	assert.Equal(t, 90.0, v.AsFloat())

	v, err = ParseLiteral("12.5", KindPercent)
	require.NoError(t, err)
	assert.Equal(t, 12.5, v.AsFloat())

	_, err = ParseLiteral("150%", KindPercent)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ParseLiteral("-1%", KindPercent)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ParseLiteral("full", KindPercent)
	assert.ErrorIs(t, err, ErrBadLiteral)
}

func TestParseLiteralBoolAndNumber(t *testing.T) {
	v, err := ParseLiteral("TRUE", KindBool)
	require.NoError(t, err)
	assert.True(t, v.AsBool())

	v, err = ParseLiteral("false", KindBool)
	require.NoError(t, err)
	assert.False(t, v.AsBool())

	_, err = ParseLiteral("yes", KindBool)
	assert.ErrorIs(t, err, ErrBadLiteral)

	v, err = ParseLiteral("42.5", KindNumber)
	require.NoError(t, err)
	assert.Equal(t, 42.5, v.AsFloat())

	_, err = ParseLiteral("forty", KindNumber)
	assert.ErrorIs(t, err, ErrBadLiteral)
}

func TestParseLiteralTextNeverCoerces(t *testing.T) {
	v, err := ParseLiteral("ext4", KindText)
	require.NoError(t, err)
	assert.Equal(t, "ext4", v.AsText())

	// A non-numeric token against a size kind is an error, not Missing.
	_, err = ParseLiteral("ext4", KindBytes)
	require.Error(t, err)
}

func TestCompare(t *testing.T) {
	assert.Negative(t, Compare(Missing(), Bytes(0)))
	assert.Positive(t, Compare(Bytes(0), Missing()))
	assert.Zero(t, Compare(Missing(), Missing()))

	assert.Negative(t, Compare(Bytes(10), Bytes(20)))
	assert.Zero(t, Compare(Bytes(10), Bytes(10)))
	assert.Positive(t, Compare(Percent(90), Percent(10)))
	assert.Negative(t, Compare(Text("ext4"), Text("xfs")))
	assert.Negative(t, Compare(Bool(false), Bool(true)))

	// Byte sizes and plain numbers share a scale.
	assert.Zero(t, Compare(Bytes(1024), Number(1024)))
	assert.Positive(t, Compare(Number(2048), Bytes(1024)))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512B", UnitsBinary.FormatBytes(512))
	assert.Equal(t, "1.0K", UnitsBinary.FormatBytes(1024))
	assert.Equal(t, "10.0G", UnitsBinary.FormatBytes(10*1024*1024*1024))
	assert.Equal(t, "120G", UnitsBinary.FormatBytes(120*1024*1024*1024))
	assert.Equal(t, "1.0K", UnitsSI.FormatBytes(1000))
	assert.Equal(t, "2048", UnitsBytes.FormatBytes(2048))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "-", Missing().Format(UnitsBinary))
	assert.Equal(t, "42%", Percent(41.7).Format(UnitsBinary))
	assert.Equal(t, "x", Bool(true).Format(UnitsBinary))
	assert.Equal(t, "", Bool(false).Format(UnitsBinary))
	assert.Equal(t, "1.0K", Bytes(1024).Format(UnitsBinary))
}

func TestParseUnits(t *testing.T) {
	for s, want := range map[string]Units{"binary": UnitsBinary, "SI": UnitsSI, "bytes": UnitsBytes} {
		u, err := ParseUnits(s)
		require.NoError(t, err)
		assert.Equal(t, want, u)
	}
	_, err := ParseUnits("metric")
	assert.Error(t, err)
}
