package mpl3115a2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPressureOffset(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)

	require.NoError(t, d.SetPressureOffset(-128)) // -32 counts at 4 Pa/LSB
	assert.Equal(t, byte(0xE0), conn.regs[RegOffsetPress])

	got, err := d.PressureOffset()
	require.NoError(t, err)
	assert.Equal(t, -128.0, got)

	// Signed byte at 4 Pa/LSB spans -512 to +508.
	require.NoError(t, d.SetPressureOffset(508))
	require.NoError(t, d.SetPressureOffset(-512))
	assert.ErrorAs(t, d.SetPressureOffset(512), &InvalidConfigurationError{})
	assert.ErrorAs(t, d.SetPressureOffset(-516), &InvalidConfigurationError{})
}

func TestTemperatureOffset(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)

	require.NoError(t, d.SetTemperatureOffset(1)) // 16 counts at 0.0625 C/LSB
	assert.Equal(t, byte(16), conn.regs[RegOffsetTemp])

	got, err := d.TemperatureOffset()
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	assert.ErrorAs(t, d.SetTemperatureOffset(8), &InvalidConfigurationError{})
	assert.ErrorAs(t, d.SetTemperatureOffset(-9), &InvalidConfigurationError{})
}

func TestAltitudeOffset(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)

	require.NoError(t, d.SetAltitudeOffset(-100))
	assert.Equal(t, byte(0x9C), conn.regs[RegOffsetAlt])

	got, err := d.AltitudeOffset()
	require.NoError(t, err)
	assert.Equal(t, -100.0, got)

	assert.ErrorAs(t, d.SetAltitudeOffset(128), &InvalidConfigurationError{})
}
