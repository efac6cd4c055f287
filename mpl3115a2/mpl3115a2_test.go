package mpl3115a2

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerifiesIdentity(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, []string{"R 0x0c"}, conn.log)
}

func TestNewRejectsWrongDevice(t *testing.T) {
	conn := newFakeConn()
	conn.regs[RegWhoAmI] = 0x00

	_, err := New(conn)
	var idErr UnexpectedDeviceIDError
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, byte(0x00), idErr.Actual)
}

func TestNewPropagatesTransportError(t *testing.T) {
	conn := newFakeConn()
	busErr := errors.New("bus stuck")
	conn.failReads = map[byte]error{RegWhoAmI: busErr}

	_, err := New(conn)
	assert.ErrorIs(t, err, busErr)
}

func TestInitDefaultConfig(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)
	conn.clearLog()

	require.NoError(t, d.Init(DefaultConfig()))

	// CTRL_REG1 = active | 128x oversample | altimeter, then PT_DATA_CFG
	// with all three event flags, in that order.
	assert.Equal(t, []string{"W 0x26=0xb9", "W 0x13=0x07"}, conn.log)
}

func TestInitComposesConfig(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)

	cfg := Config{
		Standby:            true,
		Oversample:         4,
		Mode:               Barometer,
		EventOnNewPressure: true,
	}
	require.NoError(t, d.Init(cfg))
	assert.Equal(t, byte(0x10), conn.regs[RegCtrl1]) // standby, OS=2, barometer
	assert.Equal(t, byte(0x02), conn.regs[RegPTDataCfg])
}

func TestInitRejectsBadOversampleBeforeBusIO(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)
	conn.clearLog()

	err = d.Init(Config{Oversample: 3, Mode: Altimeter})
	assert.ErrorAs(t, err, &InvalidConfigurationError{})
	assert.Empty(t, conn.log, "invalid configuration must not touch the bus")
}

func TestInitStopsAtFirstFailingWrite(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)

	busErr := errors.New("write failed")
	conn.failWrite = map[byte]error{RegPTDataCfg: busErr}

	err = d.Init(DefaultConfig())
	assert.ErrorIs(t, err, busErr)
	// The first write already took effect; re-running Init is the recovery.
	assert.Equal(t, byte(0xB9), conn.regs[RegCtrl1])
}

func TestMeasurementReads(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)

	conn.regs[RegPressMSB] = 0x00
	conn.regs[RegPressCSB] = 0x01
	conn.regs[RegPressLSB] = 0x40

	press, err := d.Pressure()
	require.NoError(t, err)
	assert.Equal(t, 1.25, press)

	alt, err := d.Altitude()
	require.NoError(t, err)
	assert.Equal(t, 1.25, alt) // same bytes, altitude codec: 1 + 4/16

	conn.regs[RegTempMSB] = 0x19
	conn.regs[RegTempLSB] = 0x10
	temp, err := d.Temperature()
	require.NoError(t, err)
	assert.Equal(t, 25.0625, temp)
}

func TestMeasurementReadOrder(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)
	conn.clearLog()

	_, err = d.Pressure()
	require.NoError(t, err)
	assert.Equal(t, []string{"R 0x01", "R 0x02", "R 0x03"}, conn.log,
		"multi-byte groups must be read address-ascending")

	conn.clearLog()
	_, err = d.PressureDelta()
	require.NoError(t, err)
	assert.Equal(t, []string{"R 0x07", "R 0x08", "R 0x09"}, conn.log)
}

func TestDeltaReads(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)

	conn.regs[RegPressDeltaMSB] = 0xFF
	conn.regs[RegPressDeltaCSB] = 0xFD
	conn.regs[RegPressDeltaLSB] = 0x40
	delta, err := d.PressureDelta()
	require.NoError(t, err)
	assert.Equal(t, -2.75, delta)

	conn.regs[RegTempDeltaMSB] = 0xFF
	conn.regs[RegTempDeltaLSB] = 0x80
	tdelta, err := d.TemperatureDelta()
	require.NoError(t, err)
	assert.Equal(t, -0.5, tdelta)
}

func TestOversampleRatioRoundTrip(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)
	require.NoError(t, d.Init(DefaultConfig()))

	for _, ratio := range []int{1, 2, 4, 8, 16, 32, 64, 128} {
		require.NoError(t, d.SetOversampleRatio(ratio))
		got, err := d.OversampleRatio()
		require.NoError(t, err)
		assert.Equal(t, ratio, got)
		// The rest of CTRL_REG1 stays intact.
		assert.Equal(t, byte(ctrl1SBYB|ctrl1ALT), conn.regs[RegCtrl1]&^ctrl1OSMask)
	}

	err = d.SetOversampleRatio(3)
	assert.ErrorAs(t, err, &InvalidConfigurationError{})
	err = d.SetOversampleRatio(256)
	assert.ErrorAs(t, err, &InvalidConfigurationError{})
}

func TestStandbyAndOneShot(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)
	require.NoError(t, d.Init(DefaultConfig()))

	standby, err := d.Standby()
	require.NoError(t, err)
	assert.False(t, standby)

	require.NoError(t, d.SetStandby(true))
	standby, err = d.Standby()
	require.NoError(t, err)
	assert.True(t, standby)
	assert.Equal(t, byte(0xB8), conn.regs[RegCtrl1])

	require.NoError(t, d.TriggerOneShot())
	assert.Equal(t, byte(0xBA), conn.regs[RegCtrl1])
}

func TestSystemMode(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)

	mode, err := d.SystemMode()
	require.NoError(t, err)
	assert.Equal(t, StandbyMode, mode)

	conn.regs[RegSysMode] = 0x01
	mode, err = d.SystemMode()
	require.NoError(t, err)
	assert.Equal(t, ActiveMode, mode)
}

func TestDataReady(t *testing.T) {
	conn := newFakeConn()
	d, err := New(conn)
	require.NoError(t, err)

	conn.regs[RegDRStatus] = drStatusPTDR | drStatusTDR | drStatusPOW
	st, err := d.DataReady()
	require.NoError(t, err)
	assert.True(t, st.Ready)
	assert.True(t, st.TemperatureReady)
	assert.False(t, st.PressureReady)
	assert.True(t, st.PressureOverwritten)
	assert.False(t, st.Overwritten)
}
