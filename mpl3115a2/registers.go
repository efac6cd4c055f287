// Package mpl3115a2 provides a driver for NXP's MPL3115A2 precision
// altimeter/barometer with on-chip temperature compensation.
// The datasheet can be found here: https://www.nxp.com/docs/en/data-sheet/MPL3115A2.pdf
package mpl3115a2

import "fmt"

// Address is the fixed 7-bit I2C address of the MPL3115A2.
const Address byte = 0x60

// DeviceID is the correct response when reading from the WHO_AM_I register.
const DeviceID byte = 0xC4

// Register map, 0x00 through 0x2D. Registers marked RO have no write
// accessor anywhere in this package.
const (
	RegStatus        byte = 0x00 // RO, mirrors DR_STATUS or F_STATUS depending on FIFO setup
	RegPressMSB      byte = 0x01 // RO, pressure/altitude output
	RegPressCSB      byte = 0x02 // RO
	RegPressLSB      byte = 0x03 // RO
	RegTempMSB       byte = 0x04 // RO, temperature output
	RegTempLSB       byte = 0x05 // RO
	RegDRStatus      byte = 0x06 // RO, data-ready status
	RegPressDeltaMSB byte = 0x07 // RO, pressure/altitude change since last read
	RegPressDeltaCSB byte = 0x08 // RO
	RegPressDeltaLSB byte = 0x09 // RO
	RegTempDeltaMSB  byte = 0x0A // RO, temperature change since last read
	RegTempDeltaLSB  byte = 0x0B // RO
	RegWhoAmI        byte = 0x0C // RO, expected DeviceID
	RegFIFOStatus    byte = 0x0D // RO
	RegFIFOData      byte = 0x0E // RO, auto-advancing FIFO read port
	RegFIFOSetup     byte = 0x0F // RW
	RegTimeDelay     byte = 0x10 // RO, time since FIFO overflow
	RegSysMode       byte = 0x11 // RO, current standby/active mode
	RegIntSource     byte = 0x12 // RO
	RegPTDataCfg     byte = 0x13 // RW, event flag configuration
	RegBarInMSB      byte = 0x14 // RW, sea level pressure for altitude calculation
	RegBarInLSB      byte = 0x15 // RW
	RegPressTgtMSB   byte = 0x16 // RW, pressure/altitude target
	RegPressTgtLSB   byte = 0x17 // RW
	RegTempTgt       byte = 0x18 // RW, temperature target
	RegPressWndMSB   byte = 0x19 // RW, pressure/altitude window
	RegPressWndLSB   byte = 0x1A // RW
	RegTempWnd       byte = 0x1B // RW, temperature window
	RegMinPressMSB   byte = 0x1C // RW, captured minimum pressure/altitude
	RegMinPressCSB   byte = 0x1D // RW
	RegMinPressLSB   byte = 0x1E // RW
	RegMinTempMSB    byte = 0x1F // RW, captured minimum temperature
	RegMinTempLSB    byte = 0x20 // RW
	RegMaxPressMSB   byte = 0x21 // RW, captured maximum pressure/altitude
	RegMaxPressCSB   byte = 0x22 // RW
	RegMaxPressLSB   byte = 0x23 // RW
	RegMaxTempMSB    byte = 0x24 // RW, captured maximum temperature
	RegMaxTempLSB    byte = 0x25 // RW
	RegCtrl1         byte = 0x26 // RW
	RegCtrl2         byte = 0x27 // RW
	RegCtrl3         byte = 0x28 // RW, interrupt pin configuration
	RegCtrl4         byte = 0x29 // RW, interrupt enables
	RegCtrl5         byte = 0x2A // RW, interrupt routing
	RegOffsetPress   byte = 0x2B // RW, pressure trim
	RegOffsetTemp    byte = 0x2C // RW, temperature trim
	RegOffsetAlt     byte = 0x2D // RW, altitude trim
)

// CTRL_REG1 bits.
const (
	ctrl1SBYB    byte = 0x01 // 1 = active, 0 = standby
	ctrl1OST     byte = 0x02 // one-shot trigger, self-clearing
	ctrl1RST     byte = 0x04 // software reset
	ctrl1OSShift uint = 3    // oversample ratio, stored as log2, 3 bits
	ctrl1OSMask  byte = 0x38
	ctrl1RAW     byte = 0x40 // raw output mode
	ctrl1ALT     byte = 0x80 // 1 = altimeter, 0 = barometer
)

// CTRL_REG2 bits.
const (
	ctrl2STMask     byte = 0x0F // auto acquisition time step, 2^ST seconds
	ctrl2AlarmSel   byte = 0x10 // 1 = interrupt on target +/- window, 0 = on window only
	ctrl2LoadOutput byte = 0x20 // 1 = load OUT_P/OUT_T as target values
)

// CTRL_REG3 interrupt pin configuration bits.
const (
	ctrl3IPOL1 byte = 0x20 // INT1 polarity, 1 = active high
	ctrl3PPOD1 byte = 0x10 // INT1 open drain
	ctrl3IPOL2 byte = 0x02 // INT2 polarity
	ctrl3PPOD2 byte = 0x01 // INT2 open drain
)

// PT_DATA_CFG bits.
const (
	ptCfgTDEFE byte = 0x01 // event on new temperature
	ptCfgPDEFE byte = 0x02 // event on new pressure/altitude
	ptCfgDREM  byte = 0x04 // data-ready event mode
)

// F_SETUP fields.
const (
	fifoModeShift     uint = 6
	fifoModeMask      byte = 0xC0
	fifoWatermarkMask byte = 0x1F
)

// F_STATUS fields.
const (
	fifoStatusOverflow  byte = 0x80
	fifoStatusWatermark byte = 0x40
	fifoStatusCountMask byte = 0x1F
)

// DR_STATUS bits.
const (
	drStatusPTOW byte = 0x80 // pressure/altitude and temperature overwritten
	drStatusPOW  byte = 0x40 // pressure/altitude overwritten
	drStatusTOW  byte = 0x20 // temperature overwritten
	drStatusPTDR byte = 0x08 // pressure/altitude or temperature data ready
	drStatusPDR  byte = 0x04 // pressure/altitude data ready
	drStatusTDR  byte = 0x02 // temperature data ready
)

// SYSMOD bits.
const sysModeActive byte = 0x01

// readRegisters performs one single-byte read per register, in the order
// given. Multi-byte output groups must always be passed address-ascending so
// the device sees one ordered burst per logical value.
func (d *Device) readRegisters(regs ...byte) ([]byte, error) {
	raw := make([]byte, len(regs))
	for i, reg := range regs {
		v, err := d.conn.ReadByteFromReg(reg)
		if err != nil {
			return nil, fmt.Errorf("mpl3115a2: reading register %#02x: %w", reg, err)
		}
		raw[i] = v
	}
	return raw, nil
}

func (d *Device) readRegister(reg byte) (byte, error) {
	v, err := d.conn.ReadByteFromReg(reg)
	if err != nil {
		return 0, fmt.Errorf("mpl3115a2: reading register %#02x: %w", reg, err)
	}
	return v, nil
}

func (d *Device) writeRegister(reg, value byte) error {
	if err := d.conn.WriteByteToReg(reg, value); err != nil {
		return fmt.Errorf("mpl3115a2: writing %#02x to register %#02x: %w", value, reg, err)
	}
	return nil
}
