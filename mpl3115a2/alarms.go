package mpl3115a2

import "math"

// Sea level reference, target and window registers. BAR_IN, P_TGT and P_WND
// hold unsigned 16-bit values at 2 Pa per LSB; in altimeter mode the target
// is instead a signed whole-meter count. T_TGT is a signed whole-degree byte
// and T_WND an unsigned whole-degree byte.

// SeaLevelPressure returns the barometric input used for altitude
// calculations, in Pascals.
func (d *Device) SeaLevelPressure() (float64, error) {
	raw, err := d.readRegisters(RegBarInMSB, RegBarInLSB)
	if err != nil {
		return 0, err
	}
	return float64(uint16(raw[0])<<8|uint16(raw[1])) * 2, nil
}

// SetSeaLevelPressure sets the barometric input for altitude calculations.
// The register resolution is 2 Pa; values outside 0 to 131070 are rejected.
func (d *Device) SetSeaLevelPressure(pascals float64) error {
	counts := math.Round(pascals / 2)
	if counts < 0 || counts > math.MaxUint16 {
		return InvalidConfigurationError{Option: "sea level pressure", Value: pascals}
	}
	return d.writeUint16(RegBarInMSB, RegBarInLSB, uint16(counts))
}

// SetPressureTarget sets the pressure the target interrupt compares against,
// in Pascals. Barometer-mode semantics.
func (d *Device) SetPressureTarget(pascals float64) error {
	counts := math.Round(pascals / 2)
	if counts < 0 || counts > math.MaxUint16 {
		return InvalidConfigurationError{Option: "pressure target", Value: pascals}
	}
	return d.writeUint16(RegPressTgtMSB, RegPressTgtLSB, uint16(counts))
}

// SetAltitudeTarget sets the altitude the target interrupt compares against,
// in whole meters. Altimeter-mode semantics.
func (d *Device) SetAltitudeTarget(meters float64) error {
	counts := math.Round(meters)
	if counts < math.MinInt16 || counts > math.MaxInt16 {
		return InvalidConfigurationError{Option: "altitude target", Value: meters}
	}
	return d.writeUint16(RegPressTgtMSB, RegPressTgtLSB, uint16(int16(counts)))
}

// SetTemperatureTarget sets the temperature the target interrupt compares
// against, in whole degrees Celsius.
func (d *Device) SetTemperatureTarget(degrees float64) error {
	counts := math.Round(degrees)
	if counts < math.MinInt8 || counts > math.MaxInt8 {
		return InvalidConfigurationError{Option: "temperature target", Value: degrees}
	}
	return d.writeRegister(RegTempTgt, byte(int8(counts)))
}

// SetPressureWindow sets the half-width of the pressure/altitude alarm
// window. Same resolution as the matching target.
func (d *Device) SetPressureWindow(pascals float64) error {
	counts := math.Round(pascals / 2)
	if counts < 0 || counts > math.MaxUint16 {
		return InvalidConfigurationError{Option: "pressure window", Value: pascals}
	}
	return d.writeUint16(RegPressWndMSB, RegPressWndLSB, uint16(counts))
}

// SetTemperatureWindow sets the half-width of the temperature alarm window
// in whole degrees Celsius.
func (d *Device) SetTemperatureWindow(degrees float64) error {
	counts := math.Round(degrees)
	if counts < 0 || counts > math.MaxUint8 {
		return InvalidConfigurationError{Option: "temperature window", Value: degrees}
	}
	return d.writeRegister(RegTempWnd, byte(counts))
}

// Captured extrema. The device records the lowest and highest output values
// seen since the registers were last cleared; format matches OUT_P/OUT_T.

// MinAltitude returns the captured minimum altitude in meters.
func (d *Device) MinAltitude() (float64, error) {
	return d.readQ(qAltitude, RegMinPressMSB, RegMinPressCSB, RegMinPressLSB)
}

// MaxAltitude returns the captured maximum altitude in meters.
func (d *Device) MaxAltitude() (float64, error) {
	return d.readQ(qAltitude, RegMaxPressMSB, RegMaxPressCSB, RegMaxPressLSB)
}

// MinPressure returns the captured minimum pressure in Pascals.
func (d *Device) MinPressure() (float64, error) {
	return d.readQ(qPressure, RegMinPressMSB, RegMinPressCSB, RegMinPressLSB)
}

// MaxPressure returns the captured maximum pressure in Pascals.
func (d *Device) MaxPressure() (float64, error) {
	return d.readQ(qPressure, RegMaxPressMSB, RegMaxPressCSB, RegMaxPressLSB)
}

// MinTemperature returns the captured minimum temperature in degrees C.
func (d *Device) MinTemperature() (float64, error) {
	return d.readQ(qTemperature, RegMinTempMSB, RegMinTempLSB)
}

// MaxTemperature returns the captured maximum temperature in degrees C.
func (d *Device) MaxTemperature() (float64, error) {
	return d.readQ(qTemperature, RegMaxTempMSB, RegMaxTempLSB)
}

// ResetPeaks zeroes all six captured-extremum registers so a new capture
// window starts.
func (d *Device) ResetPeaks() error {
	for _, reg := range []byte{
		RegMinPressMSB, RegMinPressCSB, RegMinPressLSB,
		RegMinTempMSB, RegMinTempLSB,
		RegMaxPressMSB, RegMaxPressCSB, RegMaxPressLSB,
		RegMaxTempMSB, RegMaxTempLSB,
	} {
		if err := d.writeRegister(reg, 0); err != nil {
			return err
		}
	}
	return nil
}

// CTRL_REG2 accessors. ALARM_SEL sits at bit 4 and LOAD_OUTPUT at bit 5 per
// the datasheet register table.

// AutoAcquisitionStep returns the time between automatic acquisitions in
// seconds (a power of two from 1 to 32768).
func (d *Device) AutoAcquisitionStep() (int, error) {
	v, err := d.readRegister(RegCtrl2)
	if err != nil {
		return 0, err
	}
	return 1 << (v & ctrl2STMask), nil
}

// SetAutoAcquisitionStep sets the time between automatic acquisitions. The
// value must be a power of two between 1 and 32768 seconds.
func (d *Device) SetAutoAcquisitionStep(seconds int) error {
	var st byte
	for st = 0; st <= 15; st++ {
		if 1<<st == seconds {
			break
		}
	}
	if st > 15 {
		return InvalidConfigurationError{Option: "auto acquisition step", Value: seconds}
	}
	return d.readModifyWrite(RegCtrl2, func(b byte) byte {
		return (b &^ ctrl2STMask) | st
	})
}

// AlarmSelect reports whether the target interrupts fire on target value
// plus/minus window (true) rather than on the window value alone.
func (d *Device) AlarmSelect() (bool, error) {
	v, err := d.readRegister(RegCtrl2)
	if err != nil {
		return false, err
	}
	return v&ctrl2AlarmSel != 0, nil
}

// SetAlarmSelect sets the alarm comparison mode.
func (d *Device) SetAlarmSelect(on bool) error {
	return d.readModifyWrite(RegCtrl2, func(b byte) byte {
		return putBit(b, 4, on)
	})
}

// LoadOutput reports whether the next OUT_P/OUT_T values will be latched as
// the target values.
func (d *Device) LoadOutput() (bool, error) {
	v, err := d.readRegister(RegCtrl2)
	if err != nil {
		return false, err
	}
	return v&ctrl2LoadOutput != 0, nil
}

// SetLoadOutput sets whether the next measurement is latched as the target.
func (d *Device) SetLoadOutput(on bool) error {
	return d.readModifyWrite(RegCtrl2, func(b byte) byte {
		return putBit(b, 5, on)
	})
}

// Interrupt identifies one of the eight interrupt sources; values combine as
// a bit mask. The same layout is used by INT_SOURCE, the CTRL_REG4 enables
// and the CTRL_REG5 routing register.
type Interrupt byte

const (
	IntTemperatureChange    Interrupt = 0x01
	IntPressureChange       Interrupt = 0x02
	IntTemperatureThreshold Interrupt = 0x04
	IntPressureThreshold    Interrupt = 0x08
	IntTemperatureWindow    Interrupt = 0x10
	IntPressureWindow       Interrupt = 0x20 // the alarm interrupt, bit 5
	IntFIFO                 Interrupt = 0x40
	IntDataReady            Interrupt = 0x80
)

// InterruptPin selects one of the two physical interrupt pads.
type InterruptPin byte

const (
	INT2 InterruptPin = iota
	INT1
)

// InterruptSource returns the mask of interrupts currently asserted.
func (d *Device) InterruptSource() (Interrupt, error) {
	v, err := d.readRegister(RegIntSource)
	if err != nil {
		return 0, err
	}
	return Interrupt(v), nil
}

// EnabledInterrupts returns the CTRL_REG4 enable mask.
func (d *Device) EnabledInterrupts() (Interrupt, error) {
	v, err := d.readRegister(RegCtrl4)
	if err != nil {
		return 0, err
	}
	return Interrupt(v), nil
}

// EnableInterrupts enables the interrupts in mask, leaving others untouched.
func (d *Device) EnableInterrupts(mask Interrupt) error {
	return d.readModifyWrite(RegCtrl4, func(b byte) byte {
		return b | byte(mask)
	})
}

// DisableInterrupts disables the interrupts in mask, leaving others
// untouched.
func (d *Device) DisableInterrupts(mask Interrupt) error {
	return d.readModifyWrite(RegCtrl4, func(b byte) byte {
		return b &^ byte(mask)
	})
}

// RouteInterrupts routes the interrupts in mask to the given pin. An
// interrupt routes to INT1 when its CTRL_REG5 bit is set, INT2 when clear.
func (d *Device) RouteInterrupts(mask Interrupt, pin InterruptPin) error {
	return d.readModifyWrite(RegCtrl5, func(b byte) byte {
		if pin == INT1 {
			return b | byte(mask)
		}
		return b &^ byte(mask)
	})
}

// ConfigureInterruptPin sets the electrical behavior of one interrupt pad.
func (d *Device) ConfigureInterruptPin(pin InterruptPin, activeHigh, openDrain bool) error {
	ipol, ppod := ctrl3IPOL2, ctrl3PPOD2
	if pin == INT1 {
		ipol, ppod = ctrl3IPOL1, ctrl3PPOD1
	}
	return d.readModifyWrite(RegCtrl3, func(b byte) byte {
		if activeHigh {
			b |= ipol
		} else {
			b &^= ipol
		}
		if openDrain {
			b |= ppod
		} else {
			b &^= ppod
		}
		return b
	})
}

func (d *Device) writeUint16(msb, lsb byte, value uint16) error {
	if err := d.writeRegister(msb, byte(value>>8)); err != nil {
		return err
	}
	return d.writeRegister(lsb, byte(value))
}

func (d *Device) readQ(codec qFormat, regs ...byte) (float64, error) {
	raw, err := d.readRegisters(regs...)
	if err != nil {
		return 0, err
	}
	return codec.decode(raw), nil
}
