package mpl3115a2

// FIFOMode selects how the device's internal 32-slot sample queue behaves.
type FIFOMode byte

const (
	FIFODisabled       FIFOMode = 0x00
	FIFOCircular       FIFOMode = 0x01 // oldest samples overwritten on overflow
	FIFOHaltOnOverflow FIFOMode = 0x02 // acquisition stops when full
)

func (m FIFOMode) String() string {
	switch m {
	case FIFOCircular:
		return "circular"
	case FIFOHaltOnOverflow:
		return "halt on overflow"
	default:
		return "disabled"
	}
}

// Interpretation names the codec applied to each 3-byte FIFO sample. The
// device stores raw OUT_P bytes; whether they mean altitude or pressure
// depends on the mode it was acquiring in.
type Interpretation byte

const (
	AsAltitude Interpretation = iota
	AsPressure
)

// FIFOMode returns the current FIFO mode from the top two bits of F_SETUP.
func (d *Device) FIFOMode() (FIFOMode, error) {
	v, err := d.readRegister(RegFIFOSetup)
	if err != nil {
		return FIFODisabled, err
	}
	return FIFOMode((v & fifoModeMask) >> fifoModeShift), nil
}

// SetFIFOMode changes the FIFO mode, preserving the watermark bits. Note the
// device only honors a mode change made from the disabled state.
func (d *Device) SetFIFOMode(mode FIFOMode) error {
	switch mode {
	case FIFODisabled, FIFOCircular, FIFOHaltOnOverflow:
	default:
		return InvalidConfigurationError{Option: "FIFO mode", Value: mode}
	}
	return d.readModifyWrite(RegFIFOSetup, func(b byte) byte {
		return (b &^ fifoModeMask) | byte(mode)<<fifoModeShift
	})
}

// FIFOWatermark returns the sample-count watermark from the low bits of
// F_SETUP.
func (d *Device) FIFOWatermark() (int, error) {
	v, err := d.readRegister(RegFIFOSetup)
	if err != nil {
		return 0, err
	}
	return int(v & fifoWatermarkMask), nil
}

// SetFIFOWatermark sets the watermark at which the FIFO interrupt event
// fires, 0 through 31. The mode bits are preserved.
func (d *Device) SetFIFOWatermark(samples int) error {
	if samples < 0 || samples > int(fifoWatermarkMask) {
		return InvalidConfigurationError{Option: "FIFO watermark", Value: samples}
	}
	return d.readModifyWrite(RegFIFOSetup, func(b byte) byte {
		return (b &^ fifoWatermarkMask) | byte(samples)
	})
}

// FIFOSampleCount returns how many unread samples the FIFO holds, 0 to 31.
func (d *Device) FIFOSampleCount() (int, error) {
	v, err := d.readRegister(RegFIFOStatus)
	if err != nil {
		return 0, err
	}
	return int(v & fifoStatusCountMask), nil
}

// FIFOOverflowed reports whether the FIFO has overflowed since it was last
// drained.
func (d *Device) FIFOOverflowed() (bool, error) {
	v, err := d.readRegister(RegFIFOStatus)
	if err != nil {
		return false, err
	}
	return v&fifoStatusOverflow != 0, nil
}

// FIFOWatermarkReached reports whether the sample count has reached the
// configured watermark.
func (d *Device) FIFOWatermarkReached() (bool, error) {
	v, err := d.readRegister(RegFIFOStatus)
	if err != nil {
		return false, err
	}
	return v&fifoStatusWatermark != 0, nil
}

// DrainFIFO reads every queued sample and decodes each one per interpretAs.
// Each sample is exactly three sequential reads of F_DATA; the device
// advances its internal pointer on every read, so the drain must consume
// exactly the counted number of bytes or the FIFO desynchronizes. To catch a
// count that moved between query and drain, the count is read twice and the
// drain only proceeds when both reads agree; otherwise
// ErrInconsistentFIFORead is returned with the FIFO untouched.
func (d *Device) DrainFIFO(interpretAs Interpretation) ([]float64, error) {
	count, err := d.FIFOSampleCount()
	if err != nil {
		return nil, err
	}
	check, err := d.FIFOSampleCount()
	if err != nil {
		return nil, err
	}
	if check != count {
		return nil, ErrInconsistentFIFORead
	}

	codec := qAltitude
	if interpretAs == AsPressure {
		codec = qPressure
	}

	samples := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		raw, err := d.readRegisters(RegFIFOData, RegFIFOData, RegFIFOData)
		if err != nil {
			return samples, err
		}
		samples = append(samples, codec.decode(raw))
	}
	return samples, nil
}
