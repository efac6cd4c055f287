package mpl3115a2

// Calibration trim registers. Each stores a signed byte with a fixed linear
// scale: 4 Pa per LSB for pressure, 0.0625 degrees C for temperature, 1 m
// for altitude.
const (
	pressureOffsetScale    = 4.0
	temperatureOffsetScale = 0.0625
	altitudeOffsetScale    = 1.0
)

// PressureOffset returns the pressure trim in Pascals, -512 to +508.
func (d *Device) PressureOffset() (float64, error) {
	v, err := d.readRegister(RegOffsetPress)
	if err != nil {
		return 0, err
	}
	return decodeOffset(v, pressureOffsetScale), nil
}

// SetPressureOffset sets the pressure trim in Pascals. Values that do not
// fit the signed trim byte after scaling are rejected.
func (d *Device) SetPressureOffset(pascals float64) error {
	v, err := encodeOffset(pascals, pressureOffsetScale)
	if err != nil {
		return err
	}
	return d.writeRegister(RegOffsetPress, v)
}

// TemperatureOffset returns the temperature trim in degrees C, -8 to +7.9375.
func (d *Device) TemperatureOffset() (float64, error) {
	v, err := d.readRegister(RegOffsetTemp)
	if err != nil {
		return 0, err
	}
	return decodeOffset(v, temperatureOffsetScale), nil
}

// SetTemperatureOffset sets the temperature trim in degrees C.
func (d *Device) SetTemperatureOffset(degrees float64) error {
	v, err := encodeOffset(degrees, temperatureOffsetScale)
	if err != nil {
		return err
	}
	return d.writeRegister(RegOffsetTemp, v)
}

// AltitudeOffset returns the altitude trim in meters, -128 to +127.
func (d *Device) AltitudeOffset() (float64, error) {
	v, err := d.readRegister(RegOffsetAlt)
	if err != nil {
		return 0, err
	}
	return decodeOffset(v, altitudeOffsetScale), nil
}

// SetAltitudeOffset sets the altitude trim in meters.
func (d *Device) SetAltitudeOffset(meters float64) error {
	v, err := encodeOffset(meters, altitudeOffsetScale)
	if err != nil {
		return err
	}
	return d.writeRegister(RegOffsetAlt, v)
}
