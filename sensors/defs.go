// Package sensors defines the shared data types and capability interfaces
// for the pressure-altitude instrument stack.
package sensors

import "time"

// AltimeterData is one decoded sample from a pressure/altitude sensor.
// Altitude is in meters, Pressure in Pascals, Temperature in degrees C.
// Only one of Altitude/Pressure is meaningful at a time, depending on the
// mode the sensor was acquiring in.
type AltimeterData struct {
	Altitude    float64
	Pressure    float64
	Temperature float64
	T           time.Duration
}

// AltimeterSensor carries the channels a polling collaborator publishes
// decoded samples on.
type AltimeterSensor struct {
	C    <-chan *AltimeterData // Latest sample
	CBuf <-chan *AltimeterData // Buffer of samples
}

// PressureReader is the narrow capability a consumer needs from a barometric
// sensor.
type PressureReader interface {
	Pressure() (float64, error)    // Pressure returns the pressure in Pa.
	Temperature() (float64, error) // Temperature returns the temperature in deg C.
}

// AltitudeReader is the narrow capability a consumer needs from an
// altimetric sensor.
type AltitudeReader interface {
	Altitude() (float64, error)    // Altitude returns the altitude in m.
	Temperature() (float64, error) // Temperature returns the temperature in deg C.
}
