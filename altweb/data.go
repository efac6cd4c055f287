// Package altweb streams live altimeter samples to websocket clients. It is
// a collaborator of the mpl3115a2 driver, not part of it: it owns the device
// handle for the life of the listener and is the single goroutine touching
// the bus.
package altweb

// DefaultPort is the port the altweb server listens on unless told
// otherwise.
const DefaultPort = 8000

// Frame is one websocket message: a decoded sample plus the device state a
// dashboard cares about.
type Frame struct {
	T           float64 `json:"t"` // seconds since the listener started
	Altitude    float64 `json:"altitude"`
	Pressure    float64 `json:"pressure"`
	Temperature float64 `json:"temperature"`
	Mode        string  `json:"mode"`
	FIFOSamples int     `json:"fifo_samples"`
}
