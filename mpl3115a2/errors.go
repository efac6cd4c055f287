package mpl3115a2

import (
	"errors"
	"fmt"
)

// ErrInconsistentFIFORead is returned by DrainFIFO when the sample count
// changes between the count query and the drain. The FIFO is left untouched;
// the caller decides whether to retry.
var ErrInconsistentFIFORead = errors.New("mpl3115a2: FIFO sample count changed before drain")

// UnexpectedDeviceIDError is returned when the WHO_AM_I register holds
// anything other than DeviceID. It is always fatal to acquisition; there is
// no fallback to a partially-compatible part.
type UnexpectedDeviceIDError struct {
	Actual byte
}

func (e UnexpectedDeviceIDError) Error() string {
	return fmt.Sprintf("mpl3115a2: unexpected device ID %#02x, want %#02x", e.Actual, DeviceID)
}

// InvalidConfigurationError is returned when a requested option is outside
// the device's documented domain. It is detected before any bus traffic, so
// the device is never left partially configured by invalid input.
type InvalidConfigurationError struct {
	Option string
	Value  interface{}
}

func (e InvalidConfigurationError) Error() string {
	return fmt.Sprintf("mpl3115a2: invalid %s: %v", e.Option, e.Value)
}
