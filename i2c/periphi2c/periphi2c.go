// Package periphi2c binds a device address on a periph.io I2C bus to the
// single-byte register transport the mpl3115a2 driver consumes.
package periphi2c

import (
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Conn addresses one device on a periph.io I2C bus.
type Conn struct {
	dev i2c.Dev
}

// New returns a Conn over an already-open periph device handle.
func New(dev i2c.Dev) *Conn {
	return &Conn{dev: dev}
}

// Open initializes the periph host, opens the named bus ("" for the first
// available one) and returns a Conn for the device at addr along with the
// bus closer. The driver itself never closes the bus.
func Open(name string, addr uint16) (*Conn, func() error, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, err
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return &Conn{dev: i2c.Dev{Bus: bus, Addr: addr}}, bus.Close, nil
}

func (c *Conn) ReadByteFromReg(reg byte) (byte, error) {
	var buf [1]byte
	if err := c.dev.Tx([]byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (c *Conn) WriteByteToReg(reg byte, value byte) error {
	return c.dev.Tx([]byte{reg, value}, nil)
}
