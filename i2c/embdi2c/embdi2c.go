// Package embdi2c binds a device address on a kidoman/embd I2C bus to the
// single-byte register transport the mpl3115a2 driver consumes.
package embdi2c

import (
	"github.com/kidoman/embd"
	_ "github.com/kidoman/embd/host/all"
	_ "github.com/kidoman/embd/host/rpi"
)

// Conn addresses one device on an embd I2C bus. It carries no state beyond
// the address, so the serialization contract is whatever the underlying
// embd bus provides plus the driver's single-owner discipline.
type Conn struct {
	bus  embd.I2CBus
	addr byte
}

// New returns a Conn for the device at addr on bus. The bus must already be
// open; closing it is the caller's job, the driver never does.
func New(bus embd.I2CBus, addr byte) *Conn {
	return &Conn{bus: bus, addr: addr}
}

func (c *Conn) ReadByteFromReg(reg byte) (byte, error) {
	return c.bus.ReadByteFromReg(c.addr, reg)
}

func (c *Conn) WriteByteToReg(reg byte, value byte) error {
	return c.bus.WriteByteToReg(c.addr, reg, value)
}
