package mpl3115a2

import "fmt"

// fakeConn is an in-memory register file standing in for the bus. Every
// transaction is appended to log so tests can assert exact ordering.
// Reads of the FIFO data register are served from fifo instead of the map,
// popping one byte per read the way the hardware auto-advances.
type fakeConn struct {
	regs      map[byte]byte
	fifo      []byte
	log       []string
	failReads map[byte]error
	failWrite map[byte]error
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		regs: map[byte]byte{RegWhoAmI: DeviceID},
	}
}

func (c *fakeConn) ReadByteFromReg(reg byte) (byte, error) {
	c.log = append(c.log, fmt.Sprintf("R 0x%02x", reg))
	if err, ok := c.failReads[reg]; ok {
		return 0, err
	}
	if reg == RegFIFOData {
		if len(c.fifo) == 0 {
			return 0, nil
		}
		v := c.fifo[0]
		c.fifo = c.fifo[1:]
		return v, nil
	}
	return c.regs[reg], nil
}

func (c *fakeConn) WriteByteToReg(reg byte, value byte) error {
	c.log = append(c.log, fmt.Sprintf("W 0x%02x=0x%02x", reg, value))
	if err, ok := c.failWrite[reg]; ok {
		return err
	}
	c.regs[reg] = value
	return nil
}

func (c *fakeConn) clearLog() { c.log = nil }

// reads counts bus reads of one register in the log.
func (c *fakeConn) reads(reg byte) int {
	key := fmt.Sprintf("R 0x%02x", reg)
	n := 0
	for _, entry := range c.log {
		if entry == key {
			n++
		}
	}
	return n
}
