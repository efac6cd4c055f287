package mpl3115a2

// Single-bit helpers over register bytes. n is the bit position, 0 = LSB.

func getBit(b byte, n uint) byte {
	return (b >> n) & 1
}

func getBool(b byte, n uint) bool {
	return getBit(b, n) == 1
}

func setBit(b byte, n uint) byte {
	return b | 1<<n
}

func clearBit(b byte, n uint) byte {
	return b &^ (1 << n)
}

// putBit sets or clears bit n according to on.
func putBit(b byte, n uint, on bool) byte {
	if on {
		return setBit(b, n)
	}
	return clearBit(b, n)
}

// readModifyWrite reads a register, applies transform and writes the result
// back. This is the only safe way to change one field of a shared register
// without disturbing its siblings. It is two bus transactions, not one: the
// caller must hold exclusive access to the Conn for the duration (see Conn).
func (d *Device) readModifyWrite(reg byte, transform func(byte) byte) error {
	v, err := d.readRegister(reg)
	if err != nil {
		return err
	}
	return d.writeRegister(reg, transform(v))
}
