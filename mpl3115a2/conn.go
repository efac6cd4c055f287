package mpl3115a2

// Conn is the transport capability the driver needs: single-byte reads and
// writes against the device's register address space. kidoman/embd's I2CBus
// satisfies it through a thin adapter, as does any test double.
//
// The driver issues no other kind of transaction. Retry, timeout and
// cancellation policy belong to the Conn implementation, not here.
//
// A Conn must not be shared between concurrent callers without external
// serialization. Multi-byte output groups are read as several single-byte
// transactions, and bitfield updates are read-modify-write pairs; the device
// gives neither any atomicity, so interleaved access to the same registers
// corrupts readings silently. One logical owner per Conn at a time, or a
// mutex around every Device call.
type Conn interface {
	ReadByteFromReg(reg byte) (byte, error)
	WriteByteToReg(reg byte, value byte) error
}
