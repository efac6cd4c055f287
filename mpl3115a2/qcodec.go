package mpl3115a2

import "math"

// The MPL3115A2 reports every physical quantity as a big-endian fixed-point
// bit string: a whole part (two's complement where signed), an unsigned
// fraction over a power of two, and reserved low bits that always read zero.
// qFormat captures one such layout; the instances below are the only ones
// the part uses.
type qFormat struct {
	wholeBits uint
	signed    bool
	fracBits  uint
}

var (
	qAltitude = qFormat{wholeBits: 16, signed: true, fracBits: 4} // meters, sixteenths
	// Pressure whole units live in the MSB/CSB pair with the quarter-Pascal
	// fraction in the top two bits of the LSB: 0x00 0x01 0x40 is 1.25 Pa.
	qPressure         = qFormat{wholeBits: 16, signed: false, fracBits: 2} // Pascals, quarters
	qPressureDelta    = qFormat{wholeBits: 16, signed: true, fracBits: 2}  // Pascals, quarters
	qTemperature      = qFormat{wholeBits: 8, signed: true, fracBits: 4}   // degrees C, sixteenths
	qTemperatureDelta = qFormat{wholeBits: 8, signed: true, fracBits: 1}   // degrees C, halves
)

// decode interprets raw as this format. The leading wholeBits are the whole
// units, the next fracBits the numerator over 2^fracBits; trailing reserved
// bits are ignored. Total function, no error path.
func (q qFormat) decode(raw []byte) float64 {
	var bits uint64
	for _, b := range raw {
		bits = bits<<8 | uint64(b)
	}
	totalBits := uint(len(raw)) * 8

	whole := bits >> (totalBits - q.wholeBits)
	frac := (bits >> (totalBits - q.wholeBits - q.fracBits)) & (1<<q.fracBits - 1)

	wholeUnits := float64(whole)
	if q.signed && whole&(1<<(q.wholeBits-1)) != 0 {
		wholeUnits = float64(whole) - float64(uint64(1)<<q.wholeBits)
	}
	return wholeUnits + float64(frac)/float64(uint64(1)<<q.fracBits)
}

// encode is the inverse of decode, producing width bytes. Values outside the
// representable range are rejected, never truncated.
func (q qFormat) encode(value float64, width int) ([]byte, error) {
	scaled := math.Round(value * float64(uint64(1)<<q.fracBits))

	var lo, hi float64
	if q.signed {
		hi = float64(uint64(1)<<(q.wholeBits+q.fracBits-1)) - 1
		lo = -float64(uint64(1) << (q.wholeBits + q.fracBits - 1))
	} else {
		hi = float64(uint64(1)<<(q.wholeBits+q.fracBits)) - 1
		lo = 0
	}
	if scaled < lo || scaled > hi {
		return nil, InvalidConfigurationError{Option: "fixed-point value", Value: value}
	}

	totalBits := uint(width) * 8
	bits := uint64(int64(scaled)) & (1<<(q.wholeBits+q.fracBits) - 1)
	bits <<= totalBits - q.wholeBits - q.fracBits

	raw := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		raw[i] = byte(bits)
		bits >>= 8
	}
	return raw, nil
}

// encodeOffset maps a physical calibration value onto a signed offset byte
// with the given scale (units per LSB). Out-of-range values are rejected so a
// bad trim never silently wraps into a wildly different one.
func encodeOffset(value, scale float64) (byte, error) {
	if value < math.MinInt8*scale || value > math.MaxInt8*scale {
		return 0, InvalidConfigurationError{Option: "calibration offset", Value: value}
	}
	return byte(int8(math.Round(value / scale))), nil
}

// decodeOffset is the read direction of encodeOffset.
func decodeOffset(raw byte, scale float64) float64 {
	return float64(int8(raw)) * scale
}
