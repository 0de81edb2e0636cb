package base58

import "github.com/opal-lang/base58/core/invariant"

// byteRadix is the radix of a raw byte buffer.
const byteRadix uint16 = 256

// divideBy58 divides the base-256 number in buf[start:] by 58 in place
// and returns the remainder.
func divideBy58(buf []byte, start int) uint16 {
	return divide(buf, start, uint16(radix), byteRadix)
}

// divideBy256 divides the base-58 number in buf[start:] by 256 in place
// and returns the remainder.
func divideBy256(buf []byte, start int) uint16 {
	return divide(buf, start, byteRadix, uint16(radix))
}

// divide performs one long-division pass over buf[start:], read as an
// unsigned big-endian number whose digits are in radix base. Each digit is
// replaced by the corresponding quotient digit and the final remainder is
// returned.
//
// rem*base + digit stays below 65536 for every divisor/base pair used here
// (at most 57*256 + 255 when dividing by 58), so uint16 is wide enough.
func divide(buf []byte, start int, divisor, base uint16) uint16 {
	invariant.Precondition(divisor > 0, "divisor must be positive")
	invariant.InRange(start, 0, len(buf), "division start")

	var remainder uint16
	for i := start; i < len(buf); i++ {
		temp := remainder*base + uint16(buf[i])
		buf[i] = byte(temp / divisor)
		remainder = temp % divisor
	}

	return remainder
}
