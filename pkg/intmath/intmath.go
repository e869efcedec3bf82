// Package intmath provides overflow-checked arithmetic and byte-order
// helpers for the native int type.
//
// Every function is pure and carries no shared state; the package exists
// as a standalone collaborator for callers that need explicit overflow
// detection instead of Go's silent wraparound.
package intmath

import (
	"encoding/binary"
	"math"
	"math/bits"
	"strconv"
)

// nativeLittle reports whether the target is little-endian, derived from
// how NativeEndian reads a known byte pattern.
var nativeLittle = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001

// AddOverflow returns x + y and whether the addition overflowed. On
// overflow the returned value is the wrapped two's-complement result.
func AddOverflow(x, y int) (int, bool) {
	sum := x + y
	// Overflow flips the sign bit of the result relative to both operands.
	return sum, (x^sum)&(y^sum) < 0
}

// SubOverflow returns x - y and whether the subtraction overflowed. On
// overflow the returned value is the wrapped two's-complement result.
func SubOverflow(x, y int) (int, bool) {
	diff := x - y
	// Overflow requires differing operand signs and a result whose sign
	// differs from x.
	return diff, (x^y)&(x^diff) < 0
}

// MulOverflow returns x * y and whether the multiplication overflowed. On
// overflow the returned value is the wrapped two's-complement result.
func MulOverflow(x, y int) (int, bool) {
	if x == 0 || y == 0 {
		return 0, false
	}
	// MinInt * -1 is the one case the division check below cannot probe:
	// the quotient itself would overflow.
	if (x == math.MinInt && y == -1) || (y == math.MinInt && x == -1) {
		return x * y, true
	}
	p := x * y
	return p, p/y != x
}

// Bswap returns x with its bytes reversed.
func Bswap(x int) int {
	if strconv.IntSize == 32 {
		return int(int32(bits.ReverseBytes32(uint32(x))))
	}
	return int(int64(bits.ReverseBytes64(uint64(x))))
}

// ToBE converts x from native byte order to big-endian.
func ToBE(x int) int {
	if nativeLittle {
		return Bswap(x)
	}
	return x
}

// ToLE converts x from native byte order to little-endian.
func ToLE(x int) int {
	if nativeLittle {
		return x
	}
	return Bswap(x)
}
