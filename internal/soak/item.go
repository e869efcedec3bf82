package soak

import "math"

// Items are int64s carrying a producer index in the high bits and that
// producer's sequence number in the low 40. Encoded items are always
// non-negative, so the minimum int64 is free to act as the stop sentinel:
// last out of a FIFO queue because it is pushed last, last out of a
// priority queue because nothing ranks below it.
const (
	seqBits  = 40
	seqMask  = (1 << seqBits) - 1
	stopItem = int64(math.MinInt64)

	// maxProducers keeps the producer index clear of the sign bit.
	maxProducers = 1 << 23
)

func encode(producer int, seq int64) int64 {
	return int64(producer)<<seqBits | seq
}

func decode(item int64) (producer int, seq int64) {
	return int(item >> seqBits), item & seqMask
}
