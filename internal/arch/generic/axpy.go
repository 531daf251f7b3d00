// Package generic provides the portable scalar implementation of the q15
// axpy kernel. Its output defines ground truth for every other variant.
package generic

// AxpyBlock computes dst[i] = Sat(a[i] + alpha*b[i]) with a 32-bit
// accumulator per element. Slices must have equal length. Panics if
// lengths differ. This is the pure Go reference implementation.
func AxpyBlock(dst, a, b []int16, alpha int16) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("q15: slice length mismatch")
	}

	al := int32(alpha)
	for i := range dst {
		dst[i] = Sat(int32(a[i]) + al*int32(b[i]))
	}
}

// Sat clamps a 32-bit accumulator into the Q15 range [-32768, 32767].
func Sat(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}

	return int16(v)
}
