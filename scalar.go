package q15

import "github.com/cwbudde/algo-q15/internal/arch/generic"

// AxpyBlockScalar computes dst[i] = Saturate(int32(a[i]) + int32(alpha)*int32(b[i]))
// using the portable scalar reference implementation, regardless of CPU
// features. Its output defines ground truth for every other kernel variant.
// Slices must have equal length. Panics if lengths differ.
//
// The 32-bit accumulator cannot wrap: the largest magnitude it can reach is
// 32767 + (-32768)*(-32768) = 1073774591, well inside the int32 range.
func AxpyBlockScalar(dst, a, b []int16, alpha int16) {
	generic.AxpyBlock(dst, a, b, alpha)
}

// Saturate clamps a 32-bit accumulator into the Q15 range [-32768, 32767].
// Values exactly at a boundary stay at the boundary; clamping never wraps
// and never rounds.
func Saturate(v int32) int16 {
	return generic.Sat(v)
}
