//go:build !purego && arm64 && cgo

package neon

/*
#cgo CFLAGS: -O3
#include <arm_neon.h>
#include <stddef.h>
#include <stdint.h>

// Processes 8 int16 lanes per group: vmull widens the alpha*b products to
// int32, vaddw folds in the sign-extended a lanes, and vqmovn narrows back
// to int16 with signed saturation. The final group narrower than 8 runs
// scalar.
static void axpy_q15_neon(int16_t *dst, const int16_t *a, const int16_t *b,
                          size_t n, int16_t alpha) {
	size_t i = 0;
	for (; i + 8 <= n; i += 8) {
		int16x8_t va = vld1q_s16(a + i);
		int16x8_t vb = vld1q_s16(b + i);
		int32x4_t acc_lo = vaddw_s16(vmull_n_s16(vget_low_s16(vb), alpha), vget_low_s16(va));
		int32x4_t acc_hi = vaddw_s16(vmull_n_s16(vget_high_s16(vb), alpha), vget_high_s16(va));
		vst1q_s16(dst + i, vcombine_s16(vqmovn_s32(acc_lo), vqmovn_s32(acc_hi)));
	}
	for (; i < n; i++) {
		int32_t acc = (int32_t)a[i] + (int32_t)alpha * (int32_t)b[i];
		if (acc > 32767) acc = 32767;
		if (acc < -32768) acc = -32768;
		dst[i] = (int16_t)acc;
	}
}
*/
import "C"

import "unsafe"

// Lanes is the number of elements processed per NEON group.
const Lanes = 8

// AxpyBlock computes dst[i] = sat16(a[i] + alpha*b[i]) using NEON
// widen-multiply-accumulate with a saturating narrow back to int16.
// Slices must have equal length. Panics if lengths differ.
func AxpyBlock(dst, a, b []int16, alpha int16) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("q15: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}

	C.axpy_q15_neon(
		(*C.int16_t)(unsafe.Pointer(&dst[0])),
		(*C.int16_t)(unsafe.Pointer(&a[0])),
		(*C.int16_t)(unsafe.Pointer(&b[0])),
		C.size_t(len(dst)),
		C.int16_t(alpha),
	)
}
