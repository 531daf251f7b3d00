//go:build !purego && amd64 && cgo

package sse2

/*
#cgo CFLAGS: -O3
#include <emmintrin.h>
#include <stddef.h>
#include <stdint.h>

// SSE2 lacks a 32-bit multiply and a 16->32 sign extension, so the widened
// products come from interleaving mullo/mulhi halves and the widened a lanes
// from an unpack-high shift. packs_epi32 provides the saturating narrow.
static void axpy_q15_sse2(int16_t *dst, const int16_t *a, const int16_t *b,
                          size_t n, int16_t alpha) {
	__m128i valpha = _mm_set1_epi16(alpha);
	__m128i zero = _mm_setzero_si128();
	size_t i = 0;
	for (; i + 8 <= n; i += 8) {
		__m128i va = _mm_loadu_si128((const __m128i *)(a + i));
		__m128i vb = _mm_loadu_si128((const __m128i *)(b + i));
		__m128i plo = _mm_mullo_epi16(vb, valpha);
		__m128i phi = _mm_mulhi_epi16(vb, valpha);
		__m128i prod0 = _mm_unpacklo_epi16(plo, phi);
		__m128i prod1 = _mm_unpackhi_epi16(plo, phi);
		__m128i wa0 = _mm_srai_epi32(_mm_unpacklo_epi16(zero, va), 16);
		__m128i wa1 = _mm_srai_epi32(_mm_unpackhi_epi16(zero, va), 16);
		__m128i acc0 = _mm_add_epi32(wa0, prod0);
		__m128i acc1 = _mm_add_epi32(wa1, prod1);
		_mm_storeu_si128((__m128i *)(dst + i), _mm_packs_epi32(acc0, acc1));
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

// Lanes is the number of elements processed per SSE2 group.
const Lanes = 8

// AxpyBlock computes dst[i] = sat16(a[i] + alpha*b[i]) using SSE2
// widen-multiply-accumulate with a saturating pack back to int16.
// Slices must have equal length. Panics if lengths differ.
func AxpyBlock(dst, a, b []int16, alpha int16) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("q15: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}

	C.axpy_q15_sse2(
		(*C.int16_t)(unsafe.Pointer(&dst[0])),
		(*C.int16_t)(unsafe.Pointer(&a[0])),
		(*C.int16_t)(unsafe.Pointer(&b[0])),
		C.size_t(len(dst)),
		C.int16_t(alpha),
	)
}
