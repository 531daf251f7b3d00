//go:build !purego && amd64 && cgo

package avx2

/*
#cgo CFLAGS: -mavx2 -O3
#include <immintrin.h>
#include <stddef.h>
#include <stdint.h>

// Processes 8 int16 lanes per group: sign-extend both inputs to int32,
// multiply b by the broadcast alpha, add, then pack back to int16 with
// signed saturation. The final group narrower than 8 runs scalar.
static void axpy_q15_avx2(int16_t *dst, const int16_t *a, const int16_t *b,
                          size_t n, int16_t alpha) {
	__m256i valpha = _mm256_set1_epi32((int32_t)alpha);
	size_t i = 0;
	for (; i + 8 <= n; i += 8) {
		__m256i va = _mm256_cvtepi16_epi32(_mm_loadu_si128((const __m128i *)(a + i)));
		__m256i vb = _mm256_cvtepi16_epi32(_mm_loadu_si128((const __m128i *)(b + i)));
		__m256i acc = _mm256_add_epi32(va, _mm256_mullo_epi32(vb, valpha));
		__m128i lo = _mm256_castsi256_si128(acc);
		__m128i hi = _mm256_extracti128_si256(acc, 1);
		_mm_storeu_si128((__m128i *)(dst + i), _mm_packs_epi32(lo, hi));
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

// Lanes is the number of elements processed per AVX2 group.
const Lanes = 8

// AxpyBlock computes dst[i] = sat16(a[i] + alpha*b[i]) using AVX2
// widen-multiply-accumulate with a saturating pack back to int16.
// Slices must have equal length. Panics if lengths differ.
func AxpyBlock(dst, a, b []int16, alpha int16) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("q15: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}

	C.axpy_q15_avx2(
		(*C.int16_t)(unsafe.Pointer(&dst[0])),
		(*C.int16_t)(unsafe.Pointer(&a[0])),
		(*C.int16_t)(unsafe.Pointer(&b[0])),
		C.size_t(len(dst)),
		C.int16_t(alpha),
	)
}
