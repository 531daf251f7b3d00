// Package q15 provides saturating Q15 (signed 16-bit fixed-point) vector
// kernels with runtime SIMD dispatch.
//
// The core operation is a scaled accumulate ("axpy"):
//
//	dst[i] = Saturate(int32(a[i]) + int32(alpha)*int32(b[i]))
//
// [AxpyBlock] selects the fastest kernel available for the current CPU
// (AVX2, SSE2 or NEON when built with cgo) and falls back to the portable
// scalar implementation everywhere else. [AxpyBlockScalar] always runs the
// scalar reference implementation, which defines ground truth for every
// other variant. [VerifyBlock] compares two output buffers for exact
// equality and reports the maximum absolute deviation.
//
// Values are treated as plain saturating integers; the Q15 fractional
// interpretation (15 fractional bits) is left to the caller. No rescaling
// is performed.
//
// All kernels are stateless and safe for concurrent use on disjoint
// buffers.
package q15
