// Package testutil provides deterministic test-data generation shared by
// the q15 tests and the q15bench harness.
package testutil

import "math/rand/v2"

// RandomQ15 returns n samples drawn uniformly from the full int16 range,
// generated deterministically from seed.
func RandomQ15(seed uint64, n int) []int16 {
	rng := rand.New(rand.NewPCG(seed, seed))
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(rng.IntN(65536) - 32768)
	}
	return out
}

// RampQ15 returns n samples sweeping linearly from -32768 to 32767.
func RampQ15(n int) []int16 {
	out := make([]int16, n)
	if n == 0 {
		return out
	}
	if n == 1 {
		out[0] = -32768
		return out
	}
	for i := range out {
		out[i] = int16(-32768 + i*65535/(n-1))
	}
	return out
}

// ConstQ15 returns n copies of value.
func ConstQ15(value int16, n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = value
	}
	return out
}
