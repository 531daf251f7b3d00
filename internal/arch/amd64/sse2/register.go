//go:build !purego && amd64 && cgo

package sse2

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-q15/internal/arch/registry"
)

// init registers the SSE2-optimized implementation with the q15 registry.
//
// SSE2 is part of the x86-64 baseline, so this entry is selectable on any
// amd64 CPU.
//
// Priority: 10 (below AVX2).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Lanes:     Lanes,
		AxpyBlock: AxpyBlock,
	})
}
