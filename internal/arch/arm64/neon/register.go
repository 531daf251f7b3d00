//go:build !purego && arm64 && cgo

package neon

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-q15/internal/arch/registry"
)

// init registers the NEON-optimized implementation with the q15 registry.
//
// NEON (ARM Advanced SIMD) is mandatory on ARMv8, so this entry is
// selectable on all arm64 CPUs.
//
// Priority: 15 (ARM's equivalent to AVX/AVX2).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Lanes:     Lanes,
		AxpyBlock: AxpyBlock,
	})
}
