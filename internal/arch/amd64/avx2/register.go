//go:build !purego && amd64 && cgo

package avx2

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-q15/internal/arch/registry"
)

// init registers the AVX2-optimized implementation with the q15 registry.
//
// Priority: 20 (preferred over SSE2 when AVX2 is available).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Lanes:     Lanes,
		AxpyBlock: AxpyBlock,
	})
}
