package q15

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-q15/internal/arch/registry"
)

var (
	axpyBlockImpl     registry.AxpyBlockFn
	axpyBlockImplName string
	axpyBlockInitOnce sync.Once
)

// AxpyBlock computes dst[i] = Saturate(int32(a[i]) + int32(alpha)*int32(b[i]))
// for every element. Slices must have equal length. Panics if lengths differ.
//
// The kernel variant is selected once per process from detected CPU
// features. On platforms or builds without a SIMD kernel this runs the
// scalar reference implementation, producing identical output.
func AxpyBlock(dst, a, b []int16, alpha int16) {
	axpyBlockInitOnce.Do(initAxpyBlockKernel)

	axpyBlockImpl(dst, a, b, alpha)
}

// Implementation returns the name of the kernel variant AxpyBlock resolved
// to for the current CPU (e.g. "generic", "sse2", "avx2", "neon").
func Implementation() string {
	axpyBlockInitOnce.Do(initAxpyBlockKernel)

	return axpyBlockImplName
}

func initAxpyBlockKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("q15: no axpy kernel registered (missing generic fallback?)")
	}

	if entry.AxpyBlock == nil {
		panic("q15: selected kernel missing AxpyBlock")
	}

	axpyBlockImpl = entry.AxpyBlock
	axpyBlockImplName = entry.Name
}
