//go:build !purego && arm64 && !cgo

package q15

// Without cgo the SIMD backends are unavailable; every call runs the
// scalar reference implementation.

import (
	_ "github.com/cwbudde/algo-q15/internal/arch/generic"  // register generic backend
	_ "github.com/cwbudde/algo-q15/internal/arch/registry" // initialize backend registry
)
