//go:build !purego && amd64 && cgo

package q15

import (
	_ "github.com/cwbudde/algo-q15/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-q15/internal/arch/amd64/sse2" // register SSE2 backend
	_ "github.com/cwbudde/algo-q15/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-q15/internal/arch/registry"   // initialize backend registry
)
