//go:build !purego && arm64 && cgo

package q15

import (
	_ "github.com/cwbudde/algo-q15/internal/arch/arm64/neon" // register NEON backend
	_ "github.com/cwbudde/algo-q15/internal/arch/generic"    // register generic backend
	_ "github.com/cwbudde/algo-q15/internal/arch/registry"   // initialize backend registry
)
