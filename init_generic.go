//go:build !amd64 && !arm64 && !purego

package q15

// Unsupported architectures get the pure Go fallback only.

import (
	_ "github.com/cwbudde/algo-q15/internal/arch/generic"  // register generic backend
	_ "github.com/cwbudde/algo-q15/internal/arch/registry" // initialize backend registry
)
