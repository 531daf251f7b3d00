//go:build purego

package q15

import (
	_ "github.com/cwbudde/algo-q15/internal/arch/generic"  // register generic backend
	_ "github.com/cwbudde/algo-q15/internal/arch/registry" // initialize backend registry
)
