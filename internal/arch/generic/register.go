package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-q15/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Lanes:     1,
		AxpyBlock: AxpyBlock,
	})
}
