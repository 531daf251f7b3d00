//go:build !purego && arm64 && cgo

package neon

import (
	"testing"

	"github.com/cwbudde/algo-q15/internal/arch/generic"
)

// TestAxpyBlock_NEONMatchesGeneric cross-checks the NEON kernel against the
// scalar reference. NEON is mandatory on arm64, so this always runs.
func TestAxpyBlock_NEONMatchesGeneric(t *testing.T) {
	alphas := []int16{0, 1, -1, 3, 32767, -32768}
	sizes := []int{0, 1, 7, 8, 9, 15, 16, 17, 100, 1000}

	for _, alpha := range alphas {
		for _, n := range sizes {
			a := make([]int16, n)
			b := make([]int16, n)
			for i := 0; i < n; i++ {
				a[i] = int16(i*12289 + 17)
				b[i] = int16(i*28411 - 5)
			}

			want := make([]int16, n)
			got := make([]int16, n)
			generic.AxpyBlock(want, a, b, alpha)
			AxpyBlock(got, a, b, alpha)

			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("alpha=%d n=%d: got[%d] = %d, want %d", alpha, n, i, got[i], want[i])
				}
			}
		}
	}
}
