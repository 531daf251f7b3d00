package generic

import (
	"fmt"
	"testing"
)

// TestAxpyBlock_Generic checks the reference kernel against a 64-bit
// recomputation across a size sweep.
func TestAxpyBlock_Generic(t *testing.T) {
	sizes := []int{0, 1, 4, 8, 15, 16, 17, 32, 64, 100, 1000}
	alpha := int16(-31)

	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := make([]int16, n)
			b := make([]int16, n)
			dst := make([]int16, n)

			for i := 0; i < n; i++ {
				a[i] = int16(i*773 - 29000)
				b[i] = int16(31000 - i*911)
			}

			AxpyBlock(dst, a, b, alpha)

			for i := 0; i < n; i++ {
				acc := int64(a[i]) + int64(alpha)*int64(b[i])
				expected := acc
				if expected > 32767 {
					expected = 32767
				}
				if expected < -32768 {
					expected = -32768
				}

				if int64(dst[i]) != expected {
					t.Errorf("AxpyBlock[%d] = %d, want %d", i, dst[i], expected)
				}
			}
		})
	}
}

func TestSat_Boundaries(t *testing.T) {
	tests := []struct {
		in   int32
		want int16
	}{
		{0, 0},
		{32767, 32767},
		{32768, 32767},
		{1073774591, 32767}, // 32767 + (-32768)*(-32768)
		{-32768, -32768},
		{-32769, -32768},
		{-1073741824, -32768}, // -32768 + (-32768)*32767
		{-1, -1},
		{1, 1},
	}

	for _, tt := range tests {
		if got := Sat(tt.in); got != tt.want {
			t.Errorf("Sat(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAxpyBlock_LengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()

	AxpyBlock(make([]int16, 4), make([]int16, 4), make([]int16, 3), 1)
}

// BenchmarkAxpyBlock_Generic_Direct benchmarks the reference kernel directly.
func BenchmarkAxpyBlock_Generic_Direct(b *testing.B) {
	sizes := []int{16, 64, 256, 1024, 4096}

	for _, n := range sizes {
		b.Run(sizeStr(n), func(b *testing.B) {
			dst := make([]int16, n)
			av := make([]int16, n)
			bv := make([]int16, n)

			for i := 0; i < n; i++ {
				av[i] = int16(i*7 - 16000)
				bv[i] = int16(16000 - i*5)
			}

			b.SetBytes(int64(n) * 2 * 3)
			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				AxpyBlock(dst, av, bv, 3)
			}
		})
	}
}

func sizeStr(n int) string {
	if n >= 1024 {
		return fmt.Sprintf("%dK", n/1024)
	}
	return fmt.Sprintf("%d", n)
}
