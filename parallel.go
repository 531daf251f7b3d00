package q15

import "golang.org/x/sync/errgroup"

// span is one contiguous region of a buffer, as (offset, count).
type span struct {
	off int
	n   int
}

// spans splits [0, n) into contiguous regions of at most width elements.
// The regions cover the range exactly once, in order, with the final region
// possibly narrower. Returns nil for n <= 0. width must be positive.
func spans(n, width int) []span {
	if n <= 0 {
		return nil
	}

	out := make([]span, 0, (n+width-1)/width)
	for off := 0; off < n; off += width {
		w := width
		if rem := n - off; rem < w {
			w = rem
		}
		out = append(out, span{off: off, n: w})
	}

	return out
}

// minParallelLen is the buffer length below which goroutine fan-out costs
// more than the kernel itself.
const minParallelLen = 4096

// AxpyBlockParallel computes the same result as AxpyBlock, splitting the
// buffers into disjoint contiguous spans processed by up to workers
// goroutines. The per-element computation is order-independent, so the
// output is bit-identical to the single-threaded kernels. Short buffers and
// workers <= 1 degrade to a single AxpyBlock call. Slices must have equal
// length. Panics if lengths differ.
func AxpyBlockParallel(dst, a, b []int16, alpha int16, workers int) {
	n := len(dst)
	if len(a) != len(b) || n != len(a) {
		panic("q15: slice length mismatch")
	}

	if workers <= 1 || n < minParallelLen {
		AxpyBlock(dst, a, b, alpha)
		return
	}

	width := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for _, s := range spans(n, width) {
		g.Go(func() error {
			AxpyBlock(dst[s.off:s.off+s.n], a[s.off:s.off+s.n], b[s.off:s.off+s.n], alpha)
			return nil
		})
	}

	// The kernels cannot fail; Wait only joins the goroutines.
	_ = g.Wait()
}
