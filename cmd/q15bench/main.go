// Command q15bench exercises the q15 axpy kernels on random data and checks
// that the dispatched implementation is bit-exact against the scalar
// reference.
//
// Usage:
//
//	q15bench [flags]
//
// Examples:
//
//	q15bench
//	q15bench -n 65536 -iters 500
//	q15bench -alpha -32768 -seed 42
//	q15bench -n 1048576 -workers 8
//
// Exit status is 0 when the kernels agree and 1 on any deviation.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-q15"
	"github.com/cwbudde/algo-q15/internal/testutil"
)

func main() {
	var (
		n       = flag.Int("n", 4096, "buffer length in samples")
		alpha   = flag.Int("alpha", 3, "gain coefficient (int16 range)")
		seed    = flag.Uint64("seed", 1234, "seed for the random input data")
		iters   = flag.Int("iters", 1000, "timing iterations per kernel")
		workers = flag.Int("workers", 1, "worker goroutines for the parallel path (1 = off)")
	)
	flag.Parse()

	if *alpha < -32768 || *alpha > 32767 {
		fmt.Fprintln(os.Stderr, "q15bench: alpha out of int16 range")
		os.Exit(2)
	}
	if *n < 0 || *iters < 1 {
		fmt.Fprintln(os.Stderr, "q15bench: n must be >= 0 and iters >= 1")
		os.Exit(2)
	}

	al := int16(*alpha)
	a := testutil.RandomQ15(*seed, *n)
	b := testutil.RandomQ15(*seed+1, *n)
	ref := make([]int16, *n)
	got := make([]int16, *n)

	scalarTime := timeKernel(*iters, func() {
		q15.AxpyBlockScalar(ref, a, b, al)
	})

	kernelName := q15.Implementation()
	var kernelTime time.Duration
	if *workers > 1 {
		kernelName = fmt.Sprintf("%s x%d", kernelName, *workers)
		kernelTime = timeKernel(*iters, func() {
			q15.AxpyBlockParallel(got, a, b, al, *workers)
		})
	} else {
		kernelTime = timeKernel(*iters, func() {
			q15.AxpyBlock(got, a, b, al)
		})
	}

	ok, maxDiff := q15.VerifyBlock(ref, got)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "kernel\tns/op\tMB/s\n")
	fmt.Fprintf(w, "scalar\t%d\t%.1f\n", perOp(scalarTime, *iters), throughput(*n, scalarTime, *iters))
	fmt.Fprintf(w, "%s\t%d\t%.1f\n", kernelName, perOp(kernelTime, *iters), throughput(*n, kernelTime, *iters))
	w.Flush()

	if !ok {
		fmt.Printf("verify: FAIL (max diff = %d)\n", maxDiff)
		os.Exit(1)
	}
	fmt.Printf("verify: OK (max diff = %d)\n", maxDiff)
}

// timeKernel runs fn once untimed (resolving kernel dispatch and warming
// caches), then measures iters timed invocations.
func timeKernel(iters int, fn func()) time.Duration {
	fn()

	start := time.Now()
	for i := 0; i < iters; i++ {
		fn()
	}
	return time.Since(start)
}

func perOp(d time.Duration, iters int) int64 {
	return d.Nanoseconds() / int64(iters)
}

// throughput reports MB/s over the three buffers touched per invocation.
func throughput(n int, d time.Duration, iters int) float64 {
	if d <= 0 {
		return 0
	}
	bytes := float64(n) * 2 * 3 * float64(iters)
	return bytes / d.Seconds() / 1e6
}
