// Package registry provides the implementation registry for q15 kernels.
//
// Architecture-specific implementations register themselves via init()
// functions, and the q15 package uses the registry to select the best
// implementation at runtime based on detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// AxpyBlockFn computes dst[i] = sat16(a[i] + alpha*b[i]) over equal-length
// int16 slices, saturating each 32-bit accumulator into [-32768, 32767].
type AxpyBlockFn func(dst, a, b []int16, alpha int16)

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	// Lanes is the natural group width of the kernel: the number of
	// elements processed per data-parallel step. 1 for scalar kernels.
	// The final group of a buffer may be narrower than Lanes.
	Lanes int

	AxpyBlock AxpyBlockFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default q15 kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

// supports reports whether the given CPU features satisfy a SIMD level.
// ForceGeneric restricts selection to the scalar fallback.
func supports(features cpu.Features, level cpu.SIMDLevel) bool {
	if features.ForceGeneric {
		return level == cpu.SIMDNone
	}

	switch level {
	case cpu.SIMDNone:
		return true
	case cpu.SIMDSSE2:
		return features.HasSSE2
	case cpu.SIMDAVX2:
		return features.HasAVX2
	case cpu.SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
