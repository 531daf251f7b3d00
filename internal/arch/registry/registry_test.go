package registry

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestRegistryLookupPrefersHigherPriority(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Lanes: 1})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10, Lanes: 8})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20, Lanes: 8})

	entry := reg.Lookup(cpu.Features{HasSSE2: true, HasAVX2: true})
	if entry == nil || entry.Name != "avx2" {
		t.Fatalf("expected avx2, got %#v", entry)
	}

	entry = reg.Lookup(cpu.Features{HasSSE2: true})
	if entry == nil || entry.Name != "sse2" {
		t.Fatalf("expected sse2, got %#v", entry)
	}

	entry = reg.Lookup(cpu.Features{})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("expected generic, got %#v", entry)
	}
}

func TestRegistryLookupForceGeneric(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Lanes: 1})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20, Lanes: 8})

	entry := reg.Lookup(cpu.Features{HasAVX2: true, ForceGeneric: true})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("expected generic with ForceGeneric, got %#v", entry)
	}
}

func TestRegistryLookupNEON(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Lanes: 1})
	reg.Register(OpEntry{Name: "neon", SIMDLevel: cpu.SIMDNEON, Priority: 15, Lanes: 8})

	entry := reg.Lookup(cpu.Features{HasNEON: true, Architecture: "arm64"})
	if entry == nil || entry.Name != "neon" {
		t.Fatalf("expected neon, got %#v", entry)
	}

	entry = reg.Lookup(cpu.Features{Architecture: "arm64"})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("expected generic without NEON, got %#v", entry)
	}
}

func TestRegistryReset(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Lanes: 1})
	reg.Reset()

	if entries := reg.ListEntries(); len(entries) != 0 {
		t.Fatalf("expected empty registry after Reset, got %d entries", len(entries))
	}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("expected nil lookup after Reset, got %#v", entry)
	}
}
